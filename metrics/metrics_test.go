package metrics

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T) string {
	t.Helper()

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, 200, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return string(body)
}

func TestObserveElevation(t *testing.T) {
	ObserveElevation("noon", 72.5)
	assert.Contains(t, scrape(t), `skyframe_sun_elevation_degrees{job="noon"} 72.5`)

	ObserveElevation("noon", -3)
	assert.Contains(t, scrape(t), `skyframe_sun_elevation_degrees{job="noon"} -3`)
}

func TestObserveNextEvent(t *testing.T) {
	when := time.Date(2024, 6, 22, 0, 30, 51, 0, time.UTC)
	ObserveNextEvent("@sunset -30m0s", when)
	assert.Contains(t, scrape(t), `skyframe_next_sunset_timestamp_seconds{schedule="@sunset -30m0s"} 1.719016251e+09`)
}

func TestJobRun(t *testing.T) {
	JobRun("count", nil)
	JobRun("count", nil)
	JobRun("count", errors.New("boom"))

	body := scrape(t)
	assert.Contains(t, body, `skyframe_job_runs_total{job="count",result="ok"} 2`)
	assert.Contains(t, body, `skyframe_job_runs_total{job="count",result="error"} 1`)
}
