package skyframe

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var solstice = time.Date(2024, 6, 21, 16, 56, 0, 0, time.UTC)

func TestSolarJob(t *testing.T) {
	job := SolarJob{
		Name:     "test",
		Location: home,
		now:      func() time.Time { return solstice },
	}

	assert.NotPanics(t, job.Run)

	job.now = func() time.Time { return time.Date(-5000, 1, 1, 0, 0, 0, 0, time.UTC) }
	assert.NotPanics(t, job.Run)
}

func TestStatusHandler(t *testing.T) {
	h := &Handler{
		Location: home,
		now:      func() time.Time { return solstice },
	}

	tests := []struct {
		name  string
		query string
		code  int
		check func(*testing.T, Status)
	}{
		{
			name: "default",
			code: http.StatusOK,
			check: func(t *testing.T, s Status) {
				assert.InDelta(t, 72.72, s.Elevation, 0.05)
				assert.Equal(t, home.Latitude, s.Latitude)
				assert.Equal(t, 27, s.LeapSeconds)
				require.NotNil(t, s.Sunrise)
				require.NotNil(t, s.Sunset)
				assert.True(t, s.Sunrise.Before(*s.Sunset))
			},
		},
		{
			name:  "midnight sun",
			query: "?lat=78.2232&lon=15.6267",
			code:  http.StatusOK,
			check: func(t *testing.T, s Status) {
				assert.Greater(t, s.Elevation, 0.0)
				assert.Nil(t, s.Sunset)
			},
		},
		{
			name:  "time",
			query: "?time=2024-06-22T04:56:00Z",
			code:  http.StatusOK,
			check: func(t *testing.T, s Status) {
				assert.Less(t, s.Elevation, -20.0)
			},
		},
		{
			name:  "before leap seconds",
			query: "?time=1971-06-21T16:56:00Z",
			code:  http.StatusOK,
			check: func(t *testing.T, s Status) {
				assert.Zero(t, s.LeapSeconds)
			},
		},
		{name: "bad query", query: "?lat=%zz", code: http.StatusBadRequest},
		{name: "bad lat", query: "?lat=north", code: http.StatusBadRequest},
		{name: "lat range", query: "?lat=95", code: http.StatusBadRequest},
		{name: "bad lon", query: "?lon=west", code: http.StatusBadRequest},
		{name: "bad time", query: "?time=noon", code: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.StatusHandler(rec, httptest.NewRequest(http.MethodGet, "/sun"+tt.query, nil))
			require.Equal(t, tt.code, rec.Code)
			if tt.check == nil {
				return
			}

			var status Status
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&status))
			tt.check(t, status)
		})
	}
}
