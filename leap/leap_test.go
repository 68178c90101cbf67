package leap

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subtlepseudonym/skyframe/calendar"
)

const epsilon = 0x1p-52

func mustDate(t *testing.T, year, month, day int) calendar.Date {
	t.Helper()
	d, err := calendar.New(year, month, day)
	require.NoError(t, err)
	return d
}

func TestDeltaAT(t *testing.T) {
	tests := []struct {
		name             string
		year, month, day int
		fraction         float64
		want             float64
		tol              float64
	}{
		{"2007", 2007, 4, 5, 0.5, 33, epsilon},
		{"2003", 2003, 6, 1, 0, 32, epsilon},
		{"2008", 2008, 1, 17, 0, 33, epsilon},
		{"2017", 2017, 9, 1, 0, 37, epsilon},
		{"first day of step", 2017, 1, 1, 0, 37, epsilon},
		{"last day before step", 2016, 12, 31, 0.99, 36, epsilon},
		{"first step", 1972, 1, 1, 0, 10, epsilon},
		{"unix epoch drift", 1970, 1, 1, 0, 8.000082, 1e-9},
		{"start of utc", 1960, 1, 1, 0, 1.4178180 + (36934-37300)*0.001296, 1e-9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, known, err := DeltaAT(mustDate(t, tt.year, tt.month, tt.day), tt.fraction)
			require.NoError(t, err)
			require.True(t, known)
			assert.InDelta(t, tt.want, got, tt.tol)
		})
	}
}

func TestDeltaATDrift(t *testing.T) {
	d := mustDate(t, 1965, 8, 1)
	start, _, err := DeltaAT(d, 0)
	require.NoError(t, err)
	end, _, err := DeltaAT(d, 1)
	require.NoError(t, err)

	assert.InDelta(t, 0.001296, end-start, 1e-12)
}

func TestDeltaATBeforeUTC(t *testing.T) {
	got, known, err := DeltaAT(mustDate(t, 1959, 12, 31), 0.5)
	require.NoError(t, err)
	assert.False(t, known)
	assert.Zero(t, got)
}

func TestDeltaATBadFraction(t *testing.T) {
	d := mustDate(t, 2007, 4, 5)
	for _, f := range []float64{-0.01, 1.01} {
		_, _, err := DeltaAT(d, f)
		assert.ErrorIs(t, err, ErrBadFract)
	}
}

func TestTableOrdered(t *testing.T) {
	for i := 1; i < len(changes); i++ {
		prev := 12*changes[i-1].year + changes[i-1].month
		cur := 12*changes[i].year + changes[i].month
		require.Less(t, prev, cur, "entry %d", i)
	}
}

func TestDubious(t *testing.T) {
	assert.False(t, Dubious(LastRevision))
	assert.False(t, Dubious(LastRevision+5))
	assert.True(t, Dubious(LastRevision+6))
}

func TestCount(t *testing.T) {
	tests := []struct {
		time time.Time
		want int
	}{
		{time.Date(1971, time.June, 1, 0, 0, 0, 0, time.UTC), 0},
		{time.Date(1972, time.January, 1, 0, 0, 0, 0, time.UTC), 0},
		{time.Date(1972, time.July, 1, 0, 0, 0, 0, time.UTC), 1},
		{time.Date(2016, time.December, 31, 23, 59, 59, 0, time.UTC), 26},
		{time.Date(2017, time.January, 1, 0, 0, 0, 0, time.UTC), 27},
		{time.Date(2024, time.November, 9, 0, 0, 0, 0, time.UTC), 27},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Count(tt.time), tt.time.Format(time.RFC3339))
	}
}
