// Package leap provides TAI-UTC (Delta AT) for any date in the UTC era.
//
// Values are taken from the IERS bulletins as compiled in the IAU SOFA
// routine dat and agree with
// https://www.ietf.org/timezones/data/leap-seconds.list
// Before 1972 UTC was steered with a rate offset as well as steps, so those
// entries carry a drift term.
package leap

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/subtlepseudonym/skyframe/calendar"
)

// LastRevision is the year the table was last brought up to date.
const LastRevision = 2023

var ErrBadFract = errors.New("bad fraction of day")

type drift struct {
	mjd  float64 // reference epoch
	rate float64 // seconds per day
}

type change struct {
	year   int
	month  int
	offset float64
	drift  *drift
}

var (
	drift1960 = &drift{37300, 0.001296}
	drift1962 = &drift{37665, 0.0011232}
	drift1964 = &drift{38761, 0.001296}
	drift1966 = &drift{39126, 0.002592}
)

// changes lists the epochs at which TAI-UTC changed, in order.
var changes = []change{
	{1960, 1, 1.4178180, drift1960},
	{1961, 1, 1.4228180, drift1960},
	{1961, 8, 1.3728180, drift1960},
	{1962, 1, 1.8458580, drift1962},
	{1963, 11, 1.9458580, drift1962},
	{1964, 1, 3.2401300, drift1964},
	{1964, 4, 3.3401300, drift1964},
	{1964, 9, 3.4401300, drift1964},
	{1965, 1, 3.5401300, drift1964},
	{1965, 3, 3.6401300, drift1964},
	{1965, 7, 3.7401300, drift1964},
	{1965, 9, 3.8401300, drift1964},
	{1966, 1, 4.3131700, drift1966},
	{1968, 2, 4.2131700, drift1966},
	{1972, 1, 10, nil},
	{1972, 7, 11, nil},
	{1973, 1, 12, nil},
	{1974, 1, 13, nil},
	{1975, 1, 14, nil},
	{1976, 1, 15, nil},
	{1977, 1, 16, nil},
	{1978, 1, 17, nil},
	{1979, 1, 18, nil},
	{1980, 1, 19, nil},
	{1981, 7, 20, nil},
	{1982, 7, 21, nil},
	{1983, 7, 22, nil},
	{1985, 7, 23, nil},
	{1988, 1, 24, nil},
	{1990, 1, 25, nil},
	{1991, 1, 26, nil},
	{1992, 7, 27, nil},
	{1993, 7, 28, nil},
	{1994, 7, 29, nil},
	{1996, 1, 30, nil},
	{1997, 7, 31, nil},
	{1999, 1, 32, nil},
	{2006, 1, 33, nil},
	{2009, 1, 34, nil},
	{2012, 7, 35, nil},
	{2015, 7, 36, nil},
	{2017, 1, 37, nil},
}

// DeltaAT returns TAI-UTC in seconds for the given UTC date and fraction of
// day. known is false for dates before 1960, when UTC did not exist.
//
// The fraction of day only matters before 1972, where it feeds the drift
// term.
func DeltaAT(date calendar.Date, fraction float64) (seconds float64, known bool, err error) {
	if fraction < 0 || fraction > 1 {
		return 0, false, fmt.Errorf("%w: %f", ErrBadFract, fraction)
	}

	if date.Year < changes[0].year {
		return 0, false, nil
	}

	m := 12*date.Year + date.Month
	idx := sort.Search(len(changes), func(i int) bool {
		return 12*changes[i].year+changes[i].month > m
	})

	c := changes[idx-1]
	seconds = c.offset
	if c.drift != nil {
		_, mjd := date.Julian()
		seconds += (mjd + fraction - c.drift.mjd) * c.drift.rate
	}

	return seconds, true, nil
}

// Dubious reports whether a year lies far enough past the table's last
// revision that an unannounced leap second may be missing.
func Dubious(year int) bool {
	return year > LastRevision+5
}

// Count returns the number of leap seconds inserted into UTC between
// 1 January 1972, when UTC switched to whole-second steps, and t.
//
// As of go1.14, leap seconds are not supported by the time package. This
// may change in go2
// https://github.com/golang/go/issues/15247
func Count(t time.Time) int {
	t = t.UTC()
	m := 12*t.Year() + int(t.Month())
	idx := sort.Search(len(changes), func(i int) bool {
		return 12*changes[i].year+changes[i].month > m
	})

	if idx <= stepEra {
		return 0
	}
	return idx - stepEra - 1
}

// stepEra is the index of the 1972 January entry, the first whole-second
// offset.
var stepEra = func() int {
	for i, c := range changes {
		if c.drift == nil {
			return i
		}
	}
	return len(changes)
}()
