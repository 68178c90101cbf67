package solar

import (
	"fmt"
	"time"

	"github.com/subtlepseudonym/skyframe/calendar"
	"github.com/subtlepseudonym/skyframe/leap"
	"github.com/subtlepseudonym/skyframe/timescale"
)

// JulianDate returns the Terrestrial Time Julian date for a particular
// time, including leap seconds.
//
// golang does not support leap seconds, so they must be added.
// Instead, golang uses a leap smear, which is
// how Google production servers handle leap seconds,
// smearing the additional second evenly across 24hrs
// https://developers.google.com/time/smear
func JulianDate(t time.Time) (timescale.TT, error) {
	utc, err := timescale.UTCFromTime(t)
	if err != nil {
		return timescale.TT{}, err
	}

	dat, err := deltaAT(t)
	if err != nil {
		return timescale.TT{}, err
	}

	return timescale.TTFromTAI(timescale.TAIFromUTC(utc, dat)), nil
}

// deltaAT looks up TAI-UTC for the UTC day containing t. Dates before
// 1960 get zero.
func deltaAT(t time.Time) (float64, error) {
	t = t.UTC()
	date, err := calendar.New(t.Year(), int(t.Month()), t.Day())
	if err != nil {
		return 0, fmt.Errorf("calendar date: %w", err)
	}

	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	fraction := t.Sub(midnight).Seconds() / timescale.SecondsPerDay

	dat, _, err := leap.DeltaAT(date, fraction)
	if err != nil {
		return 0, fmt.Errorf("delta AT: %w", err)
	}
	return dat, nil
}
