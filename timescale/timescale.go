// Package timescale holds two-part Julian dates in the UTC, TAI, TT, TDB
// and UT1 time scales and the offsets between them.
//
// A date is kept as two float64 parts whose sum is the Julian date. The
// parts are never added together inside a computation: the usual split is
// a whole or half day in D1 and the remainder in D2, which keeps the
// fraction of day to the full precision of a float64. Every correction is
// applied to whichever part is smaller in magnitude.
//
//	UTC -> TAI -> TT -> TDB -> earth.PositionVelocity
//	                 -> UT1 -> earth.RotationAngle
package timescale

import (
	"fmt"
	"math"
	"time"

	"github.com/subtlepseudonym/skyframe/calendar"
)

const (
	SecondsPerDay  = 86400.0
	J2000          = 2451545.0 // reference epoch, JD
	DaysPerYear    = 365.25    // Julian year
	DaysPerCentury = 36525.0   // Julian century

	// TT-TAI in seconds
	TTMinusTAI = 32.184
)

type UTC struct{ D1, D2 float64 }

type TAI struct{ D1, D2 float64 }

type TT struct{ D1, D2 float64 }

type TDB struct{ D1, D2 float64 }

type UT1 struct{ D1, D2 float64 }

// shift adds days to the smaller part of a two-part date.
func shift(d1, d2, days float64) (float64, float64) {
	if math.Abs(d1) > math.Abs(d2) {
		return d1, d2 + days
	}
	return d1 + days, d2
}

// Total collapses the date into a single Julian date. It loses precision
// and is meant for display only.
func (t UTC) Total() float64 { return t.D1 + t.D2 }
func (t TAI) Total() float64 { return t.D1 + t.D2 }
func (t TT) Total() float64  { return t.D1 + t.D2 }
func (t TDB) Total() float64 { return t.D1 + t.D2 }
func (t UT1) Total() float64 { return t.D1 + t.D2 }

// Centuries returns Julian centuries elapsed since J2000.
func (t TT) Centuries() float64 {
	return ((t.D1 - J2000) + t.D2) / DaysPerCentury
}

// Centuries returns Julian centuries elapsed since J2000.
func (t TDB) Centuries() float64 {
	return ((t.D1 - J2000) + t.D2) / DaysPerCentury
}

// TAIFromUTC applies TAI-UTC, dat seconds, typically from leap.DeltaAT.
func TAIFromUTC(utc UTC, dat float64) TAI {
	d1, d2 := shift(utc.D1, utc.D2, dat/SecondsPerDay)
	return TAI{d1, d2}
}

func UTCFromTAI(tai TAI, dat float64) UTC {
	d1, d2 := shift(tai.D1, tai.D2, -dat/SecondsPerDay)
	return UTC{d1, d2}
}

func TTFromTAI(tai TAI) TT {
	d1, d2 := shift(tai.D1, tai.D2, TTMinusTAI/SecondsPerDay)
	return TT{d1, d2}
}

func TAIFromTT(tt TT) TAI {
	d1, d2 := shift(tt.D1, tt.D2, -TTMinusTAI/SecondsPerDay)
	return TAI{d1, d2}
}

// TDBFromTT applies TDB-TT, dtr seconds. The quantity is dominated by a
// 1.7ms annual term and is supplied by the caller.
func TDBFromTT(tt TT, dtr float64) TDB {
	d1, d2 := shift(tt.D1, tt.D2, dtr/SecondsPerDay)
	return TDB{d1, d2}
}

func TTFromTDB(tdb TDB, dtr float64) TT {
	d1, d2 := shift(tdb.D1, tdb.D2, -dtr/SecondsPerDay)
	return TT{d1, d2}
}

// UT1FromTT subtracts classical Delta T = TT-UT1, dt seconds.
func UT1FromTT(tt TT, dt float64) UT1 {
	d1, d2 := shift(tt.D1, tt.D2, -dt/SecondsPerDay)
	return UT1{d1, d2}
}

func TTFromUT1(ut1 UT1, dt float64) TT {
	d1, d2 := shift(ut1.D1, ut1.D2, dt/SecondsPerDay)
	return TT{d1, d2}
}

// UT1FromUTC applies UT1-UTC, dut1 seconds, as published by the IERS.
func UT1FromUTC(utc UTC, dut1 float64) UT1 {
	d1, d2 := shift(utc.D1, utc.D2, dut1/SecondsPerDay)
	return UT1{d1, d2}
}

// UTCFromTime returns the two-part UTC Julian date of t: the MJD zero
// point in D1 and the MJD plus fraction of day in D2.
//
// Go's time package smears leap seconds rather than representing them, so
// an instant inside an inserted second cannot be expressed here.
func UTCFromTime(t time.Time) (UTC, error) {
	t = t.UTC()
	date, err := calendar.New(t.Year(), int(t.Month()), t.Day())
	if err != nil {
		return UTC{}, fmt.Errorf("calendar date: %w", err)
	}

	second := float64(t.Second()) + float64(t.Nanosecond())/1e9
	tod, err := calendar.NewTimeOfDay(t.Hour(), t.Minute(), second)
	if err != nil {
		return UTC{}, fmt.Errorf("time of day: %w", err)
	}

	d1, d2 := calendar.DateTime{Date: date, Time: tod}.Julian()
	return UTC{d1, d2}, nil
}
