// Package solar computes the position of the sun in the sky of an
// observer on the WGS84 ellipsoid and the times it crosses a given
// altitude.
//
// The calculation follows the SOFA cookbook chain: UTC is taken to TAI
// with the leap second table, then to TT, TDB and UT1; the Earth series
// gives the heliocentric position of the Earth in the BCRS, which the
// IAU 2000B celestial to terrestrial matrix rotates into the ITRS.
package solar

import (
	"fmt"
	"time"

	"github.com/subtlepseudonym/skyframe/calendar"
	"github.com/subtlepseudonym/skyframe/earth"
	"github.com/subtlepseudonym/skyframe/ellipsoid"
	"github.com/subtlepseudonym/skyframe/frames"
	"github.com/subtlepseudonym/skyframe/leap"
	"github.com/subtlepseudonym/skyframe/timescale"
	"github.com/subtlepseudonym/skyframe/vecmat"
)

// EOP holds the Earth orientation parameters published by the IERS in
// Bulletin A. The zero value is usable: polar motion amounts to a few
// metres on the ground and |UT1-UTC| never exceeds 0.9s.
type EOP struct {
	DUT1 float64 `json:"dut1" mapstructure:"dut1"` // UT1-UTC, seconds
	XP   float64 `json:"xp" mapstructure:"xp"`     // pole x, arcseconds
	YP   float64 `json:"yp" mapstructure:"yp"`     // pole y, arcseconds
	DTR  float64 `json:"dtr" mapstructure:"dtr"`   // TDB-TT, seconds
}

// EOP2007 are the parameters for 2007 April 5 used in the SOFA cookbook.
var EOP2007 = EOP{
	DUT1: -0.072073685,
	XP:   0.0349282,
	YP:   0.4833163,
}

// Observer is a place and a UTC instant.
type Observer struct {
	Date     calendar.Date
	Time     calendar.TimeOfDay
	Position ellipsoid.Geodetic360
}

// NewObserver splits t into a UTC calendar date and time of day.
func NewObserver(t time.Time, position ellipsoid.Geodetic360) (Observer, error) {
	t = t.UTC()
	date, err := calendar.New(t.Year(), int(t.Month()), t.Day())
	if err != nil {
		return Observer{}, fmt.Errorf("calendar date: %w", err)
	}

	second := float64(t.Second()) + float64(t.Nanosecond())/1e9
	tod, err := calendar.NewTimeOfDay(t.Hour(), t.Minute(), second)
	if err != nil {
		return Observer{}, fmt.Errorf("time of day: %w", err)
	}

	return Observer{Date: date, Time: tod, Position: position}, nil
}

// Calculator holds everything about an observation that does not depend
// on the time offset passed to Compute.
type Calculator struct {
	jd0, jd1 float64 // date at 0h UTC
	fraction float64
	dat      float64
	datKnown bool
	dubious  bool
	eop      EOP
	xp, yp   float64     // radians
	position vecmat.Vec3 // ITRS, metres
	zenith   vecmat.Vec3
}

func NewCalculator(obs Observer, eop EOP) (*Calculator, error) {
	fraction := obs.Time.Fraction()
	jd0, jd1 := obs.Date.Julian()

	dat, known, err := leap.DeltaAT(obs.Date, fraction)
	if err != nil {
		return nil, fmt.Errorf("delta AT: %w", err)
	}

	wgs84, err := ellipsoid.NewConverter(ellipsoid.WGS84)
	if err != nil {
		return nil, fmt.Errorf("wgs84: %w", err)
	}

	gd := obs.Position.Radians()
	position, err := wgs84.ToGeocentric(gd)
	if err != nil {
		return nil, fmt.Errorf("observer position: %w", err)
	}

	return &Calculator{
		jd0:      jd0,
		jd1:      jd1,
		fraction: fraction,
		dat:      dat,
		datKnown: known,
		dubious:  leap.Dubious(obs.Date.Year),
		eop:      eop,
		xp:       eop.XP * vecmat.ArcsecToRad,
		yp:       eop.YP * vecmat.ArcsecToRad,
		position: position,
		zenith:   gd.Zenith(),
	}, nil
}

// Result is one evaluation of the chain. Sun is the vector from the
// observer to the centre of the sun in ITRS axes.
type Result struct {
	Offset       time.Duration
	UTC          timescale.UTC
	DeltaAT      float64
	DeltaATKnown bool
	// DeltaATDubious is set past the leap second table's useful life.
	DeltaATDubious bool
	TAI            timescale.TAI
	TT             timescale.TT
	TDB            timescale.TDB
	UT1            timescale.UT1
	ERA            float64     // radians
	Earth          vecmat.Vec3 // heliocentric, AU
	Position       vecmat.Vec3 // observer, ITRS metres
	Sun            vecmat.Vec3 // ITRS metres
	Zenith         float64     // zenith angle, radians

	// Warning carries earth.ErrDateOutOfRange for dates far from J2000.
	Warning error
}

// Elevation returns the altitude of the centre of the sun above the
// ellipsoid horizon, in degrees.
func (r Result) Elevation() float64 {
	return 90 - r.Zenith/vecmat.Degree
}

// Compute evaluates the sun position offset from the observation instant.
// TAI-UTC is held at its value for the observation date.
func (c *Calculator) Compute(offset time.Duration) Result {
	fraction := c.fraction + offset.Seconds()/timescale.SecondsPerDay

	utc := timescale.UTC{D1: c.jd0, D2: c.jd1 + fraction}
	tai := timescale.TAIFromUTC(utc, c.dat)
	tt := timescale.TTFromTAI(tai)
	ut1 := timescale.UT1FromUTC(utc, c.eop.DUT1)
	tdb := timescale.TDBFromTT(tt, c.eop.DTR)

	pv := earth.Compute(tdb)
	c2t := frames.CelestialToTerrestrial(tt, ut1, c.xp, c.yp)

	sun := pv.Heliocentric.P.Neg().Scale(earth.AU)
	sun = c2t.Apply(sun).Sub(c.position)

	return Result{
		Offset:         offset,
		UTC:            utc,
		DeltaAT:        c.dat,
		DeltaATKnown:   c.datKnown,
		DeltaATDubious: c.dubious,
		TAI:            tai,
		TT:             tt,
		TDB:            tdb,
		UT1:            ut1,
		ERA:            earth.RotationAngle(ut1),
		Earth:          pv.Heliocentric.P,
		Position:       c.position,
		Sun:            sun,
		Zenith:         c.zenith.Angle(sun),
		Warning:        pv.Warning,
	}
}

// Elevation returns the altitude of the sun in degrees seen from position
// at t.
func Elevation(t time.Time, position ellipsoid.Geodetic360, eop EOP) (float64, error) {
	obs, err := NewObserver(t, position)
	if err != nil {
		return 0, err
	}

	calc, err := NewCalculator(obs, eop)
	if err != nil {
		return 0, err
	}

	return calc.Compute(0).Elevation(), nil
}
