// Package earth computes the Earth's position and velocity, its rotation
// angle and the polar motion matrix.
package earth

//go:generate go run gen_series.go -in epv00.c -out series.go

import (
	"errors"
	"math"

	"github.com/subtlepseudonym/skyframe/timescale"
	"github.com/subtlepseudonym/skyframe/vecmat"
)

// AU is the astronomical unit in metres (IAU 2012).
const AU = 149597870.7e3

// ErrDateOutOfRange is reported, never returned, when the series is
// evaluated more than a century from J2000.
var ErrDateOutOfRange = errors.New("date outside 1900-2100 range of the earth series")

// ecliptic to BCRS
const (
	am12 = 0.000000211284
	am13 = -0.000000091603
	am21 = -0.000000230286
	am22 = 0.917482137087
	am23 = -0.397776982902
	am32 = 0.397776982902
	am33 = 0.917482137087
)

type term struct {
	a, b, c float64 // amplitude, phase, frequency
}

type PosVel struct {
	P vecmat.Vec3 // AU
	V vecmat.Vec3 // AU/day
}

// PositionVelocity holds both Earth state vectors relative to the BCRS
// axes. Warning is nil or ErrDateOutOfRange; the vectors are filled in
// either way.
type PositionVelocity struct {
	Heliocentric PosVel
	Barycentric  PosVel
	Warning      error
}

// series accumulates one axis of a T^0, T^1 and T^2 series onto the running
// position and velocity sums.
func series(t float64, k int, t0, t1, t2 *[3][]term, xyz, xyzd *float64) {
	for _, s := range t0[k] {
		p := s.b + s.c*t
		*xyz += s.a * math.Cos(p)
		*xyzd -= s.a * s.c * math.Sin(p)
	}

	for _, s := range t1[k] {
		ct := s.c * t
		p := s.b + ct
		cp := math.Cos(p)
		*xyz += s.a * t * cp
		*xyzd += s.a * (cp - ct*math.Sin(p))
	}

	t2t := t * t
	for _, s := range t2[k] {
		ct := s.c * t
		p := s.b + ct
		cp := math.Cos(p)
		*xyz += s.a * t2t * cp
		*xyzd += s.a * t * (2*cp - ct*math.Sin(p))
	}
}

func toBCRS(v vecmat.Vec3) vecmat.Vec3 {
	x, y, z := v[0], v[1], v[2]
	return vecmat.Vec3{
		x + am12*y + am13*z,
		am21*x + am22*y + am23*z,
		am32*y + am33*z,
	}
}

// Compute evaluates the Earth series at a TDB date. The series is fitted to
// 1900-2100; outside that span the result is still returned, flagged with
// ErrDateOutOfRange.
func Compute(tdb timescale.TDB) PositionVelocity {
	t := ((tdb.D1 - timescale.J2000) + tdb.D2) / timescale.DaysPerYear

	var warning error
	if math.Abs(t) >= 100 {
		warning = ErrDateOutOfRange
	}

	var ph, vh, pb, vb vecmat.Vec3
	for k := 0; k < 3; k++ {
		var xyz, xyzd float64

		series(t, k, &e0, &e1, &e2, &xyz, &xyzd)
		ph[k] = xyz
		vh[k] = xyzd / timescale.DaysPerYear

		// the barycentric sums continue from the heliocentric ones
		series(t, k, &s0, &s1, &s2, &xyz, &xyzd)
		pb[k] = xyz
		vb[k] = xyzd / timescale.DaysPerYear
	}

	return PositionVelocity{
		Heliocentric: PosVel{P: toBCRS(ph), V: toBCRS(vh)},
		Barycentric:  PosVel{P: toBCRS(pb), V: toBCRS(vb)},
		Warning:      warning,
	}
}

// RotationAngle returns the Earth Rotation Angle (IAU 2000) in [0, 2pi).
func RotationAngle(ut1 timescale.UT1) float64 {
	d1, d2 := ut1.D1, ut1.D2
	if d1 > d2 {
		d1, d2 = d2, d1
	}
	t := d1 + (d2 - timescale.J2000)

	// fractional part of the date, kept apart from the large whole days
	f := math.Mod(d1, 1) + math.Mod(d2, 1)

	return vecmat.Anp(vecmat.TwoPi * (f + 0.7790572732640 + 0.00273781191135448*t))
}

// PolarMotion forms the matrix rotating from the Terrestrial Intermediate
// Reference System to the ITRS, IAU 2000: Rx(-yp) Ry(-xp) Rz(sp). xp and yp
// are the pole coordinates and sp the TIO locator, all in radians.
func PolarMotion(xp, yp, sp float64) vecmat.Mat3 {
	return vecmat.Identity().
		Rotate(vecmat.AxisZ, sp).
		Rotate(vecmat.AxisY, -xp).
		Rotate(vecmat.AxisX, -yp)
}

// TIOLocator returns s', the position of the Terrestrial Intermediate
// Origin on the equator of the CIP, in radians.
func TIOLocator(tt timescale.TT) float64 {
	return -47e-6 * tt.Centuries() * vecmat.ArcsecToRad
}
