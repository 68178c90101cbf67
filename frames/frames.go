// Package frames implements the IAU 2000B precession-nutation model and
// the chain of rotations from the Geocentric Celestial Reference System to
// the International Terrestrial Reference System:
//
//	[TRS] = RPOM * Rz(ERA) * RC2I * [CRS]
//
// RC2I comes from the bias-precession-nutation matrix through the CIP
// coordinates X, Y and the CIO locator s. The locator is taken as zero,
// which costs at most 0.1 arcsecond over 1900-2100.
package frames

import (
	"math"

	"github.com/subtlepseudonym/skyframe/earth"
	"github.com/subtlepseudonym/skyframe/fundargs"
	"github.com/subtlepseudonym/skyframe/timescale"
	"github.com/subtlepseudonym/skyframe/vecmat"
)

const nutationTerms = 77

const (
	// 0.1 microarcsecond
	unitToRad = vecmat.ArcsecToRad / 1e7

	// fixed offsets standing in for the planetary nutation terms
	planetaryDpsi = -0.135 * vecmat.MilliarcsecToRad
	planetaryDeps = 0.388 * vecmat.MilliarcsecToRad

	// J2000 obliquity, Lieske et al. 1977
	eps0 = 84381.448 * vecmat.ArcsecToRad
)

// Nutation returns the nutation in longitude and obliquity, IAU 2000B, in
// radians. The series is summed smallest term first.
func Nutation(tt timescale.TT) (dpsi, deps float64) {
	t := tt.Centuries()
	a := fundargs.Linear(t)

	var dp, de float64
	for i := nutationTerms - 1; i >= 0; i-- {
		n := &nals[i]
		arg := math.Mod(float64(n[0])*a.L+
			float64(n[1])*a.Lp+
			float64(n[2])*a.F+
			float64(n[3])*a.D+
			float64(n[4])*a.Om, vecmat.TwoPi)
		sarg := math.Sin(arg)
		carg := math.Cos(arg)

		c := &cls[i]
		dp += (c[0]+c[1]*t)*sarg + c[2]*carg
		de += (c[3]+c[4]*t)*carg + c[5]*sarg
	}

	return dp*unitToRad + planetaryDpsi, de*unitToRad + planetaryDeps
}

// PrecessionRate returns the IAU 2000 corrections to the IAU 1976
// precession rates in longitude and obliquity.
func PrecessionRate(tt timescale.TT) (dpsipr, depspr float64) {
	const (
		precor = -0.29965 * vecmat.ArcsecToRad
		oblcor = -0.02524 * vecmat.ArcsecToRad
	)
	t := tt.Centuries()
	return precor * t, oblcor * t
}

// MeanObliquity returns the mean obliquity of the ecliptic, IAU 1980.
func MeanObliquity(tt timescale.TT) float64 {
	t := tt.Centuries()
	return vecmat.ArcsecToRad * (84381.448 + (-46.8150+(-0.00059+0.001813*t)*t)*t)
}

// FrameBias returns the frame bias components of the IAU 2000
// precession-nutation model: longitude and obliquity corrections and the
// ICRS right ascension of the J2000 mean equinox.
func FrameBias() (dpsibi, depsbi, dra float64) {
	return -0.041775 * vecmat.ArcsecToRad,
		-0.0068192 * vecmat.ArcsecToRad,
		-0.0146 * vecmat.ArcsecToRad
}

// BiasAndPrecession returns the frame bias matrix, the precession matrix
// and their product, IAU 2000.
func BiasAndPrecession(tt timescale.TT) (rb, rp, rbp vecmat.Mat3) {
	t := tt.Centuries()
	dpsibi, depsbi, dra := FrameBias()

	// IAU 1976 precession angles
	psia77 := (5038.7784 + (-1.07259+(-0.001147)*t)*t) * t * vecmat.ArcsecToRad
	oma77 := eps0 + ((0.05127+(-0.007726)*t)*t)*t*vecmat.ArcsecToRad
	chia := (10.5526 + (-2.38064+(-0.001125)*t)*t) * t * vecmat.ArcsecToRad

	dpsipr, depspr := PrecessionRate(tt)
	psia := psia77 + dpsipr
	oma := oma77 + depspr

	rb = vecmat.Identity().
		Rotate(vecmat.AxisZ, dra).
		Rotate(vecmat.AxisY, dpsibi*math.Sin(eps0)).
		Rotate(vecmat.AxisX, -depsbi)

	rp = vecmat.Identity().
		Rotate(vecmat.AxisX, eps0).
		Rotate(vecmat.AxisZ, -psia).
		Rotate(vecmat.AxisX, -oma).
		Rotate(vecmat.AxisZ, chia)

	return rb, rp, rp.Compose(rb)
}

// NutationMatrix forms the matrix of nutation from the mean obliquity and
// the nutation components.
func NutationMatrix(epsa, dpsi, deps float64) vecmat.Mat3 {
	return vecmat.Identity().
		Rotate(vecmat.AxisX, epsa).
		Rotate(vecmat.AxisZ, -dpsi).
		Rotate(vecmat.AxisX, -(epsa + deps))
}

// PrecessionNutation gathers the intermediate products of the
// precession-nutation computation for one date.
type PrecessionNutation struct {
	Dpsi, Deps float64     // nutation
	Epsa       float64     // mean obliquity of date
	RB         vecmat.Mat3 // frame bias
	RP         vecmat.Mat3 // precession
	RBP        vecmat.Mat3 // bias-precession
	RN         vecmat.Mat3 // nutation
	RBPN       vecmat.Mat3 // GCRS to true equator and equinox of date
}

// NewPrecessionNutation evaluates the IAU 2000B nutation and builds the
// full precession-nutation chain from it.
func NewPrecessionNutation(tt timescale.TT) PrecessionNutation {
	dpsi, deps := Nutation(tt)
	return PrecessionNutationWith(tt, dpsi, deps)
}

// PrecessionNutationWith builds the chain from caller-supplied nutation,
// for instance a model with more terms or observed corrections.
func PrecessionNutationWith(tt timescale.TT, dpsi, deps float64) PrecessionNutation {
	_, depspr := PrecessionRate(tt)
	epsa := MeanObliquity(tt) + depspr
	rb, rp, rbp := BiasAndPrecession(tt)
	rn := NutationMatrix(epsa, dpsi, deps)

	return PrecessionNutation{
		Dpsi: dpsi,
		Deps: deps,
		Epsa: epsa,
		RB:   rb,
		RP:   rp,
		RBP:  rbp,
		RN:   rn,
		RBPN: rn.Compose(rbp),
	}
}

// PrecessionNutationMatrix returns the bias-precession-nutation matrix,
// IAU 2000B.
func PrecessionNutationMatrix(tt timescale.TT) vecmat.Mat3 {
	return NewPrecessionNutation(tt).RBPN
}

// CIPXY extracts the coordinates of the Celestial Intermediate Pole from a
// bias-precession-nutation matrix.
func CIPXY(rbpn vecmat.Mat3) (x, y float64) {
	return rbpn[2][0], rbpn[2][1]
}

// CIOLocator returns s, the CIO locator. The IAU 2000 series for s is not
// evaluated; the quantity stays below 0.1 arcsecond in 1900-2100 and is
// returned as zero.
func CIOLocator(tt timescale.TT, x, y float64) float64 {
	return 0
}

// CelestialToIntermediateXYS forms the celestial to intermediate matrix
// from the CIP coordinates and the CIO locator.
func CelestialToIntermediateXYS(x, y, s float64) vecmat.Mat3 {
	r2 := x*x + y*y
	var e float64
	if r2 > 0 {
		e = math.Atan2(y, x)
	}
	d := math.Atan(math.Sqrt(r2 / (1 - r2)))

	return vecmat.Identity().
		Rotate(vecmat.AxisZ, e).
		Rotate(vecmat.AxisY, d).
		Rotate(vecmat.AxisZ, -(e + s))
}

// CelestialToIntermediateBPN forms the celestial to intermediate matrix
// from a known bias-precession-nutation matrix.
func CelestialToIntermediateBPN(tt timescale.TT, rbpn vecmat.Mat3) vecmat.Mat3 {
	x, y := CIPXY(rbpn)
	return CelestialToIntermediateXYS(x, y, CIOLocator(tt, x, y))
}

// CelestialToIntermediate forms the celestial to intermediate matrix,
// IAU 2000B.
func CelestialToIntermediate(tt timescale.TT) vecmat.Mat3 {
	return CelestialToIntermediateBPN(tt, PrecessionNutationMatrix(tt))
}

// CelestialToTerrestrialCIO assembles the celestial to terrestrial matrix
// from its CIO-based components.
func CelestialToTerrestrialCIO(rc2i vecmat.Mat3, era float64, rpom vecmat.Mat3) vecmat.Mat3 {
	return rpom.Compose(rc2i.Rotate(vecmat.AxisZ, era))
}

// CelestialToTerrestrial forms the matrix rotating GCRS vectors into the
// ITRS at the given TT and UT1, IAU 2000B. xp and yp are the pole
// coordinates in radians. The TIO locator s' is ignored.
func CelestialToTerrestrial(tt timescale.TT, ut1 timescale.UT1, xp, yp float64) vecmat.Mat3 {
	rc2i := CelestialToIntermediate(tt)
	era := earth.RotationAngle(ut1)
	rpom := earth.PolarMotion(xp, yp, 0)
	return CelestialToTerrestrialCIO(rc2i, era, rpom)
}
