// Package fundargs evaluates the fundamental arguments of nutation theory
// as given in the IERS Conventions (2003).
//
// Every function takes t in Julian centuries of TDB since J2000. TT may be
// used instead with negligible loss. Angles are in radians; the Delaunay
// arguments are reduced with math.Mod so they keep the sign of the
// polynomial.
package fundargs

import (
	"math"

	"github.com/subtlepseudonym/skyframe/vecmat"
)

func arcsec(t float64, c0, c1, c2, c3, c4 float64) float64 {
	p := c0 + t*(c1+t*(c2+t*(c3+t*c4)))
	return math.Mod(p, vecmat.TurnArcsec) * vecmat.ArcsecToRad
}

func longitude(t, c0, c1 float64) float64 {
	return math.Mod(c0+c1*t, vecmat.TwoPi)
}

// L is the mean anomaly of the Moon.
func L(t float64) float64 {
	return arcsec(t, 485868.249036, 1717915923.2178, 31.8792, 0.051635, -0.00024470)
}

// Lp is the mean anomaly of the Sun.
func Lp(t float64) float64 {
	return arcsec(t, 1287104.793048, 129596581.0481, -0.5532, 0.000136, -0.00001149)
}

// F is the mean longitude of the Moon minus that of its ascending node.
func F(t float64) float64 {
	return arcsec(t, 335779.526232, 1739527262.8478, -12.7512, -0.001037, 0.00000417)
}

// D is the mean elongation of the Moon from the Sun.
func D(t float64) float64 {
	return arcsec(t, 1072260.703692, 1602961601.2090, -6.3706, 0.006593, -0.00003169)
}

// Om is the mean longitude of the Moon's ascending node.
func Om(t float64) float64 {
	return arcsec(t, 450160.398036, -6962890.5431, 7.4722, 0.007702, -0.00005939)
}

// Planetary mean longitudes, Souchay et al. (1999) after Simon et al. (1994).
// The 2000B nutation in frames replaces the planetary terms with fixed
// offsets, so these and Pa serve callers summing the full 2000A planetary
// series.

func Me(t float64) float64 { return longitude(t, 4.402608842, 2608.7903141574) }
func Ve(t float64) float64 { return longitude(t, 3.176146697, 1021.3285546211) }
func E(t float64) float64  { return longitude(t, 1.753470314, 628.3075849991) }
func Ma(t float64) float64 { return longitude(t, 6.203480913, 334.0612426700) }
func Ju(t float64) float64 { return longitude(t, 0.599546497, 52.9690962641) }
func Sa(t float64) float64 { return longitude(t, 0.874016757, 21.3299104960) }
func Ur(t float64) float64 { return longitude(t, 5.481293872, 7.4781598567) }
func Ne(t float64) float64 { return longitude(t, 5.311886287, 3.8133035638) }

// Pa is the general accumulated precession in longitude. It is not reduced.
func Pa(t float64) float64 {
	return (0.024381750 + 0.00000538691*t) * t
}

// Delaunay holds the five luni-solar arguments at one instant.
type Delaunay struct {
	L, Lp, F, D, Om float64
}

// Arguments evaluates all five luni-solar arguments.
func Arguments(t float64) Delaunay {
	return Delaunay{
		L:  L(t),
		Lp: Lp(t),
		F:  F(t),
		D:  D(t),
		Om: Om(t),
	}
}

// Linear evaluates the luni-solar arguments from the linear terms of
// Simon et al. (1994) only, the form the IAU 2000B nutation model is
// fitted to. The constant terms of L' and D are rounded differently from
// the full polynomials.
func Linear(t float64) Delaunay {
	lin := func(c0, c1 float64) float64 {
		return math.Mod(c0+c1*t, vecmat.TurnArcsec) * vecmat.ArcsecToRad
	}

	return Delaunay{
		L:  lin(485868.249036, 1717915923.2178),
		Lp: lin(1287104.79305, 129596581.0481),
		F:  lin(335779.526232, 1739527262.8478),
		D:  lin(1072260.70369, 1602961601.2090),
		Om: lin(450160.398036, -6962890.5431),
	}
}
