package solar

import (
	"math"

	"github.com/subtlepseudonym/skyframe/vecmat"
)

// Low precision sun, after the sunrise equation
// https://en.wikipedia.org/wiki/Sunrise_equation
// Angles are in degrees and dates in days since J2000. The results are
// good to a minute or two and only seed the search in sunset.go.

const (
	obliquity        = 23.4397  // degrees
	perihelion       = 102.9372 // argument of perihelion, degrees
	StandardAltitude = -0.833   // refraction and solar semidiameter, degrees
)

// MeanSolarNoon approximates solar noon for the mean sun
// for a given day at a given longitude.
// For the purpose of this calculation, longitude is degrees
// east, with negative values for degrees west.
func MeanSolarNoon(day, longitudeEast float64) float64 {
	return day - longitudeEast/360
}

// SolarMeanAnomaly calculates the fraction of the sun's
// orbital period elapsed since perihelion, in degrees.
func SolarMeanAnomaly(meanSolarNoon float64) float64 {
	return math.Mod(357.5291+(0.98560028*meanSolarNoon), 360)
}

// EquationOfTheCenter calculates the angular difference
// between the position of the actual sun (with an elliptical
// orbit) and the mean sun (with a circular orbit). This
// can be expressed as a function of mean anomaly and
// orbital eccentricity.
//
// https://en.wikipedia.org/wiki/Equation_of_the_center
func EquationOfTheCenter(meanAnomaly float64) float64 {
	m := meanAnomaly * vecmat.Degree
	firstOrder := 1.9148 * math.Sin(m)
	secondOrder := 0.02 * math.Sin(2*m)
	thirdOrder := 0.0003 * math.Sin(3*m)

	return firstOrder + secondOrder + thirdOrder
}

// EclipticLongitude calculates the sun's distance along the
// ecliptic
func EclipticLongitude(meanAnomaly, center float64) float64 {
	return math.Mod(meanAnomaly+center+180+perihelion, 360)
}

// SolarTransit corrects the mean solar noon for the eccentricity of the
// orbit and the obliquity of the ecliptic.
func SolarTransit(meanSolarNoon, meanAnomaly, eclipticLongitude float64) float64 {
	return meanSolarNoon +
		0.0053*math.Sin(meanAnomaly*vecmat.Degree) -
		0.0069*math.Sin(2*eclipticLongitude*vecmat.Degree)
}

// Declination of the sun for an ecliptic longitude.
func Declination(eclipticLongitude float64) float64 {
	s := math.Sin(eclipticLongitude*vecmat.Degree) * math.Sin(obliquity*vecmat.Degree)
	return math.Asin(s) / vecmat.Degree
}

// HourAngle returns the hour angle at which the sun reaches altitude at a
// latitude. ok is false if it never does that day.
func HourAngle(latitude, declination, altitude float64) (angle float64, ok bool) {
	phi := latitude * vecmat.Degree
	delta := declination * vecmat.Degree
	c := (math.Sin(altitude*vecmat.Degree) - math.Sin(phi)*math.Sin(delta)) /
		(math.Cos(phi) * math.Cos(delta))
	if c < -1 || c > 1 {
		return 0, false
	}
	return math.Acos(c) / vecmat.Degree, true
}
