package solar

import (
	"errors"
	"fmt"
	"time"

	"github.com/subtlepseudonym/skyframe/calendar"
	"github.com/subtlepseudonym/skyframe/ellipsoid"
	"github.com/subtlepseudonym/skyframe/timescale"
)

var (
	ErrNoSunset  = errors.New("sun does not set")
	ErrNoSunrise = errors.New("sun does not rise")
)

const (
	scanStep  = 10 * time.Minute
	scanLimit = 14 * time.Hour
	precision = time.Second
)

// Sunset returns the time the centre of the sun sinks below the standard
// altitude on the calendar day of day, as seen in day's location. The
// result is in that location too.
func Sunset(position ellipsoid.Geodetic360, day time.Time, eop EOP) (time.Time, error) {
	return crossing(position, day, eop, StandardAltitude, false)
}

// Sunrise is the morning counterpart of Sunset.
func Sunrise(position ellipsoid.Geodetic360, day time.Time, eop EOP) (time.Time, error) {
	return crossing(position, day, eop, StandardAltitude, true)
}

// Crossing returns the time the sun passes altitude degrees, rising or
// setting, on the calendar day of day.
func Crossing(position ellipsoid.Geodetic360, day time.Time, eop EOP, altitude float64, rising bool) (time.Time, error) {
	return crossing(position, day, eop, altitude, rising)
}

func crossing(position ellipsoid.Geodetic360, day time.Time, eop EOP, altitude float64, rising bool) (time.Time, error) {
	noErr := ErrNoSunset
	if rising {
		noErr = ErrNoSunrise
	}

	year, month, d := day.Date()
	date, err := calendar.New(year, int(month), d)
	if err != nil {
		return time.Time{}, fmt.Errorf("calendar date: %w", err)
	}

	calc, err := NewCalculator(Observer{Date: date, Position: position}, eop)
	if err != nil {
		return time.Time{}, err
	}

	// above is positive while the sun is higher than altitude
	above := func(offset time.Duration) float64 {
		return calc.Compute(offset).Elevation() - altitude
	}

	transit, estimate, ok := approximate(date, position, altitude, rising)

	// a bracket around the estimate holds the crossing unless the sun is
	// barely grazing the horizon
	var lo, hi time.Duration
	found := false
	if ok {
		lo, hi = estimate-30*time.Minute, estimate+30*time.Minute
		found = straddles(above(lo), above(hi), rising)
	}

	if !found {
		// walk away from transit, where the sun is highest
		if above(transit) < 0 {
			return time.Time{}, fmt.Errorf("%w on %s at %s", noErr, date, position)
		}

		step := scanStep
		if rising {
			step = -scanStep
		}
		prev := transit
		prevAbove := above(prev)
		for n := time.Duration(1); n*scanStep <= scanLimit; n++ {
			next := transit + n*step
			nextAbove := above(next)
			if prevAbove >= 0 && nextAbove < 0 {
				lo, hi = prev, next
				if rising {
					lo, hi = next, prev
				}
				found = true
				break
			}
			prev, prevAbove = next, nextAbove
		}
	}

	if !found {
		return time.Time{}, fmt.Errorf("%w on %s at %s", noErr, date, position)
	}

	for hi-lo > precision {
		mid := lo + (hi-lo)/2
		if (above(mid) >= 0) != rising {
			lo = mid
		} else {
			hi = mid
		}
	}

	midnight := time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
	return midnight.Add(lo + (hi-lo)/2).Round(precision).In(day.Location()), nil
}

// straddles reports whether the sun crosses the altitude in the right
// direction between two samples.
func straddles(lo, hi float64, rising bool) bool {
	if rising {
		return lo < 0 && hi >= 0
	}
	return lo >= 0 && hi < 0
}

// approximate returns the offsets from 0h UTC on date of the solar transit
// and of the requested crossing, using the low precision sun. ok is false
// when the low precision sun never reaches altitude.
func approximate(date calendar.Date, position ellipsoid.Geodetic360, altitude float64, rising bool) (transit, estimate time.Duration, ok bool) {
	jd0, jd1 := date.Julian()
	midnight := (jd0 - timescale.J2000) + jd1

	noon := MeanSolarNoon(midnight+0.5, position.Longitude)
	anomaly := SolarMeanAnomaly(noon)
	longitude := EclipticLongitude(anomaly, EquationOfTheCenter(anomaly))
	t := SolarTransit(noon, anomaly, longitude) - midnight

	transit = days(t)

	omega, ok := HourAngle(position.Latitude, Declination(longitude), altitude)
	if !ok {
		return transit, 0, false
	}
	if rising {
		omega = -omega
	}
	return transit, days(t + omega/360), true
}

func days(d float64) time.Duration {
	return time.Duration(d * timescale.SecondsPerDay * float64(time.Second))
}
