package calendar

import (
	"errors"
	"fmt"
	"math"
)

const SecondsPerDay = 86400

var (
	ErrBadHour   = errors.New("bad hour")
	ErrBadMinute = errors.New("bad minute")
	ErrBadSecond = errors.New("bad second")
)

// TimeOfDay is a clock reading within a day. Second may carry a fractional
// part. Hour runs 0 to 23, except for the end-of-day reading 24:00:00 that
// TimeOfDayFromFraction returns for a whole day; NewTimeOfDay rejects it.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second float64
}

func NewTimeOfDay(hour, minute int, second float64) (TimeOfDay, error) {
	if hour < 0 || hour > 23 {
		return TimeOfDay{}, fmt.Errorf("%w: %d", ErrBadHour, hour)
	}
	if minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("%w: %d", ErrBadMinute, minute)
	}
	if second < 0 || second >= 60 {
		return TimeOfDay{}, fmt.Errorf("%w: %f", ErrBadSecond, second)
	}

	return TimeOfDay{Hour: hour, Minute: minute, Second: second}, nil
}

// TimeOfDayFromFraction splits a fraction of a day into hours, minutes and
// seconds. The whole seconds are split with integer arithmetic and the
// sub-second residue is added back afterwards so that no rounding error
// leaks into the hour and minute fields.
//
// A fraction of exactly 1 yields 24:00:00, the end of the day.
func TimeOfDayFromFraction(f float64) (TimeOfDay, error) {
	if f < 0 || f > 1 || math.IsNaN(f) {
		return TimeOfDay{}, fmt.Errorf("%w: %f", ErrBadFract, f)
	}

	s := SecondsPerDay * f
	whole, frac := math.Modf(s)
	t := int(whole)

	return TimeOfDay{
		Hour:   t / 3600,
		Minute: (t % 3600) / 60,
		Second: float64(t%60) + frac,
	}, nil
}

// Fraction returns the time of day as a fraction of a day.
func (t TimeOfDay) Fraction() float64 {
	return (t.Second + 60*(float64(t.Minute)+60*float64(t.Hour))) / SecondsPerDay
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%09.6f", t.Hour, t.Minute, t.Second)
}

// DateTime pairs a calendar date with a time of day.
type DateTime struct {
	Date Date
	Time TimeOfDay
}

// Julian returns the two-part Julian date of the instant. The time of day
// is added to the smaller part.
func (dt DateTime) Julian() (float64, float64) {
	djm0, djm := dt.Date.Julian()
	return djm0, djm + dt.Time.Fraction()
}

func DateTimeFromJulian(dj1, dj2 float64) (DateTime, error) {
	date, fd, err := FromJulian(dj1, dj2)
	if err != nil {
		return DateTime{}, err
	}

	tod, err := TimeOfDayFromFraction(fd)
	if err != nil {
		return DateTime{}, err
	}

	return DateTime{Date: date, Time: tod}, nil
}

func (dt DateTime) String() string {
	return fmt.Sprintf("%s %s", dt.Date, dt.Time)
}
