// Package calendar converts between proleptic Gregorian dates and two-part
// Julian dates.
//
// The integer algorithms are those of Fliegel & Van Flandern as used by the
// IAU SOFA routines cal2jd and jd2cal.
// https://www.iausofa.org
package calendar

import (
	"errors"
	"fmt"
	"math"
)

const (
	MJDZero = 2400000.5 // Julian date of MJD 0

	YearMin = -4799

	// Julian date range accepted by FromJulian. The lower bound is
	// YearMin January 1, 0h, so every date FromJulian returns is one New
	// accepts.
	JulianMin = -31738.5
	JulianMax = 1e9
)

var (
	ErrBadYear   = errors.New("bad year")
	ErrBadMonth  = errors.New("bad month")
	ErrBadDay    = errors.New("bad day")
	ErrBadJulian = errors.New("bad julian date")
	ErrBadFract  = errors.New("bad fraction of day")
)

var monthDays = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// Date is a validated proleptic Gregorian calendar date. Use New to
// construct one.
type Date struct {
	Year  int
	Month int
	Day   int
}

// New validates year, month and day and returns the corresponding Date.
func New(year, month, day int) (Date, error) {
	if year < YearMin {
		return Date{}, fmt.Errorf("%w: %d", ErrBadYear, year)
	}

	if month < 1 || month > 12 {
		return Date{}, fmt.Errorf("%w: %d", ErrBadMonth, month)
	}

	if day < 1 || day > DaysIn(year, month) {
		return Date{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrBadDay, year, month, day)
	}

	return Date{Year: year, Month: month, Day: day}, nil
}

// IsLeap reports whether year is a Gregorian leap year.
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysIn returns the length of a month. The month must be in 1..12.
func DaysIn(year, month int) int {
	if month == 2 && IsLeap(year) {
		return 29
	}
	return monthDays[month-1]
}

// Julian returns the date as a two-part Julian date for 0h: the MJD zero
// point and the Modified Julian Date. The day fraction is left to the
// caller so that it can be added to the smaller part.
func (d Date) Julian() (djm0, djm float64) {
	my := (d.Month - 14) / 12
	iypmy := d.Year + my
	mjd := (1461*(iypmy+4800))/4 +
		(367*(d.Month-2-12*my))/12 -
		(3*((iypmy+4900)/100))/4 +
		d.Day - 2432076

	return MJDZero, float64(mjd)
}

// FromJulian returns the calendar date and fraction of day for the
// two-part Julian date dj1+dj2. The split between the parts is arbitrary;
// precision is best when one part is a whole or half day.
func FromJulian(dj1, dj2 float64) (Date, float64, error) {
	dj := dj1 + dj2
	if dj < JulianMin || dj > JulianMax {
		return Date{}, 0, fmt.Errorf("%w: %f", ErrBadJulian, dj)
	}

	// big part first, then re-align to midnight
	d1, d2 := dj1, dj2
	if math.Abs(dj1) < math.Abs(dj2) {
		d1, d2 = dj2, dj1
	}
	d2 -= 0.5

	f1 := math.Mod(d1, 1)
	f2 := math.Mod(d2, 1)
	f := math.Mod(f1+f2, 1)
	if f < 0 {
		f += 1
	}

	d := math.Round(d1-f1) + math.Round(d2-f2) + math.Round(f1+f2-f)
	jd := int(math.Round(d)) + 1

	l := jd + 68569
	n := (4 * l) / 146097
	l -= (146097*n + 3) / 4
	i := (4000 * (l + 1)) / 1461001
	l -= (1461*i)/4 - 31
	k := (80 * l) / 2447
	day := l - (2447*k)/80
	l = k / 11
	month := k + 2 - 12*l
	year := 100*(n-49) + i + l

	return Date{Year: year, Month: month, Day: day}, f, nil
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}
