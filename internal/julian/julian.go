// Package julian converts between civil time, Julian Days and sidereal time.
package julian

import (
	"math"
	"time"

	"github.com/litescript/ls-almanac/internal/sexa"
)

// J2000 is the Julian Day of the standard epoch J2000.0 (2000 Jan 1.5 TT).
const J2000 = 2451545.0

// DaysPerCentury is the length of a Julian century in days.
const DaysPerCentury = 36525.0

// FromTime returns the Julian Day for a civil time. The time is converted
// to UTC first.
func FromTime(t time.Time) float64 {
	t = t.UTC()

	dayFrac := (float64(t.Hour()) +
		float64(t.Minute())/60 +
		float64(t.Second())/3600 +
		float64(t.Nanosecond())/3600e9) / 24

	return FromCalendar(t.Year(), int(t.Month()), float64(t.Day())+dayFrac)
}

// FromCalendar returns the Julian Day for a Gregorian calendar date. The
// day may carry a time-of-day fraction.
func FromCalendar(year, month int, day float64) float64 {
	y, m := float64(year), float64(month)

	// January and February count as months 13 and 14 of the previous year.
	if m <= 2 {
		y--
		m += 12
	}

	a := math.Floor(y / 100)
	b := 2 - a + math.Floor(a/4)

	return math.Floor(365.25*(y+4716)) +
		math.Floor(30.6001*(m+1)) +
		day + b - 1524.5
}

// ToCalendar converts a Julian Day back to a Gregorian calendar date. The
// returned day carries the time-of-day fraction.
func ToCalendar(jd float64) (year, month int, day float64) {
	z := math.Floor(jd + 0.5)
	f := jd + 0.5 - z

	a := z
	if z >= 2299161 {
		alpha := math.Floor((z - 1867216.25) / 36524.25)
		a = z + 1 + alpha - math.Floor(alpha/4)
	}

	b := a + 1524
	c := math.Floor((b - 122.1) / 365.25)
	d := math.Floor(365.25 * c)
	e := math.Floor((b - d) / 30.6001)

	day = b - d - math.Floor(30.6001*e) + f
	if e < 14 {
		month = int(e) - 1
	} else {
		month = int(e) - 13
	}
	if month > 2 {
		year = int(c) - 4716
	} else {
		year = int(c) - 4715
	}
	return year, month, day
}

// ToTime converts a Julian Day to a UTC time.Time.
func ToTime(jd float64) time.Time {
	year, month, day := ToCalendar(jd)
	d := math.Floor(day)
	frac := day - d

	secs := frac * 86400
	h := int(secs / 3600)
	m := int(secs/60) - h*60
	s := secs - float64(h)*3600 - float64(m)*60
	sec := int(s)
	ns := int((s - float64(sec)) * 1e9)

	return time.Date(year, time.Month(month), int(d), h, m, sec, ns, time.UTC)
}

// Centuries returns Julian centuries elapsed since J2000.0.
func Centuries(jd float64) float64 {
	return (jd - J2000) / DaysPerCentury
}

// GMST returns the Greenwich Mean Sidereal Time for a Julian Day as an
// angle, using the IAU 1982 formula.
func GMST(jd float64) sexa.Angle {
	t := Centuries(jd)
	gmst := 280.46061837 +
		360.98564736629*(jd-J2000) +
		0.000387933*t*t -
		t*t*t/38710000
	return sexa.Angle(gmst).Norm()
}

// LST returns the Local Mean Sidereal Time for a Julian Day at an east
// longitude given in degrees.
func LST(jd, lonDeg float64) sexa.Angle {
	return (GMST(jd) + sexa.Angle(lonDeg)).Norm()
}
