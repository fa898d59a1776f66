// Package sexa provides a degree-valued angle type with sexagesimal and
// Right Ascension conversions.
package sexa

import (
	"fmt"
	"math"
)

// Angle is an angle in decimal degrees. It is a defined float64 type so it
// can flow through the interpolation engine and ordinary arithmetic alike.
type Angle float64

// FromDMS builds an angle from degrees, arcminutes and arcseconds.
// neg selects the sign of the whole angle, so -0°30'00" is representable.
func FromDMS(neg bool, deg, min int, sec float64) Angle {
	a := Angle(float64(deg) + float64(min)/60 + sec/3600)
	if neg {
		return -a
	}
	return a
}

// FromHMS builds an angle from Right Ascension hours, minutes and seconds
// (1 hour = 15 degrees).
func FromHMS(hour, min int, sec float64) Angle {
	return Angle((float64(hour) + float64(min)/60 + sec/3600) * 15)
}

// FromRad converts radians to an Angle.
func FromRad(rad float64) Angle {
	return Angle(rad * 180 / math.Pi)
}

// Deg returns the angle in decimal degrees.
func (a Angle) Deg() float64 { return float64(a) }

// Rad returns the angle in radians.
func (a Angle) Rad() float64 { return float64(a) * math.Pi / 180 }

// Hours returns the angle as Right Ascension hours.
func (a Angle) Hours() float64 { return float64(a) / 15 }

// Norm normalizes the angle to [0, 360).
func (a Angle) Norm() Angle {
	d := math.Mod(float64(a), 360)
	if d < 0 {
		d += 360
	}
	return Angle(d)
}

// NormHalf normalizes the angle to (-180, 180].
func (a Angle) NormHalf() Angle {
	d := float64(a.Norm())
	if d > 180 {
		d -= 360
	}
	return Angle(d)
}

// Sin returns the sine of the angle.
func (a Angle) Sin() float64 { return math.Sin(a.Rad()) }

// Cos returns the cosine of the angle.
func (a Angle) Cos() float64 { return math.Cos(a.Rad()) }

// Eq reports whether two angles are equal within tol degrees.
func (a Angle) Eq(b Angle, tol float64) bool {
	return math.Abs(float64(a-b)) < tol
}

// DMS splits the angle into sign, degrees, arcminutes and arcseconds.
// Rounding is applied at the arcsecond level so 59.9999" carries into the
// next arcminute.
func (a Angle) DMS() (neg bool, deg, min int, sec float64) {
	d := float64(a)
	if d < 0 {
		neg = true
		d = -d
	}
	// Round to 0.01" before splitting to keep carries consistent.
	total := math.Round(d*360000) / 100 // arcseconds
	deg = int(total / 3600)
	rem := total - float64(deg)*3600
	min = int(rem / 60)
	sec = rem - float64(min)*60
	return neg, deg, min, sec
}

// HMS splits the angle into Right Ascension hours, minutes and seconds.
// The angle is normalized to [0, 360) first.
func (a Angle) HMS() (hour, min int, sec float64) {
	h := float64(a.Norm()) / 15
	total := math.Round(h*360000) / 100 // seconds of RA
	hour = int(total / 3600)
	rem := total - float64(hour)*3600
	min = int(rem / 60)
	sec = rem - float64(min)*60
	return hour, min, sec
}

// String formats the angle as sexagesimal degrees, e.g. `-16°42'58.0"`.
func (a Angle) String() string {
	neg, d, m, s := a.DMS()
	sign := ""
	if neg {
		sign = "-"
	}
	return fmt.Sprintf("%s%d°%02d'%04.1f\"", sign, d, m, s)
}

// RAString formats the angle as Right Ascension, e.g. `6h45m08.9s`.
func (a Angle) RAString() string {
	h, m, s := a.HMS()
	return fmt.Sprintf("%dh%02dm%04.1fs", h, m, s)
}
