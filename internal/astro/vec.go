// Package astro provides astronomical reference frames, coordinate
// transformations and sky math.
package astro

import (
	"fmt"
	"math"
)

// AU is the Astronomical Unit in kilometers.
const AU = 149597870.7

// LightTimePerAU is the one-way light time for 1 AU, in seconds.
const LightTimePerAU = 499.005

// Vec3 represents a 3D vector in any reference frame.
type Vec3 struct {
	X, Y, Z float64
}

// Norm returns the magnitude of the vector.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalized returns a unit vector in the same direction.
func (v Vec3) Normalized() Vec3 {
	n := v.Norm()
	if n == 0 {
		return Vec3{}
	}
	return Vec3{X: v.X / n, Y: v.Y / n, Z: v.Z / n}
}

// Scale returns the vector scaled by a factor.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Add returns the sum of two vectors.
func (v Vec3) Add(u Vec3) Vec3 {
	return Vec3{X: v.X + u.X, Y: v.Y + u.Y, Z: v.Z + u.Z}
}

// Sub returns the difference of two vectors.
func (v Vec3) Sub(u Vec3) Vec3 {
	return Vec3{X: v.X - u.X, Y: v.Y - u.Y, Z: v.Z - u.Z}
}

// EclipticLatitude returns the ecliptic latitude in degrees for a vector in
// ecliptic coordinates.
func EclipticLatitude(v Vec3) float64 {
	r := v.Norm()
	if r == 0 {
		return 0
	}
	return radToDeg(math.Asin(v.Z / r))
}

// EclipticLongitude returns the ecliptic longitude in degrees for a vector
// in ecliptic coordinates.
func EclipticLongitude(v Vec3) float64 {
	lon := radToDeg(math.Atan2(v.Y, v.X))
	if lon < 0 {
		lon += 360
	}
	return lon
}

// RotateX rotates the vector around the X axis by an angle given in
// radians. Used for ecliptic/equatorial frame changes, where the rotation
// angle is the obliquity.
func (v Vec3) RotateX(rad float64) Vec3 {
	c, s := math.Cos(rad), math.Sin(rad)
	return Vec3{
		X: v.X,
		Y: v.Y*c + v.Z*s,
		Z: -v.Y*s + v.Z*c,
	}
}

// EquatorialToEcliptic rotates an equatorial XYZ vector into the ecliptic
// frame using the J2000 mean obliquity. Units are preserved.
func EquatorialToEcliptic(eq Vec3) Vec3 {
	return eq.RotateX(degToRad(ObliquityJ2000))
}

// EclipticToEquatorial rotates an ecliptic XYZ vector into the equatorial
// frame using the J2000 mean obliquity.
func EclipticToEquatorial(ecl Vec3) Vec3 {
	return ecl.RotateX(-degToRad(ObliquityJ2000))
}

// LightTimeFromAU returns the one-way light time in seconds for a distance
// in AU.
func LightTimeFromAU(au float64) float64 {
	return au * LightTimePerAU
}

// KmToAU converts kilometers to Astronomical Units.
func KmToAU(km float64) float64 {
	return km / AU
}

// AUToKm converts Astronomical Units to kilometers.
func AUToKm(au float64) float64 {
	return au * AU
}

// FormatLightTime formats a light time in seconds for display.
func FormatLightTime(seconds float64) string {
	switch {
	case seconds < 60:
		return fmt.Sprintf("%.1fs", seconds)
	case seconds < 3600:
		return fmt.Sprintf("%dm%02ds", int(seconds)/60, int(seconds)%60)
	default:
		return fmt.Sprintf("%dh%02dm", int(seconds)/3600, (int(seconds)%3600)/60)
	}
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

func radToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}
