package astro

import "math"

// ProjectedPoint is a 2D projected position with the original radial
// distance kept for labeling.
type ProjectedPoint struct {
	X float64 // Screen X (normalized, -1 to 1, toward vernal equinox)
	Y float64 // Screen Y (normalized, -1 to 1)
	R float64 // True 3D distance in AU
	Z float64 // Z offset, for ecliptic latitude display
}

// ProjectEclipticTopDown projects a heliocentric ecliptic vector (AU) onto
// a top-down view of the ecliptic plane. Radial distances are compressed
// with log10(r+1) so the inner and outer planets share one screen.
func ProjectEclipticTopDown(v Vec3) ProjectedPoint {
	rPlane := math.Sqrt(v.X*v.X + v.Y*v.Y)
	rDisplay := math.Log10(rPlane + 1)
	angle := math.Atan2(v.Y, v.X)

	return ProjectedPoint{
		X: rDisplay * math.Cos(angle),
		Y: rDisplay * math.Sin(angle),
		R: v.Norm(),
		Z: v.Z,
	}
}
