package astro

import (
	"math"

	"github.com/litescript/ls-almanac/internal/julian"
	"github.com/litescript/ls-almanac/internal/sexa"
)

// Precess transforms J2000 equatorial coordinates to the mean equator and
// equinox of the date given by jd, using the IAU 1976 precession angles.
func Precess(ra, dec sexa.Angle, jd float64) (sexa.Angle, sexa.Angle) {
	t := julian.Centuries(jd)

	// Precession angles in arcseconds (Meeus-style polynomials for an
	// initial epoch of J2000).
	zeta := (2306.2181 + (0.30188+0.017998*t)*t) * t
	z := (2306.2181 + (1.09468+0.018203*t)*t) * t
	theta := (2004.3109 - (0.42665+0.041833*t)*t) * t

	zetaR := degToRad(zeta / 3600)
	zR := degToRad(z / 3600)
	thetaR := degToRad(theta / 3600)

	raR := ra.Rad() + zetaR
	decR := dec.Rad()

	a := math.Cos(decR) * math.Sin(raR)
	b := math.Cos(thetaR)*math.Cos(decR)*math.Cos(raR) - math.Sin(thetaR)*math.Sin(decR)
	c := math.Sin(thetaR)*math.Cos(decR)*math.Cos(raR) + math.Cos(thetaR)*math.Sin(decR)

	outRA := sexa.FromRad(math.Atan2(a, b) + zR).Norm()
	outDec := sexa.FromRad(math.Asin(c))
	return outRA, outDec
}
