package astro

import (
	"math"

	"github.com/litescript/ls-almanac/internal/julian"
	"github.com/litescript/ls-almanac/internal/sexa"
)

// ObliquityJ2000 is the mean obliquity of the ecliptic at J2000.0 in
// degrees.
const ObliquityJ2000 = 23.43929111

// MeanObliquity returns the mean obliquity of the ecliptic for a Julian
// Day, from the IAU polynomial. Good to a fraction of an arcsecond over a
// few centuries around J2000.
func MeanObliquity(jd float64) sexa.Angle {
	t := julian.Centuries(jd)
	sec := 21.448 - 46.8150*t - 0.00059*t*t + 0.001813*t*t*t
	return sexa.FromDMS(false, 23, 26, sec)
}

// TrueObliquity returns the mean obliquity corrected for nutation.
func TrueObliquity(jd float64) sexa.Angle {
	_, deps := Nutation(jd)
	return MeanObliquity(jd) + deps
}

// nutationTerm is one periodic term of the IAU 1980 nutation series: the
// multiples of the five fundamental arguments and the sine/cosine
// coefficients in units of 0.0001", with their secular rates per Julian
// century.
type nutationTerm struct {
	d, m, mp, f, om int
	psi, psiT       float64
	eps, epsT       float64
}

// nutationSeries holds the leading terms of the IAU 1980 series, largest
// first. Truncated at 1 milliarcsecond; plenty for a low-precision almanac.
// Process-wide constant data: written once here, never mutated.
var nutationSeries = []nutationTerm{
	{0, 0, 0, 0, 1, -171996, -174.2, 92025, 8.9},
	{-2, 0, 0, 2, 2, -13187, -1.6, 5736, -3.1},
	{0, 0, 0, 2, 2, -2274, -0.2, 977, -0.5},
	{0, 0, 0, 0, 2, 2062, 0.2, -895, 0.5},
	{0, 1, 0, 0, 0, 1426, -3.4, 54, -0.1},
	{0, 0, 1, 0, 0, 712, 0.1, -7, 0},
	{-2, 1, 0, 2, 2, -517, 1.2, 224, -0.6},
	{0, 0, 0, 2, 1, -386, -0.4, 200, 0},
	{0, 0, 1, 2, 2, -301, 0, 129, -0.1},
	{-2, -1, 0, 2, 2, 217, -0.5, -95, 0.3},
	{-2, 0, 1, 0, 0, -158, 0, 0, 0},
	{-2, 0, 0, 2, 1, 129, 0.1, -70, 0},
	{0, 0, -1, 2, 2, 123, 0, -53, 0},
	{2, 0, 0, 0, 0, 63, 0, 0, 0},
	{0, 0, 1, 0, 1, 63, 0.1, -33, 0},
	{2, 0, -1, 2, 2, -59, 0, 26, 0},
	{0, 0, -1, 0, 1, -58, -0.1, 32, 0},
	{0, 0, 1, 2, 1, -51, 0, 27, 0},
	{-2, 0, 2, 0, 0, 48, 0, 0, 0},
	{0, 0, -2, 2, 1, 46, 0, -24, 0},
}

// Nutation returns the nutation in longitude (Δψ) and in obliquity (Δε)
// for a Julian Day.
func Nutation(jd float64) (dpsi, deps sexa.Angle) {
	t := julian.Centuries(jd)

	// Fundamental arguments in degrees.
	d := 297.85036 + 445267.111480*t - 0.0019142*t*t + t*t*t/189474
	m := 357.52772 + 35999.050340*t - 0.0001603*t*t - t*t*t/300000
	mp := 134.96298 + 477198.867398*t + 0.0086972*t*t + t*t*t/56250
	f := 93.27191 + 483202.017538*t - 0.0036825*t*t + t*t*t/327270
	om := 125.04452 - 1934.136261*t + 0.0020708*t*t + t*t*t/450000

	var psi, eps float64 // 0.0001"
	for _, term := range nutationSeries {
		arg := degToRad(float64(term.d)*d + float64(term.m)*m +
			float64(term.mp)*mp + float64(term.f)*f + float64(term.om)*om)
		psi += (term.psi + term.psiT*t) * math.Sin(arg)
		eps += (term.eps + term.epsT*t) * math.Cos(arg)
	}

	// 0.0001" -> degrees.
	return sexa.Angle(psi / 36000000), sexa.Angle(eps / 36000000)
}
