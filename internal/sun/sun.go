// Package sun computes the apparent position of the Sun from closed-form
// series. Accuracy is about 0.01° in longitude, sufficient for almanac
// rise/set work.
package sun

import (
	"math"
	"time"

	"github.com/litescript/ls-almanac/internal/astro"
	"github.com/litescript/ls-almanac/internal/julian"
	"github.com/litescript/ls-almanac/internal/sexa"
)

// MeanLongitude returns the geometric mean longitude of the Sun for a
// Julian Day.
func MeanLongitude(jd float64) sexa.Angle {
	t := julian.Centuries(jd)
	return sexa.Angle(280.46646 + 36000.76983*t + 0.0003032*t*t).Norm()
}

// MeanAnomaly returns the mean anomaly of the Sun for a Julian Day.
func MeanAnomaly(jd float64) sexa.Angle {
	t := julian.Centuries(jd)
	return sexa.Angle(357.52911 + 35999.05029*t - 0.0001537*t*t).Norm()
}

// eccentricity of the Earth's orbit.
func eccentricity(t float64) float64 {
	return 0.016708634 - 0.000042037*t - 0.0000001267*t*t
}

// equationOfCenter returns the Sun's equation of center in degrees.
func equationOfCenter(t float64, m sexa.Angle) sexa.Angle {
	c := (1.914602-0.004817*t-0.000014*t*t)*m.Sin() +
		(0.019993-0.000101*t)*math.Sin(2*m.Rad()) +
		0.000289*math.Sin(3*m.Rad())
	return sexa.Angle(c)
}

// ApparentLongitude returns the Sun's apparent ecliptic longitude,
// corrected for aberration and the principal nutation term.
func ApparentLongitude(jd float64) sexa.Angle {
	t := julian.Centuries(jd)
	trueLon := MeanLongitude(jd) + equationOfCenter(t, MeanAnomaly(jd))
	omega := sexa.Angle(125.04 - 1934.136*t)
	return (trueLon - 0.00569 - sexa.Angle(0.00478*omega.Sin())).Norm()
}

// Distance returns the Sun-Earth distance in AU.
func Distance(jd float64) float64 {
	t := julian.Centuries(jd)
	m := MeanAnomaly(jd)
	e := eccentricity(t)
	nu := m + equationOfCenter(t, m) // true anomaly
	return 1.000001018 * (1 - e*e) / (1 + e*nu.Cos())
}

// Apparent returns the Sun's apparent Right Ascension and declination for
// a Julian Day.
func Apparent(jd float64) (ra, dec sexa.Angle) {
	t := julian.Centuries(jd)
	lam := ApparentLongitude(jd)

	// Obliquity corrected with the same Ω term used for the apparent
	// longitude, so RA/Dec stay mutually consistent.
	omega := sexa.Angle(125.04 - 1934.136*t)
	eps := astro.MeanObliquity(jd) + sexa.Angle(0.00256*omega.Cos())

	return astro.EclipticToEquatorialAngles(lam, 0, eps)
}

// Position returns the Sun's apparent equatorial coordinates at a civil
// time, with the Earth-Sun range populated.
func Position(t time.Time) astro.SkyCoord {
	jd := julian.FromTime(t)
	ra, dec := Apparent(jd)
	return astro.SkyCoord{
		RAdeg:   ra.Deg(),
		DecDeg:  dec.Deg(),
		RangeKm: astro.AUToKm(Distance(jd)),
	}
}

// EquationOfTime returns apparent solar time minus mean solar time for a
// Julian Day.
func EquationOfTime(jd float64) time.Duration {
	t := julian.Centuries(jd)
	l0 := MeanLongitude(jd)
	m := MeanAnomaly(jd)
	e := eccentricity(t)
	eps := astro.MeanObliquity(jd)

	y := math.Tan(eps.Rad() / 2)
	y *= y

	rad := y*math.Sin(2*l0.Rad()) -
		2*e*m.Sin() +
		4*e*y*m.Sin()*math.Cos(2*l0.Rad()) -
		y*y/2*math.Sin(4*l0.Rad()) -
		1.25*e*e*math.Sin(2*m.Rad())

	// 1° of hour angle is 4 minutes of time.
	minutes := sexa.FromRad(rad).Deg() * 4
	return time.Duration(minutes * float64(time.Minute))
}

// Separation returns the angular separation in degrees between the Sun and
// a target at a civil time.
func Separation(targetRA, targetDec float64, t time.Time) float64 {
	s := Position(t)
	return astro.AngularSeparation(s.RAdeg, s.DecDeg, targetRA, targetDec)
}
