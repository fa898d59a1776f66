// Package moon computes the position and phase of the Moon from truncated
// closed-form series. Longitude is good to a few arcminutes, which keeps
// rise/set times within a minute or two.
package moon

import (
	"math"
	"time"

	"github.com/litescript/ls-almanac/internal/astro"
	"github.com/litescript/ls-almanac/internal/julian"
	"github.com/litescript/ls-almanac/internal/sexa"
	"github.com/litescript/ls-almanac/internal/sun"
)

// SynodicMonth is the mean length of the lunar cycle in days.
const SynodicMonth = 29.530588853

// fundamentals returns the Moon's fundamental arguments for a Julian
// centuries value: mean longitude L', mean elongation D, solar mean
// anomaly M, lunar mean anomaly M' and argument of latitude F.
func fundamentals(t float64) (l, d, m, mp, f sexa.Angle) {
	l = sexa.Angle(218.3164477 + 481267.88123421*t - 0.0015786*t*t +
		t*t*t/538841 - t*t*t*t/65194000).Norm()
	d = sexa.Angle(297.8501921 + 445267.1114034*t - 0.0018819*t*t +
		t*t*t/545868 - t*t*t*t/113065000).Norm()
	m = sexa.Angle(357.5291092 + 35999.0502909*t - 0.0001536*t*t +
		t*t*t/24490000).Norm()
	mp = sexa.Angle(134.9633964 + 477198.8675055*t + 0.0087414*t*t +
		t*t*t/69699 - t*t*t*t/14712000).Norm()
	f = sexa.Angle(93.2720950 + 483202.0175233*t - 0.0036539*t*t -
		t*t*t/3526000 + t*t*t*t/863310000).Norm()
	return
}

// EclipticPosition returns the Moon's geocentric ecliptic longitude and
// latitude, and its distance in kilometers, for a Julian Day.
func EclipticPosition(jd float64) (lon, lat sexa.Angle, distKm float64) {
	t := julian.Centuries(jd)
	l, d, m, mp, f := fundamentals(t)

	dr, mr, mpr, fr := d.Rad(), m.Rad(), mp.Rad(), f.Rad()

	// Dominant longitude terms of the full series.
	lonDeg := l.Deg() +
		6.289*math.Sin(mpr) +
		1.274*math.Sin(2*dr-mpr) +
		0.658*math.Sin(2*dr) +
		0.214*math.Sin(2*mpr) -
		0.186*math.Sin(mr) -
		0.114*math.Sin(2*fr) +
		0.059*math.Sin(2*dr-2*mpr)

	latDeg := 5.128*math.Sin(fr) +
		0.2806*math.Sin(mpr+fr) +
		0.2777*math.Sin(mpr-fr) +
		0.1732*math.Sin(2*dr-fr)

	distKm = 385000.56 -
		20905.355*math.Cos(mpr) -
		3699.111*math.Cos(2*dr-mpr) -
		2955.968*math.Cos(2*dr) -
		569.925*math.Cos(2*mpr)

	return sexa.Angle(lonDeg).Norm(), sexa.Angle(latDeg), distKm
}

// Apparent returns the Moon's apparent Right Ascension and declination for
// a Julian Day.
func Apparent(jd float64) (ra, dec sexa.Angle) {
	lon, lat, _ := EclipticPosition(jd)
	return astro.EclipticToEquatorialAngles(lon, lat, astro.TrueObliquity(jd))
}

// Position returns the Moon's apparent equatorial coordinates at a civil
// time, with the geocentric range populated.
func Position(t time.Time) astro.SkyCoord {
	jd := julian.FromTime(t)
	ra, dec := Apparent(jd)
	_, _, dist := EclipticPosition(jd)
	return astro.SkyCoord{RAdeg: ra.Deg(), DecDeg: dec.Deg(), RangeKm: dist}
}

// Phase describes the state of the lunar cycle at an instant.
type Phase struct {
	Fraction     float64 // Phase fraction [0,1): 0=new, 0.5=full
	Elongation   float64 // Sun-to-Moon ecliptic angle in degrees [0,360)
	Illumination float64 // Illuminated fraction [0,1]
	AgeDays      float64 // Days since new moon
	Waxing       bool    // True while heading toward full
	Name         string  // Human-readable phase name
}

// CurrentPhase computes the Moon's phase for a civil time, from the
// ecliptic elongation between Moon and Sun.
func CurrentPhase(t time.Time) Phase {
	jd := julian.FromTime(t)
	lonMoon, _, _ := EclipticPosition(jd)
	lonSun := sun.ApparentLongitude(jd)

	elong := (lonMoon - lonSun).Norm().Deg()
	frac := elong / 360
	illum := (1 - math.Cos(degToRad(elong))) / 2
	waxing := elong < 180

	return Phase{
		Fraction:     frac,
		Elongation:   elong,
		Illumination: illum,
		AgeDays:      frac * SynodicMonth,
		Waxing:       waxing,
		Name:         phaseName(illum, waxing),
	}
}

// phaseName maps illumination and direction onto the usual eight names.
func phaseName(illum float64, waxing bool) string {
	switch {
	case illum < 0.01:
		return "New Moon"
	case illum > 0.99:
		return "Full Moon"
	case illum >= 0.49 && illum <= 0.51:
		if waxing {
			return "First Quarter"
		}
		return "Third Quarter"
	case illum < 0.5:
		if waxing {
			return "Waxing Crescent"
		}
		return "Waning Crescent"
	default:
		if waxing {
			return "Waxing Gibbous"
		}
		return "Waning Gibbous"
	}
}

func degToRad(deg float64) float64 { return deg * math.Pi / 180 }
