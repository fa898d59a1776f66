// Package planet computes heliocentric and geocentric planet positions
// from Keplerian mean orbital elements. Accuracy is a few arcminutes for
// the inner planets over a few centuries around J2000, which is plenty
// for a sky chart or a rise/set table.
package planet

import (
	"math"

	"github.com/litescript/ls-almanac/internal/astro"
	"github.com/litescript/ls-almanac/internal/julian"
	"github.com/litescript/ls-almanac/internal/sexa"
)

// Class categorizes planets for rendering glyphs.
type Class int

const (
	ClassInner Class = iota // Mercury, Venus, Earth, Mars
	ClassGiant              // Jupiter, Saturn, Uranus, Neptune
)

// Elements holds J2000 mean orbital elements and their per-century rates.
// Angles are in degrees, the semi-major axis in AU.
type Elements struct {
	A, ARate       float64 // Semi-major axis
	E, ERate       float64 // Eccentricity
	I, IRate       float64 // Inclination
	L, LRate       float64 // Mean longitude
	Peri, PeriRate float64 // Longitude of perihelion
	Node, NodeRate float64 // Longitude of ascending node
}

// Def describes one major planet.
type Def struct {
	Name  string
	Code  string
	Class Class
	Orbit Elements
}

// Planets lists the eight major planets with their mean elements.
// The Earth entry is the Earth-Moon barycenter.
var Planets = []Def{
	{Name: "Mercury", Code: "MERC", Class: ClassInner, Orbit: Elements{
		A: 0.38709927, ARate: 0.00000037,
		E: 0.20563593, ERate: 0.00001906,
		I: 7.00497902, IRate: -0.00594749,
		L: 252.25032350, LRate: 149472.67411175,
		Peri: 77.45779628, PeriRate: 0.16047689,
		Node: 48.33076593, NodeRate: -0.12534081,
	}},
	{Name: "Venus", Code: "VEN", Class: ClassInner, Orbit: Elements{
		A: 0.72333566, ARate: 0.00000390,
		E: 0.00677672, ERate: -0.00004107,
		I: 3.39467605, IRate: -0.00078890,
		L: 181.97909950, LRate: 58517.81538729,
		Peri: 131.60246718, PeriRate: 0.00268329,
		Node: 76.67984255, NodeRate: -0.27769418,
	}},
	{Name: "Earth", Code: "EARTH", Class: ClassInner, Orbit: Elements{
		A: 1.00000261, ARate: 0.00000562,
		E: 0.01671123, ERate: -0.00004392,
		I: -0.00001531, IRate: -0.01294668,
		L: 100.46457166, LRate: 35999.37244981,
		Peri: 102.93768193, PeriRate: 0.32327364,
		Node: 0, NodeRate: 0,
	}},
	{Name: "Mars", Code: "MARS", Class: ClassInner, Orbit: Elements{
		A: 1.52371034, ARate: 0.00001847,
		E: 0.09339410, ERate: 0.00007882,
		I: 1.84969142, IRate: -0.00813131,
		L: -4.55343205, LRate: 19140.30268499,
		Peri: -23.94362959, PeriRate: 0.44441088,
		Node: 49.55953891, NodeRate: -0.29257343,
	}},
	{Name: "Jupiter", Code: "JUP", Class: ClassGiant, Orbit: Elements{
		A: 5.20288700, ARate: -0.00011607,
		E: 0.04838624, ERate: -0.00013253,
		I: 1.30439695, IRate: -0.00183714,
		L: 34.39644051, LRate: 3034.74612775,
		Peri: 14.72847983, PeriRate: 0.21252668,
		Node: 100.47390909, NodeRate: 0.20469106,
	}},
	{Name: "Saturn", Code: "SAT", Class: ClassGiant, Orbit: Elements{
		A: 9.53667594, ARate: -0.00125060,
		E: 0.05386179, ERate: -0.00050991,
		I: 2.48599187, IRate: 0.00193609,
		L: 49.95424423, LRate: 1222.49362201,
		Peri: 92.59887831, PeriRate: -0.41897216,
		Node: 113.66242448, NodeRate: -0.28867794,
	}},
	{Name: "Uranus", Code: "URA", Class: ClassGiant, Orbit: Elements{
		A: 19.18916464, ARate: -0.00196176,
		E: 0.04725744, ERate: -0.00004397,
		I: 0.77263783, IRate: -0.00242939,
		L: 313.23810451, LRate: 428.48202785,
		Peri: 170.95427630, PeriRate: 0.40805281,
		Node: 74.01692503, NodeRate: 0.04240589,
	}},
	{Name: "Neptune", Code: "NEP", Class: ClassGiant, Orbit: Elements{
		A: 30.06992276, ARate: 0.00026291,
		E: 0.00859048, ERate: 0.00005105,
		I: 1.77004347, IRate: 0.00035372,
		L: -55.12002969, LRate: 218.45945325,
		Peri: 44.96476227, PeriRate: -0.32241464,
		Node: 131.78422574, NodeRate: -0.00508664,
	}},
}

// Find returns the planet definition for a code, or nil.
func Find(code string) *Def {
	for i := range Planets {
		if Planets[i].Code == code {
			return &Planets[i]
		}
	}
	return nil
}

// at evaluates the elements at a Julian centuries offset from J2000.
func (el Elements) at(t float64) (a, e, i, l, peri, node float64) {
	return el.A + el.ARate*t,
		el.E + el.ERate*t,
		el.I + el.IRate*t,
		el.L + el.LRate*t,
		el.Peri + el.PeriRate*t,
		el.Node + el.NodeRate*t
}

// solveKepler finds the eccentric anomaly for a mean anomaly in degrees.
// Newton's method converges in a handful of steps for planetary
// eccentricities; the cap guards pathological inputs.
func solveKepler(mDeg, e float64) float64 {
	const tolDeg = 1e-7
	eDeg := e * 180 / math.Pi

	ecc := mDeg + eDeg*math.Sin(degToRad(mDeg))
	for iter := 0; iter < 50; iter++ {
		dm := mDeg - (ecc - eDeg*math.Sin(degToRad(ecc)))
		de := dm / (1 - e*math.Cos(degToRad(ecc)))
		ecc += de
		if math.Abs(de) < tolDeg {
			break
		}
	}
	return ecc
}

// HeliocentricEcliptic returns a planet's heliocentric ecliptic position
// in AU for a Julian Day.
func HeliocentricEcliptic(p Def, jd float64) astro.Vec3 {
	t := julian.Centuries(jd)
	a, e, incl, l, peri, node := p.Orbit.at(t)

	// Argument of perihelion and mean anomaly from the longitudes.
	argPeri := peri - node
	m := math.Mod(l-peri, 360)
	if m > 180 {
		m -= 360
	} else if m < -180 {
		m += 360
	}

	ecc := solveKepler(m, e)

	// Coordinates in the orbital plane, perihelion along +x.
	xp := a * (math.Cos(degToRad(ecc)) - e)
	yp := a * math.Sqrt(1-e*e) * math.Sin(degToRad(ecc))

	cw, sw := math.Cos(degToRad(argPeri)), math.Sin(degToRad(argPeri))
	co, so := math.Cos(degToRad(node)), math.Sin(degToRad(node))
	ci, si := math.Cos(degToRad(incl)), math.Sin(degToRad(incl))

	return astro.Vec3{
		X: (cw*co-sw*so*ci)*xp + (-sw*co-cw*so*ci)*yp,
		Y: (cw*so+sw*co*ci)*xp + (-sw*so+cw*co*ci)*yp,
		Z: sw*si*xp + cw*si*yp,
	}
}

// GeocentricEcliptic returns a planet's geocentric ecliptic position in
// AU for a Julian Day.
func GeocentricEcliptic(p Def, jd float64) astro.Vec3 {
	earth := Find("EARTH")
	return HeliocentricEcliptic(p, jd).Sub(HeliocentricEcliptic(*earth, jd))
}

// Apparent returns a planet's geocentric Right Ascension and declination
// for a Julian Day, plus the Earth-planet distance in AU.
func Apparent(p Def, jd float64) (ra, dec sexa.Angle, distAU float64) {
	geo := GeocentricEcliptic(p, jd)
	lon := sexa.Angle(astro.EclipticLongitude(geo))
	lat := sexa.Angle(astro.EclipticLatitude(geo))
	ra, dec = astro.EclipticToEquatorialAngles(lon, lat, astro.MeanObliquity(jd))
	return ra, dec, geo.Norm()
}

func degToRad(deg float64) float64 { return deg * math.Pi / 180 }
