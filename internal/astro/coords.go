package astro

import (
	"math"
	"time"

	"github.com/litescript/ls-almanac/internal/julian"
	"github.com/litescript/ls-almanac/internal/sexa"
)

// SkyCoord represents celestial coordinates with both equatorial (RA/Dec)
// and horizontal (Az/El) components.
type SkyCoord struct {
	// Equatorial coordinates
	RAdeg  float64 // Right Ascension in degrees (0-360)
	DecDeg float64 // Declination in degrees (-90 to +90)

	// Horizontal coordinates (observer-relative)
	AzDeg float64 // Azimuth in degrees (0=N, 90=E, 180=S, 270=W)
	ElDeg float64 // Elevation/Altitude in degrees (0=horizon, 90=zenith)

	// Distance (optional)
	RangeKm float64
}

// RA returns the Right Ascension as an angle.
func (c SkyCoord) RA() sexa.Angle { return sexa.Angle(c.RAdeg) }

// Dec returns the declination as an angle.
func (c SkyCoord) Dec() sexa.Angle { return sexa.Angle(c.DecDeg) }

// Observer represents a ground-based observer location.
type Observer struct {
	LatDeg float64 // Latitude in degrees (north positive)
	LonDeg float64 // Longitude in degrees (east positive)
	Name   string  // Optional name for the site
}

// EquatorialToHorizontal converts equatorial coordinates (RA/Dec) to
// horizontal coordinates (Az/El) for a given observer and time.
//
// The input RA/Dec values are preserved and Az/El populated. Conventions:
//   - Azimuth: 0° = North, 90° = East, 180° = South, 270° = West
//   - Elevation: 0° = horizon, 90° = zenith
func EquatorialToHorizontal(eq SkyCoord, obs Observer, t time.Time) SkyCoord {
	lat := degToRad(obs.LatDeg)
	dec := degToRad(eq.DecDeg)

	lst := julian.LST(julian.FromTime(t), obs.LonDeg)
	ha := lst.Rad() - degToRad(eq.RAdeg)

	sinAlt := math.Sin(dec)*math.Sin(lat) + math.Cos(dec)*math.Cos(lat)*math.Cos(ha)
	alt := math.Asin(sinAlt)

	cosAz := (math.Sin(dec) - math.Sin(alt)*math.Sin(lat)) / (math.Cos(alt) * math.Cos(lat))
	if cosAz > 1 {
		cosAz = 1
	} else if cosAz < -1 {
		cosAz = -1
	}
	az := math.Acos(cosAz)

	// A positive hour angle puts the object west of the meridian.
	if math.Sin(ha) > 0 {
		az = 2*math.Pi - az
	}

	return SkyCoord{
		RAdeg:   eq.RAdeg,
		DecDeg:  eq.DecDeg,
		AzDeg:   radToDeg(az),
		ElDeg:   radToDeg(alt),
		RangeKm: eq.RangeKm,
	}
}

// EclipticToEquatorialAngles converts ecliptic longitude and latitude to
// Right Ascension and declination for a given obliquity. All angles are
// degree-valued.
func EclipticToEquatorialAngles(lon, lat, obliquity sexa.Angle) (ra, dec sexa.Angle) {
	lam := lon.Rad()
	bet := lat.Rad()
	eps := obliquity.Rad()

	sinDec := math.Sin(bet)*math.Cos(eps) + math.Cos(bet)*math.Sin(eps)*math.Sin(lam)
	dec = sexa.FromRad(math.Asin(sinDec))

	y := math.Sin(lam)*math.Cos(eps) - math.Tan(bet)*math.Sin(eps)
	ra = sexa.FromRad(math.Atan2(y, math.Cos(lam))).Norm()
	return ra, dec
}

// EquatorialToEclipticAngles converts Right Ascension and declination to
// ecliptic longitude and latitude for a given obliquity.
func EquatorialToEclipticAngles(ra, dec, obliquity sexa.Angle) (lon, lat sexa.Angle) {
	a := ra.Rad()
	d := dec.Rad()
	eps := obliquity.Rad()

	sinLat := math.Sin(d)*math.Cos(eps) - math.Cos(d)*math.Sin(eps)*math.Sin(a)
	lat = sexa.FromRad(math.Asin(sinLat))

	y := math.Sin(a)*math.Cos(eps) + math.Tan(d)*math.Sin(eps)
	lon = sexa.FromRad(math.Atan2(y, math.Cos(a))).Norm()
	return lon, lat
}

// AngularSeparation calculates the angular separation between two points on
// the celestial sphere. All coordinates in degrees; the result is in
// degrees.
func AngularSeparation(ra1, dec1, ra2, dec2 float64) float64 {
	ra1r, dec1r := degToRad(ra1), degToRad(dec1)
	ra2r, dec2r := degToRad(ra2), degToRad(dec2)

	// Haversine form, stable for small separations.
	dRA := ra2r - ra1r
	dDec := dec2r - dec1r
	a := math.Sin(dDec/2)*math.Sin(dDec/2) +
		math.Cos(dec1r)*math.Cos(dec2r)*math.Sin(dRA/2)*math.Sin(dRA/2)
	if a > 1 {
		a = 1
	}
	return radToDeg(2 * math.Asin(math.Sqrt(a)))
}
