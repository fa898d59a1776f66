package astro

import (
	"math"
	"testing"
	"time"

	"github.com/litescript/ls-almanac/internal/julian"
	"github.com/litescript/ls-almanac/internal/sexa"
)

func TestEquatorialToHorizontal_Polaris(t *testing.T) {
	// Polaris sits within 1° of the celestial pole: from any northern
	// site its elevation is close to the observer latitude and its
	// azimuth close to due north, at any time.
	polaris := SkyCoord{RAdeg: 37.95, DecDeg: 89.26}
	observer := Observer{LatDeg: 35.0, LonDeg: -117.0}

	testTime := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	result := EquatorialToHorizontal(polaris, observer, testTime)

	if math.Abs(result.ElDeg-observer.LatDeg) > 5 {
		t.Errorf("Polaris elevation = %v°, expected ~%v° (latitude)", result.ElDeg, observer.LatDeg)
	}
	if result.ElDeg < 0 {
		t.Errorf("Polaris should be visible from 35°N, got El=%v°", result.ElDeg)
	}
	if result.RAdeg != polaris.RAdeg || result.DecDeg != polaris.DecDeg {
		t.Error("input RA/Dec must be preserved in the output")
	}

	azFromNorth := math.Min(result.AzDeg, 360-result.AzDeg)
	if azFromNorth > 5 {
		t.Errorf("Polaris azimuth = %v°, expected within 5° of north", result.AzDeg)
	}
}

func TestEquatorialToHorizontal_Meridian(t *testing.T) {
	// An object whose RA equals the local sidereal time is on the
	// meridian: elevation = 90° - |lat - dec|.
	obs := Observer{LatDeg: 40.0, LonDeg: 0.0}
	testTime := time.Date(2024, 3, 1, 3, 0, 0, 0, time.UTC)

	lst := julian.LST(julian.FromTime(testTime), obs.LonDeg)
	eq := SkyCoord{RAdeg: lst.Deg(), DecDeg: 20.0}

	result := EquatorialToHorizontal(eq, obs, testTime)
	wantEl := 90 - math.Abs(obs.LatDeg-eq.DecDeg)
	if math.Abs(result.ElDeg-wantEl) > 0.1 {
		t.Errorf("meridian elevation = %v°, want %v°", result.ElDeg, wantEl)
	}
	if math.Abs(result.AzDeg-180) > 1 {
		t.Errorf("object south of zenith should transit at Az≈180°, got %v°", result.AzDeg)
	}
}

func TestEclipticEquatorialRoundTrip(t *testing.T) {
	eps := sexa.Angle(ObliquityJ2000)

	tests := []struct {
		name     string
		lon, lat sexa.Angle
	}{
		{"on the ecliptic", 45, 0},
		{"north of the ecliptic", 120, 5},
		{"south of the ecliptic", 300, -4.2},
		{"near the equinox", 359.5, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ra, dec := EclipticToEquatorialAngles(tt.lon, tt.lat, eps)
			lon, lat := EquatorialToEclipticAngles(ra, dec, eps)
			if !lon.Eq(tt.lon, 1e-9) || !lat.Eq(tt.lat, 1e-9) {
				t.Errorf("round trip (%v, %v) -> (%v, %v)", tt.lon, tt.lat, lon, lat)
			}
		})
	}
}

func TestEclipticToEquatorialKnownPoint(t *testing.T) {
	// At ecliptic longitude 90° (solstice point) the equatorial
	// declination equals the obliquity.
	ra, dec := EclipticToEquatorialAngles(90, 0, sexa.Angle(ObliquityJ2000))
	if !ra.Eq(90, 1e-9) {
		t.Errorf("RA at solstice point = %v, want 90°", ra)
	}
	if !dec.Eq(sexa.Angle(ObliquityJ2000), 1e-9) {
		t.Errorf("Dec at solstice point = %v, want obliquity", dec)
	}
}

func TestAngularSeparation(t *testing.T) {
	tests := []struct {
		name                   string
		ra1, dec1, ra2, dec2   float64
		want, tol              float64
	}{
		{"same point", 100, 20, 100, 20, 0, 1e-9},
		{"poles", 0, 90, 0, -90, 180, 1e-9},
		{"equator quarter", 0, 0, 90, 0, 90, 1e-9},
		{"small separation", 10, 0, 10.5, 0, 0.5, 1e-9},
		{"Arcturus to Spica", 213.915, 19.182, 201.298, -11.161, 32.8, 0.2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AngularSeparation(tt.ra1, tt.dec1, tt.ra2, tt.dec2)
			if math.Abs(got-tt.want) > tt.tol {
				t.Errorf("AngularSeparation() = %v°, want %v° (±%v)", got, tt.want, tt.tol)
			}
		})
	}
}
