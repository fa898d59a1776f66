package moon

import (
	"math"
	"testing"
	"time"
)

// Reference epoch: 1992 April 12.0 TD. Published values are
// lambda=133.162655 deg, beta=-3.229126 deg, distance 368409.7 km; the
// truncated series should land within a few arcminutes.
func TestEclipticPositionReference(t *testing.T) {
	const jd = 2448724.5

	lon, lat, dist := EclipticPosition(jd)

	if got := lon.Deg(); math.Abs(got-133.162655) > 0.3 {
		t.Errorf("longitude = %.4f deg, want 133.1627 +/- 0.3", got)
	}
	if got := lat.Deg(); math.Abs(got-(-3.229126)) > 0.1 {
		t.Errorf("latitude = %.4f deg, want -3.2291 +/- 0.1", got)
	}
	if math.Abs(dist-368409.7) > 2000 {
		t.Errorf("distance = %.1f km, want 368409.7 +/- 2000", dist)
	}
}

func TestApparentReference(t *testing.T) {
	const jd = 2448724.5

	ra, dec := Apparent(jd)

	// Published apparent RA 134.688470 deg, Dec 13.768368 deg.
	if got := ra.Deg(); math.Abs(got-134.688470) > 0.35 {
		t.Errorf("RA = %.4f deg, want 134.6885 +/- 0.35", got)
	}
	if got := dec.Deg(); math.Abs(got-13.768368) > 0.2 {
		t.Errorf("Dec = %.4f deg, want 13.7684 +/- 0.2", got)
	}
}

func TestDistanceStaysInBounds(t *testing.T) {
	// The geocentric distance must stay between perigee and apogee over a
	// full anomalistic sweep.
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	for day := 0; day < 60; day++ {
		p := Position(start.AddDate(0, 0, day))
		if p.RangeKm < 356000 || p.RangeKm > 407000 {
			t.Errorf("day %d: distance %.0f km outside [356000, 407000]", day, p.RangeKm)
		}
	}
}

func TestCurrentPhaseKnownFullMoon(t *testing.T) {
	// 2024-01-25 17:54 UTC was a full moon.
	full := time.Date(2024, time.January, 25, 17, 54, 0, 0, time.UTC)
	p := CurrentPhase(full)

	if p.Illumination < 0.98 {
		t.Errorf("illumination at full moon = %.3f, want > 0.98", p.Illumination)
	}
	if math.Abs(p.Elongation-180) > 5 {
		t.Errorf("elongation at full moon = %.1f deg, want ~180", p.Elongation)
	}
	if p.Name != "Full Moon" {
		t.Errorf("phase name = %q, want Full Moon", p.Name)
	}
}

func TestCurrentPhaseKnownNewMoon(t *testing.T) {
	// 2024-01-11 11:57 UTC was a new moon.
	nm := time.Date(2024, time.January, 11, 11, 57, 0, 0, time.UTC)
	p := CurrentPhase(nm)

	if p.Illumination > 0.02 {
		t.Errorf("illumination at new moon = %.3f, want < 0.02", p.Illumination)
	}
	if p.AgeDays > 1.5 && p.AgeDays < SynodicMonth-1.5 {
		t.Errorf("age at new moon = %.2f days, want near 0 or %.1f", p.AgeDays, SynodicMonth)
	}
}

func TestPhaseCycleMonotoneWaxing(t *testing.T) {
	// From new to full the illumination should rise.
	nm := time.Date(2024, time.January, 11, 12, 0, 0, 0, time.UTC)
	prev := -1.0
	for day := 1; day <= 13; day++ {
		p := CurrentPhase(nm.AddDate(0, 0, day))
		if !p.Waxing {
			t.Errorf("day %d after new moon: not marked waxing", day)
		}
		if p.Illumination <= prev {
			t.Errorf("day %d: illumination %.3f not increasing from %.3f", day, p.Illumination, prev)
		}
		prev = p.Illumination
	}
}

func TestPhaseNames(t *testing.T) {
	cases := []struct {
		illum  float64
		waxing bool
		want   string
	}{
		{0.001, true, "New Moon"},
		{0.25, true, "Waxing Crescent"},
		{0.50, true, "First Quarter"},
		{0.75, true, "Waxing Gibbous"},
		{0.999, true, "Full Moon"},
		{0.75, false, "Waning Gibbous"},
		{0.50, false, "Third Quarter"},
		{0.25, false, "Waning Crescent"},
	}
	for _, tc := range cases {
		if got := phaseName(tc.illum, tc.waxing); got != tc.want {
			t.Errorf("phaseName(%.3f, %v) = %q, want %q", tc.illum, tc.waxing, got, tc.want)
		}
	}
}
