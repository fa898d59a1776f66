package planet

import (
	"math"
	"testing"
	"time"

	"github.com/litescript/ls-almanac/internal/astro"
	"github.com/litescript/ls-almanac/internal/julian"
	"github.com/litescript/ls-almanac/internal/sexa"
	"github.com/litescript/ls-almanac/internal/sun"
)

func TestSolveKeplerCircularOrbit(t *testing.T) {
	// Zero eccentricity: eccentric anomaly equals mean anomaly.
	for _, m := range []float64{-120, -30, 0, 45, 170} {
		if got := solveKepler(m, 0); math.Abs(got-m) > 1e-9 {
			t.Errorf("solveKepler(%v, 0) = %v, want %v", m, got, m)
		}
	}
}

func TestSolveKeplerSatisfiesEquation(t *testing.T) {
	// The solution must satisfy M = E - e*sin(E) (e in degrees).
	cases := []struct{ m, e float64 }{
		{30, 0.0167},
		{120, 0.2056},
		{-75, 0.0934},
		{179, 0.0484},
	}
	for _, tc := range cases {
		ecc := solveKepler(tc.m, tc.e)
		eDeg := tc.e * 180 / math.Pi
		back := ecc - eDeg*math.Sin(ecc*math.Pi/180)
		if math.Abs(back-tc.m) > 1e-6 {
			t.Errorf("solveKepler(%v, %v): residual %v deg", tc.m, tc.e, math.Abs(back-tc.m))
		}
	}
}

func TestHeliocentricDistancesWithinOrbit(t *testing.T) {
	// Over a year of samples every planet must stay between perihelion
	// and aphelion (with a small slack for the element rates).
	jd0 := julian.FromCalendar(2024, 1, 1.0)
	for _, p := range Planets {
		rMin := p.Orbit.A*(1-p.Orbit.E) - 0.01
		rMax := p.Orbit.A*(1+p.Orbit.E) + 0.01
		for day := 0; day < 365; day += 30 {
			r := HeliocentricEcliptic(p, jd0+float64(day)).Norm()
			if r < rMin || r > rMax {
				t.Errorf("%s at +%dd: r=%.4f AU outside [%.4f, %.4f]", p.Name, day, r, rMin, rMax)
			}
		}
	}
}

func TestEarthLongitudeRate(t *testing.T) {
	// The Earth advances close to 0.9856 deg/day in heliocentric longitude.
	earth := Find("EARTH")
	jd := julian.FromCalendar(2024, 3, 1.0)

	lon1 := astro.EclipticLongitude(HeliocentricEcliptic(*earth, jd))
	lon2 := astro.EclipticLongitude(HeliocentricEcliptic(*earth, jd+10))
	rate := sexa.Angle(lon2 - lon1).Norm().Deg() / 10

	if math.Abs(rate-0.9856) > 0.03 {
		t.Errorf("Earth longitude rate = %.4f deg/day, want ~0.9856", rate)
	}
}

func TestEarthConsistentWithSolarTheory(t *testing.T) {
	// The geocentric solar longitude implied by the Earth's orbit must
	// agree with the independent solar theory to within the element
	// accuracy plus aberration.
	earth := Find("EARTH")
	for _, date := range []struct{ y, m int; d float64 }{
		{2024, 1, 15.0}, {2024, 4, 15.0}, {2024, 7, 15.0}, {2024, 10, 15.0},
	} {
		jd := julian.FromCalendar(date.y, date.m, date.d)
		fromOrbit := sexa.Angle(astro.EclipticLongitude(HeliocentricEcliptic(*earth, jd)) + 180).Norm()
		fromTheory := sun.ApparentLongitude(jd)
		if diff := math.Abs(fromOrbit.Deg() - fromTheory.Norm().Deg()); diff > 0.1 && diff < 359.9 {
			t.Errorf("%d-%02d: orbit lon %.4f vs solar theory %.4f", date.y, date.m,
				fromOrbit.Deg(), fromTheory.Norm().Deg())
		}
	}
}

func TestApparentMarsPlausible(t *testing.T) {
	// Mars on 2024-01-15 sat in Sagittarius, near RA 19h10m (287 deg),
	// Dec about -23 deg, a couple of months past solar conjunction.
	jd := julian.FromCalendar(2024, 1, 15.0)
	mars := Find("MARS")

	ra, dec, dist := Apparent(*mars, jd)
	if got := ra.Deg(); math.Abs(got-287) > 3 {
		t.Errorf("Mars RA = %.2f deg, want ~287 +/- 3", got)
	}
	if got := dec.Deg(); math.Abs(got-(-23.3)) > 1.5 {
		t.Errorf("Mars Dec = %.2f deg, want ~-23.3 +/- 1.5", got)
	}
	// Mars was near conjunction, so well over 2 AU away.
	if dist < 2.0 || dist > 2.6 {
		t.Errorf("Mars distance = %.3f AU, want between 2.0 and 2.6", dist)
	}
}

func TestComputeSnapshot(t *testing.T) {
	snap := ComputeSnapshot(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))

	if len(snap.Bodies) != len(Planets)+1 {
		t.Fatalf("snapshot has %d bodies, want %d", len(snap.Bodies), len(Planets)+1)
	}
	sun := snap.GetBody("SUN")
	if sun == nil || sun.Kind != BodySun || sun.Pos.Norm() != 0 {
		t.Error("snapshot missing Sun at origin")
	}
	if planets := snap.GetPlanets(); len(planets) != 8 {
		t.Errorf("GetPlanets returned %d bodies, want 8", len(planets))
	}
	if jup := snap.GetBody("JUP"); jup == nil {
		t.Error("GetBody(JUP) returned nil")
	} else if d := jup.DistanceAU(); d < 4.9 || d > 5.5 {
		t.Errorf("Jupiter distance %.3f AU outside [4.9, 5.5]", d)
	}
	if snap.GetBody("NOPE") != nil {
		t.Error("GetBody for unknown code should return nil")
	}
}

func TestFind(t *testing.T) {
	if p := Find("SAT"); p == nil || p.Name != "Saturn" {
		t.Errorf("Find(SAT) = %+v, want Saturn", p)
	}
	if Find("PLUTO") != nil {
		t.Error("Find(PLUTO) should return nil")
	}
}
