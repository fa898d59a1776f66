package almanac

import (
	"time"

	"github.com/litescript/ls-almanac/internal/astro"
	"github.com/litescript/ls-almanac/internal/julian"
	"github.com/litescript/ls-almanac/internal/moon"
	"github.com/litescript/ls-almanac/internal/planet"
	"github.com/litescript/ls-almanac/internal/sun"
)

// PlanetWindow pairs a planet with its visibility window.
type PlanetWindow struct {
	Name string
	Code string
	Window
}

// DayPlan collects the observing events of one civil day at one site.
type DayPlan struct {
	Date     time.Time
	Observer astro.Observer

	// Sun holds the sunrise/sunset window; the twilight windows track
	// the Sun against the deeper thresholds, so their Rise is dawn and
	// their Set is dusk.
	Sun              Window
	CivilTwilight    Window
	NauticalTwilight Window
	AstroTwilight    Window

	Moon      Window
	MoonPhase moon.Phase

	Planets []PlanetWindow
}

// PlanDay computes the full set of rise/set events for the civil day
// containing t.
func PlanDay(obs astro.Observer, t time.Time) (*DayPlan, error) {
	sunPos := PositionFunc(sun.Position)
	moonPos := PositionFunc(moon.Position)

	plan := &DayPlan{Date: t, Observer: obs}

	var err error
	if plan.Sun, err = RiseSet(obs, sunPos, t, HorizonSun); err != nil {
		return nil, err
	}
	if plan.CivilTwilight, err = RiseSet(obs, sunPos, t, TwilightCivil); err != nil {
		return nil, err
	}
	if plan.NauticalTwilight, err = RiseSet(obs, sunPos, t, TwilightNautical); err != nil {
		return nil, err
	}
	if plan.AstroTwilight, err = RiseSet(obs, sunPos, t, TwilightAstronomical); err != nil {
		return nil, err
	}

	if plan.Moon, err = RiseSet(obs, moonPos, t, HorizonMoon); err != nil {
		return nil, err
	}
	plan.MoonPhase = moon.CurrentPhase(t)

	for _, p := range planet.Planets {
		if p.Code == "EARTH" {
			continue
		}
		w, err := RiseSet(obs, planetPosition(p), t, HorizonStandard)
		if err != nil {
			return nil, err
		}
		plan.Planets = append(plan.Planets, PlanetWindow{Name: p.Name, Code: p.Code, Window: w})
	}

	return plan, nil
}

// planetPosition adapts a planet definition to a PositionFunc.
func planetPosition(p planet.Def) PositionFunc {
	return func(t time.Time) astro.SkyCoord {
		ra, dec, dist := planet.Apparent(p, julian.FromTime(t))
		return astro.SkyCoord{
			RAdeg:   ra.Deg(),
			DecDeg:  dec.Deg(),
			RangeKm: astro.AUToKm(dist),
		}
	}
}

// Dawn returns the morning time the Sun climbs through the given
// twilight threshold.
func (p *DayPlan) Dawn(threshold float64) time.Time {
	switch threshold {
	case TwilightCivil:
		return p.CivilTwilight.Rise
	case TwilightNautical:
		return p.NauticalTwilight.Rise
	default:
		return p.AstroTwilight.Rise
	}
}

// Dusk returns the evening time the Sun drops through the given
// twilight threshold.
func (p *DayPlan) Dusk(threshold float64) time.Time {
	switch threshold {
	case TwilightCivil:
		return p.CivilTwilight.Set
	case TwilightNautical:
		return p.NauticalTwilight.Set
	default:
		return p.AstroTwilight.Set
	}
}
