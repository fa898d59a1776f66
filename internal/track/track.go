// Package track runs the periodic sky computation that feeds the state
// manager, playing the role a network fetcher would in a live-data app.
package track

import (
	"context"
	"time"

	"github.com/litescript/ls-almanac/internal/almanac"
	"github.com/litescript/ls-almanac/internal/ephem"
	"github.com/litescript/ls-almanac/internal/planet"
	"github.com/litescript/ls-almanac/internal/state"
)

// Result bundles the output of one compute cycle.
type Result struct {
	Plan     *almanac.DayPlan
	Solar    planet.Snapshot
	Bodies   []state.BodyStatus
	Duration time.Duration
	Error    error
}

// Computer evaluates the day plan and body positions for a site.
type Computer struct {
	provider ephem.Provider
	targets  []target
}

type target struct {
	name string
	id   ephem.TargetID
}

// New creates a computer tracking the Sun, the Moon and the planets.
func New(provider ephem.Provider) *Computer {
	targets := []target{
		{name: "Sun", id: "SUN"},
		{name: "Moon", id: "MOON"},
	}
	for _, p := range planet.Planets {
		if p.Code == "EARTH" {
			continue
		}
		targets = append(targets, target{name: p.Name, id: ephem.TargetID(p.Code)})
	}
	return &Computer{provider: provider, targets: targets}
}

// Compute evaluates the full sky state at a time. It respects context
// cancellation between bodies so shutdown stays prompt.
func (c *Computer) Compute(ctx context.Context, snap state.Snapshot, t time.Time) Result {
	started := time.Now()

	plan, err := almanac.PlanDay(snap.Observer, t)
	if err != nil {
		return Result{Duration: time.Since(started), Error: err}
	}

	bodies := make([]state.BodyStatus, 0, len(c.targets))
	for _, tgt := range c.targets {
		if ctx.Err() != nil {
			return Result{Duration: time.Since(started), Error: ctx.Err()}
		}
		pt, err := c.provider.Position(tgt.id, t, snap.Observer)
		if err != nil {
			return Result{Duration: time.Since(started), Error: err}
		}

		status := state.BodyStatus{
			Name:  tgt.name,
			Code:  string(tgt.id),
			Coord: pt.Coord,
			Tier:  almanac.ElevationTier(pt.Coord.ElDeg),
			Up:    pt.Coord.ElDeg > horizonFor(tgt.id),
		}
		if w := windowFor(plan, tgt.id); w != nil {
			status.RiseToday = w.Rise
			status.SetToday = w.Set
		}
		bodies = append(bodies, status)
	}

	return Result{
		Plan:     plan,
		Solar:    planet.ComputeSnapshot(t),
		Bodies:   bodies,
		Duration: time.Since(started),
	}
}

func horizonFor(id ephem.TargetID) float64 {
	switch id {
	case "SUN":
		return almanac.HorizonSun
	case "MOON":
		return almanac.HorizonMoon
	default:
		return almanac.HorizonStandard
	}
}

func windowFor(plan *almanac.DayPlan, id ephem.TargetID) *almanac.Window {
	switch id {
	case "SUN":
		return &plan.Sun
	case "MOON":
		return &plan.Moon
	}
	for i := range plan.Planets {
		if plan.Planets[i].Code == string(id) {
			return &plan.Planets[i].Window
		}
	}
	return nil
}
