package ephem

import (
	"errors"
	"fmt"
	"time"

	"github.com/litescript/ls-almanac/internal/astro"
	"github.com/litescript/ls-almanac/internal/julian"
	"github.com/litescript/ls-almanac/internal/moon"
	"github.com/litescript/ls-almanac/internal/planet"
	"github.com/litescript/ls-almanac/internal/sun"
)

// ErrUnknownTarget is returned when no theory covers the requested body.
var ErrUnknownTarget = errors.New("unknown ephemeris target")

// Computed resolves targets from the built-in closed-form theories: the
// solar and lunar series, planetary mean elements and the star catalog.
type Computed struct{}

// NewComputed returns a provider backed by the built-in theories.
func NewComputed() *Computed { return &Computed{} }

// Name returns the provider name.
func (c *Computed) Name() string { return "computed" }

// Available reports whether the target resolves against any theory.
func (c *Computed) Available(target TargetID) bool {
	switch target {
	case "SUN", "MOON":
		return true
	}
	if p := planet.Find(string(target)); p != nil && p.Code != "EARTH" {
		return true
	}
	_, ok := astro.FindStar(string(target))
	return ok
}

// Position returns the apparent position of a target at a time.
func (c *Computed) Position(target TargetID, t time.Time, obs astro.Observer) (Point, error) {
	coord, err := c.geocentric(target, t)
	if err != nil {
		return Point{}, err
	}
	return Point{
		Time:  t,
		Coord: astro.EquatorialToHorizontal(coord, obs, t),
		Valid: true,
	}, nil
}

// Trajectory samples a target's position over a time range.
func (c *Computed) Trajectory(target TargetID, start, end time.Time, step time.Duration, obs astro.Observer) (Path, error) {
	if !end.After(start) {
		return Path{}, fmt.Errorf("trajectory for %s: end %v not after start %v", target, end, start)
	}
	if step <= 0 {
		return Path{}, fmt.Errorf("trajectory for %s: non-positive step %v", target, step)
	}

	path := Path{Target: target, Start: start, End: end}
	for t := start; !t.After(end); t = t.Add(step) {
		p, err := c.Position(target, t, obs)
		if err != nil {
			return Path{}, err
		}
		path.Points = append(path.Points, p)
	}
	return path, nil
}

// geocentric dispatches a target to the theory that covers it.
func (c *Computed) geocentric(target TargetID, t time.Time) (astro.SkyCoord, error) {
	switch target {
	case "SUN":
		return sun.Position(t), nil
	case "MOON":
		return moon.Position(t), nil
	}
	if p := planet.Find(string(target)); p != nil && p.Code != "EARTH" {
		ra, dec, dist := planet.Apparent(*p, julian.FromTime(t))
		return astro.SkyCoord{
			RAdeg:   ra.Deg(),
			DecDeg:  dec.Deg(),
			RangeKm: astro.AUToKm(dist),
		}, nil
	}
	if s, ok := astro.FindStar(string(target)); ok {
		return astro.SkyCoord{RAdeg: s.RA.Deg(), DecDeg: s.Dec.Deg()}, nil
	}
	return astro.SkyCoord{}, fmt.Errorf("%w: %q", ErrUnknownTarget, target)
}
