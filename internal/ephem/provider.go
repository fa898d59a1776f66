// Package ephem supplies apparent positions for almanac targets behind a
// provider interface, so the UI and planners do not care which theory
// produced a coordinate.
package ephem

import (
	"time"

	"github.com/litescript/ls-almanac/internal/astro"
)

// TargetID names a body the provider can resolve, e.g. "SUN", "MOON",
// "MARS" or a bright star name.
type TargetID string

// Point represents a target position at a specific time.
type Point struct {
	Time  time.Time
	Coord astro.SkyCoord // RA/Dec plus Az/El when an observer was supplied
	Valid bool           // Whether this point has valid data
}

// Path represents a trajectory arc over time.
type Path struct {
	Target TargetID
	Points []Point
	Start  time.Time
	End    time.Time
}

// Provider defines the interface for ephemeris sources.
type Provider interface {
	// Name returns the provider name for display/logging.
	Name() string

	// Position returns the position of a target at a time. The observer
	// is used to fill horizontal coordinates.
	Position(target TargetID, t time.Time, obs astro.Observer) (Point, error)

	// Trajectory returns an arc for a target over a time range with the
	// given step between points.
	Trajectory(target TargetID, start, end time.Time, step time.Duration, obs astro.Observer) (Path, error)

	// Available reports whether this provider can supply the target.
	Available(target TargetID) bool
}
