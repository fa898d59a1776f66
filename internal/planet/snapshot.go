package planet

import (
	"time"

	"github.com/litescript/ls-almanac/internal/astro"
	"github.com/litescript/ls-almanac/internal/julian"
)

// BodyKind categorizes bodies for rendering.
type BodyKind int

const (
	BodySun BodyKind = iota
	BodyPlanet
)

// String returns the body kind name.
func (k BodyKind) String() string {
	switch k {
	case BodySun:
		return "sun"
	case BodyPlanet:
		return "planet"
	default:
		return "unknown"
	}
}

// Body represents a body in heliocentric ecliptic coordinates.
type Body struct {
	Name  string     // Display name (e.g., "Earth")
	Code  string     // Short code (e.g., "EARTH")
	Kind  BodyKind   // Sun or Planet
	Class Class      // For planets: inner or giant
	Pos   astro.Vec3 // Position in AU (heliocentric ecliptic)
}

// DistanceAU returns the heliocentric distance in AU.
func (b Body) DistanceAU() float64 {
	return b.Pos.Norm()
}

// EclipticLatDeg returns the ecliptic latitude in degrees.
func (b Body) EclipticLatDeg() float64 {
	return astro.EclipticLatitude(b.Pos)
}

// EclipticLonDeg returns the ecliptic longitude in degrees.
func (b Body) EclipticLonDeg() float64 {
	return astro.EclipticLongitude(b.Pos)
}

// LightTimeSec returns the one-way light time from the Sun in seconds.
func (b Body) LightTimeSec() float64 {
	return astro.LightTimeFromAU(b.DistanceAU())
}

// Snapshot represents the state of the solar system at an instant.
type Snapshot struct {
	GeneratedAt time.Time
	Bodies      []Body
}

// ComputeSnapshot evaluates every planet's position for a civil time.
// The Sun sits at the origin.
func ComputeSnapshot(t time.Time) Snapshot {
	jd := julian.FromTime(t)

	bodies := make([]Body, 0, len(Planets)+1)
	bodies = append(bodies, Body{Name: "Sun", Code: "SUN", Kind: BodySun})
	for _, p := range Planets {
		bodies = append(bodies, Body{
			Name:  p.Name,
			Code:  p.Code,
			Kind:  BodyPlanet,
			Class: p.Class,
			Pos:   HeliocentricEcliptic(p, jd),
		})
	}

	return Snapshot{GeneratedAt: t, Bodies: bodies}
}

// GetBody returns a body by code, or nil if not found.
func (s Snapshot) GetBody(code string) *Body {
	for i := range s.Bodies {
		if s.Bodies[i].Code == code {
			return &s.Bodies[i]
		}
	}
	return nil
}

// GetPlanets returns all planet bodies.
func (s Snapshot) GetPlanets() []Body {
	var planets []Body
	for _, b := range s.Bodies {
		if b.Kind == BodyPlanet {
			planets = append(planets, b)
		}
	}
	return planets
}
