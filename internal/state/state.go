// Package state provides thread-safe state management for the application.
package state

import (
	"sync"
	"time"

	"github.com/litescript/ls-almanac/internal/almanac"
	"github.com/litescript/ls-almanac/internal/astro"
	"github.com/litescript/ls-almanac/internal/planet"
)

// EventType represents the type of sky event.
type EventType string

const (
	EventRise    EventType = "RISE"
	EventSet     EventType = "SET"
	EventTransit EventType = "TRANSIT"
)

// Event represents a body crossing its horizon or the meridian.
type Event struct {
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Body      string    `json:"body"`
	Elevation float64   `json:"elevation,omitempty"`
}

// BodyStatus is the current sky position of one tracked body.
type BodyStatus struct {
	Name      string
	Code      string
	Coord     astro.SkyCoord
	Tier      almanac.Tier
	Up        bool
	RiseToday time.Time
	SetToday  time.Time
}

// Manager handles all shared application state with thread-safe access.
type Manager struct {
	mu sync.RWMutex

	// Current state
	observer        astro.Observer
	plan            *almanac.DayPlan
	solar           planet.Snapshot
	bodies          []BodyStatus
	lastCompute     time.Time
	lastError       error
	computeDuration time.Duration

	// Previous up/down flags for event detection
	prevUp map[string]bool

	// Event log (ring buffer)
	events       []Event
	maxEvents    int
	eventWriteAt int

	// Configuration
	refreshInterval time.Duration
}

// Config holds configuration for the state manager.
type Config struct {
	MaxEvents       int
	RefreshInterval time.Duration
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		MaxEvents:       50,
		RefreshInterval: 30 * time.Second,
	}
}

// NewManager creates a new state manager.
func NewManager(obs astro.Observer, cfg Config) *Manager {
	maxEvents := cfg.MaxEvents
	if maxEvents <= 0 {
		maxEvents = 50
	}
	return &Manager{
		observer:        obs,
		maxEvents:       maxEvents,
		events:          make([]Event, 0, maxEvents),
		refreshInterval: cfg.RefreshInterval,
		prevUp:          make(map[string]bool),
	}
}

// Update atomically installs a freshly computed sky state.
func (m *Manager) Update(plan *almanac.DayPlan, solar planet.Snapshot, bodies []BodyStatus, computeDuration time.Duration, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lastCompute = time.Now()
	m.lastError = err
	m.computeDuration = computeDuration

	if err != nil {
		return
	}

	m.detectEvents(bodies)

	m.plan = plan
	m.solar = solar
	m.bodies = bodies

	m.prevUp = make(map[string]bool, len(bodies))
	for _, b := range bodies {
		m.prevUp[b.Code] = b.Up
	}
}

// detectEvents compares the new body set with the previous one and logs
// horizon crossings.
func (m *Manager) detectEvents(bodies []BodyStatus) {
	if len(m.prevUp) == 0 {
		return
	}

	now := time.Now()
	for _, b := range bodies {
		wasUp, known := m.prevUp[b.Code]
		if !known || wasUp == b.Up {
			continue
		}
		typ := EventSet
		if b.Up {
			typ = EventRise
		}
		m.addEvent(Event{
			Type:      typ,
			Timestamp: now,
			Body:      b.Name,
			Elevation: b.Coord.ElDeg,
		})
	}
}

// addEvent adds an event to the ring buffer.
func (m *Manager) addEvent(e Event) {
	if len(m.events) < m.maxEvents {
		m.events = append(m.events, e)
	} else {
		m.events[m.eventWriteAt] = e
		m.eventWriteAt = (m.eventWriteAt + 1) % m.maxEvents
	}
}

// Snapshot represents an immutable snapshot of current state.
type Snapshot struct {
	Observer        astro.Observer
	Plan            *almanac.DayPlan
	Solar           planet.Snapshot
	Bodies          []BodyStatus
	LastCompute     time.Time
	LastError       error
	ComputeDuration time.Duration
	NextRefresh     time.Time
	Events          []Event
}

// Snapshot returns a consistent snapshot of current state.
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	bodies := make([]BodyStatus, len(m.bodies))
	copy(bodies, m.bodies)

	return Snapshot{
		Observer:        m.observer,
		Plan:            m.plan,
		Solar:           m.solar,
		Bodies:          bodies,
		LastCompute:     m.lastCompute,
		LastError:       m.lastError,
		ComputeDuration: m.computeDuration,
		NextRefresh:     m.lastCompute.Add(m.refreshInterval),
		Events:          m.getEventsOrdered(),
	}
}

// getEventsOrdered returns events in chronological order.
func (m *Manager) getEventsOrdered() []Event {
	if len(m.events) == 0 {
		return nil
	}

	if len(m.events) < m.maxEvents {
		result := make([]Event, len(m.events))
		copy(result, m.events)
		return result
	}

	// Ring buffer is full, reorder from oldest to newest
	result := make([]Event, m.maxEvents)
	for i := 0; i < m.maxEvents; i++ {
		idx := (m.eventWriteAt + i) % m.maxEvents
		result[i] = m.events[idx]
	}
	return result
}

// RecentEvents returns the last n events.
func (m *Manager) RecentEvents(n int) []Event {
	m.mu.RLock()
	defer m.mu.RUnlock()

	all := m.getEventsOrdered()
	if len(all) <= n {
		return all
	}
	return all[len(all)-n:]
}

// Observer returns the configured observer site.
func (m *Manager) Observer() astro.Observer {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.observer
}

// RefreshInterval returns the configured refresh interval.
func (m *Manager) RefreshInterval() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.refreshInterval
}

// SetRefreshInterval updates the refresh interval.
func (m *Manager) SetRefreshInterval(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.refreshInterval = d
}

// HasData returns true if at least one compute cycle has completed.
func (m *Manager) HasData() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.plan != nil
}
