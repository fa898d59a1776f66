// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.5.0"

// Milestones:
// 0.5.0 - Orbit view with log-compressed ecliptic projection, rise/set event log
// 0.4.0 - Planetary positions from mean orbital elements, per-planet windows
// 0.3.0 - Lunar theory, moon phases, polynomial refinement of horizon crossings
// 0.2.0 - Solar theory, twilight windows, star catalog in the sky view
// 0.1.0 - Initial release: TUI dashboard, sky view, headless modes
