// Package interp implements table-driven polynomial interpolation using
// Newton divided differences, together with differentiation, root finding
// and local extremum finding on the interpolating polynomial.
//
// A Table is built once from sample points and is immutable afterwards;
// every query is a pure function of the table and its argument, so
// concurrent read-only use is safe. Set rebuilds a table in place and must
// not race with in-flight queries.
//
// The engine interpolates only: querying outside the sampled abscissa range
// is an error, never an extrapolation.
package interp

import "errors"

// Real is the numeric capability set the engine works over: any defined
// float64 type with ordinary arithmetic and ordering. Plain float64 and
// angle-like types such as sexa.Angle both satisfy it.
type Real interface{ ~float64 }

const (
	// DefaultTol is the tolerance below which two values are treated as
	// equal: duplicate-abscissa detection, exact-match short-circuiting
	// and root convergence all use it.
	DefaultTol = 1e-10

	// DefaultMaxIter bounds the root search iteration count.
	DefaultMaxIter = 1000

	// derivFloor is the derivative magnitude below which a Newton step is
	// considered unstable and the solver falls back to false position.
	derivFloor = 1e-3
)

// Errors reported by table construction and queries.
var (
	ErrInsufficientData  = errors.New("insufficient data for interpolation")
	ErrDuplicateAbscissa = errors.New("equal x values in interpolation table")
	ErrOutOfDomain       = errors.New("outside interpolation range")
	ErrEqualLimits       = errors.New("search limits are equal")
	ErrNoSignChange      = errors.New("no sign change across the interval")
	ErrTooManyIterations = errors.New("too many iterations without convergence")
)

func abs[T Real](v T) T {
	if v < 0 {
		return -v
	}
	return v
}
