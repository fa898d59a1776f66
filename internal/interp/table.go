package interp

import "fmt"

// Table holds ordered samples of a single-valued function together with the
// Newton divided-difference coefficients of the interpolating polynomial.
//
// Abscissas are strictly ascending after construction regardless of input
// order; each ordinate stays paired with its original abscissa.
type Table[T Real] struct {
	xs     []T
	ys     []T
	coeffs []T
	tol    float64
}

// Option configures table construction.
type Option[T Real] func(*Table[T])

// Tolerance overrides the equality tolerance used by the table. Values
// closer than tol are treated as equal throughout: duplicate detection,
// exact-match lookup and root convergence.
func Tolerance[T Real](tol float64) Option[T] {
	return func(t *Table[T]) {
		if tol > 0 {
			t.tol = tol
		}
	}
}

// NewTable builds a table from parallel abscissa and ordinate slices.
//
// If the slices differ in length both are truncated to the shorter one;
// this is deliberate permissiveness, not an error. At least two samples
// must remain, and no two abscissas may be closer than the tolerance.
func NewTable[T Real](xs, ys []T, opts ...Option[T]) (*Table[T], error) {
	t := &Table[T]{tol: DefaultTol}
	for _, opt := range opts {
		opt(t)
	}
	if err := t.rebuild(xs, ys); err != nil {
		return nil, err
	}
	return t, nil
}

// NewSequenceTable builds a table from ordinates alone, with synthetic
// abscissas 0, 1, 2, ...
func NewSequenceTable[T Real](ys []T, opts ...Option[T]) (*Table[T], error) {
	xs := make([]T, len(ys))
	for i := range xs {
		xs[i] = T(i)
	}
	return NewTable(xs, ys, opts...)
}

// NewFlatTable builds a table from an interleaved x1, y1, x2, y2, ...
// sequence. A dangling trailing value (odd length) is dropped, matching the
// truncation rule of NewTable.
func NewFlatTable[T Real](flat []T, opts ...Option[T]) (*Table[T], error) {
	n := len(flat) / 2
	xs := make([]T, n)
	ys := make([]T, n)
	for i := 0; i < n; i++ {
		xs[i] = flat[2*i]
		ys[i] = flat[2*i+1]
	}
	return NewTable(xs, ys, opts...)
}

// Set discards the current samples and rebuilds the table from new ones,
// with the same contract as NewTable. On error the previous samples are
// kept. Set must not be called concurrently with queries on the same table.
func (t *Table[T]) Set(xs, ys []T) error {
	return t.rebuild(xs, ys)
}

// rebuild validates, orders and stages the samples, then computes the
// divided-difference coefficients. State is replaced only on success.
func (t *Table[T]) rebuild(xs, ys []T) error {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	if n < 2 {
		return fmt.Errorf("%w: have %d samples, need at least 2", ErrInsufficientData, n)
	}

	sx := append([]T(nil), xs[:n]...)
	sy := append([]T(nil), ys[:n]...)

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if float64(abs(sx[i]-sx[j])) < t.tol {
				return fmt.Errorf("%w: x[%d] and x[%d] are both %v", ErrDuplicateAbscissa, i, j, sx[i])
			}
		}
	}

	// Selection order by ascending x, carrying each y with its x. Ties are
	// impossible after the distinctness check.
	for i := 0; i < n-1; i++ {
		m := i
		for j := i + 1; j < n; j++ {
			if sx[j] < sx[m] {
				m = j
			}
		}
		sx[i], sx[m] = sx[m], sx[i]
		sy[i], sy[m] = sy[m], sy[i]
	}

	t.xs = sx
	t.ys = sy
	t.coeffs = dividedDifferences(sx, sy)
	return nil
}

// dividedDifferences computes the Newton coefficients bottom-up: after pass
// k, c[i] holds the divided difference over samples i-k..i, so c[k] ends up
// as the difference over the first k+1 samples. O(n²) in sample count.
func dividedDifferences[T Real](xs, ys []T) []T {
	n := len(xs)
	c := append([]T(nil), ys...)
	for k := 1; k < n; k++ {
		for i := n - 1; i >= k; i-- {
			c[i] = (c[i] - c[i-1]) / (xs[i] - xs[i-k])
		}
	}
	return c
}

// Len returns the number of samples in the table.
func (t *Table[T]) Len() int { return len(t.xs) }

// X returns the i-th abscissa in ascending order.
func (t *Table[T]) X(i int) T { return t.xs[i] }

// Y returns the ordinate paired with the i-th abscissa.
func (t *Table[T]) Y(i int) T { return t.ys[i] }

// Domain returns the inclusive abscissa range covered by the table.
func (t *Table[T]) Domain() (lo, hi T) {
	return t.xs[0], t.xs[len(t.xs)-1]
}

// Tol returns the equality tolerance of the table.
func (t *Table[T]) Tol() float64 { return t.tol }
