package interp

import "fmt"

// Root finds a zero of the interpolating polynomial inside [xl, xh] with
// the default iteration budget. Passing zero for both limits searches the
// whole table domain; equal nonzero limits are an error. Limits given in
// the wrong order are swapped and limits outside the table domain are
// clamped to it.
//
// The endpoints must straddle a sign change; the search never looks for a
// root outside a sign-changing bracket. On success the returned x satisfies
// |f(x)| < tol and lies inside the bracket.
func (t *Table[T]) Root(xl, xh T) (T, error) {
	return t.RootIter(xl, xh, DefaultMaxIter)
}

// RootIter is Root with an explicit iteration budget. A non-positive budget
// falls back to DefaultMaxIter.
//
// Iteration runs Newton-Raphson from the bracket midpoint and falls back to
// false-position interpolation between the bracket endpoints whenever the
// local derivative is too small or the Newton step would leave the table
// domain. After every step the endpoint whose sign matches the new value is
// replaced, so the root stays bracketed even when Newton wanders.
func (t *Table[T]) RootIter(xl, xh T, maxIter int) (T, error) {
	if maxIter <= 0 {
		maxIter = DefaultMaxIter
	}

	lo, hi := t.Domain()
	switch {
	case xl == 0 && xh == 0:
		xl, xh = lo, hi
	case xl == xh:
		return 0, fmt.Errorf("%w: xl = xh = %v", ErrEqualLimits, xl)
	}
	if xl > xh {
		xl, xh = xh, xl
	}
	if xl < lo {
		xl = lo
	}
	if xh > hi {
		xh = hi
	}

	yl, err := t.Eval(xl)
	if err != nil {
		return 0, err
	}
	yh, err := t.Eval(xh)
	if err != nil {
		return 0, err
	}
	if float64(abs(yl)) < t.tol {
		return xl, nil
	}
	if float64(abs(yh)) < t.tol {
		return xh, nil
	}
	if (yl > 0) == (yh > 0) {
		return 0, fmt.Errorf("%w: f(%v)=%v and f(%v)=%v, assuming no root in this interval",
			ErrNoSignChange, xl, yl, xh, yh)
	}

	x := (xl + xh) / 2
	for i := 0; i < maxIter; i++ {
		y, err := t.Eval(x)
		if err != nil {
			return 0, err
		}
		if float64(abs(y)) < t.tol {
			return x, nil
		}
		d, err := t.Deriv(x)
		if err != nil {
			return 0, err
		}

		// Take a Newton step unless the derivative is too small or the step
		// escapes the table domain; then interpolate linearly between the
		// bracket endpoints instead.
		falsePos := (xl*yh - xh*yl) / (yh - yl)
		next := falsePos
		if float64(abs(d)) >= derivFloor {
			if n := x - y/d; n >= lo && n <= hi {
				next = n
			}
		}

		ny, err := t.Eval(next)
		if err != nil {
			return 0, err
		}
		if (ny > 0) == (yl > 0) {
			xl, yl = next, ny
		} else {
			xh, yh = next, ny
		}
		x = next
	}
	return 0, fmt.Errorf("%w: no convergence after %d iterations, probably no root exists",
		ErrTooManyIterations, maxIter)
}

// Extremum finds the abscissa of a local extremum of the interpolating
// polynomial inside [xl, xh], with the same interval semantics and failure
// modes as Root. The extreme value itself is Eval at the returned abscissa.
func (t *Table[T]) Extremum(xl, xh T) (T, error) {
	return t.ExtremumIter(xl, xh, DefaultMaxIter)
}

// ExtremumIter is Extremum with an explicit iteration budget.
//
// The search builds a disposable table of derivative values over the same
// abscissas and finds a root of that derived table: a sign change of the
// derivative brackets the extremum. No sign change means no extremum.
func (t *Table[T]) ExtremumIter(xl, xh T, maxIter int) (T, error) {
	dys := make([]T, len(t.xs))
	for i, xi := range t.xs {
		d, err := t.Deriv(xi)
		if err != nil {
			return 0, err
		}
		dys[i] = d
	}
	dt, err := NewTable(t.xs, dys, Tolerance[T](t.tol))
	if err != nil {
		return 0, err
	}
	return dt.RootIter(xl, xh, maxIter)
}
