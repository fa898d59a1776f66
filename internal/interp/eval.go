package interp

import "fmt"

// Eval returns the value of the interpolating polynomial at x.
//
// An abscissa within the tolerance of a sample returns the stored ordinate
// directly, avoiding needless floating error. Anywhere else x must lie
// inside the table domain, boundaries included.
func (t *Table[T]) Eval(x T) (T, error) {
	for i, xi := range t.xs {
		if float64(abs(x-xi)) < t.tol {
			return t.ys[i], nil
		}
	}
	if err := t.checkDomain(x); err != nil {
		return 0, err
	}

	// Horner fold over the Newton form, last coefficient first.
	n := len(t.coeffs)
	acc := t.coeffs[n-1]
	for i := n - 1; i >= 1; i-- {
		acc = t.coeffs[i-1] + (x-t.xs[i-1])*acc
	}
	return acc, nil
}

// Deriv returns the derivative of the interpolating polynomial at x. The
// same domain rule as Eval applies.
func (t *Table[T]) Deriv(x T) (T, error) {
	if err := t.checkDomain(x); err != nil {
		return 0, err
	}

	n := len(t.xs)
	if n == 2 {
		// Degree-1 polynomial: constant slope.
		return (t.ys[1] - t.ys[0]) / (t.xs[1] - t.xs[0]), nil
	}

	// Differentiate the Newton form term by term: the degree-k term
	// coeff[k]·Π(x−xs[i]) contributes, for each factor j it can lose, the
	// product of the remaining k−1 factors. The k=1 term reduces to
	// coeff[1] itself.
	var res T
	for k := 1; k < n; k++ {
		var sum T
		for j := 0; j < k; j++ {
			prod := T(1)
			for i := 0; i < k; i++ {
				if i != j {
					prod *= x - t.xs[i]
				}
			}
			sum += prod
		}
		res += t.coeffs[k] * sum
	}
	return res, nil
}

func (t *Table[T]) checkDomain(x T) error {
	if x < t.xs[0] || x > t.xs[len(t.xs)-1] {
		return fmt.Errorf("%w: x=%v, table covers [%v, %v]",
			ErrOutOfDomain, x, t.xs[0], t.xs[len(t.xs)-1])
	}
	return nil
}
