// Package rootfind provides a bracketed root finder for monotone
// continuous functions of one real variable.
package rootfind

import (
	"errors"
	"math"
)

// ErrNotBracketed is returned when f(lo) and f(hi) do not have opposite
// signs, so no root is guaranteed to exist in [lo, hi].
var ErrNotBracketed = errors.New("rootfind: root not bracketed by [lo, hi]")

// ErrMaxIterations is returned when the iteration budget is exhausted
// before the tolerance is met.
var ErrMaxIterations = errors.New("rootfind: maximum iterations exceeded")

// Bisect finds a root of f in [lo, hi] to within relative tolerance tol,
// using bisection to maintain a shrinking bracket and a secant step to
// accelerate convergence within it. f(lo) and f(hi) must have opposite
// signs. maxIter bounds the number of refinement steps; f is evaluated at
// most maxIter+2 times (once at each endpoint, then once per step).
func Bisect(f func(float64) float64, lo, hi, tol float64, maxIter int) (float64, error) {
	flo, fhi := f(lo), f(hi)
	if flo == 0 {
		return lo, nil
	}
	if fhi == 0 {
		return hi, nil
	}
	if (flo > 0) == (fhi > 0) {
		return 0, ErrNotBracketed
	}

	mid := 0.5 * (lo + hi)
	for iter := 0; iter < maxIter; iter++ {
		// Secant step using the current bracket endpoints; fall back to
		// the bisection midpoint whenever it would land outside the
		// bracket (the secant step is not guaranteed to stay inside it).
		secant := lo - flo*(hi-lo)/(fhi-flo)
		if secant <= lo || secant >= hi {
			secant = 0.5 * (lo + hi)
		}
		mid = secant

		fmid := f(mid)
		if fmid == 0 || math.Abs(hi-lo) < tol*math.Abs(mid) {
			return mid, nil
		}

		if (fmid > 0) == (flo > 0) {
			lo, flo = mid, fmid
		} else {
			hi, fhi = mid, fmid
		}
	}
	return mid, ErrMaxIterations
}
