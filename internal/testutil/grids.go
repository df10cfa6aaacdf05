package testutil

import "math"

// LogGrid returns n points spaced logarithmically over [lo, hi] (both
// must be positive), deterministic and reproducible across calls. It is
// the real-axis analogue of a sample-rate-independent test sweep: a fixed
// set of magnitudes exercising many orders of magnitude without relying
// on randomness.
func LogGrid(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = lo
		return out
	}
	logLo, logHi := math.Log(lo), math.Log(hi)
	step := (logHi - logLo) / float64(n-1)
	for i := range out {
		out[i] = math.Exp(logLo + step*float64(i))
	}
	return out
}

// SignedLogGrid returns a grid of 2*n points: LogGrid(lo, hi, n) mirrored
// onto the negative axis, plus interleaved signs. Useful for exercising
// odd/even symmetry invariants across both halves of the real line.
func SignedLogGrid(lo, hi float64, n int) []float64 {
	pos := LogGrid(lo, hi, n)
	out := make([]float64, 0, 2*n)
	for _, v := range pos {
		out = append(out, v, -v)
	}
	return out
}

// ComplexGrid returns the Cartesian product of two real grids as
// complex128 points, re+i*im for re in res and im in ims.
func ComplexGrid(res, ims []float64) []complex128 {
	out := make([]complex128, 0, len(res)*len(ims))
	for _, re := range res {
		for _, im := range ims {
			out = append(out, complex(re, im))
		}
	}
	return out
}
