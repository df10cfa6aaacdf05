// Package chebyshev holds precomputed per-subrange Chebyshev polynomial
// coefficients and the shared Horner evaluator used by im_w_of_x's
// four-table, degree-7 piecewise approximation of Im w(x).
package chebyshev
