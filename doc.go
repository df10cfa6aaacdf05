// Package libcerf evaluates Faddeeva's scaled complex error function
//
//	w(z) = exp(-z^2) * erfc(-i*z)
//
// and the family of special functions derived from it: erf, erfc, erfcx,
// erfi, Dawson's integral, and the Voigt profile (package
// [github.com/mittleff/libcerf/measure/voigt]).
//
// Every exported function is a pure, synchronous evaluation with no shared
// mutable state. Branch choices are recorded in a nil-safe, caller-owned
// [Diagnostics] only by the package's internal evaluators; no exported
// function accepts a *Diagnostics, and the exported ones record nothing.
//
// Accuracy target is better than 4 epsilon for [WOfZ] and [ImWOfX], and
// 1e-13 relative error for the remaining derived functions, across the
// whole of the IEEE-754 double-precision range.
package libcerf
