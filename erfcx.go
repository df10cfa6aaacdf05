package libcerf

import "math"

// erfcxAsymptoticCutoff is where exp(x*x) starts threatening overflow
// (math.Exp overflows beyond x*x ~ 709); past this point Erfcx switches to
// its asymptotic series, which never forms exp(x*x) explicitly.
const erfcxAsymptoticCutoff = 26.6

// Erfcx returns exp(x^2)*erfc(x), the underflow-compensated complementary
// error function, for real x. It is monotone decreasing: 1 at x=0, 0 in
// the limit x->+Inf, and +Inf in the limit x->-Inf (since erfc(x)->2 there
// while exp(x^2) diverges).
//
// See DESIGN.md for why this is implemented on top of math.Erfc/math.Exp
// rather than a bespoke Chebyshev table: the reference implementation's
// real-erfcx kernel source was not available to ground a table against.
func Erfcx(x float64) float64 {
	if x < 0 {
		if x*x > 750 {
			// erfc(x) has saturated to 2 to machine precision; the
			// erfcxPositive(-x) correction (about 1/(sqrt(pi)*|x|)) is far
			// below the rounding of 2*exp(x*x), which overflows to +Inf here.
			return 2 * math.Exp(x*x)
		}
		return 2*math.Exp(x*x) - erfcxPositive(-x)
	}
	return erfcxPositive(x)
}

// erfcxPositive computes erfcx(x) for x>=0.
func erfcxPositive(x float64) float64 {
	if x > erfcxAsymptoticCutoff {
		r2 := 1 / (x * x)
		series := (((((-29.53125*r2+6.5625)*r2-1.875)*r2+0.75)*r2-0.5)*r2 + 1)
		return ispi * series / x
	}
	return math.Exp(x*x) * math.Erfc(x)
}
