package libcerf

import (
	"math"
	"math/cmplx"
)

// Mathematical constants shared by the derived error functions, grounded
// verbatim on _examples/original_source/lib/err_fcts.c.
const (
	spi2 = 0.8862269254527580136490837416705725913990 // sqrt(pi)/2
	s2pi = 2.5066282746310005024157652848110           // sqrt(2*pi)
)

// ReWOfZ and ImWOfZ expose the real and imaginary parts of [WOfZ]
// individually, avoiding the need for callers to build a complex128 just
// to discard half of it.
func ReWOfZ(re, im float64) float64 { return real(WOfZ(complex(re, im))) }
func ImWOfZ(re, im float64) float64 { return imag(WOfZ(complex(re, im))) }

// Erf returns erf(x), the real error function.
func Erf(x float64) float64 { return math.Erf(x) }

// Erfc returns erfc(x) = 1 - erf(x), the real complementary error function.
func Erfc(x float64) float64 { return math.Erfc(x) }

// Erfi returns erfi(x) = -i*erf(i*x), the imaginary error function.
func Erfi(x float64) float64 {
	if x*x > 720 {
		if x > 0 {
			return math.Inf(1)
		}
		return math.Inf(-1)
	}
	return math.Exp(x*x) * ImWOfX(x)
}

// Dawson returns Dawson's integral sqrt(pi)/2 * exp(-x^2) * erfi(x) for
// real x.
func Dawson(x float64) float64 {
	return spi2 * ImWOfX(x)
}

// Cerfcx returns erfcx(z) = exp(z^2)*erfc(z), the complex
// underflow-compensated complementary error function, trivially related
// to [WOfZ].
func Cerfcx(z complex128) complex128 {
	return WOfZ(complex(-imag(z), real(z)))
}

// Cerfi returns erfi(z) = -i*erf(i*z), the rotated complex error function.
func Cerfi(z complex128) complex128 {
	e := Cerf(complex(-imag(z), real(z)))
	return complex(imag(e), -real(e))
}

// Cerf returns erf(z), the complex error function, using [WOfZ] except in
// regions where cancellation would cost accuracy.
func Cerf(z complex128) complex128 {
	x, y := real(z), imag(z)

	if y == 0 {
		return complex(math.Erf(x), y)
	}
	if x == 0 {
		var im float64
		if y*y > 720 {
			if y > 0 {
				im = math.Inf(1)
			} else {
				im = math.Inf(-1)
			}
		} else {
			im = math.Exp(y*y) * ImWOfX(y)
		}
		return complex(x, im)
	}

	mRez2 := (y - x) * (x + y)
	mImz2 := -2 * x * y
	if mRez2 < -750 {
		if x >= 0 {
			return complex(1, 0)
		}
		return complex(-1, 0)
	}

	if x >= 0 {
		if x < 8e-2 {
			if math.Abs(y) < 1e-2 {
				return cerfTaylor(z, mRez2, mImz2)
			}
			if math.Abs(mImz2) < 5e-3 && x < 5e-3 {
				return cerfTaylorErfi(x, y)
			}
		}
		rot := complex(math.Cos(mImz2), math.Sin(mImz2)) * WOfZ(complex(-y, x))
		return complex(1, 0) - complex(math.Exp(mRez2), 0)*rot
	}

	// x < 0
	if x > -8e-2 {
		if math.Abs(y) < 1e-2 {
			return cerfTaylor(z, mRez2, mImz2)
		}
		if math.Abs(mImz2) < 5e-3 && x > -5e-3 {
			return cerfTaylorErfi(x, y)
		}
	} else if math.IsNaN(x) {
		im := math.NaN()
		if y == 0 {
			im = 0
		}
		return complex(math.NaN(), im)
	}
	rot := complex(math.Cos(mImz2), math.Sin(mImz2)) * WOfZ(complex(y, -x))
	return complex(math.Exp(mRez2), 0)*rot - complex(1, 0)
}

// cerfTaylor evaluates erf(z) = 2/sqrt(pi) * z * (1 - z^2/3 + z^4/10 - ...)
// for small |z|, avoiding the cancellation in the general formula.
func cerfTaylor(z complex128, mRez2, mImz2 float64) complex128 {
	mz2 := complex(mRez2, mImz2)
	return z * (1.1283791670955125739 +
		mz2*(0.37612638903183752464+
			mz2*(0.11283791670955125739+
				mz2*(0.026866170645131251760+
					mz2*0.0052239776254421878422))))
}

// cerfTaylorErfi evaluates erf(x+iy) for small |x| and small |x*y| via a
// Taylor expansion around erf(iy) = exp(y^2)*Im[w(y)], avoiding
// cancellation inaccuracy.
func cerfTaylorErfi(x, y float64) complex128 {
	x2, y2 := x*x, y*y
	expy2 := math.Exp(y2)
	re := expy2 * x * (1.1283791670955125739 -
		x2*(0.37612638903183752464+0.75225277806367504925*y2) +
		x2*x2*(0.11283791670955125739+
			y2*(0.45135166683820502956+0.15045055561273500986*y2)))
	im := expy2 * (ImWOfX(y) -
		x2*y*(1.1283791670955125739-
			x2*(0.56418958354775628695+0.37612638903183752464*y2)))
	return complex(re, im)
}

// Cerfc returns erfc(z) = 1 - erf(z), the complex complementary error
// function, using [WOfZ] except in axial special cases.
func Cerfc(z complex128) complex128 {
	x, y := real(z), imag(z)

	if x == 0 {
		var im float64
		if y*y > 720 {
			if y > 0 {
				im = math.Inf(-1)
			} else {
				im = math.Inf(1)
			}
		} else {
			im = -math.Exp(y*y) * ImWOfX(y)
		}
		return complex(1, im)
	}
	if y == 0 {
		if x*x > 750 {
			if x >= 0 {
				return complex(0, -y)
			}
			return complex(2, -y)
		}
		if x >= 0 {
			return complex(math.Exp(-x*x)*Erfcx(x), -y)
		}
		return complex(2-math.Exp(-x*x)*Erfcx(-x), -y)
	}

	mRez2 := (y - x) * (x + y)
	mImz2 := -2 * x * y
	if mRez2 < -750 {
		if x >= 0 {
			return complex(0, 0)
		}
		return complex(2, 0)
	}

	if x >= 0 {
		return cmplx.Exp(complex(mRez2, mImz2)) * WOfZ(complex(-y, x))
	}
	return complex(2, 0) - cmplx.Exp(complex(mRez2, mImz2))*WOfZ(complex(y, -x))
}

// CDawson returns Dawson(z) = sqrt(pi)/2 * exp(-z^2) * erfi(z), Dawson's
// integral for a complex argument, using [WOfZ] except in regions where
// cancellation would cost accuracy.
func CDawson(z complex128) complex128 {
	x, y := real(z), imag(z)

	if y == 0 {
		return complex(spi2*ImWOfX(x), -y)
	}
	if x == 0 {
		y2 := y * y
		if y2 < 2.5e-5 {
			return complex(x, y*(1+y2*(0.6666666666666666666666666666666666666667+
				y2*0.26666666666666666666666666666666666667)))
		}
		var im float64
		if y >= 0 {
			im = spi2 * (math.Exp(y2) - Erfcx(y))
		} else {
			im = spi2 * (Erfcx(-y) - math.Exp(y2))
		}
		return complex(x, im)
	}

	mRez2 := (y - x) * (x + y)
	mImz2 := -2 * x * y
	mz2 := complex(mRez2, mImz2)

	if y >= 0 {
		if y < 5e-3 {
			if math.Abs(x) < 5e-3 {
				return cdawsonTaylor(z, mz2)
			}
			if math.Abs(mImz2) < 5e-3 {
				return cdawsonTaylorRealAxis(x, y)
			}
		}
		res := cmplx.Exp(mz2) - WOfZ(z)
		return complex(spi2, 0) * complex(-imag(res), real(res))
	}

	// y < 0
	if y > -5e-3 {
		if math.Abs(x) < 5e-3 {
			return cdawsonTaylor(z, mz2)
		}
		if math.Abs(mImz2) < 5e-3 {
			return cdawsonTaylorRealAxis(x, y)
		}
	} else if math.IsNaN(y) {
		re := math.NaN()
		if x == 0 {
			re = 0
		}
		return complex(re, math.NaN())
	}
	res := WOfZ(-z) - cmplx.Exp(mz2)
	return complex(spi2, 0) * complex(-imag(res), real(res))
}

// cdawsonTaylor evaluates dawson(z) = z - 2/3 z^3 + 4/15 z^5 - ... for
// small |z|.
func cdawsonTaylor(z, mz2 complex128) complex128 {
	return z * (1 + mz2*(0.6666666666666666666666666666666666666667+
		mz2*0.2666666666666666666666666666666666666667))
}

// cdawsonTaylorRealAxis evaluates dawson(x+iy) for small |y| and small
// |x*y|, via a Taylor expansion around D = dawson(x) for |x| <= 40, and a
// continued-fraction-derived closed form for larger |x| to avoid the
// cancellation that afflicts the Taylor series once 2*D*x approaches 1.
func cdawsonTaylorRealAxis(x, y float64) complex128 {
	x2 := x * x
	y2 := y * y

	if x2 > 1600 { // |x| > 40
		if x2 > 25e14 { // |x| > 5e7
			xy2 := (x * y) * (x * y)
			re := (0.5 + y2*(0.5+0.25*y2-0.16666666666666666667*xy2)) / x
			im := y * (-1 + y2*(-0.66666666666666666667+
				0.13333333333333333333*xy2-
				0.26666666666666666667*y2)) / (2*x2 - 1)
			return complex(re, im)
		}
		denom := 1 / (-15 + x2*(90+x2*(-60+8*x2)))
		re := denom * (x * (33 + x2*(-28+4*x2) + y2*(18-4*x2+4*y2)))
		im := denom * (y * (-15 + x2*(24-4*x2) + y2*(4*x2-10-4*y2)))
		return complex(re, im)
	}

	d := spi2 * ImWOfX(x)
	re := d + y2*(d+x-2*d*x2) +
		y2*y2*(d*(0.5-x2*(2-0.66666666666666666667*x2))+
			x*(0.83333333333333333333-0.33333333333333333333*x2))
	im := y * (1 - 2*d*x +
		y2*0.66666666666666666667*(1-x2-d*x*(3-2*x2)) +
		y2*y2*(0.26666666666666666667-
			x2*(0.6-0.13333333333333333333*x2)-
			d*x*(1-x2*(1.3333333333333333333-0.26666666666666666667*x2))))
	return complex(re, im)
}
