// Package voigt evaluates the Voigt profile — the convolution of a
// Gaussian and a Lorentzian line shape, pervasive in spectroscopic line
// fitting — and its half-width at half maximum.
package voigt

import (
	"math"

	"github.com/mittleff/libcerf"
)

// s2pi is sqrt(2*pi).
const s2pi = 2.5066282746310005024157652848110

// Config holds the two shape parameters of a Voigt profile: the Gaussian
// standard deviation Sigma and the Lorentzian half-width Gamma. Both are
// used by their absolute value.
type Config struct {
	Sigma float64
	Gamma float64
}

// Result holds the outcome of a full profile analysis at a fixed Config:
// the peak value (at x=0) and the half/full widths at half maximum.
type Result struct {
	Peak float64
	HWHM float64
	FWHM float64
}

// Calculator evaluates a Voigt profile for a fixed Config, amortizing the
// sign normalization of Sigma and Gamma across repeated calls.
type Calculator struct {
	cfg Config
}

// NewCalculator returns a Calculator for the given profile parameters.
func NewCalculator(cfg Config) *Calculator {
	cfg.Sigma = math.Abs(cfg.Sigma)
	cfg.Gamma = math.Abs(cfg.Gamma)
	return &Calculator{cfg: cfg}
}

// Profile is a one-shot evaluation of the Voigt profile at x.
func Profile(x, sigma, gamma float64) float64 {
	return NewCalculator(Config{Sigma: sigma, Gamma: gamma}).Profile(x)
}

// Analyze is a one-shot peak/HWHM/FWHM analysis for cfg.
func Analyze(cfg Config) Result {
	return NewCalculator(cfg).Analyze()
}

// Profile evaluates the Voigt profile at x: the convolution
//
//	voigt(x) = \int G(x', sigma) * L(x-x', gamma) dx'
//
// of a Gaussian G and a Lorentzian L, computed via
//
//	voigt(x) = Re{w(z)} / (sqrt(2*pi) * |sigma|),  z = (x + i*|gamma|) / (sqrt(2) * |sigma|)
//
// (Abramowitz & Stegun, formula 7.4.13), with closed forms for the
// degenerate cases where sigma or gamma is zero.
func (c *Calculator) Profile(x float64) float64 {
	sig, gam := c.cfg.Sigma, c.cfg.Gamma

	if gam == 0 {
		if sig == 0 {
			if x == 0 {
				return math.Inf(1)
			}
			return 0
		}
		return math.Exp(-x*x/2/(sig*sig)) / s2pi / sig
	}
	if sig == 0 {
		return gam / math.Pi / (x*x + gam*gam)
	}

	z := complex(x, gam) / complex(math.Sqrt2*sig, 0)
	return real(libcerf.WOfZ(z)) / s2pi / sig
}

// Analyze returns the profile's peak value together with its half-width
// and full-width at half maximum.
func (c *Calculator) Analyze() Result {
	peak := c.Profile(0)
	hwhm := VoigtHWHM(c.cfg.Sigma, c.cfg.Gamma)
	return Result{Peak: peak, HWHM: hwhm, FWHM: 2 * hwhm}
}
