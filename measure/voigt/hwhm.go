package voigt

import (
	"math"

	"github.com/mittleff/libcerf/internal/rootfind"
)

const (
	hwhmTol     = 1e-13
	hwhmMaxIter = 64
)

// VoigtHWHM returns the half-width at half maximum of the Voigt profile
// with parameters sigma and gamma: the positive root h of
//
//	voigt(h, sigma, gamma) = voigt(0, sigma, gamma) / 2
//
// The profile is monotone decreasing on [0, Inf), so this root is unique.
// The Olivero-Longbothum closed-form estimate seeds a bracketed
// bisection+secant refinement.
func VoigtHWHM(sigma, gamma float64) float64 {
	sigma, gamma = math.Abs(sigma), math.Abs(gamma)

	if gamma == 0 {
		// Pure Gaussian: HWHM = sigma*sqrt(2*ln 2).
		return sigma * math.Sqrt(2*math.Ln2)
	}
	if sigma == 0 {
		// Pure Lorentzian: HWHM = gamma.
		return gamma
	}

	h0 := 0.5 * (1.06868*gamma + math.Sqrt(0.86743*gamma*gamma+8*math.Ln2*sigma*sigma))

	calc := NewCalculator(Config{Sigma: sigma, Gamma: gamma})
	peak := calc.Profile(0)
	half := peak / 2
	target := func(h float64) float64 { return calc.Profile(h) - half }

	lo, hi := 0.5*h0, 2*h0
	for target(lo) <= 0 {
		lo *= 0.5
	}
	for target(hi) >= 0 {
		hi *= 2
	}

	h, err := rootfind.Bisect(target, lo, hi, hwhmTol, hwhmMaxIter)
	if err != nil {
		return math.NaN()
	}
	return h
}
