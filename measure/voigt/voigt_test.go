package voigt

import (
	"math"
	"testing"
)

func TestProfileKnownValues(t *testing.T) {
	cases := []struct {
		x, sigma, gamma, want float64
	}{
		{0, 0.5, 0.5, 0.41741856104074},
		{1, 5, 0.2, 0.07582140674553575},
	}
	for _, c := range cases {
		got := Profile(c.x, c.sigma, c.gamma)
		if rel := math.Abs(got-c.want) / math.Abs(c.want); rel > 1e-9 {
			t.Fatalf("Profile(%v,%v,%v) = %v, want %v", c.x, c.sigma, c.gamma, got, c.want)
		}
	}
}

func TestProfilePureGaussian(t *testing.T) {
	x, sigma := 0.7, 1.3
	got := Profile(x, sigma, 0)
	want := math.Exp(-x*x/2/(sigma*sigma)) / s2pi / sigma
	if rel := math.Abs(got-want) / want; rel > 1e-12 {
		t.Fatalf("Profile(%v,%v,0) = %v, want %v", x, sigma, got, want)
	}
}

func TestProfilePureLorentzian(t *testing.T) {
	x, gamma := 0.7, 1.3
	got := Profile(x, 0, gamma)
	want := gamma / math.Pi / (x*x + gamma*gamma)
	if rel := math.Abs(got-want) / want; rel > 1e-12 {
		t.Fatalf("Profile(%v,0,%v) = %v, want %v", x, gamma, got, want)
	}
}

func TestProfileDeltaLimit(t *testing.T) {
	if got := Profile(0, 0, 0); !math.IsInf(got, 1) {
		t.Fatalf("Profile(0,0,0) = %v, want +Inf", got)
	}
	if got := Profile(1, 0, 0); got != 0 {
		t.Fatalf("Profile(1,0,0) = %v, want 0", got)
	}
}

func TestVoigtHWHMKnownValues(t *testing.T) {
	cases := []struct {
		sigma, gamma, want float64
	}{
		{1, 0, math.Sqrt(2 * math.Ln2)},
		{0, 1, 1.0},
	}
	for _, c := range cases {
		got := VoigtHWHM(c.sigma, c.gamma)
		if rel := math.Abs(got-c.want) / c.want; rel > 1e-9 {
			t.Fatalf("VoigtHWHM(%v,%v) = %v, want %v", c.sigma, c.gamma, got, c.want)
		}
	}
}

func TestVoigtHWHMSatisfiesHalfMaxIdentity(t *testing.T) {
	for _, p := range [][2]float64{{1, 1}, {2, 0.3}, {0.1, 3}} {
		sigma, gamma := p[0], p[1]
		h := VoigtHWHM(sigma, gamma)
		peak := Profile(0, sigma, gamma)
		half := Profile(h, sigma, gamma)
		if rel := math.Abs(half-peak/2) / (peak / 2); rel > 1e-9 {
			t.Fatalf("Profile(HWHM(%v,%v),...) = %v, want half-peak %v", sigma, gamma, half, peak/2)
		}
	}
}

func TestAnalyze(t *testing.T) {
	res := Analyze(Config{Sigma: 1, Gamma: 1})
	if res.FWHM != 2*res.HWHM {
		t.Fatalf("FWHM = %v, want 2*HWHM = %v", res.FWHM, 2*res.HWHM)
	}
	if res.Peak != Profile(0, 1, 1) {
		t.Fatalf("Peak = %v, want Profile(0,1,1) = %v", res.Peak, Profile(0, 1, 1))
	}
}
