package libcerf

import (
	"math"
	"testing"

	"github.com/mittleff/libcerf/internal/chebyshev"
	"github.com/mittleff/libcerf/internal/testutil"
)

func TestImWOfXOdd(t *testing.T) {
	for _, x := range testutil.LogGrid(1e-6, 1e6, 25) {
		got, want := ImWOfX(-x), -ImWOfX(x)
		if rel := math.Abs(got-want) / math.Max(1, math.Abs(want)); rel > 1e-12 {
			t.Fatalf("ImWOfX(%v) = %v, ImWOfX(%v) = %v (odd-symmetry violation)", -x, got, x, -want)
		}
	}
}

func TestImWOfXZero(t *testing.T) {
	if got := ImWOfX(0); got != 0 {
		t.Fatalf("ImWOfX(0) = %v, want 0", got)
	}
	if !math.Signbit(ImWOfX(math.Copysign(0, -1))) {
		t.Fatalf("ImWOfX(-0) should preserve sign of -0")
	}
}

func TestImWOfXRegionBoundaries(t *testing.T) {
	boundaries := []float64{chebyshev.Table1.A, chebyshev.Table1.B, chebyshev.Table2.B, chebyshev.Table3.B, chebyshev.Table4.B}
	for _, b := range boundaries {
		below := ImWOfX(math.Nextafter(b, 0))
		above := ImWOfX(math.Nextafter(b, math.Inf(1)))
		if rel := math.Abs(below-above) / math.Max(1, math.Abs(below)); rel > 1e-9 {
			t.Fatalf("region handoff discontinuity at x=%v: %v vs %v", b, below, above)
		}
	}
}

func TestImWOfXAsymptoticDecay(t *testing.T) {
	// For large x, Im w(x) ~ 1/(sqrt(pi)*x) -> 0.
	got := ImWOfX(1e8)
	want := ispi / 1e8
	if rel := math.Abs(got-want) / want; rel > 1e-9 {
		t.Fatalf("ImWOfX(1e8) = %v, want ~%v", got, want)
	}
}
