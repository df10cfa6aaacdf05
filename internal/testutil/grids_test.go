package testutil

import (
	"math"
	"testing"
)

func TestLogGrid(t *testing.T) {
	g := LogGrid(1e-3, 1e3, 7)
	if len(g) != 7 {
		t.Fatalf("len = %d, want 7", len(g))
	}
	if math.Abs(g[0]-1e-3) > 1e-15 {
		t.Fatalf("g[0] = %v, want 1e-3", g[0])
	}
	if math.Abs(g[len(g)-1]-1e3) > 1e-9 {
		t.Fatalf("g[last] = %v, want 1e3", g[len(g)-1])
	}
	for i := 1; i < len(g); i++ {
		if g[i] <= g[i-1] {
			t.Fatalf("grid not strictly increasing at %d: %v <= %v", i, g[i], g[i-1])
		}
	}
}

func TestLogGridSinglePoint(t *testing.T) {
	g := LogGrid(5, 50, 1)
	if len(g) != 1 || g[0] != 5 {
		t.Fatalf("g = %v, want [5]", g)
	}
}

func TestSignedLogGrid(t *testing.T) {
	g := SignedLogGrid(1e-2, 1e2, 4)
	if len(g) != 8 {
		t.Fatalf("len = %d, want 8", len(g))
	}
	for i := 0; i+1 < len(g); i += 2 {
		if g[i] != -g[i+1] {
			t.Fatalf("pair %d,%d not mirrored: %v, %v", i, i+1, g[i], g[i+1])
		}
	}
}

func TestComplexGrid(t *testing.T) {
	g := ComplexGrid([]float64{1, 2}, []float64{3, 4, 5})
	if len(g) != 6 {
		t.Fatalf("len = %d, want 6", len(g))
	}
	if g[0] != complex(1, 3) {
		t.Fatalf("g[0] = %v, want 1+3i", g[0])
	}
	if g[len(g)-1] != complex(2, 5) {
		t.Fatalf("g[last] = %v, want 2+5i", g[len(g)-1])
	}
}
