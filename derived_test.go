package libcerf

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/mittleff/libcerf/internal/testutil"
)

func TestCerfKnownValues(t *testing.T) {
	cases := []struct {
		z, want complex128
	}{
		{complex(1, 2), complex(-0.53664356577857, -5.04914370344703)},
		{complex(0, 2), complex(0, 18.5648024145756)},
		{complex(math.Inf(1), 0), complex(1, 0)},
		{complex(5.1e-3, 1e-8), complex(5.75468385903e-3, 1.12834981833e-8)},
	}
	for _, c := range cases {
		got := Cerf(c.z)
		if rel := testutil.RelativeError(got, c.want); rel > 1e-9 {
			t.Fatalf("Cerf(%v) = %v, want %v (rel err %v)", c.z, got, c.want, rel)
		}
	}
}

func TestCerfOddSymmetry(t *testing.T) {
	for _, z := range testutil.ComplexGrid(testutil.LogGrid(1e-2, 1e2, 5), testutil.LogGrid(1e-2, 1e2, 5)) {
		got, want := Cerf(-z), -Cerf(z)
		if rel := testutil.RelativeError(got, want); rel > 1e-9 {
			t.Fatalf("Cerf(%v) = %v, want -Cerf(%v) = %v", -z, got, z, want)
		}
	}
}

func TestCerfRealAxisAgreesWithErf(t *testing.T) {
	for _, x := range testutil.SignedLogGrid(1e-3, 1e2, 10) {
		got := real(Cerf(complex(x, 0)))
		want := Erf(x)
		if rel := math.Abs(got-want) / math.Max(1, math.Abs(want)); rel > 1e-12 {
			t.Fatalf("Re Cerf(%v+0i) = %v, want Erf(%v)=%v", x, got, x, want)
		}
	}
}

func TestCerfcPlusCerfIsOne(t *testing.T) {
	for _, z := range testutil.ComplexGrid(testutil.SignedLogGrid(1e-2, 1e1, 5), testutil.SignedLogGrid(1e-2, 1e1, 5)) {
		sum := Cerfc(z) + Cerf(z)
		if rel := testutil.RelativeError(sum, complex(1, 0)); rel > 1e-9 {
			t.Fatalf("Cerfc(%v)+Cerf(%v) = %v, want 1", z, z, sum)
		}
	}
}

func TestCerfcxIdentity(t *testing.T) {
	// cerfcx(z)*exp(-z^2) = cerfc(z) when no overflow.
	for _, z := range testutil.ComplexGrid(testutil.LogGrid(1e-1, 3, 4), testutil.LogGrid(1e-1, 3, 4)) {
		got := Cerfcx(z) * cmplx.Exp(-z*z)
		want := Cerfc(z)
		if rel := testutil.RelativeError(got, want); rel > 1e-8 {
			t.Fatalf("Cerfcx(%v)*exp(-z^2) = %v, want Cerfc(%v)=%v", z, got, z, want)
		}
	}
}

func TestCerfiIsRotatedCerf(t *testing.T) {
	for _, z := range testutil.ComplexGrid(testutil.LogGrid(1e-2, 1e1, 4), testutil.LogGrid(1e-2, 1e1, 4)) {
		got := Cerfi(z)
		iz := complex(-imag(z), real(z))
		want := complex(0, -1) * Cerf(iz)
		if rel := testutil.RelativeError(got, want); rel > 1e-9 {
			t.Fatalf("Cerfi(%v) = %v, want -i*Cerf(i*%v) = %v", z, got, z, want)
		}
	}
}

func TestDawsonRealAgreesWithImWOfX(t *testing.T) {
	for _, x := range testutil.SignedLogGrid(1e-3, 1e2, 10) {
		got := Dawson(x)
		want := spi2 * ImWOfX(x)
		if rel := math.Abs(got-want) / math.Max(1, math.Abs(want)); rel > 1e-13 {
			t.Fatalf("Dawson(%v) = %v, want %v", x, got, want)
		}
	}
}

func TestCDawsonRealAxisAgreesWithDawson(t *testing.T) {
	for _, x := range testutil.SignedLogGrid(1e-3, 1e2, 10) {
		got := real(CDawson(complex(x, 0)))
		want := Dawson(x)
		if rel := math.Abs(got-want) / math.Max(1, math.Abs(want)); rel > 1e-12 {
			t.Fatalf("Re CDawson(%v+0i) = %v, want Dawson(%v)=%v", x, got, x, want)
		}
	}
}

func TestErfiOverflow(t *testing.T) {
	if got := Erfi(30); !math.IsInf(got, 1) {
		t.Fatalf("Erfi(30) = %v, want +Inf", got)
	}
	if got := Erfi(-30); !math.IsInf(got, -1) {
		t.Fatalf("Erfi(-30) = %v, want -Inf", got)
	}
}

func TestReWOfZImWOfZAccessors(t *testing.T) {
	z := complex(1.3, -0.7)
	w := WOfZ(z)
	if got, want := ReWOfZ(real(z), imag(z)), real(w); got != want {
		t.Fatalf("ReWOfZ = %v, want %v", got, want)
	}
	if got, want := ImWOfZ(real(z), imag(z)), imag(w); got != want {
		t.Fatalf("ImWOfZ = %v, want %v", got, want)
	}
}
