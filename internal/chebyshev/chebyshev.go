package chebyshev

// Degree is the fixed number of coefficients per subrange: a degree-7
// polynomial in the normalized coordinate t.
const Degree = 8

// Table is a set of equal-width subranges covering [A,B], each holding its
// own degree-7 Chebyshev interpolant. Coeffs is laid out subrange-major:
// Coeffs[s*Degree : s*Degree+Degree] are the coefficients, lowest order
// first, for subrange s.
type Table struct {
	A, B       float64
	NSubranges int
	Coeffs     []float64
}

// invSubwidth returns nSubranges / (B - A), the reciprocal subrange width.
func (t *Table) invSubwidth() float64 {
	return float64(t.NSubranges) / (t.B - t.A)
}

// Eval evaluates the interpolant at x, which must lie in [A,B]. It returns
// the subrange index selected, for diagnostic purposes.
func (t *Table) Eval(x float64) (value float64, subrange int) {
	invw := t.invSubwidth()
	n := t.NSubranges
	s := int((x - t.A) * invw)
	if s < 0 {
		s = 0
	} else if s >= n {
		s = n - 1
	}
	center := (float64(n)-0.5-float64(s))*(t.A/float64(n)) + (float64(s)+0.5)*(t.B/float64(n))
	tc := 2 * invw * (x - center)

	c := t.Coeffs[s*Degree : s*Degree+Degree]
	v := c[Degree-1]
	for i := Degree - 2; i >= 0; i-- {
		v = v*tc + c[i]
	}
	return v, s
}
