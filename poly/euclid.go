package poly

// ExtGCD runs the iterative extended Euclidean algorithm on a and b,
// returning (g, s, t) such that s·a + t·b = g. The gcd is normalized to
// be monic when nonzero, by scaling all three outputs with the inverse
// of its leading coefficient. ExtGCD(0, 0) = (0, 0, 0).
func (r *Ring) ExtGCD(a, b Poly) (g, s, t Poly) {

	r0, r1 := canonical(append(Poly{}, a...)), canonical(append(Poly{}, b...))
	s0, s1 := r.One(), Poly{}
	t0, t1 := Poly{}, r.One()

	for len(r1) > 0 {
		quo, rem, err := r.QuoRem(r0, r1)
		if err != nil {
			// Unreachable: the loop guard keeps r1 nonzero.
			panic(err)
		}
		r0, r1 = r1, rem
		s0, s1 = s1, r.Sub(s0, r.Mul(quo, s1))
		t0, t1 = t1, r.Sub(t0, r.Mul(quo, t1))
	}

	// r0 is zero only when both inputs are zero.
	if len(r0) == 0 {
		return Poly{}, Poly{}, Poly{}
	}

	inv := Poly{r.f.Inv(r0[len(r0)-1])}
	return r.Mul(r0, inv), r.Mul(s0, inv), r.Mul(t0, inv)
}
