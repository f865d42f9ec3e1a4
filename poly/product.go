package poly

import (
	"math/big"

	"github.com/polyacc/polyacc/ff"
)

// Product builds the monic polynomial ∏(x + aᵢ) over the given elements,
// the characteristic polynomial of an accumulated set. Small inputs use
// the direct iterative build, larger ones the subproduct tree; both
// produce the same canonical polynomial.
func (r *Ring) Product(elems []ff.Element) Poly {
	if len(elems) <= r.DirectProductThreshold {
		return r.ProductDirect(elems)
	}
	return r.ProductTree(elems)
}

// ProductDirect builds ∏(x + aᵢ) by folding one linear factor at a time
// over raw integer coefficients, using the identity
//
//	(c·(x + a))[k] = c[k-1] + a·c[k]
//
// with a single modular reduction per coefficient per step. The empty
// product is the constant polynomial 1.
func (r *Ring) ProductDirect(elems []ff.Element) Poly {

	q := r.f.Modulus

	c := make([]big.Int, len(elems)+1)
	c[0].SetUint64(1)
	deg := 0

	tmp := new(big.Int)

	for _, a := range elems {

		ai := a.BigInt()
		deg++

		// Descending k, so that c[k-1] is still the previous step's value.
		c[deg].Set(&c[deg-1])
		for k := deg - 1; k >= 1; k-- {
			tmp.Mul(ai, &c[k])
			tmp.Add(tmp, &c[k-1])
			c[k].Mod(tmp, q)
		}
		c[0].Mod(tmp.Mul(ai, &c[0]), q)
	}

	p := make(Poly, len(c))
	for i := range c {
		p[i] = r.f.NewElement(&c[i])
	}
	return canonical(p)
}

// ProductTree builds ∏(x + aᵢ) with a binary subproduct tree: the leaves
// are the linear factors (x + aᵢ) and each level multiplies adjacent
// pairs, carrying an odd leftover node forward unmultiplied, until one
// polynomial remains. Pairwise multiplication goes through the
// size-dispatching [Ring.Mul], so large subproducts run on the NTT,
// which brings the total work down from O(n²) to O(n log² n).
func (r *Ring) ProductTree(elems []ff.Element) Poly {

	if len(elems) == 0 {
		return r.One()
	}

	one := r.f.One()

	nodes := make([]Poly, len(elems))
	for i, a := range elems {
		nodes[i] = Poly{a, one}
	}

	for len(nodes) > 1 {
		next := nodes[:0]
		var i int
		for i = 0; i+1 < len(nodes); i += 2 {
			next = append(next, r.Mul(nodes[i], nodes[i+1]))
		}
		if i < len(nodes) {
			next = append(next, nodes[i])
		}
		nodes = next
	}

	return nodes[0]
}
