// Package poly implements canonical polynomial values over a prime field
// and the ring operations used to build and manipulate bilinear
// accumulator witnesses: addition, subtraction, size-dispatched
// multiplication, long division, the extended Euclidean algorithm,
// point evaluation and the product-of-linear-factors constructions.
package poly

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/polyacc/polyacc/ff"
	"github.com/polyacc/polyacc/ntt"
	"github.com/polyacc/polyacc/utils/bignum"
)

// ErrDivisionByZero is returned when the divisor is the zero polynomial.
var ErrDivisionByZero = errors.New("division by the zero polynomial")

const (
	// DefaultNTTThreshold is the default operand length below which
	// multiplication uses the naive convolution instead of the NTT.
	DefaultNTTThreshold = 256

	// DefaultDirectProductThreshold is the default input size up to which
	// Product uses the iterative build instead of the subproduct tree.
	DefaultDirectProductThreshold = 32
)

// Poly is a polynomial in ascending degree order: [c0, c1, ..., cd]
// represents c0 + c1·x + ... + cd·x^d. A Poly is always canonical: it
// has no trailing zero coefficient and the zero polynomial is the empty
// slice. Poly values are immutable; every operation returns a new
// canonical polynomial.
type Poly []ff.Element

// Degree returns the degree of p, with the convention that the zero
// polynomial has degree -1.
func (p Poly) Degree() int {
	return len(p) - 1
}

// IsZero returns true if p is the zero polynomial.
func (p Poly) IsZero() bool {
	return len(p) == 0
}

// Equal returns true if p and other have identical coefficients.
func (p Poly) Equal(other Poly) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if !p[i].Equal(other[i]) {
			return false
		}
	}
	return true
}

func (p Poly) String() string {
	if len(p) == 0 {
		return "0"
	}
	coeffs := make([]string, len(p))
	for i := range p {
		coeffs[i] = p[i].String()
	}
	return "[" + strings.Join(coeffs, ", ") + "]"
}

// Ring provides the polynomial ring operations over a given field. The
// two dispatch thresholds are empirically tuned constants and can be
// re-tuned per instance.
type Ring struct {
	// NTTThreshold is the operand length below which multiplication
	// uses the naive convolution.
	NTTThreshold int

	// DirectProductThreshold is the input size up to which Product uses
	// the iterative build instead of the subproduct tree.
	DirectProductThreshold int

	f *ff.Field
	t *ntt.Transformer
}

// NewRing creates a new polynomial [Ring] over the given field, with the
// default dispatch thresholds.
func NewRing(f *ff.Field) *Ring {
	return &Ring{
		NTTThreshold:           DefaultNTTThreshold,
		DirectProductThreshold: DefaultDirectProductThreshold,
		f:                      f,
		t:                      ntt.NewTransformer(f),
	}
}

// Field returns the coefficient field of the ring.
func (r *Ring) Field() *ff.Field {
	return r.f
}

// NewPoly returns the canonical polynomial with the given coefficients
// in ascending degree order, each reduced mod q. Accepted coefficient
// types are those of [bignum.NewInt].
func (r *Ring) NewPoly(coeffs ...interface{}) Poly {
	p := make(Poly, len(coeffs))
	for i := range coeffs {
		p[i] = r.f.NewElement(coeffs[i])
	}
	return canonical(p)
}

// NewPolyFromElements returns the canonical polynomial with the given
// coefficients in ascending degree order.
func (r *Ring) NewPolyFromElements(coeffs []ff.Element) Poly {
	p := make(Poly, len(coeffs))
	copy(p, coeffs)
	return canonical(p)
}

// One returns the constant polynomial 1.
func (r *Ring) One() Poly {
	return Poly{r.f.One()}
}

// Add evaluates a + b coefficient-wise.
func (r *Ring) Add(a, b Poly) Poly {
	if len(a) < len(b) {
		a, b = b, a
	}
	c := make(Poly, len(a))
	copy(c, a)
	for i := range b {
		c[i] = r.f.Add(c[i], b[i])
	}
	return canonical(c)
}

// Sub evaluates a - b coefficient-wise.
func (r *Ring) Sub(a, b Poly) Poly {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	c := make(Poly, n)
	copy(c, a)
	for i := range b {
		c[i] = r.f.Sub(c[i], b[i])
	}
	return canonical(c)
}

// Mul evaluates a·b, dispatching on operand size: below the NTT
// threshold the naive O(n·m) convolution is used, above it the
// transform-based convolution. The two paths agree exactly for all
// inputs.
func (r *Ring) Mul(a, b Poly) Poly {
	if len(a) == 0 || len(b) == 0 {
		return Poly{}
	}
	if len(a) < r.NTTThreshold || len(b) < r.NTTThreshold {
		return r.mulNaive(a, b)
	}
	return r.mulNTT(a, b)
}

// mulNaive evaluates a·b by schoolbook convolution, accumulating
// products over the integers and reducing once per output coefficient.
func (r *Ring) mulNaive(a, b Poly) Poly {

	acc := make([]big.Int, len(a)+len(b)-1)
	tmp := new(big.Int)

	for i := range a {
		ai := a[i].BigInt()
		for j := range b {
			acc[i+j].Add(&acc[i+j], tmp.Mul(ai, b[j].BigInt()))
		}
	}

	c := make(Poly, len(acc))
	for i := range acc {
		c[i] = r.f.NewElement(&acc[i])
	}
	return canonical(c)
}

// mulNTT evaluates a·b by convolution over the flat Montgomery-form
// transform path.
func (r *Ring) mulNTT(a, b Poly) Poly {
	c, err := r.t.MultiplyFlat(a, b)
	if err != nil {
		// Reachable only if the result no longer fits the two-adicity
		// of the field, which a caller cannot recover from.
		panic(fmt.Errorf("cannot Mul: %w", err))
	}
	return canonical(Poly(c))
}

// QuoRem evaluates the euclidean division a = quo·b + rem with
// deg(rem) < deg(b), by classic long division against the
// monic-normalized divisor. Returns [ErrDivisionByZero] if b is the
// zero polynomial.
func (r *Ring) QuoRem(a, b Poly) (quo, rem Poly, err error) {

	if len(b) == 0 {
		return nil, nil, fmt.Errorf("cannot QuoRem: %w", ErrDivisionByZero)
	}

	if len(a) < len(b) {
		return Poly{}, canonical(append(Poly{}, a...)), nil
	}

	f := r.f

	work := make(Poly, len(a))
	copy(work, a)

	quo = make(Poly, len(a)-len(b)+1)

	inv := f.Inv(b[len(b)-1])

	for i := len(quo) - 1; i >= 0; i-- {
		c := f.Mul(work[i+len(b)-1], inv)
		quo[i] = c
		if c.IsZero() {
			continue
		}
		for j := range b {
			work[i+j] = f.Sub(work[i+j], f.Mul(c, b[j]))
		}
	}

	return canonical(quo), canonical(work[:len(b)-1]), nil
}

// Eval evaluates p at x by Horner's method, folding coefficients from
// highest to lowest degree.
func (r *Ring) Eval(p Poly, x ff.Element) ff.Element {
	y := r.f.Zero()
	for i := len(p) - 1; i >= 0; i-- {
		y = r.f.Add(r.f.Mul(y, x), p[i])
	}
	return y
}

// Stats returns the base 2 logarithm of the standard deviation and the
// mean of the coefficients of p.
func (r *Ring) Stats(p Poly) [2]float64 {
	values := make([]big.Int, len(p))
	for i := range values {
		values[i].Set(p[i].BigInt())
	}
	return bignum.Stats(values, 128)
}

// canonical strips trailing zero coefficients, in place.
func canonical(p Poly) Poly {
	n := len(p)
	for n > 0 && p[n-1].IsZero() {
		n--
	}
	return p[:n]
}
