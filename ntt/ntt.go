// Package ntt implements the radix-2 Cooley-Tukey decimation-in-time
// number-theoretic transform over a prime field, and convolution-based
// polynomial multiplication on top of it. Two behaviorally identical
// paths are provided: a generic one over [ff.Element] values and a flat
// one over dense 4-limb Montgomery-form arrays (see ntt_flat.go).
package ntt

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/polyacc/polyacc/ff"
	"github.com/polyacc/polyacc/utils"
	"github.com/polyacc/polyacc/utils/bignum"
)

var (
	// ErrNotPowerOfTwo is returned when a transform size is not a power of two.
	ErrNotPowerOfTwo = errors.New("transform size is not a power of two")

	// ErrSizeTooLarge is returned when a transform size exceeds the
	// two-adicity of the field.
	ErrSizeTooLarge = errors.New("transform size exceeds the two-adicity of the field")
)

// Transformer computes forward and backward NTTs over a given [ff.Field].
type Transformer struct {
	f *ff.Field
}

// NewTransformer creates a new [Transformer] over the given field.
func NewTransformer(f *ff.Field) *Transformer {
	return &Transformer{f: f}
}

// Field returns the underlying field.
func (t *Transformer) Field() *ff.Field {
	return t.f
}

// PrincipalRoot returns a primitive n-th root of unity, computed as
// MaxRoot^(2^(TwoAdicity - log2(n))). n must be a power of two not
// exceeding 2^TwoAdicity; violations are reported with
// [ErrNotPowerOfTwo] and [ErrSizeTooLarge] respectively.
func (t *Transformer) PrincipalRoot(n int) (ff.Element, error) {

	if !utils.IsPowerOfTwo(n) {
		return ff.Element{}, fmt.Errorf("%w: n=%d", ErrNotPowerOfTwo, n)
	}

	logN := utils.Log2(n)

	if logN > t.f.TwoAdicity {
		return ff.Element{}, fmt.Errorf("%w: n=%d > 2^%d", ErrSizeTooLarge, n, t.f.TwoAdicity)
	}

	e := new(big.Int).Lsh(bignum.NewInt(1), uint(t.f.TwoAdicity-logN))

	return t.f.Exp(t.f.MaxRoot, e), nil
}

// Forward evaluates the in-place forward NTT of a at the powers of omega,
// a primitive len(a)-th root of unity. len(a) must be a power of two.
func (t *Transformer) Forward(a []ff.Element, omega ff.Element) {

	n := len(a)

	// Sanity check
	if !utils.IsPowerOfTwo(n) {
		panic(fmt.Sprintf("cannot Forward: len(a)=%d is not a power of two", n))
	}

	if n == 1 {
		return
	}

	f := t.f

	bitReverseInPlace(a)

	twiddles := make([]ff.Element, n>>1)

	for size := 2; size <= n; size <<= 1 {

		half := size >> 1

		// Twiddle factors omega_step^j for the current stage, with
		// omega_step = omega^(n/size).
		wStep := f.Exp(omega, bignum.NewInt(n/size))
		tw := twiddles[:half]
		tw[0] = f.One()
		for j := 1; j < half; j++ {
			tw[j] = f.Mul(tw[j-1], wStep)
		}

		for k := 0; k < n; k += size {
			for j := 0; j < half; j++ {
				u, v := a[k+j], f.Mul(a[k+j+half], tw[j])
				a[k+j] = f.Add(u, v)
				a[k+j+half] = f.Sub(u, v)
			}
		}
	}
}

// Backward evaluates the in-place inverse NTT of a: the forward transform
// at the powers of omega⁻¹ = omega^(q-2), followed by a scaling of every
// coefficient by n⁻¹ mod q.
func (t *Transformer) Backward(a []ff.Element, omega ff.Element) {

	f := t.f

	t.Forward(a, f.Inv(omega))

	nInv := f.Inv(f.NewElement(len(a)))
	for i := range a {
		a[i] = f.Mul(a[i], nInv)
	}
}

// Multiply evaluates the product of the coefficient sequences a and b by
// convolution: both operands are zero-padded to the next power of two
// greater than or equal to len(a)+len(b)-1, transformed, multiplied
// pointwise and transformed back. The result has exact length
// len(a)+len(b)-1. An empty operand yields an empty result without
// invoking the transform.
func (t *Transformer) Multiply(a, b []ff.Element) ([]ff.Element, error) {

	if len(a) == 0 || len(b) == 0 {
		return []ff.Element{}, nil
	}

	m := len(a) + len(b) - 1
	n := utils.NextPowerOfTwo(m)

	omega, err := t.PrincipalRoot(n)
	if err != nil {
		return nil, err
	}

	f := t.f

	pa := make([]ff.Element, n)
	pb := make([]ff.Element, n)
	copy(pa, a)
	copy(pb, b)

	t.Forward(pa, omega)
	t.Forward(pb, omega)

	for i := range pa {
		pa[i] = f.Mul(pa[i], pb[i])
	}

	t.Backward(pa, omega)

	return pa[:m], nil
}

// bitReverseInPlace permutes a into bit-reversed index order.
func bitReverseInPlace(a []ff.Element) {
	logN := utils.Log2(len(a))
	for i := range a {
		if j := utils.BitReverse64(uint64(i), logN); uint64(i) < j {
			a[i], a[j] = a[j], a[i]
		}
	}
}
