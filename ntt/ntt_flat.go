package ntt

import (
	"fmt"
	"math/big"

	"github.com/polyacc/polyacc/ff"
	"github.com/polyacc/polyacc/utils"
	"github.com/polyacc/polyacc/utils/bignum"
)

// The flat path operates on dense arrays of 4-limb little-endian
// coefficients in Montgomery form (coefficient i occupies the window
// p[4i:4i+4]). All pointwise work goes through [ff.MRed] with a single
// scratch region per call, so a transform performs no per-coefficient
// allocation. The flat path produces bit-identical results to the
// generic one.

// ForwardFlat evaluates the in-place forward NTT of p, a dense
// Montgomery-form coefficient array, at the powers of omega.
// len(p)/4 must be a power of two.
func (t *Transformer) ForwardFlat(p []uint64, omega ff.MontFelt) {

	n := flatLen(p)

	if n == 1 {
		return
	}

	f := t.f
	var scratch [6]uint64

	bitReverseFlat(p, n)

	twiddles := make([]uint64, (n>>1)*ff.Limbs)

	for size := 2; size <= n; size <<= 1 {

		half := size >> 1

		wStep := t.montPow(omega, uint64(n/size))

		tw := twiddles[:half*ff.Limbs]
		copy(tw[:ff.Limbs], f.ROne[:])
		for j := 1; j < half; j++ {
			ff.MRed(tw[j*ff.Limbs:(j+1)*ff.Limbs], tw[(j-1)*ff.Limbs:j*ff.Limbs], wStep[:], &f.Q, f.MRedConstant, &scratch)
		}

		var v [ff.Limbs]uint64

		for k := 0; k < n; k += size {
			for j := 0; j < half; j++ {
				x := p[(k+j)*ff.Limbs : (k+j+1)*ff.Limbs]
				y := p[(k+j+half)*ff.Limbs : (k+j+half+1)*ff.Limbs]

				ff.MRed(v[:], y, tw[j*ff.Limbs:(j+1)*ff.Limbs], &f.Q, f.MRedConstant, &scratch)
				ff.SubMod(y, x, v[:], &f.Q)
				ff.AddMod(x, x, v[:], &f.Q)
			}
		}
	}
}

// BackwardFlat evaluates the in-place inverse NTT of p: the forward
// transform at the powers of omega⁻¹, followed by a scaling of every
// coefficient by n⁻¹ mod q.
func (t *Transformer) BackwardFlat(p []uint64, omega ff.MontFelt) {

	n := flatLen(p)

	f := t.f

	e := new(big.Int).Sub(f.Modulus, bignum.NewInt(2))
	t.ForwardFlat(p, t.montPowBig(omega, e))

	nInv := f.MForm(f.Inv(f.NewElement(n)).Felt())

	var scratch [6]uint64
	for i := 0; i < len(p); i += ff.Limbs {
		ff.MRed(p[i:i+ff.Limbs], p[i:i+ff.Limbs], nInv[:], &f.Q, f.MRedConstant, &scratch)
	}
}

// MultiplyFlat is the flat-path counterpart of [Transformer.Multiply]:
// the operands are encoded into dense Montgomery-form limb arrays, the
// convolution runs entirely on [ff.MRed], and the result is decoded back
// into elements. Both paths return identical coefficients.
func (t *Transformer) MultiplyFlat(a, b []ff.Element) ([]ff.Element, error) {

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

	pa := flatEncode(a, n)
	pb := flatEncode(b, n)
	f.MFormVec(pa)
	f.MFormVec(pb)

	omegaMont := f.MForm(omega.Felt())

	t.ForwardFlat(pa, omegaMont)
	t.ForwardFlat(pb, omegaMont)

	var scratch [6]uint64
	for i := 0; i < len(pa); i += ff.Limbs {
		ff.MRed(pa[i:i+ff.Limbs], pa[i:i+ff.Limbs], pb[i:i+ff.Limbs], &f.Q, f.MRedConstant, &scratch)
	}

	t.BackwardFlat(pa, omegaMont)

	f.IMFormVec(pa)

	return flatDecode(pa, m), nil
}

// montPow returns x^e in Montgomery form, for x in Montgomery form.
func (t *Transformer) montPow(x ff.MontFelt, e uint64) ff.MontFelt {
	z := t.f.ROne
	for ; e > 0; e >>= 1 {
		if e&1 == 1 {
			z = t.f.MulMont(z, x)
		}
		x = t.f.MulMont(x, x)
	}
	return z
}

// montPowBig is montPow for arbitrary-precision exponents.
func (t *Transformer) montPowBig(x ff.MontFelt, e *big.Int) ff.MontFelt {
	z := t.f.ROne
	for i := 0; i < e.BitLen(); i++ {
		if e.Bit(i) == 1 {
			z = t.f.MulMont(z, x)
		}
		x = t.f.MulMont(x, x)
	}
	return z
}

func flatLen(p []uint64) int {
	// Sanity check
	if len(p)%ff.Limbs != 0 {
		panic(fmt.Sprintf("invalid flat coefficient array: len(p)=%d is not a multiple of %d", len(p), ff.Limbs))
	}
	n := len(p) / ff.Limbs
	if !utils.IsPowerOfTwo(n) {
		panic(fmt.Sprintf("invalid flat coefficient array: %d coefficients, not a power of two", n))
	}
	return n
}

func flatEncode(a []ff.Element, n int) []uint64 {
	p := make([]uint64, n*ff.Limbs)
	for i := range a {
		x := a[i].Felt()
		copy(p[i*ff.Limbs:], x[:])
	}
	return p
}

func flatDecode(p []uint64, m int) []ff.Element {
	a := make([]ff.Element, m)
	for i := range a {
		var x ff.Felt
		copy(x[:], p[i*ff.Limbs:])
		a[i] = x.Element()
	}
	return a
}

func bitReverseFlat(p []uint64, n int) {
	logN := utils.Log2(n)
	var tmp [ff.Limbs]uint64
	for i := 0; i < n; i++ {
		if j := utils.BitReverse64(uint64(i), logN); uint64(i) < j {
			x := p[i*ff.Limbs : (i+1)*ff.Limbs]
			y := p[j*ff.Limbs : (j+1)*ff.Limbs]
			copy(tmp[:], x)
			copy(x, y)
			copy(y, tmp[:])
		}
	}
}
