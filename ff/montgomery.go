package ff

import (
	"fmt"
	"math/bits"
)

// feltOne is the plain-form constant 1, used by IMForm: MRed(x, 1) = x·R⁻¹.
var feltOne = Felt{1, 0, 0, 0}

// MRed evaluates z = x·y·R⁻¹ mod q using the CIOS (Coarsely Integrated
// Operand Scanning) algorithm, with R = 2^256 and mrc = -q⁻¹ mod 2^64.
//
// z, x and y are 4-limb little-endian windows into caller-owned storage;
// z may alias x or y. t is caller-supplied scratch, reused across calls;
// one scratch region per in-flight computation, never shared across
// concurrent calls.
//
// Inputs must be in [0, q); the result is in [0, q). Inputs outside
// [0, q) produce undefined results. The function never allocates.
func MRed(z, x, y []uint64, q *Felt, mrc uint64, t *[6]uint64) {

	_ = x[Limbs-1]
	_ = y[Limbs-1]
	_ = z[Limbs-1]

	t[0], t[1], t[2], t[3], t[4], t[5] = 0, 0, 0, 0, 0, 0

	var hi, lo, s, c, c1, c2 uint64

	for i := 0; i < Limbs; i++ {

		// t += x * y[i]
		yi := y[i]
		c = 0
		for j := 0; j < Limbs; j++ {
			hi, lo = bits.Mul64(x[j], yi)
			s, c1 = bits.Add64(t[j], lo, 0)
			s, c2 = bits.Add64(s, c, 0)
			t[j] = s
			c = hi + c1 + c2
		}
		t[4], c1 = bits.Add64(t[4], c, 0)
		t[5] = c1

		// One Montgomery reduction step: add m·q with
		// m = t[0]·mrc mod 2^64, then shift right one limb.
		m := t[0] * mrc
		hi, lo = bits.Mul64(m, q[0])
		_, c1 = bits.Add64(t[0], lo, 0) // t[0] + lo == 0 mod 2^64 by choice of m
		c = hi + c1
		for j := 1; j < Limbs; j++ {
			hi, lo = bits.Mul64(m, q[j])
			s, c1 = bits.Add64(t[j], lo, 0)
			s, c2 = bits.Add64(s, c, 0)
			t[j-1] = s
			c = hi + c1 + c2
		}
		t[3], c1 = bits.Add64(t[4], c, 0)
		t[4] = t[5] + c1
		t[5] = 0
	}

	// At most one subtraction of q is needed since the result is < 2q.
	if t[4] != 0 || !lessThan(t[:Limbs], q) {
		var b uint64
		t[0], b = bits.Sub64(t[0], q[0], 0)
		t[1], b = bits.Sub64(t[1], q[1], b)
		t[2], b = bits.Sub64(t[2], q[2], b)
		t[3], _ = bits.Sub64(t[3], q[3], b)
	}

	z[0], z[1], z[2], z[3] = t[0], t[1], t[2], t[3]
}

// MForm returns x in Montgomery form, computed as MRed(x, R² mod q).
func (f *Field) MForm(x Felt) (z MontFelt) {
	var t [6]uint64
	MRed(z[:], x[:], f.RSquare[:], &f.Q, f.MRedConstant, &t)
	return
}

// IMForm returns x in plain form, computed as MRed(x, 1).
func (f *Field) IMForm(x MontFelt) (z Felt) {
	var t [6]uint64
	MRed(z[:], x[:], feltOne[:], &f.Q, f.MRedConstant, &t)
	return
}

// MulMont evaluates z = x·y mod q with both operands and the result in
// Montgomery form.
func (f *Field) MulMont(x, y MontFelt) (z MontFelt) {
	var t [6]uint64
	MRed(z[:], x[:], y[:], &f.Q, f.MRedConstant, &t)
	return
}

// AddMont evaluates z = x + y mod q in Montgomery form.
func (f *Field) AddMont(x, y MontFelt) (z MontFelt) {
	AddMod(z[:], x[:], y[:], &f.Q)
	return
}

// SubMont evaluates z = x - y mod q in Montgomery form.
func (f *Field) SubMont(x, y MontFelt) (z MontFelt) {
	SubMod(z[:], x[:], y[:], &f.Q)
	return
}

// MFormVec converts p, a dense array of plain-form 4-limb coefficients,
// to Montgomery form in place.
func (f *Field) MFormVec(p []uint64) {
	// Sanity check
	if len(p)%Limbs != 0 {
		panic(fmt.Sprintf("cannot MFormVec: len(p)=%d is not a multiple of %d", len(p), Limbs))
	}
	var t [6]uint64
	for i := 0; i < len(p); i += Limbs {
		MRed(p[i:i+Limbs], p[i:i+Limbs], f.RSquare[:], &f.Q, f.MRedConstant, &t)
	}
}

// IMFormVec converts p, a dense array of Montgomery-form 4-limb
// coefficients, to plain form in place.
func (f *Field) IMFormVec(p []uint64) {
	// Sanity check
	if len(p)%Limbs != 0 {
		panic(fmt.Sprintf("cannot IMFormVec: len(p)=%d is not a multiple of %d", len(p), Limbs))
	}
	var t [6]uint64
	for i := 0; i < len(p); i += Limbs {
		MRed(p[i:i+Limbs], p[i:i+Limbs], feltOne[:], &f.Q, f.MRedConstant, &t)
	}
}
