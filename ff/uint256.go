package ff

import (
	"math/bits"
)

// Limbs is the number of 64-bit limbs of a field element.
const Limbs = 4

// Felt is a field element in plain (standard) form, stored as 4
// little-endian 64-bit limbs. The value is always in [0, q).
type Felt [Limbs]uint64

// MontFelt is a field element in Montgomery form (v·R mod q, R = 2^256),
// stored as 4 little-endian 64-bit limbs. The value is always in [0, q).
//
// Felt and MontFelt are distinct types on purpose: the two encodings are
// not interchangeable and conversion goes through [Field.MForm] and
// [Field.IMForm] only.
type MontFelt [Limbs]uint64

// AddMod evaluates z = x + y mod q over 4-limb little-endian windows.
// z may alias x or y. Inputs must be in [0, q); the result is in [0, q).
// Inputs outside [0, q) produce undefined results.
func AddMod(z, x, y []uint64, q *Felt) {
	var c uint64
	z[0], c = bits.Add64(x[0], y[0], 0)
	z[1], c = bits.Add64(x[1], y[1], c)
	z[2], c = bits.Add64(x[2], y[2], c)
	z[3], c = bits.Add64(x[3], y[3], c)

	if c != 0 || !lessThan(z, q) {
		var b uint64
		z[0], b = bits.Sub64(z[0], q[0], 0)
		z[1], b = bits.Sub64(z[1], q[1], b)
		z[2], b = bits.Sub64(z[2], q[2], b)
		z[3], _ = bits.Sub64(z[3], q[3], b)
	}
}

// SubMod evaluates z = x - y mod q over 4-limb little-endian windows.
// z may alias x or y. Inputs must be in [0, q); the result is in [0, q).
func SubMod(z, x, y []uint64, q *Felt) {
	var b uint64
	z[0], b = bits.Sub64(x[0], y[0], 0)
	z[1], b = bits.Sub64(x[1], y[1], b)
	z[2], b = bits.Sub64(x[2], y[2], b)
	z[3], b = bits.Sub64(x[3], y[3], b)

	if b != 0 {
		var c uint64
		z[0], c = bits.Add64(z[0], q[0], 0)
		z[1], c = bits.Add64(z[1], q[1], c)
		z[2], c = bits.Add64(z[2], q[2], c)
		z[3], _ = bits.Add64(z[3], q[3], c)
	}
}

// lessThan returns x < q, comparing 4-limb little-endian windows.
func lessThan(x []uint64, q *Felt) bool {
	for i := Limbs - 1; i >= 0; i-- {
		if x[i] != q[i] {
			return x[i] < q[i]
		}
	}
	return false
}
