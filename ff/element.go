package ff

import (
	"math/big"

	"github.com/polyacc/polyacc/utils/bignum"
)

// Element is a field element in plain form, backed by an arbitrary
// precision integer. The wrapped value is always reduced into [0, q).
// Elements are immutable: all arithmetic goes through the [Field]
// methods and returns new values.
type Element struct {
	v big.Int
}

// NewElement returns a new Element reduced mod q.
// Accepted types are those of [bignum.NewInt]; negative inputs are
// mapped into [0, q).
func (f *Field) NewElement(x interface{}) (e Element) {
	e.v.Mod(bignum.NewInt(x), f.Modulus)
	return
}

// Zero returns the additive identity.
func (f *Field) Zero() Element {
	return Element{}
}

// One returns the multiplicative identity.
func (f *Field) One() Element {
	return f.NewElement(1)
}

// Add evaluates a + b mod q.
func (f *Field) Add(a, b Element) (c Element) {
	c.v.Add(&a.v, &b.v)
	if c.v.Cmp(f.Modulus) >= 0 {
		c.v.Sub(&c.v, f.Modulus)
	}
	return
}

// Sub evaluates a - b mod q.
func (f *Field) Sub(a, b Element) (c Element) {
	c.v.Sub(&a.v, &b.v)
	if c.v.Sign() < 0 {
		c.v.Add(&c.v, f.Modulus)
	}
	return
}

// Neg evaluates -a mod q.
func (f *Field) Neg(a Element) (c Element) {
	if a.v.Sign() == 0 {
		return
	}
	c.v.Sub(f.Modulus, &a.v)
	return
}

// Mul evaluates a·b mod q.
func (f *Field) Mul(a, b Element) (c Element) {
	c.v.Mul(&a.v, &b.v)
	c.v.Mod(&c.v, f.Modulus)
	return
}

// Exp evaluates a^e mod q.
func (f *Field) Exp(a Element, e *big.Int) (c Element) {
	c.v.Exp(&a.v, e, f.Modulus)
	return
}

// Inv evaluates a⁻¹ mod q as a^(q-2) (Fermat). By this convention
// Inv(0) = 0.
func (f *Field) Inv(a Element) Element {
	return f.Exp(a, f.qMinusTwo)
}

// Equal returns true if a and b encode the same field element.
func (a Element) Equal(b Element) bool {
	return a.v.Cmp(&b.v) == 0
}

// IsZero returns true if a is the additive identity.
func (a Element) IsZero() bool {
	return a.v.Sign() == 0
}

// IsOne returns true if a is the multiplicative identity.
func (a Element) IsOne() bool {
	return a.v.Cmp(oneInt) == 0
}

// BigInt returns a copy of the wrapped integer.
func (a Element) BigInt() *big.Int {
	return new(big.Int).Set(&a.v)
}

// Uint64 returns the low 64 bits of the wrapped integer.
func (a Element) Uint64() uint64 {
	return a.v.Uint64()
}

func (a Element) String() string {
	return a.v.String()
}

// Felt returns the 4-limb little-endian plain-form encoding of a.
func (a Element) Felt() Felt {
	var buf [32]byte
	a.v.FillBytes(buf[:])
	return feltFromBytes(buf)
}

// Element returns the [Element] encoded by the 4-limb window x.
func (x Felt) Element() (e Element) {
	buf := feltToBytes(x)
	e.v.SetBytes(buf[:])
	return
}

var oneInt = bignum.NewInt(1)
