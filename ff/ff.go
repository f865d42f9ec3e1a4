// Package ff implements fixed-width modular arithmetic over a prime field
// of at most 255 bits, with an allocation-free CIOS Montgomery
// multiplication as the workhorse primitive. The package provides both a
// 4-limb representation for the hot paths and a big.Int backed [Element]
// for the polynomial layer.
package ff

import (
	"fmt"
	"math/big"

	"github.com/polyacc/polyacc/utils/bignum"
)

// Field stores the precomputation for fast modular arithmetic and the
// NTT parameterization of a prime field.
type Field struct {
	// Modulus q
	Modulus *big.Int

	// Modulus as 4 little-endian 64-bit limbs
	Q Felt

	// -q⁻¹ mod 2^64 (Montgomery reduction constant)
	MRedConstant uint64

	// R² mod q, with R = 2^256
	RSquare Felt

	// R mod q (1 in Montgomery form)
	ROne MontFelt

	// Largest k such that 2^k divides q-1
	TwoAdicity int

	// Generator of the multiplicative group used to derive roots of unity
	Generator uint64

	// Primitive 2^TwoAdicity-th root of unity
	MaxRoot Element

	qMinusTwo *big.Int
}

// NewField creates a new Field for the given modulus. The modulus must be
// an odd prime of at most 255 bits, generator must generate a subgroup
// whose order is divisible by 2^twoAdicity, and 2^twoAdicity must divide
// modulus-1. An error is returned on any parameter violating these
// conditions.
func NewField(modulus *big.Int, generator uint64, twoAdicity int) (f *Field, err error) {

	if modulus == nil || modulus.Sign() <= 0 {
		return nil, fmt.Errorf("invalid modulus: must be a positive prime")
	}

	if modulus.BitLen() > 255 {
		return nil, fmt.Errorf("invalid modulus: %d bits, must be at most 255 bits", modulus.BitLen())
	}

	if modulus.Bit(0) != 1 {
		return nil, fmt.Errorf("invalid modulus: must be odd")
	}

	if !modulus.ProbablyPrime(20) {
		return nil, fmt.Errorf("invalid modulus: %s is not prime", modulus.String())
	}

	if twoAdicity < 1 || twoAdicity > 63 {
		return nil, fmt.Errorf("invalid two-adicity: %d, must be in [1, 63]", twoAdicity)
	}

	qMinusOne := new(big.Int).Sub(modulus, bignum.NewInt(1))

	if qMinusOne.TrailingZeroBits() < uint(twoAdicity) {
		return nil, fmt.Errorf("invalid two-adicity: 2^%d does not divide modulus-1", twoAdicity)
	}

	f = &Field{
		Modulus:    new(big.Int).Set(modulus),
		TwoAdicity: twoAdicity,
		Generator:  generator,
		qMinusTwo:  new(big.Int).Sub(modulus, bignum.NewInt(2)),
	}

	// Modulus limbs
	var buf [32]byte
	modulus.FillBytes(buf[:])
	f.Q = feltFromBytes(buf)

	// -q⁻¹ mod 2^64
	twoTo64 := new(big.Int).Lsh(bignum.NewInt(1), 64)
	qInv := new(big.Int).ModInverse(modulus, twoTo64)
	qInv.Neg(qInv).Mod(qInv, twoTo64)
	f.MRedConstant = qInv.Uint64()

	// R mod q and R² mod q
	r := new(big.Int).Lsh(bignum.NewInt(1), 256)
	rModQ := new(big.Int).Mod(r, modulus)
	rModQ.FillBytes(buf[:])
	f.ROne = MontFelt(feltFromBytes(buf))

	r2ModQ := new(big.Int).Mul(rModQ, rModQ)
	r2ModQ.Mod(r2ModQ, modulus)
	r2ModQ.FillBytes(buf[:])
	f.RSquare = feltFromBytes(buf)

	// MaxRoot = generator^((q-1)/2^twoAdicity) mod q
	oddPart := new(big.Int).Rsh(qMinusOne, uint(twoAdicity))
	maxRoot := new(big.Int).Exp(bignum.NewInt(generator), oddPart, modulus)
	f.MaxRoot = f.NewElement(maxRoot)

	// Checks that MaxRoot has order exactly 2^twoAdicity, i.e. that
	// MaxRoot^(2^(twoAdicity-1)) = -1 mod q.
	half := new(big.Int).Exp(maxRoot, new(big.Int).Lsh(bignum.NewInt(1), uint(twoAdicity-1)), modulus)
	if half.Cmp(qMinusOne) != 0 {
		return nil, fmt.Errorf("invalid generator: %d does not generate a primitive 2^%d-th root of unity", generator, twoAdicity)
	}

	return f, nil
}

// NewBLS12381ScalarField returns the scalar field of the BLS12-381 curve,
// the default field of the engine (255-bit modulus, two-adicity 32,
// multiplicative generator 7).
func NewBLS12381ScalarField() *Field {
	f, err := NewField(
		bignum.NewInt("0x73eda753299d7d483339d80809a1d80553bda402fffe5bfeffffffff00000001"),
		7,
		32,
	)
	if err != nil {
		// The parameters are fixed and known to be valid.
		panic(err)
	}
	return f
}

func feltFromBytes(buf [32]byte) (x Felt) {
	for i := 0; i < Limbs; i++ {
		for j := 0; j < 8; j++ {
			x[i] |= uint64(buf[31-8*i-j]) << (8 * j)
		}
	}
	return
}

func feltToBytes(x Felt) (buf [32]byte) {
	for i := 0; i < Limbs; i++ {
		for j := 0; j < 8; j++ {
			buf[31-8*i-j] = byte(x[i] >> (8 * j))
		}
	}
	return
}
