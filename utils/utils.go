// Package utils implements various helper functions.
package utils

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// BitReverse64 returns the bit-reversal of index with respect to bitLen bits.
func BitReverse64(index uint64, bitLen int) uint64 {
	return bits.Reverse64(index) >> (64 - bitLen)
}

// IsPowerOfTwo returns true if x is a power of two greater than zero.
func IsPowerOfTwo[T constraints.Integer](x T) bool {
	return x > 0 && x&(x-1) == 0
}

// NextPowerOfTwo returns the smallest power of two greater than or equal to x.
func NextPowerOfTwo[T constraints.Integer](x T) T {
	if x <= 1 {
		return 1
	}
	return T(1) << bits.Len64(uint64(x-1))
}

// Log2 returns the base 2 logarithm of x, which must be a power of two.
func Log2[T constraints.Integer](x T) int {
	return bits.Len64(uint64(x)) - 1
}

// Min returns the minimum between two ints.
func Min(x, y int) int {
	if x > y {
		return y
	}
	return x
}

// Max returns the maximum between two ints.
func Max(x, y int) int {
	if x < y {
		return y
	}
	return x
}
