package bignum

import (
	"math/big"

	"github.com/ALTree/bigfloat"
)

// NewFloat creates a new big.Float element with "prec" bits of precision.
func NewFloat(x float64, prec uint) (y *big.Float) {
	y = new(big.Float)
	y.SetPrec(prec)
	y.SetFloat64(x)
	return
}

// Log2 returns log2(x) computed with "prec" bits of precision.
// x must be strictly positive.
func Log2(x *big.Float, prec uint) *big.Float {
	num := bigfloat.Log(new(big.Float).SetPrec(prec).Set(x))
	den := bigfloat.Log(NewFloat(2, prec))
	return num.Quo(num, den)
}
