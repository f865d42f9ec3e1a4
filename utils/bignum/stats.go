package bignum

import (
	"math"
	"math/big"
)

// Stats returns the base 2 logarithm of the standard deviation
// and the mean of the input values.
func Stats(values []big.Int, prec uint) [2]float64 {

	N := len(values)

	mean := NewFloat(0, prec)
	tmp := NewFloat(0, prec)

	for i := 0; i < N; i++ {
		mean.Add(mean, tmp.SetInt(&values[i]))
	}

	mean.Quo(mean, NewFloat(float64(N), prec))

	meanF64, _ := mean.Float64()

	if N < 2 {
		return [2]float64{math.Inf(-1), meanF64}
	}

	stdFloat := NewFloat(0, prec)

	for i := 0; i < N; i++ {
		tmp.SetInt(&values[i])
		tmp.Sub(tmp, mean)
		tmp.Mul(tmp, tmp)
		stdFloat.Add(stdFloat, tmp)
	}

	stdFloat.Quo(stdFloat, NewFloat(float64(N-1), prec))

	stdFloat.Sqrt(stdFloat)

	if stdFloat.Sign() == 0 {
		return [2]float64{math.Inf(-1), meanF64}
	}

	logStd, _ := Log2(stdFloat, prec).Float64()

	return [2]float64{logStd, meanF64}
}
