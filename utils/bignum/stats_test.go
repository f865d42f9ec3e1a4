package bignum

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewInt(t *testing.T) {
	require.Equal(t, int64(255), NewInt("0xff").Int64())
	require.Equal(t, int64(-3), NewInt(-3).Int64())
	require.Equal(t, int64(42), NewInt(uint64(42)).Int64())
	require.Panics(t, func() { NewInt(3.14) })
}

func TestStats(t *testing.T) {
	values := make([]big.Int, 3)
	for i := range values {
		values[i].SetInt64(int64(i + 1))
	}

	stats := Stats(values, 128)
	require.InDelta(t, 2.0, stats[1], 1e-12)
	require.InDelta(t, 0.0, stats[0], 1e-12)

	// Degenerate inputs
	require.True(t, math.IsInf(Stats(values[:1], 128)[0], -1))

	same := make([]big.Int, 4)
	for i := range same {
		same[i].SetInt64(7)
	}
	require.True(t, math.IsInf(Stats(same, 128)[0], -1))
}
