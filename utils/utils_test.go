package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBitReverse64(t *testing.T) {
	require.Equal(t, uint64(0), BitReverse64(0, 3))
	require.Equal(t, uint64(4), BitReverse64(1, 3))
	require.Equal(t, uint64(3), BitReverse64(6, 3))
	require.Equal(t, uint64(7), BitReverse64(7, 3))
}

func TestPowerOfTwo(t *testing.T) {
	require.True(t, IsPowerOfTwo(1))
	require.True(t, IsPowerOfTwo(64))
	require.False(t, IsPowerOfTwo(0))
	require.False(t, IsPowerOfTwo(-2))
	require.False(t, IsPowerOfTwo(12))

	require.Equal(t, 1, NextPowerOfTwo(0))
	require.Equal(t, 1, NextPowerOfTwo(1))
	require.Equal(t, 8, NextPowerOfTwo(5))
	require.Equal(t, 8, NextPowerOfTwo(8))
	require.Equal(t, 16, NextPowerOfTwo(9))

	require.Equal(t, 5, Log2(32))
}
