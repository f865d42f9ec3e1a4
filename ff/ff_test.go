package ff

import (
	"crypto/rand"
	"testing"

	"github.com/polyacc/polyacc/utils/bignum"
	"github.com/stretchr/testify/require"
)

func randElement(f *Field) Element {
	return f.NewElement(bignum.RandInt(rand.Reader, f.Modulus))
}

func TestNewField(t *testing.T) {

	t.Run("BLS12381Constants", func(t *testing.T) {
		f := NewBLS12381ScalarField()

		require.Equal(t, 255, f.Modulus.BitLen())
		require.Equal(t, Felt{0xffffffff00000001, 0x53bda402fffe5bfe, 0x3339d80809a1d805, 0x73eda753299d7d48}, f.Q)
		require.Equal(t, uint64(0xfffffffeffffffff), f.MRedConstant)
		require.Equal(t, MontFelt{0x00000001fffffffe, 0x5884b7fa00034802, 0x998c4fefecbc4ff5, 0x1824b159acc5056f}, f.ROne)
		require.Equal(t, Felt{0xc999e990f3f29c6d, 0x2b6cedcb87925c23, 0x05d314967254398f, 0x0748d9d99f59ff11}, f.RSquare)
		require.Equal(t, 32, f.TwoAdicity)

		require.Equal(t,
			f.NewElement("10238227357739495823651030575849232062558860180284477541189508159991286009131"),
			f.MaxRoot)
	})

	t.Run("MaxRootOrder", func(t *testing.T) {
		f := NewBLS12381ScalarField()

		e := bignum.NewInt(1)
		e.Lsh(e, uint(f.TwoAdicity))
		require.True(t, f.Exp(f.MaxRoot, e).IsOne())

		e.Rsh(e, 1)
		require.True(t, f.Exp(f.MaxRoot, e).Equal(f.Neg(f.One())))
	})

	t.Run("InvalidParameters", func(t *testing.T) {
		_, err := NewField(nil, 7, 32)
		require.Error(t, err)

		_, err = NewField(bignum.NewInt(15), 7, 1)
		require.Error(t, err) // composite

		_, err = NewField(bignum.NewInt(16), 7, 1)
		require.Error(t, err) // even

		tooLarge := bignum.NewInt(1)
		tooLarge.Lsh(tooLarge, 256)
		_, err = NewField(tooLarge, 7, 1)
		require.Error(t, err)

		// q = 13: q-1 = 4*3, two-adicity 2
		_, err = NewField(bignum.NewInt(13), 2, 3)
		require.Error(t, err) // 2^3 does not divide 12

		_, err = NewField(bignum.NewInt(13), 3, 2)
		require.Error(t, err) // 3 has odd order 3 mod 13

		_, err = NewField(bignum.NewInt(13), 2, 2)
		require.NoError(t, err)
	})
}

func TestElement(t *testing.T) {

	f := NewBLS12381ScalarField()

	t.Run("Reduction", func(t *testing.T) {
		require.True(t, f.NewElement(f.Modulus).IsZero())
		require.True(t, f.NewElement(-1).Equal(f.Sub(f.Zero(), f.One())))
	})

	t.Run("AddSubNeg", func(t *testing.T) {
		for i := 0; i < 16; i++ {
			a, b := randElement(f), randElement(f)
			require.True(t, f.Sub(f.Add(a, b), b).Equal(a))
			require.True(t, f.Add(a, f.Neg(a)).IsZero())
		}
	})

	t.Run("MulInv", func(t *testing.T) {
		for i := 0; i < 16; i++ {
			a := randElement(f)
			if a.IsZero() {
				continue
			}
			require.True(t, f.Mul(a, f.Inv(a)).IsOne())
		}
		require.True(t, f.Inv(f.Zero()).IsZero())
	})

	t.Run("Exp", func(t *testing.T) {
		a := f.NewElement(3)
		require.True(t, f.Exp(a, bignum.NewInt(4)).Equal(f.NewElement(81)))
		require.True(t, f.Exp(a, bignum.NewInt(0)).IsOne())
	})

	t.Run("FeltRoundTrip", func(t *testing.T) {
		for i := 0; i < 16; i++ {
			a := randElement(f)
			require.True(t, a.Felt().Element().Equal(a))
		}
	})
}
