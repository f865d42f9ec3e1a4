package ff

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/polyacc/polyacc/utils/bignum"
	"github.com/stretchr/testify/require"
)

func TestMRed(t *testing.T) {

	f := NewBLS12381ScalarField()

	t.Run("KnownVector", func(t *testing.T) {
		// a, b random elements with precomputed Montgomery encodings.
		aMont := MontFelt{0x9f47973345399345, 0xc24b25fc18b8e09a, 0xe34e1bba90382da9, 0x37d913c674de091a}
		bMont := MontFelt{0x600fa5f2764103b6, 0x4effec84eac5cc82, 0x1b483e8158079c0d, 0x3c38935a3dfd1268}
		abMont := MontFelt{0xe2762d099636bf9d, 0x69a180570066637e, 0xc7750e6ac5c956f9, 0x3d82f480333d505b}
		require.Equal(t, abMont, f.MulMont(aMont, bMont))
	})

	t.Run("CIOSMatchesBigInt", func(t *testing.T) {
		for i := 0; i < 64; i++ {
			a, b := randElement(f), randElement(f)
			got := f.IMForm(f.MulMont(f.MForm(a.Felt()), f.MForm(b.Felt()))).Element()
			require.True(t, f.Mul(a, b).Equal(got), "a=%s b=%s", a, b)
		}
	})

	t.Run("MFormRoundTrip", func(t *testing.T) {
		for i := 0; i < 64; i++ {
			x := randElement(f).Felt()
			require.Equal(t, x, f.IMForm(f.MForm(x)))
		}
	})

	t.Run("Identity", func(t *testing.T) {
		x := f.MForm(randElement(f).Felt())
		require.Equal(t, x, f.MulMont(x, f.ROne))
	})
}

func TestAddSubMod(t *testing.T) {

	f := NewBLS12381ScalarField()

	for i := 0; i < 64; i++ {
		a, b := randElement(f), randElement(f)
		af, bf := a.Felt(), b.Felt()

		var sum, diff Felt
		AddMod(sum[:], af[:], bf[:], &f.Q)
		SubMod(diff[:], af[:], bf[:], &f.Q)

		require.True(t, sum.Element().Equal(f.Add(a, b)))
		require.True(t, diff.Element().Equal(f.Sub(a, b)))
	}

	// Aliased destination
	a := randElement(f).Felt()
	b := randElement(f).Felt()
	want := f.Add(a.Element(), b.Element())
	AddMod(a[:], a[:], b[:], &f.Q)
	require.True(t, a.Element().Equal(want))
}

func TestMFormVec(t *testing.T) {

	f := NewBLS12381ScalarField()

	n := 32
	p := make([]uint64, n*Limbs)
	want := make([]uint64, n*Limbs)
	for i := 0; i < n; i++ {
		x := randElement(f).Felt()
		copy(p[i*Limbs:], x[:])
	}
	copy(want, p)

	f.MFormVec(p)
	f.IMFormVec(p)
	require.Equal(t, want, p)

	require.Panics(t, func() { f.MFormVec(make([]uint64, 3)) })
}

func BenchmarkMRed(b *testing.B) {

	f := NewBLS12381ScalarField()

	x := f.MForm(randElement(f).Felt())
	y := f.MForm(randElement(f).Felt())

	var z MontFelt
	var scratch [6]uint64

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		MRed(z[:], x[:], y[:], &f.Q, f.MRedConstant, &scratch)
	}
}

func BenchmarkBigIntMulMod(b *testing.B) {

	f := NewBLS12381ScalarField()

	x := bignum.RandInt(rand.Reader, f.Modulus)
	y := bignum.RandInt(rand.Reader, f.Modulus)
	z := new(big.Int)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		z.Mul(x, y)
		z.Mod(z, f.Modulus)
	}
}
