package curves

import (
	"crypto/elliptic"
	"crypto/rand"
	"math/big"
	"testing"

	"filippo.io/edwards25519"
	"github.com/consensys/gnark-crypto/ecc/bn254/twistededwards"
	gsecp "github.com/consensys/gnark-crypto/ecc/secp256k1"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/f3rmion/ecc/curve"
	"github.com/f3rmion/ecc/field"
	"github.com/f3rmion/ecc/group"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func coords(t *testing.T, p *curve.Point) (*big.Int, *big.Int) {
	t.Helper()
	x, ok := p.X()
	require.True(t, ok, "unexpected point at infinity")
	y, _ := p.Y()
	return x.Value(), y.Value()
}

func testScalars(t *testing.T, g *group.Group) []*big.Int {
	t.Helper()
	ks := []*big.Int{
		big.NewInt(1),
		big.NewInt(2),
		big.NewInt(3),
		big.NewInt(12345),
		new(big.Int).Sub(g.Order(), big.NewInt(1)),
	}
	for i := 0; i < 3; i++ {
		k, err := g.RandomScalar(rand.Reader)
		require.NoError(t, err)
		ks = append(ks, k.Value())
	}
	return ks
}

func TestSecp256k1(t *testing.T) {
	g := Secp256k1()
	dcr := secp256k1.S256().Params()

	t.Run("Parameters", func(t *testing.T) {
		assert.Equal(t, 0, g.Curve().Field().Modulus().Cmp(dcr.P))
		assert.Equal(t, 0, g.Order().Cmp(dcr.N))
		assert.True(t, g.Curve().A().IsZero())
		assert.Equal(t, int64(7), g.Curve().B().Value().Int64())
		assert.False(t, g.Curve().IsSingular())

		gx, gy := coords(t, g.Generator())
		assert.Equal(t, 0, gx.Cmp(dcr.Gx))
		assert.Equal(t, 0, gy.Cmp(dcr.Gy))
	})

	t.Run("KnownDouble", func(t *testing.T) {
		p, err := g.Generator().Double()
		require.NoError(t, err)
		x, y := coords(t, p)
		assert.Equal(t, "c6047f9441ed7d6d3045406e95c07cd85c778e4b8cef3ca7abac09b95c709ee5", x.Text(16))
		assert.Equal(t, "1ae168fea63dc339a3c58419466ceaeef7f632653266d0e1236431a950cfe52a", y.Text(16))
	})

	t.Run("MatchesDecred", func(t *testing.T) {
		for _, k := range testScalars(t, g) {
			p, err := g.ScalarBaseMult(g.NewScalar(k))
			require.NoError(t, err)
			x, y := coords(t, p)
			wx, wy := secp256k1.S256().ScalarBaseMult(k.Bytes())
			assert.Equal(t, 0, x.Cmp(wx), "k=%x", k)
			assert.Equal(t, 0, y.Cmp(wy), "k=%x", k)
		}
	})

	t.Run("MatchesGnark", func(t *testing.T) {
		_, gen := gsecp.Generators()
		for _, k := range testScalars(t, g) {
			p, err := g.ScalarBaseMult(g.NewScalar(k))
			require.NoError(t, err)
			x, y := coords(t, p)

			var want gsecp.G1Affine
			want.ScalarMultiplication(&gen, k)
			assert.Equal(t, 0, x.Cmp(want.X.BigInt(new(big.Int))), "k=%x", k)
			assert.Equal(t, 0, y.Cmp(want.Y.BigInt(new(big.Int))), "k=%x", k)
		}
	})

	t.Run("AdditionMatchesDecred", func(t *testing.T) {
		a, err := g.RandomScalar(rand.Reader)
		require.NoError(t, err)
		b, err := g.RandomScalar(rand.Reader)
		require.NoError(t, err)
		p, err := g.ScalarBaseMult(a)
		require.NoError(t, err)
		q, err := g.ScalarBaseMult(b)
		require.NoError(t, err)
		sum, err := p.Add(q)
		require.NoError(t, err)

		px, py := coords(t, p)
		qx, qy := coords(t, q)
		wx, wy := secp256k1.S256().Add(px, py, qx, qy)
		x, y := coords(t, sum)
		assert.Equal(t, 0, x.Cmp(wx))
		assert.Equal(t, 0, y.Cmp(wy))
	})

	t.Run("OrderAnnihilates", func(t *testing.T) {
		p, err := g.Generator().ScalarMult(g.Order())
		require.NoError(t, err)
		assert.True(t, p.IsInfinity())
	})
}

func TestP256(t *testing.T) {
	g := P256()
	std := elliptic.P256()

	t.Run("Parameters", func(t *testing.T) {
		assert.Equal(t, 0, g.Order().Cmp(std.Params().N))
		gx, gy := coords(t, g.Generator())
		assert.True(t, std.IsOnCurve(gx, gy))
	})

	t.Run("MatchesStdlib", func(t *testing.T) {
		for _, k := range testScalars(t, g) {
			p, err := g.ScalarBaseMult(g.NewScalar(k))
			require.NoError(t, err)
			x, y := coords(t, p)
			wx, wy := std.ScalarBaseMult(k.Bytes())
			assert.Equal(t, 0, x.Cmp(wx), "k=%x", k)
			assert.Equal(t, 0, y.Cmp(wy), "k=%x", k)
		}
	})
}

func TestWei25519(t *testing.T) {
	g := Wei25519()

	t.Run("Parameters", func(t *testing.T) {
		assert.Equal(t,
			"2aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa984914a144",
			g.Curve().A().Value().Text(16))
		assert.Equal(t,
			"7b425ed097b425ed097b425ed097b425ed097b425ed097b4260b5e9c7710c864",
			g.Curve().B().Value().Text(16))

		gx, gy := coords(t, g.Generator())
		assert.Equal(t, "2aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaad245a", gx.Text(16))
		assert.Equal(t, "20ae19a1b8a086b4e01edd2c7748d14c923d4d7e6d7c61b229e9c5a27eced3d9", gy.Text(16))

		u, err := MontgomeryU(g.Generator())
		require.NoError(t, err)
		assert.Equal(t, int64(9), u.Value().Int64())
	})

	t.Run("MatchesEdwards25519", func(t *testing.T) {
		for _, k := range []int64{1, 2, 5, 255, 65537, 1234567890123} {
			p, err := g.ScalarBaseMult(g.NewScalar(big.NewInt(k)))
			require.NoError(t, err)
			u, err := MontgomeryU(p)
			require.NoError(t, err)

			// edwards25519 scalars are 32-byte little-endian.
			var buf [32]byte
			kb := big.NewInt(k).Bytes()
			for i := range kb {
				buf[i] = kb[len(kb)-1-i]
			}
			s, err := edwards25519.NewScalar().SetCanonicalBytes(buf[:])
			require.NoError(t, err)
			want := edwards25519.NewIdentityPoint().ScalarBaseMult(s).BytesMontgomery()

			got := u.Value().Bytes()
			le := make([]byte, 32)
			for i := range got {
				le[i] = got[len(got)-1-i]
			}
			assert.Equal(t, want, le, "k=%d", k)
		}
	})

	t.Run("MontgomeryUAtInfinity", func(t *testing.T) {
		_, err := MontgomeryU(g.Curve().Infinity())
		assert.Error(t, err)
	})

	t.Run("MontgomeryUForeignPoint", func(t *testing.T) {
		_, err := MontgomeryU(Secp256k1().Generator())
		assert.True(t, errors.Is(err, curve.ErrDifferentCurve), "got %v", err)

		_, err = MontgomeryU(Secp256k1().Curve().Infinity())
		assert.True(t, errors.Is(err, curve.ErrDifferentCurve), "got %v", err)
	})
}

func TestBabyJubjub(t *testing.T) {
	g := BabyJubjub()
	params := twistededwards.GetEdwardsCurve()

	t.Run("Parameters", func(t *testing.T) {
		assert.Equal(t, 0, g.Order().Cmp(&params.Order))
		assert.Equal(t,
			"8a82106b27c1e0fb37494bec36b159bc19f7f45de5e5238f0a32c7a047e92ef",
			g.Curve().A().Value().Text(16))
		assert.Equal(t,
			"271176d854e87142ebc6f26aa7ab68429bb235ec466ae9259eef7b9042fc8b03",
			g.Curve().B().Value().Text(16))
		assert.False(t, g.Curve().IsSingular())
	})

	t.Run("MatchesEdwards", func(t *testing.T) {
		for _, k := range testScalars(t, g) {
			p, err := g.ScalarBaseMult(g.NewScalar(k))
			require.NoError(t, err)

			var want twistededwards.PointAffine
			want.ScalarMultiplication(&params.Base, k)
			q, err := FromEdwards(want.X.BigInt(new(big.Int)), want.Y.BigInt(new(big.Int)))
			require.NoError(t, err)
			assert.True(t, p.Equal(q), "k=%x", k)
		}
	})

	t.Run("EdwardsAddition", func(t *testing.T) {
		var a, b, sum twistededwards.PointAffine
		a.ScalarMultiplication(&params.Base, big.NewInt(31337))
		b.ScalarMultiplication(&params.Base, big.NewInt(271828))
		sum.Add(&a, &b)

		pa, err := FromEdwards(a.X.BigInt(new(big.Int)), a.Y.BigInt(new(big.Int)))
		require.NoError(t, err)
		pb, err := FromEdwards(b.X.BigInt(new(big.Int)), b.Y.BigInt(new(big.Int)))
		require.NoError(t, err)
		want, err := FromEdwards(sum.X.BigInt(new(big.Int)), sum.Y.BigInt(new(big.Int)))
		require.NoError(t, err)

		got, err := pa.Add(pb)
		require.NoError(t, err)
		assert.True(t, got.Equal(want))
	})

	t.Run("Identity", func(t *testing.T) {
		p, err := FromEdwards(big.NewInt(0), big.NewInt(1))
		require.NoError(t, err)
		assert.True(t, p.IsInfinity())
	})

	t.Run("OffCurve", func(t *testing.T) {
		for _, xy := range [][2]int64{{1, 2}, {0, 5}, {0, 0}} {
			_, err := FromEdwards(big.NewInt(xy[0]), big.NewInt(xy[1]))
			assert.True(t, errors.Is(err, curve.ErrNotOnCurve), "(%d, %d): got %v", xy[0], xy[1], err)
		}
	})

	t.Run("OutOfRange", func(t *testing.T) {
		p := g.Curve().Field().Modulus()
		_, err := FromEdwards(p, big.NewInt(1))
		assert.True(t, errors.Is(err, field.ErrInvalidElement), "got %v", err)
		_, err = FromEdwards(big.NewInt(0), big.NewInt(-1))
		assert.True(t, errors.Is(err, field.ErrInvalidElement), "got %v", err)
	})

	t.Run("TwoTorsion", func(t *testing.T) {
		minusOne := new(big.Int).Sub(g.Curve().Field().Modulus(), big.NewInt(1))
		p, err := FromEdwards(big.NewInt(0), minusOne)
		require.NoError(t, err)
		y, ok := p.Y()
		require.True(t, ok)
		assert.True(t, y.IsZero())

		d, err := p.Double()
		require.NoError(t, err)
		assert.True(t, d.IsInfinity())
	})
}

func TestByName(t *testing.T) {
	assert.Equal(t, []string{"babyjubjub", "p256", "secp256k1", "wei25519"}, Names())

	g, err := ByName("SECP256K1")
	require.NoError(t, err)
	assert.Same(t, Secp256k1(), g)

	_, err = ByName("ed448")
	assert.True(t, errors.Is(err, ErrUnknownCurve))
}
