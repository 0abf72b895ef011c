package curves

import (
	"math/big"
	"sync"

	"github.com/f3rmion/ecc/curve"
	"github.com/f3rmion/ecc/field"
	"github.com/f3rmion/ecc/group"
	"github.com/pkg/errors"
)

// montgomeryA is the coefficient A of Curve25519, v² = u³ + A·u² + u.
const montgomeryA = 486662

var (
	wei25519Once  sync.Once
	wei25519Group *group.Group

	// p25519 is 2^255 - 19.
	p25519 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 255), big.NewInt(19))

	// order25519 is the prime order 2^252 + 27742317777372353535851937790883648493
	// of the Curve25519 base point.
	order25519 = mustHex("1000000000000000000000000000000014def9dea2f79cd65812631a5cf5d3ed")
)

// Wei25519 returns the prime-order subgroup of Curve25519 written as the
// short Weierstrass curve
//
//	y² = x³ + a·x + b,  a = (3 - A²)/3,  b = (2A³ - 9A)/27
//
// A Montgomery point (u, v) maps to (u + A/3, v).
func Wei25519() *group.Group {
	wei25519Once.Do(func() {
		wei25519Group = buildWei25519()
	})
	return wei25519Group
}

// MontgomeryU returns the Curve25519 u coordinate of a finite Wei25519
// point, x - A/3. It returns curve.ErrDifferentCurve for points of any other
// curve.
func MontgomeryU(p *curve.Point) (field.Element, error) {
	w := Wei25519().Curve()
	if !p.Curve().Equal(w) {
		return field.Element{}, errors.Wrapf(curve.ErrDifferentCurve, "%s is not on %s", p, w)
	}
	return curve25519(w.Field()).u(p)
}

func curve25519(f *field.Field) montgomery {
	return montgomery{A: f.ReduceInt(montgomeryA), B: f.One()}
}

func buildWei25519() *group.Group {
	f, err := field.NewField(p25519)
	if err != nil {
		panic(errors.Wrap(err, "curves: wei25519 field"))
	}
	m := curve25519(f)
	c, err := m.weierstrass()
	if err != nil {
		panic(errors.Wrap(err, "curves: wei25519 coefficients"))
	}
	var e field.Arith
	x := m.x(&e, f.ReduceInt(9))
	if err := e.Err(); err != nil {
		panic(errors.Wrap(err, "curves: wei25519 generator"))
	}
	gen, err := c.LiftX(x, true)
	if err != nil {
		panic(errors.Wrap(err, "curves: wei25519 generator"))
	}
	g, err := group.New(c, gen, order25519)
	if err != nil {
		panic(errors.Wrap(err, "curves: wei25519 group"))
	}
	return g
}
