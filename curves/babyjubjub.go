package curves

import (
	"math/big"
	"sync"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/twistededwards"
	"github.com/f3rmion/ecc/curve"
	"github.com/f3rmion/ecc/field"
	"github.com/f3rmion/ecc/group"
	"github.com/pkg/errors"
)

var (
	babyJubjubOnce  sync.Once
	babyJubjubGroup *group.Group
)

// BabyJubjub returns the prime-order subgroup of Baby Jubjub, the twisted
// Edwards curve a·x² + y² = 1 + d·x²·y² over the BN254 scalar field, in short
// Weierstrass form. The Edwards parameters and base point are gnark-crypto's.
//
// The conversion passes through the Montgomery model with
//
//	A = 2(a + d)/(a - d),  B = 4/(a - d)
//	u = (1 + y)/(1 - y),   v = u/x
func BabyJubjub() *group.Group {
	babyJubjubOnce.Do(func() {
		babyJubjubGroup = buildBabyJubjub()
	})
	return babyJubjubGroup
}

// FromEdwards maps the Baby Jubjub point (x, y) in twisted Edwards
// coordinates onto BabyJubjub's curve. The Edwards identity (0, 1) maps to
// the point at infinity. Coordinates outside the field fail with
// field.ErrInvalidElement and points off the Edwards curve with
// curve.ErrNotOnCurve.
func FromEdwards(x, y *big.Int) (*curve.Point, error) {
	w := BabyJubjub().Curve()
	f := w.Field()
	xe, err := f.Element(x)
	if err != nil {
		return nil, errors.Wrap(err, "edwards x")
	}
	ye, err := f.Element(y)
	if err != nil {
		return nil, errors.Wrap(err, "edwards y")
	}
	return babyJubjubEdwards(f).toWeierstrass(w, xe, ye)
}

// twistedEdwards is the curve a·x² + y² = 1 + d·x²·y².
type twistedEdwards struct {
	a, d field.Element
}

func babyJubjubEdwards(f *field.Field) twistedEdwards {
	params := twistededwards.GetEdwardsCurve()
	return twistedEdwards{
		a: f.Reduce(params.A.BigInt(new(big.Int))),
		d: f.Reduce(params.D.BigInt(new(big.Int))),
	}
}

func (t twistedEdwards) montgomery() (montgomery, error) {
	var e field.Arith
	f := t.a.Field()
	diff := e.Sub(t.a, t.d)
	m := montgomery{
		A: e.Div(e.Scale(e.Add(t.a, t.d), 2), diff),
		B: e.Div(f.ReduceInt(4), diff),
	}
	return m, e.Err()
}

func (t twistedEdwards) isOnCurve(x, y field.Element) (bool, error) {
	var e field.Arith
	f := t.a.Field()
	x2 := e.Mul(x, x)
	y2 := e.Mul(y, y)
	lhs := e.Add(e.Mul(t.a, x2), y2)
	rhs := e.Add(f.One(), e.Mul(t.d, e.Mul(x2, y2)))
	if err := e.Err(); err != nil {
		return false, err
	}
	return lhs.Equal(rhs), nil
}

// toWeierstrass maps the Edwards point (x, y) onto w, the Weierstrass model
// of t.
func (t twistedEdwards) toWeierstrass(w *curve.Curve, x, y field.Element) (*curve.Point, error) {
	ok, err := t.isOnCurve(x, y)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.Wrapf(curve.ErrNotOnCurve, "edwards point (%s, %s)", x.Value(), y.Value())
	}
	f := w.Field()
	if x.IsZero() && y.Equal(f.One()) {
		return w.Infinity(), nil
	}
	m, err := t.montgomery()
	if err != nil {
		return nil, err
	}
	if x.IsZero() {
		// (0, -1) has order two and corresponds to (0, 0).
		return m.point(w, f.Zero(), f.Zero())
	}
	var e field.Arith
	u := e.Div(e.Add(f.One(), y), e.Sub(f.One(), y))
	v := e.Div(u, x)
	if err := e.Err(); err != nil {
		return nil, errors.Wrapf(err, "edwards point (%s, %s)", x.Value(), y.Value())
	}
	return m.point(w, u, v)
}

func buildBabyJubjub() *group.Group {
	params := twistededwards.GetEdwardsCurve()
	f, err := field.NewField(fr.Modulus())
	if err != nil {
		panic(errors.Wrap(err, "curves: babyjubjub field"))
	}
	t := babyJubjubEdwards(f)
	m, err := t.montgomery()
	if err != nil {
		panic(errors.Wrap(err, "curves: babyjubjub montgomery form"))
	}
	c, err := m.weierstrass()
	if err != nil {
		panic(errors.Wrap(err, "curves: babyjubjub coefficients"))
	}
	gen, err := t.toWeierstrass(c,
		f.Reduce(params.Base.X.BigInt(new(big.Int))),
		f.Reduce(params.Base.Y.BigInt(new(big.Int))))
	if err != nil {
		panic(errors.Wrap(err, "curves: babyjubjub generator"))
	}
	g, err := group.New(c, gen, &params.Order)
	if err != nil {
		panic(errors.Wrap(err, "curves: babyjubjub group"))
	}
	return g
}
