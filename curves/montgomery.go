package curves

import (
	"github.com/f3rmion/ecc/curve"
	"github.com/f3rmion/ecc/field"
	"github.com/pkg/errors"
)

// montgomery is the curve B·v² = u³ + A·u² + u. Its short Weierstrass model
// is y² = x³ + a·x + b with
//
//	a = (3 - A²) / 3B²
//	b = (2A³ - 9A) / 27B³
//
// and (u, v) maps to (u/B + A/3B, v/B).
type montgomery struct {
	A, B field.Element
}

func (m montgomery) weierstrass() (*curve.Curve, error) {
	var e field.Arith
	f := m.A.Field()
	A2 := e.Mul(m.A, m.A)
	A3 := e.Mul(A2, m.A)
	B2 := e.Mul(m.B, m.B)
	B3 := e.Mul(B2, m.B)

	a := e.Div(e.Sub(f.ReduceInt(3), A2), e.Scale(B2, 3))
	b := e.Div(e.Sub(e.Scale(A3, 2), e.Scale(m.A, 9)), e.Scale(B3, 27))
	if err := e.Err(); err != nil {
		return nil, errors.Wrap(err, "montgomery to weierstrass")
	}
	return curve.NewCurve(a, b)
}

// shift is A/3B, the x coordinate of the image of (0, 0).
func (m montgomery) shift(e *field.Arith) field.Element {
	return e.Div(m.A, e.Scale(m.B, 3))
}

// x returns the Weierstrass x coordinate of Montgomery u.
func (m montgomery) x(e *field.Arith, u field.Element) field.Element {
	return e.Add(e.Div(u, m.B), m.shift(e))
}

// point maps the Montgomery point (u, v) onto w.
func (m montgomery) point(w *curve.Curve, u, v field.Element) (*curve.Point, error) {
	var e field.Arith
	x := m.x(&e, u)
	y := e.Div(v, m.B)
	if err := e.Err(); err != nil {
		return nil, err
	}
	return w.NewPoint(x, y)
}

// u returns the Montgomery u coordinate of a finite point, B·(x - A/3B).
func (m montgomery) u(p *curve.Point) (field.Element, error) {
	x, ok := p.X()
	if !ok {
		return field.Element{}, errors.New("point at infinity has no u coordinate")
	}
	var e field.Arith
	u := e.Mul(e.Sub(x, m.shift(&e)), m.B)
	return u, e.Err()
}
