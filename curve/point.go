package curve

import (
	"fmt"

	"github.com/f3rmion/ecc/field"
	"github.com/pkg/errors"
)

// Point is a point of a [Curve]: either a finite point (x, y) satisfying the
// curve equation or the point at infinity.
//
// The two variants are only produced by the constructors, so a finite Point
// always lies on its curve.
type Point struct {
	curve *Curve
	x, y  field.Element
	inf   bool
}

// NewPoint returns the point (x, y) of the curve y² = x³ + a·x + b.
// If x or y is nil the point at infinity is returned and the curve equation
// is not checked. Otherwise it returns ErrNotOnCurve if the coordinates do
// not satisfy the equation.
//
// Points built by separate NewPoint calls with equal coefficients are on
// the same curve. Callers creating many points should build a [Curve] once
// and use [Curve.NewPoint].
func NewPoint(x, y *field.Element, a, b field.Element) (*Point, error) {
	c, err := NewCurve(a, b)
	if err != nil {
		return nil, err
	}
	if x == nil || y == nil {
		return c.Infinity(), nil
	}
	return c.NewPoint(*x, *y)
}

// Curve returns the curve p lies on.
func (p *Point) Curve() *Curve { return p.curve }

// IsInfinity reports whether p is the point at infinity.
func (p *Point) IsInfinity() bool { return p.inf }

// X returns the x coordinate. The boolean is false for the point at
// infinity, which has no coordinates.
func (p *Point) X() (field.Element, bool) { return p.x, !p.inf }

// Y returns the y coordinate. The boolean is false for the point at
// infinity, which has no coordinates.
func (p *Point) Y() (field.Element, bool) { return p.y, !p.inf }

// Equal reports whether p and q are the same point of the same curve.
func (p *Point) Equal(q *Point) bool {
	if !p.curve.Equal(q.curve) {
		return false
	}
	if p.inf || q.inf {
		return p.inf == q.inf
	}
	return p.x.Equal(q.x) && p.y.Equal(q.y)
}

// Add returns p + q.
// It returns ErrDifferentCurve if p and q are not on the same curve.
func (p *Point) Add(q *Point) (*Point, error) {
	if !p.curve.Equal(q.curve) {
		return nil, errors.Wrapf(ErrDifferentCurve, "%s and %s", p.curve, q.curve)
	}

	switch {
	case p.inf:
		return q, nil

	case q.inf:
		return p, nil

	case p.x.Equal(q.x) && !p.y.Equal(q.y):
		// Vertical line through p and -p.
		return p.curve.Infinity(), nil

	case p.Equal(q) && p.y.IsZero():
		// Vertical tangent.
		return p.curve.Infinity(), nil

	case p.Equal(q):
		return p.tangent()

	case !p.x.Equal(q.x):
		return p.chord(q)

	default:
		// Equal x and y but unequal points can only happen if a point that
		// is not on the curve got past NewPoint.
		panic(fmt.Sprintf("curve: inconsistent addition of %s and %s", p, q))
	}
}

// Double returns p + p.
func (p *Point) Double() (*Point, error) {
	return p.Add(p)
}

// Neg returns -p, the reflection of p over the x axis.
func (p *Point) Neg() (*Point, error) {
	if p.inf {
		return p, nil
	}
	y, err := p.y.Neg()
	if err != nil {
		return nil, err
	}
	return &Point{curve: p.curve, x: p.x, y: y}, nil
}

// Sub returns p - q.
func (p *Point) Sub(q *Point) (*Point, error) {
	n, err := q.Neg()
	if err != nil {
		return nil, err
	}
	return p.Add(n)
}

// String returns the point as "Point(x, y)" or "Point(infinity)".
func (p *Point) String() string {
	if p.inf {
		return "Point(infinity)"
	}
	return fmt.Sprintf("Point(%s, %s)", p.x.Value(), p.y.Value())
}

// tangent doubles a finite point with y != 0:
//
//	s  = (3x² + a) / 2y
//	x3 = s² - 2x
//	y3 = s(x - x3) - y
func (p *Point) tangent() (*Point, error) {
	var e field.Arith
	num := e.Add(e.Scale(e.Mul(p.x, p.x), 3), p.curve.a)
	s := e.Div(num, e.Scale(p.y, 2))
	x3 := e.Sub(e.Mul(s, s), e.Scale(p.x, 2))
	y3 := e.Sub(e.Mul(s, e.Sub(p.x, x3)), p.y)
	if err := e.Err(); err != nil {
		return nil, errors.Wrapf(err, "double %s", p)
	}
	return p.curve.NewPoint(x3, y3)
}

// chord adds finite points with distinct x coordinates:
//
//	s  = (y2 - y1) / (x2 - x1)
//	x3 = s² - x1 - x2
//	y3 = s(x1 - x3) - y1
func (p *Point) chord(q *Point) (*Point, error) {
	var e field.Arith
	s := e.Div(e.Sub(q.y, p.y), e.Sub(q.x, p.x))
	x3 := e.Sub(e.Sub(e.Mul(s, s), p.x), q.x)
	y3 := e.Sub(e.Mul(s, e.Sub(p.x, x3)), p.y)
	if err := e.Err(); err != nil {
		return nil, errors.Wrapf(err, "add %s and %s", p, q)
	}
	return p.curve.NewPoint(x3, y3)
}
