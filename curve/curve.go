package curve

import (
	"fmt"

	"github.com/f3rmion/ecc/field"
	"github.com/pkg/errors"
)

var (
	// ErrNotOnCurve is returned when coordinates do not satisfy the curve
	// equation.
	ErrNotOnCurve = errors.New("point is not on the curve")

	// ErrDifferentCurve is returned when a group operation mixes points of
	// curves with different coefficients.
	ErrDifferentCurve = errors.New("points are on different curves")

	// ErrNegativeScalar is returned by ScalarMult for k < 0.
	ErrNegativeScalar = errors.New("scalar must be non-negative")

	// ErrFieldTooLarge is returned by Points when the field exceeds the
	// enumeration limit.
	ErrFieldTooLarge = errors.New("field too large to enumerate")
)

// Curve is the short Weierstrass curve y² = x³ + a·x + b.
type Curve struct {
	a, b  field.Element
	field *field.Field
}

// NewCurve returns the curve with coefficients a and b.
// Both coefficients must belong to the same field.
//
// Singular curves (4a³ + 27b² = 0) are accepted; see [Curve.IsSingular].
func NewCurve(a, b field.Element) (*Curve, error) {
	if a.Field() == nil || b.Field() == nil {
		return nil, errors.Wrap(field.ErrInvalidElement, "curve coefficient")
	}
	if !a.Field().Equal(b.Field()) {
		return nil, errors.Wrapf(field.ErrFieldMismatch,
			"coefficients a in %s and b in %s", a.Field(), b.Field())
	}
	return &Curve{a: a, b: b, field: a.Field()}, nil
}

// A returns the coefficient a.
func (c *Curve) A() field.Element { return c.a }

// B returns the coefficient b.
func (c *Curve) B() field.Element { return c.b }

// Field returns the field the curve is defined over.
func (c *Curve) Field() *field.Field { return c.field }

// Equal reports whether c and o have the same coefficients over the same
// field.
func (c *Curve) Equal(o *Curve) bool {
	if c == o {
		return true
	}
	if c == nil || o == nil {
		return false
	}
	return c.a.Equal(o.a) && c.b.Equal(o.b)
}

// IsSingular reports whether the discriminant 4a³ + 27b² vanishes, in which
// case the curve has a cusp or node and is not an elliptic curve.
func (c *Curve) IsSingular() bool {
	var e field.Arith
	a3 := e.Mul(e.Mul(c.a, c.a), c.a)
	b2 := e.Mul(c.b, c.b)
	d := e.Add(e.Scale(a3, 4), e.Scale(b2, 27))
	if err := e.Err(); err != nil {
		panic(fmt.Sprintf("curve: discriminant of %s: %v", c, err))
	}
	return d.IsZero()
}

// Infinity returns the point at infinity of c.
func (c *Curve) Infinity() *Point {
	return &Point{curve: c, inf: true}
}

// NewPoint returns the finite point (x, y) of c.
// It returns ErrNotOnCurve if y² != x³ + a·x + b.
func (c *Curve) NewPoint(x, y field.Element) (*Point, error) {
	ok, err := c.IsOnCurve(x, y)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.Wrapf(ErrNotOnCurve, "(%s, %s) on %s", x.Value(), y.Value(), c)
	}
	return &Point{curve: c, x: x, y: y}, nil
}

// IsOnCurve reports whether (x, y) satisfies the curve equation. It fails
// only if a coordinate belongs to another field.
func (c *Curve) IsOnCurve(x, y field.Element) (bool, error) {
	for _, v := range []field.Element{x, y} {
		if v.Field() == nil {
			return false, errors.Wrap(field.ErrInvalidElement, "point coordinate")
		}
		if !v.Field().Equal(c.field) {
			return false, errors.Wrapf(field.ErrFieldMismatch,
				"coordinate in %s, curve over %s", v.Field(), c.field)
		}
	}
	var e field.Arith
	lhs := e.Mul(y, y)
	rhs := c.rhs(&e, x)
	if err := e.Err(); err != nil {
		return false, err
	}
	return lhs.Equal(rhs), nil
}

// LiftX returns the point of c with the given x coordinate whose y
// coordinate has the requested parity. If y = 0 is the only solution it is
// returned regardless of odd. It returns ErrNotOnCurve if x³ + a·x + b is
// not a square.
func (c *Curve) LiftX(x field.Element, odd bool) (*Point, error) {
	var e field.Arith
	rhs := c.rhs(&e, x)
	if err := e.Err(); err != nil {
		return nil, err
	}
	y, err := rhs.Sqrt()
	if errors.Is(err, field.ErrNoSquareRoot) {
		return nil, errors.Wrapf(ErrNotOnCurve, "no point with x = %s", x.Value())
	}
	if err != nil {
		return nil, err
	}
	if !y.IsZero() && y.IsOdd() != odd {
		if y, err = y.Neg(); err != nil {
			return nil, err
		}
	}
	return c.NewPoint(x, y)
}

// String returns the curve equation.
func (c *Curve) String() string {
	return fmt.Sprintf("y^2 = x^3 + %sx + %s over %s", c.a.Value(), c.b.Value(), c.field)
}

// rhs evaluates x³ + a·x + b.
func (c *Curve) rhs(e *field.Arith, x field.Element) field.Element {
	x3 := e.Mul(e.Mul(x, x), x)
	return e.Add(e.Add(x3, e.Mul(c.a, x)), c.b)
}
