package field

import (
	"math/big"

	"github.com/pkg/errors"
)

// Element is one residue of a [Field].
//
// Elements are values: they may be copied freely and are never modified
// after construction. The zero Element is not a member of any field; use
// one of the constructors.
type Element struct {
	value *big.Int
	field *Field
}

// New returns the element with the given value modulo modulus.
// It returns ErrInvalidElement if modulus <= 0 or the value lies outside
// [0, modulus).
func New(value, modulus *big.Int) (Element, error) {
	f, err := NewField(modulus)
	if err != nil {
		return Element{}, err
	}
	return f.Element(value)
}

// NewInt is New for machine integers.
func NewInt(value, modulus int64) (Element, error) {
	return New(big.NewInt(value), big.NewInt(modulus))
}

// Value returns a copy of the element's residue.
func (e Element) Value() *big.Int {
	if e.value == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(e.value)
}

// Modulus returns a copy of the modulus of the element's field.
func (e Element) Modulus() *big.Int {
	if e.field == nil {
		return new(big.Int)
	}
	return e.field.Modulus()
}

// Field returns the field the element belongs to.
func (e Element) Field() *Field {
	return e.field
}

// IsZero reports whether e is the additive identity.
func (e Element) IsZero() bool {
	return e.value != nil && e.value.Sign() == 0
}

// IsOdd reports whether the residue of e is odd.
func (e Element) IsOdd() bool {
	return e.value != nil && e.value.Bit(0) == 1
}

// Equal reports whether e and o have the same value and the same modulus.
func (e Element) Equal(o Element) bool {
	if e.field == nil || o.field == nil {
		return e.field == o.field
	}
	return e.field.Equal(o.field) && e.value.Cmp(o.value) == 0
}

// Add returns e + o.
func (e Element) Add(o Element) (Element, error) {
	if err := e.check(o, "add"); err != nil {
		return Element{}, err
	}
	v := new(big.Int).Add(e.value, o.value)
	return e.field.wrap(v.Mod(v, e.field.modulus)), nil
}

// Sub returns e - o.
func (e Element) Sub(o Element) (Element, error) {
	if err := e.check(o, "subtract"); err != nil {
		return Element{}, err
	}
	v := new(big.Int).Sub(e.value, o.value)
	// Rem truncates toward zero, so a negative difference stays negative.
	v.Rem(v, e.field.modulus)
	if v.Sign() < 0 {
		v.Add(v, e.field.modulus)
	}
	return e.field.wrap(v), nil
}

// Mul returns e * o.
func (e Element) Mul(o Element) (Element, error) {
	if err := e.check(o, "multiply"); err != nil {
		return Element{}, err
	}
	v := new(big.Int).Mul(e.value, o.value)
	return e.field.wrap(v.Mod(v, e.field.modulus)), nil
}

// Pow returns e raised to exponent.
// It returns ErrNegativeExponent if exponent < 0.
func (e Element) Pow(exponent *big.Int) (Element, error) {
	if err := e.valid(); err != nil {
		return Element{}, err
	}
	if exponent == nil || exponent.Sign() < 0 {
		return Element{}, errors.Wrapf(ErrNegativeExponent, "exponent %v", exponent)
	}
	m := e.field.modulus
	result := new(big.Int).Mod(one, m)
	base := new(big.Int).Set(e.value)
	// Square-and-multiply from the least significant bit, reducing at every
	// step so intermediates never exceed modulus².
	for i := 0; i < exponent.BitLen(); i++ {
		if exponent.Bit(i) == 1 {
			result.Mul(result, base)
			result.Mod(result, m)
		}
		base.Mul(base, base)
		base.Mod(base, m)
	}
	return e.field.wrap(result), nil
}

// PowInt is Pow for machine integers.
func (e Element) PowInt(exponent int64) (Element, error) {
	return e.Pow(big.NewInt(exponent))
}

// Inverse returns the multiplicative inverse of e.
func (e Element) Inverse() (Element, error) {
	if err := e.valid(); err != nil {
		return Element{}, err
	}
	if e.IsZero() {
		return Element{}, errors.Wrapf(ErrDivisionByZero, "invert zero in %s", e.field)
	}
	inv, ok := ModInverse(e.value, e.field.modulus)
	if !ok {
		return Element{}, errors.Wrapf(ErrNotInvertible, "%s", e)
	}
	return e.field.wrap(inv), nil
}

// Div returns e / o, computed as e times the reciprocal of o.
// It returns ErrDivisionByZero if o is zero.
func (e Element) Div(o Element) (Element, error) {
	if err := e.check(o, "divide"); err != nil {
		return Element{}, err
	}
	inv, err := o.Inverse()
	if err != nil {
		return Element{}, err
	}
	return e.Mul(inv)
}

// Scale returns e multiplied by an ordinary integer. The coefficient is
// reduced into the field first, so negative coefficients are allowed.
func (e Element) Scale(coefficient int64) (Element, error) {
	if err := e.valid(); err != nil {
		return Element{}, err
	}
	return e.Mul(e.field.ReduceInt(coefficient))
}

// Neg returns the additive inverse of e.
func (e Element) Neg() (Element, error) {
	if err := e.valid(); err != nil {
		return Element{}, err
	}
	return e.field.Zero().Sub(e)
}

// Sqrt returns a square root of e. The field must be prime.
// It returns ErrNoSquareRoot if e is a quadratic non-residue.
func (e Element) Sqrt() (Element, error) {
	if err := e.valid(); err != nil {
		return Element{}, err
	}
	if !e.field.prime {
		return Element{}, errors.Wrapf(ErrNotPrime, "square root in %s", e.field)
	}
	// In F_2 every element is its own square root; ModSqrt wants an odd prime.
	if e.field.modulus.Bit(0) == 0 || e.IsZero() {
		return e, nil
	}
	r := new(big.Int).ModSqrt(e.value, e.field.modulus)
	if r == nil {
		return Element{}, errors.Wrapf(ErrNoSquareRoot, "%s", e)
	}
	return e.field.wrap(r), nil
}

// String returns the element as "value (mod modulus)".
func (e Element) String() string {
	if e.field == nil {
		return "<invalid>"
	}
	return e.value.String() + " (mod " + e.field.modulus.String() + ")"
}

func (e Element) valid() error {
	if e.field == nil || e.value == nil {
		return errors.Wrap(ErrInvalidElement, "uninitialized element")
	}
	return nil
}

func (e Element) check(o Element, op string) error {
	if err := e.valid(); err != nil {
		return err
	}
	if err := o.valid(); err != nil {
		return err
	}
	if !e.field.Equal(o.field) {
		return errors.Wrapf(ErrFieldMismatch, "cannot %s elements of %s and %s",
			op, e.field, o.field)
	}
	return nil
}
