package field

import (
	"math/big"

	"github.com/pkg/errors"
)

// primalityRounds is the number of Miller-Rabin rounds used when a field is
// created. ProbablyPrime also runs a Baillie-PSW test, so this is ample.
const primalityRounds = 20

var (
	// ErrInvalidElement is returned when a value or modulus violates the
	// field membership rules: modulus > 0 and 0 <= value < modulus.
	ErrInvalidElement = errors.New("invalid field element")

	// ErrFieldMismatch is returned when operands belong to different fields.
	ErrFieldMismatch = errors.New("elements belong to different fields")

	// ErrNegativeExponent is returned by Pow for exponents below zero.
	ErrNegativeExponent = errors.New("exponent must be non-negative")

	// ErrDivisionByZero is returned when dividing by the zero element.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrNotInvertible is returned when an element shares a factor with a
	// composite modulus and therefore has no reciprocal.
	ErrNotInvertible = errors.New("element has no multiplicative inverse")

	// ErrNotPrime is returned by operations that require a prime modulus.
	ErrNotPrime = errors.New("modulus is not prime")

	// ErrNoSquareRoot is returned by Sqrt for quadratic non-residues.
	ErrNoSquareRoot = errors.New("element is not a quadratic residue")
)

var one = big.NewInt(1)

// Field describes the integers modulo a fixed positive modulus.
//
// A Field is immutable. Elements keep a pointer to the Field they were
// created in, so elements of one field share a single modulus value.
type Field struct {
	modulus *big.Int
	prime   bool
}

// NewField returns the field of integers modulo m.
// It returns ErrInvalidElement if m is nil or not positive.
func NewField(m *big.Int) (*Field, error) {
	if m == nil || m.Sign() <= 0 {
		return nil, errors.Wrapf(ErrInvalidElement, "modulus %v must be positive", m)
	}
	mod := new(big.Int).Set(m)
	return &Field{
		modulus: mod,
		prime:   mod.ProbablyPrime(primalityRounds),
	}, nil
}

// Modulus returns a copy of the field modulus.
func (f *Field) Modulus() *big.Int {
	return new(big.Int).Set(f.modulus)
}

// IsPrime reports whether the modulus is (with overwhelming probability)
// prime. Division is total over non-zero elements only for prime fields.
func (f *Field) IsPrime() bool {
	return f.prime
}

// BitLen returns the bit length of the modulus.
func (f *Field) BitLen() int {
	return f.modulus.BitLen()
}

// Equal reports whether f and g have the same modulus.
func (f *Field) Equal(g *Field) bool {
	if f == g {
		return true
	}
	if f == nil || g == nil {
		return false
	}
	return f.modulus.Cmp(g.modulus) == 0
}

// Element returns the element with value v.
// It returns ErrInvalidElement if v lies outside [0, modulus).
func (f *Field) Element(v *big.Int) (Element, error) {
	if v == nil || v.Sign() < 0 || v.Cmp(f.modulus) >= 0 {
		return Element{}, errors.Wrapf(ErrInvalidElement,
			"value %v not in range [0, %v)", v, f.modulus)
	}
	return Element{value: new(big.Int).Set(v), field: f}, nil
}

// Reduce returns v modulo the field modulus. Unlike Element it accepts any
// integer, including negative ones.
func (f *Field) Reduce(v *big.Int) Element {
	return f.wrap(new(big.Int).Mod(v, f.modulus))
}

// ReduceInt is Reduce for machine integers.
func (f *Field) ReduceInt(v int64) Element {
	return f.Reduce(big.NewInt(v))
}

// Zero returns the additive identity.
func (f *Field) Zero() Element {
	return f.wrap(new(big.Int))
}

// One returns the multiplicative identity. In the trivial field (modulus 1)
// this is the zero element.
func (f *Field) One() Element {
	return f.wrap(new(big.Int).Mod(one, f.modulus))
}

// String returns a description of the field.
func (f *Field) String() string {
	return "F_" + f.modulus.String()
}

// wrap builds an Element from an already reduced value. Every arithmetic
// result passes through here so that the range invariant is checked once
// more before the element escapes the package.
func (f *Field) wrap(v *big.Int) Element {
	if v.Sign() < 0 || v.Cmp(f.modulus) >= 0 {
		panic("field: reduced value " + v.String() + " outside " + f.String())
	}
	return Element{value: v, field: f}
}
