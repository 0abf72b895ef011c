// Package field implements arithmetic over the integers modulo a positive
// modulus, the base layer for elliptic-curve point arithmetic.
//
// The package provides two types:
//
//   - [Field]: an immutable handle describing one field (its modulus and
//     whether the modulus is prime)
//   - [Element]: one residue of a field, always in the range [0, modulus)
//
// # Validated Values
//
// Elements are created only through validating constructors ([New],
// [NewInt], [Field.Element]) that reject out-of-range input, and they are
// never mutated afterwards. Every arithmetic method returns a fresh Element
// of the same field:
//
//	x, _ := field.NewInt(7, 13)
//	y, _ := field.NewInt(12, 13)
//	sum, err := x.Add(y) // 6 (mod 13)
//
// Values and moduli are arbitrary precision, so the same code serves toy
// fields in tests and 256-bit prime fields used by real curves.
//
// # Errors
//
// Binary operations between elements of different fields fail with
// [ErrFieldMismatch]. Division by zero fails with [ErrDivisionByZero], and
// division by an element that has no reciprocal modulo a composite modulus
// fails with [ErrNotInvertible]. All errors can be matched with errors.Is.
//
// # Concurrency
//
// Elements and fields are read-only after construction and may be shared
// between goroutines without synchronization.
package field
