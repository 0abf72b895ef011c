// Package group turns a Weierstrass curve into the prime-order group used
// by elliptic-curve protocols such as ECDSA and Schnorr signatures.
//
// A [Group] bundles three caller-supplied parameters:
//
//   - a [curve.Curve] (coefficients a, b and the field modulus)
//   - a generator point G of that curve
//   - the order n of G, which must be prime
//
// Scalars are elements of the scalar field Z_n and are represented with
// [field.Element], so scalar arithmetic (add, multiply, invert) uses the
// same checked operations as coordinate arithmetic.
//
// # Design Philosophy
//
// All values are immutable. Operations return new scalars and points, and a
// Group may be shared between goroutines without locking:
//
//	// Compute k*G for a fresh random scalar
//	k, _ := g.RandomScalar(rand.Reader)
//	pub, err := g.ScalarBaseMult(k)
//
// All operations that can fail return errors rather than panicking, making
// error handling explicit and predictable.
//
// # Hashing
//
// [Group.HashToScalar] maps arbitrary data to a scalar through a [Hasher].
// [SHA256Hasher] is the default; [Blake2bHasher] adds a domain separation
// prefix. Select one with [NewWithHasher].
//
// # Security Considerations
//
// This package validates that the generator lies on the curve and has the
// stated order, and rejects points of other curves. It does not:
//
//   - perform point arithmetic in constant time
//   - check that the curve itself is cryptographically sound
//
// Callers accepting points from untrusted sources must build them with
// [curve.Curve.NewPoint], which rejects coordinates off the curve.
package group
