// Package curves provides named prime-order groups on standard short
// Weierstrass curves, ready to use with package group.
//
// # Curve Parameters
//
// The following presets are available:
//
//   - [Secp256k1]: y² = x³ + 7, the Bitcoin and Ethereum curve. Field
//     modulus, group order and generator are taken from gnark-crypto.
//   - [P256]: NIST P-256, y² = x³ − 3x + b, from crypto/elliptic.
//   - [Wei25519]: the short Weierstrass model of Curve25519, with a and b
//     derived from the Montgomery coefficient A = 486662 and the generator
//     lifted from u = 9.
//   - [BabyJubjub]: the Weierstrass model of gnark-crypto's Baby Jubjub
//     twisted Edwards curve over the BN254 scalar field. [FromEdwards]
//     converts Edwards points.
//
// # Usage
//
//	g := curves.Secp256k1()
//	k, _ := g.RandomScalar(rand.Reader)
//	pub, err := g.ScalarBaseMult(k)
//
// Presets are built once on first use and shared afterwards; the returned
// groups are immutable and safe for concurrent use. [ByName] looks a preset
// up by its name.
package curves
