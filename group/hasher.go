package group

import (
	"crypto/sha256"
	"math/big"

	"github.com/f3rmion/ecc/field"
	"golang.org/x/crypto/blake2b"
)

// Hasher maps byte strings to scalars. Different implementations can
// provide different hash functions and domain separation schemes.
type Hasher interface {
	// HashToScalar hashes the concatenation of data and reduces the
	// digest into the scalar field f.
	HashToScalar(f *field.Field, data ...[]byte) field.Element
}

// SHA256Hasher implements Hasher using SHA-256.
// The digest is read as a big-endian integer. This is the default hasher.
type SHA256Hasher struct{}

// HashToScalar implements Hasher.HashToScalar.
func (h *SHA256Hasher) HashToScalar(f *field.Field, data ...[]byte) field.Element {
	hasher := sha256.New()
	for _, d := range data {
		hasher.Write(d)
	}
	return f.Reduce(new(big.Int).SetBytes(hasher.Sum(nil)))
}

// Blake2bHasher implements Hasher using Blake2b-512 with domain separation.
//
// Domain separation format: prefix + input.
// The 64-byte output is interpreted as little-endian before reducing mod
// the group order; the wide digest keeps the reduction bias negligible for
// orders up to 256 bits.
type Blake2bHasher struct {
	// Prefix is the domain separation prefix.
	// Default: "ECC-WEIERSTRASS-BLAKE512-v1"
	Prefix string
}

// NewBlake2bHasher creates a Blake2bHasher with the default prefix.
func NewBlake2bHasher() *Blake2bHasher {
	return &Blake2bHasher{
		Prefix: "ECC-WEIERSTRASS-BLAKE512-v1",
	}
}

// HashToScalar implements Hasher.HashToScalar.
func (h *Blake2bHasher) HashToScalar(f *field.Field, data ...[]byte) field.Element {
	hasher, _ := blake2b.New512(nil)
	hasher.Write([]byte(h.Prefix))
	for _, d := range data {
		hasher.Write(d)
	}
	hash := hasher.Sum(nil)

	// Reverse bytes for little-endian interpretation
	reversed := make([]byte, len(hash))
	for i := 0; i < len(hash); i++ {
		reversed[i] = hash[len(hash)-1-i]
	}
	return f.Reduce(new(big.Int).SetBytes(reversed))
}
