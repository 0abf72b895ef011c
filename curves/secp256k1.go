package curves

import (
	"math/big"
	"sync"

	"github.com/consensys/gnark-crypto/ecc/secp256k1"
	"github.com/consensys/gnark-crypto/ecc/secp256k1/fp"
	"github.com/consensys/gnark-crypto/ecc/secp256k1/fr"
	"github.com/f3rmion/ecc/group"
)

var (
	secp256k1Once  sync.Once
	secp256k1Group *group.Group
)

// Secp256k1 returns the group of the secp256k1 curve y² = x³ + 7.
func Secp256k1() *group.Group {
	secp256k1Once.Do(func() {
		_, gen := secp256k1.Generators()
		secp256k1Group = build(NameSecp256k1, params{
			p:  fp.Modulus(),
			a:  big.NewInt(0),
			b:  big.NewInt(7),
			gx: gen.X.BigInt(new(big.Int)),
			gy: gen.Y.BigInt(new(big.Int)),
			n:  fr.Modulus(),
		})
	})
	return secp256k1Group
}
