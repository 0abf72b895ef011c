package curves

import (
	"crypto/elliptic"
	"math/big"
	"sync"

	"github.com/f3rmion/ecc/group"
)

var (
	p256Once  sync.Once
	p256Group *group.Group
)

// P256 returns the group of NIST P-256 (secp256r1), whose coefficient a
// is -3.
func P256() *group.Group {
	p256Once.Do(func() {
		cp := elliptic.P256().Params()
		p256Group = build(NameP256, params{
			p:  cp.P,
			a:  big.NewInt(-3),
			b:  cp.B,
			gx: cp.Gx,
			gy: cp.Gy,
			n:  cp.N,
		})
	})
	return p256Group
}
