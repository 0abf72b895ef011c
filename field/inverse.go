package field

import "math/big"

// ModInverse returns x in [0, m) with a*x ≡ 1 (mod m), computed with the
// iterative extended Euclidean algorithm. The second result is false when
// gcd(a, m) != 1 and no inverse exists.
//
// For m == 1 every integer is congruent to zero and ModInverse returns 0.
// ModInverse panics if m is not positive.
func ModInverse(a, m *big.Int) (*big.Int, bool) {
	if m.Sign() <= 0 {
		panic("field: ModInverse with non-positive modulus")
	}
	if m.Cmp(one) == 0 {
		return new(big.Int), true
	}

	// Invariant: oldR ≡ oldS*a and r ≡ s*a (mod m).
	oldR := new(big.Int).Mod(a, m)
	r := new(big.Int).Set(m)
	oldS := big.NewInt(1)
	s := big.NewInt(0)

	q := new(big.Int)
	tmp := new(big.Int)
	for r.Sign() != 0 {
		q.Quo(oldR, r)

		tmp.Mul(q, r)
		tmp.Sub(oldR, tmp)
		oldR, r = r, oldR
		r.Set(tmp)

		tmp.Mul(q, s)
		tmp.Sub(oldS, tmp)
		oldS, s = s, oldS
		s.Set(tmp)
	}

	if oldR.Cmp(one) != 0 {
		return nil, false
	}
	if oldS.Sign() < 0 {
		oldS.Add(oldS, m)
	}
	return oldS.Mod(oldS, m), true
}
