package curve

import (
	"math/big"

	"github.com/f3rmion/ecc/field"
	"github.com/pkg/errors"
)

// Points returns every point of c, the point at infinity first and the
// finite points ordered by x then y. Enumeration costs O(p) field
// operations, so it fails with ErrFieldTooLarge when the modulus exceeds
// limit.
func (c *Curve) Points(limit int64) ([]*Point, error) {
	m := c.field.Modulus()
	if !m.IsInt64() || m.Int64() > limit {
		return nil, errors.Wrapf(ErrFieldTooLarge, "%s exceeds limit %d", c.field, limit)
	}
	p := m.Int64()

	// roots[s] lists every y with y² ≡ s, ascending.
	roots := make(map[int64][]int64, p)
	for y := int64(0); y < p; y++ {
		s := new(big.Int).Mul(big.NewInt(y), big.NewInt(y))
		s.Mod(s, m)
		roots[s.Int64()] = append(roots[s.Int64()], y)
	}

	points := []*Point{c.Infinity()}
	for x := int64(0); x < p; x++ {
		xe := c.field.ReduceInt(x)
		var e field.Arith
		rhs := c.rhs(&e, xe)
		if err := e.Err(); err != nil {
			return nil, err
		}
		for _, y := range roots[rhs.Value().Int64()] {
			pt, err := c.NewPoint(xe, c.field.ReduceInt(y))
			if err != nil {
				return nil, err
			}
			points = append(points, pt)
		}
	}
	return points, nil
}
