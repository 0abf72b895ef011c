package curve

import (
	"context"
	"math/big"

	"github.com/pkg/errors"
)

// ScalarMult returns k·P, the sum of k copies of p.
// It returns ErrNegativeScalar if k < 0. For k = 0 the result is the point
// at infinity.
func (p *Point) ScalarMult(k *big.Int) (*Point, error) {
	return p.ScalarMultContext(context.Background(), k)
}

// ScalarMultContext is ScalarMult with cancellation. The context is checked
// once per bit of k.
func (p *Point) ScalarMultContext(ctx context.Context, k *big.Int) (*Point, error) {
	if k == nil || k.Sign() < 0 {
		return nil, errors.Wrapf(ErrNegativeScalar, "k = %v", k)
	}

	// Double-and-add from the least significant bit: acc collects the
	// multiples 2^i·P for every set bit i of k.
	acc := p.curve.Infinity()
	run := p
	n := k.BitLen()
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		var err error
		if k.Bit(i) == 1 {
			if acc, err = acc.Add(run); err != nil {
				return nil, err
			}
		}
		if i+1 < n {
			if run, err = run.Double(); err != nil {
				return nil, err
			}
		}
	}
	return acc, nil
}

// ScalarMultInt is ScalarMult for machine integers.
func (p *Point) ScalarMultInt(k int64) (*Point, error) {
	return p.ScalarMult(big.NewInt(k))
}
