package group

import (
	"context"
	"io"
	"math/big"
	"runtime"

	"github.com/f3rmion/ecc/curve"
	"github.com/f3rmion/ecc/field"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrBadGenerator is returned when the generator is the point at
	// infinity or lies on another curve.
	ErrBadGenerator = errors.New("invalid generator")

	// ErrBadOrder is returned when the order is not prime or does not
	// annihilate the generator.
	ErrBadOrder = errors.New("invalid group order")
)

// Group is a cyclic group of prime order n generated by a point G of a
// Weierstrass curve.
type Group struct {
	curve     *curve.Curve
	generator *curve.Point
	order     *big.Int
	scalars   *field.Field
	hasher    Hasher
}

// New returns the group generated by g on c with the given order, using
// [SHA256Hasher] for [Group.HashToScalar].
func New(c *curve.Curve, g *curve.Point, order *big.Int) (*Group, error) {
	return NewWithHasher(c, g, order, &SHA256Hasher{})
}

// NewWithHasher returns the group generated by g on c with a custom hash
// function. It verifies that g is a finite point of c, that order is prime,
// and that order·g is the point at infinity. A nil h selects [SHA256Hasher].
func NewWithHasher(c *curve.Curve, g *curve.Point, order *big.Int, h Hasher) (*Group, error) {
	if h == nil {
		h = &SHA256Hasher{}
	}
	if g == nil || g.IsInfinity() {
		return nil, errors.Wrap(ErrBadGenerator, "generator is the point at infinity")
	}
	if !g.Curve().Equal(c) {
		return nil, errors.Wrapf(ErrBadGenerator, "generator %s is not on %s", g, c)
	}
	if order == nil || order.Cmp(big.NewInt(2)) < 0 {
		return nil, errors.Wrapf(ErrBadOrder, "order %v", order)
	}
	scalars, err := field.NewField(order)
	if err != nil {
		return nil, err
	}
	if !scalars.IsPrime() {
		return nil, errors.Wrapf(ErrBadOrder, "order %v is not prime", order)
	}

	nG, err := g.ScalarMult(order)
	if err != nil {
		return nil, errors.Wrap(err, "check generator order")
	}
	if !nG.IsInfinity() {
		return nil, errors.Wrapf(ErrBadOrder, "%v * %s is not the identity", order, g)
	}
	log.Debugf("Created group of %d-bit order on %s", order.BitLen(), c)

	return &Group{
		curve:     c,
		generator: g,
		order:     scalars.Modulus(),
		scalars:   scalars,
		hasher:    h,
	}, nil
}

// Curve returns the curve the group lives on.
func (g *Group) Curve() *curve.Curve {
	return g.curve
}

// Generator returns the group's base point.
func (g *Group) Generator() *curve.Point {
	return g.generator
}

// Order returns a copy of the group order.
func (g *Group) Order() *big.Int {
	return new(big.Int).Set(g.order)
}

// ScalarField returns the field of integers modulo the group order.
func (g *Group) ScalarField() *field.Field {
	return g.scalars
}

// NewScalar returns k reduced modulo the group order. Negative values are
// allowed.
func (g *Group) NewScalar(k *big.Int) field.Element {
	return g.scalars.Reduce(k)
}

// RandomScalar returns a uniformly random non-zero scalar read from r.
func (g *Group) RandomScalar(r io.Reader) (field.Element, error) {
	bitLen := g.order.BitLen()
	buf := make([]byte, (bitLen+7)/8)
	mask := byte(0xff >> (uint(len(buf)*8 - bitLen)))

	k := new(big.Int)
	for {
		if _, err := io.ReadFull(r, buf); err != nil {
			return field.Element{}, errors.Wrap(err, "read random scalar")
		}
		// Clear the bits above the order so at least half of the draws
		// are accepted.
		buf[0] &= mask
		k.SetBytes(buf)
		if k.Sign() != 0 && k.Cmp(g.order) < 0 {
			return g.scalars.Element(k)
		}
	}
}

// HashToScalar hashes the provided data to a scalar with the group's
// [Hasher].
func (g *Group) HashToScalar(data ...[]byte) field.Element {
	return g.hasher.HashToScalar(g.scalars, data...)
}

// ScalarBaseMult returns k·G.
func (g *Group) ScalarBaseMult(k field.Element) (*curve.Point, error) {
	return g.ScalarMult(k, g.generator)
}

// ScalarMult returns k·p. The scalar must belong to the group's scalar
// field and p must lie on the group's curve.
func (g *Group) ScalarMult(k field.Element, p *curve.Point) (*curve.Point, error) {
	return g.scalarMult(context.Background(), k, p)
}

// ScalarBaseMultBatch computes k·G for every k in ks, spreading the work
// over GOMAXPROCS goroutines. Results are in input order. The first
// failure cancels the remaining work.
func (g *Group) ScalarBaseMultBatch(ctx context.Context, ks []field.Element) ([]*curve.Point, error) {
	out := make([]*curve.Point, len(ks))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i, k := range ks {
		i, k := i, k
		eg.Go(func() error {
			p, err := g.scalarMult(ctx, k, g.generator)
			if err != nil {
				return errors.Wrapf(err, "scalar %d", i)
			}
			out[i] = p
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	log.Tracef("Computed %d base point multiples", len(ks))
	return out, nil
}

func (g *Group) scalarMult(ctx context.Context, k field.Element, p *curve.Point) (*curve.Point, error) {
	if !g.scalars.Equal(k.Field()) {
		return nil, errors.Wrapf(field.ErrFieldMismatch, "scalar in %s, group order %v", k.Field(), g.order)
	}
	if !g.curve.Equal(p.Curve()) {
		return nil, errors.Wrapf(curve.ErrDifferentCurve, "%s is not on %s", p, g.curve)
	}
	return p.ScalarMultContext(ctx, k.Value())
}
