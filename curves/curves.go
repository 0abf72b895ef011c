package curves

import (
	"math/big"
	"sort"
	"strings"

	"github.com/f3rmion/ecc/curve"
	"github.com/f3rmion/ecc/field"
	"github.com/f3rmion/ecc/group"
	"github.com/pkg/errors"
)

// ErrUnknownCurve is returned by ByName for names without a preset.
var ErrUnknownCurve = errors.New("unknown curve")

// Preset names accepted by ByName.
const (
	NameSecp256k1  = "secp256k1"
	NameP256       = "p256"
	NameWei25519   = "wei25519"
	NameBabyJubjub = "babyjubjub"
)

var presets = map[string]func() *group.Group{
	NameSecp256k1:  Secp256k1,
	NameP256:       P256,
	NameWei25519:   Wei25519,
	NameBabyJubjub: BabyJubjub,
}

// ByName returns the preset with the given name. Matching ignores case.
func ByName(name string) (*group.Group, error) {
	preset, ok := presets[strings.ToLower(name)]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownCurve, "%q (known: %s)", name, strings.Join(Names(), ", "))
	}
	return preset(), nil
}

// Names returns the names of all presets in sorted order.
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// params are the defining constants of a preset.
type params struct {
	p, a, b, gx, gy, n *big.Int
}

// build assembles a group from known-good constants and panics if they are
// rejected.
func build(name string, pr params) *group.Group {
	f, err := field.NewField(pr.p)
	if err != nil {
		panic(errors.Wrapf(err, "curves: %s field", name))
	}
	c, err := curve.NewCurve(f.Reduce(pr.a), f.Reduce(pr.b))
	if err != nil {
		panic(errors.Wrapf(err, "curves: %s coefficients", name))
	}
	gen, err := c.NewPoint(f.Reduce(pr.gx), f.Reduce(pr.gy))
	if err != nil {
		panic(errors.Wrapf(err, "curves: %s generator", name))
	}
	g, err := group.New(c, gen, pr.n)
	if err != nil {
		panic(errors.Wrapf(err, "curves: %s group", name))
	}
	return g
}

func mustHex(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("curves: bad constant " + s)
	}
	return v
}
