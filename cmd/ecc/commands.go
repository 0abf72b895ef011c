package main

import (
	"fmt"
	"io"
	"math/big"
	"sort"
	"strings"

	"github.com/f3rmion/ecc/curve"
	"github.com/f3rmion/ecc/curves"
	"github.com/f3rmion/ecc/field"
	"github.com/f3rmion/ecc/group"
	"github.com/pkg/errors"
)

// env is the state a command runs against.
type env struct {
	curve *curve.Curve
	// group is nil for custom curves.
	group *group.Group
	limit int64
	out   io.Writer
}

type command struct {
	params      []string
	description string
	run         func(e *env, args []*big.Int) error
}

var commands = map[string]command{
	"oncurve": {
		params:      []string{"X", "Y"},
		description: "Report whether (X, Y) lies on the curve",
		run:         runOnCurve,
	},
	"add": {
		params:      []string{"X1", "Y1", "X2", "Y2"},
		description: "Add two curve points",
		run:         runAdd,
	},
	"double": {
		params:      []string{"X", "Y"},
		description: "Double a curve point",
		run:         runDouble,
	},
	"mul": {
		params:      []string{"K", "X", "Y"},
		description: "Multiply a curve point by a non-negative scalar",
		run:         runMul,
	},
	"basemult": {
		params:      []string{"K"},
		description: "Multiply the generator of a preset curve by K modulo the group order",
		run:         runBaseMult,
	},
	"points": {
		params:      nil,
		description: "List every point of a small curve",
		run:         runPoints,
	},
	"inv": {
		params:      []string{"V"},
		description: "Multiplicative inverse of V (reduced mod p) in the base field",
		run:         runInv,
	},
	"pow": {
		params:      []string{"V", "E"},
		description: "V (reduced mod p) raised to the non-negative power E in the base field",
		run:         runPow,
	},
}

func listCommands(out io.Writer) {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(out, "Commands:")
	for _, name := range names {
		cmd := commands[name]
		usage := strings.TrimSpace(name + " " + strings.Join(cmd.params, " "))
		fmt.Fprintf(out, "  %-22s %s\n", usage, cmd.description)
	}
	fmt.Fprintf(out, "\nPresets: %s\n", strings.Join(curves.Names(), ", "))
}

func run(cfg *configFlags, out io.Writer) error {
	if cfg.ListCommands {
		listCommands(out)
		return nil
	}

	name, rawArgs := cfg.CommandAndParameters[0], cfg.CommandAndParameters[1:]
	cmd, ok := commands[name]
	if !ok {
		return errors.Errorf("unknown command %q", name)
	}
	if len(rawArgs) != len(cmd.params) {
		return errors.Errorf("%s expects %d arguments (%s), got %d",
			name, len(cmd.params), strings.Join(cmd.params, " "), len(rawArgs))
	}
	args := make([]*big.Int, len(rawArgs))
	for i, s := range rawArgs {
		v, err := parseInt(s)
		if err != nil {
			return errors.Wrapf(err, "argument %s", cmd.params[i])
		}
		args[i] = v
	}

	e, err := newEnv(cfg, out)
	if err != nil {
		return err
	}
	log.Debugf("Running %s on %s", name, e.curve)
	return cmd.run(e, args)
}

func newEnv(cfg *configFlags, out io.Writer) (*env, error) {
	e := &env{limit: cfg.Limit, out: out}
	if cfg.Curve != customCurve {
		g, err := curves.ByName(cfg.Curve)
		if err != nil {
			return nil, err
		}
		e.curve, e.group = g.Curve(), g
		return e, nil
	}

	var values [3]*big.Int
	for i, s := range []string{cfg.Modulus, cfg.A, cfg.B} {
		v, err := parseInt(s)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	f, err := field.NewField(values[0])
	if err != nil {
		return nil, err
	}
	c, err := curve.NewCurve(f.Reduce(values[1]), f.Reduce(values[2]))
	if err != nil {
		return nil, err
	}
	if !f.IsPrime() {
		log.Warnf("Modulus %v is not prime, some operations may fail", f.Modulus())
	}
	if c.IsSingular() {
		log.Warnf("Curve %s is singular", c)
	}
	e.curve = c
	return e, nil
}

// parseInt accepts decimal or 0x-prefixed hexadecimal integers with an
// optional sign.
func parseInt(s string) (*big.Int, error) {
	digits, neg := s, false
	if strings.HasPrefix(digits, "-") {
		digits, neg = digits[1:], true
	}
	base := 10
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		digits, base = digits[2:], 16
	}
	v, ok := new(big.Int).SetString(digits, base)
	if !ok || digits == "" || strings.HasPrefix(digits, "-") || strings.HasPrefix(digits, "+") {
		return nil, errors.Errorf("invalid integer %q", s)
	}
	if neg {
		v.Neg(v)
	}
	return v, nil
}

// element reduces v into the base field. Used for inv and pow operands.
func (e *env) element(v *big.Int) field.Element {
	return e.curve.Field().Reduce(v)
}

// coordinates validates x and y as base field elements; values outside
// [0, p) fail with field.ErrInvalidElement.
func (e *env) coordinates(x, y *big.Int) (field.Element, field.Element, error) {
	f := e.curve.Field()
	xe, err := f.Element(x)
	if err != nil {
		return field.Element{}, field.Element{}, errors.Wrap(err, "x coordinate")
	}
	ye, err := f.Element(y)
	if err != nil {
		return field.Element{}, field.Element{}, errors.Wrap(err, "y coordinate")
	}
	return xe, ye, nil
}

func (e *env) point(x, y *big.Int) (*curve.Point, error) {
	xe, ye, err := e.coordinates(x, y)
	if err != nil {
		return nil, err
	}
	return e.curve.NewPoint(xe, ye)
}

func (e *env) print(v fmt.Stringer) {
	fmt.Fprintln(e.out, v)
}

func runOnCurve(e *env, args []*big.Int) error {
	x, y, err := e.coordinates(args[0], args[1])
	if err != nil {
		return err
	}
	ok, err := e.curve.IsOnCurve(x, y)
	if err != nil {
		return err
	}
	fmt.Fprintln(e.out, ok)
	return nil
}

func runAdd(e *env, args []*big.Int) error {
	p, err := e.point(args[0], args[1])
	if err != nil {
		return err
	}
	q, err := e.point(args[2], args[3])
	if err != nil {
		return err
	}
	sum, err := p.Add(q)
	if err != nil {
		return err
	}
	e.print(sum)
	return nil
}

func runDouble(e *env, args []*big.Int) error {
	p, err := e.point(args[0], args[1])
	if err != nil {
		return err
	}
	d, err := p.Double()
	if err != nil {
		return err
	}
	e.print(d)
	return nil
}

func runMul(e *env, args []*big.Int) error {
	p, err := e.point(args[1], args[2])
	if err != nil {
		return err
	}
	r, err := p.ScalarMult(args[0])
	if err != nil {
		return err
	}
	e.print(r)
	return nil
}

func runBaseMult(e *env, args []*big.Int) error {
	if e.group == nil {
		return errors.New("basemult needs a preset curve")
	}
	r, err := e.group.ScalarBaseMult(e.group.NewScalar(args[0]))
	if err != nil {
		return err
	}
	e.print(r)
	return nil
}

func runPoints(e *env, _ []*big.Int) error {
	points, err := e.curve.Points(e.limit)
	if err != nil {
		return err
	}
	for _, p := range points {
		e.print(p)
	}
	log.Infof("%d points on %s", len(points), e.curve)
	return nil
}

func runInv(e *env, args []*big.Int) error {
	inv, err := e.element(args[0]).Inverse()
	if err != nil {
		return err
	}
	e.print(inv)
	return nil
}

func runPow(e *env, args []*big.Int) error {
	r, err := e.element(args[0]).Pow(args[1])
	if err != nil {
		return err
	}
	e.print(r)
	return nil
}
