// Package curve implements the group law of short Weierstrass elliptic
// curves
//
//	y² = x³ + a·x + b
//
// over the prime fields of package field.
//
// A [Curve] is an immutable handle holding the coefficients a and b. Every
// [Point] keeps a pointer to the curve it lies on, so all points of one curve
// share a single copy of the parameters. A Point is either a finite point
// (x, y) that satisfies the curve equation, or the point at infinity, the
// identity element of the group. Points are values: group operations return
// new points and never modify their operands.
//
// # Constructing Points
//
// Finite points are validated when they are built. Coordinates that do not
// satisfy the curve equation are rejected with [ErrNotOnCurve]; this is the
// check that keeps malformed or attacker-supplied points out of the group.
//
//	a, _ := field.NewInt(0, 223)
//	b, _ := field.NewInt(7, 223)
//	c, _ := curve.NewCurve(a, b)
//	x, _ := field.NewInt(192, 223)
//	y, _ := field.NewInt(105, 223)
//	p, err := c.NewPoint(x, y)
//
// # Group Law
//
// [Point.Add] implements chord-and-tangent addition with explicit handling of
// the identity, vertical lines and the vertical tangent at y = 0.
// [Point.ScalarMult] computes k·P with double-and-add in O(log k) group
// operations.
//
// The implementation uses affine coordinates and big integers and is not
// constant time.
package curve
