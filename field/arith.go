package field

// Arith chains field operations and keeps the first error, so formulas can
// be written without checking every intermediate step. Once an error is
// recorded all further operations are no-ops returning the zero Element.
//
//	var e field.Arith
//	s := e.Div(e.Sub(y2, y1), e.Sub(x2, x1))
//	if err := e.Err(); err != nil {
//		return err
//	}
type Arith struct {
	err error
}

// Err returns the first error recorded, if any.
func (e *Arith) Err() error {
	return e.err
}

func (e *Arith) do(f func() (Element, error)) Element {
	if e.err != nil {
		return Element{}
	}
	r, err := f()
	if err != nil {
		e.err = err
	}
	return r
}

// Add returns x + y.
func (e *Arith) Add(x, y Element) Element {
	return e.do(func() (Element, error) { return x.Add(y) })
}

// Sub returns x - y.
func (e *Arith) Sub(x, y Element) Element {
	return e.do(func() (Element, error) { return x.Sub(y) })
}

// Mul returns x * y.
func (e *Arith) Mul(x, y Element) Element {
	return e.do(func() (Element, error) { return x.Mul(y) })
}

// Div returns x / y.
func (e *Arith) Div(x, y Element) Element {
	return e.do(func() (Element, error) { return x.Div(y) })
}

// Scale returns k * x.
func (e *Arith) Scale(x Element, k int64) Element {
	return e.do(func() (Element, error) { return x.Scale(k) })
}
