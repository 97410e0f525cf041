package eval

import (
	"errors"
	"log"
)

// Reducer evaluates expressions. The zero value is not ready for use; create
// one with NewReducer. It is not safe to use a Reducer concurrently, but they
// are cheap to create.
type Reducer struct {
	places int
	log    *log.Logger
}

// Option is an option used when creating a Reducer.
type Option interface {
	reducerOption()
}

type (
	placesopt int
	traceopt  struct{ l *log.Logger }
)

func (placesopt) reducerOption() {}
func (traceopt) reducerOption()  {}

// Places sets the number of decimal places to which Reduce rounds results.
// Results never show more than AccurateDigits significant digits regardless.
// Panics if n is negative.
func Places(n int) Option {
	if n < 0 {
		panic("eval: negative decimal places")
	}
	return placesopt(n)
}

// Trace logs the buffer after every rewrite during evaluation.
func Trace(l *log.Logger) Option {
	return traceopt{l}
}

// NewReducer creates a Reducer. If no Places option is given, results are
// rounded to DefaultPlaces.
func NewReducer(opts ...Option) *Reducer {
	r := Reducer{places: DefaultPlaces}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case placesopt:
			r.places = int(opt)
		case traceopt:
			r.log = opt.l
		default:
			panic("eval: unknown option type")
		}
	}
	return &r
}

// Evaluate validates and evaluates expr. If the expression is invalid or an
// operation fails, the error is a *Fault.
func (r *Reducer) Evaluate(expr string) (float64, error) {
	toks, err := scan(expr)
	if err != nil {
		return 0, err
	}
	if err := ValidateParens(expr); err != nil {
		return 0, err
	}
	if err := prepare(toks); err != nil {
		return 0, err
	}
	r.trace(toks)
	buf, err := r.resolve(toks, 0, false)
	if err != nil {
		return 0, err
	}
	return r.evalFlat(buf)
}

// Reduce evaluates expr and formats the result with the reducer's number of
// decimal places.
func (r *Reducer) Reduce(expr string) (string, error) {
	x, err := r.Evaluate(expr)
	if err != nil {
		return "", err
	}
	return FormatDecimal(x, r.places)
}

// Evaluate is a shortcut to evaluate an expression with a new Reducer.
func Evaluate(expr string, opts ...Option) (float64, error) {
	return NewReducer(opts...).Evaluate(expr)
}

// Reduce is a shortcut to evaluate and format an expression with a new
// Reducer.
func Reduce(expr string, opts ...Option) (string, error) {
	return NewReducer(opts...).Reduce(expr)
}

// EvaluateFlat evaluates an expression that contains no parentheses. An
// expression with parentheses gives a *Fault of kind UnbalancedParens at the
// first of them.
func EvaluateFlat(expr string) (float64, error) {
	toks, err := scan(expr)
	if err != nil {
		return 0, err
	}
	for _, t := range toks {
		if t.kind == tokenOpen || t.kind == tokenClose {
			return 0, fault(UnbalancedParens, t.pos)
		}
	}
	if err := prepare(toks); err != nil {
		return 0, err
	}
	var r Reducer
	return r.evalFlat(toks)
}

// prepare sets the values of numeral tokens.
func prepare(toks []token) error {
	for i, t := range toks {
		if t.kind != tokenNum {
			continue
		}
		v, err := ParseDecimal(t.text)
		if err != nil {
			var f *Fault
			if errors.As(err, &f) && f.Index >= 0 {
				f.Index += t.pos
			}
			return err
		}
		toks[i].val = v
	}
	return nil
}

func (r *Reducer) trace(buf []token) {
	if r.log == nil {
		return
	}
	r.log.Print(render(buf))
}
