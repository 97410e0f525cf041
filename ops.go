package eval

import (
	"errors"
	"math"
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

type operator int8

const (
	opNone operator = iota
	opInc           // ++x
	opDec           // --x
	opSqrt          // !x
	opRoot          // y!!x
	opPow           // x^y
	opMul           // x*y
	opDiv           // x/y
	opRem           // x%y
	opAdd           // x+y, +x
	opSub           // x-y, -x
)

// Operators contains the runes which are considered to be operators. +, - and !
// may also be doubled to form ++, -- and !!.
const Operators = "+-!^*/%"

// tiers is the number of precedence levels. Tier 0 binds tightest.
const tiers = 5

// side is a set of sides of an operator.
type side uint8

const (
	sideLeft side = 1 << iota
	sideRight

	sideNone side = 0
	sideBoth      = sideLeft | sideRight
)

type opinfo struct {
	text string
	tier int
	// need is the operands the operator requires. The sign operators need
	// their left operand only when they are used as binary operators.
	need  side
	apply func(l, r float64) (float64, Kind)
}

var ops = [...]opinfo{
	opNone: {text: "?", tier: -1},
	opInc:  {"++", 0, sideRight, func(l, r float64) (float64, Kind) { return r + 1, kindNone }},
	opDec:  {"--", 0, sideRight, func(l, r float64) (float64, Kind) { return -(r + 1), kindNone }},
	opSqrt: {"!", 1, sideRight, sqrt},
	opRoot: {"!!", 1, sideBoth, nthroot},
	opPow:  {"^", 2, sideBoth, pow},
	opMul:  {"*", 3, sideBoth, func(l, r float64) (float64, Kind) { return l * r, kindNone }},
	opDiv:  {"/", 3, sideBoth, div},
	opRem:  {"%", 3, sideBoth, rem},
	opAdd:  {"+", 4, sideRight, func(l, r float64) (float64, Kind) { return l + r, kindNone }},
	opSub:  {"-", 4, sideRight, func(l, r float64) (float64, Kind) { return l - r, kindNone }},
}

func (op operator) String() string {
	return ops[op].text
}

func (op operator) tier() int {
	return ops[op].tier
}

// sign reports whether op is + or -, which may be unary or binary.
func (op operator) sign() bool {
	return op == opAdd || op == opSub
}

// prefix reports whether op is only ever a prefix operator.
func (op operator) prefix() bool {
	return op == opInc || op == opDec || op == opSqrt
}

// infix reports whether op always needs a left operand.
func (op operator) infix() bool {
	return ops[op].need&sideLeft != 0
}

// single returns the operator spelled by one rune, or opNone.
func single(r rune) operator {
	switch r {
	case '+':
		return opAdd
	case '-':
		return opSub
	case '!':
		return opSqrt
	case '^':
		return opPow
	case '*':
		return opMul
	case '/':
		return opDiv
	case '%':
		return opRem
	}
	return opNone
}

// double returns the operator spelled by two copies of r, or opNone.
func double(r rune) operator {
	switch r {
	case '+':
		return opInc
	case '-':
		return opDec
	case '!':
		return opRoot
	}
	return opNone
}

func sqrt(l, r float64) (float64, Kind) {
	if r < 0 {
		return 0, EvenRootOfNegative
	}
	return math.Sqrt(r), kindNone
}

// nthroot computes the l-th root of r.
func nthroot(l, r float64) (float64, Kind) {
	if l == 0 {
		return 0, ZeroDegreeRoot
	}
	if r < 0 {
		if int64(l)%2 == 0 {
			return 0, EvenRootOfNegative
		}
		return -root(-r, l), kindNone
	}
	return root(r, l), kindNone
}

func pow(l, r float64) (float64, Kind) {
	x := power(l, r)
	if math.IsNaN(x) {
		return 0, EvenRootOfNegative
	}
	return x, kindNone
}

func div(l, r float64) (float64, Kind) {
	if r == 0 {
		return 0, DivideByZero
	}
	return l / r, kindNone
}

// rem is the truncated integer remainder; the result has the sign of l.
func rem(l, r float64) (float64, Kind) {
	if r == 0 {
		return 0, DivideByZero
	}
	if l != math.Trunc(l) || r != math.Trunc(r) {
		return 0, NonIntegerModulus
	}
	return float64(int64(l) % int64(r)), kindNone
}

// bigPrec is the precision in bits of powers computed with big.Float.
const bigPrec = 128

// maxLogPow bounds |y ln x| for powers computed with big.Float. Anything larger
// overflows or underflows a float64 anyway.
const maxLogPow = 745

// power computes x^y. Powers of positive finite bases are computed at bigPrec
// bits and rounded once.
func power(x, y float64) float64 {
	if !(x > 0) || y == 0 || math.IsInf(x, 0) || math.IsInf(y, 0) || math.IsNaN(y) {
		return math.Pow(x, y)
	}
	if math.Abs(y*math.Log(x)) > maxLogPow {
		return math.Pow(x, y)
	}
	bx := new(big.Float).SetPrec(bigPrec).SetFloat64(x)
	by := new(big.Float).SetPrec(bigPrec).SetFloat64(y)
	return bigpow(bx, by, func() float64 { return math.Pow(x, y) })
}

// root computes the n-th root of x >= 0. The reciprocal of n is taken at
// bigPrec bits so that e.g. the cube root of 27 is exactly 3.
func root(x, n float64) float64 {
	if x == 0 || math.IsInf(x, 0) || math.IsInf(n, 0) || math.IsNaN(n) {
		return math.Pow(x, 1/n)
	}
	if math.Abs(math.Log(x)/n) > maxLogPow {
		return math.Pow(x, 1/n)
	}
	bx := new(big.Float).SetPrec(bigPrec).SetFloat64(x)
	by := new(big.Float).SetPrec(bigPrec).SetFloat64(n)
	by.Quo(new(big.Float).SetPrec(bigPrec).SetInt64(1), by)
	return bigpow(bx, by, func() float64 { return math.Pow(x, 1/n) })
}

// bigpow computes x^y with bigfloat. If bigfloat rejects the arguments, the
// result is fallback().
func bigpow(x, y *big.Float, fallback func() float64) (r float64) {
	defer func() {
		p := recover()
		if p == nil {
			return
		}
		err, ok := p.(error)
		if !ok || !errors.As(err, new(big.ErrNaN)) {
			panic(p)
		}
		r = fallback()
	}()
	r, _ = bigfloat.Pow(x, x, y).Float64()
	return r
}
