package eval

import "strconv"

// Kind is the category of a Fault. Kind implements error so that callers can
// test for a category with errors.Is, e.g. errors.Is(err, eval.DivideByZero).
type Kind int

const (
	kindNone Kind = iota
	// Syntax indicates an invalid character, a malformed numeral, or a
	// malformed run of operators.
	Syntax
	// UnbalancedParens indicates a parenthesis without a partner.
	UnbalancedParens
	// MissingOperand indicates an operator without the operand it requires,
	// or an empty expression.
	MissingOperand
	// DivideByZero indicates division or remainder by zero.
	DivideByZero
	// NonIntegerModulus indicates a remainder with a non-integral operand.
	NonIntegerModulus
	// EvenRootOfNegative indicates a result that would be imaginary.
	EvenRootOfNegative
	// ZeroDegreeRoot indicates a root of degree zero.
	ZeroDegreeRoot
	// NumberTooLarge indicates a value with more whole digits than
	// AccurateDigits.
	NumberTooLarge
	// Internal indicates broken bookkeeping inside the reducer.
	Internal
)

var kindmsgs = [...]string{
	kindNone:           "no error",
	Syntax:             "invalid syntax",
	UnbalancedParens:   "unbalanced parenthesis",
	MissingOperand:     "missing operand",
	DivideByZero:       "divide by zero",
	NonIntegerModulus:  "non-integer modulus",
	EvenRootOfNegative: "even root of negative number",
	ZeroDegreeRoot:     "root cannot be zero",
	NumberTooLarge:     "number too large",
	Internal:           "internal error",
}

func (k Kind) Error() string {
	if k < 0 || int(k) >= len(kindmsgs) {
		return "eval.Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindmsgs[k]
}

func (k Kind) String() string {
	return k.Error()
}

// Fault is the error returned for every failed reduction. It implements
// InputError.
type Fault struct {
	// Kind is the category of the fault.
	Kind Kind
	// Index is the rune index in the input of the character that caused the
	// fault, or -1 if the fault has no position.
	Index int
	// Detail optionally describes an internal fault.
	Detail string
}

func (err *Fault) Error() string {
	msg := err.Kind.Error()
	if err.Detail != "" {
		msg += " (" + err.Detail + ")"
	}
	if err.Index < 0 {
		return msg
	}
	return errpos(err.Index+1, msg)
}

// Unwrap returns the fault's Kind.
func (err *Fault) Unwrap() error {
	return err.Kind
}

func (err *Fault) Pos() int {
	return err.Index
}

// fault is a shortcut to create a positioned Fault.
func fault(k Kind, idx int) *Fault {
	return &Fault{Kind: k, Index: idx}
}

// internal creates an Internal fault with a description of what went wrong.
func internal(idx int, detail string) *Fault {
	return &Fault{Kind: Internal, Index: idx, Detail: detail}
}

// errpos is a shortcut to create an error message with a column.
func errpos(col int, msg string) string {
	return strconv.Itoa(col) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the rune index of the character in the input that caused
	// the error, or -1 if the error is not tied to a single character.
	Pos() int
}

var _ InputError = (*Fault)(nil)
