package eval

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

type token struct {
	kind tokenKind
	op   operator
	// val is the value of a number token. Tokens produced by the lexer have
	// val set only once the buffer is prepared for evaluation.
	val  float64
	text string
	// pos is the rune index in the input of the token's first character.
	pos int
}

func (t token) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int8

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenNum is a numeral, or a value spliced in by a reduction.
	tokenNum
	// tokenOp is an operator.
	tokenOp
	// tokenOpen is (.
	tokenOpen
	// tokenClose is ).
	tokenClose
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenEOF:
		return "EOF"
	case tokenNum:
		return "Num"
	case tokenOp:
		return "Op"
	case tokenOpen:
		return "Open"
	case tokenClose:
		return "Close"
	}
	return "tokenKind(" + strconv.Itoa(int(k)) + ")"
}

type lexer struct {
	src io.RuneScanner
	buf strings.Builder
	// pos is the index of the next rune to read.
	pos int
	// err is a fault found while scanning the previous token, to be returned
	// from the next call to next.
	err error
	eof bool
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{src: src}
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.pos++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.pos--
}

// next scans the next token from the input. At the end of the input, the
// result is an EOF token with a nil error. Subsequent calls return an empty
// token with io.EOF.
func (l *lexer) next() (token, error) {
	if l.err != nil {
		err := l.err
		l.err = nil
		return token{}, err
	}
	if l.eof {
		return token{}, io.EOF
	}
	defer l.buf.Reset()
	for {
		tok := token{pos: l.pos}
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				tok.kind = tokenEOF
				l.eof = true
				return tok, nil
			}
			return tok, err
		}
		switch {
		case unicode.IsSpace(r):
			continue
		case '0' <= r && r <= '9', r == '.':
			l.unreadRune()
			if err := l.scanNum(); err != nil {
				return tok, err
			}
			tok.text = l.buf.String()
			tok.kind = tokenNum
			return tok, nil
		case r == '(':
			tok.text = "("
			tok.kind = tokenOpen
			return tok, nil
		case r == ')':
			tok.text = ")"
			tok.kind = tokenClose
			return tok, nil
		default:
			op := single(r)
			if op == opNone {
				return tok, fault(Syntax, tok.pos)
			}
			tok.kind = tokenOp
			tok.op = op
			if d := double(r); d != opNone && l.peek(r) {
				tok.op = d
				// A third copy can never be part of a valid run.
				if l.peek(r) {
					l.err = fault(Syntax, l.pos-1)
				}
			}
			tok.text = tok.op.String()
			return tok, nil
		}
	}
}

// peek consumes the next rune if it is r and reports whether it did.
func (l *lexer) peek(r rune) bool {
	c, err := l.readRune()
	if err != nil {
		return false
	}
	if c != r {
		l.unreadRune()
		return false
	}
	return true
}

// scanNum scans a numeral: digits with at most one decimal point.
func (l *lexer) scanNum() error {
	var dig, dot bool
	start := l.pos
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		switch {
		case '0' <= r && r <= '9':
			dig = true
		case r == '.':
			if dot {
				return fault(Syntax, l.pos-1)
			}
			dot = true
		default:
			l.unreadRune()
			if !dig {
				return fault(Syntax, start)
			}
			return nil
		}
		l.buf.WriteRune(r)
	}
	if !dig {
		return fault(Syntax, start)
	}
	return nil
}

// lexAll scans every token of expr, without the EOF token. If the lexer finds
// a fault, the result is the tokens before it along with the fault.
func lexAll(expr string) ([]token, error) {
	l := lex(strings.NewReader(expr))
	var toks []token
	for {
		tok, err := l.next()
		if err != nil {
			return toks, err
		}
		if tok.kind == tokenEOF {
			return toks, nil
		}
		toks = append(toks, tok)
	}
}
