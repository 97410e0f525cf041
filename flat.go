package eval

import "strings"

// operand is a value found next to an operator, with the span of tokens it
// occupies.
type operand struct {
	val float64
	// lo and hi are the inclusive token indices of the operand, including a
	// folded sign.
	lo, hi int
	ok     bool
}

type direction int8

const (
	leftward  direction = -1
	rightward direction = 1
)

// unarySign reports whether buf[k] is a + or - in unary position, i.e. at the
// start of the buffer or directly after another operator.
func unarySign(buf []token, k int) bool {
	if buf[k].kind != tokenOp || !buf[k].op.sign() {
		return false
	}
	return k == 0 || buf[k-1].kind == tokenOp
}

// locate finds the nearest number on one side of the operator at i, skipping
// any operators between. A unary sign directly before the number belongs to
// it, unless that sign is the operator at i itself. If there is no number in
// that direction, the result is not ok and has value 0.
func locate(buf []token, i int, dir direction) operand {
	for k := i + int(dir); k >= 0 && k < len(buf); k += int(dir) {
		if buf[k].kind != tokenNum {
			continue
		}
		o := operand{val: buf[k].val, lo: k, hi: k, ok: true}
		if s := k - 1; s >= 0 && s != i && unarySign(buf, s) {
			if buf[s].op == opSub {
				o.val = -o.val
			}
			o.lo = s
		}
		return o
	}
	return operand{}
}

// obstruction walks outward from the operator at i, alternating between its
// left and right, and reports the sides on which another operator stands
// between it and the operand on that side. Such an operator must be reduced
// first.
func obstruction(buf []token, i int, left, right operand) side {
	s := sideNone
	for off := 1; ; off++ {
		l := left.ok && i-off > left.hi
		r := right.ok && i+off < right.lo
		if !l && !r {
			return s
		}
		if l && buf[i-off].kind == tokenOp {
			s |= sideLeft
		}
		if r && buf[i+off].kind == tokenOp {
			s |= sideRight
		}
	}
}

// splice replaces buf[lo:hi+1] with repl. If the replacement is no longer than
// the range, buf is modified in place.
func splice(buf []token, lo, hi int, repl ...token) ([]token, error) {
	if lo < 0 || hi >= len(buf) || lo > hi {
		return nil, internal(-1, "splice out of range")
	}
	n := len(buf) - (hi - lo + 1) + len(repl)
	if n <= len(buf) {
		copy(buf[lo:], repl)
		copy(buf[lo+len(repl):], buf[hi+1:])
		return buf[:n], nil
	}
	r := make([]token, 0, n)
	r = append(r, buf[:lo]...)
	r = append(r, repl...)
	r = append(r, buf[hi+1:]...)
	return r, nil
}

// numtok creates a number token holding x as it would be printed with
// AccurateDigits places, so that every value in a buffer round-trips through
// its text.
func numtok(x float64, pos int) (token, error) {
	s, err := FormatDecimal(x, AccurateDigits)
	if err != nil {
		return token{}, fault(NumberTooLarge, pos)
	}
	v, err := ParseDecimal(s)
	if err != nil {
		return token{}, internal(pos, "reparse "+s)
	}
	return token{kind: tokenNum, val: v, text: s, pos: pos}, nil
}

// evalFlat reduces a buffer without parentheses to a single value. It applies
// the operators of each tier left to right, highest tier first, restarting the
// tier after every reduction. Operators still present after the last tier,
// e.g. because they were waiting on another operator, are handled by running
// all tiers again. buf is modified.
func (r *Reducer) evalFlat(buf []token) (float64, error) {
	if len(buf) == 0 {
		return 0, fault(MissingOperand, -1)
	}
	for {
		progress := false
		for tier := 0; tier < tiers; tier++ {
			for i := 0; i < len(buf); i++ {
				if buf[i].kind != tokenOp || buf[i].op.tier() != tier {
					continue
				}
				nb, ok, err := r.reduce(buf, i)
				if err != nil {
					return 0, err
				}
				if !ok {
					continue
				}
				buf = nb
				progress = true
				r.trace(buf)
				i = -1
			}
		}
		if len(buf) == 1 && buf[0].kind == tokenNum {
			return buf[0].val, nil
		}
		if !progress {
			for _, t := range buf {
				if t.kind == tokenOp {
					return 0, fault(MissingOperand, t.pos)
				}
			}
			return 0, internal(buf[0].pos, "irreducible buffer "+render(buf))
		}
	}
}

// reduce applies the operator at i. If the operator is obstructed, the result
// is buf unchanged and false.
func (r *Reducer) reduce(buf []token, i int) ([]token, bool, error) {
	t := buf[i]
	need := ops[t.op].need
	if t.op.sign() && !unarySign(buf, i) {
		need |= sideLeft
	}
	var left, right operand
	if need&sideLeft != 0 {
		left = locate(buf, i, leftward)
	}
	if need&sideRight != 0 {
		right = locate(buf, i, rightward)
	}
	if obstruction(buf, i, left, right)&need != 0 {
		return buf, false, nil
	}
	if need&sideLeft != 0 && !left.ok || need&sideRight != 0 && !right.ok {
		return nil, false, fault(MissingOperand, t.pos)
	}
	x, k := ops[t.op].apply(left.val, right.val)
	if k != kindNone {
		return nil, false, fault(k, t.pos)
	}
	lo := i
	if need&sideLeft != 0 {
		lo = left.lo
	}
	n, err := numtok(x, buf[lo].pos)
	if err != nil {
		return nil, false, err
	}
	nb, err := splice(buf, lo, right.hi, n)
	if err != nil {
		return nil, false, err
	}
	return nb, true, nil
}

// render writes a buffer back out as text.
func render(buf []token) string {
	var b strings.Builder
	for _, t := range buf {
		b.WriteString(t.text)
	}
	return b.String()
}
