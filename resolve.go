package eval

// resolve evaluates every parenthesized group in buf starting at from,
// innermost first, replacing each with its value. A group directly adjacent to
// an operand on either side is multiplied with it.
//
// When nested is true, resolve returns as soon as it has collapsed one group,
// which is the group whose open parenthesis the caller found. Otherwise it
// continues until no groups remain. Parentheses must already be balanced.
func (r *Reducer) resolve(buf []token, from int, nested bool) ([]token, error) {
	open := -1
	for i := from; i < len(buf); i++ {
		switch buf[i].kind {
		case tokenOpen:
			if open < 0 {
				open = i
				continue
			}
			var err error
			buf, err = r.resolve(buf, i, true)
			if err != nil {
				return nil, err
			}
			// The inner group is now a number at i; look at it again.
			i--
		case tokenClose:
			if open < 0 {
				return nil, fault(UnbalancedParens, buf[i].pos)
			}
			repl, err := r.collapse(buf, open, i)
			if err != nil {
				return nil, err
			}
			buf, err = splice(buf, open, i, repl...)
			if err != nil {
				return nil, err
			}
			r.trace(buf)
			if nested {
				return buf, nil
			}
			i = open + len(repl) - 1
			open = -1
		}
	}
	if open >= 0 {
		return nil, fault(UnbalancedParens, buf[open].pos)
	}
	if nested {
		return nil, internal(buf[from].pos, "group not closed")
	}
	return buf, nil
}

// collapse evaluates the group buf[open:close+1] and returns the tokens to put
// in its place: its value, with implicit multiplication on each side that
// touches an operand.
func (r *Reducer) collapse(buf []token, open, close int) ([]token, error) {
	if close-open < 2 {
		return nil, fault(MissingOperand, buf[open].pos)
	}
	inner := make([]token, close-open-1)
	copy(inner, buf[open+1:close])
	x, err := r.evalFlat(inner)
	if err != nil {
		return nil, err
	}
	n, err := numtok(x, buf[open].pos)
	if err != nil {
		return nil, err
	}
	repl := make([]token, 0, 3)
	if open > 0 && (buf[open-1].kind == tokenNum || buf[open-1].kind == tokenClose) {
		repl = append(repl, token{kind: tokenOp, op: opMul, text: "*", pos: buf[open].pos})
	}
	repl = append(repl, n)
	if close+1 < len(buf) && (buf[close+1].kind == tokenNum || buf[close+1].kind == tokenOpen) {
		repl = append(repl, token{kind: tokenOp, op: opMul, text: "*", pos: buf[close].pos})
	}
	return repl, nil
}
