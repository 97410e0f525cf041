package eval

// ValidateSyntax checks expr for invalid characters, malformed numerals, and
// malformed runs of operators. The result is nil or a *Fault of kind Syntax
// whose Index is the leftmost offending character.
//
// Operators needing a left operand at the very start of an expression or
// group, and operators at the end, are not syntax errors; evaluation reports
// them as MissingOperand.
func ValidateSyntax(expr string) error {
	_, err := scan(expr)
	return err
}

// scan lexes and syntax-checks expr.
func scan(expr string) ([]token, error) {
	toks, lerr := lexAll(expr)
	// Every rule below looks only at tokens before the one it rejects, and
	// all tokens lexed lie before a lexer fault, so a rule violation is
	// always further left.
	if err := checkRuns(toks); err != nil {
		return nil, err
	}
	if lerr != nil {
		return nil, lerr
	}
	return toks, nil
}

// checkRuns applies the adjacency rules to lexed tokens.
func checkRuns(toks []token) error {
	// operand is whether the last non-operator token ends an operand.
	// prev is the previous token.
	var (
		operand bool
		prev    token
		run     int
	)
	for _, tok := range toks {
		switch tok.kind {
		case tokenNum:
			if prev.kind == tokenNum {
				// Only whitespace splits two numerals.
				return fault(Syntax, tok.pos)
			}
			operand, run = true, 0
		case tokenOpen:
			operand, run = false, 0
		case tokenClose:
			operand, run = true, 0
		case tokenOp:
			switch {
			case run == 0 && operand && tok.op.prefix():
				return fault(Syntax, tok.pos)
			case run > 0 && prev.op == tok.op && len(tok.text) == 1:
				return fault(Syntax, tok.pos)
			case run > 0 && tok.op.infix():
				return fault(Syntax, tok.pos)
			}
			run++
		}
		prev = tok
	}
	return nil
}

// ValidateParens checks that the parentheses in expr are balanced. The result
// is nil or a *Fault of kind UnbalancedParens. A close parenthesis without a
// partner is reported at itself; an open parenthesis without one is reported
// at the most recent unmatched open parenthesis.
func ValidateParens(expr string) error {
	closes := 0
	for _, r := range expr {
		if r == ')' {
			closes++
		}
	}
	var opens []int
	i := 0
	for _, r := range expr {
		switch r {
		case '(':
			opens = append(opens, i)
			if len(opens) > closes {
				return fault(UnbalancedParens, opens[len(opens)-1])
			}
		case ')':
			if len(opens) == 0 {
				return fault(UnbalancedParens, i)
			}
			opens = opens[:len(opens)-1]
			closes--
		}
		i++
	}
	if len(opens) > 0 {
		return fault(UnbalancedParens, opens[len(opens)-1])
	}
	return nil
}
