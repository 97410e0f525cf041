package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"

	"github.com/zephyrtronium/eval"
)

type printer struct {
	out, err io.Writer
	label    *color.Color
	mark     *color.Color
}

func newPrinter(out, err io.Writer) *printer {
	return &printer{
		out:   out,
		err:   err,
		label: color.New(color.FgRed, color.Bold),
		mark:  color.New(color.FgRed, color.Underline),
	}
}

// calc reduces expr and prints the result or what went wrong. It reports
// whether the reduction succeeded.
func (p *printer) calc(r *eval.Reducer, expr string) bool {
	if utf8.RuneCountInString(expr) > maxInput {
		p.errorf("input size too large")
		return false
	}
	s, err := r.Reduce(expr)
	if err != nil {
		p.fault(expr, err)
		return false
	}
	fmt.Fprintln(p.out, s)
	return true
}

func (p *printer) errorf(format string, args ...any) {
	fmt.Fprintf(p.err, "%s %s\n", p.label.Sprint("eval: error:"), fmt.Sprintf(format, args...))
}

// fault prints err. If it is tied to a character in expr, the expression is
// printed after it with that character marked.
func (p *printer) fault(expr string, err error) {
	var f *eval.Fault
	if !errors.As(err, &f) {
		p.errorf("%v", err)
		return
	}
	if f.Detail != "" {
		p.errorf("%v (%s)", f.Kind, f.Detail)
	} else {
		p.errorf("%v", f.Kind)
	}
	rs := []rune(expr)
	if f.Index < 0 || f.Index >= len(rs) {
		return
	}
	i := f.Index
	fmt.Fprintf(p.err, "  %s%s%s\n", string(rs[:i]), p.mark.Sprint(string(rs[i])), string(rs[i+1:]))
	fmt.Fprintf(p.err, "  %s^\n", strings.Repeat(" ", i))
}
