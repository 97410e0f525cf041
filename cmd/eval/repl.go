package main

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// repl reads expressions from in one line at a time and prints each result.
// An empty line or the end of input ends the session. Faults are printed and
// do not end the session.
func (p *printer) repl(in io.Reader, o *options) error {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return p.interact(f, o)
	}
	r := o.reducer(p.err)
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			return nil
		}
		p.calc(r, line)
	}
	return sc.Err()
}

// interact runs the session on a terminal in raw mode, with line editing and
// history.
func (p *printer) interact(f *os.File, o *options) error {
	fd := int(f.Fd())
	old, err := term.MakeRaw(fd)
	if err != nil {
		return err
	}
	defer term.Restore(fd, old)

	t := term.NewTerminal(struct {
		io.Reader
		io.Writer
	}{f, p.out}, "> ")
	q := newPrinter(t, t)
	r := o.reducer(t)
	for {
		line, err := t.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if strings.TrimSpace(line) == "" {
			return nil
		}
		q.calc(r, line)
	}
}
