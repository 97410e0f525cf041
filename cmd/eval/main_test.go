package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	color.NoColor = true
	cmd := newRootCmd()
	var out, errb bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errb)
	if args == nil {
		// Cobra falls back to os.Args for nil.
		args = []string{}
	}
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errb.String(), err
}

func TestOneShot(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"precedence", []string{"2+3*4"}, "14\n"},
		{"joined", []string{"(2", "+", "3)", "*", "4"}, "20\n"},
		{"implicit", []string{"2(3)"}, "6\n"},
		{"decimals", []string{"-d", "2", "1/3"}, "0.33\n"},
		{"long-decimals", []string{"--decimals=0", "2.5"}, "3\n"},
		{"default", []string{"2/3"}, "0.666667\n"},
		{"leading-sign", []string{"--", "-5+3"}, "-2\n"},
		{"root", []string{"!!2 27"}, ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out, _, err := execute(t, "", c.args...)
			if c.want == "" {
				require.ErrorIs(t, err, errReported)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, out)
		})
	}
}

func TestOneShotFault(t *testing.T) {
	cases := []struct {
		name string
		expr string
		msg  string
		mark string
	}{
		{"divide", "5/0", "eval: error: divide by zero\n", "  5/0\n   ^\n"},
		{"adjacent", "5 6", "eval: error: invalid syntax\n", "  5 6\n    ^\n"},
		{"parens", "(2+3", "eval: error: unbalanced parenthesis\n", "  (2+3\n  ^\n"},
		{"modulus", "5.5%2", "eval: error: non-integer modulus\n", "  5.5%2\n     ^\n"},
		{"empty", " ", "eval: error: missing operand\n", ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out, errs, err := execute(t, "", c.expr)
			require.ErrorIs(t, err, errReported)
			assert.Empty(t, out)
			assert.Equal(t, c.msg+c.mark, errs)
		})
	}
}

func TestTooLarge(t *testing.T) {
	_, errs, err := execute(t, "", strings.Repeat("1+", 500)+"1")
	require.ErrorIs(t, err, errReported)
	assert.Equal(t, "eval: error: input size too large\n", errs)
}

func TestDecimalsFlag(t *testing.T) {
	for _, d := range []string{"-1", "16", "x", "1.5"} {
		t.Run(d, func(t *testing.T) {
			_, _, err := execute(t, "", "-d", d, "1")
			require.Error(t, err)
			assert.Contains(t, err.Error(), errDecimals.Error())
		})
	}
}

func TestDecimalsEnv(t *testing.T) {
	t.Setenv("EVAL_DECIMALS", "2")
	out, _, err := execute(t, "", "1/3")
	require.NoError(t, err)
	assert.Equal(t, "0.33\n", out)

	out, _, err = execute(t, "", "-d", "4", "1/3")
	require.NoError(t, err)
	assert.Equal(t, "0.3333\n", out)

	t.Setenv("EVAL_DECIMALS", "sixteen")
	_, _, err = execute(t, "", "1/3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "EVAL_DECIMALS")
}

func TestTrace(t *testing.T) {
	out, errs, err := execute(t, "", "--trace", "2+3*4")
	require.NoError(t, err)
	assert.Equal(t, "14\n", out)
	assert.Equal(t, "2+3*4\n2+12\n14\n", errs)
}

func TestREPL(t *testing.T) {
	in := "1+1\n5/0\n2 * 3\n\n9\n"
	out, errs, err := execute(t, in)
	require.NoError(t, err)
	assert.Equal(t, "2\n6\n", out)
	assert.Contains(t, errs, "eval: error: divide by zero")
}

func TestREPLEOF(t *testing.T) {
	out, errs, err := execute(t, "(1+2)(3)")
	require.NoError(t, err)
	assert.Equal(t, "9\n", out)
	assert.Empty(t, errs)
}
