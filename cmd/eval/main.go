package main

import (
	"errors"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/zephyrtronium/eval"
)

const helpText = `High-accuracy terminal calculator.

With an expression, eval prints its value and exits. Arguments are joined with
spaces, so quoting the expression is optional but recommended. An expression
starting with - must follow --. Without an expression, eval reads expressions
line by line until an empty line or end of input.

  ++, --     ++x, --x         Increment, decrement
  !, !!      !x, y!!x         Square root, other root        ↑ Higher precedence
  ^          x^y              Exponent
  *, /, %    x*y, x/y, x%y    Multiply, divide, remainder    ↓ Lower precedence
  +, -       x+y, x-y         Add, subtract

             (x + y)          Control precedence
             x(y)             Multiply terms`

// maxInput is the longest expression accepted, in runes.
const maxInput = 999

// errReported is returned by commands that have already told the user what
// went wrong.
var errReported = errors.New("error already reported")

var errDecimals = errors.New("invalid number of decimals")

func main() {
	log.SetFlags(0)
	log.SetPrefix("eval: ")
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errReported) {
			log.Print(err)
		}
		os.Exit(1)
	}
}

type options struct {
	decimals decimals
	trace    bool
	noColor  bool
}

func newRootCmd() *cobra.Command {
	o := options{decimals: eval.DefaultPlaces}
	cmd := &cobra.Command{
		Use:           "eval [flags] [EXPRESSION...]",
		Short:         "High-accuracy terminal calculator",
		Long:          helpText,
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("decimals") {
				return nil
			}
			s, ok := os.LookupEnv("EVAL_DECIMALS")
			if !ok || s == "" {
				return nil
			}
			if err := o.decimals.Set(s); err != nil {
				return errors.New("EVAL_DECIMALS: " + err.Error())
			}
			return nil
		},
		RunE: o.run,
	}
	f := cmd.Flags()
	f.SetInterspersed(false)
	f.VarP(&o.decimals, "decimals", "d", "decimal places to show, 0 to "+strconv.Itoa(eval.AccurateDigits)+" (default $EVAL_DECIMALS or "+strconv.Itoa(eval.DefaultPlaces)+")")
	f.BoolVar(&o.trace, "trace", false, "print the expression after every reduction")
	f.BoolVar(&o.noColor, "no-color", false, "disable colored output")
	return cmd
}

func (o *options) run(cmd *cobra.Command, args []string) error {
	if o.noColor {
		color.NoColor = true
	}
	p := newPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr())
	if len(args) == 0 {
		return p.repl(cmd.InOrStdin(), o)
	}
	if !p.calc(o.reducer(p.err), strings.Join(args, " ")) {
		return errReported
	}
	return nil
}

// reducer creates a Reducer with the command's settings, tracing to w.
func (o *options) reducer(w io.Writer) *eval.Reducer {
	opts := []eval.Option{eval.Places(int(o.decimals))}
	if o.trace {
		opts = append(opts, eval.Trace(log.New(w, "", 0)))
	}
	return eval.NewReducer(opts...)
}

// decimals is a flag value holding a number of decimal places.
type decimals int

func (d *decimals) String() string {
	return strconv.Itoa(int(*d))
}

func (d *decimals) Set(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 || n > eval.AccurateDigits {
		return errDecimals
	}
	*d = decimals(n)
	return nil
}

func (d *decimals) Type() string {
	return "int"
}
