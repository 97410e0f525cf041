package eval_test

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/zephyrtronium/eval"
)

func ExampleReduce() {
	for _, expr := range []string{"2+3*(4-1)", "2(3)", "3!!27", "++5", "1/3"} {
		r, err := eval.Reduce(expr)
		if err != nil {
			fmt.Println(expr, "failed:", err)
			continue
		}
		fmt.Println(expr, "=", r)
	}
	// Output:
	// 2+3*(4-1) = 11
	// 2(3) = 6
	// 3!!27 = 3
	// ++5 = 6
	// 1/3 = 0.333333
}

func ExampleFault() {
	_, err := eval.Reduce("5/0")
	var f *eval.Fault
	if errors.As(err, &f) {
		fmt.Println(f.Kind, "at", f.Index)
	}
	fmt.Println(errors.Is(err, eval.DivideByZero))
	fmt.Println(err)
	// Output:
	// divide by zero at 1
	// true
	// 2: divide by zero
}

func ExampleTrace() {
	r := eval.NewReducer(eval.Trace(log.New(os.Stdout, "", 0)), eval.Places(2))
	fmt.Println(r.Reduce("1+2/3"))
	// Output:
	// 1+2/3
	// 1+0.666666666666667
	// 1.66666666666667
	// 1.67 <nil>
}
