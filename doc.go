// Package eval implements a terminal calculator that evaluates arithmetic
// expressions to exact decimal strings.
//
// Expressions are made of decimal numerals, parentheses, and the operators
// below, from tightest to loosest binding:
//
//	++x  --x        increment, negated increment
//	!x   y!!x       square root, y-th root of x
//	x^y             power
//	x*y  x/y  x%y   multiply, divide, integer remainder
//	x+y  x-y        add, subtract; +x and -x are signs
//
// Operators of one precedence level apply left to right. A parenthesized
// group next to a numeral or another group multiplies with it, so "2(3)" and
// "(2)(3)" are both 6.
//
// Every intermediate value is rounded to the AccurateDigits significant
// digits a float64 can hold, so that results print without spurious digits.
// Errors are reported as a *Fault holding the Kind of failure and the rune
// index in the input where it was found.
package eval
