package eval_test

import (
	"errors"
	"math"
	"testing"

	"github.com/zephyrtronium/eval"
)

func TestWholeDigits(t *testing.T) {
	cases := []struct {
		x    float64
		want int
	}{
		{0, 1},
		{0.5, 0},
		{-0.999, 0},
		{1, 1},
		{9, 1},
		{10, 2},
		{-123.4, 3},
		{999999999999999, 15},
		{1e15, 16},
	}
	for _, c := range cases {
		if got := eval.WholeDigits(c.x); got != c.want {
			t.Errorf("WholeDigits(%g): want %d, got %d", c.x, c.want, got)
		}
	}
	for _, x := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if got := eval.WholeDigits(x); got <= eval.AccurateDigits {
			t.Errorf("WholeDigits(%g) gave %d, should be more than any finite value", x, got)
		}
	}
}

func TestDigitAt(t *testing.T) {
	cases := []struct {
		x     float64
		place int
		want  int
	}{
		{123.456, 0, 3},
		{123.456, 1, 2},
		{123.456, 2, 1},
		{123.456, 3, 0},
		{123.456, -1, 4},
		{123.456, -2, 5},
		{-7, 0, 7},
		{5, 16, 0},
		{5, -16, 0},
		{1e19, 0, 0},
	}
	for _, c := range cases {
		if got := eval.DigitAt(c.x, c.place); got != c.want {
			t.Errorf("DigitAt(%g, %d): want %d, got %d", c.x, c.place, c.want, got)
		}
	}
}

func TestFormatDecimal(t *testing.T) {
	cases := []struct {
		name   string
		x      float64
		places int
		want   string
	}{
		{"zero", 0, 6, "0"},
		{"neg-zero", math.Copysign(0, -1), 6, "0"},
		{"int", 42, 6, "42"},
		{"half", 2.5, 6, "2.5"},
		{"neg-half", -0.5, 6, "-0.5"},
		{"third", 1.0 / 3, 6, "0.333333"},
		{"two-thirds", 2.0 / 3, 6, "0.666667"},
		{"carry", 9.9999996, 6, "10"},
		{"round-up", 12.5, 0, "13"},
		{"round-away", -12.5, 0, "-13"},
		{"small", 0.000123, 6, "0.000123"},
		{"tiny-neg", -0.0000001, 6, "0"},
		{"places", 1234.5678, 2, "1234.57"},
		{"cap", 123456789012345, 2, "123456789012345"},
		{"cap-frac", 1.0 / 3, 20, "0.333333333333333"},
		{"sum", 0.1 + 0.2, eval.AccurateDigits, "0.3"},
		{"negative-places", 7.25, -3, "7"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := eval.FormatDecimal(c.x, c.places)
			if err != nil {
				t.Fatalf("FormatDecimal(%g, %d) failed: %v", c.x, c.places, err)
			}
			if got != c.want {
				t.Errorf("FormatDecimal(%g, %d): want %q, got %q", c.x, c.places, c.want, got)
			}
		})
	}
}

func TestFormatDecimalTooLarge(t *testing.T) {
	cases := []struct {
		name   string
		x      float64
		places int
	}{
		{"big", 1e15, 0},
		{"neg-big", -1e20, 6},
		{"carry", 999999999999999.6, 6},
		{"nan", math.NaN(), 6},
		{"inf", math.Inf(1), 6},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s, err := eval.FormatDecimal(c.x, c.places)
			if !errors.Is(err, eval.NumberTooLarge) {
				t.Errorf("FormatDecimal(%g, %d): want number too large, got %q, %v", c.x, c.places, s, err)
			}
		})
	}
}

func TestParseDecimal(t *testing.T) {
	cases := []struct {
		s    string
		want float64
	}{
		{"0", 0},
		{"000123", 123},
		{"-2.5", -2.5},
		{"+3", 3},
		{".5", 0.5},
		{"5.", 5},
		{"0.000123", 0.000123},
		{"0.1234567890123456789", 0.123456789012345},
		{"123456789012345", 123456789012345},
		{"-99999999999999.9", -99999999999999.9},
	}
	for _, c := range cases {
		got, err := eval.ParseDecimal(c.s)
		if err != nil {
			t.Errorf("ParseDecimal(%q) failed: %v", c.s, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseDecimal(%q): want %g, got %g", c.s, c.want, got)
		}
	}
}

func TestParseDecimalError(t *testing.T) {
	cases := []struct {
		s    string
		kind eval.Kind
		pos  int
	}{
		{"", eval.Syntax, 0},
		{"-", eval.Syntax, 1},
		{".", eval.Syntax, 1},
		{"1-2", eval.Syntax, 1},
		{"1.2.3", eval.Syntax, 3},
		{"1e5", eval.Syntax, 1},
		{"1234567890123456", eval.NumberTooLarge, 15},
	}
	for _, c := range cases {
		_, err := eval.ParseDecimal(c.s)
		var f *eval.Fault
		if !errors.As(err, &f) {
			t.Errorf("ParseDecimal(%q): want fault, got %v", c.s, err)
			continue
		}
		if f.Kind != c.kind || f.Index != c.pos {
			t.Errorf("ParseDecimal(%q): want %v at %d, got %v at %d", c.s, c.kind, c.pos, f.Kind, f.Index)
		}
	}
}

func TestDecimalRoundTrip(t *testing.T) {
	cases := []float64{
		0,
		1,
		-1,
		math.Pi,
		-math.E,
		1.0 / 3,
		123456.789,
		-9.87654321e-5,
		99999999999999.9,
		1e-10,
		1e-20,
		0.1 + 0.2,
		999999999999999,
	}
	for _, x := range cases {
		s, err := eval.FormatDecimal(x, eval.AccurateDigits)
		if err != nil {
			t.Errorf("FormatDecimal(%g) failed: %v", x, err)
			continue
		}
		y, err := eval.ParseDecimal(s)
		if err != nil {
			t.Errorf("ParseDecimal(%q) failed: %v", s, err)
			continue
		}
		if d := math.Abs(x - y); d > 1e-14*math.Max(1, math.Abs(x)) {
			t.Errorf("%g formatted as %q and parsed back as %g", x, s, y)
		}
	}
}
