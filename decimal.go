package eval

import (
	"math"
	"strings"
)

// AccurateDigits is the number of significant decimal digits that a float64
// is guaranteed to hold. Results are never printed with more significant
// digits, and numerals with more whole digits are rejected.
const AccurateDigits = 15

// DefaultPlaces is the number of decimal places results are rounded to when no
// Places option is given.
const DefaultPlaces = 6

// WholeDigits returns the number of digits in the integral part of x: the
// number of divisions by ten before the integral part is zero. WholeDigits(0)
// is 1, and any value with magnitude below 1 has no whole digits. NaNs and
// infinities have more whole digits than any finite value.
func WholeDigits(x float64) int {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return math.MaxInt32
	}
	if x == 0 {
		return 1
	}
	x = math.Abs(x)
	n := 0
	for ; math.Trunc(x) != 0; x /= 10 {
		n++
	}
	return n
}

// DigitAt returns the decimal digit of |x| at the given power of ten. Places
// beyond AccurateDigits in either direction and magnitudes too large for an
// int64 give 0.
func DigitAt(x float64, place int) int {
	x = math.Abs(x)
	if place > AccurateDigits || place < -AccurateDigits || x > math.MaxInt64 {
		return 0
	}
	if place >= 0 {
		x /= math.Pow10(place)
	} else {
		x *= math.Pow10(-place)
	}
	return int(math.Mod(math.Trunc(x), 10))
}

// FormatDecimal formats x rounded half away from zero to the given number of
// decimal places, never printing more than AccurateDigits significant digits.
// Trailing zeros after the decimal point are dropped. If x has more whole
// digits than AccurateDigits or is not finite, the result is a *Fault of kind
// NumberTooLarge.
func FormatDecimal(x float64, places int) (string, error) {
	whole := WholeDigits(x)
	if whole > AccurateDigits {
		return "", fault(NumberTooLarge, -1)
	}
	if places < 0 {
		places = 0
	}
	if places > AccurateDigits-whole {
		places = AccurateDigits - whole
	}
	scaled := math.Round(math.Abs(x) * math.Pow10(places))
	if WholeDigits(scaled)-places > AccurateDigits {
		// Rounding carried into a new whole digit.
		return "", fault(NumberTooLarge, -1)
	}
	for places > 0 && DigitAt(scaled, 0) == 0 {
		scaled /= 10
		places--
	}
	digits := WholeDigits(scaled)

	var b strings.Builder
	b.Grow(digits + places + 3)
	if x < 0 && scaled != 0 {
		b.WriteByte('-')
	}
	if digits > places {
		for p := digits - 1; p >= places; p-- {
			b.WriteByte(byte('0' + DigitAt(scaled, p)))
		}
	} else {
		b.WriteByte('0')
	}
	if places > 0 {
		b.WriteByte('.')
		for p := places - 1; p >= 0; p-- {
			b.WriteByte(byte('0' + DigitAt(scaled, p)))
		}
	}
	return b.String(), nil
}

// ParseDecimal parses a numeral with an optional sign and at most one decimal
// point. Only the first AccurateDigits significant digits are read; later
// digits are ignored. If the numeral has more whole digits than
// AccurateDigits, the result is a *Fault of kind NumberTooLarge. Malformed
// text gives a *Fault of kind Syntax.
func ParseDecimal(s string) (float64, error) {
	var (
		neg, dot, dig bool
		// mant holds the kept significant digits as an integer, exactly.
		mant float64
		// sig is the number of significant digits in mant.
		sig int
		// frac is the number of kept digits after the decimal point,
		// including leading zeros.
		frac  int
		whole int
	)
	i := 0
	for _, r := range s {
		switch {
		case (r == '-' || r == '+') && i == 0:
			neg = r == '-'
		case r == '.' && !dot:
			dot = true
		case '0' <= r && r <= '9':
			dig = true
			d := float64(r - '0')
			if !dot && (sig > 0 || d != 0) {
				whole++
				if whole > AccurateDigits {
					return 0, fault(NumberTooLarge, i)
				}
			}
			switch {
			case sig == 0 && d == 0:
				if dot {
					frac++
				}
			case sig < AccurateDigits:
				mant = mant*10 + d
				sig++
				if dot {
					frac++
				}
			}
		default:
			return 0, fault(Syntax, i)
		}
		i++
	}
	if !dig {
		return 0, fault(Syntax, i)
	}
	x := mant / math.Pow10(frac)
	if neg {
		x = -x
	}
	return x, nil
}
