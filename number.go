package tidy

import (
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// decimalLiteral matches the decimal forms accepted by numeric coercion.
var decimalLiteral = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// ToNumber coerces v to a float64 following the host language's Number()
// conversion. Undefined, records and unparseable strings yield NaN; Null
// yields 0; booleans yield 0 or 1; strings are trimmed and parsed as
// decimal, hex (0x), octal (0o) or binary (0b) literals or as Infinity.
func ToNumber(v Value) float64 {
	switch v.kind {
	case KindNull:
		return 0
	case KindBool:
		if v.b {
			return 1
		}
		return 0
	case KindNumber:
		return v.n
	case KindString:
		return parseNumber(v.s)
	case KindSequence:
		return parseNumber(ToString(v))
	}
	return math.NaN()
}

func parseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	switch s {
	case "":
		return 0
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}
	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			return parseRadix(s[2:], base)
		}
	}
	if !decimalLiteral.MatchString(s) {
		return math.NaN()
	}
	// Out-of-range literals still carry the signed infinity.
	n, err := cast.ToFloat64E(s)
	if err != nil {
		f, _ := strconv.ParseFloat(s, 64)
		return f
	}
	return n
}

// ToString converts v to its string form following the host language's
// String() conversion. Records render as "[object Object]"; sequences join
// their elements with commas, rendering Null and Undefined as empty.
func ToString(v Value) string {
	switch v.kind {
	case KindUndefined:
		return "undefined"
	case KindNull:
		return "null"
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindNumber:
		return FormatNumber(v.n)
	case KindString:
		return v.s
	case KindRecord:
		return "[object Object]"
	case KindSequence:
		elems := v.Elems()
		parts := make([]string, len(elems))
		for i, e := range elems {
			if e.kind == KindNull || e.kind == KindUndefined {
				continue
			}
			parts[i] = ToString(e)
		}
		return strings.Join(parts, ",")
	}
	return ""
}

// FormatNumber renders f with the shortest round-trip digits, switching to
// exponent notation below 1e-6 and at or above 1e21.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}

	sign := ""
	if f < 0 {
		sign = "-"
		f = -f
	}

	// d.ddde±XX
	sci := strconv.FormatFloat(f, 'e', -1, 64)
	mant, expPart, _ := strings.Cut(sci, "e")
	digits := strings.Replace(mant, ".", "", 1)
	exp, _ := strconv.Atoi(expPart)
	k := len(digits)
	n := exp + 1

	var out string
	switch {
	case k <= n && n <= 21:
		out = digits + strings.Repeat("0", n-k)
	case 0 < n && n <= 21:
		out = digits[:n] + "." + digits[n:]
	case -6 < n && n <= 0:
		out = "0." + strings.Repeat("0", -n) + digits
	default:
		e := n - 1
		expSign := "+"
		if e < 0 {
			expSign = "-"
			e = -e
		}
		out = digits[:1]
		if k > 1 {
			out += "." + digits[1:]
		}
		out += "e" + expSign + strconv.Itoa(e)
	}
	return sign + out
}

// parseRadix parses unsigned digits in base, rounding values past 2^53 to
// the nearest float64.
func parseRadix(digits string, base int) float64 {
	if digits == "" || digits[0] == '+' || digits[0] == '-' {
		return math.NaN()
	}
	n, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return math.NaN()
	}
	f, _ := new(big.Float).SetInt(n).Float64()
	return f
}
