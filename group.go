package tidy

import "strings"

// CommaSeparatedValue renders v as a string with a comma before every
// trailing group of three digits. Falsy values render as "".
//
// Grouping is positional over the whole string: a comma goes at every
// position between two word characters that is followed by a run of
// digits whose length is a multiple of three. Non-digit characters are not
// interpreted, so fractional digits are grouped too ("1234.5678" becomes
// "1,234.5,678").
func CommaSeparatedValue(v Value) string {
	if !v.Truthy() {
		return ""
	}
	return GroupDigits(ToString(v))
}

// GroupDigits applies the CommaSeparatedValue grouping rule to s.
func GroupDigits(s string) string {
	if len(s) < 4 {
		return s
	}

	// run[i] is the length of the digit run starting at i.
	run := make([]int, len(s)+1)
	for i := len(s) - 1; i >= 0; i-- {
		if isDigit(s[i]) {
			run[i] = run[i+1] + 1
		}
	}

	var b strings.Builder
	b.Grow(len(s) + len(s)/3)
	b.WriteByte(s[0])
	for i := 1; i < len(s); i++ {
		if run[i] > 0 && run[i]%3 == 0 && isWordByte(s[i-1]) {
			b.WriteByte(',')
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isWordByte(c byte) bool {
	return isDigit(c) || c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
