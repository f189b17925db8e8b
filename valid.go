package tidy

// defaultBlocked is the blocked set used when no checks are supplied.
var defaultBlocked = []Value{Null(), Undefined(), String("")}

// DefaultBlocked returns a copy of the default blocked set: Null,
// Undefined and the empty string.
func DefaultBlocked() []Value {
	out := make([]Value, len(defaultBlocked))
	copy(out, defaultBlocked)
	return out
}

// IsValidInputValue reports whether v is not a member of checks. With no
// checks the default blocked set applies.
func IsValidInputValue(v Value, checks ...Value) bool {
	if len(checks) == 0 {
		checks = defaultBlocked
	}
	for _, c := range checks {
		if v.Equal(c) {
			return false
		}
	}
	return true
}
