// Package testing provides test utilities for tidy.
package testing

import (
	"testing"

	"github.com/zoobzio/tidy"
)

// SampleRecord returns a fresh record mixing kept and blocked entries:
//
//	{a: 1, b: null, c: {d: undefined, e: "x"}, f: [null, 2]}
func SampleRecord() *tidy.Record {
	return tidy.NewRecord(
		tidy.Entry{Key: "a", Value: tidy.Int(1)},
		tidy.Entry{Key: "b", Value: tidy.Null()},
		tidy.Entry{Key: "c", Value: tidy.RecordValue(tidy.NewRecord(
			tidy.Entry{Key: "d", Value: tidy.Undefined()},
			tidy.Entry{Key: "e", Value: tidy.String("x")},
		))},
		tidy.Entry{Key: "f", Value: tidy.Sequence(tidy.Null(), tidy.Int(2))},
	)
}

// SampleJSON is SampleRecord as JSON. JSON has no undefined, so "d" is
// an empty string instead.
const SampleJSON = `{"a":1,"b":null,"c":{"d":"","e":"x"},"f":[null,2]}`

// SanitizedJSON is SampleJSON after sanitizing.
const SanitizedJSON = `{"a":1,"c":{"e":"x"},"f":[null,2]}`

// SaleEntry is a ledger line with optional fields, used for struct
// conversion tests.
type SaleEntry struct {
	Account  string   `json:"account"`
	Amount   float64  `json:"amount"`
	Customer string   `json:"customer"`
	Location *string  `json:"location"`
	Currency string   `json:"currency"`
	Tags     []string `json:"tags"`
	Internal string   `json:"-"`
}

// SampleSale returns a SaleEntry with an empty customer and no location.
func SampleSale() SaleEntry {
	return SaleEntry{
		Account:  "Hardware",
		Amount:   1250.5,
		Currency: "CAD",
		Tags:     []string{"", "q4"},
		Internal: "ignored",
	}
}

// RequireNoBlocked fails the test if any key reachable through nested
// records maps to Null, Undefined or the empty string.
func RequireNoBlocked(tb testing.TB, r *tidy.Record) {
	tb.Helper()
	requireNoBlocked(tb, r, "")
}

func requireNoBlocked(tb testing.TB, r *tidy.Record, path string) {
	tb.Helper()
	for _, e := range r.Entries() {
		key := path + "." + e.Key
		if nested, ok := e.Value.AsRecord(); ok {
			requireNoBlocked(tb, nested, key)
			continue
		}
		if !tidy.IsValidInputValue(e.Value) {
			tb.Fatalf("blocked value %s at %s", e.Value.Kind(), key)
		}
	}
}
