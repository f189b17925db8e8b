// Package tidy provides small, deterministic helpers for validating,
// sanitizing and formatting plain values.
//
// # Values
//
// Helpers operate on Value, a tagged variant over:
//
//   - scalars: Undefined (the zero Value), Null, Bool, Number, String
//   - records: ordered string-keyed mappings (*Record)
//   - sequences: ordered lists of values
//
// Native Go data converts with ValueOf and back with Value.Interface.
// Structs convert with FromStruct, naming keys after their json tags.
//
// # Helpers
//
//	tidy.IsValidInputValue(v)          // false for Null, Undefined, ""
//	tidy.RemoveNullValues(record)      // strips blocked keys in place
//	tidy.FormatAmount(tidy.Int(1000))  // "$1,000.00"
//	tidy.CommaSeparatedValue(v)        // "1000000" -> "1,000,000"
//
// RemoveNullValues recurses only into records. Sequences are never
// traversed, so a list holding nulls survives untouched:
//
//	r := tidy.NewRecord(
//	    tidy.Entry{Key: "a", Value: tidy.Int(1)},
//	    tidy.Entry{Key: "b", Value: tidy.Null()},
//	    tidy.Entry{Key: "f", Value: tidy.Sequence(tidy.Null(), tidy.Int(2))},
//	)
//	tidy.RemoveNullValues(r) // {a: 1, f: [null, 2]}
//
// # Currency
//
// FormatAmount uses the en-US locale and US dollars. Other locales and
// currencies need an explicit Formatter:
//
//	f, _ := tidy.NewFormatter(tidy.WithLocale("en-CA"), tidy.WithCurrency("CAD"))
//	f.Amount(tidy.Number(1234.5)) // "$1,234.50"
//
// Use caches formatters by locale and currency.
//
// # Codecs
//
// A Sanitizer applies RemoveNullValues to encoded documents. Codec
// implementations are available as subpackages:
//
//   - json - JSON encoding (application/json)
//   - yaml - YAML encoding (application/yaml)
//   - msgpack - MessagePack encoding (application/msgpack)
//   - bson - BSON encoding (application/bson)
//
// Record key order is preserved by every codec.
//
//	s := tidy.NewSanitizer(json.New())
//	out, _ := s.Sanitize(ctx, []byte(`{"a":1,"b":null,"c":{"d":""}}`))
//	// {"a":1,"c":{}}
//
// # Signals
//
// Formatter creation and Sanitize operations emit capitan signals
// (SignalFormatterCreated, SignalSanitizeStart, SignalSanitizeComplete).
package tidy
