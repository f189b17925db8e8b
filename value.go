package tidy

import (
	"math"
)

// Kind identifies the variant held by a Value.
type Kind uint8

const (
	KindUndefined Kind = iota // absent; the zero Value
	KindNull
	KindBool
	KindNumber
	KindString
	KindRecord
	KindSequence
)

var kindNames = [...]string{
	KindUndefined: "undefined",
	KindNull:      "null",
	KindBool:      "bool",
	KindNumber:    "number",
	KindString:    "string",
	KindRecord:    "record",
	KindSequence:  "sequence",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Value is a tagged variant over scalars, records and sequences.
//
// The zero Value is Undefined. Values are passed by value; the Record and
// Sequence variants share their underlying storage, so copies of a record
// Value observe mutations made through any other copy.
type Value struct {
	kind Kind
	b    bool
	n    float64
	s    string
	rec  *Record
	seq  *[]Value
}

// Undefined returns the absent value.
func Undefined() Value { return Value{} }

// Null returns the null value.
func Null() Value { return Value{kind: KindNull} }

// Bool wraps a boolean.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Number wraps a float64.
func Number(n float64) Value { return Value{kind: KindNumber, n: n} }

// Int wraps an integer as a Number.
func Int(n int64) Value { return Value{kind: KindNumber, n: float64(n)} }

// String wraps a string.
func String(s string) Value { return Value{kind: KindString, s: s} }

// RecordValue wraps a record. A nil record yields Null.
func RecordValue(r *Record) Value {
	if r == nil {
		return Null()
	}
	return Value{kind: KindRecord, rec: r}
}

// Sequence wraps the given elements. The slice is copied once; later
// mutations through Elems are shared by every copy of the returned Value.
func Sequence(elems ...Value) Value {
	s := make([]Value, len(elems))
	copy(s, elems)
	return Value{kind: KindSequence, seq: &s}
}

// Kind reports the variant.
func (v Value) Kind() Kind { return v.kind }

func (v Value) IsUndefined() bool { return v.kind == KindUndefined }
func (v Value) IsNull() bool      { return v.kind == KindNull }

// AsBool returns the boolean payload and whether v is a Bool.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// AsNumber returns the numeric payload and whether v is a Number.
func (v Value) AsNumber() (float64, bool) { return v.n, v.kind == KindNumber }

// AsString returns the string payload and whether v is a String.
func (v Value) AsString() (string, bool) { return v.s, v.kind == KindString }

// AsRecord returns the record and whether v is a Record.
func (v Value) AsRecord() (*Record, bool) { return v.rec, v.kind == KindRecord }

// Elems returns the sequence elements, or nil if v is not a Sequence.
func (v Value) Elems() []Value {
	if v.kind != KindSequence || v.seq == nil {
		return nil
	}
	return *v.seq
}

// Equal reports whether two values are the same under the membership rule
// used for blocked values: scalars compare by payload (NaN matches NaN and
// +0 matches -0), records and sequences compare by identity.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindUndefined, KindNull:
		return true
	case KindBool:
		return v.b == o.b
	case KindNumber:
		if math.IsNaN(v.n) && math.IsNaN(o.n) {
			return true
		}
		return v.n == o.n
	case KindString:
		return v.s == o.s
	case KindRecord:
		return v.rec == o.rec
	case KindSequence:
		return v.seq == o.seq
	}
	return false
}

// Truthy reports whether v would pass a boolean test in the host
// environment. Undefined, Null, false, 0, -0, NaN and "" are falsy.
// Records and sequences are always truthy.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindUndefined, KindNull:
		return false
	case KindBool:
		return v.b
	case KindNumber:
		return v.n != 0 && !math.IsNaN(v.n)
	case KindString:
		return v.s != ""
	}
	return true
}
