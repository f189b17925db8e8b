package tidy

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_ZeroIsUndefined(t *testing.T) {
	var v Value
	assert.Equal(t, KindUndefined, v.Kind())
	assert.True(t, v.IsUndefined())
	assert.True(t, v.Equal(Undefined()))
}

func TestValue_Kinds(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want Kind
	}{
		{"undefined", Undefined(), KindUndefined},
		{"null", Null(), KindNull},
		{"bool", Bool(true), KindBool},
		{"number", Number(1.5), KindNumber},
		{"int", Int(7), KindNumber},
		{"string", String("x"), KindString},
		{"record", RecordValue(NewRecord()), KindRecord},
		{"nil record", RecordValue(nil), KindNull},
		{"sequence", Sequence(), KindSequence},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.Kind())
		})
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "undefined", KindUndefined.String())
	assert.Equal(t, "record", KindRecord.String())
	assert.Equal(t, "sequence", KindSequence.String())
	assert.Equal(t, "unknown", Kind(99).String())
}

func TestValue_Accessors(t *testing.T) {
	b, ok := Bool(true).AsBool()
	assert.True(t, ok)
	assert.True(t, b)

	n, ok := Int(42).AsNumber()
	assert.True(t, ok)
	assert.Equal(t, 42.0, n)

	s, ok := String("hi").AsString()
	assert.True(t, ok)
	assert.Equal(t, "hi", s)

	_, ok = String("hi").AsNumber()
	assert.False(t, ok)

	r := NewRecord()
	got, ok := RecordValue(r).AsRecord()
	assert.True(t, ok)
	assert.Same(t, r, got)

	assert.Nil(t, Null().Elems())
	assert.Len(t, Sequence(Int(1), Int(2)).Elems(), 2)
}

func TestValue_SequenceCopiesInput(t *testing.T) {
	elems := []Value{Int(1), Int(2)}
	seq := Sequence(elems...)
	elems[0] = Int(9)

	n, _ := seq.Elems()[0].AsNumber()
	assert.Equal(t, 1.0, n)
}

func TestValue_SequenceSharesStorage(t *testing.T) {
	seq := Sequence(Int(1))
	alias := seq
	seq.Elems()[0] = String("changed")

	s, ok := alias.Elems()[0].AsString()
	require.True(t, ok)
	assert.Equal(t, "changed", s)
}

func TestValue_Equal(t *testing.T) {
	r := NewRecord()
	seq := Sequence(Int(1))

	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"null null", Null(), Null(), true},
		{"undefined undefined", Undefined(), Undefined(), true},
		{"null undefined", Null(), Undefined(), false},
		{"empty string", String(""), String(""), true},
		{"empty string vs null", String(""), Null(), false},
		{"zero vs empty string", Int(0), String(""), false},
		{"false vs zero", Bool(false), Int(0), false},
		{"nan nan", Number(math.NaN()), Number(math.NaN()), true},
		{"zero negative zero", Number(0), Number(math.Copysign(0, -1)), true},
		{"numbers", Int(3), Number(3), true},
		{"same record", RecordValue(r), RecordValue(r), true},
		{"distinct empty records", RecordValue(NewRecord()), RecordValue(NewRecord()), false},
		{"same sequence", seq, seq, true},
		{"equal sequences", Sequence(Int(1)), Sequence(Int(1)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Equal(tt.b))
		})
	}
}

func TestValue_Truthy(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want bool
	}{
		{"undefined", Undefined(), false},
		{"null", Null(), false},
		{"false", Bool(false), false},
		{"true", Bool(true), true},
		{"zero", Int(0), false},
		{"negative zero", Number(math.Copysign(0, -1)), false},
		{"nan", Number(math.NaN()), false},
		{"number", Number(0.1), true},
		{"empty string", String(""), false},
		{"zero string", String("0"), true},
		{"empty record", RecordValue(NewRecord()), true},
		{"empty sequence", Sequence(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.Truthy())
		})
	}
}
