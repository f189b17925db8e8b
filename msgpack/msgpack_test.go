package msgpack

import (
	"bytes"
	"testing"

	"github.com/zoobzio/tidy"
)

func TestNew(t *testing.T) {
	c := New()
	if c == nil {
		t.Error("New() should return non-nil codec")
	}
}

func TestContentType(t *testing.T) {
	c := New()
	if c.ContentType() != "application/msgpack" {
		t.Errorf("ContentType() = %q, want %q", c.ContentType(), "application/msgpack")
	}
}

func TestMarshalUnmarshal_Value(t *testing.T) {
	c := New()

	original := tidy.RecordValue(tidy.NewRecord(
		tidy.Entry{Key: "z", Value: tidy.Int(1)},
		tidy.Entry{Key: "a", Value: tidy.Null()},
		tidy.Entry{Key: "f", Value: tidy.Sequence(tidy.String(""), tidy.Number(0.5))},
	))

	data, err := c.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var restored tidy.Value
	if err := c.Unmarshal(data, &restored); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}

	r, ok := restored.AsRecord()
	if !ok {
		t.Fatalf("restored kind = %s, want record", restored.Kind())
	}
	keys := r.Keys()
	if len(keys) != 3 || keys[0] != "z" || keys[1] != "a" || keys[2] != "f" {
		t.Errorf("Keys() = %v, want [z a f]", keys)
	}
	if f, _ := r.Get("f"); tidy.ToString(f) != ",0.5" {
		t.Errorf("f = %q, want %q", tidy.ToString(f), ",0.5")
	}
}

func TestMarshalUnmarshal_Struct(t *testing.T) {
	c := New()

	type sale struct {
		Account string `json:"account"`
		Amount  int    `json:"amount"`
	}

	original := sale{Account: "Hardware", Amount: 42}

	data, err := c.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if !bytes.Contains(data, []byte("account")) {
		t.Error("struct fields should be keyed by their json tag")
	}

	var restored sale
	if err := c.Unmarshal(data, &restored); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if restored != original {
		t.Errorf("round-trip failed: got %+v, want %+v", restored, original)
	}
}

func TestMarshal_SortsNativeMaps(t *testing.T) {
	c := New()

	// fixmap of three entries keyed a, b, c with fixint values
	want := []byte{0x83, 0xa1, 'a', 0x01, 0xa1, 'b', 0x02, 0xa1, 'c', 0x03}

	inputs := []struct {
		name string
		v    any
	}{
		{"map[string]int", map[string]int{"c": 3, "a": 1, "b": 2}},
		{"map[string]float64", map[string]float64{"b": 2, "c": 3, "a": 1}},
		{"map[string]any", map[string]any{"c": 3, "b": 2, "a": 1}},
		{"named key type", map[label]uint8{"b": 2, "a": 1, "c": 3}},
	}

	for _, in := range inputs {
		t.Run(in.name, func(t *testing.T) {
			for i := 0; i < 20; i++ {
				got, err := c.Marshal(in.v)
				if err != nil {
					t.Fatalf("Marshal() error: %v", err)
				}
				if !bytes.Equal(got, want) {
					t.Fatalf("Marshal() = %x, want %x", got, want)
				}
			}
		})
	}
}

func TestMarshal_NativeMapRoundTrip(t *testing.T) {
	c := New()

	original := map[string]map[string]int{
		"totals": {"q4": 10, "q1": 4},
		"counts": {"b": 2, "a": 1},
	}
	data, err := c.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var restored map[string]map[string]int
	if err := c.Unmarshal(data, &restored); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if restored["totals"]["q4"] != 10 || restored["counts"]["a"] != 1 || len(restored) != 2 {
		t.Errorf("round-trip failed: got %v", restored)
	}

	var v tidy.Value
	if err := c.Unmarshal(data, &v); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	r, ok := v.AsRecord()
	if !ok {
		t.Fatalf("Unmarshal() kind = %s, want record", v.Kind())
	}
	if keys := r.Keys(); len(keys) != 2 || keys[0] != "counts" || keys[1] != "totals" {
		t.Errorf("Keys() = %v, want [counts totals]", keys)
	}
}

type label string

func TestUnmarshalInvalid(t *testing.T) {
	c := New()

	var v tidy.Value
	err := c.Unmarshal([]byte{0xc1}, &v)
	if err == nil {
		t.Error("Unmarshal(invalid) should return error")
	}
}
