package bson

import (
	"strings"
	"testing"

	"github.com/zoobzio/tidy"
)

func sample() tidy.Value {
	return tidy.RecordValue(tidy.NewRecord(
		tidy.Entry{Key: "z", Value: tidy.Int(1)},
		tidy.Entry{Key: "a", Value: tidy.Null()},
		tidy.Entry{Key: "m", Value: tidy.Sequence(tidy.String("x"))},
	))
}

func TestNew(t *testing.T) {
	c := New()
	if c == nil {
		t.Error("New() should return non-nil codec")
	}
}

func TestContentType(t *testing.T) {
	if got := New().ContentType(); got != "application/bson" {
		t.Errorf("ContentType() = %q, want %q", got, "application/bson")
	}
	if got := NewExtJSON(false).ContentType(); got != "application/ejson" {
		t.Errorf("ContentType() = %q, want %q", got, "application/ejson")
	}
}

func TestMarshalUnmarshal(t *testing.T) {
	c := New()

	data, err := c.Marshal(sample())
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
	want := []string{"z", "a", "m"}
	got := r.Keys()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
}

func TestMarshal_NotRecord(t *testing.T) {
	c := New()

	if _, err := c.Marshal(tidy.Sequence(tidy.Int(1))); err == nil {
		t.Error("Marshal(sequence) should return error")
	}
}

func TestExtJSON_Relaxed(t *testing.T) {
	c := NewExtJSON(false)

	data, err := c.Marshal(sample())
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	want := `{"z":1,"a":null,"m":["x"]}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}

	var restored tidy.Value
	if err := c.Unmarshal(data, &restored); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	r, _ := restored.AsRecord()
	if r.Len() != 3 {
		t.Errorf("Len() = %d, want 3", r.Len())
	}
}

func TestExtJSON_Canonical(t *testing.T) {
	c := NewExtJSON(true)

	data, err := c.Marshal(sample())
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if !strings.Contains(string(data), `"$numberLong":"1"`) {
		t.Errorf("canonical output should keep the int64 type: %s", data)
	}
}

func TestUnmarshalInvalid(t *testing.T) {
	c := New()

	var v tidy.Value
	err := c.Unmarshal([]byte("invalid bson"), &v)
	if err == nil {
		t.Error("Unmarshal(invalid) should return error")
	}
}
