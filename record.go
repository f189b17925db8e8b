package tidy

import "slices"

// Entry is a single key/value pair of a Record.
type Entry struct {
	Key   string
	Value Value
}

// Record is an ordered mapping from string keys to values.
//
// Keys keep their insertion order. Setting an existing key replaces its
// value without moving it. A Record is not safe for concurrent mutation.
type Record struct {
	keys   []string
	values map[string]Value
}

// NewRecord returns a record holding the given entries in order. Later
// duplicates replace earlier ones.
func NewRecord(entries ...Entry) *Record {
	r := &Record{
		keys:   make([]string, 0, len(entries)),
		values: make(map[string]Value, len(entries)),
	}
	for _, e := range entries {
		r.Set(e.Key, e.Value)
	}
	return r
}

// Len returns the number of keys.
func (r *Record) Len() int {
	if r == nil {
		return 0
	}
	return len(r.keys)
}

// Keys returns a copy of the keys in order.
func (r *Record) Keys() []string {
	if r == nil {
		return nil
	}
	return slices.Clone(r.keys)
}

// Get returns the value for key. Missing keys yield Undefined and false.
func (r *Record) Get(key string) (Value, bool) {
	if r == nil {
		return Undefined(), false
	}
	v, ok := r.values[key]
	return v, ok
}

// Has reports whether key is present, even if it maps to Undefined.
func (r *Record) Has(key string) bool {
	_, ok := r.Get(key)
	return ok
}

// Set stores v under key and returns the record for chaining.
func (r *Record) Set(key string, v Value) *Record {
	if r.values == nil {
		r.values = make(map[string]Value)
	}
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = v
	return r
}

// Delete removes key. Missing keys are ignored.
func (r *Record) Delete(key string) {
	if r == nil {
		return
	}
	if _, ok := r.values[key]; !ok {
		return
	}
	delete(r.values, key)
	if i := slices.Index(r.keys, key); i >= 0 {
		r.keys = slices.Delete(r.keys, i, i+1)
	}
}

// Entries returns the entries in order.
func (r *Record) Entries() []Entry {
	if r == nil {
		return nil
	}
	out := make([]Entry, len(r.keys))
	for i, k := range r.keys {
		out[i] = Entry{Key: k, Value: r.values[k]}
	}
	return out
}
