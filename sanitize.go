package tidy

import "go.mongodb.org/mongo-driver/bson"

// RemoveNullValues deletes every key of r whose value is Null, Undefined or
// the empty string, recursing into nested records in place. Sequences are
// left untouched, including any blocked elements they hold. The same
// pointer is returned.
//
// The record graph must be acyclic.
func RemoveNullValues(r *Record) *Record {
	stripRecord(r)
	return r
}

// stripRecord implements RemoveNullValues and returns the number of keys
// deleted at every depth.
func stripRecord(r *Record) int {
	if r == nil {
		return 0
	}
	removed := 0
	for _, key := range r.Keys() {
		v, _ := r.Get(key)
		if nested, ok := v.AsRecord(); ok {
			removed += stripRecord(nested)
			continue
		}
		if !IsValidInputValue(v) {
			r.Delete(key)
			removed++
		}
	}
	return removed
}

// RemoveNullValuesMap applies the RemoveNullValues rule to a native
// document: nil and "" are deleted, nested maps are recursed into, slices
// are left untouched. The same map is returned.
func RemoveNullValuesMap(m map[string]any) map[string]any {
	stripMap(m)
	return m
}

func stripMap(m map[string]any) int {
	removed := 0
	for key, v := range m {
		switch nested := v.(type) {
		case map[string]any:
			removed += stripMap(nested)
		case bson.M:
			removed += stripMap(nested)
		case nil:
			delete(m, key)
			removed++
		case string:
			if nested == "" {
				delete(m, key)
				removed++
			}
		}
	}
	return removed
}
