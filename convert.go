package tidy

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ValueOf converts a native Go value into a Value.
//
// Maps with string keys become records; unordered maps are keyed in sorted
// order, bson.D keeps document order. Slices and arrays become sequences.
// Structs become records via FromStruct unless they implement Recordable.
// Nil pointers, nil interfaces and nil maps become Null.
func ValueOf(x any) (Value, error) {
	switch t := x.(type) {
	case nil:
		return Null(), nil
	case Value:
		return t, nil
	case *Record:
		return RecordValue(t), nil
	case string:
		return String(t), nil
	case []byte:
		return String(string(t)), nil
	case bool:
		return Bool(t), nil
	case float64:
		return Number(t), nil
	case json.Number:
		return Number(parseNumber(t.String())), nil
	case decimal.Decimal:
		return Number(t.InexactFloat64()), nil
	case time.Time:
		return String(t.UTC().Format(time.RFC3339Nano)), nil
	case primitive.Undefined:
		return Undefined(), nil
	case primitive.Null:
		return Null(), nil
	case primitive.DateTime:
		return String(t.Time().UTC().Format(time.RFC3339Nano)), nil
	case primitive.ObjectID:
		return String(t.Hex()), nil
	case primitive.Decimal128:
		d, err := decimal.NewFromString(t.String())
		if err != nil {
			return Number(parseNumber(t.String())), nil
		}
		return Number(d.InexactFloat64()), nil
	case bson.D:
		return recordFromEntries(len(t), func(i int) (string, any) { return t[i].Key, t[i].Value })
	case map[string]any:
		return recordFromMap(t)
	case bson.M:
		return recordFromMap(t)
	case []any:
		return sequenceFrom(len(t), func(i int) any { return t[i] })
	case bson.A:
		return sequenceFrom(len(t), func(i int) any { return t[i] })
	case Recordable:
		return recordableValue(t)
	}

	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		n, err := cast.ToFloat64E(rv.Interface())
		if err != nil {
			// named numeric types are not known to cast
			if rv.CanInt() {
				return Number(float64(rv.Int())), nil
			}
			if rv.CanUint() {
				return Number(float64(rv.Uint())), nil
			}
			return Number(rv.Float()), nil
		}
		return Number(n), nil
	case reflect.String:
		return String(rv.String()), nil
	case reflect.Bool:
		return Bool(rv.Bool()), nil
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null(), nil
		}
		return ValueOf(rv.Elem().Interface())
	case reflect.Slice:
		if rv.IsNil() {
			return Null(), nil
		}
		return sequenceFrom(rv.Len(), func(i int) any { return rv.Index(i).Interface() })
	case reflect.Array:
		return sequenceFrom(rv.Len(), func(i int) any { return rv.Index(i).Interface() })
	case reflect.Map:
		if rv.IsNil() {
			return Null(), nil
		}
		m := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			key, err := mapKey(iter.Key())
			if err != nil {
				return Value{}, err
			}
			m[key] = iter.Value().Interface()
		}
		return recordFromMap(m)
	case reflect.Struct:
		return structValue(rv)
	}

	return Value{}, fmt.Errorf("%w: %T", ErrUnsupportedType, x)
}

// mapKey renders a map key as a record key. Named string types keep their
// underlying text.
func mapKey(k reflect.Value) (string, error) {
	if k.Kind() == reflect.String {
		return k.String(), nil
	}
	s, err := cast.ToStringE(k.Interface())
	if err != nil {
		return "", fmt.Errorf("%w: map key %s", ErrUnsupportedType, k.Type())
	}
	return s, nil
}

func recordFromMap[M ~map[string]any](m M) (Value, error) {
	if m == nil {
		return Null(), nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return recordFromEntries(len(keys), func(i int) (string, any) { return keys[i], m[keys[i]] })
}

func recordFromEntries(n int, at func(int) (string, any)) (Value, error) {
	r := NewRecord()
	for i := 0; i < n; i++ {
		k, raw := at(i)
		v, err := ValueOf(raw)
		if err != nil {
			return Value{}, fmt.Errorf("key %q: %w", k, err)
		}
		r.Set(k, v)
	}
	return RecordValue(r), nil
}

func sequenceFrom(n int, at func(int) any) (Value, error) {
	elems := make([]Value, n)
	for i := range elems {
		v, err := ValueOf(at(i))
		if err != nil {
			return Value{}, fmt.Errorf("index %d: %w", i, err)
		}
		elems[i] = v
	}
	return Sequence(elems...), nil
}

// Interface converts v back into native Go values: records become
// map[string]any, sequences become []any, Null and Undefined become nil.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindNumber:
		return v.n
	case KindString:
		return v.s
	case KindRecord:
		m := make(map[string]any, v.rec.Len())
		for _, e := range v.rec.Entries() {
			m[e.Key] = e.Value.Interface()
		}
		return m
	case KindSequence:
		elems := v.Elems()
		out := make([]any, len(elems))
		for i, e := range elems {
			out[i] = e.Interface()
		}
		return out
	}
	return nil
}

// Document converts v into BSON-ready values. Records become bson.D in key
// order, sequences become bson.A, whole numbers become int64 and Undefined
// becomes primitive.Undefined.
func (v Value) Document() any {
	switch v.kind {
	case KindUndefined:
		return primitive.Undefined{}
	case KindNumber:
		if n, ok := integral(v.n); ok && !(n == 0 && math.Signbit(v.n)) {
			return n
		}
		return v.n
	case KindRecord:
		d := make(bson.D, 0, v.rec.Len())
		for _, e := range v.rec.Entries() {
			d = append(d, bson.E{Key: e.Key, Value: e.Value.Document()})
		}
		return d
	case KindSequence:
		elems := v.Elems()
		out := make(bson.A, len(elems))
		for i, e := range elems {
			out[i] = e.Document()
		}
		return out
	}
	return v.Interface()
}
