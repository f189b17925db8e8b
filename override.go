package tidy

import "reflect"

// Recordable lets a type bypass reflection-based struct conversion.
// When a value implements Recordable, FromStruct and ValueOf call
// TidyRecord instead of scanning its fields.
//
// Implementations suit hot paths and types whose record form differs from
// their field layout, such as a money type that records an amount and a
// currency code.
type Recordable interface {
	// TidyRecord returns the record form of the receiver. A nil record
	// converts to Null.
	TidyRecord() (*Record, error)
}

func recordableValue(r Recordable) (Value, error) {
	if isNilPointer(r) {
		return Null(), nil
	}
	rec, err := r.TidyRecord()
	if err != nil {
		return Value{}, err
	}
	return RecordValue(rec), nil
}

func isNilPointer(x any) bool {
	rv := reflect.ValueOf(x)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
