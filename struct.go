package tidy

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/zoobzio/sentinel"
)

func init() {
	// Field names come from the json tag when present.
	sentinel.Tag("json")
}

// FromStruct converts a struct into a Record using sentinel field metadata.
//
// Each exported field becomes one key, named by its json tag when present
// and by the Go field name otherwise. Fields tagged `json:"-"` are skipped.
// Nested structs become nested records; nil pointers become Null. Types
// implementing Recordable supply their own record.
func FromStruct[T any](v T) (*Record, error) {
	if r, ok := any(v).(Recordable); ok && !isNilPointer(r) {
		return r.TidyRecord()
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, fmt.Errorf("%w: nil %T", ErrNotRecord, v)
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %T", ErrNotRecord, v)
	}

	var meta sentinel.Metadata
	if reflect.TypeFor[T]().Kind() == reflect.Struct {
		meta = sentinel.Scan[T]()
	} else {
		meta = scanType(rv.Type())
	}
	return recordFromMetadata(rv, meta)
}

// structValue converts a struct reached through ValueOf.
func structValue(rv reflect.Value) (Value, error) {
	r, err := recordFromMetadata(rv, scanType(rv.Type()))
	if err != nil {
		return Value{}, err
	}
	return RecordValue(r), nil
}

func recordFromMetadata(rv reflect.Value, meta sentinel.Metadata) (*Record, error) {
	r := NewRecord()
	for _, field := range meta.Fields {
		name, skip := fieldName(field)
		if skip {
			continue
		}

		fv := rv.FieldByIndex(field.Index)
		if !fv.CanInterface() {
			continue
		}

		v, err := ValueOf(fv.Interface())
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", field.Name, err)
		}
		r.Set(name, v)
	}
	return r, nil
}

// fieldName returns the record key for a field and whether to skip it.
func fieldName(field sentinel.FieldMetadata) (string, bool) {
	tag, ok := field.Tags["json"]
	if !ok {
		return field.Name, false
	}
	name, _, _ := strings.Cut(tag, ",")
	switch name {
	case "-":
		return "", true
	case "":
		return field.Name, false
	}
	return name, false
}

// scanType builds metadata for a struct type reached at runtime.
// Registered types come from sentinel; others are scanned directly.
func scanType(rt reflect.Type) sentinel.Metadata {
	if meta, ok := sentinel.Lookup(rt.String()); ok {
		return meta
	}

	meta := sentinel.Metadata{
		TypeName:    rt.Name(),
		PackageName: rt.PkgPath(),
		Fields:      make([]sentinel.FieldMetadata, 0, rt.NumField()),
	}

	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}

		tags := make(map[string]string)
		if val, ok := sf.Tag.Lookup("json"); ok {
			tags["json"] = val
		}

		fm := sentinel.FieldMetadata{
			Name:        sf.Name,
			Type:        sf.Type.String(),
			ReflectType: sf.Type,
			Index:       sf.Index,
			Tags:        tags,
		}

		switch sf.Type.Kind() {
		case reflect.Struct:
			fm.Kind = sentinel.KindStruct
		case reflect.Ptr:
			fm.Kind = sentinel.KindPointer
		case reflect.Slice, reflect.Array:
			fm.Kind = sentinel.KindSlice
		case reflect.Map:
			fm.Kind = sentinel.KindMap
		case reflect.Interface:
			fm.Kind = sentinel.KindInterface
		default:
			fm.Kind = sentinel.KindScalar
		}

		meta.Fields = append(meta.Fields, fm)
	}

	return meta
}
