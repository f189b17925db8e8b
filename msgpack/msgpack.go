// Package msgpack provides a MessagePack codec implementation.
package msgpack

import (
	"bytes"
	"reflect"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/zoobzio/tidy"
)

// structTag is read for struct field names so structs encode under the
// same keys as tidy.FromStruct produces.
const structTag = "json"

// msgpackCodec implements tidy.Codec for MessagePack.
type msgpackCodec struct{}

// New returns a MessagePack codec.
func New() tidy.Codec {
	return &msgpackCodec{}
}

// ContentType returns the MIME type for MessagePack.
func (c *msgpackCodec) ContentType() string {
	return "application/msgpack"
}

// Marshal encodes v as MessagePack using the smallest integer encodings.
// Native string-keyed maps are converted with tidy.ValueOf so their keys
// are written in sorted order.
func (c *msgpackCodec) Marshal(v any) ([]byte, error) {
	if isStringMap(v) {
		tv, err := tidy.ValueOf(v)
		if err != nil {
			return nil, err
		}
		v = tv
	}

	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.UseCompactInts(true)
	enc.SetSortMapKeys(true)
	enc.SetCustomStructTag(structTag)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func isStringMap(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String
}

// Unmarshal decodes MessagePack data into v.
func (c *msgpackCodec) Unmarshal(data []byte, v any) error {
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	dec.SetCustomStructTag(structTag)
	return dec.Decode(v)
}
