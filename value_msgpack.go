package tidy

import (
	"fmt"
	"math"

	"github.com/spf13/cast"
	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"
)

var (
	_ msgpack.CustomEncoder = Value{}
	_ msgpack.CustomDecoder = (*Value)(nil)
)

// EncodeMsgpack writes v with record keys in order. Whole numbers are
// written as integers. Undefined entries are omitted from records.
func (v Value) EncodeMsgpack(enc *msgpack.Encoder) error {
	switch v.kind {
	case KindBool:
		return enc.EncodeBool(v.b)
	case KindNumber:
		if n, ok := integral(v.n); ok && !(n == 0 && math.Signbit(v.n)) {
			return enc.EncodeInt(n)
		}
		return enc.EncodeFloat64(v.n)
	case KindString:
		return enc.EncodeString(v.s)
	case KindRecord:
		entries := v.rec.Entries()
		defined := entries[:0:0]
		for _, e := range entries {
			if e.Value.kind != KindUndefined {
				defined = append(defined, e)
			}
		}
		if err := enc.EncodeMapLen(len(defined)); err != nil {
			return err
		}
		for _, e := range defined {
			if err := enc.EncodeString(e.Key); err != nil {
				return err
			}
			if err := e.Value.EncodeMsgpack(enc); err != nil {
				return err
			}
		}
		return nil
	case KindSequence:
		elems := v.Elems()
		if err := enc.EncodeArrayLen(len(elems)); err != nil {
			return err
		}
		for _, e := range elems {
			if err := e.EncodeMsgpack(enc); err != nil {
				return err
			}
		}
		return nil
	}
	return enc.EncodeNil()
}

// DecodeMsgpack reads a value, keeping map keys in stream order.
func (v *Value) DecodeMsgpack(dec *msgpack.Decoder) error {
	out, err := decodeMsgpack(dec)
	if err != nil {
		return err
	}
	*v = out
	return nil
}

func decodeMsgpack(dec *msgpack.Decoder) (Value, error) {
	c, err := dec.PeekCode()
	if err != nil {
		return Value{}, err
	}

	switch {
	case msgpcode.IsFixedMap(c) || c == msgpcode.Map16 || c == msgpcode.Map32:
		n, err := dec.DecodeMapLen()
		if err != nil {
			return Value{}, err
		}
		r := NewRecord()
		for i := 0; i < n; i++ {
			rawKey, err := dec.DecodeInterfaceLoose()
			if err != nil {
				return Value{}, err
			}
			key, err := cast.ToStringE(rawKey)
			if err != nil {
				return Value{}, fmt.Errorf("%w: map key %T", ErrUnsupportedType, rawKey)
			}
			child, err := decodeMsgpack(dec)
			if err != nil {
				return Value{}, err
			}
			r.Set(key, child)
		}
		return RecordValue(r), nil
	case msgpcode.IsFixedArray(c) || c == msgpcode.Array16 || c == msgpcode.Array32:
		n, err := dec.DecodeArrayLen()
		if err != nil {
			return Value{}, err
		}
		elems := make([]Value, n)
		for i := range elems {
			if elems[i], err = decodeMsgpack(dec); err != nil {
				return Value{}, err
			}
		}
		return Sequence(elems...), nil
	}

	x, err := dec.DecodeInterfaceLoose()
	if err != nil {
		return Value{}, err
	}
	return ValueOf(x)
}
