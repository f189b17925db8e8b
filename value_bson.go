package tidy

import (
	"go.mongodb.org/mongo-driver/bson"
)

// MarshalBSON encodes a record value as a BSON document with keys in order.
// Only records have a BSON document form.
func (v Value) MarshalBSON() ([]byte, error) {
	if v.kind != KindRecord {
		return nil, newCodecError(ErrNotRecord, "application/bson", nil)
	}
	return bson.Marshal(v.Document())
}

// UnmarshalBSON decodes a BSON document into v, keeping keys in order.
func (v *Value) UnmarshalBSON(data []byte) error {
	var d bson.D
	if err := bson.Unmarshal(data, &d); err != nil {
		return err
	}
	out, err := ValueOf(d)
	if err != nil {
		return err
	}
	*v = out
	return nil
}
