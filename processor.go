package tidy

import (
	"context"
	"time"
)

// Sanitizer strips blocked values from encoded records.
//
// Sanitize decodes input with the configured codec, applies
// RemoveNullValues and encodes the result with the same codec.
// A Sanitizer holds no mutable state and is safe for concurrent use.
type Sanitizer struct {
	codec Codec
}

// NewSanitizer creates a Sanitizer for the given codec.
func NewSanitizer(codec Codec) *Sanitizer {
	return &Sanitizer{codec: codec}
}

// ContentType returns the content type of the underlying codec.
func (s *Sanitizer) ContentType() string {
	return s.codec.ContentType()
}

// Decode unmarshals data into a record. Input whose top level is not a
// record fails with ErrNotRecord.
func (s *Sanitizer) Decode(data []byte) (*Record, error) {
	var v Value
	if err := s.codec.Unmarshal(data, &v); err != nil {
		return nil, newCodecError(ErrUnmarshal, s.codec.ContentType(), err)
	}
	r, ok := v.AsRecord()
	if !ok {
		return nil, newCodecError(ErrNotRecord, s.codec.ContentType(), nil)
	}
	return r, nil
}

// Encode marshals r with the underlying codec.
func (s *Sanitizer) Encode(r *Record) ([]byte, error) {
	data, err := s.codec.Marshal(RecordValue(r))
	if err != nil {
		return nil, newCodecError(ErrMarshal, s.codec.ContentType(), err)
	}
	return data, nil
}

// Sanitize decodes data, removes every Null, Undefined and empty-string
// entry reachable through nested records, and re-encodes the result.
// Sequences pass through unchanged.
func (s *Sanitizer) Sanitize(ctx context.Context, data []byte) ([]byte, error) {
	start := time.Now()
	emitSanitizeStart(ctx, s.codec.ContentType(), len(data))

	var (
		retErr  error
		retData []byte
		removed int
	)
	defer func() {
		emitSanitizeComplete(ctx, s.codec.ContentType(), len(retData),
			time.Since(start), removed, retErr)
	}()

	r, err := s.Decode(data)
	if err != nil {
		retErr = err
		return nil, retErr
	}

	removed = stripRecord(r)

	retData, retErr = s.Encode(r)
	if retErr != nil {
		return nil, retErr
	}
	return retData, nil
}
