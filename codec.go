package tidy

// Codec provides content-type aware marshaling.
//
// Codecs are handed a *Value to unmarshal into and a Value to marshal.
// Value implements the marshaler interfaces of every bundled codec, so
// record keys keep their order through a round trip.
type Codec interface {
	// ContentType returns the MIME type for this codec (e.g., "application/json").
	ContentType() string

	// Marshal encodes v into bytes.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes data into v.
	Unmarshal(data []byte, v any) error
}
