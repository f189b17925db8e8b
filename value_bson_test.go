package tidy

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestValue_BSONRoundTrip(t *testing.T) {
	in := RecordValue(NewRecord(
		Entry{Key: "z", Value: Int(1)},
		Entry{Key: "a", Value: Null()},
		Entry{Key: "f", Value: Number(2.5)},
		Entry{Key: "nested", Value: RecordValue(NewRecord(
			Entry{Key: "b", Value: String("x")},
		))},
		Entry{Key: "list", Value: Sequence(Null(), Int(2))},
	))

	data, err := bson.Marshal(in)
	require.NoError(t, err)

	var out Value
	require.NoError(t, bson.Unmarshal(data, &out))

	r, ok := out.AsRecord()
	require.True(t, ok)
	assert.Equal(t, []string{"z", "a", "f", "nested", "list"}, r.Keys())

	z, _ := r.Get("z")
	assert.True(t, z.Equal(Int(1)))
	list, _ := r.Get("list")
	assert.Equal(t, ",2", ToString(list))
}

func TestValue_BSONUndefinedRoundTrip(t *testing.T) {
	in := RecordValue(NewRecord(Entry{Key: "u", Value: Undefined()}))

	data, err := bson.Marshal(in)
	require.NoError(t, err)

	var out Value
	require.NoError(t, bson.Unmarshal(data, &out))

	r, _ := out.AsRecord()
	u, ok := r.Get("u")
	assert.True(t, ok)
	assert.True(t, u.IsUndefined())
}

func TestValue_MarshalBSON_NotRecord(t *testing.T) {
	_, err := Sequence(Int(1)).MarshalBSON()
	assert.True(t, errors.Is(err, ErrNotRecord))
}
