package tidy_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zoobzio/tidy"
	tidytest "github.com/zoobzio/tidy/testing"
)

type address struct {
	City   string `json:"city"`
	Postal string `json:"postal,omitempty"`
}

type invoice struct {
	ID       int            `json:"id"`
	Issued   time.Time      `json:"issued"`
	Billing  address        `json:"billing"`
	Shipping *address       `json:"shipping"`
	Notes    map[string]any `json:"notes"`
	Untagged string
	hidden   string
}

func TestFromStruct_SaleEntry(t *testing.T) {
	r, err := tidy.FromStruct(tidytest.SampleSale())
	require.NoError(t, err)

	assert.Equal(t, []string{"account", "amount", "customer", "location", "currency", "tags"}, r.Keys())

	loc, _ := r.Get("location")
	assert.True(t, loc.IsNull())

	tidy.RemoveNullValues(r)
	assert.Equal(t, []string{"account", "amount", "currency", "tags"}, r.Keys())
	tidytest.RequireNoBlocked(t, r)

	tags, _ := r.Get("tags")
	assert.Len(t, tags.Elems(), 2, "sequences are left untouched")
}

func TestFromStruct_Nested(t *testing.T) {
	inv := invoice{
		ID:      7,
		Issued:  time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		Billing: address{City: "Oslo"},
		hidden:  "secret",
	}

	r, err := tidy.FromStruct(&inv)
	require.NoError(t, err)

	want := map[string]any{
		"id":       7.0,
		"issued":   "2024-01-02T03:04:05Z",
		"billing":  map[string]any{"city": "Oslo", "postal": ""},
		"shipping": nil,
		"notes":    nil,
		"Untagged": "",
	}
	if diff := cmp.Diff(want, tidy.RecordValue(r).Interface()); diff != "" {
		t.Errorf("FromStruct() mismatch (-want +got):\n%s", diff)
	}

	tidy.RemoveNullValues(r)
	assert.Equal(t, []string{"id", "issued", "billing"}, r.Keys())
}

func TestFromStruct_NotStruct(t *testing.T) {
	_, err := tidy.FromStruct(42)
	assert.True(t, errors.Is(err, tidy.ErrNotRecord))

	var nilInv *invoice
	_, err = tidy.FromStruct(nilInv)
	assert.True(t, errors.Is(err, tidy.ErrNotRecord))
}

func TestValueOf_Struct(t *testing.T) {
	v, err := tidy.ValueOf([]address{{City: "Lima", Postal: "15001"}})
	require.NoError(t, err)

	elems := v.Elems()
	require.Len(t, elems, 1)
	r, ok := elems[0].AsRecord()
	require.True(t, ok)
	assert.Equal(t, []string{"city", "postal"}, r.Keys())
}
