package benchmarks

import (
	"context"
	"testing"

	"github.com/zoobzio/tidy"
	"github.com/zoobzio/tidy/json"
	"github.com/zoobzio/tidy/msgpack"
	tidytest "github.com/zoobzio/tidy/testing"
)

func BenchmarkRemoveNullValues(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		tidy.RemoveNullValues(tidytest.SampleRecord())
	}
}

func BenchmarkIsValidInputValue(b *testing.B) {
	v := tidy.String("hello")
	for i := 0; i < b.N; i++ {
		_ = tidy.IsValidInputValue(v)
	}
}

func BenchmarkFormatAmount(b *testing.B) {
	v := tidy.Number(1234567.891)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = tidy.FormatAmount(v)
	}
}

func BenchmarkCommaSeparatedValue(b *testing.B) {
	v := tidy.Int(1234567890)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = tidy.CommaSeparatedValue(v)
	}
}

func BenchmarkSanitizer_JSON(b *testing.B) {
	s := tidy.NewSanitizer(json.New())
	data := []byte(tidytest.SampleJSON)
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.Sanitize(ctx, data)
	}
}

func BenchmarkSanitizer_MessagePack(b *testing.B) {
	codec := msgpack.New()
	s := tidy.NewSanitizer(codec)
	data, err := codec.Marshal(tidy.RecordValue(tidytest.SampleRecord()))
	if err != nil {
		b.Fatal(err)
	}
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.Sanitize(ctx, data)
	}
}
