package tidy

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for tidy events.
var (
	SignalFormatterCreated = capitan.NewSignal("tidy.formatter.created", "Formatter instantiated")
	SignalSanitizeStart    = capitan.NewSignal("tidy.sanitize.start", "Sanitize operation beginning")
	SignalSanitizeComplete = capitan.NewSignal("tidy.sanitize.complete", "Sanitize operation finished")
)

// Keys for typed event data.
var (
	KeyContentType  = capitan.NewStringKey("content_type")
	KeyLocale       = capitan.NewStringKey("locale")
	KeyCurrency     = capitan.NewStringKey("currency")
	KeySize         = capitan.NewIntKey("size")
	KeyDuration     = capitan.NewDurationKey("duration")
	KeyError        = capitan.NewErrorKey("error")
	KeyRemovedCount = capitan.NewIntKey("removed_count")
)

// emitFormatterCreated emits an event when a formatter is created.
func emitFormatterCreated(ctx context.Context, locale, currency string) {
	capitan.Emit(ctx, SignalFormatterCreated,
		KeyLocale.Field(locale),
		KeyCurrency.Field(currency),
	)
}

// emitSanitizeStart emits an event when sanitize begins.
func emitSanitizeStart(ctx context.Context, contentType string, size int) {
	capitan.Emit(ctx, SignalSanitizeStart,
		KeyContentType.Field(contentType),
		KeySize.Field(size),
	)
}

// emitSanitizeComplete emits an event when sanitize finishes.
func emitSanitizeComplete(ctx context.Context, contentType string, size int, duration time.Duration, removed int, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeySize.Field(size),
		KeyDuration.Field(duration),
		KeyRemovedCount.Field(removed),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalSanitizeComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalSanitizeComplete, fields...)
	}
}
