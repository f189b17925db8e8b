package tidy

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrUnmarshal indicates the codec failed to unmarshal input data.
	ErrUnmarshal = errors.New("unmarshal failed")

	// ErrMarshal indicates the codec failed to marshal output data.
	ErrMarshal = errors.New("marshal failed")

	// ErrNotRecord indicates decoded input was not a record at the top level.
	ErrNotRecord = errors.New("not a record")

	// ErrUnsupportedType indicates a native value has no Value representation.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrUnknownCurrency indicates a currency code is not a known ISO 4217 code.
	ErrUnknownCurrency = errors.New("unknown currency")

	// ErrUnknownLocale indicates a locale is not a well-formed BCP 47 tag.
	ErrUnknownLocale = errors.New("unknown locale")
)

// ConfigError represents an invalid formatter or sanitizer option.
// It wraps a sentinel error with the option name and rejected value.
type ConfigError struct {
	Err    error  // Underlying sentinel error (ErrUnknownCurrency, etc.)
	Option string // Option that was rejected
	Value  string // Rejected value
}

func (e *ConfigError) Error() string {
	if e.Option != "" && e.Value != "" {
		return fmt.Sprintf("%s %q (option %s)", e.Err.Error(), e.Value, e.Option)
	}
	if e.Value != "" {
		return fmt.Sprintf("%s %q", e.Err.Error(), e.Value)
	}
	if e.Option != "" {
		return fmt.Sprintf("%s (option %s)", e.Err.Error(), e.Option)
	}
	return e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// CodecError represents a marshal/unmarshal error.
type CodecError struct {
	Err         error  // Underlying sentinel error (ErrMarshal, ErrUnmarshal, ErrNotRecord)
	ContentType string // Content type of the codec involved
	Cause       error  // Original error from the codec
}

func (e *CodecError) Error() string {
	msg := e.Err.Error()
	if e.ContentType != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.ContentType)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

// newConfigError creates a ConfigError for a rejected option value.
func newConfigError(sentinel error, option, value string) error {
	return &ConfigError{
		Err:    sentinel,
		Option: option,
		Value:  value,
	}
}

// newCodecError creates a CodecError for marshal/unmarshal failures.
func newCodecError(sentinel error, contentType string, cause error) error {
	return &CodecError{
		Err:         sentinel,
		ContentType: contentType,
		Cause:       cause,
	}
}
