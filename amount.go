package tidy

import (
	"context"
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Defaults used by FormatAmount and by NewFormatter without options.
const (
	DefaultLocale   = "en-US"
	DefaultCurrency = "USD"
)

// Formatter renders amounts as currency strings for one locale and one
// currency. Formatters are immutable and safe for concurrent use.
type Formatter struct {
	tag     language.Tag
	unit    currency.Unit
	scale   int
	symbol  string
	printer *message.Printer
}

// FormatterOption configures a Formatter.
type FormatterOption func(*formatterConfig) error

type formatterConfig struct {
	tag  language.Tag
	unit currency.Unit
}

// WithLocale sets the BCP 47 locale used for symbols and digit grouping.
func WithLocale(locale string) FormatterOption {
	return func(c *formatterConfig) error {
		tag, err := language.Parse(locale)
		if err != nil {
			return newConfigError(ErrUnknownLocale, "locale", locale)
		}
		c.tag = tag
		return nil
	}
}

// WithCurrency sets the ISO 4217 currency code.
func WithCurrency(code string) FormatterOption {
	return func(c *formatterConfig) error {
		unit, err := currency.ParseISO(code)
		if err != nil {
			return newConfigError(ErrUnknownCurrency, "currency", code)
		}
		c.unit = unit
		return nil
	}
}

// NewFormatter creates a Formatter. Without options it formats US dollars
// in the en-US locale.
func NewFormatter(opts ...FormatterOption) (*Formatter, error) {
	cfg := formatterConfig{tag: language.AmericanEnglish, unit: currency.USD}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	scale, _ := currency.Standard.Rounding(cfg.unit)
	printer := message.NewPrinter(cfg.tag)
	f := &Formatter{
		tag:     cfg.tag,
		unit:    cfg.unit,
		scale:   scale,
		symbol:  printer.Sprint(currency.Symbol(cfg.unit)),
		printer: printer,
	}

	emitFormatterCreated(context.Background(), f.Locale(), f.Currency())
	return f, nil
}

// Locale returns the formatter's locale tag.
func (f *Formatter) Locale() string { return f.tag.String() }

// Currency returns the formatter's ISO 4217 code.
func (f *Formatter) Currency() string { return f.unit.String() }

// Symbol returns the currency symbol for the formatter's locale.
func (f *Formatter) Symbol() string { return f.symbol }

// Scale returns the number of fraction digits rendered.
func (f *Formatter) Scale() int { return f.scale }

// Amount formats amount as a currency string. Null, Undefined and the
// empty string yield Null; anything else is coerced with ToNumber.
func (f *Formatter) Amount(amount Value) Value {
	if !IsValidInputValue(amount) {
		return Null()
	}
	return String(f.Format(ToNumber(amount)))
}

// Format renders n with the currency symbol, locale digit grouping and the
// currency's standard number of fraction digits. Halves round away from
// zero. Negative values carry a leading minus sign.
func (f *Formatter) Format(n float64) string {
	sign := ""
	if math.Signbit(n) && !math.IsNaN(n) {
		sign = "-"
	}
	switch {
	case math.IsNaN(n):
		return f.symbol + "NaN"
	case math.IsInf(n, 0):
		return sign + f.symbol + "∞"
	}

	rounded := decimal.NewFromFloat(math.Abs(n)).Round(int32(f.scale))
	digits := f.printer.Sprint(number.Decimal(rounded.InexactFloat64(), number.Scale(f.scale)))
	return sign + f.symbol + digits
}

var defaultFormatter = mustFormatter()

func mustFormatter(opts ...FormatterOption) *Formatter {
	f, err := NewFormatter(opts...)
	if err != nil {
		panic(err)
	}
	return f
}

// FormatAmount formats amount with the default formatter (en-US, USD).
// Null, Undefined and the empty string yield Null.
func FormatAmount(amount Value) Value {
	return defaultFormatter.Amount(amount)
}
