package tidy

import (
	"sync"
)

// registryKey combines locale and currency for cache lookup.
type registryKey struct {
	locale   string
	currency string
}

var (
	registry   = make(map[registryKey]*Formatter)
	registryMu sync.RWMutex
)

// Use returns a cached formatter or builds a new one.
// The formatter is cached by locale and currency code as given.
func Use(locale, currencyCode string) (*Formatter, error) {
	key := registryKey{locale: locale, currency: currencyCode}

	// Fast path: read-lock cache check
	registryMu.RLock()
	if cached, ok := registry[key]; ok {
		registryMu.RUnlock()
		return cached, nil
	}
	registryMu.RUnlock()

	// Slow path: build and cache with write-lock
	registryMu.Lock()
	defer registryMu.Unlock()

	// Double-check pattern
	if cached, ok := registry[key]; ok {
		return cached, nil
	}

	f, err := NewFormatter(WithLocale(locale), WithCurrency(currencyCode))
	if err != nil {
		return nil, err
	}

	registry[key] = f
	return f, nil
}

// Reset clears the formatter registry.
// This is primarily useful for test isolation.
func Reset() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[registryKey]*Formatter)
}
