package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/zoobzio/tidy"
)

const (
	envKeyLocale   = "TIDY_LOCALE"
	envKeyCurrency = "TIDY_CURRENCY"
	envKeyFormat   = "TIDY_FORMAT"
	envKeyLogLevel = "TIDY_LOG_LEVEL"

	defaultFormat   = formatJSON
	defaultLogLevel = "warn"
	defaultEnvFile  = ".env"
)

const (
	flagLocale   = "locale"
	flagCurrency = "currency"
	flagFormat   = "format"
	flagLogLevel = "log-level"
	flagEnvFile  = "env-file"
)

type cliConfig struct {
	Locale   string
	Currency string
	Format   string
	LogLevel zerolog.Level
}

// resolveConfig reads the environment and applies command-line flags over
// it. Unset variables fall back to defaults.
func resolveConfig(cmd *cobra.Command) (cliConfig, error) {
	locale := envOrDefault(envKeyLocale, tidy.DefaultLocale)
	currency := envOrDefault(envKeyCurrency, tidy.DefaultCurrency)
	format := envOrDefault(envKeyFormat, defaultFormat)
	logLevel := envOrDefault(envKeyLogLevel, defaultLogLevel)

	overrideFromFlag(cmd, flagLocale, &locale)
	overrideFromFlag(cmd, flagCurrency, &currency)
	overrideFromFlag(cmd, flagFormat, &format)
	overrideFromFlag(cmd, flagLogLevel, &logLevel)

	return buildConfig(locale, currency, format, logLevel)
}

func buildConfig(locale, currency, format, logLevel string) (cliConfig, error) {
	format = strings.ToLower(format)
	if _, known := codecsByFormat[format]; !known {
		return cliConfig{}, fmt.Errorf("invalid %s %q (want one of %s)", envKeyFormat, format, strings.Join(knownFormats(), ", "))
	}

	level, parseLevelError := zerolog.ParseLevel(strings.ToLower(logLevel))
	if parseLevelError != nil {
		return cliConfig{}, fmt.Errorf("invalid %s: %w", envKeyLogLevel, parseLevelError)
	}

	return cliConfig{
		Locale:   locale,
		Currency: strings.ToUpper(currency),
		Format:   format,
		LogLevel: level,
	}, nil
}

func envOrDefault(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func overrideFromFlag(cmd *cobra.Command, name string, target *string) {
	flag := cmd.Flag(name)
	if flag == nil || !flag.Changed {
		return
	}
	*target = strings.TrimSpace(flag.Value.String())
}

// loadEnvFile reads KEY=value lines from path into the environment.
// Variables already set win. A missing file is not an error.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if loadError := godotenv.Load(path); loadError != nil {
		if errors.Is(loadError, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, loadError)
	}
	return nil
}
