package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/zoobzio/tidy"
	"github.com/zoobzio/tidy/bson"
	"github.com/zoobzio/tidy/json"
	"github.com/zoobzio/tidy/msgpack"
	"github.com/zoobzio/tidy/yaml"
)

var version = "dev"

const (
	formatJSON    = "json"
	formatYAML    = "yaml"
	formatMsgpack = "msgpack"
	formatBSON    = "bson"
	formatExtJSON = "ejson"
)

var codecsByFormat = map[string]func() tidy.Codec{
	formatJSON:    json.New,
	formatYAML:    yaml.New,
	formatMsgpack: msgpack.New,
	formatBSON:    bson.New,
	formatExtJSON: func() tidy.Codec { return bson.NewExtJSON(false) },
}

func knownFormats() []string {
	formats := make([]string, 0, len(codecsByFormat))
	for format := range codecsByFormat {
		formats = append(formats, format)
	}
	sort.Strings(formats)
	return formats
}

func newRootCommand() *cobra.Command {
	rootCommand := &cobra.Command{
		Use:   "tidy",
		Short: "Validate, sanitize and format plain values",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if envFileError := loadEnvFile(cmd.Flag(flagEnvFile).Value.String()); envFileError != nil {
				return fmt.Errorf("config error: %w", envFileError)
			}
			return nil
		},
	}
	rootCommand.SilenceUsage = true
	rootCommand.PersistentFlags().String(flagLogLevel, "", "log level (overrides "+envKeyLogLevel+")")
	rootCommand.PersistentFlags().String(flagEnvFile, defaultEnvFile, "file of KEY=value defaults read before the environment")
	rootCommand.AddCommand(newValidCommand())
	rootCommand.AddCommand(newAmountCommand())
	rootCommand.AddCommand(newGroupCommand())
	rootCommand.AddCommand(newSanitizeCommand())
	rootCommand.AddCommand(newVersionCommand())
	return rootCommand
}

func newValidCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "valid [value]",
		Short: "Report whether a value is neither null, undefined nor empty",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			isValid := tidy.IsValidInputValue(parseValueArgument(args))
			return writeLine(cmd.OutOrStdout(), strconv.FormatBool(isValid))
		},
	}
}

func newAmountCommand() *cobra.Command {
	amountCommand := &cobra.Command{
		Use:   "amount [value]",
		Short: "Format a value as a currency amount",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			commandConfig, configError := resolveConfig(cmd)
			if configError != nil {
				return fmt.Errorf("config error: %w", configError)
			}
			logger := newLogger(cmd.ErrOrStderr(), commandConfig.LogLevel)

			formatter, formatterError := tidy.Use(commandConfig.Locale, commandConfig.Currency)
			if formatterError != nil {
				return fmt.Errorf("formatter: %w", formatterError)
			}
			logger.Debug().
				Str("locale", formatter.Locale()).
				Str("currency", formatter.Currency()).
				Int("scale", formatter.Scale()).
				Msg("formatter ready")

			return runAmount(cmd.OutOrStdout(), formatter, parseValueArgument(args))
		},
	}
	amountCommand.Flags().String(flagCurrency, "", "ISO 4217 currency code (overrides "+envKeyCurrency+")")
	amountCommand.Flags().String(flagLocale, "", "BCP 47 locale (overrides "+envKeyLocale+")")
	return amountCommand
}

func runAmount(output io.Writer, formatter *tidy.Formatter, value tidy.Value) error {
	formatted := formatter.Amount(value)
	text, isString := formatted.AsString()
	if !isString {
		text = tidy.ToString(formatted)
	}
	return writeLine(output, text)
}

func newGroupCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "group [value]",
		Short: "Insert thousands separators into a value",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeLine(cmd.OutOrStdout(), tidy.CommaSeparatedValue(parseValueArgument(args)))
		},
	}
}

func newSanitizeCommand() *cobra.Command {
	sanitizeCommand := &cobra.Command{
		Use:   "sanitize",
		Short: "Remove null, undefined and empty values from a document on stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			commandConfig, configError := resolveConfig(cmd)
			if configError != nil {
				return fmt.Errorf("config error: %w", configError)
			}
			logger := newLogger(cmd.ErrOrStderr(), commandConfig.LogLevel)
			return runSanitize(cmd, commandConfig, logger)
		},
	}
	sanitizeCommand.Flags().String(flagFormat, "", "document format: json, yaml, msgpack, bson or ejson (overrides "+envKeyFormat+")")
	return sanitizeCommand
}

func runSanitize(cmd *cobra.Command, commandConfig cliConfig, logger zerolog.Logger) error {
	sanitizer := tidy.NewSanitizer(codecsByFormat[commandConfig.Format]())

	input, readError := io.ReadAll(cmd.InOrStdin())
	if readError != nil {
		return fmt.Errorf("read input: %w", readError)
	}

	started := time.Now()
	output, sanitizeError := sanitizer.Sanitize(cmd.Context(), input)
	if sanitizeError != nil {
		logger.Error().Err(sanitizeError).Str("content_type", sanitizer.ContentType()).Msg("sanitize failed")
		return fmt.Errorf("sanitize: %w", sanitizeError)
	}
	logger.Debug().
		Str("content_type", sanitizer.ContentType()).
		Int("input_bytes", len(input)).
		Int("output_bytes", len(output)).
		Dur("duration", time.Since(started)).
		Msg("sanitized")

	if _, writeError := cmd.OutOrStdout().Write(output); writeError != nil {
		return fmt.Errorf("write output: %w", writeError)
	}
	if commandConfig.Format == formatJSON || commandConfig.Format == formatExtJSON {
		return writeLine(cmd.OutOrStdout(), "")
	}
	return nil
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the tidy version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeLine(cmd.OutOrStdout(), "tidy "+version)
		},
	}
}

// parseValueArgument reads a JSON literal (null, 1000, "text", {...}) and
// falls back to the raw text. A missing argument is undefined.
func parseValueArgument(args []string) tidy.Value {
	if len(args) == 0 {
		return tidy.Undefined()
	}
	var value tidy.Value
	if unmarshalError := value.UnmarshalJSON([]byte(args[0])); unmarshalError != nil {
		return tidy.String(args[0])
	}
	return value
}

func writeLine(output io.Writer, text string) error {
	if _, writeError := fmt.Fprintln(output, text); writeError != nil {
		return fmt.Errorf("write output: %w", writeError)
	}
	return nil
}

func newLogger(output io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        output,
		TimeFormat: time.RFC3339,
	}).Level(level).With().Timestamp().Logger()
}
