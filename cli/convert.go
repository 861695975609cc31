// Copyright © 2021 Optable Technologies Inc. All rights reserved.
// See LICENSE for details.
package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"

	"github.com/optable/optable-sizeconv/errors"
	sizeio "github.com/optable/optable-sizeconv/io"
	"github.com/optable/optable-sizeconv/size"
)

const (
	AppName = "sizeconv"

	FormatTable   = "table"
	FormatSummary = "summary"
	FormatJSON    = "json"

	// InvalidSizeMessage is printed instead of a conversion when the amount
	// or the unit cannot be parsed.
	InvalidSizeMessage = "Error: Invalid size or unit. Please use format like '24 mb' or '1000 bytes'"
)

// Convert is the sizeconv command: it converts a single "<amount> <unit>"
// argument into bytes, kilobytes, megabytes and gigabytes.
type Convert struct {
	Size     string `arg:"" name:"size" help:"Amount and unit separated by whitespace, e.g. '24 mb'. Units: b, kb, mb, gb (or bytes, kilobytes, megabytes, gigabytes)."`
	Format   string `help:"Output format: table, summary or json." enum:"table,summary,json" default:"table" env:"SIZECONV_FORMAT"`
	LogLevel string `help:"Level of the logs written to stderr." default:"warn" env:"SIZECONV_LOG_LEVEL"`

	Profiling
}

// NewParser builds the kong parser of cmd.
func NewParser(cmd *Convert, options ...kong.Option) (*kong.Kong, error) {
	options = append([]kong.Option{
		kong.Name(AppName),
		kong.Description("Convert a file size between bytes, kilobytes, megabytes and gigabytes (powers of 1000)."),
	}, options...)
	return kong.New(cmd, options...)
}

// Logger builds the console logger writing to w at the configured level.
func (c *Convert) Logger(w io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return zerolog.Nop(), errors.NewUsageError("invalid log level %q", c.LogLevel)
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: w}).Level(level).With().Timestamp().Logger(), nil
}

// Run prints the conversion report of c.Size to stdout.
//
// An argument that is not made of exactly two tokens returns a
// *errors.UsageError and nothing is printed. So does an unknown format, which
// the parser already rejects but a Convert built in code may carry. An invalid amount or unit is not an error: InvalidSizeMessage is
// printed in place of the conversion.
func (c *Convert) Run(ctx context.Context, stdout io.Writer) error {
	logger := zerolog.Ctx(ctx)

	render, err := renderer(c.Format)
	if err != nil {
		return err
	}

	s, err := size.ParseExpression(c.Size)
	if errors.IsUsage(err) {
		return err
	}

	var lines []string
	if c.Format != FormatJSON {
		lines = append(lines, fmt.Sprintf("You entered: %s. Here's your conversion table...", c.Size), "")
	}

	if err != nil {
		logger.Debug().Err(err).Str("input", c.Size).Msg("Invalid size expression")
		lines = append(lines, InvalidSizeMessage)
	} else {
		record := size.NewRecord(s)
		logger.Debug().
			Str("input", c.Size).
			Str("unit", s.Unit().Name()).
			Uint64("bytes", record.Bytes).
			Msg("Converted size")

		text, err := render(record)
		if err != nil {
			return err
		}
		lines = append(lines, strings.Split(text, "\n")...)
	}

	if _, err := sizeio.WriteLines(sizeio.NewLineWriter(stdout), lines...); err != nil {
		return fmt.Errorf("failed writing conversion: %w", err)
	}
	return nil
}

func renderer(format string) (func(size.Record) (string, error), error) {
	switch format {
	case FormatTable:
		return func(r size.Record) (string, error) { return r.Table(), nil }, nil
	case FormatSummary:
		return func(r size.Record) (string, error) { return r.Summary(), nil }, nil
	case FormatJSON:
		return size.Record.JSON, nil
	default:
		return nil, errors.NewUsageError("unknown format %q, expected one of %s, %s or %s", format, FormatTable, FormatSummary, FormatJSON)
	}
}
