// Copyright © 2021 Optable Technologies Inc. All rights reserved.
// See LICENSE for details.
package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"

	"github.com/optable/optable-sizeconv/cli"
	sizeio "github.com/optable/optable-sizeconv/io"
)

func main() {
	var cmd cli.Convert
	parser, err := cli.NewParser(&cmd)
	if err != nil {
		panic(err)
	}

	// Missing or extra arguments abort here with a non-zero exit code.
	_, err = parser.Parse(cli.PositionalArgs(parser, os.Args[1:]))
	parser.FatalIfErrorf(err)

	logger, err := cmd.Logger(os.Stderr)
	parser.FatalIfErrorf(err)

	ctx := logger.WithContext(context.Background())

	stopProfiling := cmd.Profiling.Start(cli.AppName)
	defer stopProfiling()

	stdout := sizeio.NewBufferWriteCloser(sizeio.NoClose(os.Stdout))
	if err := cmd.Run(ctx, stdout); err != nil {
		stopProfiling()
		fatal(&logger, err, "Failed converting size")
	}

	if err := stdout.Close(); err != nil {
		stopProfiling()
		fatal(&logger, err, "Failed flushing stdout")
	}
}

// fatal exits with status 1 whatever the log level. Logger.Fatal only exits
// when the fatal level is enabled.
func fatal(logger *zerolog.Logger, err error, msg string) {
	logger.WithLevel(zerolog.FatalLevel).Err(err).Msg(msg)
	os.Exit(1)
}
