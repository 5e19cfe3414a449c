// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lexscore

// Package cli wires lexscore library into the lexscore command.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	urfave "github.com/urfave/cli/v3"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"

	logLevelFlag   = "log-level"
	logLevelEnvVar = "LEXSCORE_LOG_LEVEL"
)

var (
	version = "v0.0.1-default"
	commit  = ""
)

// Execute creates and runs the CLI application.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app := newApp(os.Stdin, os.Stdout, os.Stderr)
	if err := app.Run(ctx, os.Args); err != nil {
		slog.Error("fatal error", "error", err)
		stop()
		os.Exit(1)
	}
}

// newApp builds root command with explicit streams so tests can capture output.
func newApp(in io.Reader, out io.Writer, errOut io.Writer) *urfave.Command {
	return &urfave.Command{
		Name:                  "lexscore",
		Version:               fmt.Sprintf("%s (%s)", version, commit),
		Usage:                 "Deterministic rule-weighted string complexity scores",
		EnableShellCompletion: true,
		HideHelpCommand:       true,
		Reader:                in,
		Writer:                out,
		ErrWriter:             errOut,
		Flags: []urfave.Flag{
			&urfave.StringFlag{
				Name:    logLevelFlag,
				Usage:   "Log level [debug, info, warn, error]",
				Value:   "info",
				Sources: urfave.EnvVars(logLevelEnvVar),
			},
		},
		Commands: []*urfave.Command{
			scoreCmd(),
			rulesCmd(),
		},
		Before: func(ctx context.Context, cmd *urfave.Command) (context.Context, error) {
			slog.SetDefault(newLogger(errOut, cmd.String(logLevelFlag)))
			return ctx, nil
		},
	}
}
