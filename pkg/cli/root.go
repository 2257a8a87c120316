/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/mchmarny/barcart/pkg/api"
	"github.com/mchmarny/barcart/pkg/logging"
	"github.com/mchmarny/barcart/pkg/query"
	"github.com/mchmarny/barcart/pkg/serializer"
)

const (
	name           = "barcart"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// outputFlag and the other flag constructors return a fresh flag for each
// command tree; urfave flags keep their parsed value between runs.
func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatYAML),
		Usage: fmt.Sprintf("Output format (supported values: %s)",
			strings.Join(serializer.SupportedFormats(), ", ")),
	}
}

func dataDirFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "data-dir",
		Aliases: []string{"d"},
		Usage:   "Catalog source directory or URL (default: embedded catalog)",
		Sources: cli.EnvVars(api.EnvVarDataDir),
	}
}

func logLevelFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "log-level",
		Value:   "warn",
		Usage:   "Log level (debug, info, warn, error)",
		Sources: cli.EnvVars(logging.EnvVarLogLevel),
	}
}

// Execute runs the root command against os.Args. It is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Version:               fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		EnableShellCompletion: true,
		Usage:                 "Query the barcart drinks and ingredients catalog",
		Description: `Query drinks and ingredients by id, name, ingredient membership,
substring, or approximate (fuzzy) name; pick a random drink; list the
curated popular drinks; or serve the catalog over REST and GraphQL.`,
		Flags: []cli.Flag{
			dataDirFlag(),
			logLevelFlag(),
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
			return ctx, nil
		},
		Commands: []*cli.Command{
			ingredientsCmd(),
			drinksCmd(),
			searchCmd(),
			fuzzyCmd(),
			filterCmd(),
			randomCmd(),
			popularCmd(),
			serveCmd(),
		},
	}
}

// parseOutputFormat returns the validated --format value.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(cmd.String("format"))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q", f)
	}
	return f, nil
}

// loadEngine builds a query engine over the catalog selected by --data-dir.
func loadEngine(ctx context.Context, cmd *cli.Command) (*query.Engine, error) {
	return api.NewEngine(ctx, cmd.String("data-dir"))
}

// write serializes v to --output in --format.
func write(ctx context.Context, cmd *cli.Command, v any) error {
	outFormat, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
	defer func() {
		if err := ser.Close(); err != nil {
			slog.Warn("failed to close serializer", "error", err)
		}
	}()

	return ser.Serialize(ctx, v)
}
