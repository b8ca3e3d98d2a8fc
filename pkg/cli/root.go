/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/pizzeria/pizza/pkg/config"
	"github.com/pizzeria/pizza/pkg/decorate"
	"github.com/pizzeria/pizza/pkg/kitchen"
	"github.com/pizzeria/pizza/pkg/logging"
	"github.com/pizzeria/pizza/pkg/order"
	"github.com/pizzeria/pizza/pkg/pizza"
	"github.com/pizzeria/pizza/pkg/serializer"
)

const (
	name           = "pizza"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// app carries state shared by the subcommands of one invocation.
type app struct {
	out io.Writer
	cfg *config.Config
}

// Execute runs the CLI with the process arguments and exits non-zero on error.
func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle SIGINT/SIGTERM for graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, shutting down...")
		cancel()
	}()

	if err := newRootCmd(os.Stdout).Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		cancel()
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cli.Command {
	a := &app{out: out}
	return &cli.Command{
		Name:                  name,
		Usage:                 "Order pizza from the command line",
		Version:               fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		EnableShellCompletion: true,
		Writer:                out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "config file (default is $HOME/.pizza.yaml)",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level (debug, info, warn, error)",
				Sources: cli.EnvVars(logging.EnvLogLevel),
			},
			&cli.StringFlag{
				Name:  metricsFlag,
				Usage: "write Prometheus metrics to this file after the command runs",
			},
		},
		Before: a.before,
		After:  a.after,
		Commands: []*cli.Command{
			a.menuCmd(),
			a.orderCmd(),
		},
	}
}

// before loads config and configures slog once flags are parsed, so
// --log-level takes effect before any command executes.
func (a *app) before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return ctx, fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.IsSet("log-level") {
		cfg.LogLevel = cmd.String("log-level")
	}
	a.cfg = cfg

	logging.SetDefaultStructuredLoggerWithLevel(name, version, cfg.LogLevel)
	slog.Debug("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
		"logLevel", cfg.LogLevel)

	return ctx, nil
}

func (a *app) service(emoji bool) *order.Service {
	var d pizza.Decorator = decorate.Plain{}
	if emoji {
		d = decorate.NewEmoji()
	}
	return order.NewService(
		order.WithKitchen(kitchen.New(kitchen.WithOutput(a.out))),
		order.WithDecorator(d),
	)
}

// writer returns a serializer for path, or for the command output when path is empty.
func (a *app) writer(format serializer.Format, path string) serializer.Serializer {
	if strings.TrimSpace(path) == "" {
		return serializer.NewWriter(format, a.out)
	}
	return serializer.NewFileWriterOrStdout(format, path)
}

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
		Usage: fmt.Sprintf("Output format (supported values: %s)",
			strings.Join(serializer.SupportedFormats(), ", ")),
	}
}
