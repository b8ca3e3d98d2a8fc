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
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/urfave/cli/v3"

	perrors "github.com/pizzeria/pizza/pkg/errors"
)

const metricsFlag = "metrics"

// after writes the collected metrics once the command has run, failed or not.
func (a *app) after(_ context.Context, cmd *cli.Command) error {
	path := strings.TrimSpace(cmd.String(metricsFlag))
	if path == "" {
		return nil
	}
	return writeMetricsFile(path, prometheus.DefaultGatherer)
}

func writeMetricsFile(path string, g prometheus.Gatherer) error {
	f, err := os.Create(path)
	if err != nil {
		return perrors.WrapWithContext(perrors.ErrCodeInternal, "failed to create metrics file", err,
			map[string]any{"path": path})
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			slog.Warn("failed to close metrics file", "path", path, "error", cerr)
		}
	}()

	if err := writeMetrics(f, g); err != nil {
		return perrors.WrapWithContext(perrors.ErrCodeInternal, "failed to write metrics", err,
			map[string]any{"path": path})
	}
	slog.Debug("metrics written", "path", path)
	return nil
}

// writeMetrics encodes every gathered family in the text exposition format.
func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("failed to encode %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
