/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/pizzeria/pizza/pkg/serializer"
)

func (a *app) menuCmd() *cli.Command {
	return &cli.Command{
		Name:                  "menu",
		EnableShellCompletion: true,
		Usage:                 "Print the menu",
		Description: `Print every pizza on the menu with its ingredients.

The default text format prints one line per pizza:

  Menu: 
   -Pizza Margherita🍅: tomato sauce, mozzarella, L, tomatoes

JSON, YAML and table formats print the structured menu instead.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "emoji",
				Value: true,
				Usage: "Decorate pizza labels with emoji",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format := a.cfg.Format
			if cmd.IsSet("format") {
				format = serializer.Format(strings.ToLower(cmd.String("format")))
			}
			if format.IsUnknown() {
				return fmt.Errorf("unknown output format: %q", format)
			}

			emoji := a.cfg.Emoji
			if cmd.IsSet("emoji") {
				emoji = cmd.Bool("emoji")
			}
			svc := a.service(emoji)

			var data any = svc.Items()
			if format == serializer.FormatText {
				data = svc.ListMenu()
			}

			ser := a.writer(format, cmd.String("output"))
			defer func() {
				if closer, ok := ser.(serializer.Closer); ok {
					if err := closer.Close(); err != nil {
						slog.Warn("failed to close serializer", "error", err)
					}
				}
			}()

			return ser.Serialize(ctx, data)
		},
	}
}
