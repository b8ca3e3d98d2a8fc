/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/pizzeria/pizza/pkg/menu"
)

func (a *app) orderCmd() *cli.Command {
	return &cli.Command{
		Name:                  "order",
		EnableShellCompletion: true,
		Usage:                 "Order a pizza for delivery or pickup",
		ArgsUsage:             "PIZZA",
		Description: fmt.Sprintf(`Order a pizza from the menu (%s).

Without --delivery the pizza is picked up. The time taken is printed on completion.`,
			strings.Join(menu.New().Names(), ", ")),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "delivery",
				Usage: "Deliver the pizza instead of picking it up",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("expected exactly one pizza name, got %d", cmd.Args().Len())
			}
			pizzaName := cmd.Args().First()

			if err := a.service(a.cfg.Emoji).Order(ctx, pizzaName, cmd.Bool("delivery")); err != nil {
				return fmt.Errorf("failed to order %q: %w", pizzaName, err)
			}
			return nil
		},
	}
}
