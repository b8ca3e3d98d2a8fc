// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package order

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/pizzeria/pizza/pkg/decorate"
	"github.com/pizzeria/pizza/pkg/kitchen"
	"github.com/pizzeria/pizza/pkg/menu"
	"github.com/pizzeria/pizza/pkg/pizza"
)

const (
	menuHeader    = "Menu: \n -"
	menuSeparator = "\n -"
)

// Fulfillment modes.
const (
	ModeDelivery = "delivery"
	ModePickup   = "pickup"
)

// Service lists the menu and places orders.
type Service struct {
	menu      *menu.Menu
	kitchen   *kitchen.Kitchen
	decorator pizza.Decorator
}

// Option configures a Service.
type Option func(*Service)

// WithMenu sets the menu.
func WithMenu(m *menu.Menu) Option {
	return func(s *Service) {
		s.menu = m
	}
}

// WithKitchen sets the kitchen whose timed actions fulfill orders.
func WithKitchen(k *kitchen.Kitchen) Option {
	return func(s *Service) {
		s.kitchen = k
	}
}

// WithDecorator sets the label decorator used when rendering.
func WithDecorator(d pizza.Decorator) Option {
	return func(s *Service) {
		s.decorator = d
	}
}

// NewService returns a Service with the standard menu, a stdout kitchen and
// emoji labels unless overridden.
func NewService(opts ...Option) *Service {
	s := &Service{}
	for _, opt := range opts {
		opt(s)
	}
	if s.menu == nil {
		s.menu = menu.New()
	}
	if s.kitchen == nil {
		s.kitchen = kitchen.New()
	}
	if s.decorator == nil {
		s.decorator = decorate.NewEmoji()
	}
	return s
}

// MenuLines renders one line per menu entry in menu order.
func (s *Service) MenuLines() []string {
	entries := s.menu.Entries()
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = e.Recipe.RenderDefault(s.decorator)
	}
	return lines
}

// ListMenu returns the formatted menu block.
func (s *Service) ListMenu() string {
	return menuHeader + strings.Join(s.MenuLines(), menuSeparator)
}

// Items returns the structured menu.
func (s *Service) Items() []menu.Item {
	return s.menu.Items(s.decorator)
}

// Order resolves name on the menu and hands the pizza over by delivery or
// pickup. Known variant names match regardless of case and surrounding
// space. Unknown names fail with ErrCodeUnknownPizza.
func (s *Service) Order(ctx context.Context, name string, delivery bool) error {
	if v, err := pizza.ParseVariant(name); err == nil {
		name = v.String()
	}

	r, err := s.menu.Lookup(name)
	if err != nil {
		return err
	}

	mode, handover := ModePickup, s.kitchen.Pickup
	if delivery {
		mode, handover = ModeDelivery, s.kitchen.Deliver
	}

	id := uuid.NewString()
	slog.Debug("order placed", "id", id, "pizza", name, "mode", mode)

	if err := handover(ctx, r); err != nil {
		return err
	}
	ordersTotal.WithLabelValues(name, mode).Inc()
	slog.Debug("order complete", "id", id)
	return nil
}
