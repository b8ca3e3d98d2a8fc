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
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pizzeria/pizza/pkg/decorate"
	perrors "github.com/pizzeria/pizza/pkg/errors"
	"github.com/pizzeria/pizza/pkg/kitchen"
	"github.com/pizzeria/pizza/pkg/menu"
)

func newTestService(buf *bytes.Buffer) *Service {
	return NewService(
		WithKitchen(kitchen.New(kitchen.WithOutput(buf))),
		WithDecorator(decorate.Plain{}),
	)
}

func TestListMenu(t *testing.T) {
	var buf bytes.Buffer
	s := newTestService(&buf)

	want := "Menu: \n" +
		" -Pizza Margherita:tomato:: tomato sauce, mozzarella, L, tomatoes\n" +
		" -Pizza Pepperoni:pizza:: tomato sauce, mozzarella, L, pepperoni\n" +
		" -Pizza Hawaiian:pineapple:: tomato sauce, mozzarella, L, chicken, pineapples"

	assert.Equal(t, want, s.ListMenu())
	assert.Empty(t, buf.String(), "listing must not run timed actions")
}

func TestMenuLines_OnePerEntry(t *testing.T) {
	var buf bytes.Buffer
	s := newTestService(&buf)

	lines := s.MenuLines()
	require.Len(t, lines, menu.New().Len())
	assert.True(t, strings.HasPrefix(lines[0], "Pizza Margherita"))
	assert.True(t, strings.HasPrefix(lines[1], "Pizza Pepperoni"))
	assert.True(t, strings.HasPrefix(lines[2], "Pizza Hawaiian"))
}

func TestListMenu_Emoji(t *testing.T) {
	s := NewService(WithKitchen(kitchen.New(kitchen.WithOutput(&bytes.Buffer{}))))
	lines := s.MenuLines()
	assert.Equal(t, "Pizza Pepperoni🍕: tomato sauce, mozzarella, L, pepperoni", lines[1])
}

func TestOrder(t *testing.T) {
	tests := []struct {
		name     string
		pizza    string
		delivery bool
		prefix   string
		mode     string
	}{
		{"margherita delivery", "margherita", true, "Delivered in ", ModeDelivery},
		{"pepperoni pickup", "pepperoni", false, "Picked up in ", ModePickup},
		{"hawaiian delivery", "hawaiian", true, "Delivered in ", ModeDelivery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			s := newTestService(&buf)
			counter := ordersTotal.WithLabelValues(tt.pizza, tt.mode)
			before := testutil.ToFloat64(counter)

			require.NoError(t, s.Order(context.Background(), tt.pizza, tt.delivery))

			out := buf.String()
			assert.Equal(t, 1, strings.Count(out, "\n"), "exactly one timed line, got %q", out)
			assert.True(t, strings.HasPrefix(out, tt.prefix), "got %q", out)
			assert.NotContains(t, out, "Cooked in")
			assert.Equal(t, before+1, testutil.ToFloat64(counter))
		})
	}
}

func TestOrder_Unknown(t *testing.T) {
	var buf bytes.Buffer
	s := newTestService(&buf)

	err := s.Order(context.Background(), "calzone", false)
	require.Error(t, err)
	assert.True(t, perrors.HasCode(err, perrors.ErrCodeUnknownPizza))
	assert.Empty(t, buf.String())
}

func TestOrder_NormalizesName(t *testing.T) {
	for _, name := range []string{"Margherita", " PEPPERONI ", "hawaiian\n"} {
		t.Run(strings.TrimSpace(name), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, newTestService(&buf).Order(context.Background(), name, false))
			assert.True(t, strings.HasPrefix(buf.String(), "Picked up in "))
		})
	}
}

func TestOrder_QuietAtInfo(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var logs bytes.Buffer
	slog.SetDefault(slog.New(slog.NewJSONHandler(&logs, &slog.HandlerOptions{Level: slog.LevelInfo})))

	var buf bytes.Buffer
	require.NoError(t, newTestService(&buf).Order(context.Background(), "margherita", true))
	assert.Empty(t, logs.String())
	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
}

func TestOrder_LeavesPrototypeUntouched(t *testing.T) {
	var buf bytes.Buffer
	m := menu.New()
	s := NewService(
		WithMenu(m),
		WithKitchen(kitchen.New(kitchen.WithOutput(&buf))),
		WithDecorator(decorate.Plain{}),
	)
	before := s.ListMenu()

	require.NoError(t, s.Order(context.Background(), "pepperoni", true))
	assert.Equal(t, before, s.ListMenu())
}

func TestItems(t *testing.T) {
	var buf bytes.Buffer
	items := newTestService(&buf).Items()
	require.Len(t, items, 3)
	assert.Equal(t, "margherita", items[0].Name)
	assert.Equal(t, "Margherita:tomato:", items[0].Label)
}
