/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pizzeria/pizza/pkg/decorate"
	perrors "github.com/pizzeria/pizza/pkg/errors"
	"github.com/pizzeria/pizza/pkg/menu"
	"github.com/pizzeria/pizza/pkg/order"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)

	var buf bytes.Buffer
	argv := append([]string{name, "--log-level", "error"}, args...)
	err := newRootCmd(&buf).Run(context.Background(), argv)
	return buf.String(), err
}

func TestMenuCmd_Text(t *testing.T) {
	out, err := run(t, "menu")
	require.NoError(t, err)

	want := order.NewService(order.WithDecorator(decorate.NewEmoji())).ListMenu() + "\n"
	assert.Equal(t, want, out)
	assert.True(t, strings.HasPrefix(out, "Menu: \n -Pizza Margherita"))
	assert.Contains(t, out, " -Pizza Pepperoni🍕: tomato sauce, mozzarella, L, pepperoni\n")
}

func TestMenuCmd_NoEmoji(t *testing.T) {
	out, err := run(t, "menu", "--emoji=false")
	require.NoError(t, err)
	assert.Contains(t, out, "Pizza Hawaiian:pineapple:: tomato sauce, mozzarella, L, chicken, pineapples")
}

func TestMenuCmd_JSON(t *testing.T) {
	out, err := run(t, "menu", "--format", "json")
	require.NoError(t, err)

	var items []menu.Item
	require.NoError(t, json.Unmarshal([]byte(out), &items))
	require.Len(t, items, 3)
	assert.Equal(t, []string{"margherita", "pepperoni", "hawaiian"},
		[]string{items[0].Name, items[1].Name, items[2].Name})
	assert.Equal(t, "Pepperoni", items[1].Title)
}

func TestMenuCmd_OutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.yaml")
	out, err := run(t, "menu", "--format", "yaml", "--output", path)
	require.NoError(t, err)
	assert.Empty(t, out)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "name: margherita")
}

func TestMenuCmd_UnknownFormat(t *testing.T) {
	_, err := run(t, "menu", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestOrderCmd(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		prefix string
	}{
		{"pickup", []string{"order", "pepperoni"}, "Picked up in "},
		{"delivery", []string{"order", "--delivery", "margherita"}, "Delivered in "},
		{"mixed case", []string{"order", "Pepperoni"}, "Picked up in "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(out, tt.prefix), "got %q", out)
			assert.Equal(t, 1, strings.Count(out, "\n"))
			assert.NotContains(t, out, "Cooked in")
		})
	}
}

func TestOrderCmd_Unknown(t *testing.T) {
	out, err := run(t, "order", "calzone")
	require.Error(t, err)
	assert.True(t, perrors.HasCode(err, perrors.ErrCodeUnknownPizza))
	assert.Contains(t, err.Error(), menu.UnknownPizzaMessage)
	assert.Empty(t, out)
}

func TestOrderCmd_ArgCount(t *testing.T) {
	_, err := run(t, "order")
	require.Error(t, err)

	_, err = run(t, "order", "margherita", "pepperoni")
	require.Error(t, err)
}

func TestRoot_MissingConfig(t *testing.T) {
	_, err := run(t, "--config", filepath.Join(t.TempDir(), "nope.yaml"), "menu")
	require.Error(t, err)
	assert.True(t, perrors.HasCode(err, perrors.ErrCodeInvalidRequest))
}

func TestRoot_ConfigFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pizza.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: json\nemoji: false\n"), 0o600))

	out, err := run(t, "--config", path, "menu")
	require.NoError(t, err)

	var items []menu.Item
	require.NoError(t, json.Unmarshal([]byte(out), &items))
	assert.Equal(t, "Margherita:tomato:", items[0].Label)
}
