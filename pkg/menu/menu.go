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

package menu

import (
	perrors "github.com/pizzeria/pizza/pkg/errors"
	"github.com/pizzeria/pizza/pkg/pizza"
)

// UnknownPizzaMessage is reported when a name is not on the menu.
const UnknownPizzaMessage = "We have not learned that pizza yet"

// Entry is a named prototype recipe.
type Entry struct {
	Name   string
	Recipe *pizza.Recipe
}

// Item is the serializable form of an entry.
type Item struct {
	Name   string             `json:"name" yaml:"name"`
	Title  string             `json:"title" yaml:"title"`
	Label  string             `json:"label" yaml:"label"`
	Fields []pizza.FieldValue `json:"fields" yaml:"fields"`
}

// Menu is the fixed set of pizzas on offer.
type Menu struct {
	entries []Entry
	index   map[string]int
}

// New builds the menu.
func New() *Menu {
	return newMenu(
		Entry{Name: pizza.VariantMargherita.String(), Recipe: pizza.NewMargherita()},
		Entry{Name: pizza.VariantPepperoni.String(), Recipe: pizza.NewPepperoni()},
		Entry{Name: pizza.VariantHawaiian.String(), Recipe: pizza.NewHawaiian()},
	)
}

func newMenu(entries ...Entry) *Menu {
	m := &Menu{
		entries: entries,
		index:   make(map[string]int, len(entries)),
	}
	for i, e := range entries {
		m.index[e.Name] = i
	}
	return m
}

// Len returns the number of entries.
func (m *Menu) Len() int {
	return len(m.entries)
}

// Names returns the entry names in menu order.
func (m *Menu) Names() []string {
	names := make([]string, len(m.entries))
	for i, e := range m.entries {
		names[i] = e.Name
	}
	return names
}

// Entries returns the entries in menu order. The recipes are the shared prototypes.
func (m *Menu) Entries() []Entry {
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

// Lookup returns the prototype recipe for name, or an ErrCodeUnknownPizza error.
func (m *Menu) Lookup(name string) (*pizza.Recipe, error) {
	i, ok := m.index[name]
	if !ok {
		return nil, perrors.NewWithContext(
			perrors.ErrCodeUnknownPizza,
			UnknownPizzaMessage,
			map[string]any{
				"pizza":     name,
				"available": m.Names(),
			},
		)
	}
	return m.entries[i].Recipe, nil
}

// Items returns the serializable menu, with labels resolved through d.
func (m *Menu) Items(d pizza.Decorator) []Item {
	items := make([]Item, len(m.entries))
	for i, e := range m.entries {
		label := e.Recipe.Variant().DefaultSignature()
		if d != nil {
			label = d.Decorate(label)
		}
		items[i] = Item{
			Name:   e.Name,
			Title:  e.Recipe.Variant().Title(),
			Label:  label,
			Fields: e.Recipe.Fields(),
		}
	}
	return items
}
