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

package pizza

import (
	"fmt"
	"slices"
	"strings"

	perrors "github.com/pizzeria/pizza/pkg/errors"
)

// Field is a named ingredient value constrained to an allowed set.
// A Field built without allowed values accepts any value.
// The zero value is not usable; construct with NewField.
type Field struct {
	name    string
	allowed []string
	value   string
}

// NewField creates a Field holding value. It fails with ErrCodeInvalidValue
// when value is not one of allowed.
func NewField(name, value string, allowed ...string) (*Field, error) {
	f := &Field{
		name:    name,
		allowed: slices.Clone(allowed),
	}
	if err := f.Set(value); err != nil {
		return nil, err
	}
	return f, nil
}

// mustField is used by the variant constructors where the defaults are fixed.
func mustField(name, value string, allowed ...string) *Field {
	f, err := NewField(name, value, allowed...)
	if err != nil {
		panic(fmt.Sprintf("pizza: invalid default for %s: %v", name, err))
	}
	return f
}

// Name returns the field name.
func (f *Field) Name() string {
	return f.name
}

// Value returns the last successfully set value.
func (f *Field) Value() string {
	return f.value
}

// Allowed returns a copy of the allowed values in declaration order, or nil
// for an unconstrained field.
func (f *Field) Allowed() []string {
	return slices.Clone(f.allowed)
}

// Constrained reports whether the field restricts its values.
func (f *Field) Constrained() bool {
	return len(f.allowed) > 0
}

// Allows reports whether value is in the field's domain.
func (f *Field) Allows(value string) bool {
	return !f.Constrained() || slices.Contains(f.allowed, value)
}

// Set replaces the value. Values outside the domain are rejected and the
// previous value is kept.
func (f *Field) Set(value string) error {
	if !f.Allows(value) {
		return perrors.NewWithContext(
			perrors.ErrCodeInvalidValue,
			fmt.Sprintf("%s must be %s", f.name, strings.Join(f.allowed, " or ")),
			map[string]any{
				"field":   f.name,
				"value":   value,
				"allowed": f.Allowed(),
			},
		)
	}
	f.value = value
	return nil
}

func (f *Field) clone() *Field {
	return &Field{
		name:    f.name,
		allowed: f.allowed,
		value:   f.value,
	}
}
