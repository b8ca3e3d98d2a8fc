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
	perrors "github.com/pizzeria/pizza/pkg/errors"
)

// Field names.
const (
	FieldSauce     = "sauce"
	FieldCheese    = "cheese"
	FieldSize      = "size"
	FieldMeat      = "meat"
	FieldTomatoes  = "tomatoes"
	FieldPineapple = "pineapple"
)

// Ingredient values.
const (
	TomatoSauce = "tomato sauce"
	NoSauce     = "no sauce"

	Mozzarella = "mozzarella"
	NoCheese   = "no cheese"

	SizeL  = "L"
	SizeXL = "XL"

	Pepperoni = "pepperoni"
	Chicken   = "chicken"
	NoMeat    = "no meat"

	Tomatoes   = "tomatoes"
	NoTomatoes = "no tomatoes"

	Pineapples   = "pineapples"
	NoPineapples = "no pineapples"
)

// FieldValue is a read-only snapshot of one recipe field.
type FieldValue struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// Recipe is a pizza variant with its ordered, validated fields.
type Recipe struct {
	variant Variant
	fields  []*Field
}

func baseFields() []*Field {
	return []*Field{
		mustField(FieldSauce, TomatoSauce, TomatoSauce, NoSauce),
		mustField(FieldCheese, Mozzarella, Mozzarella, NoCheese),
		mustField(FieldSize, SizeL, SizeL, SizeXL),
	}
}

func newRecipe(v Variant, extra ...*Field) *Recipe {
	return &Recipe{
		variant: v,
		fields:  append(baseFields(), extra...),
	}
}

// NewPepperoni returns a default pepperoni recipe.
func NewPepperoni() *Recipe {
	return newRecipe(VariantPepperoni,
		mustField(FieldMeat, Pepperoni, Pepperoni, NoMeat),
	)
}

// NewMargherita returns a default margherita recipe.
func NewMargherita() *Recipe {
	return newRecipe(VariantMargherita,
		mustField(FieldTomatoes, Tomatoes, Tomatoes, NoTomatoes),
	)
}

// NewHawaiian returns a default hawaiian recipe.
func NewHawaiian() *Recipe {
	return newRecipe(VariantHawaiian,
		mustField(FieldMeat, Chicken),
		mustField(FieldPineapple, Pineapples, Pineapples, NoPineapples),
	)
}

// New returns the default recipe for v.
func New(v Variant) (*Recipe, error) {
	switch v {
	case VariantPepperoni:
		return NewPepperoni(), nil
	case VariantMargherita:
		return NewMargherita(), nil
	case VariantHawaiian:
		return NewHawaiian(), nil
	default:
		return nil, perrors.NewWithContext(
			perrors.ErrCodeInvalidRequest,
			"unknown pizza variant",
			map[string]any{
				"variant":   string(v),
				"supported": SupportedVariants(),
			},
		)
	}
}

// Variant returns the recipe's kind.
func (r *Recipe) Variant() Variant {
	return r.variant
}

func (r *Recipe) field(name string) *Field {
	for _, f := range r.fields {
		if f.name == name {
			return f
		}
	}
	return nil
}

// Get returns the value of the named field.
func (r *Recipe) Get(name string) (string, bool) {
	f := r.field(name)
	if f == nil {
		return "", false
	}
	return f.Value(), true
}

// Allowed returns the domain of the named field, or nil if there is no such field.
func (r *Recipe) Allowed(name string) []string {
	f := r.field(name)
	if f == nil {
		return nil
	}
	return f.Allowed()
}

// Set changes the named field. Unknown fields fail with ErrCodeInvalidRequest,
// out-of-domain values with ErrCodeInvalidValue.
func (r *Recipe) Set(name, value string) error {
	f := r.field(name)
	if f == nil {
		return perrors.NewWithContext(
			perrors.ErrCodeInvalidRequest,
			"unknown recipe field",
			map[string]any{
				"variant": string(r.variant),
				"field":   name,
				"fields":  r.FieldNames(),
			},
		)
	}
	return f.Set(value)
}

// SetSauce sets the sauce field.
func (r *Recipe) SetSauce(value string) error {
	return r.Set(FieldSauce, value)
}

// SetCheese sets the cheese field.
func (r *Recipe) SetCheese(value string) error {
	return r.Set(FieldCheese, value)
}

// SetSize sets the size field.
func (r *Recipe) SetSize(value string) error {
	return r.Set(FieldSize, value)
}

// FieldNames returns the field names in declaration order.
func (r *Recipe) FieldNames() []string {
	names := make([]string, len(r.fields))
	for i, f := range r.fields {
		names[i] = f.name
	}
	return names
}

// Values returns the field values in declaration order.
func (r *Recipe) Values() []string {
	values := make([]string, len(r.fields))
	for i, f := range r.fields {
		values[i] = f.value
	}
	return values
}

// Fields returns a snapshot of the fields in declaration order.
func (r *Recipe) Fields() []FieldValue {
	out := make([]FieldValue, len(r.fields))
	for i, f := range r.fields {
		out[i] = FieldValue{Name: f.name, Value: f.value}
	}
	return out
}

// Equal reports whether r and other are the same variant with identical field values.
func (r *Recipe) Equal(other *Recipe) bool {
	if r == nil || other == nil {
		return r == other
	}
	if r.variant != other.variant || len(r.fields) != len(other.fields) {
		return false
	}
	for i, f := range r.fields {
		o := other.fields[i]
		if f.name != o.name || f.value != o.value {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of r.
func (r *Recipe) Clone() *Recipe {
	fields := make([]*Field, len(r.fields))
	for i, f := range r.fields {
		fields[i] = f.clone()
	}
	return &Recipe{variant: r.variant, fields: fields}
}
