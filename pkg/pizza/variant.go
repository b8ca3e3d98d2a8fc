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
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	perrors "github.com/pizzeria/pizza/pkg/errors"
)

// Variant identifies a pizza kind.
type Variant string

// Variant constants for the supported pizzas.
const (
	VariantPepperoni  Variant = "pepperoni"
	VariantMargherita Variant = "margherita"
	VariantHawaiian   Variant = "hawaiian"
)

// ParseVariant parses a string into a Variant.
func ParseVariant(s string) (Variant, error) {
	v := Variant(strings.ToLower(strings.TrimSpace(s)))
	if !v.IsValid() {
		return "", perrors.NewWithContext(
			perrors.ErrCodeInvalidRequest,
			fmt.Sprintf("invalid pizza variant: %s", s),
			map[string]any{"supported": SupportedVariants()},
		)
	}
	return v, nil
}

// SupportedVariants returns all supported variants sorted alphabetically.
func SupportedVariants() []string {
	return []string{
		string(VariantHawaiian),
		string(VariantMargherita),
		string(VariantPepperoni),
	}
}

// IsValid reports whether v is a known variant.
func (v Variant) IsValid() bool {
	switch v {
	case VariantPepperoni, VariantMargherita, VariantHawaiian:
		return true
	default:
		return false
	}
}

func (v Variant) String() string {
	return string(v)
}

// Title returns the display name, e.g. "Margherita".
func (v Variant) Title() string {
	return cases.Title(language.English).String(string(v))
}

// DefaultSignature returns the label used when rendering without an explicit
// signature. Codes between colons are resolved by a Decorator.
func (v Variant) DefaultSignature() string {
	switch v {
	case VariantPepperoni:
		return "Pepperoni:pizza:"
	case VariantMargherita:
		return "Margherita:tomato:"
	case VariantHawaiian:
		return "Hawaiian:pineapple:"
	default:
		return v.Title()
	}
}
