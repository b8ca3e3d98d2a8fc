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

package decorate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pizzeria/pizza/pkg/pizza"
)

func TestEmoji_Decorate(t *testing.T) {
	e := NewEmoji()

	tests := []struct {
		name  string
		label string
		want  string
	}{
		{"pizza code", "Pepperoni:pizza:", "Pepperoni\U0001f355"},
		{"no codes", "House special", "House special"},
		{"unknown code kept", "Calzone:not_a_real_emoji_code:", "Calzone:not_a_real_emoji_code:"},
		{"empty", "", ""},
		{"retry after unknown code", "x:foo:pizza:", "x:foo\U0001f355"},
		{"two codes", ":pizza::tomato:", "\U0001f355\U0001f345"},
		{"lone colon", "Pizza: plain", "Pizza: plain"},
		{"empty code", "a::pizza:", "a:\U0001f355"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.Decorate(tt.label))
		})
	}
}

func TestEmoji_DefaultSignaturesResolve(t *testing.T) {
	e := NewEmoji()
	for _, v := range pizza.SupportedVariants() {
		sig := pizza.Variant(v).DefaultSignature()
		got := e.Decorate(sig)
		assert.NotContains(t, got, ":", "signature %q was not decorated", sig)
	}
}

func TestEmoji_RenderPepperoni(t *testing.T) {
	e := NewEmoji()

	p := pizza.NewPepperoni()
	assert.Equal(t, "Pizza Pepperoni🍕: tomato sauce, mozzarella, L, pepperoni", p.RenderDefault(e))

	if err := p.SetCheese(pizza.NoCheese); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "Pizza Pepperoni🍕: tomato sauce, no cheese, L, pepperoni", p.RenderDefault(e))
}

func TestPlain_Decorate(t *testing.T) {
	assert.Equal(t, "Hawaiian:pineapple:", Plain{}.Decorate("Hawaiian:pineapple:"))
}
