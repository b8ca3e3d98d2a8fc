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

import "strings"

// Decorator turns a signature such as "Pepperoni:pizza:" into its display
// label. Implementations must not fail; unresolved input is returned as is.
type Decorator interface {
	Decorate(label string) string
}

// Render formats the recipe as "Pizza <label>: <values joined by ', '>".
// A nil Decorator leaves the signature undecorated.
func (r *Recipe) Render(d Decorator, signature string) string {
	label := signature
	if d != nil {
		label = d.Decorate(signature)
	}
	return "Pizza " + label + ": " + strings.Join(r.Values(), ", ")
}

// RenderDefault renders with the variant's default signature.
func (r *Recipe) RenderDefault(d Decorator) string {
	return r.Render(d, r.variant.DefaultSignature())
}
