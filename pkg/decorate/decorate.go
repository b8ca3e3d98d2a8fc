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
	"log/slog"
	"strings"

	"github.com/kyokomi/emoji/v2"
)

// Emoji replaces :short_code: sequences with emoji.
type Emoji struct {
	codes map[string]string
}

// NewEmoji returns an Emoji decorator backed by the GitHub short code table.
func NewEmoji() *Emoji {
	return &Emoji{codes: emoji.CodeMap()}
}

// Decorate implements pizza.Decorator. Unresolved codes are kept literally,
// and the closing colon of one may open the next, so "x:foo:pizza:" still
// resolves :pizza:.
func (e *Emoji) Decorate(label string) string {
	var b strings.Builder
	rest := label
	for {
		open := strings.IndexByte(rest, ':')
		if open < 0 {
			break
		}
		closing := strings.IndexByte(rest[open+1:], ':')
		if closing < 0 {
			break
		}
		closing += open + 1

		code := rest[open : closing+1]
		if v, ok := e.codes[code]; ok {
			b.WriteString(rest[:open])
			b.WriteString(v)
			rest = rest[closing+1:]
			continue
		}
		if closing > open+1 {
			slog.Debug("unresolved emoji code", "code", code, "label", label)
		}
		b.WriteString(rest[:closing])
		rest = rest[closing:]
	}
	b.WriteString(rest)
	return b.String()
}

// Plain leaves labels unchanged.
type Plain struct{}

// Decorate implements pizza.Decorator.
func (Plain) Decorate(label string) string {
	return label
}
