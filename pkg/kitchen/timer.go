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

package kitchen

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"k8s.io/utils/clock"

	"github.com/pizzeria/pizza/pkg/pizza"
)

// ElapsedPlaceholder is replaced with the elapsed seconds in a template.
const ElapsedPlaceholder = "{elapsed}"

// Action is an operation applied to a recipe.
type Action func(ctx context.Context, r *pizza.Recipe) error

// Timer wraps actions with elapsed-time reporting.
type Timer struct {
	clock  clock.PassiveClock
	output io.Writer
}

// Option configures a Timer or a Kitchen.
type Option func(*Timer)

// WithClock sets the time source.
func WithClock(c clock.PassiveClock) Option {
	return func(t *Timer) {
		t.clock = c
	}
}

// WithOutput sets where timing lines are written.
func WithOutput(w io.Writer) Option {
	return func(t *Timer) {
		t.output = w
	}
}

// NewTimer returns a Timer using the real clock and stdout unless overridden.
func NewTimer(opts ...Option) *Timer {
	t := &Timer{
		clock:  clock.RealClock{},
		output: os.Stdout,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Measure returns action wrapped with timing. The template must contain
// ElapsedPlaceholder exactly once; anything else panics.
//
// The wrapped action invokes action once for timing, reports the elapsed time,
// then invokes action again and returns that result. If the first invocation
// fails its error is returned and nothing is reported.
func (t *Timer) Measure(name, template string, action Action) Action {
	if n := strings.Count(template, ElapsedPlaceholder); n != 1 {
		panic(fmt.Sprintf("kitchen: template %q must contain %s once, found %d", template, ElapsedPlaceholder, n))
	}

	return func(ctx context.Context, r *pizza.Recipe) error {
		start := t.clock.Now()
		if err := action(ctx, r); err != nil {
			return err
		}
		elapsed := t.clock.Since(start)

		seconds := elapsed.Seconds()
		line := strings.Replace(template, ElapsedPlaceholder, strconv.FormatFloat(seconds, 'g', -1, 64), 1)
		if _, err := fmt.Fprintln(t.output, line); err != nil {
			slog.Warn("failed to write timing line", "action", name, "error", err)
		}
		actionDuration.WithLabelValues(name).Observe(seconds)
		slog.Debug("action timed", "action", name, "variant", variantOf(r), "seconds", seconds)

		return action(ctx, r)
	}
}

func variantOf(r *pizza.Recipe) string {
	if r == nil {
		return ""
	}
	return r.Variant().String()
}
