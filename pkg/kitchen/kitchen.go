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

	"github.com/pizzeria/pizza/pkg/pizza"
)

// Action names and their report templates.
const (
	ActionCook    = "cook"
	ActionDeliver = "deliver"
	ActionPickup  = "pickup"

	CookTemplate    = "Cooked in {elapsed}s"
	DeliverTemplate = "Delivered in {elapsed}s"
	PickupTemplate  = "Picked up in {elapsed}s"
)

// Kitchen holds the timed actions.
type Kitchen struct {
	Cook    Action
	Deliver Action
	Pickup  Action
}

// New returns a Kitchen whose actions share one Timer built from opts.
func New(opts ...Option) *Kitchen {
	t := NewTimer(opts...)
	return &Kitchen{
		Cook:    t.Measure(ActionCook, CookTemplate, bake),
		Deliver: t.Measure(ActionDeliver, DeliverTemplate, deliver),
		Pickup:  t.Measure(ActionPickup, PickupTemplate, pickup),
	}
}

func bake(_ context.Context, _ *pizza.Recipe) error {
	return nil
}

func deliver(_ context.Context, _ *pizza.Recipe) error {
	return nil
}

func pickup(_ context.Context, _ *pizza.Recipe) error {
	return nil
}
