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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	perrors "github.com/pizzeria/pizza/pkg/errors"
)

func TestNewField(t *testing.T) {
	f, err := NewField(FieldSize, SizeL, SizeL, SizeXL)
	require.NoError(t, err)
	assert.Equal(t, FieldSize, f.Name())
	assert.Equal(t, SizeL, f.Value())
	assert.Equal(t, []string{SizeL, SizeXL}, f.Allowed())
}

func TestNewField_InvalidDefault(t *testing.T) {
	f, err := NewField(FieldSize, "S", SizeL, SizeXL)
	assert.Nil(t, f)
	assert.True(t, perrors.HasCode(err, perrors.ErrCodeInvalidValue))
}

func TestField_Set(t *testing.T) {
	f, err := NewField(FieldCheese, Mozzarella, Mozzarella, NoCheese)
	require.NoError(t, err)

	require.NoError(t, f.Set(NoCheese))
	assert.Equal(t, NoCheese, f.Value())

	err = f.Set("cheddar")
	require.Error(t, err)
	assert.Equal(t, NoCheese, f.Value(), "rejected write must keep previous value")

	var se *perrors.StructuredError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, perrors.ErrCodeInvalidValue, se.Code)
	assert.Equal(t, FieldCheese, se.Context["field"])
	assert.Equal(t, "cheddar", se.Context["value"])
	assert.Equal(t, []string{Mozzarella, NoCheese}, se.Context["allowed"])
	assert.Equal(t, "[INVALID_DOMAIN_VALUE] cheese must be mozzarella or no cheese", err.Error())
}

func TestField_AllowedIsCopy(t *testing.T) {
	f, err := NewField(FieldSize, SizeL, SizeL, SizeXL)
	require.NoError(t, err)

	allowed := f.Allowed()
	allowed[0] = "S"

	assert.False(t, f.Allows("S"))
	assert.Error(t, f.Set("S"))
}

func TestField_CaseSensitive(t *testing.T) {
	f, err := NewField(FieldSize, SizeL, SizeL, SizeXL)
	require.NoError(t, err)

	assert.Error(t, f.Set("xl"))
	assert.Error(t, f.Set(""))
	assert.NoError(t, f.Set(SizeXL))
}

func TestField_Unconstrained(t *testing.T) {
	f, err := NewField(FieldMeat, Chicken)
	require.NoError(t, err)
	assert.False(t, f.Constrained())
	assert.Nil(t, f.Allowed())

	for _, v := range []string{"ham", "", "salami"} {
		assert.True(t, f.Allows(v))
		require.NoError(t, f.Set(v))
		assert.Equal(t, v, f.Value())
	}
}

func TestMustField_PanicsOnInvalidDefault(t *testing.T) {
	assert.Panics(t, func() {
		mustField(FieldMeat, "salami", Pepperoni, NoMeat)
	})
}
