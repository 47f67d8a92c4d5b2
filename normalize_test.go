// Copyright 2025 The Rivaas Authors
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

package params

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_Plain(t *testing.T) {
	t.Parallel()

	target := normalize(Type[int](), "5")

	assert.False(t, target.IsList)
	assert.False(t, target.Optional)
	assert.False(t, target.Any)
	assert.Equal(t, []reflect.Type{intType}, target.Candidates)
}

func TestNormalize_Union(t *testing.T) {
	t.Parallel()

	target := normalize(Union(Type[int](), Type[float64]()), "5")

	assert.False(t, target.IsList)
	assert.Equal(t, []reflect.Type{intType, float64Type}, target.Candidates)
}

func TestNormalize_Optional(t *testing.T) {
	t.Parallel()

	target := normalize(Optional(Type[string]()), "x")

	assert.True(t, target.Optional)
	assert.Equal(t, []reflect.Type{stringType}, target.Candidates)
}

func TestNormalize_List(t *testing.T) {
	t.Parallel()

	t.Run("plain element", func(t *testing.T) {
		t.Parallel()

		target := normalize(List(Type[string]()), []any{"a"})

		assert.True(t, target.IsList)
		assert.Equal(t, []reflect.Type{stringType}, target.Candidates)
	})

	t.Run("union element", func(t *testing.T) {
		t.Parallel()

		target := normalize(List(Union(Type[int](), Type[string]())), []any{1})

		assert.True(t, target.IsList)
		assert.Equal(t, []reflect.Type{intType, stringType}, target.Candidates)
	})

	t.Run("any element is unconstrained", func(t *testing.T) {
		t.Parallel()

		target := normalize(List(Any()), []any{1, "a"})

		assert.True(t, target.IsList)
		assert.Nil(t, target.Candidates)
		assert.True(t, target.contains(intType))
		assert.True(t, target.contains(stringType))
	})
}

func TestNormalize_ListElection(t *testing.T) {
	t.Parallel()

	union := Union(List(Type[string]()), Type[int]())

	t.Run("matching sequence elects the list member", func(t *testing.T) {
		t.Parallel()

		target := normalize(union, []any{"al", "bo"})

		assert.True(t, target.IsList)
		assert.Equal(t, []reflect.Type{stringType}, target.Candidates)
	})

	t.Run("scalar keeps the plain members", func(t *testing.T) {
		t.Parallel()

		target := normalize(union, 5)

		assert.False(t, target.IsList)
		assert.Equal(t, []reflect.Type{intType}, target.Candidates)
	})

	t.Run("non-matching sequence fails the election", func(t *testing.T) {
		t.Parallel()

		target := normalize(union, []any{1.0, 2.0})

		assert.False(t, target.IsList)
		assert.Equal(t, []reflect.Type{intType}, target.Candidates)
	})

	t.Run("first matching list member wins", func(t *testing.T) {
		t.Parallel()

		u := Union(List(Type[int]()), List(Type[string]()))
		target := normalize(u, []any{"a", "b"})

		assert.True(t, target.IsList)
		assert.Equal(t, []reflect.Type{stringType}, target.Candidates)
	})

	t.Run("optional flag survives the election", func(t *testing.T) {
		t.Parallel()

		target := normalize(Optional(List(Type[string]())), []any{"a"})

		assert.True(t, target.IsList)
		assert.True(t, target.Optional)
	})
}

func TestIsSequence(t *testing.T) {
	t.Parallel()

	assert.True(t, isSequence([]any{1}))
	assert.True(t, isSequence([]string{"a"}))
	assert.True(t, isSequence([2]int{1, 2}))
	assert.False(t, isSequence("ab"))
	assert.False(t, isSequence(5))
	assert.False(t, isSequence(nil))
	assert.False(t, isSequence(map[string]any{}))
}
