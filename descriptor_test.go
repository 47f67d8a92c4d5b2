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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescriptor_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		d        Descriptor
		expected string
	}{
		{"plain int", Type[int](), "int"},
		{"plain string", Type[string](), "string"},
		{"plain float", Type[float64](), "float64"},
		{"file handle", Type[*File](), "*params.File"},
		{"list of string", List(Type[string]()), "[]string"},
		{"union", Union(Type[int](), Type[float64]()), "int | float64"},
		{"optional", Optional(Type[string]()), "string | null"},
		{"optional list", Optional(List(Type[int]())), "[]int | null"},
		{"union with list member", Union(List(Type[string]()), Type[int]()), "[]string | int"},
		{"any", Any(), "any"},
		{"null", Null, "null"},
		{"list of union", List(Union(Type[int](), Type[string]())), "[]int | string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.d.String())
		})
	}
}

func TestDescriptor_Optional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		d        Descriptor
		expected bool
	}{
		{"plain type is required", Type[int](), false},
		{"list is required", List(Type[string]()), false},
		{"union without null is required", Union(Type[int](), Type[float64]()), false},
		{"optional admits absence", Optional(Type[int]()), true},
		{"explicit null member admits absence", Union(Type[int](), Null), true},
		{"nested optional admits absence", Union(Type[int](), Optional(Type[string]())), true},
		{"any is required", Any(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.d.optional())
		})
	}
}
