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

package toml

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	t.Parallel()

	doc := "username = \"geraint\"\nage = 25\nnicknames = [\"al\", \"bo\"]\n"

	m, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, "geraint", m["username"])
	assert.Equal(t, int64(25), m["age"])
	assert.Equal(t, []any{"al", "bo"}, m["nicknames"])
}

func TestDecode_EmptyBody(t *testing.T) {
	t.Parallel()

	m, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, m)
}

func TestDecode_Malformed(t *testing.T) {
	t.Parallel()

	_, err := Decode(strings.NewReader("username = "))
	assert.Error(t, err)
}
