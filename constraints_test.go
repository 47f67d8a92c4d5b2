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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstraints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		binding Binding
		value   any
		wantErr string
	}{
		{"min length ok", JSON(MinLen(3)), "abcd", ""},
		{"min length short", JSON(MinLen(3)), "ab", "must have length at least 3"},
		{"min length on list", JSON(MinLen(3)), []any{"a", "b"}, "must have length at least 3"},
		{"max length ok", JSON(MaxLen(3)), "abc", ""},
		{"max length long", JSON(MaxLen(3)), "abcd", "must have length at most 3"},
		{"length ignores numbers", JSON(MinLen(3)), 42, ""},
		{"min ok", JSON(Min(18)), 18, ""},
		{"min below", JSON(Min(18)), 17, "must be at least 18"},
		{"min on float", JSON(Min(0.5)), 0.25, "must be at least 0.5"},
		{"min on list element", JSON(Min(10)), []any{12, 9}, "must be at least 10"},
		{"max ok", JSON(Max(99)), 99, ""},
		{"max above", JSON(Max(99)), 100, "must be at most 99"},
		{"numeric bounds ignore strings", JSON(Min(18)), "young", ""},
		{"whitelist ok", JSON(Whitelist("0123456789")), "137", ""},
		{"whitelist bad rune", JSON(Whitelist("0123456789")), "13x7", `may only contain characters from "0123456789"`},
		{"blacklist ok", JSON(Blacklist("<>")), "plain", ""},
		{"blacklist hit", JSON(Blacklist("<>")), "a<b", `must not contain any of "<>"`},
		{"blacklist on list element", JSON(Blacklist("<>")), []any{"ok", "<script>"}, `must not contain any of "<>"`},
		{"pattern ok", JSON(Pattern(`^\d{4}$`)), "2025", ""},
		{"pattern miss", JSON(Pattern(`^\d{4}$`)), "20x5", `must match pattern "^\d{4}$"`},
		{"one of ok", JSON(OneOf("asc", "desc")), "asc", ""},
		{"one of miss", JSON(OneOf("asc", "desc")), "up", "must be one of: asc, desc"},
		{"max size ok", Multipart(MaxSize(1024)), &File{Name: "a.png", Size: 512}, ""},
		{"max size exceeded", Multipart(MaxSize(1024)), &File{Name: "a.png", Size: 2048}, `file "a.png" exceeds maximum size of 1024 bytes`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.binding.Validate(tt.value)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestConstraints_DeclarationOrder(t *testing.T) {
	t.Parallel()

	b := JSON(MinLen(5), Blacklist("<>"))

	err := b.Validate("a<")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "length at least 5")
}

func TestFunc(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("must be even")
	b := JSON(Func(func(v any) error {
		if n, ok := v.(int); ok && n%2 != 0 {
			return sentinel
		}
		return nil
	}))

	assert.NoError(t, b.Validate(4))
	assert.ErrorIs(t, b.Validate(3), sentinel)
}

func TestRules(t *testing.T) {
	t.Parallel()

	t.Run("tag without parameter", func(t *testing.T) {
		t.Parallel()

		b := JSON(Rules("email"))
		assert.NoError(t, b.Validate("dev@rivaas.dev"))

		err := b.Validate("not-an-email")
		require.Error(t, err)
		assert.Equal(t, "failed rule 'email'", err.Error())
	})

	t.Run("tag with parameter", func(t *testing.T) {
		t.Parallel()

		b := JSON(Rules("gte=18"))
		assert.NoError(t, b.Validate(21))

		err := b.Validate(15)
		require.Error(t, err)
		assert.Equal(t, "failed rule 'gte=18'", err.Error())
	})

	t.Run("compound expression stops at the first failing rule", func(t *testing.T) {
		t.Parallel()

		b := JSON(Rules("gte=18,lte=99"))
		assert.NoError(t, b.Validate(40))

		err := b.Validate(150)
		require.Error(t, err)
		assert.Equal(t, "failed rule 'lte=99'", err.Error())
	})
}

func TestSchema(t *testing.T) {
	t.Parallel()

	b := JSON(Schema(`{"type": "string", "minLength": 3}`))

	assert.NoError(t, b.Validate("abc"))

	err := b.Validate("ab")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not satisfy schema")
}

func TestSchema_InvalidDocumentPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { Schema(`{"type": 12`) })
}

func TestPattern_InvalidExpressionPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { Pattern(`([`) })
}
