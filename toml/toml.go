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

// Package toml provides TOML request body decoding for the validation
// middleware, using github.com/BurntSushi/toml.
//
// Example:
//
//	middleware.New(declared,
//	    middleware.WithBodyDecoder("application/toml", toml.Decode),
//	)
package toml

import (
	"io"

	"github.com/BurntSushi/toml"
)

// Decode decodes a TOML document into a flat name-to-value mapping.
func Decode(r io.Reader) (map[string]any, error) {
	var m map[string]any
	if _, err := toml.NewDecoder(r).Decode(&m); err != nil {
		return nil, err
	}

	return m, nil
}
