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

// Package msgpack provides MessagePack request body decoding for the
// validation middleware, using github.com/vmihailenco/msgpack/v5.
//
// Example:
//
//	middleware.New(declared,
//	    middleware.WithBodyDecoder("application/x-msgpack", msgpack.Decode),
//	)
package msgpack

import (
	"errors"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// Decode decodes a MessagePack document into a flat name-to-value mapping.
// An empty body decodes to no values.
func Decode(r io.Reader) (map[string]any, error) {
	var m map[string]any
	if err := msgpack.NewDecoder(r).Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}

	return m, nil
}
