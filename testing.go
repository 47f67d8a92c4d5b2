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

// BundleOf builds a Bundle from literal sections, for tests and for callers
// that assemble inputs outside an HTTP request.
//
// Example:
//
//	bundle := params.BundleOf(map[params.Source]map[string]any{
//	    params.SourceJSON:  {"age": 25.0},
//	    params.SourceQuery: {"is_admin": "true"},
//	})
func BundleOf(sections map[Source]map[string]any) *Bundle {
	b := NewBundle()
	for src, values := range sections {
		for name, value := range values {
			b.Set(src, name, value)
		}
	}

	return b
}
