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

// Source identifies the request origin a parameter is bound to.
type Source int

const (
	// SourceUnknown is an unspecified source.
	SourceUnknown Source = iota

	// SourcePath represents URL path parameters.
	SourcePath

	// SourceJSON represents the structured request body.
	SourceJSON

	// SourceQuery represents URL query parameters.
	SourceQuery

	// SourceForm represents form data.
	SourceForm

	// SourceMultipart represents uploaded files.
	SourceMultipart
)

// String returns the string representation of the source.
func (s Source) String() string {
	switch s {
	case SourcePath:
		return "path"
	case SourceJSON:
		return "json"
	case SourceQuery:
		return "query"
	case SourceForm:
		return "form"
	case SourceMultipart:
		return "file"
	default:
		return "unknown"
	}
}

// Bundle is the per-request snapshot of raw input values, organized by
// source. It is assembled once per request (the middleware package does this
// from an *http.Request) and is read-only to the engine.
//
// A stored nil value counts as absent: a JSON body with {"x": null} behaves
// exactly like a body without "x".
type Bundle struct {
	sections map[Source]map[string]any
}

// NewBundle creates a Bundle with all standard source sections initialized.
func NewBundle() *Bundle {
	return &Bundle{
		sections: map[Source]map[string]any{
			SourcePath:      {},
			SourceJSON:      {},
			SourceQuery:     {},
			SourceForm:      {},
			SourceMultipart: {},
		},
	}
}

// Set stores a raw value under the given source and name.
func (b *Bundle) Set(src Source, name string, value any) {
	if b.sections[src] == nil {
		b.sections[src] = map[string]any{}
	}
	b.sections[src][name] = value
}

// Lookup returns the raw value for name under the given source. The second
// return reports whether the key is present in the snapshot.
func (b *Bundle) Lookup(src Source, name string) (any, bool) {
	section, ok := b.sections[src]
	if !ok {
		return nil, false
	}
	v, ok := section[name]

	return v, ok
}

// has reports whether the bundle carries a section for the source.
func (b *Bundle) has(src Source) bool {
	_, ok := b.sections[src]

	return ok
}
