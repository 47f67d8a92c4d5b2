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

// Binding is the per-source capability contract. A binding knows which
// bundle section it reads, carries an optional default and the parameter's
// semantic constraints, and performs best-effort coercion toward a
// normalized [Target].
//
// The engine is written only against this interface; [Path], [JSON],
// [Query], [Form] and [Multipart] are the concrete bindings.
type Binding interface {
	// Kind returns the source this binding reads from.
	Kind() Source

	// Default returns the value substituted when the input is absent,
	// and whether one was declared.
	Default() (any, bool)

	// Convert attempts best-effort coercion of the raw value toward the
	// target. It must be idempotent on already-conforming input and must
	// never fail: a value that cannot be coerced is returned unchanged,
	// deferring the mismatch to the engine's conformance check.
	Convert(raw any, target Target) any

	// Validate runs the binding's semantic constraints against an
	// already type-conforming value. It does not re-check types.
	Validate(value any) error
}

// Param declares the contract for one handler parameter: its name, its
// declared type, and the source binding carrying constraints and default.
// A Param is immutable once declared.
type Param struct {
	Name   string
	Type   Descriptor
	Source Binding
}

// BindingOption configures a concrete binding: a default value via
// [Default], or semantic constraints such as [MinLen] and [Min].
type BindingOption func(*binding)

// Default declares the value substituted when the input is absent. The
// default is coerced and validated like a supplied value, so it exercises
// the binding's normal path rather than the optional path.
func Default(v any) BindingOption {
	return func(b *binding) {
		b.def = v
		b.hasDefault = true
	}
}

// binding is the single concrete Binding implementation; the constructors
// differ only in source kind and whether scalar values may be wrapped into
// one-element sequences for list-shaped targets.
type binding struct {
	source      Source
	def         any
	hasDefault  bool
	wrapSingles bool
	constraints []constraintFunc
}

// Path binds a parameter to a URL path value. Path values flow through the
// router's own matching; the engine's coercion makes them typed.
func Path(opts ...BindingOption) Binding {
	return newBinding(SourcePath, true, opts)
}

// JSON binds a parameter to a top-level key of the structured request body.
// Body values arrive already decoded, so sequences must arrive list-shaped;
// scalars are never wrapped.
func JSON(opts ...BindingOption) Binding {
	return newBinding(SourceJSON, false, opts)
}

// Query binds a parameter to a URL query value. Repeated keys and bracket
// notation ("ids[]=1&ids[]=2") arrive as sequences; a single value is
// wrapped when a list is required.
func Query(opts ...BindingOption) Binding {
	return newBinding(SourceQuery, true, opts)
}

// Form binds a parameter to a form value, with the same sequence handling
// as [Query].
func Form(opts ...BindingOption) Binding {
	return newBinding(SourceForm, true, opts)
}

// Multipart binds a parameter to uploaded files. Values are [*File] handles
// passed through uninterpreted; list and union handling still applies
// structurally. The engine never retains or closes the handles.
func Multipart(opts ...BindingOption) Binding {
	return newBinding(SourceMultipart, true, opts)
}

func newBinding(src Source, wrapSingles bool, opts []BindingOption) *binding {
	b := &binding{source: src, wrapSingles: wrapSingles}
	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Kind returns the source this binding reads from.
func (b *binding) Kind() Source {
	return b.source
}

// Default returns the declared default value, if any.
func (b *binding) Default() (any, bool) {
	return b.def, b.hasDefault
}

// Validate runs the declared constraints in declaration order and returns
// the first failure.
func (b *binding) Validate(value any) error {
	for _, check := range b.constraints {
		if err := check(value); err != nil {
			return err
		}
	}

	return nil
}
