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

import "reflect"

// Resolve runs the per-parameter pipeline against a bundle snapshot:
// presence, default/optional handling, type normalization, coercion,
// conformance, and the binding's semantic constraints.
//
// Terminal outcomes are the coerced value, nil for an absent optional
// parameter, or one of the typed errors ([UnknownSourceError],
// [MissingParamError], [TypeMismatchError], [ConstraintError]).
func Resolve(p Param, bundle *Bundle) (any, error) {
	if p.Source == nil {
		return nil, &UnknownSourceError{Param: p.Name}
	}
	src := p.Source.Kind()
	if bundle == nil || !bundle.has(src) {
		return nil, &UnknownSourceError{Param: p.Name, Source: src}
	}

	// A present-but-nil value is indistinguishable from absence: a JSON
	// body carrying {"x": null} takes the same path as one without "x".
	raw, ok := bundle.Lookup(src, p.Name)
	if !ok || raw == nil {
		if def, has := p.Source.Default(); has {
			raw = def
		} else if p.Type.optional() {
			return nil, nil
		} else {
			return nil, &MissingParamError{Param: p.Name, Source: src}
		}
	}

	if p.Type.isAny() {
		return raw, nil
	}

	target := normalize(p.Type, raw)
	converted := p.Source.Convert(raw, target)

	if err := conform(p, target, converted); err != nil {
		return nil, err
	}

	if err := p.Source.Validate(converted); err != nil {
		return nil, &ConstraintError{Param: p.Name, Declared: p.Type.String(), Reason: err.Error()}
	}

	return converted, nil
}

// conform checks that the converted value's runtime type (or every element's
// type, for list-shaped targets) is in the candidate set. Mismatch errors
// always name the originally declared type.
func conform(p Param, target Target, v any) error {
	if target.Any {
		return nil
	}

	mismatch := func() error {
		return &TypeMismatchError{Param: p.Name, Declared: p.Type.String(), Got: typeName(v)}
	}

	if target.IsList {
		if !isSequence(v) {
			return mismatch()
		}
		rv := reflect.ValueOf(v)
		for i := range rv.Len() {
			elem := rv.Index(i).Interface()
			if elem == nil || !target.contains(reflect.TypeOf(elem)) {
				return mismatch()
			}
		}

		return nil
	}

	if v == nil || !target.contains(reflect.TypeOf(v)) {
		return mismatch()
	}

	return nil
}

// typeName renders a value's runtime type for error messages.
func typeName(v any) string {
	if v == nil {
		return "null"
	}

	return reflect.TypeOf(v).String()
}
