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
	"strings"
)

// descriptorKind discriminates the Descriptor variants.
type descriptorKind int

const (
	kindPlain descriptorKind = iota
	kindList
	kindUnion
	kindNull
	kindAny
)

// Descriptor describes the declared type of a parameter. It is a small
// tagged variant built once at declaration time with [Type], [List],
// [Union], [Optional] and [Any], and resolved against the runtime value
// by the engine on every request.
//
// Example:
//
//	params.Type[int]()                                  // int
//	params.List(params.Type[string]())                  // []string
//	params.Union(params.Type[int](), params.Type[float64]()) // int | float64
//	params.Optional(params.Type[string]())              // string | null
type Descriptor struct {
	kind    descriptorKind
	typ     reflect.Type // kindPlain only
	elem    *Descriptor  // kindList only
	members []Descriptor // kindUnion only
}

// Null is the absent-value marker. It is only meaningful as a union member;
// [Optional] is the usual way to introduce it.
var Null = Descriptor{kind: kindNull}

// Type declares a plain concrete type.
func Type[T any]() Descriptor {
	return Descriptor{kind: kindPlain, typ: reflect.TypeFor[T]()}
}

// List declares a homogeneous sequence. The element descriptor may be a
// plain type or a union of plain types; values must arrive list-shaped.
func List(elem Descriptor) Descriptor {
	e := elem
	return Descriptor{kind: kindList, elem: &e}
}

// Union declares that a value must conform to exactly one of the given
// alternatives, tried in declaration order. One alternative may itself be a
// [List]; the engine collapses the union to that alternative once the
// supplied value proves the list case.
func Union(members ...Descriptor) Descriptor {
	return Descriptor{kind: kindUnion, members: members}
}

// Optional declares a type that may be absent from its source. It is sugar
// for Union(d, Null): an absent optional parameter with no default resolves
// to nil and skips all further checks.
func Optional(d Descriptor) Descriptor {
	return Union(d, Null)
}

// Any declares that validation is skipped entirely: the raw value passes
// through to the handler unmodified.
func Any() Descriptor {
	return Descriptor{kind: kindAny}
}

// isAny reports whether the descriptor is the bare any marker.
func (d Descriptor) isAny() bool {
	return d.kind == kindAny
}

// optional reports whether the descriptor admits absence, i.e. whether the
// null marker appears anywhere in its union members.
func (d Descriptor) optional() bool {
	switch d.kind {
	case kindNull:
		return true
	case kindUnion:
		for _, m := range d.members {
			if m.optional() {
				return true
			}
		}
	}

	return false
}

// String renders the declared type in Go-like syntax. It is used verbatim in
// error messages, so it always reflects the original declaration rather than
// any normalization the engine performed.
//
// Examples: "int", "[]string", "int | float64", "string | null", "any".
func (d Descriptor) String() string {
	switch d.kind {
	case kindPlain:
		if d.typ == nil {
			return "<nil>"
		}
		return d.typ.String()
	case kindList:
		return "[]" + d.elem.String()
	case kindUnion:
		parts := make([]string, 0, len(d.members))
		for _, m := range d.members {
			parts = append(parts, m.String())
		}
		return strings.Join(parts, " | ")
	case kindNull:
		return "null"
	case kindAny:
		return "any"
	default:
		return "<invalid>"
	}
}
