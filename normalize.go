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

// Target is the normalized form of a [Descriptor]: the flattened set of
// concrete candidate types plus list/optional flags. Bindings receive a
// Target in [Binding.Convert] so coercion can aim at the right shape.
type Target struct {
	// Candidates is the flattened set of acceptable concrete types, in
	// declaration order. For list-shaped targets these are the element
	// types. A nil Candidates set means elements are unconstrained.
	Candidates []reflect.Type

	// IsList reports that the value must be a sequence.
	IsList bool

	// Optional reports that the null marker was a union member. It is
	// recorded here for completeness; absence handling happens before
	// normalization, so a present value is checked against Candidates
	// as usual.
	Optional bool

	// Any reports that validation is skipped for this parameter.
	Any bool
}

// contains reports whether typ is an acceptable concrete type.
func (t Target) contains(typ reflect.Type) bool {
	if t.Candidates == nil {
		return true
	}
	for _, c := range t.Candidates {
		if c == typ {
			return true
		}
	}

	return false
}

// normalize resolves a declared descriptor into a [Target] against the
// current raw value. The raw value participates only in the union/list
// election: a union containing a list alternative collapses to that
// alternative once the raw value is a sequence whose every element already
// matches the alternative's element types.
//
// The election inspects the value before conversion, so it is inherently
// data-dependent; ambiguous inputs choose whichever branch the raw shape
// proves first, in declaration order.
func normalize(d Descriptor, raw any) Target {
	switch d.kind {
	case kindAny:
		return Target{Any: true}
	case kindNull:
		return Target{Optional: true, Candidates: []reflect.Type{}}
	case kindUnion:
		return normalizeUnion(d, raw)
	case kindList:
		return normalizeList(*d.elem)
	default:
		return Target{Candidates: []reflect.Type{d.typ}}
	}
}

// normalizeUnion flattens union members in declaration order, recording the
// null marker as the optional flag and running the list election.
func normalizeUnion(d Descriptor, raw any) Target {
	t := Target{Candidates: []reflect.Type{}}
	members := flattenMembers(d)

	for _, m := range members {
		if m.kind == kindNull {
			t.Optional = true
		}
	}

	// List election: the first list member whose element types already
	// match every element of the raw sequence wins the whole union.
	if isSequence(raw) {
		for _, m := range members {
			if m.kind != kindList {
				continue
			}
			elems := normalizeList(*m.elem)
			if sequenceMatches(raw, elems) {
				elems.Optional = t.Optional
				return elems
			}
		}
	}

	// Otherwise the remaining plain members stand as independent
	// candidates. Non-elected list members contribute nothing a single
	// value could ever conform to, so they are dropped.
	for _, m := range members {
		if m.kind == kindPlain {
			t.Candidates = append(t.Candidates, m.typ)
		}
	}

	return t
}

// normalizeList resolves a list descriptor: the element may be a plain type
// or a union whose alternatives become independent element candidates.
func normalizeList(elem Descriptor) Target {
	t := Target{IsList: true}

	switch elem.kind {
	case kindPlain:
		t.Candidates = []reflect.Type{elem.typ}
	case kindUnion:
		t.Candidates = []reflect.Type{}
		for _, m := range flattenMembers(elem) {
			if m.kind == kindPlain {
				t.Candidates = append(t.Candidates, m.typ)
			}
		}
	case kindAny:
		// Unconstrained elements: only the sequence shape is checked.
		t.Candidates = nil
	default:
		t.Candidates = []reflect.Type{}
	}

	return t
}

// flattenMembers expands nested unions into a flat member list,
// preserving declaration order.
func flattenMembers(d Descriptor) []Descriptor {
	out := make([]Descriptor, 0, len(d.members))
	for _, m := range d.members {
		if m.kind == kindUnion {
			out = append(out, flattenMembers(m)...)
			continue
		}
		out = append(out, m)
	}

	return out
}

// isSequence reports whether the raw value is list-shaped.
func isSequence(v any) bool {
	if v == nil {
		return false
	}
	k := reflect.ValueOf(v).Kind()

	return k == reflect.Slice || k == reflect.Array
}

// sequenceMatches reports whether every element of the raw sequence already
// has a runtime type in the target's candidate set.
func sequenceMatches(raw any, t Target) bool {
	rv := reflect.ValueOf(raw)
	for i := range rv.Len() {
		elem := rv.Index(i).Interface()
		if elem == nil {
			return false
		}
		if !t.contains(reflect.TypeOf(elem)) {
			return false
		}
	}

	return true
}
