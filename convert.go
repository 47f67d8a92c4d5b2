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
	"math"
	"reflect"
	"strings"

	"github.com/spf13/cast"
)

// Type references used during coercion and conformance checking.
var (
	intType     = reflect.TypeFor[int]()
	int64Type   = reflect.TypeFor[int64]()
	float64Type = reflect.TypeFor[float64]()
	boolType    = reflect.TypeFor[bool]()
	stringType  = reflect.TypeFor[string]()
)

// Convert coerces the raw value toward the target, candidate by candidate in
// declaration order. Already-conforming values pass through untouched, and a
// value no candidate accepts is returned unchanged for the conformance check
// to reject.
func (b *binding) Convert(raw any, target Target) any {
	if target.Any || raw == nil {
		return raw
	}

	if target.IsList {
		return b.convertList(raw, target)
	}

	return convertOne(raw, target.Candidates)
}

// convertList coerces toward a sequence target. Textual sources wrap a
// single scalar into a one-element sequence; body values must already be
// list-shaped. Element coercion is applied per element.
func (b *binding) convertList(raw any, target Target) any {
	if !isSequence(raw) {
		if !b.wrapSingles {
			return raw
		}
		raw = []any{raw}
	}

	if sequenceMatches(raw, target) {
		return raw
	}

	rv := reflect.ValueOf(raw)
	out := make([]any, rv.Len())
	for i := range rv.Len() {
		out[i] = convertOne(rv.Index(i).Interface(), target.Candidates)
	}

	return out
}

// convertOne coerces a single value: the first candidate the value already
// conforms to, or converts to, wins.
func convertOne(raw any, candidates []reflect.Type) any {
	if raw == nil {
		return raw
	}

	rt := reflect.TypeOf(raw)
	for _, c := range candidates {
		if rt == c {
			return raw
		}
	}

	for _, c := range candidates {
		if v, ok := coerce(raw, c); ok {
			return v
		}
	}

	return raw
}

// coerce attempts a single conversion. Values are never stringified: a JSON
// number bound to a string parameter stays a number and fails conformance,
// matching the strictness of the declared type.
func coerce(raw any, target reflect.Type) (any, bool) {
	switch target {
	case intType:
		return coerceInt(raw)
	case int64Type:
		if v, ok := coerceInt(raw); ok {
			return int64(v.(int)), true
		}
		return nil, false
	case float64Type:
		return coerceFloat(raw)
	case boolType:
		return coerceBool(raw)
	default:
		return nil, false
	}
}

func coerceInt(raw any) (any, bool) {
	switch v := raw.(type) {
	case string:
		// cast accepts "5" and the zero-decimal form "5.0"; "5.5" fails.
		if n, err := cast.ToIntE(strings.TrimSpace(v)); err == nil {
			return n, true
		}
	case float64:
		if v == math.Trunc(v) && !math.IsInf(v, 0) {
			return int(v), true
		}
	case float32:
		f := float64(v)
		if f == math.Trunc(f) {
			return int(f), true
		}
	case int64:
		return int(v), true
	}

	return nil, false
}

func coerceFloat(raw any) (any, bool) {
	switch v := raw.(type) {
	case string:
		if f, err := cast.ToFloat64E(strings.TrimSpace(v)); err == nil {
			return f, true
		}
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case float32:
		return float64(v), true
	}

	return nil, false
}

func coerceBool(raw any) (any, bool) {
	s, ok := raw.(string)
	if !ok {
		return nil, false
	}
	b, err := parseBoolGenerous(s)
	if err != nil {
		return nil, false
	}

	return b, true
}

// parseBoolGenerous parses the boolean spellings accepted from textual
// sources: true/false, 1/0, yes/no, on/off, t/f, y/n (case-insensitive).
func parseBoolGenerous(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "on", "t", "y":
		return true, nil
	case "false", "0", "no", "off", "f", "n", "":
		return false, nil
	default:
		return false, errInvalidBoolean
	}
}
