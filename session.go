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

import "errors"

// Validated is the result of a successful session: coerced values keyed by
// parameter name. Absent optional parameters are present with a nil value.
type Validated map[string]any

// Has reports whether a parameter resolved to a non-nil value.
func (v Validated) Has(name string) bool {
	return v[name] != nil
}

// String returns the named value as a string, or "" when it is absent or
// has a different type.
func (v Validated) String(name string) string {
	s, _ := v[name].(string)
	return s
}

// Int returns the named value as an int, or 0 when it is absent or has a
// different type.
func (v Validated) Int(name string) int {
	n, _ := v[name].(int)
	return n
}

// Float64 returns the named value as a float64, or 0 when it is absent or
// has a different type.
func (v Validated) Float64(name string) float64 {
	f, _ := v[name].(float64)
	return f
}

// Bool returns the named value as a bool, or false when it is absent or has
// a different type.
func (v Validated) Bool(name string) bool {
	b, _ := v[name].(bool)
	return b
}

// StringSlice returns the named list value's string elements.
func (v Validated) StringSlice(name string) []string {
	switch vals := v[name].(type) {
	case []string:
		return vals
	case []any:
		out := make([]string, 0, len(vals))
		for _, e := range vals {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// File returns the named uploaded file handle, or nil.
func (v Validated) File(name string) *File {
	f, _ := v[name].(*File)
	return f
}

// Session resolves all declared parameters of one handler against
// per-request bundles. A Session is stateless and safe for concurrent use;
// build it once at registration time and share it across requests.
type Session struct {
	declared  []Param
	allErrors bool
	events    Events
}

// NewSession creates a Session over the declared parameters.
func NewSession(declared []Param, opts ...SessionOption) *Session {
	s := &Session{declared: declared}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Run resolves every declared parameter, in declaration order, against the
// bundle.
//
// The default policy is fail-fast: the first failure aborts the session and
// becomes its error. In collect-all mode ([WithAllErrors]) request-level
// failures are aggregated into a [MultiError]; an [UnknownSourceError]
// still aborts immediately, since it reports a broken declaration rather
// than a bad request.
func (s *Session) Run(bundle *Bundle) (Validated, error) {
	validated := make(Validated, len(s.declared))
	stats := Stats{Declared: len(s.declared)}
	defer func() {
		if s.events.Done != nil {
			s.events.Done(stats)
		}
	}()

	var multi MultiError
	for _, p := range s.declared {
		value, err := Resolve(p, bundle)
		if err != nil {
			stats.Failed++

			var misconfigured *UnknownSourceError
			if errors.As(err, &misconfigured) || !s.allErrors {
				return nil, err
			}
			multi.Errors = append(multi.Errors, err)
			continue
		}

		stats.Resolved++
		validated[p.Name] = value
		if s.events.ParamResolved != nil {
			s.events.ParamResolved(p.Name, p.Source.Kind())
		}
	}

	if len(multi.Errors) > 0 {
		return nil, &multi
	}

	return validated, nil
}
