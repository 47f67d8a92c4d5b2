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

// Package params validates and type-coerces named request inputs into the
// strongly-typed values a handler expects.
//
// Unlike struct-tag binding, params works from an explicit declaration: each
// parameter names its input source (path, JSON body, query, form, multipart
// files), its declared type, and its semantic constraints. The engine decides
// presence, applies defaults and optionality, coerces raw values toward the
// declared type, checks type conformance, and runs the source's constraint
// checks, producing either a validated value set or a precise, typed error.
//
// # Declaring parameters
//
//	declared := []params.Param{
//	    {Name: "id", Type: params.Type[int](), Source: params.Path()},
//	    {Name: "username", Type: params.Type[string](), Source: params.JSON(params.MinLen(5), params.Blacklist("<>"))},
//	    {Name: "age", Type: params.Type[int](), Source: params.JSON(params.Min(18), params.Max(99))},
//	    {Name: "nicknames", Type: params.List(params.Type[string]()), Source: params.JSON()},
//	    {Name: "password_expiry", Type: params.Union(params.Type[int](), params.Type[float64]()), Source: params.JSON()},
//	    {Name: "is_admin", Type: params.Type[bool](), Source: params.Query(params.Default(false))},
//	}
//
// # Type descriptors
//
// Declared types are built from [Type], [List], [Union], [Optional], [Any]
// and [Null]. A union may contain a list alternative; the engine collapses
// the union to that alternative once the supplied value proves the list case.
// Optional(T) is sugar for Union(T, Null): an absent optional parameter
// resolves to nil and skips conversion and constraint checks entirely.
//
// # Running a session
//
// A [Session] resolves every declared parameter against a per-request
// [Bundle] snapshot:
//
//	session := params.NewSession(declared)
//	validated, err := session.Run(bundle)
//
// Sessions are stateless and safe for concurrent use; each Run operates on
// its own Bundle and result set. The default policy is fail-fast: the first
// failing parameter aborts the session. [WithAllErrors] switches to a
// collect-all mode that returns a [MultiError].
//
// The rivaas.dev/params/middleware package assembles the Bundle from an
// *http.Request and wires sessions into a net/http handler chain.
package params
