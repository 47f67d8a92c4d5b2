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

// Package middleware wires parameter validation into a net/http handler
// chain.
//
// The middleware snapshots the request's inputs (path values, decoded body,
// query, form data, uploaded files) into a params.Bundle, runs a validation
// session, and either stores the validated values in the request context or
// short-circuits with a formatted error response.
//
//	declared := []params.Param{
//	    {Name: "id", Type: params.Type[int](), Source: params.Path()},
//	    {Name: "age", Type: params.Type[int](), Source: params.JSON(params.Min(18), params.Max(99))},
//	}
//
//	mux := http.NewServeMux()
//	mux.Handle("POST /update/{id}", middleware.New(declared)(http.HandlerFunc(update)))
//
//	func update(w http.ResponseWriter, r *http.Request) {
//	    validated := middleware.FromContext(r.Context())
//	    _ = validated.Int("age")
//	}
//
// Request bodies are decoded by content type. application/json is built in;
// the yaml, toml and msgpack subpackages provide decoders for other body
// encodings, registered with [WithBodyDecoder].
//
// Failures are written through an errors.Formatter (default: errors.Simple,
// producing {"error": "..."} with a 400-class status for request defects and
// 500 for declaration mistakes), or handed verbatim to a custom
// [WithErrorHandler] callback.
package middleware
