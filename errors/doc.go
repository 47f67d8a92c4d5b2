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

// Package errors formats validation failures as HTTP error responses.
//
// The package is framework-agnostic: a [Formatter] turns an error into a
// [Response] (status, content type, body) and the caller writes it with
// whatever HTTP machinery it uses. Two formatters are provided: [Simple]
// produces plain {"error": "..."} JSON objects, and [RFC9457] produces
// RFC 9457 Problem Details.
//
// Errors can shape their own responses through three optional interfaces:
// [ErrorType] (status code), [ErrorCode] (machine-readable code) and
// [ErrorDetails] (structured detail payload). The parameter validation
// errors in rivaas.dev/params implement these, so a missing or malformed
// parameter formats as a 400 with a stable code while a broken declaration
// surfaces as a 500.
package errors
