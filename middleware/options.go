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

package middleware

import (
	"io"
	"net/http"

	"rivaas.dev/params"
	"rivaas.dev/params/errors"
)

// DecoderFunc decodes a request body into a flat name-to-value mapping.
// The yaml, toml and msgpack subpackages each export one.
type DecoderFunc func(r io.Reader) (map[string]any, error)

// PathExtractor resolves a path parameter from the request. The default
// uses http.Request.PathValue; routers with their own parameter storage
// supply a replacement via [WithPathParams].
type PathExtractor func(r *http.Request, name string) (string, bool)

// ErrorHandler writes a response for a validation failure, replacing the
// default formatter entirely. The handler receives the raw error object and
// its output is returned verbatim.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// Options configures the validation middleware.
type Options struct {
	formatter    errors.Formatter
	errorHandler ErrorHandler
	decoders     map[string]DecoderFunc
	pathParams   PathExtractor
	maxMemory    int64
	sessionOpts  []params.SessionOption
}

// Option configures the validation middleware.
type Option func(*Options)

// WithFormatter sets the errors.Formatter used for failure responses.
// The default is errors.NewSimple().
func WithFormatter(f errors.Formatter) Option {
	return func(o *Options) {
		o.formatter = f
	}
}

// WithErrorHandler installs a custom failure callback. When set, the
// formatter is bypassed and the handler's response is used verbatim. The
// callback must accept any of the validation error kinds; inspect them with
// errors.As.
func WithErrorHandler(h ErrorHandler) Option {
	return func(o *Options) {
		o.errorHandler = h
	}
}

// WithBodyDecoder registers a body decoder for a media type.
//
// Example:
//
//	middleware.New(declared,
//	    middleware.WithBodyDecoder("application/yaml", yaml.Decode),
//	    middleware.WithBodyDecoder("application/x-msgpack", msgpack.Decode),
//	)
func WithBodyDecoder(mediaType string, dec DecoderFunc) Option {
	return func(o *Options) {
		o.decoders[mediaType] = dec
	}
}

// WithPathParams replaces the stdlib PathValue lookup for routers that
// store path parameters elsewhere.
func WithPathParams(extract PathExtractor) Option {
	return func(o *Options) {
		o.pathParams = extract
	}
}

// WithMaxMemory sets the memory limit handed to ParseMultipartForm.
// The default is 32 MiB.
func WithMaxMemory(n int64) Option {
	return func(o *Options) {
		o.maxMemory = n
	}
}

// WithSessionOptions forwards options to the underlying validation session,
// e.g. params.WithAllErrors() or params.WithEvents(...).
func WithSessionOptions(opts ...params.SessionOption) Option {
	return func(o *Options) {
		o.sessionOpts = append(o.sessionOpts, opts...)
	}
}
