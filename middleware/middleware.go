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
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"

	json "github.com/goccy/go-json"

	"rivaas.dev/params"
	"rivaas.dev/params/errors"
)

// ErrBodyNotObject is returned when a structured request body decodes to
// something other than a name-to-value object.
var ErrBodyNotObject = stderrors.New("request body must be an object")

type contextKey struct{}

// FromContext returns the validated parameter set stored by the middleware,
// or nil when validation did not run for this request.
func FromContext(ctx context.Context) params.Validated {
	v, _ := ctx.Value(contextKey{}).(params.Validated)

	return v
}

// New builds a middleware that validates the declared parameters before
// invoking the next handler. The session is constructed once; each request
// gets its own bundle snapshot and validated set.
func New(declared []params.Param, opts ...Option) func(http.Handler) http.Handler {
	o := &Options{
		formatter: errors.NewSimple(),
		decoders:  map[string]DecoderFunc{"application/json": DecodeJSON},
		pathParams: func(r *http.Request, name string) (string, bool) {
			v := r.PathValue(name)
			return v, v != ""
		},
		maxMemory: 32 << 20,
	}
	for _, opt := range opts {
		opt(o)
	}

	session := params.NewSession(declared, o.sessionOpts...)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			bundle, err := buildBundle(r, declared, o)
			if err != nil {
				fail(w, r, errors.WithStatus(err, http.StatusBadRequest), o)
				return
			}

			validated, err := session.Run(bundle)
			if err != nil {
				fail(w, r, err, o)
				return
			}

			ctx := context.WithValue(r.Context(), contextKey{}, validated)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// fail writes a validation failure: verbatim through the custom error
// handler when one is configured, otherwise through the formatter.
func fail(w http.ResponseWriter, r *http.Request, err error, o *Options) {
	if o.errorHandler != nil {
		o.errorHandler(w, r, err)
		return
	}

	resp := o.formatter.Format(r, err)
	w.Header().Set("Content-Type", resp.ContentType)
	w.WriteHeader(resp.Status)
	_ = json.NewEncoder(w).Encode(resp.Body)
}

// buildBundle snapshots the request's inputs into a params.Bundle.
func buildBundle(r *http.Request, declared []params.Param, o *Options) (*params.Bundle, error) {
	b := params.NewBundle()

	setValues(b, params.SourceQuery, r.URL.Query())

	mediaType := ""
	if ct := r.Header.Get("Content-Type"); ct != "" {
		if mt, _, err := mime.ParseMediaType(ct); err == nil {
			mediaType = mt
		}
	}

	switch {
	case strings.HasPrefix(mediaType, "multipart/"):
		if err := r.ParseMultipartForm(o.maxMemory); err != nil {
			return nil, fmt.Errorf("malformed multipart form: %w", err)
		}
		setValues(b, params.SourceForm, url.Values(r.MultipartForm.Value))
		for name, headers := range r.MultipartForm.File {
			if len(headers) == 1 {
				b.Set(params.SourceMultipart, name, params.NewFile(headers[0]))
				continue
			}
			files := make([]any, 0, len(headers))
			for _, fh := range headers {
				files = append(files, params.NewFile(fh))
			}
			b.Set(params.SourceMultipart, name, files)
		}

	case mediaType == "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("malformed form body: %w", err)
		}
		setValues(b, params.SourceForm, r.PostForm)

	default:
		if dec, ok := o.decoders[mediaType]; ok && r.Body != nil && r.ContentLength != 0 {
			body, err := dec(r.Body)
			if err != nil {
				return nil, fmt.Errorf("malformed request body: %w", err)
			}
			for name, value := range body {
				b.Set(params.SourceJSON, name, value)
			}
		}
	}

	for _, p := range declared {
		if p.Source == nil || p.Source.Kind() != params.SourcePath {
			continue
		}
		if v, ok := o.pathParams(r, p.Name); ok {
			b.Set(params.SourcePath, p.Name, v)
		}
	}

	return b, nil
}

// setValues stores query/form values, turning repeated keys and bracket
// notation ("ids[]=1&ids[]=2") into sequences.
func setValues(b *params.Bundle, src params.Source, values url.Values) {
	for key, vals := range values {
		if len(vals) == 0 {
			continue
		}
		name := strings.TrimSuffix(key, "[]")
		if name != key || len(vals) > 1 {
			seq := make([]any, len(vals))
			for i, v := range vals {
				seq[i] = v
			}
			b.Set(src, name, seq)
			continue
		}
		b.Set(src, name, vals[0])
	}
}

// DecodeJSON is the built-in application/json body decoder.
func DecodeJSON(r io.Reader) (map[string]any, error) {
	var v any
	if err := json.NewDecoder(r).Decode(&v); err != nil {
		if stderrors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}

	switch m := v.(type) {
	case nil:
		return nil, nil
	case map[string]any:
		return m, nil
	default:
		return nil, ErrBodyNotObject
	}
}
