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
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

// constraintFunc is a single semantic check against an already
// type-conforming value. Checks run in declaration order; the first failure
// aborts with its message.
type constraintFunc func(value any) error

func (b *binding) addConstraint(fn constraintFunc) {
	b.constraints = append(b.constraints, fn)
}

// MinLen requires a minimum length for strings and sequences.
func MinLen(n int) BindingOption {
	return func(b *binding) {
		b.addConstraint(func(v any) error {
			if l, ok := lengthOf(v); ok && l < n {
				return fmt.Errorf("must have length at least %d", n)
			}
			return nil
		})
	}
}

// MaxLen requires a maximum length for strings and sequences.
func MaxLen(n int) BindingOption {
	return func(b *binding) {
		b.addConstraint(func(v any) error {
			if l, ok := lengthOf(v); ok && l > n {
				return fmt.Errorf("must have length at most %d", n)
			}
			return nil
		})
	}
}

// Min requires a minimum numeric value. For sequences the bound applies to
// every numeric element.
func Min(min float64) BindingOption {
	return func(b *binding) {
		b.addConstraint(eachNumeric(func(f float64) error {
			if f < min {
				return fmt.Errorf("must be at least %v", min)
			}
			return nil
		}))
	}
}

// Max requires a maximum numeric value. For sequences the bound applies to
// every numeric element.
func Max(max float64) BindingOption {
	return func(b *binding) {
		b.addConstraint(eachNumeric(func(f float64) error {
			if f > max {
				return fmt.Errorf("must be at most %v", max)
			}
			return nil
		}))
	}
}

// Whitelist restricts strings to the given character set. For sequences the
// check applies to every string element.
func Whitelist(chars string) BindingOption {
	return func(b *binding) {
		b.addConstraint(eachString(func(s string) error {
			for _, r := range s {
				if !strings.ContainsRune(chars, r) {
					return fmt.Errorf("may only contain characters from %q", chars)
				}
			}
			return nil
		}))
	}
}

// Blacklist rejects strings containing any of the given characters. For
// sequences the check applies to every string element.
func Blacklist(chars string) BindingOption {
	return func(b *binding) {
		b.addConstraint(eachString(func(s string) error {
			if strings.ContainsAny(s, chars) {
				return fmt.Errorf("must not contain any of %q", chars)
			}
			return nil
		}))
	}
}

// Pattern requires strings to match the regular expression. The expression
// is compiled at declaration time; an invalid expression is a programming
// error and panics.
func Pattern(expr string) BindingOption {
	re := regexp.MustCompile(expr)
	return func(b *binding) {
		b.addConstraint(eachString(func(s string) error {
			if !re.MatchString(s) {
				return fmt.Errorf("must match pattern %q", expr)
			}
			return nil
		}))
	}
}

// OneOf requires string values to be one of the allowed spellings.
func OneOf(allowed ...string) BindingOption {
	return func(b *binding) {
		b.addConstraint(eachString(func(s string) error {
			for _, a := range allowed {
				if s == a {
					return nil
				}
			}
			return fmt.Errorf("must be one of: %s", strings.Join(allowed, ", "))
		}))
	}
}

// MaxSize caps the size in bytes of uploaded files. For sequences the cap
// applies to every file element.
func MaxSize(bytes int64) BindingOption {
	return func(b *binding) {
		b.addConstraint(eachFile(func(f *File) error {
			if f.Size > bytes {
				return fmt.Errorf("file %q exceeds maximum size of %d bytes", f.Name, bytes)
			}
			return nil
		}))
	}
}

// Func attaches a custom semantic check. The returned error's message is
// surfaced verbatim in the constraint failure.
func Func(fn func(value any) error) BindingOption {
	return func(b *binding) {
		b.addConstraint(fn)
	}
}

// Shared validator instance for the Rules constraint, created on first use.
var (
	rulesValidator     *validator.Validate
	rulesValidatorOnce sync.Once
)

func getRulesValidator() *validator.Validate {
	rulesValidatorOnce.Do(func() {
		rulesValidator = validator.New()
	})

	return rulesValidator
}

// Rules attaches a go-playground/validator rule expression, evaluated with
// Var semantics against the coerced value.
//
// Example:
//
//	params.Query(params.Rules("email"))
//	params.JSON(params.Rules("gte=18,lte=99"))
func Rules(tag string) BindingOption {
	return func(b *binding) {
		b.addConstraint(func(v any) error {
			err := getRulesValidator().Var(v, tag)
			if err == nil {
				return nil
			}
			var verrs validator.ValidationErrors
			if errors.As(err, &verrs) && len(verrs) > 0 {
				fe := verrs[0]
				if fe.Param() != "" {
					return fmt.Errorf("failed rule '%s=%s'", fe.Tag(), fe.Param())
				}
				return fmt.Errorf("failed rule '%s'", fe.Tag())
			}
			return err
		})
	}
}

// Schema validates the coerced value against an inline JSON Schema document.
// The schema is compiled at declaration time; an invalid schema is a
// programming error and panics.
//
// Example:
//
//	params.JSON(params.Schema(`{"type": "string", "format": "ipv4"}`))
func Schema(doc string) BindingOption {
	sch := mustCompileSchema(doc)
	return func(b *binding) {
		b.addConstraint(func(v any) error {
			if err := sch.Validate(v); err != nil {
				return fmt.Errorf("does not satisfy schema: %v", err)
			}
			return nil
		})
	}
}

func mustCompileSchema(doc string) *jsonschema.Schema {
	parsed, err := jsonschema.UnmarshalJSON(strings.NewReader(doc))
	if err != nil {
		panic(fmt.Sprintf("params: invalid schema document: %v", err))
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource("param-schema.json", parsed); err != nil {
		panic(fmt.Sprintf("params: invalid schema document: %v", err))
	}
	sch, err := c.Compile("param-schema.json")
	if err != nil {
		panic(fmt.Sprintf("params: invalid schema document: %v", err))
	}

	return sch
}

// lengthOf returns the length of strings and sequences.
func lengthOf(v any) (int, bool) {
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Array:
		return rv.Len(), true
	default:
		return 0, false
	}
}

// numericOf extracts a float view of any numeric value.
func numericOf(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

// eachNumeric applies a check to a numeric value, or to every numeric
// element of a sequence. Non-numeric values are out of scope for the check.
func eachNumeric(check func(float64) error) constraintFunc {
	return eachElement(func(v any) error {
		if f, ok := numericOf(v); ok {
			return check(f)
		}
		return nil
	})
}

// eachString applies a check to a string value, or to every string element
// of a sequence.
func eachString(check func(string) error) constraintFunc {
	return eachElement(func(v any) error {
		if s, ok := v.(string); ok {
			return check(s)
		}
		return nil
	})
}

// eachFile applies a check to a file handle, or to every file element of a
// sequence.
func eachFile(check func(*File) error) constraintFunc {
	return eachElement(func(v any) error {
		if f, ok := v.(*File); ok {
			return check(f)
		}
		return nil
	})
}

// eachElement lifts a scalar check over sequences.
func eachElement(check func(any) error) constraintFunc {
	return func(v any) error {
		if !isSequence(v) {
			return check(v)
		}
		rv := reflect.ValueOf(v)
		for i := range rv.Len() {
			if err := check(rv.Index(i).Interface()); err != nil {
				return err
			}
		}
		return nil
	}
}
