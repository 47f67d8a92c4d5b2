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

// SessionOption configures session behavior.
type SessionOption func(*Session)

// WithAllErrors switches the session from fail-fast to collect-all mode:
// every failing parameter is recorded and the session returns a
// [MultiError] instead of aborting on the first failure. Misconfiguration
// errors still abort immediately.
func WithAllErrors() SessionOption {
	return func(s *Session) {
		s.allErrors = true
	}
}

// WithEvents attaches observability hooks to the session.
func WithEvents(events Events) SessionOption {
	return func(s *Session) {
		s.events = events
	}
}

// Events provides hooks for observability without coupling the engine to a
// logger or metrics backend.
type Events struct {
	// ParamResolved is called after a parameter resolves successfully.
	ParamResolved func(name string, source Source)

	// Done is called at the end of every run with session statistics,
	// on success and on failure alike.
	Done func(stats Stats)
}

// Stats tracks the outcome of one session run.
type Stats struct {
	Declared int // Parameters declared for the handler
	Resolved int // Parameters that resolved successfully
	Failed   int // Parameters that failed resolution
}
