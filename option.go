/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package dstatus

import "fmt"

// Option is a functional option for E. It takes an *Error and returns a
// (possibly new) *Error; options never mutate their input.
type Option func(*Error) *Error

// WithDetailOption adds a single detail key/value on construction, e.g.
// the field that failed validation.
func WithDetailOption(k string, v any) Option {
	return func(e *Error) *Error {
		return e.WithDetail(k, v)
	}
}

// WithDetailsOption merges multiple detail key/values on construction.
func WithDetailsOption(kv map[string]any) Option {
	return func(e *Error) *Error {
		return e.WithDetails(kv)
	}
}

// WithCauseOption attaches a cause on construction, e.g. the storage error
// behind a status.UsernameExists.
func WithCauseOption(err error) Option {
	return func(e *Error) *Error {
		return e.WithCause(err)
	}
}

// WithCausef attaches a cause built with fmt.Errorf, so %w verbs keep the
// wrapped chain intact.
func WithCausef(format string, args ...any) Option {
	return func(e *Error) *Error {
		return e.WithCause(fmt.Errorf(format, args...))
	}
}
