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

// Package dstatus carries application status codes through Go error values.
//
// The value type itself lives in dirpx.dev/dstatus/status. This package adds
// the rich error that business code returns (*Error), and the helpers that
// recover a status from an arbitrary error chain.
package dstatus

import (
	"errors"
	"fmt"
	"sort"

	"dirpx.dev/dstatus/apis"
	"dirpx.dev/dstatus/status"
)

// Error is the canonical rich error type for dstatus.
//
// It carries:
//   - Status: the application status code (required);
//   - Message: human-oriented description of this occurrence;
//   - Details: arbitrary key/value payload (for logging / response bodies);
//   - Cause: wrapped underlying error for debugging / unwrapping.
//
// All mutation helpers (WithX) return a shallow copy, so Error instances
// can be safely shared and modified in a functional style.
type Error struct {
	// Status classifies the error, e.g. status.UsernameExists.
	Status status.StatusCode

	// Message is a human-readable explanation of this occurrence, e.g.
	// "alice is taken". The canonical phrase of Status is not repeated here.
	Message string

	// Details is an optional, shallow map of extra fields. The map is
	// treated as immutable: WithDetail/WithDetails always copy it.
	Details map[string]any

	// Cause holds the wrapped underlying error (if any).
	Cause error
}

var (
	_ apis.StatusError   = (*Error)(nil)
	_ apis.DetailedError = (*Error)(nil)
	_ apis.ViewProvider  = (*Error)(nil)
)

// E is a convenience constructor for Error.
//
// Usage:
//
//	return dstatus.E(status.UsernameExists, "alice is taken",
//	    dstatus.WithDetailOption("username", "alice"),
//	)
//
// It always returns a *new* Error and applies all provided options in order.
func E(s status.StatusCode, msg string, opts ...Option) *Error {
	e := &Error{Status: s, Message: msg}
	for _, opt := range opts {
		e = opt(e)
	}
	return e
}

// Error implements the built-in error interface.
//
// The format is:
//
//	<code> <phrase>: <message>
//
// or just "<code> <phrase>" when Message is empty.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Message == "" {
		return e.Status.String()
	}
	return fmt.Sprintf("%s: %s", e.Status, e.Message)
}

// Unwrap returns the underlying cause, enabling errors.Is / errors.As chains.
func (e *Error) Unwrap() error { return e.Cause }

// Is reports whether target is an *Error with the same Status. Message,
// Details and Cause are ignored, which lets callers write
//
//	errors.Is(err, dstatus.E(status.UsernameExists, ""))
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Status == t.Status
}

// ErrorStatus implements apis.StatusError.
func (e *Error) ErrorStatus() status.StatusCode { return e.Status }

// ErrorDetails implements apis.DetailedError. Details are rendered with
// fmt.Sprint and sorted by key so the output is stable.
func (e *Error) ErrorDetails() []apis.Detail {
	if len(e.Details) == 0 {
		return nil
	}
	keys := make([]string, 0, len(e.Details))
	for k := range e.Details {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]apis.Detail, 0, len(keys))
	for _, k := range keys {
		out = append(out, apis.Detail{
			Type:   "info",
			Field:  k,
			Reason: fmt.Sprint(e.Details[k]),
		})
	}
	return out
}

// ErrorView implements apis.ViewProvider.
func (e *Error) ErrorView() apis.ErrorView {
	phrase, _ := e.Status.CanonicalReason()
	return apis.ErrorView{
		Code:    e.Status.Uint16(),
		Name:    e.Status.Name(),
		Reason:  phrase,
		Message: e.Message,
		Details: e.ErrorDetails(),
	}
}

// WithMessage returns a shallow copy of e with a replaced human message.
func (e *Error) WithMessage(msg string) *Error {
	cp := *e
	cp.Message = msg
	return &cp
}

// WithDetail returns a shallow copy of e with one extra key/value in Details.
//
// The method always copies the map to preserve immutability.
func (e *Error) WithDetail(k string, v any) *Error {
	cp := *e
	// No details yet, start a single-entry map.
	if len(cp.Details) == 0 {
		cp.Details = map[string]any{k: v}
		return &cp
	}
	m := make(map[string]any, len(cp.Details)+1)
	for k0, v0 := range cp.Details {
		m[k0] = v0
	}
	m[k] = v
	cp.Details = m
	return &cp
}

// WithDetails returns a shallow copy of e with all provided kv merged into
// Details, kv taking precedence on key conflicts.
func (e *Error) WithDetails(kv map[string]any) *Error {
	if len(kv) == 0 {
		return e
	}
	cp := *e
	m := make(map[string]any, len(cp.Details)+len(kv))
	for k0, v0 := range cp.Details {
		m[k0] = v0
	}
	for k, v := range kv {
		m[k] = v
	}
	cp.Details = m
	return &cp
}

// WithCause returns a shallow copy of e with the given underlying cause
// attached. If err is nil, e is returned unchanged.
func (e *Error) WithCause(err error) *Error {
	if err == nil {
		return e
	}
	cp := *e
	cp.Cause = err
	return &cp
}

// StatusOf extracts the status carried by err.
//
// A nil error is OK. Otherwise the first apis.StatusError in the chain wins.
// For errors that carry no status it returns (status.OK, false); callers
// decide how to classify those.
func StatusOf(err error) (status.StatusCode, bool) {
	if err == nil {
		return status.OK, true
	}
	var se apis.StatusError
	if errors.As(err, &se) {
		return se.ErrorStatus(), true
	}
	return status.OK, false
}
