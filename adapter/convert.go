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

// Package adapter projects *dstatus.Error values onto the flat apis view
// types used for logging and response bodies.
package adapter

import (
	"errors"

	"dirpx.dev/dstatus"
	"dirpx.dev/dstatus/apis"
)

// ToDescriptor converts a domain-level error together with its resolved
// transport status into a portable ErrorDescriptor.
//
// The descriptor is intended for structured logging, tracing, or message bus
// propagation. It carries both the logical status and the concrete
// transport statuses (HTTP and gRPC).
func ToDescriptor(e *dstatus.Error, st apis.Status) apis.ErrorDescriptor {
	if e == nil {
		return apis.ErrorDescriptor{}
	}
	phrase, _ := e.Status.CanonicalReason()
	return apis.ErrorDescriptor{
		Code:       e.Status.Uint16(),
		Name:       e.Status.Name(),
		Reason:     phrase,
		HTTPStatus: st.HTTP,
		GRPCCode:   int(st.GRPC),
		Message:    e.Message,
	}
}

// ToView converts a domain-level error into a public ErrorView. This
// function performs no automatic redaction or filtering; it exposes exactly
// what the error instance contains.
//
// It is up to the caller or API layer to decide whether to redact sensitive
// details.
func ToView(e *dstatus.Error) apis.ErrorView {
	if e == nil {
		return apis.ErrorView{}
	}
	v, _ := View(e)
	return v
}

// View returns the view of the first apis.ViewProvider in err's chain.
// It reports false when there is none.
func View(err error) (apis.ErrorView, bool) {
	var vp apis.ViewProvider
	if !errors.As(err, &vp) {
		return apis.ErrorView{}, false
	}
	return vp.ErrorView(), true
}

// Describe finds the status carried by err and resolves it through m.
// A *dstatus.Error anywhere in the chain is used as is; any other
// apis.StatusError contributes its status and err's text as message.
// Errors without a status only fill Message.
func Describe(err error, m apis.Mapper) apis.ErrorDescriptor {
	if err == nil {
		return apis.ErrorDescriptor{}
	}
	var e *dstatus.Error
	if !errors.As(err, &e) {
		s, ok := dstatus.StatusOf(err)
		if !ok {
			return apis.ErrorDescriptor{Message: err.Error()}
		}
		e = dstatus.E(s, err.Error())
	}
	return ToDescriptor(e, m.Status(e.Status))
}
