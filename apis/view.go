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

package apis

// ViewProvider is implemented by errors that can produce a self-contained,
// client-safe representation of themselves.
type ViewProvider interface {
	error

	// ErrorView returns a transport-friendly snapshot of the error.
	ErrorView() ErrorView
}

// ErrorView is the shape of an error we are comfortable exposing to clients.
// No transport status is included: that is a property of the response, not
// of the error.
type ErrorView struct {
	// Code is the numeric status code.
	Code uint16 `json:"code"`

	// Name is the symbolic name of Code, if catalogued.
	Name string `json:"name,omitempty"`

	// Reason is the canonical phrase of Code, if catalogued.
	Reason string `json:"reason,omitempty"`

	// Message is the instance message.
	Message string `json:"message,omitempty"`

	// Details lists structured details, if any.
	Details []Detail `json:"details,omitempty"`
}
