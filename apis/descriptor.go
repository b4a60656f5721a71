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

// ErrorDescriptor is a flat, transport-friendly description of an error
// together with the transport statuses it was resolved to.
//
// It intentionally uses plain types (not status.StatusCode) so that it can be
// logged, put on a message bus or stored without importing this module.
type ErrorDescriptor struct {
	// Code is the numeric status code, e.g. 10111.
	Code uint16 `json:"code"`

	// Name is the symbolic name of Code, e.g. "USERNAME_EXISTS". Empty for
	// uncatalogued codes.
	Name string `json:"name,omitempty"`

	// Reason is the canonical phrase of Code. Empty for uncatalogued codes.
	Reason string `json:"reason,omitempty"`

	// HTTPStatus is the resolved HTTP status. 0 means "not resolved".
	HTTPStatus int `json:"http_status,omitempty"`

	// GRPCCode is the resolved gRPC status code as an integer.
	GRPCCode int `json:"grpc_code,omitempty"`

	// Message is the human-oriented message of the error instance.
	Message string `json:"message,omitempty"`
}
