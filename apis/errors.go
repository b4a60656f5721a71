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

import "dirpx.dev/dstatus/status"

// StatusError is an error classified by an application status code.
//
// The status is the primary value adapters use to decide which transport
// status to return. Errors that do not implement StatusError are treated
// by adapters as foreign and passed through untouched.
type StatusError interface {
	error

	// ErrorStatus returns the status the error was raised with. It is
	// always a validated status.StatusCode, possibly an uncatalogued one.
	ErrorStatus() status.StatusCode
}

// DetailedError represents an error that exposes zero or more structured
// details, e.g. every field that failed a registration form.
//
// Implementations SHOULD return a slice that the caller may keep; returning
// nil means "no extra details".
type DetailedError interface {
	error

	// ErrorDetails returns structured details of the error. May return nil.
	ErrorDetails() []Detail
}
