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

// Detail represents a single structured piece of information attached to an
// error, in a transport-friendly shape.
//
// Typical usages:
//   - which form field failed (Field = "username");
//   - what the server expected (Field = "min_length", Reason = "8").
type Detail struct {
	// Type is a short classifier of the detail, e.g. "field" or "info".
	Type string `json:"type,omitempty"`

	// Field is the logical path of the failing input, if any.
	Field string `json:"field,omitempty"`

	// Reason is a short human-friendly explanation. This is not the
	// canonical phrase of the status; it refines it.
	Reason string `json:"reason,omitempty"`
}
