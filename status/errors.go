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

package status

// InvalidStatusCodeError reports that a StatusCode could not be constructed.
// It carries no payload: the input is the caller's to report.
type InvalidStatusCodeError struct{}

// ErrInvalidStatusCode is returned by every failing constructor.
var ErrInvalidStatusCode error = InvalidStatusCodeError{}

// Error implements the error interface.
func (InvalidStatusCodeError) Error() string {
	return "invalid status code"
}

// GoString backs %#v.
func (InvalidStatusCodeError) GoString() string {
	return "InvalidStatusCode"
}
