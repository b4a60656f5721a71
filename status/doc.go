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

// Package status provides the validated, numeric application status code
// used between dirpx services and their clients.
//
// A StatusCode is a small unsigned integer in the inclusive range
// [0, MaxValue]. Some values carry a canonical, human-readable reason phrase
// ("10111 Username Already Exists"); the rest are valid but uncatalogued.
//
// Numbering:
//
//   - 0 is the only successful outcome (OK);
//   - 1xxxx are client-side failures, grouped by decade:
//     1010x registration, 1011x username, 1012x password,
//     1013x verification codes.
//
// IMPORTANT: a StatusCode can only be obtained through the constructors in
// this package (FromUint16, FromBytes, Parse) or from the named values
// declared in codes.go. The zero value is OK.
//
// Values are immutable and the canonical table is never mutated after
// package initialization, so everything here is safe for concurrent use.
package status
