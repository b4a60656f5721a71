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

// Package mapper provides deterministic, immutable mappings from application
// status codes (dirpx.dev/dstatus/status) to transport-level statuses for
// HTTP and gRPC.
//
// # Resolution model
//
// A Mapper resolves statuses in the following order:
//
//  1. exact override for the code;
//  2. longest digit-prefix match (LPM) on the 5-digit form of the code;
//  3. per-code default (library or user-adjusted);
//  4. global fallback (500 / codes.Internal unless WithFallback is used).
//
// Prefix rules are digit-aware: "1011" covers 10110..10119 and "*" matches
// exactly one digit, so "101*1" covers 10101, 10111, ... 10191. The more
// specific prefix wins:
//
//	WithHTTPPrefix("1", http.StatusBadRequest)
//	WithHTTPPrefix("1013", http.StatusUnauthorized)
//
// # Library defaults
//
// Every catalogued code ships with a default (see defaults.go), e.g.
// status.UsernameExists -> 409 / AlreadyExists and status.OK -> 200 / OK.
// Uncatalogued codes have no default and end up at the fallback unless a
// prefix rule covers them.
//
// # Configuration
//
// Rules can be given as functional options or loaded from a TOML document
// (Load, LoadFile) and turned into options with Config.Options.
//
// # Diagnostics
//
// Mapper.Explain returns a human-readable trace of how a code was resolved,
// including which tier matched and, for prefixes, which pattern was used.
// It is intended for inspection and logging, not for machine parsing.
//
// # Immutability
//
// All user-provided inputs are copied during New. After construction a
// Mapper is safe to share across handlers, goroutines and requests.
package mapper
