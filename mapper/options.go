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

package mapper

import (
	"dirpx.dev/dstatus/status"
	"google.golang.org/grpc/codes"
)

// Option configures the Mapper at build time.
// All options are applied to an internal builder and then frozen into
// an immutable Mapper.
type Option func(*builder)

// WithHTTPDefault sets or replaces the default HTTP status for s.
func WithHTTPDefault(s status.StatusCode, http int) Option {
	return func(b *builder) { b.httpDefaults[s] = http }
}

// WithGRPCDefault sets or replaces the default gRPC status for s.
func WithGRPCDefault(s status.StatusCode, grpc codes.Code) Option {
	return func(b *builder) { b.grpcDefaults[s] = int(grpc) }
}

// WithHTTPOverride registers an exact HTTP override for s. Overrides beat
// every other rule.
func WithHTTPOverride(s status.StatusCode, http int) Option {
	return func(b *builder) { b.httpOverride[s] = http }
}

// WithGRPCOverride registers an exact gRPC override for s.
func WithGRPCOverride(s status.StatusCode, grpc codes.Code) Option {
	return func(b *builder) { b.grpcOverride[s] = int(grpc) }
}

// WithHTTPPrefix adds an HTTP digit-prefix rule. Use "*" to match a single
// digit. Invalid patterns make New fail.
func WithHTTPPrefix(pattern string, http int) Option {
	return func(b *builder) { b.httpPrefixes = append(b.httpPrefixes, prefixRule{pattern, http}) }
}

// WithGRPCPrefix adds a gRPC digit-prefix rule.
func WithGRPCPrefix(pattern string, grpc codes.Code) Option {
	return func(b *builder) { b.grpcPrefixes = append(b.grpcPrefixes, prefixRule{pattern, int(grpc)}) }
}

// WithFallback replaces the statuses used when no rule and no default
// matched.
func WithFallback(http int, grpc codes.Code) Option {
	return func(b *builder) {
		b.fallbackHTTP = http
		b.fallbackGRPC = grpc
	}
}
