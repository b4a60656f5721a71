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
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"dirpx.dev/dstatus/apis"
	"dirpx.dev/dstatus/mapper/internal/digittrie"
	"dirpx.dev/dstatus/status"
	"google.golang.org/grpc/codes"
)

// New constructs an immutable apis.Mapper snapshot.
//
// Build process overview:
//
//  1. Seed the builder with library defaults (HTTP & gRPC).
//  2. Apply user-provided options (defaults, overrides, prefixes, fallback).
//  3. Validate every prefix pattern and compile them into digit tries.
//  4. Freeze all maps into fresh copies owned by the mapper.
//
// Errors indicate invalid prefix patterns or transport values (HTTP outside
// 100..599, gRPC codes grpc-go does not define).
func New(opts ...Option) (apis.Mapper, error) {
	b := newBuilder()
	for _, opt := range opts {
		opt(b)
	}

	if err := validateHTTP("fallback", b.fallbackHTTP); err != nil {
		return nil, err
	}
	if err := validateGRPC("fallback", int(b.fallbackGRPC)); err != nil {
		return nil, err
	}
	for s, v := range b.grpcDefaults {
		if err := validateGRPC(s.Text(), v); err != nil {
			return nil, err
		}
	}
	for s, v := range b.grpcOverride {
		if err := validateGRPC(s.Text(), v); err != nil {
			return nil, err
		}
	}
	for s, v := range b.httpDefaults {
		if err := validateHTTP(s.Text(), v); err != nil {
			return nil, err
		}
	}
	for s, v := range b.httpOverride {
		if err := validateHTTP(s.Text(), v); err != nil {
			return nil, err
		}
	}

	httpTrie := digittrie.New[int]()
	for _, r := range b.httpPrefixes {
		if err := validateHTTP(r.pattern, r.val); err != nil {
			return nil, err
		}
		if err := httpTrie.Insert(r.pattern, r.val); err != nil {
			return nil, fmt.Errorf("mapper: invalid HTTP prefix %q: %w", r.pattern, err)
		}
	}

	grpcTrie := digittrie.New[codes.Code]()
	for _, r := range b.grpcPrefixes {
		if err := validateGRPC(r.pattern, r.val); err != nil {
			return nil, err
		}
		if err := grpcTrie.Insert(r.pattern, codes.Code(r.val)); err != nil {
			return nil, fmt.Errorf("mapper: invalid gRPC prefix %q: %w", r.pattern, err)
		}
	}

	return &mapper{
		httpDefault:  freezeHTTP(b.httpDefaults),
		grpcDefault:  freezeGRPC(b.grpcDefaults),
		httpOverride: freezeHTTP(b.httpOverride),
		grpcOverride: freezeGRPC(b.grpcOverride),
		httpTrie:     httpTrie,
		grpcTrie:     grpcTrie,
		fallbackHTTP: b.fallbackHTTP,
		fallbackGRPC: b.fallbackGRPC,
	}, nil
}

// mapper combines per-code defaults, per-code overrides and digit-prefix
// tries. Lookups are O(digits) and safe for concurrent use.
type mapper struct {
	httpDefault  map[status.StatusCode]int
	grpcDefault  map[status.StatusCode]codes.Code
	httpOverride map[status.StatusCode]int
	grpcOverride map[status.StatusCode]codes.Code

	// httpTrie/grpcTrie are never mutated after New returns.
	httpTrie *digittrie.Trie[int]
	grpcTrie *digittrie.Trie[codes.Code]

	fallbackHTTP int
	fallbackGRPC codes.Code
}

// Source names reported by Explain.
const (
	sourceOverride = "override"
	sourcePrefix   = "prefix"
	sourceDefault  = "default"
	sourceFallback = "fallback"
)

// resolution is the outcome of one transport lookup.
type resolution[T any] struct {
	val     T
	source  string
	pattern string
}

func (m *mapper) resolveHTTP(s status.StatusCode) resolution[int] {
	if v, ok := m.httpOverride[s]; ok {
		return resolution[int]{val: v, source: sourceOverride}
	}
	if v, ok, pat := m.httpTrie.MatchWithPattern(s.Text()); ok {
		return resolution[int]{val: v, source: sourcePrefix, pattern: pat}
	}
	if v, ok := m.httpDefault[s]; ok {
		return resolution[int]{val: v, source: sourceDefault}
	}
	return resolution[int]{val: m.fallbackHTTP, source: sourceFallback}
}

func (m *mapper) resolveGRPC(s status.StatusCode) resolution[codes.Code] {
	if v, ok := m.grpcOverride[s]; ok {
		return resolution[codes.Code]{val: v, source: sourceOverride}
	}
	if v, ok, pat := m.grpcTrie.MatchWithPattern(s.Text()); ok {
		return resolution[codes.Code]{val: v, source: sourcePrefix, pattern: pat}
	}
	if v, ok := m.grpcDefault[s]; ok {
		return resolution[codes.Code]{val: v, source: sourceDefault}
	}
	return resolution[codes.Code]{val: m.fallbackGRPC, source: sourceFallback}
}

// HTTPStatus resolves an HTTP status for s.
//
// Resolution order (highest to lowest):
//  1. exact per-code override;
//  2. longest digit-prefix rule;
//  3. per-code default;
//  4. fallback.
func (m *mapper) HTTPStatus(s status.StatusCode) int {
	return m.resolveHTTP(s).val
}

// GRPCStatus resolves a gRPC status for s with the same precedence as
// HTTPStatus.
func (m *mapper) GRPCStatus(s status.StatusCode) codes.Code {
	return m.resolveGRPC(s).val
}

// Status resolves both HTTP and gRPC for s.
func (m *mapper) Status(s status.StatusCode) apis.Status {
	return apis.Status{
		HTTP: m.HTTPStatus(s),
		GRPC: m.GRPCStatus(s),
	}
}

// Explain produces a textual trace of how s was resolved.
//
// Example output:
//
//	code=10111 name="USERNAME_EXISTS" reason="Username Already Exists"
//	http: source=prefix pattern="1011" -> 409 Conflict
//	grpc: source=default -> ALREADY_EXISTS(6)
func (m *mapper) Explain(s status.StatusCode) string {
	var b strings.Builder
	phrase, _ := s.CanonicalReason()
	_, _ = fmt.Fprintf(&b, "code=%d name=%q reason=%q\n", s.Uint16(), s.Name(), phrase)

	h := m.resolveHTTP(s)
	_, _ = fmt.Fprintf(&b, "http: %s -> %s\n", explainSource(h.source, h.pattern), httpLabel(h.val))

	g := m.resolveGRPC(s)
	_, _ = fmt.Fprintf(&b, "grpc: %s -> %s(%d)", explainSource(g.source, g.pattern), GRPCName(g.val), int(g.val))

	return b.String()
}

func explainSource(source, pattern string) string {
	if source == sourcePrefix {
		return fmt.Sprintf("source=%s pattern=%q", source, pattern)
	}
	return "source=" + source
}

func httpLabel(v int) string {
	if text := http.StatusText(v); text != "" {
		return fmt.Sprintf("%d %s", v, text)
	}
	return strconv.Itoa(v)
}

func validateHTTP(where string, v int) error {
	if v < 100 || v > 599 {
		return fmt.Errorf("mapper: HTTP status %d for %q is outside 100..599", v, where)
	}
	return nil
}

// validateGRPC accepts the codes grpc-go itself decodes: OK through
// Unauthenticated.
func validateGRPC(where string, v int) error {
	if v < int(codes.OK) || v > int(codes.Unauthenticated) {
		return fmt.Errorf("mapper: gRPC code %d for %q is outside 0..16", v, where)
	}
	return nil
}

// freezeHTTP copies src so later builder mutations cannot leak in.
func freezeHTTP(src map[status.StatusCode]int) map[status.StatusCode]int {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[status.StatusCode]int, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// freezeGRPC copies src, converting builder ints into typed gRPC codes.
func freezeGRPC(src map[status.StatusCode]int) map[status.StatusCode]codes.Code {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[status.StatusCode]codes.Code, len(src))
	for k, v := range src {
		dst[k] = codes.Code(v)
	}
	return dst
}
