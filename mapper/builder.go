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
	"net/http"

	"dirpx.dev/dstatus/status"
	"google.golang.org/grpc/codes"
)

type prefixRule struct {
	// pattern is the raw digit pattern (may contain "*"). It is validated
	// when the trie is built.
	pattern string
	// val is the transport status. gRPC values are kept as int here and
	// converted to codes.Code when the mapper is frozen.
	val int
}

type builder struct {
	// httpDefaults/grpcDefaults start as a copy of the library defaults.
	httpDefaults map[status.StatusCode]int
	grpcDefaults map[status.StatusCode]int

	// httpOverride/grpcOverride hold exact per-code overrides.
	httpOverride map[status.StatusCode]int
	grpcOverride map[status.StatusCode]int

	// httpPrefixes/grpcPrefixes are compiled into digit tries in New.
	httpPrefixes []prefixRule
	grpcPrefixes []prefixRule

	// global fallbacks used when nothing else matched.
	fallbackHTTP int
	fallbackGRPC codes.Code
}

func newBuilder() *builder {
	b := &builder{
		httpDefaults: make(map[status.StatusCode]int, len(defaultHTTP)),
		grpcDefaults: make(map[status.StatusCode]int, len(defaultGRPC)),
		httpOverride: make(map[status.StatusCode]int),
		grpcOverride: make(map[status.StatusCode]int),
		fallbackHTTP: http.StatusInternalServerError,
		fallbackGRPC: codes.Internal,
	}
	for k, v := range defaultHTTP {
		b.httpDefaults[k] = v
	}
	for k, v := range defaultGRPC {
		b.grpcDefaults[k] = int(v)
	}
	return b
}
