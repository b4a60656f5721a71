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
	"strconv"

	"google.golang.org/grpc/codes"
)

// grpcNames are the canonical upper-case names of the gRPC codes, as used
// in google.rpc.Code and in grpc-go's JSON encoding.
var grpcNames = [...]string{
	codes.OK:                 "OK",
	codes.Canceled:           "CANCELLED",
	codes.Unknown:            "UNKNOWN",
	codes.InvalidArgument:    "INVALID_ARGUMENT",
	codes.DeadlineExceeded:   "DEADLINE_EXCEEDED",
	codes.NotFound:           "NOT_FOUND",
	codes.AlreadyExists:      "ALREADY_EXISTS",
	codes.PermissionDenied:   "PERMISSION_DENIED",
	codes.ResourceExhausted:  "RESOURCE_EXHAUSTED",
	codes.FailedPrecondition: "FAILED_PRECONDITION",
	codes.Aborted:            "ABORTED",
	codes.OutOfRange:         "OUT_OF_RANGE",
	codes.Unimplemented:      "UNIMPLEMENTED",
	codes.Internal:           "INTERNAL",
	codes.Unavailable:        "UNAVAILABLE",
	codes.DataLoss:           "DATA_LOSS",
	codes.Unauthenticated:    "UNAUTHENTICATED",
}

// GRPCName returns the canonical upper-case name of c, e.g.
// "ALREADY_EXISTS". Unknown values render as "CODE(<n>)".
func GRPCName(c codes.Code) string {
	if int(c) < len(grpcNames) {
		return grpcNames[c]
	}
	return fmt.Sprintf("CODE(%d)", uint32(c))
}

// ParseGRPCName is the inverse of GRPCName. It also accepts the decimal
// value of the code.
func ParseGRPCName(name string) (codes.Code, error) {
	var c codes.Code
	if _, err := strconv.ParseUint(name, 10, 32); err == nil {
		if err := c.UnmarshalJSON([]byte(name)); err != nil {
			return 0, fmt.Errorf("mapper: %w", err)
		}
		return c, nil
	}
	if err := c.UnmarshalJSON([]byte(strconv.Quote(name))); err != nil {
		return 0, fmt.Errorf("mapper: unknown gRPC code %q", name)
	}
	return c, nil
}
