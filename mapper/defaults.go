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

// defaultHTTP defines the built-in HTTP mappings for catalogued codes.
// These are only defaults: callers adjust them at the boundary where HTTP is
// actually produced.
var defaultHTTP = map[status.StatusCode]int{
	status.OK: http.StatusOK,

	status.ClientError: http.StatusBadRequest,

	// Registration.
	status.RegisterFailed:            http.StatusBadRequest,
	status.NotAgreePrivacy:           http.StatusBadRequest,
	status.CountryOrRegionNotAllowed: http.StatusForbidden, // Geo policy, not a malformed request.

	// Username.
	status.UsernameFailed:                http.StatusBadRequest,
	status.UsernameExists:                http.StatusConflict,
	status.UsernameContainsSensitiveWord: http.StatusBadRequest,
	status.UsernameContainsSpecialChar:   http.StatusBadRequest,

	// Password.
	status.PasswordFailed:   http.StatusBadRequest,
	status.PasswordTooShort: http.StatusBadRequest,
	status.PasswordTooWeak:  http.StatusBadRequest,

	// Verification codes: the caller failed to prove possession.
	status.VerificationCodeFailed:      http.StatusUnauthorized,
	status.SMSVerificationCodeFailed:   http.StatusUnauthorized,
	status.EmailVerificationCodeFailed: http.StatusUnauthorized,
	status.VoiceVerificationCodeFailed: http.StatusUnauthorized,
}

// defaultGRPC defines the built-in gRPC mappings for catalogued codes.
var defaultGRPC = map[status.StatusCode]codes.Code{
	status.OK: codes.OK,

	status.ClientError: codes.InvalidArgument,

	// Registration: the request is well-formed but the account cannot be
	// created in the current state.
	status.RegisterFailed:            codes.FailedPrecondition,
	status.NotAgreePrivacy:           codes.FailedPrecondition,
	status.CountryOrRegionNotAllowed: codes.PermissionDenied,

	// Username.
	status.UsernameFailed:                codes.InvalidArgument,
	status.UsernameExists:                codes.AlreadyExists,
	status.UsernameContainsSensitiveWord: codes.InvalidArgument,
	status.UsernameContainsSpecialChar:   codes.InvalidArgument,

	// Password.
	status.PasswordFailed:   codes.InvalidArgument,
	status.PasswordTooShort: codes.InvalidArgument,
	status.PasswordTooWeak:  codes.InvalidArgument,

	// Verification codes.
	status.VerificationCodeFailed:      codes.Unauthenticated,
	status.SMSVerificationCodeFailed:   codes.Unauthenticated,
	status.EmailVerificationCodeFailed: codes.Unauthenticated,
	status.VoiceVerificationCodeFailed: codes.Unauthenticated,
}
