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

// Raw numbers of the catalogued codes. Both the exported values and the
// canonical table are declared from these, so they cannot drift apart.
const (
	numOK = 0

	numClientError = 10001

	numRegisterFailed            = 10100
	numNotAgreePrivacy           = 10101
	numCountryOrRegionNotAllowed = 10102

	numUsernameFailed                = 10110
	numUsernameExists                = 10111
	numUsernameContainsSensitiveWord = 10112
	numUsernameContainsSpecialChar   = 10113

	numPasswordFailed   = 10120
	numPasswordTooShort = 10121
	numPasswordTooWeak  = 10122

	numVerificationCodeFailed      = 10130
	numSMSVerificationCodeFailed   = 10131
	numEmailVerificationCodeFailed = 10132
	numVoiceVerificationCodeFailed = 10133
)

// Success.
var (
	// OK is the only successful status. It is also the zero value.
	OK = StatusCode{n: numOK}
)

// Generic client failure.
var (
	// ClientError is a client-side failure with no finer classification.
	ClientError = StatusCode{n: numClientError}
)

// Registration (1010x).
var (
	// RegisterFailed is a registration failure with no finer classification.
	RegisterFailed = StatusCode{n: numRegisterFailed}

	// NotAgreePrivacy means the privacy agreement was not accepted.
	NotAgreePrivacy = StatusCode{n: numNotAgreePrivacy}

	// CountryOrRegionNotAllowed rejects the caller's country or region.
	CountryOrRegionNotAllowed = StatusCode{n: numCountryOrRegionNotAllowed}
)

// Username (1011x).
var (
	// UsernameFailed is a username problem with no finer classification.
	UsernameFailed = StatusCode{n: numUsernameFailed}

	// UsernameExists means the username is already taken.
	UsernameExists = StatusCode{n: numUsernameExists}

	// UsernameContainsSensitiveWord rejects a username with a blocked word.
	UsernameContainsSensitiveWord = StatusCode{n: numUsernameContainsSensitiveWord}

	// UsernameContainsSpecialChar rejects a username with disallowed characters.
	UsernameContainsSpecialChar = StatusCode{n: numUsernameContainsSpecialChar}
)

// Password (1012x).
var (
	// PasswordFailed is a password problem with no finer classification.
	PasswordFailed = StatusCode{n: numPasswordFailed}

	// PasswordTooShort rejects a password below the minimum length.
	PasswordTooShort = StatusCode{n: numPasswordTooShort}

	// PasswordTooWeak rejects a password that fails the strength policy.
	PasswordTooWeak = StatusCode{n: numPasswordTooWeak}
)

// Verification codes (1013x).
var (
	// VerificationCodeFailed is a verification code mismatch of unknown channel.
	VerificationCodeFailed = StatusCode{n: numVerificationCodeFailed}

	// SMSVerificationCodeFailed is a wrong or expired SMS code.
	SMSVerificationCodeFailed = StatusCode{n: numSMSVerificationCodeFailed}

	// EmailVerificationCodeFailed is a wrong or expired email code.
	EmailVerificationCodeFailed = StatusCode{n: numEmailVerificationCodeFailed}

	// VoiceVerificationCodeFailed is a wrong or expired voice call code.
	VoiceVerificationCodeFailed = StatusCode{n: numVoiceVerificationCodeFailed}
)

type entry struct {
	name   string
	phrase string
}

// canonical maps catalogued numbers to their symbolic name and phrase.
// The names and phrases are part of the client contract and are kept
// verbatim, spelling included.
var canonical = map[uint16]entry{
	numOK: {"OK", "Ok"},

	numClientError: {"CLIENT_ERROR", "Client Error"},

	numRegisterFailed:            {"REGISTER_FAILED", "Register Failed"},
	numNotAgreePrivacy:           {"NOT_AGREE_PRIVACY", "Did Not Agree to the Privacy Agreement"},
	numCountryOrRegionNotAllowed: {"COUNTRY_OR_REGION_NOT_ALLOWED", "Country or Region not allowed"},

	numUsernameFailed:                {"USERNAME_FAILED", "Username Failed"},
	numUsernameExists:                {"USERNAME_EXISTS", "Username Already Exists"},
	numUsernameContainsSensitiveWord: {"USERNAME_CONTAINS_SENSITIVE_WORD", "Username Contains Sensitive Word"},
	numUsernameContainsSpecialChar:   {"USERNAME_CONTAINS_SPECIAL_CHAR", "Username Contains Special Character"},

	numPasswordFailed:   {"PASSWORD_FAILED", "Password Failed"},
	numPasswordTooShort: {"PASSWORD_TO_SHORT", "Password is To Short"},
	numPasswordTooWeak:  {"PASSWORD_TO_WEAK", "Password is to WEAK"},

	numVerificationCodeFailed:      {"VERIFICATION_CODE_FAILED", "Verification Code Failed"},
	numSMSVerificationCodeFailed:   {"SMS_VERIFICATION_CODE_FAILED", "Sms Verification Code Failed"},
	numEmailVerificationCodeFailed: {"EMAIL_VERIFICATION_CODE_FAILED", "Email Verification Code Failed"},
	numVoiceVerificationCodeFailed: {"VOICE_VERIFICATION_CODE_FAILED", "Voice Verification Code Failed"},
}

// all lists the catalogued codes in ascending order.
var all = [...]StatusCode{
	OK,
	ClientError,
	RegisterFailed,
	NotAgreePrivacy,
	CountryOrRegionNotAllowed,
	UsernameFailed,
	UsernameExists,
	UsernameContainsSensitiveWord,
	UsernameContainsSpecialChar,
	PasswordFailed,
	PasswordTooShort,
	PasswordTooWeak,
	VerificationCodeFailed,
	SMSVerificationCodeFailed,
	EmailVerificationCodeFailed,
	VoiceVerificationCodeFailed,
}

// All returns the catalogued codes in ascending order. The slice is a fresh
// copy on every call.
func All() []StatusCode {
	out := make([]StatusCode, len(all))
	copy(out, all[:])
	return out
}
