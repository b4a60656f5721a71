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

import (
	"encoding/json"
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"math"
	"sort"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromUint16_FullRange(t *testing.T) {
	for n := 0; n <= MaxValue; n++ {
		s, err := FromUint16(uint16(n))
		if err != nil {
			t.Fatalf("FromUint16(%d) unexpected error: %v", n, err)
		}
		if s.Uint16() != uint16(n) {
			t.Fatalf("FromUint16(%d).Uint16() = %d", n, s.Uint16())
		}
		if !s.Equal(uint16(n)) || !EqualUint16(uint16(n), s) {
			t.Fatalf("raw equality failed for %d", n)
		}
	}
}

func TestFromUint16_AboveMax(t *testing.T) {
	for n := MaxValue + 1; n <= math.MaxUint16; n++ {
		s, err := FromUint16(uint16(n))
		if !errors.Is(err, ErrInvalidStatusCode) {
			t.Fatalf("FromUint16(%d) err = %v, want ErrInvalidStatusCode", n, err)
		}
		if s != OK {
			t.Fatalf("FromUint16(%d) on error must return the zero value, got %#v", n, s)
		}
	}
}

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want uint16
	}{
		{"ok", "00000", 0},
		{"distinct digits", "01234", 1234},
		{"client error", "10001", 10001},
		{"username exists", "10111", 10111},
		{"largest parsable", "39999", 39999},
		{"all positions differ", "12345", 12345},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.want, got.Uint16())

			fromBytes, err := FromBytes([]byte(tt.in))
			require.NoError(t, err)
			require.Equal(t, got, fromBytes)
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"too short", "1011"},
		{"too long", "101110"},
		{"lead digit out of range", "41234"},
		{"max value is not parsable", "40000"},
		{"letter", "10a11"},
		{"sign", "-1011"},
		{"space", " 1011"},
		{"byte below zero", "1011/"},
		{"byte above nine", "1011:"},
		{"non ascii", "1011\xff"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			require.ErrorIs(t, err, ErrInvalidStatusCode)
			require.Equal(t, OK, got)
		})
	}
}

func TestDefaultIsOK(t *testing.T) {
	var s StatusCode
	require.Equal(t, OK, s)
	require.True(t, s.IsSuccess())
	require.True(t, OK.IsSuccess())
}

func TestIsSuccess_OnlyOK(t *testing.T) {
	for _, s := range All() {
		if s == OK {
			continue
		}
		require.False(t, s.IsSuccess(), "%v must not be a success", s)
	}
	require.False(t, MustFromUint16(1).IsSuccess())
	require.False(t, MustFromUint16(MaxValue).IsSuccess())
}

func TestCanonicalReason_Table(t *testing.T) {
	tests := []struct {
		s      StatusCode
		n      uint16
		name   string
		phrase string
	}{
		{OK, 0, "OK", "Ok"},
		{ClientError, 10001, "CLIENT_ERROR", "Client Error"},
		{RegisterFailed, 10100, "REGISTER_FAILED", "Register Failed"},
		{NotAgreePrivacy, 10101, "NOT_AGREE_PRIVACY", "Did Not Agree to the Privacy Agreement"},
		{CountryOrRegionNotAllowed, 10102, "COUNTRY_OR_REGION_NOT_ALLOWED", "Country or Region not allowed"},
		{UsernameFailed, 10110, "USERNAME_FAILED", "Username Failed"},
		{UsernameExists, 10111, "USERNAME_EXISTS", "Username Already Exists"},
		{UsernameContainsSensitiveWord, 10112, "USERNAME_CONTAINS_SENSITIVE_WORD", "Username Contains Sensitive Word"},
		{UsernameContainsSpecialChar, 10113, "USERNAME_CONTAINS_SPECIAL_CHAR", "Username Contains Special Character"},
		{PasswordFailed, 10120, "PASSWORD_FAILED", "Password Failed"},
		{PasswordTooShort, 10121, "PASSWORD_TO_SHORT", "Password is To Short"},
		{PasswordTooWeak, 10122, "PASSWORD_TO_WEAK", "Password is to WEAK"},
		{VerificationCodeFailed, 10130, "VERIFICATION_CODE_FAILED", "Verification Code Failed"},
		{SMSVerificationCodeFailed, 10131, "SMS_VERIFICATION_CODE_FAILED", "Sms Verification Code Failed"},
		{EmailVerificationCodeFailed, 10132, "EMAIL_VERIFICATION_CODE_FAILED", "Email Verification Code Failed"},
		{VoiceVerificationCodeFailed, 10133, "VOICE_VERIFICATION_CODE_FAILED", "Voice Verification Code Failed"},
	}
	require.Len(t, tests, len(All()), "table test must cover every catalogued code")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.n, tt.s.Uint16())
			phrase, ok := tt.s.CanonicalReason()
			require.True(t, ok)
			require.Equal(t, tt.phrase, phrase)
			require.Equal(t, tt.name, tt.s.Name())
			require.True(t, tt.s.Known())
			require.Equal(t, fmt.Sprintf("%d %s", tt.n, tt.phrase), tt.s.String())
		})
	}
}

func TestCanonicalReason_Unknown(t *testing.T) {
	s := MustFromUint16(1)
	phrase, ok := s.CanonicalReason()
	require.False(t, ok)
	require.Empty(t, phrase)
	require.Empty(t, s.Name())
	require.False(t, s.Known())
}

func TestRendering(t *testing.T) {
	require.Equal(t, "0 Ok", OK.String())
	require.Equal(t, "1 <unknown status code>", MustFromUint16(1).String())
	require.Equal(t, "10111", UsernameExists.GoString())
	require.Equal(t, "10111", fmt.Sprintf("%#v", UsernameExists))
	require.Equal(t, "10111 Username Already Exists", fmt.Sprintf("%v", UsernameExists))
}

func TestConstructorsAgree(t *testing.T) {
	for _, in := range []string{"00000", "00001", "01234", "10111", "10133", "25000", "39999"} {
		textual := MustParse(in)
		n, err := strconv.ParseUint(in, 10, 16)
		require.NoError(t, err)
		numeric := MustFromUint16(uint16(n))

		require.True(t, textual == numeric)
		require.Equal(t, 0, textual.Compare(numeric))
		require.False(t, textual.Less(numeric))
		require.False(t, numeric.Less(textual))
		require.True(t, textual.Equal(numeric.Uint16()))
	}
}

func TestOrdering(t *testing.T) {
	require.Equal(t, -1, OK.Compare(ClientError))
	require.Equal(t, 1, VoiceVerificationCodeFailed.Compare(UsernameExists))
	require.True(t, UsernameFailed.Less(UsernameExists))

	got := []StatusCode{PasswordTooWeak, OK, UsernameExists, ClientError}
	sort.Slice(got, func(i, j int) bool { return got[i].Less(got[j]) })
	require.Equal(t, []StatusCode{OK, ClientError, UsernameExists, PasswordTooWeak}, got)
}

func TestAll_SortedAndCopied(t *testing.T) {
	a := All()
	require.True(t, sort.SliceIsSorted(a, func(i, j int) bool { return a[i].Less(a[j]) }))
	a[0] = ClientError
	require.Equal(t, OK, All()[0], "All must return a fresh copy")
}

func TestUsableAsMapKey(t *testing.T) {
	m := map[StatusCode]int{UsernameExists: 1}
	require.Equal(t, 1, m[MustParse("10111")])
	require.Equal(t, 1, m[MustFromUint16(10111)])
}

func TestTextRoundTrip(t *testing.T) {
	require.Equal(t, "00000", OK.Text())
	require.Equal(t, "01234", MustFromUint16(1234).Text())
	require.Equal(t, "40000", MustFromUint16(MaxValue).Text())

	for _, s := range append(All(), MustFromUint16(7), MustFromUint16(MaxValue)) {
		b, err := s.MarshalText()
		require.NoError(t, err)
		var got StatusCode
		require.NoError(t, got.UnmarshalText(b))
		require.Equal(t, s, got)
	}
}

func TestUnmarshalText(t *testing.T) {
	var s StatusCode
	require.NoError(t, s.UnmarshalText([]byte("  10111 ")))
	require.Equal(t, UsernameExists, s)

	require.NoError(t, s.UnmarshalText([]byte("7")))
	require.Equal(t, uint16(7), s.Uint16())

	for _, bad := range []string{"", "40001", "65536", "abc", "-1", "1.5"} {
		before := s
		require.ErrorIs(t, s.UnmarshalText([]byte(bad)), ErrInvalidStatusCode, bad)
		require.Equal(t, before, s, "failed UnmarshalText must not modify the receiver")
	}
}

func TestJSON(t *testing.T) {
	type payload struct {
		Status StatusCode `json:"status"`
	}
	b, err := json.Marshal(payload{Status: UsernameExists})
	require.NoError(t, err)
	require.JSONEq(t, `{"status":"10111"}`, string(b))

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"status":"10130"}`), &p))
	require.Equal(t, VerificationCodeFailed, p.Status)
}

func TestInvalidStatusCodeError(t *testing.T) {
	_, err := Parse("x")
	require.EqualError(t, err, "invalid status code")
	require.Equal(t, "InvalidStatusCode", fmt.Sprintf("%#v", err))

	var target InvalidStatusCodeError
	require.True(t, errors.As(err, &target))

	wrapped := fmt.Errorf("load: %w", err)
	require.ErrorIs(t, wrapped, ErrInvalidStatusCode)
}

func TestMustPanics(t *testing.T) {
	require.Panics(t, func() { MustParse("99999") })
	require.Panics(t, func() { MustFromUint16(MaxValue + 1) })
	require.NotPanics(t, func() { MustParse("10001") })
}

func TestConcurrentReads(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				for _, s := range All() {
					_, _ = s.CanonicalReason()
					_ = s.String()
				}
			}
		}()
	}
	wg.Wait()
}

func TestNamedValues_Documented(t *testing.T) {
	f, err := parser.ParseFile(token.NewFileSet(), "codes.go", nil, parser.ParseComments)
	require.NoError(t, err)

	seen := 0
	for _, decl := range f.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.VAR {
			continue
		}
		for _, spec := range gd.Specs {
			vs := spec.(*ast.ValueSpec)
			for _, name := range vs.Names {
				if !name.IsExported() {
					continue
				}
				seen++
				require.NotNil(t, vs.Doc, "%s has no doc comment", name.Name)
			}
		}
	}
	require.Equal(t, len(All()), seen)
}
