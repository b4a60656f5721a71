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
	"bytes"
	"cmp"
	"encoding"
	"strconv"
)

// StatusCode is the canonical, validated representation of an application
// status code.
//
// It is a struct (not a bare uint16) so that values outside [0, MaxValue]
// cannot be produced by a plain conversion. Equality (==), ordering
// (Compare) and use as a map key are all defined on the wrapped integer.
type StatusCode struct {
	n uint16
}

const (
	// MaxValue is the largest numeric value a StatusCode may wrap.
	MaxValue = 40000

	// TextLen is the exact length of the textual form accepted by FromBytes
	// and Parse.
	TextLen = 5

	// maxLeadDigit bounds the first digit of the textual form. With four
	// more digits the largest parsable value is 39999.
	maxLeadDigit = 3

	unknownPhrase = "<unknown status code>"
)

var (
	_ encoding.TextMarshaler   = StatusCode{}
	_ encoding.TextUnmarshaler = (*StatusCode)(nil)
)

// FromUint16 validates n and wraps it into a StatusCode.
// Values above MaxValue yield ErrInvalidStatusCode.
func FromUint16(n uint16) (StatusCode, error) {
	if n > MaxValue {
		return StatusCode{}, ErrInvalidStatusCode
	}
	return StatusCode{n: n}, nil
}

// MustFromUint16 is the panic-on-error variant of FromUint16. It is meant
// for package-level declarations.
func MustFromUint16(n uint16) StatusCode {
	s, err := FromUint16(n)
	if err != nil {
		panic(err)
	}
	return s
}

// FromBytes parses the 5-byte decimal form of a status code, e.g. "10111".
//
// The input must be exactly TextLen bytes. The first digit must be in
// [0, 3] and the remaining four in [0, 9]; anything else (including signs,
// spaces and non-ASCII bytes) yields ErrInvalidStatusCode.
func FromBytes(src []byte) (StatusCode, error) {
	if len(src) != TextLen {
		return StatusCode{}, ErrInvalidStatusCode
	}

	// Bytes below '0' wrap around to large values and fail the range checks.
	a := uint16(src[0] - '0')
	b := uint16(src[1] - '0')
	c := uint16(src[2] - '0')
	d := uint16(src[3] - '0')
	e := uint16(src[4] - '0')

	if a > maxLeadDigit || b > 9 || c > 9 || d > 9 || e > 9 {
		return StatusCode{}, ErrInvalidStatusCode
	}

	return StatusCode{n: a*10000 + b*1000 + c*100 + d*10 + e}, nil
}

// Parse is FromBytes over the bytes of s.
func Parse(s string) (StatusCode, error) {
	return FromBytes([]byte(s))
}

// MustParse is the panic-on-error variant of Parse.
func MustParse(s string) StatusCode {
	sc, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return sc
}

// Uint16 returns the wrapped integer.
func (s StatusCode) Uint16() uint16 {
	return s.n
}

// CanonicalReason returns the canonical phrase for s, if there is one.
func (s StatusCode) CanonicalReason() (string, bool) {
	e, ok := canonical[s.n]
	if !ok {
		return "", false
	}
	return e.phrase, true
}

// Name returns the symbolic name of s (e.g. "USERNAME_EXISTS"), or the
// empty string when s has no entry in the canonical table.
func (s StatusCode) Name() string {
	return canonical[s.n].name
}

// Known reports whether s has an entry in the canonical table.
func (s StatusCode) Known() bool {
	_, ok := canonical[s.n]
	return ok
}

// IsSuccess reports whether s is OK. Every other value, catalogued or not,
// is a failure.
func (s StatusCode) IsSuccess() bool {
	return s.n == 0
}

// Equal reports whether s wraps n.
func (s StatusCode) Equal(n uint16) bool {
	return s.n == n
}

// EqualUint16 is Equal with the operands swapped.
func EqualUint16(n uint16, s StatusCode) bool {
	return n == s.n
}

// Compare returns -1, 0 or +1 depending on whether s is less than, equal
// to, or greater than o.
func (s StatusCode) Compare(o StatusCode) int {
	return cmp.Compare(s.n, o.n)
}

// Less reports whether s sorts before o.
func (s StatusCode) Less(o StatusCode) bool {
	return s.n < o.n
}

// String renders "<number> <phrase>", using "<unknown status code>" for
// uncatalogued values.
func (s StatusCode) String() string {
	phrase, ok := s.CanonicalReason()
	if !ok {
		phrase = unknownPhrase
	}
	return strconv.Itoa(int(s.n)) + " " + phrase
}

// GoString renders just the number. It backs the %#v verb.
func (s StatusCode) GoString() string {
	return strconv.Itoa(int(s.n))
}

// Text returns the zero-padded, TextLen-wide decimal form, e.g. "00000"
// for OK.
func (s StatusCode) Text() string {
	var buf [TextLen]byte
	n := s.n
	for i := TextLen - 1; i >= 0; i-- {
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[:])
}

// MarshalText implements encoding.TextMarshaler using Text.
func (s StatusCode) MarshalText() ([]byte, error) {
	return []byte(s.Text()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// The strict 5-digit form is tried first. Otherwise the input must be a
// plain decimal that passes FromUint16, so "7" and "40000" are accepted
// here even though Parse rejects them.
func (s *StatusCode) UnmarshalText(text []byte) error {
	text = bytes.TrimSpace(text)
	if parsed, err := FromBytes(text); err == nil {
		*s = parsed
		return nil
	}
	n, err := strconv.ParseUint(string(text), 10, 16)
	if err != nil {
		return ErrInvalidStatusCode
	}
	parsed, err := FromUint16(uint16(n))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
