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

package adapter

import (
	"errors"
	"fmt"
	"testing"

	"dirpx.dev/dstatus"
	"dirpx.dev/dstatus/apis"
	"dirpx.dev/dstatus/mapper"
	"dirpx.dev/dstatus/status"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
)

func TestToDescriptor(t *testing.T) {
	e := dstatus.E(status.UsernameExists, "alice is taken")
	d := ToDescriptor(e, apis.Status{HTTP: 409, GRPC: codes.AlreadyExists})

	require.Equal(t, apis.ErrorDescriptor{
		Code:       10111,
		Name:       "USERNAME_EXISTS",
		Reason:     "Username Already Exists",
		HTTPStatus: 409,
		GRPCCode:   int(codes.AlreadyExists),
		Message:    "alice is taken",
	}, d)

	require.Equal(t, apis.ErrorDescriptor{}, ToDescriptor(nil, apis.Status{HTTP: 500}))
}

func TestToDescriptor_Uncatalogued(t *testing.T) {
	e := dstatus.E(status.MustFromUint16(20001), "")
	d := ToDescriptor(e, apis.Status{HTTP: 500, GRPC: codes.Internal})
	require.Equal(t, uint16(20001), d.Code)
	require.Empty(t, d.Name)
	require.Empty(t, d.Reason)
}

func TestToView(t *testing.T) {
	e := dstatus.E(status.PasswordTooShort, "too short",
		dstatus.WithDetailOption("min_length", 8),
		dstatus.WithDetailOption("field", "password"),
	)
	v := ToView(e)

	require.Equal(t, uint16(10121), v.Code)
	require.Equal(t, "PASSWORD_TO_SHORT", v.Name)
	require.Equal(t, "Password is To Short", v.Reason)
	require.Equal(t, "too short", v.Message)
	require.Equal(t, []apis.Detail{
		{Type: "info", Field: "field", Reason: "password"},
		{Type: "info", Field: "min_length", Reason: "8"},
	}, v.Details)

	require.Nil(t, ToView(dstatus.E(status.OK, "")).Details)
	require.Equal(t, apis.ErrorView{}, ToView(nil))
}

type foreignStatusError struct{ s status.StatusCode }

func (f foreignStatusError) Error() string                  { return "foreign" }
func (f foreignStatusError) ErrorStatus() status.StatusCode { return f.s }

func TestDescribe(t *testing.T) {
	m, err := mapper.New()
	require.NoError(t, err)

	wrapped := fmt.Errorf("register: %w", dstatus.E(status.UsernameExists, "taken"))
	d := Describe(wrapped, m)
	require.Equal(t, uint16(10111), d.Code)
	require.Equal(t, 409, d.HTTPStatus)
	require.Equal(t, int(codes.AlreadyExists), d.GRPCCode)
	require.Equal(t, "taken", d.Message)

	d = Describe(foreignStatusError{s: status.SMSVerificationCodeFailed}, m)
	require.Equal(t, uint16(10131), d.Code)
	require.Equal(t, 401, d.HTTPStatus)
	require.Equal(t, "foreign", d.Message)

	d = Describe(errors.New("boom"), m)
	require.Equal(t, apis.ErrorDescriptor{Message: "boom"}, d)

	require.Equal(t, apis.ErrorDescriptor{}, Describe(nil, m))
}

type foreignView struct{}

func (foreignView) Error() string { return "foreign view" }
func (foreignView) ErrorView() apis.ErrorView {
	return apis.ErrorView{Code: 20001, Message: "from elsewhere"}
}

func TestView(t *testing.T) {
	wrapped := fmt.Errorf("register: %w", dstatus.E(status.UsernameExists, "taken"))
	v, ok := View(wrapped)
	require.True(t, ok)
	require.Equal(t, uint16(10111), v.Code)
	require.Equal(t, "USERNAME_EXISTS", v.Name)
	require.Equal(t, "taken", v.Message)

	v, ok = View(fmt.Errorf("wrap: %w", foreignView{}))
	require.True(t, ok)
	require.Equal(t, apis.ErrorView{Code: 20001, Message: "from elsewhere"}, v)

	_, ok = View(errors.New("plain"))
	require.False(t, ok)
	_, ok = View(nil)
	require.False(t, ok)
}
