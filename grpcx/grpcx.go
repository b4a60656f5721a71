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

// Package grpcx projects dstatus errors onto gRPC statuses and back.
//
// A converted error is a google.rpc.Status whose code comes from an
// apis.Mapper and which carries one google.rpc.ErrorInfo detail:
//
//	reason:   "USERNAME_EXISTS"            (or "STATUS_20001" if uncatalogued)
//	domain:   "dstatus.dirpx.dev"
//	metadata: {"code": "10111", "phrase": "Username Already Exists"}
//
// Clients recover the status code with FromError, ExtractStatusCode or
// UnaryClientInterceptor.
package grpcx

import (
	"context"
	"errors"

	"dirpx.dev/dstatus"
	"dirpx.dev/dstatus/apis"
	"dirpx.dev/dstatus/status"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gstatus "google.golang.org/grpc/status"
	"gopkg.in/op/go-logging.v1"
)

// Domain is the ErrorInfo domain of every detail produced by this package.
const Domain = "dstatus.dirpx.dev"

// ErrorInfo metadata keys.
const (
	MetadataCode   = "code"
	MetadataPhrase = "phrase"
)

const uncataloguedPrefix = "STATUS_"

// ErrorInfo builds the google.rpc.ErrorInfo detail describing s.
func ErrorInfo(s status.StatusCode) *errdetails.ErrorInfo {
	reason := s.Name()
	if reason == "" {
		reason = uncataloguedPrefix + s.Text()
	}
	md := map[string]string{MetadataCode: s.Text()}
	if phrase, ok := s.CanonicalReason(); ok {
		md[MetadataPhrase] = phrase
	}
	return &errdetails.ErrorInfo{
		Reason:   reason,
		Domain:   Domain,
		Metadata: md,
	}
}

// Status converts e into a gRPC status using m for the code.
//
// The message is e.Message, or the canonical phrase when it is empty. The
// ErrorInfo detail is attached whenever gRPC allows details, i.e. for every
// code but codes.OK. A nil e yields an OK status.
func Status(e *dstatus.Error, m apis.Mapper) *gstatus.Status {
	if e == nil {
		return gstatus.New(m.GRPCStatus(status.OK), "")
	}
	msg := e.Message
	if msg == "" {
		msg, _ = e.Status.CanonicalReason()
	}
	base := gstatus.New(m.GRPCStatus(e.Status), msg)
	if with, err := base.WithDetails(ErrorInfo(e.Status)); err == nil {
		return with
	}
	return base
}

// FromError pulls a *dstatus.Error out of a gRPC error, if it carries an
// ErrorInfo detail of this Domain. The returned error wraps err as its
// Cause. A message equal to the canonical phrase is dropped, mirroring
// Status.
func FromError(err error) (*dstatus.Error, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		info, ok := d.(*errdetails.ErrorInfo)
		if !ok || info.GetDomain() != Domain {
			continue
		}
		var s status.StatusCode
		if perr := s.UnmarshalText([]byte(info.GetMetadata()[MetadataCode])); perr != nil {
			continue
		}
		msg := st.Message()
		if phrase, ok := s.CanonicalReason(); ok && msg == phrase {
			msg = ""
		}
		return &dstatus.Error{Status: s, Message: msg, Cause: err}, true
	}
	return nil, false
}

// ExtractStatusCode returns the status code carried by err, looking first
// for a local apis.StatusError and then for an ErrorInfo detail. A nil
// error is OK.
func ExtractStatusCode(err error) (status.StatusCode, bool) {
	if s, ok := dstatus.StatusOf(err); ok {
		return s, true
	}
	if e, ok := FromError(err); ok {
		return e.Status, true
	}
	return status.OK, false
}

// Option configures the interceptors.
type Option func(*options)

type options struct {
	log *logging.Logger
}

// WithLogger makes the interceptors log every converted error at debug
// level. A nil logger means silent.
func WithLogger(l *logging.Logger) Option {
	return func(o *options) { o.log = l }
}

func newOptions(opts []Option) *options {
	o := new(options)
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *options) debugf(format string, args ...any) {
	if o.log != nil {
		o.log.Debugf(format, args...)
	}
}

// convert maps err if it is (or wraps) a *dstatus.Error. Foreign errors are
// returned untouched. A status the mapper resolves to codes.OK converts to
// a nil error.
func (o *options) convert(m apis.Mapper, method string, err error) error {
	var de *dstatus.Error
	if !errors.As(err, &de) {
		return err
	}
	st := Status(de, m)
	o.debugf("%s: %v -> %v: %s", method, de.Status, st.Code(), de.Message)
	return st.Err()
}

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that maps
// *dstatus.Error returned by handlers into gRPC errors carrying an
// ErrorInfo detail.
//
// Other errors, including ones that already are gRPC statuses, pass through
// untouched. When the status resolves to codes.OK the handler's response is
// returned with a nil error.
func UnaryServerInterceptor(m apis.Mapper, opts ...Option) grpc.UnaryServerInterceptor {
	o := newOptions(opts)
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		if err = o.convert(m, info.FullMethod, err); err == nil {
			return resp, nil
		}
		return nil, err
	}
}

// StreamServerInterceptor is the streaming counterpart of
// UnaryServerInterceptor.
func StreamServerInterceptor(m apis.Mapper, opts ...Option) grpc.StreamServerInterceptor {
	o := newOptions(opts)
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		err := handler(srv, ss)
		if err == nil {
			return nil
		}
		return o.convert(m, info.FullMethod, err)
	}
}

// UnaryClientInterceptor returns a gRPC UnaryClientInterceptor that turns
// errors produced by UnaryServerInterceptor back into *dstatus.Error.
func UnaryClientInterceptor(opts ...Option) grpc.UnaryClientInterceptor {
	o := newOptions(opts)
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, callOpts ...grpc.CallOption) error {
		err := invoker(ctx, method, req, reply, cc, callOpts...)
		if err == nil {
			return nil
		}
		de, ok := FromError(err)
		if !ok {
			return err
		}
		o.debugf("%s: %v <- %v", method, de.Status, gstatus.Code(err))
		return de
	}
}
