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

// Package httpx writes dstatus errors as HTTP responses.
//
// The body is the JSON form of google.rpc.Status, as produced by grpcx, so
// HTTP clients and gRPC-gateway style clients read the same document:
//
//	{
//	  "code": 6,
//	  "message": "alice is taken",
//	  "details": [{
//	    "@type": "type.googleapis.com/google.rpc.ErrorInfo",
//	    "reason": "USERNAME_EXISTS",
//	    "domain": "dstatus.dirpx.dev",
//	    "metadata": {"code": "10111", "phrase": "Username Already Exists"}
//	  }]
//	}
package httpx

import (
	"net/http"

	"dirpx.dev/dstatus"
	"dirpx.dev/dstatus/apis"
	"dirpx.dev/dstatus/grpcx"
	"google.golang.org/protobuf/encoding/protojson"
	"gopkg.in/op/go-logging.v1"
)

// ContentType is the media type of every body written by Writer.
const ContentType = "application/json"

// Writer is a thin adapter that knows how to turn a *dstatus.Error into an
// HTTP response using the provided status mapper.
type Writer struct {
	Mapper apis.Mapper

	// Log, when set, receives one debug line per written error.
	Log *logging.Logger
}

// Write resolves the HTTP status of err via the Mapper and writes the
// google.rpc.Status JSON body. A nil err writes nothing.
//
// No automatic redaction or filtering is performed here: the message of the
// error is exposed as-is.
func (w Writer) Write(rw http.ResponseWriter, err *dstatus.Error) {
	if err == nil {
		return
	}

	code := w.Mapper.HTTPStatus(err.Status)

	// protojson is required for the google.protobuf.Any details.
	b, merr := (protojson.MarshalOptions{
		EmitUnpopulated: false,
		UseProtoNames:   false, // use json_name
	}).Marshal(grpcx.Status(err, w.Mapper).Proto())
	if merr != nil && w.Log != nil {
		w.Log.Errorf("httpx: failed to encode %v: %v", err.Status, merr)
	}

	if w.Log != nil {
		w.Log.Debugf("%v -> %d: %s", err.Status, code, err.Message)
	}

	rw.Header().Set("Content-Type", ContentType)
	rw.WriteHeader(code)
	if merr == nil {
		_, _ = rw.Write(b)
	}
}
