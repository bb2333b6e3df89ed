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

package grpcx

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"

	"dirpx.dev/apperr"
)

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  apperr.Error
		want gcodes.Code
	}{
		{"internal", apperr.InternalFromCause(errors.New("boom")), gcodes.Internal},
		{"external", apperr.ExternalFromCause(errors.New("refused")), gcodes.Unavailable},
		{"validation", apperr.ValidationMessagef("bad input"), gcodes.InvalidArgument},
		{"not found", apperr.NotFoundByID("404", "User", 42), gcodes.NotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.want {
				t.Fatalf("CodeOf = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestToStatus_Validation(t *testing.T) {
	e := apperr.ValidationFieldf("010", "email", "is required")
	st := ToStatus(e)

	if st.Code() != gcodes.InvalidArgument {
		t.Fatalf("code = %v", st.Code())
	}
	if st.Message() != e.Message() {
		t.Fatalf("message = %q, want %q", st.Message(), e.Message())
	}

	info, ok := ExtractErrorInfo(st.Err())
	if !ok {
		t.Fatal("ErrorInfo detail missing")
	}
	wantInfo := &errdetails.ErrorInfo{
		Reason:   "VALIDATION",
		Domain:   Domain,
		Metadata: map[string]string{"code": "010", "field": "email"},
	}
	if !proto.Equal(info, wantInfo) {
		t.Fatalf("ErrorInfo = %+v, want %+v", info, wantInfo)
	}

	bad, ok := ExtractBadRequest(st.Err())
	if !ok {
		t.Fatal("BadRequest detail missing")
	}
	wantBad := &errdetails.BadRequest{
		FieldViolations: []*errdetails.BadRequest_FieldViolation{{
			Field:       "email",
			Description: "is required",
		}},
	}
	if !proto.Equal(bad, wantBad) {
		t.Fatalf("BadRequest = %+v, want %+v", bad, wantBad)
	}
}

func TestToStatus_NonValidationHasNoBadRequest(t *testing.T) {
	e := apperr.NotFoundByID("404", "User", 42)
	st := ToStatus(e)

	if st.Code() != gcodes.NotFound {
		t.Fatalf("code = %v", st.Code())
	}
	info, ok := ExtractErrorInfo(st.Err())
	if !ok {
		t.Fatal("ErrorInfo detail missing")
	}
	if info.GetReason() != "NOT_FOUND" {
		t.Fatalf("reason = %q", info.GetReason())
	}
	if info.GetMetadata()["code"] != "404" {
		t.Fatalf("metadata = %v", info.GetMetadata())
	}
	if _, ok := ExtractBadRequest(st.Err()); ok {
		t.Fatal("BadRequest must only be attached for validation errors")
	}
}

func TestUnaryServerInterceptor(t *testing.T) {
	intercept := UnaryServerInterceptor()
	ctx := context.Background()
	info := &grpc.UnaryServerInfo{FullMethod: "/svc/Method"}

	t.Run("success passthrough", func(t *testing.T) {
		resp, err := intercept(ctx, nil, info, func(context.Context, any) (any, error) {
			return "ok", nil
		})
		if err != nil || resp != "ok" {
			t.Fatalf("resp = %v, err = %v", resp, err)
		}
	})

	t.Run("taxonomy error converted", func(t *testing.T) {
		_, err := intercept(ctx, nil, info, func(context.Context, any) (any, error) {
			return nil, apperr.NotFoundByID("404", "User", 42)
		})
		st, ok := gstatus.FromError(err)
		if !ok {
			t.Fatalf("not a status error: %v", err)
		}
		if st.Code() != gcodes.NotFound {
			t.Fatalf("code = %v", st.Code())
		}
		if _, ok := ExtractErrorInfo(err); !ok {
			t.Fatal("details not attached")
		}
	})

	t.Run("foreign error passthrough", func(t *testing.T) {
		plain := errors.New("plain")
		_, err := intercept(ctx, nil, info, func(context.Context, any) (any, error) {
			return nil, plain
		})
		if !errors.Is(err, plain) {
			t.Fatalf("err = %v, want passthrough", err)
		}
	})
}
