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

// Package grpcx adapts taxonomy errors to gRPC statuses with structured
// error details.
package grpcx

import (
	"context"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"

	"dirpx.dev/apperr"
)

// Domain identifies this error producer inside errdetails.ErrorInfo.
const Domain = "apperr.dirpx.dev"

// CodeOf resolves the canonical gRPC code for a taxonomy error.
func CodeOf(err apperr.Error) gcodes.Code {
	switch err.(type) {
	case *apperr.Validation:
		return gcodes.InvalidArgument
	case *apperr.NotFound:
		return gcodes.NotFound
	case *apperr.External:
		return gcodes.Unavailable
	default:
		return gcodes.Internal
	}
}

// reasonOf names the variant for the errdetails.ErrorInfo reason field.
func reasonOf(err apperr.Error) string {
	switch err.(type) {
	case *apperr.Validation:
		return "VALIDATION"
	case *apperr.NotFound:
		return "NOT_FOUND"
	case *apperr.External:
		return "EXTERNAL_SYSTEM"
	default:
		return "INTERNAL"
	}
}

// ToStatus converts a taxonomy error into a *status.Status carrying an
// errdetails.ErrorInfo (variant reason plus code/field metadata) and, for
// validation errors, an errdetails.BadRequest field violation.
//
// If attaching details fails, the base status (code + message) is returned
// so the caller never loses the error itself.
func ToStatus(err apperr.Error) *gstatus.Status {
	base := gstatus.New(CodeOf(err), err.Message())

	details := err.Details()
	meta := make(map[string]string, 2)
	if details.Code != "" {
		meta["code"] = details.Code
	}
	if details.Field != "" {
		meta["field"] = details.Field
	}
	info := &errdetails.ErrorInfo{
		Reason:   reasonOf(err),
		Domain:   Domain,
		Metadata: meta,
	}

	var (
		with *gstatus.Status
		werr error
	)
	if _, ok := err.(*apperr.Validation); ok {
		bad := &errdetails.BadRequest{
			FieldViolations: []*errdetails.BadRequest_FieldViolation{{
				Field:       details.Field,
				Description: details.Message,
			}},
		}
		with, werr = base.WithDetails(info, bad)
	} else {
		with, werr = base.WithDetails(info)
	}
	if werr != nil {
		return base
	}
	return with
}

// UnaryServerInterceptor returns an interceptor that maps apperr.Error
// values returned by handlers into gRPC errors with structured details.
// Errors outside the taxonomy are returned as-is.
func UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}

		ae, ok := err.(apperr.Error)
		if !ok {
			// Not ours — return as-is.
			return nil, err
		}
		return nil, ToStatus(ae).Err()
	}
}

// ExtractErrorInfo pulls the errdetails.ErrorInfo out of a gRPC error, if
// present. Useful in tests and client code.
func ExtractErrorInfo(err error) (*errdetails.ErrorInfo, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok {
			return info, true
		}
	}
	return nil, false
}

// ExtractBadRequest pulls the errdetails.BadRequest out of a gRPC error,
// if present.
func ExtractBadRequest(err error) (*errdetails.BadRequest, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if bad, ok := d.(*errdetails.BadRequest); ok {
			return bad, true
		}
	}
	return nil, false
}
