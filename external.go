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

package apperr

import (
	"fmt"

	"dirpx.dev/apperr/errinfo"
)

// externalPattern renders the message of an External error built from a cause.
const externalPattern = "External service error: %s"

// External represents a failure attributed to a downstream dependency —
// a network call, a third-party service, another system.
//
// It mirrors Internal exactly, parameterized only by the message prefix.
type External struct {
	details errinfo.Info
	cause   error
}

// NewExternal constructs an External error from explicit details and an
// optional cause. It panics when the details message is empty.
func NewExternal(details errinfo.Info, cause error) *External {
	mustHaveMessage(details)
	return &External{details: details, cause: cause}
}

// ExternalFromCause derives an External error from the given cause.
//
// The message is "External service error: <cause message>", falling back to
// the "<no details found>" placeholder when the cause has no message. The
// code defaults to DefaultCode unless overridden via WithCode.
func ExternalFromCause(cause error, opts ...Option) *External {
	info := errinfo.OfCode("", fmt.Sprintf(externalPattern, causeText(cause)), DefaultCode)
	for _, opt := range opts {
		opt(&info)
	}
	return NewExternal(info, cause)
}

// ExternalFromMessage constructs an External error from a plain message,
// bypassing the cause entirely. The code defaults to DefaultCode unless
// overridden via WithCode.
func ExternalFromMessage(message string, opts ...Option) *External {
	info := errinfo.OfCode("", message, DefaultCode)
	for _, opt := range opts {
		opt(&info)
	}
	return NewExternal(info, nil)
}

// Error implements the built-in error interface.
func (e *External) Error() string { return e.details.Message }

// Message returns the rendered message. Always equal to Details().Message.
func (e *External) Message() string { return e.details.Message }

// Details returns the structured description of the failure.
func (e *External) Details() errinfo.Info { return e.details }

// Unwrap returns the underlying cause, enabling errors.Is / errors.As.
func (e *External) Unwrap() error { return e.cause }

// Cause returns the underlying error that triggered this one, if any.
func (e *External) Cause() error { return e.cause }

func (*External) appError() {}
