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

// internalPattern renders the message of an Internal error built from a cause.
const internalPattern = "Internal server error: %s"

// Internal represents an unexpected failure inside this system's own logic.
//
// The optional cause is the underlying error caught at the trust boundary.
// It is exposed through Unwrap for errors.Is / errors.As chains but is
// never rendered into the message beyond its own message text.
type Internal struct {
	details errinfo.Info
	cause   error
}

// NewInternal constructs an Internal error from explicit details and an
// optional cause. It panics when the details message is empty.
func NewInternal(details errinfo.Info, cause error) *Internal {
	mustHaveMessage(details)
	return &Internal{details: details, cause: cause}
}

// InternalFromCause derives an Internal error from the given cause.
//
// The message is "Internal server error: <cause message>", falling back to
// the "<no details found>" placeholder when the cause has no message. The
// code defaults to DefaultCode unless overridden via WithCode.
func InternalFromCause(cause error, opts ...Option) *Internal {
	info := errinfo.OfCode("", fmt.Sprintf(internalPattern, causeText(cause)), DefaultCode)
	for _, opt := range opts {
		opt(&info)
	}
	return NewInternal(info, cause)
}

// InternalFromMessage constructs an Internal error from a plain message,
// bypassing the cause entirely. The code defaults to DefaultCode unless
// overridden via WithCode.
func InternalFromMessage(message string, opts ...Option) *Internal {
	info := errinfo.OfCode("", message, DefaultCode)
	for _, opt := range opts {
		opt(&info)
	}
	return NewInternal(info, nil)
}

// Error implements the built-in error interface.
func (e *Internal) Error() string { return e.details.Message }

// Message returns the rendered message. Always equal to Details().Message.
func (e *Internal) Message() string { return e.details.Message }

// Details returns the structured description of the failure.
func (e *Internal) Details() errinfo.Info { return e.details }

// Unwrap returns the underlying cause, enabling errors.Is / errors.As.
func (e *Internal) Unwrap() error { return e.cause }

// Cause returns the underlying error that triggered this one, if any.
func (e *Internal) Cause() error { return e.cause }

func (*Internal) appError() {}
