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

import "dirpx.dev/apperr/errinfo"

// Error is the sealed interface implemented by the four taxonomy variants:
// Internal, External, Validation and NotFound.
//
// It extends the built-in error interface; Error() and Message() return the
// same string — the rendered human-readable message, identical to
// Details().Message. No code prefix or internal detail is ever mixed into
// the message text.
type Error interface {
	error

	// Message returns the human-readable description of the failure.
	// Always equal to Details().Message.
	Message() string

	// Details returns the structured description of the failure.
	Details() errinfo.Info

	// appError seals the taxonomy to this package.
	appError()
}

// DefaultCode is the application code assigned to Internal and External
// errors when the caller does not supply one.
const DefaultCode = "001"

// noDetailsFound substitutes for the message of a cause that carries none.
const noDetailsFound = "<no details found>"

// Option adjusts the errinfo.Info of a variant under construction.
// Intended to be used with the FromCause / FromMessage constructors.
type Option func(*errinfo.Info)

// WithCode overrides the application code of the error being constructed.
func WithCode(code string) Option {
	return func(info *errinfo.Info) {
		info.Code = code
	}
}

// causeText extracts the message of a cause, substituting noDetailsFound
// when the cause is nil or renders to the empty string.
func causeText(cause error) string {
	if cause == nil {
		return noDetailsFound
	}
	if msg := cause.Error(); msg != "" {
		return msg
	}
	return noDetailsFound
}

// mustHaveMessage is the fail-fast guard shared by all variant
// constructors. An empty message indicates a defect at the call site, not
// a runtime-data problem, so it is reported on the fatal channel.
func mustHaveMessage(info errinfo.Info) {
	if info.Message == "" {
		panic("apperr: details message cannot be empty")
	}
}
