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

package response

import (
	"time"

	"dirpx.dev/apperr"
	"dirpx.dev/apperr/errinfo"
)

// Response is the envelope presented to callers for both outcomes of an
// operation. It is constructed immutably at the moment of presentation;
// the timestamp is captured once and never recomputed.
type Response struct {
	// Message is the top-level human-readable summary. Never empty.
	Message string `json:"message"`

	// Entity is the optional success payload.
	Entity any `json:"entity,omitempty"`

	// Errors is the optional ordered list of error details. Order is
	// preserved from the input sequence.
	Errors []errinfo.Info `json:"errors,omitempty"`

	// Timestamp is the UTC instant at which the envelope was built.
	Timestamp time.Time `json:"timestamp"`
}

// FromMessage returns a Response carrying only the message.
func FromMessage(message string) Response {
	return of(message, nil, nil)
}

// WithEntity returns a success Response carrying the message and payload.
func WithEntity(message string, entity any) Response {
	return of(message, entity, nil)
}

// FromError returns a failure Response whose top-level message is the
// error's own message and whose errors list holds its details.
func FromError(err apperr.Error) Response {
	return FromErrors(err.Message(), []apperr.Error{err})
}

// FromErrorMessage returns a failure Response with a caller-supplied
// top-level message and the error's details as the single list entry.
func FromErrorMessage(message string, err apperr.Error) Response {
	return FromErrors(message, []apperr.Error{err})
}

// FromErrors returns a failure Response collecting the details of each
// error in input order under a caller-supplied top-level message.
func FromErrors(message string, errs []apperr.Error) Response {
	infos := make([]errinfo.Info, 0, len(errs))
	for _, e := range errs {
		infos = append(infos, e.Details())
	}
	return of(message, nil, infos)
}

// of is the single construction funnel: it enforces the message
// precondition and stamps the current UTC instant.
func of(message string, entity any, errs []errinfo.Info) Response {
	if message == "" {
		panic("response: message cannot be empty")
	}
	return Response{
		Message:   message,
		Entity:    entity,
		Errors:    errs,
		Timestamp: time.Now().UTC(),
	}
}
