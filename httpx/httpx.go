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

// Package httpx adapts taxonomy errors and response envelopes to HTTP.
package httpx

import (
	"encoding/json"
	"net/http"

	"dirpx.dev/apperr"
	"dirpx.dev/apperr/response"
)

// StatusOf resolves the default HTTP status for a taxonomy error.
//
// The mapping stays close to common REST conventions: the external-system
// variant maps to 502 because the failure is visible to the client as a
// broken dependency, not as a fault in the request.
func StatusOf(err apperr.Error) int {
	switch err.(type) {
	case *apperr.Validation:
		return http.StatusBadRequest
	case *apperr.NotFound:
		return http.StatusNotFound
	case *apperr.External:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Writer is a thin adapter that turns taxonomy errors and response
// envelopes into HTTP responses.
type Writer struct {
	// Status overrides the default variant-to-status mapping when set.
	// Callers are expected to apply boundary-specific policy here, not in
	// the taxonomy itself.
	Status func(apperr.Error) int
}

// Write renders the error as a failure envelope and writes it with the
// resolved status. A nil error writes nothing.
//
// No redaction or filtering is performed: the envelope exposes exactly the
// error's own message and details.
func (w Writer) Write(rw http.ResponseWriter, err apperr.Error) {
	if err == nil {
		return
	}
	w.writeJSON(rw, w.status(err), response.FromError(err))
}

// WriteAll renders multiple errors under one caller-supplied top-level
// message. The status is resolved from the first error; detail order is
// preserved from the input sequence.
func (w Writer) WriteAll(rw http.ResponseWriter, message string, errs []apperr.Error) {
	if len(errs) == 0 {
		return
	}
	w.writeJSON(rw, w.status(errs[0]), response.FromErrors(message, errs))
}

// WriteSuccess renders a success envelope with the given status, message
// and optional payload entity.
func (w Writer) WriteSuccess(rw http.ResponseWriter, status int, message string, entity any) {
	if entity == nil {
		w.writeJSON(rw, status, response.FromMessage(message))
		return
	}
	w.writeJSON(rw, status, response.WithEntity(message, entity))
}

func (w Writer) status(err apperr.Error) int {
	if w.Status != nil {
		return w.Status(err)
	}
	return StatusOf(err)
}

func (w Writer) writeJSON(rw http.ResponseWriter, status int, resp response.Response) {
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(status)

	b, _ := json.Marshal(resp)
	_, _ = rw.Write(b)
}
