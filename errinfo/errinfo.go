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

package errinfo

// Info is an immutable description of one error occurrence.
//
// Typical usages:
//   - report which field failed validation;
//   - carry the rendered message of an internal or downstream failure;
//   - attach a stable application code for client-side handling.
type Info struct {
	// Field carries the logical path of the failing input field, e.g.
	// "email" or "order.items". For non-field errors this is empty.
	Field string `json:"field,omitempty"`

	// Message is the rendered, human-readable description. Every Info
	// produced by the apperr taxonomy has a non-empty message.
	Message string `json:"message"`

	// Code is an optional application error code, e.g. "001".
	// Codes are opaque to this library; no format is enforced.
	Code string `json:"code,omitempty"`
}

// Of returns an Info with the given field attribution and message.
func Of(field, message string) Info {
	return Info{Field: field, Message: message}
}

// OfCode returns an Info with field, message and application code populated.
func OfCode(field, message, code string) Info {
	return Info{Field: field, Message: message, Code: code}
}
