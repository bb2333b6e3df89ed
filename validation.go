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

// Validation represents caller-supplied input that violates a business or
// shape rule. It optionally carries the failing field name so clients can
// attribute the problem for correction.
type Validation struct {
	details errinfo.Info
}

// NewValidation constructs a Validation error from explicit details.
// It panics when the details message is empty.
func NewValidation(details errinfo.Info) *Validation {
	mustHaveMessage(details)
	return &Validation{details: details}
}

// ValidationMessagef builds a Validation error from a fmt.Sprintf pattern.
// Field and code are left absent.
func ValidationMessagef(pattern string, args ...any) *Validation {
	return ValidationTemplate(pattern).Build(args...)
}

// ValidationCodef builds a Validation error from a pattern with an
// application code attached. Field is left absent.
func ValidationCodef(code, pattern string, args ...any) *Validation {
	return ValidationTemplate(pattern).Code(code).Build(args...)
}

// ValidationFieldf builds a Validation error attributed to a specific
// input field, with an application code attached.
func ValidationFieldf(code, field, pattern string, args ...any) *Validation {
	return ValidationTemplate(pattern).Code(code).Field(field).Build(args...)
}

// Error implements the built-in error interface.
func (e *Validation) Error() string { return e.details.Message }

// Message returns the rendered message. Always equal to Details().Message.
func (e *Validation) Message() string { return e.details.Message }

// Details returns the structured description of the failure.
func (e *Validation) Details() errinfo.Info { return e.details }

func (*Validation) appError() {}

// ValidationBuilder assembles the optional parts of a Validation error
// around a required message pattern. A mismatch between the pattern and the
// arguments passed to Build is a defect in the calling code; fmt renders it
// as a %! marker inside the message rather than hiding it.
type ValidationBuilder struct {
	pattern string
	field   string
	code    string
}

// ValidationTemplate starts a builder around the given fmt.Sprintf pattern.
func ValidationTemplate(pattern string) *ValidationBuilder {
	return &ValidationBuilder{pattern: pattern}
}

// Field sets the failing input field.
func (b *ValidationBuilder) Field(field string) *ValidationBuilder {
	b.field = field
	return b
}

// Code sets the application code.
func (b *ValidationBuilder) Code(code string) *ValidationBuilder {
	b.code = code
	return b
}

// Build substitutes the positional arguments into the pattern and returns
// the finished Validation error.
func (b *ValidationBuilder) Build(args ...any) *Validation {
	message := fmt.Sprintf(b.pattern, args...)
	return NewValidation(errinfo.Info{Field: b.field, Message: message, Code: b.code})
}
