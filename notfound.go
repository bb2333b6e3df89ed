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

// notFoundPattern renders the NotFound message from entity name and id.
const notFoundPattern = "%s with ID '%s' was not found"

// defaultEntity names the missing entity when the caller does not.
const defaultEntity = "Entity"

// NotFound represents a lookup miss: the requested entity does not exist
// (or is not visible to the caller). The message carries the entity name
// and the identifier that was looked up.
type NotFound struct {
	details errinfo.Info
}

// NewNotFound constructs a NotFound error from explicit details.
// It panics when the details message is empty.
func NewNotFound(details errinfo.Info) *NotFound {
	mustHaveMessage(details)
	return &NotFound{details: details}
}

// NotFoundByID builds a NotFound error for the given entity and identifier.
// An empty entity defaults to "Entity".
func NotFoundByID(code, entity string, id any) *NotFound {
	return NotFoundTemplate(code, entity).Build(id)
}

// Error implements the built-in error interface.
func (e *NotFound) Error() string { return e.details.Message }

// Message returns the rendered message. Always equal to Details().Message.
func (e *NotFound) Message() string { return e.details.Message }

// Details returns the structured description of the failure.
func (e *NotFound) Details() errinfo.Info { return e.details }

func (*NotFound) appError() {}

// NotFoundBuilder assembles the optional parts of a NotFound error. The
// message pattern itself is fixed; only the entity name, the code and the
// identifier vary.
type NotFoundBuilder struct {
	code   string
	entity string
}

// NotFoundTemplate starts a builder for the given code and entity name.
// An empty entity defaults to "Entity".
func NotFoundTemplate(code, entity string) *NotFoundBuilder {
	b := &NotFoundBuilder{code: code, entity: defaultEntity}
	if entity != "" {
		b.entity = entity
	}
	return b
}

// Entity replaces the entity name. The empty string is ignored and keeps
// the current value.
func (b *NotFoundBuilder) Entity(entity string) *NotFoundBuilder {
	if entity != "" {
		b.entity = entity
	}
	return b
}

// Code sets the application code.
func (b *NotFoundBuilder) Code(code string) *NotFoundBuilder {
	b.code = code
	return b
}

// Build renders the identifier into the fixed pattern and returns the
// finished NotFound error. A nil id renders as the literal "<null>".
func (b *NotFoundBuilder) Build(id any) *NotFound {
	idText := "<null>"
	if id != nil {
		idText = fmt.Sprint(id)
	}
	message := fmt.Sprintf(notFoundPattern, b.entity, idText)
	return NewNotFound(errinfo.OfCode("", message, b.code))
}
