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

// Package apperr defines the closed taxonomy of application error kinds
// produced by business logic.
//
// The taxonomy is sealed: exactly four variants implement the Error
// interface and no external package can add a fifth. This makes exhaustive
// handling possible with a plain type switch:
//
//	switch e := err.(type) {
//	case *apperr.Internal:
//	case *apperr.External:
//	case *apperr.Validation:
//	case *apperr.NotFound:
//	}
//
// The variants and their meaning:
//
//   - Internal — unexpected failure inside this system's own logic,
//     typically a caught error converted at a trust boundary;
//   - External — failure attributed to a downstream dependency
//     (network, third-party service);
//   - Validation — caller-supplied input violates a business or shape
//     rule, optionally attributed to a specific field;
//   - NotFound — a requested entity does not exist.
//
// Every variant renders exactly one errinfo.Info and guarantees that
// Message() equals Details().Message. Values are immutable after
// construction and safe to share across goroutines.
//
// Expected failures travel as values — wrapped into a result.Failure or
// collected into a list and eventually presented through the response
// envelope. They are never raised as panics. Panics are reserved for the
// separate fatal channel: programming errors such as constructing a
// variant with an empty details message. Generic code must not recover
// such panics and convert them into taxonomy values.
package apperr
