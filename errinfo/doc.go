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

// Package errinfo defines the minimal structured description of a single
// application error: an optional field attribution, a rendered human
// message, and an optional machine code.
//
// Info is a *view type* — small, transport-friendly, and suitable for JSON
// payloads. It carries no behavior and no identity beyond its fields. The
// apperr taxonomy produces one Info per error; the response envelope
// collects them into its "errors" list.
//
// Field and Code are optional: the empty string means "not provided" and is
// omitted entirely from serialized output (never emitted as null).
package errinfo
