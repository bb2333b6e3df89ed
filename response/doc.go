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

// Package response provides the outward-facing envelope that unifies
// success and failure presentation.
//
// A Response carries a top-level message, an optional payload entity, an
// optional ordered list of error details, and a UTC timestamp captured at
// construction. Success responses carry an entity, failure responses carry
// errors; the type does not enforce the exclusivity.
//
// The JSON shape is the wire contract: message always, entity and errors
// only when present (absent optional fields are omitted entirely, never
// emitted as null), timestamp as an ISO-8601 UTC offset-date-time.
package response
