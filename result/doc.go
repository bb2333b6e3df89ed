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

// Package result provides a generic two-armed Success/Failure container
// for explicit propagation of expected failures.
//
// Expected, data-dependent failures — validation, lookup misses, downstream
// errors — travel in the Result's failure arm and compose with the same
// combinator vocabulary as success values. Truly exceptional conditions
// (programming errors, precondition violations) stay on a separate,
// non-recoverable channel: they panic. This package never converts one
// channel into the other; MustGet on a Failure panics, and a Peek observer
// that panics is not absorbed into the failure arm.
//
// Fold is the single universal elimination; Map, FlatMap and MapError are
// expressed through it. Combinators that change a type parameter are free
// functions because Go methods cannot introduce new type parameters:
//
//	user := result.Map(findUser(id), render)
//	resp := result.Fold(user,
//	    func(e apperr.Error) response.Response { return response.FromError(e) },
//	    func(v UserView) response.Response { return response.WithEntity("ok", v) },
//	)
//
// Try and TryWith adapt Go's (V, error) convention into the Result world.
// They are the sole intended bridge and belong at system boundaries — I/O,
// third-party calls — not in the middle of combinator pipelines.
//
// All values are immutable: every combinator returns a new Result, never
// mutates. Independent Results may be held and transformed concurrently
// with no coordination.
package result
