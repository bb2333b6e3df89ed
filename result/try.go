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

package result

// Try runs a fallible computation and captures its returned error into the
// failure arm. This is the boundary adapter between error-returning code
// and the Result world; confine it to system boundaries (I/O, third-party
// calls) rather than using it pervasively.
//
// Panics are deliberately not recovered: they belong to the fatal channel,
// not to the taxonomy of expected failures.
func Try[V any](fn func() (V, error)) Result[V, error] {
	v, err := fn()
	if err != nil {
		return Failure[V, error](err)
	}
	return Success[V, error](v)
}

// TryWith runs a fallible computation and maps its returned error into the
// caller's failure type. The typical mapping lifts a raw error into the
// apperr taxonomy:
//
//	r := result.TryWith(fetch, func(err error) apperr.Error {
//	    return apperr.ExternalFromCause(err)
//	})
func TryWith[V, E any](fn func() (V, error), mapErr func(error) E) Result[V, E] {
	v, err := fn()
	if err != nil {
		if mapErr == nil {
			panic("result: nil error mapper")
		}
		return Failure[V, E](mapErr(err))
	}
	return Success[V, E](v)
}
