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

// Fold is the universal elimination: it applies exactly one of the two
// functions depending on the variant and returns its value. Every other
// combinator in this package is expressible through Fold.
//
// A nil handler for the branch actually taken is a precondition violation
// and panics. The handler for the untaken branch is never called and may
// be nil.
func Fold[V, E, U any](r Result[V, E], onFailure func(E) U, onSuccess func(V) U) U {
	if r.failure {
		if onFailure == nil {
			panic("result: nil onFailure handler")
		}
		return onFailure(r.err)
	}
	if onSuccess == nil {
		panic("result: nil onSuccess handler")
	}
	return onSuccess(r.value)
}

// Map transforms the success value, leaving a Failure untouched.
func Map[V, E, U any](r Result[V, E], m func(V) U) Result[U, E] {
	return Fold(r, Failure[U, E], func(v V) Result[U, E] {
		return Success[U, E](m(v))
	})
}

// FlatMap sequences a fallible step after a successful one: the mapping
// function returns a new Result. A Failure passes through untouched,
// which lets a pipeline short-circuit without nested branching.
func FlatMap[V, E, U any](r Result[V, E], m func(V) Result[U, E]) Result[U, E] {
	return Fold(r, Failure[U, E], m)
}

// MapError transforms the failure value, leaving a Success untouched.
func MapError[V, E, U any](r Result[V, E], m func(E) U) Result[V, U] {
	return Fold(r, func(e E) Result[V, U] {
		return Failure[V, U](m(e))
	}, Success[V, U])
}
