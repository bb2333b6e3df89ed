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

// Result holds exactly one of a success value V or a failure value E.
//
// The zero value is Success of the zero V. A Result is immutable once
// constructed; combinators return new values.
//
// E is unconstrained: apperr.Error is the common choice, but any failure
// representation works.
type Result[V, E any] struct {
	value   V
	err     E
	failure bool
}

// Success returns a Result holding the given success value.
func Success[V, E any](v V) Result[V, E] {
	return Result[V, E]{value: v}
}

// Failure returns a Result holding the given failure value.
func Failure[V, E any](e E) Result[V, E] {
	return Result[V, E]{err: e, failure: true}
}

// IsSuccess reports whether the Result holds a success value.
func (r Result[V, E]) IsSuccess() bool { return !r.failure }

// IsFailure reports whether the Result holds a failure value.
func (r Result[V, E]) IsFailure() bool { return r.failure }

// Get returns the success value and true, or the zero V and false when the
// Result is a Failure.
func (r Result[V, E]) Get() (V, bool) {
	if r.failure {
		var zero V
		return zero, false
	}
	return r.value, true
}

// Err returns the failure value and true, or the zero E and false when the
// Result is a Success.
func (r Result[V, E]) Err() (E, bool) {
	if !r.failure {
		var zero E
		return zero, false
	}
	return r.err, true
}

// MustGet returns the success value. Calling it on a Failure is a
// precondition violation and panics; callers are expected to have proven
// the variant via IsSuccess or Get first.
func (r Result[V, E]) MustGet() V {
	if r.failure {
		panic("result: no value in Failure")
	}
	return r.value
}

// MustErr returns the failure value. Calling it on a Success is a
// precondition violation and panics.
func (r Result[V, E]) MustErr() E {
	if !r.failure {
		panic("result: no error in Success")
	}
	return r.err
}

// Peek invokes the observer matching the current variant and returns the
// Result unchanged. Nil observers are skipped. A panicking observer is not
// absorbed — the panic propagates as a fatal signal.
func (r Result[V, E]) Peek(onFailure func(E), onSuccess func(V)) Result[V, E] {
	if r.failure {
		if onFailure != nil {
			onFailure(r.err)
		}
		return r
	}
	if onSuccess != nil {
		onSuccess(r.value)
	}
	return r
}

// PeekSuccess invokes the observer when the Result is a Success and
// returns the Result unchanged.
func (r Result[V, E]) PeekSuccess(observe func(V)) Result[V, E] {
	return r.Peek(nil, observe)
}

// PeekFailure invokes the observer when the Result is a Failure and
// returns the Result unchanged.
func (r Result[V, E]) PeekFailure(observe func(E)) Result[V, E] {
	return r.Peek(observe, nil)
}

// Recover applies the recovery function to a Failure's error and returns
// its Result, which may itself be a Failure again. A Success passes through
// unchanged. A nil recovery on the failure path panics.
func (r Result[V, E]) Recover(recovery func(E) Result[V, E]) Result[V, E] {
	if !r.failure {
		return r
	}
	if recovery == nil {
		panic("result: nil recovery function")
	}
	return recovery(r.err)
}

// RecoverWith turns a Failure into a Success by applying the recovery
// function to the error, unconditionally. A Success passes through
// unchanged. A nil recovery on the failure path panics.
func (r Result[V, E]) RecoverWith(recovery func(E) V) Result[V, E] {
	if !r.failure {
		return r
	}
	if recovery == nil {
		panic("result: nil recovery function")
	}
	return Success[V, E](recovery(r.err))
}
