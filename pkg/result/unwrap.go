package result

import "fmt"

// UnwrapError is the panic payload raised when an extraction method is
// called on the wrong variant. It carries the caller's message and the
// mismatched variant's payload so misuse is diagnosable at the call site.
type UnwrapError struct {
	Message string
	Payload any
}

func (e *UnwrapError) Error() string {
	return fmt.Sprintf("%s: %v", e.Message, e.Payload)
}

// Expect returns the success payload or panics with *UnwrapError carrying
// msg and the failure payload.
//
// Expect and its siblings are the only partial operations on Result; every
// other combinator is total. Prefer UnwrapOr, UnwrapOrElse or Fold unless a
// failure here really is a programming error.
func (r Result[T, E]) Expect(msg string) T {
	if !r.ok {
		panic(&UnwrapError{Message: msg, Payload: r.failure})
	}
	return r.value
}

// Unwrap returns the success payload or panics with a fixed message and the
// failure payload.
func (r Result[T, E]) Unwrap() T {
	return r.Expect("called unwrap on a failure value")
}

// ExpectFailure returns the failure payload or panics with *UnwrapError
// carrying msg and the success payload.
func (r Result[T, E]) ExpectFailure(msg string) E {
	if r.ok {
		panic(&UnwrapError{Message: msg, Payload: r.value})
	}
	return r.failure
}

// UnwrapFailure returns the failure payload or panics with a fixed message
// and the success payload.
func (r Result[T, E]) UnwrapFailure() E {
	return r.ExpectFailure("called unwrap_failure on a success value")
}

// UnwrapOr returns the success payload or def. def is evaluated by the
// caller on both paths; use UnwrapOrElse when it is expensive.
func (r Result[T, E]) UnwrapOr(def T) T {
	if !r.ok {
		return def
	}
	return r.value
}

// UnwrapOrElse returns the success payload or computes a fallback from the
// failure payload. f runs only on the failure path.
func (r Result[T, E]) UnwrapOrElse(f func(E) T) T {
	if !r.ok {
		return f(r.failure)
	}
	return r.value
}

// TryUnwrap returns the success payload. For failures it invokes escape with
// the whole result; escape must not return normally (it is expected to panic
// or otherwise exit the surrounding computation). An escape that returns
// anyway is a contract violation and triggers a panic here.
func (r Result[T, E]) TryUnwrap(escape func(Result[T, E])) T {
	if r.ok {
		return r.value
	}
	escape(r)
	panic("result: escape callback returned normally")
}
