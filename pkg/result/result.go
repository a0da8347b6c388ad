package result

import (
	"fmt"
	"reflect"
	"time"

	"github.com/google/uuid"
)

// Result holds either a success value of type T or a failure value of type E.
// Exactly one variant is active per instance, fixed at construction.
type Result[T, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	failure   E
	ok        bool
}

// Success wraps value as the success variant. The failure type parameter
// comes first so it can be supplied alone while T is inferred:
//
//	r := result.Success[error](42) // Result[int, error]
func Success[E, T any](value T) Result[T, E] {
	return Result[T, E]{
		value:     value,
		ok:        true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Failure wraps failure as the failure variant. The success type parameter
// comes first so it can be supplied alone while E is inferred:
//
//	r := result.Failure[int]("bad") // Result[int, string]
func Failure[T, E any](failure E) Result[T, E] {
	return Result[T, E]{
		failure:   failure,
		ok:        false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FromPair converts a conventional (value, error) pair into a Result.
// A nil error yields a success.
func FromPair[T any](value T, err error) Result[T, error] {
	if err != nil {
		return Failure[T](err)
	}
	return Success[error](value)
}

// Pair converts a Result back into a conventional (value, error) pair.
func Pair[T any](r Result[T, error]) (T, error) {
	return r.value, r.failure
}

// IsSuccess reports whether the success variant is active.
func (r Result[T, E]) IsSuccess() bool {
	return r.ok
}

// IsFailure reports whether the failure variant is active.
func (r Result[T, E]) IsFailure() bool {
	return !r.ok
}

// Value returns the success payload and true, or the zero value and false
// when the failure variant is active.
func (r Result[T, E]) Value() (T, bool) {
	if !r.ok {
		var zero T
		return zero, false
	}
	return r.value, true
}

// FailureValue returns the failure payload and true, or the zero value and
// false when the success variant is active.
func (r Result[T, E]) FailureValue() (E, bool) {
	if r.ok {
		var zero E
		return zero, false
	}
	return r.failure, true
}

// ID returns the identity stamped on the instance at construction.
func (r Result[T, E]) ID() uuid.UUID {
	return r.id
}

// CreatedAt returns the construction time (UTC).
func (r Result[T, E]) CreatedAt() time.Time {
	return r.createdAt
}

// Equal reports whether both results hold the same variant with payloads
// that compare structurally equal. Identity metadata is ignored.
func (r Result[T, E]) Equal(other Result[T, E]) bool {
	if r.ok != other.ok {
		return false
	}
	if r.ok {
		return reflect.DeepEqual(r.value, other.value)
	}
	return reflect.DeepEqual(r.failure, other.failure)
}

// String renders the active variant as "success(<payload>)" or
// "failure(<payload>)" using the payload's %v form.
func (r Result[T, E]) String() string {
	if r.ok {
		return fmt.Sprintf("success(%v)", r.value)
	}
	return fmt.Sprintf("failure(%v)", r.failure)
}
