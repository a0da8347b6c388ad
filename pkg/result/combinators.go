package result

// IsSuccessAnd reports whether the success variant is active and its payload
// satisfies pred. The predicate runs at most once and never for failures.
func (r Result[T, E]) IsSuccessAnd(pred func(T) bool) bool {
	return r.ok && pred(r.value)
}

// IsFailureAnd reports whether the failure variant is active and its payload
// satisfies pred.
func (r Result[T, E]) IsFailureAnd(pred func(E) bool) bool {
	return !r.ok && pred(r.failure)
}

// Map transforms the success payload within the same type. For a
// type-changing transformation use the package-level Map.
func (r Result[T, E]) Map(f func(T) T) Result[T, E] {
	if !r.ok {
		return r
	}
	return Success[E](f(r.value))
}

// MapFailure transforms the failure payload within the same type.
func (r Result[T, E]) MapFailure(f func(E) E) Result[T, E] {
	if r.ok {
		return r
	}
	return Failure[T](f(r.failure))
}

// OnSuccess invokes fn with the success payload for observation and returns
// the receiver unchanged. Failures pass through without invoking fn.
func (r Result[T, E]) OnSuccess(fn func(T)) Result[T, E] {
	if r.ok {
		fn(r.value)
	}
	return r
}

// OnFailure invokes fn with the failure payload for observation and returns
// the receiver unchanged.
func (r Result[T, E]) OnFailure(fn func(E)) Result[T, E] {
	if !r.ok {
		fn(r.failure)
	}
	return r
}

// And returns other when the receiver is a success, keeping the first
// failure encountered otherwise.
func (r Result[T, E]) And(other Result[T, E]) Result[T, E] {
	if r.ok {
		return other
	}
	return r
}

// AndThen feeds the success payload to f, short-circuiting on failure.
// f runs only for successes.
func (r Result[T, E]) AndThen(f func(T) Result[T, E]) Result[T, E] {
	if !r.ok {
		return r
	}
	return f(r.value)
}

// Or returns the receiver when it is a success, other otherwise. The first
// success wins.
func (r Result[T, E]) Or(other Result[T, E]) Result[T, E] {
	if r.ok {
		return r
	}
	return other
}

// OrElse feeds the failure payload to f, keeping the receiver on success.
// f runs only for failures.
func (r Result[T, E]) OrElse(f func(E) Result[T, E]) Result[T, E] {
	if r.ok {
		return r
	}
	return f(r.failure)
}
