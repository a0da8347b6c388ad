package result

// Type-changing combinators live at package level because Go methods cannot
// introduce new type parameters. The method forms on Result cover the
// same-type cases.

// Map transforms a success payload with f, re-wrapping failures untouched.
func Map[T, E, U any](r Result[T, E], f func(T) U) Result[U, E] {
	if !r.ok {
		return Failure[U](r.failure)
	}
	return Success[E](f(r.value))
}

// MapFailure transforms a failure payload with f, re-wrapping successes
// untouched.
func MapFailure[T, E, F any](r Result[T, E], f func(E) F) Result[T, F] {
	if r.ok {
		return Success[F](r.value)
	}
	return Failure[T](f(r.failure))
}

// MapOr applies f to a success payload or yields def for failures.
//
// def is evaluated by the caller before MapOr runs, on both paths. Prefer
// MapOrElse when the default is expensive or has side effects.
func MapOr[T, E, U any](r Result[T, E], def U, f func(T) U) U {
	if !r.ok {
		return def
	}
	return f(r.value)
}

// MapOrElse applies f to a success payload or computes the default from the
// failure payload. defaultFn runs only on the failure path.
func MapOrElse[T, E, U any](r Result[T, E], defaultFn func(E) U, f func(T) U) U {
	if !r.ok {
		return defaultFn(r.failure)
	}
	return f(r.value)
}

// And chains two independent results, keeping the first failure encountered.
// A success yields other as-is.
func And[T, E, U any](r Result[T, E], other Result[U, E]) Result[U, E] {
	if !r.ok {
		return Failure[U](r.failure)
	}
	return other
}

// AndThen feeds the success payload to f, which may itself fail. f runs only
// for successes; failures short-circuit past it.
func AndThen[T, E, U any](r Result[T, E], f func(T) Result[U, E]) Result[U, E] {
	if !r.ok {
		return Failure[U](r.failure)
	}
	return f(r.value)
}

// Or keeps the first success, yielding other for failures.
func Or[T, E, F any](r Result[T, E], other Result[T, F]) Result[T, F] {
	if r.ok {
		return Success[F](r.value)
	}
	return other
}

// OrElse feeds the failure payload to f, which may recover or re-fail.
// f runs only for failures.
func OrElse[T, E, F any](r Result[T, E], f func(E) Result[T, F]) Result[T, F] {
	if r.ok {
		return Success[F](r.value)
	}
	return f(r.failure)
}

// Fold collapses a result into a single value via the matching handler.
func Fold[T, E, U any](r Result[T, E], onSuccess func(T) U, onFailure func(E) U) U {
	if r.ok {
		return onSuccess(r.value)
	}
	return onFailure(r.failure)
}
