package seq

import "github.com/olivierbellone/r/pkg/result"

// Sequence converts a slice of results into a result of a slice, failing
// fast on the first failure encountered.
func Sequence[T, E any](rs []result.Result[T, E]) result.Result[[]T, E] {
	values := make([]T, 0, len(rs))
	for _, r := range rs {
		if e, failed := r.FailureValue(); failed {
			return result.Failure[[]T](e)
		}
		v, _ := r.Value()
		values = append(values, v)
	}
	return result.Success[E](values)
}

// Traverse maps each item to a result and sequences the outcomes, failing
// fast on the first failure. f is not called for items past the failure.
func Traverse[A, B, E any](items []A, f func(A) result.Result[B, E]) result.Result[[]B, E] {
	values := make([]B, 0, len(items))
	for _, item := range items {
		r := f(item)
		if e, failed := r.FailureValue(); failed {
			return result.Failure[[]B](e)
		}
		v, _ := r.Value()
		values = append(values, v)
	}
	return result.Success[E](values)
}

// Collect gathers the success payloads, dropping failures.
func Collect[T, E any](rs []result.Result[T, E]) []T {
	values := make([]T, 0, len(rs))
	for _, r := range rs {
		if v, ok := r.Value(); ok {
			values = append(values, v)
		}
	}
	return values
}

// Partition splits results into success payloads and failure payloads,
// preserving order within each side.
func Partition[T, E any](rs []result.Result[T, E]) ([]T, []E) {
	values := make([]T, 0, len(rs))
	failures := make([]E, 0)
	for _, r := range rs {
		if v, ok := r.Value(); ok {
			values = append(values, v)
			continue
		}
		e, _ := r.FailureValue()
		failures = append(failures, e)
	}
	return values, failures
}

// FirstSuccess returns the first success among the candidates, or the first
// candidate's failure when none succeed.
func FirstSuccess[T, E any](first result.Result[T, E], rest ...result.Result[T, E]) result.Result[T, E] {
	if first.IsSuccess() {
		return first
	}
	for _, r := range rest {
		if r.IsSuccess() {
			return r
		}
	}
	return first
}
