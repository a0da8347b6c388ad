// Package seq contains slice-level helpers over result.Result[T, E].
//
// Key operations:
// - Sequence: a slice of results into a result of a slice, fail-fast
// - Traverse: map items to results and sequence the outcomes
// - Collect: keep success payloads, drop failures
// - Partition: split payloads into successes and failures
// - FirstSuccess: pick the first success among candidates
package seq
