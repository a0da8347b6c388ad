// Package result provides a two-variant Result[T, E] value holding either a
// success payload of type T or a failure payload of type E, together with
// the combinators to build error-aware flows from it. Recoverable errors
// travel as failure payloads; only the explicit extraction methods can
// panic, and only on variant misuse.
//
// Key operations:
// - Success/Failure/FromPair: construct a Result
// - IsSuccess/IsFailure/Value/FailureValue: inspect the active variant
// - Map/MapFailure/MapOr/MapOrElse: transform payloads
// - And/AndThen/Or/OrElse: chain results with short-circuiting
// - OnSuccess/OnFailure: side-effect observation without changing the result
// - UnwrapOr/UnwrapOrElse/Fold: collapse to a plain value
// - Expect/Unwrap (and failure twins): partial extraction, panics on misuse
// - TryUnwrap: early-return simulation via a non-returning escape callback
//
// Type-changing transformations are package-level functions because Go
// methods cannot add type parameters; the method forms cover same-type use.
//
// For fluent chaining see package chain, for slice helpers package seq, and
// for channel-lifted pipelines package stream.
package result
