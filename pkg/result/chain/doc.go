// Package chain provides a fluent wrapper around result.Result[T, E]
// for building synchronous success/failure pipelines.
//
// It carries a context alongside the result so every step's callback
// receives it, without threading it by hand through each call.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result or a plain value
// - Then: compose a result-returning step (method form keeps T, function
//   form switches to a new value type)
// - Map/MapFailure: transform the active payload
// - Try: compose a conventional (U, error) function
// - Ensure: run side effects without changing the result
// - And/Or: combine chains with short-circuiting
// - Finally: collapse the chain into a final value via handlers
package chain
