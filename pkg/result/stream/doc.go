// Package stream lifts result.Result[T, E] stages over channels for
// concurrent pipelines with worker fan-out. The Result type itself stays a
// pure two-variant value; cancellation is expressed by stopping the stream,
// never by a third variant.
//
// Key operations:
// - Source: emit values as success results on a channel
// - Run/Pipe: fan a stage out over a fixed number of workers
// - Map/Then/Try/Tee: lift single-result operations into stages
// - Finally: fold each result into a plain value via handlers
// - Drain: collect a channel into a slice
package stream
