package stream

import (
	"context"
	"sync"

	"github.com/olivierbellone/r/pkg/result"
)

// Stage transforms one result into another, possibly changing the value
// type. Stages run synchronously inside a worker.
type Stage[T, E, U any] func(ctx context.Context, r result.Result[T, E]) result.Result[U, E]

// Source emits each value as a success result on an unbuffered channel and
// closes it. Emission stops when ctx is cancelled.
func Source[E, T any](ctx context.Context, values ...T) <-chan result.Result[T, E] {
	in := make(chan result.Result[T, E])

	go func() {
		defer close(in)

		for _, v := range values {
			select {
			case in <- result.Success[E](v):
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

// Pipe runs stage over every result from in using the given number of
// workers, returning the output channel. The output closes once the input
// closes and all workers drain, or when ctx is cancelled.
func Pipe[T, E, U any](ctx context.Context, in <-chan result.Result[T, E],
	stage Stage[T, E, U], workers int) <-chan result.Result[U, E] {

	out := make(chan result.Result[U, E])
	wg := &sync.WaitGroup{}

	for range workers {
		wg.Add(1)
		go pump(ctx, in, out, stage, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

// Run is Pipe for stages that keep the value type.
func Run[T, E any](ctx context.Context, in <-chan result.Result[T, E],
	stage Stage[T, E, T], workers int) <-chan result.Result[T, E] {
	return Pipe(ctx, in, stage, workers)
}

func pump[T, E, U any](ctx context.Context, in <-chan result.Result[T, E],
	out chan<- result.Result[U, E], stage Stage[T, E, U], wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case r, ok := <-in:
			if !ok {
				return
			}

			select {
			case out <- stage(ctx, r):
			case <-ctx.Done():
				return
			}
		}
	}
}

// Map lifts a pure success transformation into a Stage. Failures pass
// through re-wrapped.
func Map[T, E, U any](f func(ctx context.Context, v T) U) Stage[T, E, U] {
	return func(ctx context.Context, r result.Result[T, E]) result.Result[U, E] {
		return result.Map(r, func(v T) U { return f(ctx, v) })
	}
}

// Then lifts a result-returning step into a Stage.
func Then[T, E, U any](f func(ctx context.Context, v T) result.Result[U, E]) Stage[T, E, U] {
	return func(ctx context.Context, r result.Result[T, E]) result.Result[U, E] {
		return result.AndThen(r, func(v T) result.Result[U, E] { return f(ctx, v) })
	}
}

// Try lifts a conventional (U, error) function into a Stage over error
// failures.
func Try[T, U any](f func(ctx context.Context, v T) (U, error)) Stage[T, error, U] {
	return func(ctx context.Context, r result.Result[T, error]) result.Result[U, error] {
		return result.AndThen(r, func(v T) result.Result[U, error] {
			return result.FromPair(f(ctx, v))
		})
	}
}

// Tee lifts a side-effect observer into a pass-through Stage.
func Tee[T, E any](onSuccess func(ctx context.Context, v T), onFailure func(ctx context.Context, e E)) Stage[T, E, T] {
	return func(ctx context.Context, r result.Result[T, E]) result.Result[T, E] {
		if onSuccess != nil {
			r.OnSuccess(func(v T) { onSuccess(ctx, v) })
		}
		if onFailure != nil {
			r.OnFailure(func(e E) { onFailure(ctx, e) })
		}
		return r
	}
}

// Finally folds every result from in into a plain value using the matching
// handler, with the given number of workers.
func Finally[T, E, U any](ctx context.Context, in <-chan result.Result[T, E],
	onSuccess func(ctx context.Context, v T) U,
	onFailure func(ctx context.Context, e E) U,
	workers int) <-chan U {

	out := make(chan U)
	wg := &sync.WaitGroup{}

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case r, ok := <-in:
					if !ok {
						return
					}

					folded := result.Fold(r,
						func(v T) U { return onSuccess(ctx, v) },
						func(e E) U { return onFailure(ctx, e) })

					select {
					case out <- folded:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

// Drain collects everything from out until it closes or ctx is cancelled.
func Drain[T any](ctx context.Context, out <-chan T) []T {
	collected := make([]T, 0)
	for {
		select {
		case v, ok := <-out:
			if !ok {
				return collected
			}
			collected = append(collected, v)
		case <-ctx.Done():
			return collected
		}
	}
}
