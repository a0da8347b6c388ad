package chain

import (
	"context"

	"github.com/olivierbellone/r/pkg/result"
)

// Chain carries a context together with a Result[T, E] so steps can be
// composed fluently without branching at each call site.
type Chain[T, E any] struct {
	ctx context.Context
	res result.Result[T, E]
}

func Start[T, E any](ctx context.Context, r result.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{ctx: ctx, res: r}
}

func FromValue[E, T any](ctx context.Context, v T) Chain[T, E] {
	return Start(ctx, result.Success[E](v))
}

func (c Chain[T, E]) Result() result.Result[T, E] {
	return c.res
}

func (c Chain[T, E]) Context() context.Context {
	return c.ctx
}

// Then composes a function that already returns a Result[T, E]. Failures
// short-circuit past it.
func (c Chain[T, E]) Then(onSuccess func(ctx context.Context, v T) result.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{ctx: c.ctx, res: c.res.AndThen(func(v T) result.Result[T, E] {
		return onSuccess(c.ctx, v)
	})}
}

// Map transforms the successful value in place.
func (c Chain[T, E]) Map(onSuccess func(ctx context.Context, v T) T) Chain[T, E] {
	return Chain[T, E]{ctx: c.ctx, res: c.res.Map(func(v T) T {
		return onSuccess(c.ctx, v)
	})}
}

// MapFailure transforms the failure value in place.
func (c Chain[T, E]) MapFailure(onFailure func(ctx context.Context, e E) E) Chain[T, E] {
	return Chain[T, E]{ctx: c.ctx, res: c.res.MapFailure(func(e E) E {
		return onFailure(c.ctx, e)
	})}
}

// Ensure triggers side effects for the active variant without changing the
// result. Either handler may be nil.
func (c Chain[T, E]) Ensure(onSuccess func(context.Context, T), onFailure func(context.Context, E)) Chain[T, E] {
	if onSuccess != nil {
		c.res.OnSuccess(func(v T) { onSuccess(c.ctx, v) })
	}
	if onFailure != nil {
		c.res.OnFailure(func(e E) { onFailure(c.ctx, e) })
	}
	return c
}

// And keeps the first failure encountered, yielding required otherwise.
func (c Chain[T, E]) And(required Chain[T, E]) Chain[T, E] {
	if c.res.IsFailure() {
		return c
	}
	return required
}

// Or keeps the first success, yielding alternative otherwise.
func (c Chain[T, E]) Or(alternative Chain[T, E]) Chain[T, E] {
	if c.res.IsSuccess() {
		return c
	}
	return alternative
}

// Then switches the chain to a new value type via a result-returning function.
func Then[T, E, U any](c Chain[T, E], onSuccess func(ctx context.Context, v T) result.Result[U, E]) Chain[U, E] {
	return Chain[U, E]{ctx: c.ctx, res: result.AndThen(c.res, func(v T) result.Result[U, E] {
		return onSuccess(c.ctx, v)
	})}
}

// Map switches the chain to a new value type via a pure transformation.
func Map[T, E, U any](c Chain[T, E], onSuccess func(ctx context.Context, v T) U) Chain[U, E] {
	return Chain[U, E]{ctx: c.ctx, res: result.Map(c.res, func(v T) U {
		return onSuccess(c.ctx, v)
	})}
}

// Try composes a conventional (U, error) function, converting a non-nil
// error into a failure.
func Try[T, U any](c Chain[T, error], try func(ctx context.Context, v T) (U, error)) Chain[U, error] {
	return Chain[U, error]{ctx: c.ctx, res: result.AndThen(c.res, func(v T) result.Result[U, error] {
		return result.FromPair(try(c.ctx, v))
	})}
}

// Finally collapses the chain to a final value via the matching handler.
func Finally[T, E, U any](c Chain[T, E], onSuccess func(context.Context, T) U, onFailure func(context.Context, E) U) U {
	return result.Fold(c.res,
		func(v T) U { return onSuccess(c.ctx, v) },
		func(e E) U { return onFailure(c.ctx, e) })
}
