package chain

import (
	"context"

	"github.com/ib-77/outcome/pkg/outcome"
)

// Chain wraps a Result with the context the pipeline runs under.
type Chain[T any] struct {
	ctx context.Context
	res outcome.Result[T, error]
}

// Start begins a chain from an existing Result.
func Start[T any](ctx context.Context, r outcome.Result[T, error]) Chain[T] {
	return Chain[T]{ctx: ctx, res: r}
}

// FromValue begins a chain from a successful value.
func FromValue[T any](ctx context.Context, v T) Chain[T] {
	return Start(ctx, outcome.Ok[T, error](v))
}

// Result returns the underlying Result.
func (c Chain[T]) Result() outcome.Result[T, error] {
	return c.res
}

// Context returns the context the chain was started with.
func (c Chain[T]) Context() context.Context {
	return c.ctx
}

// Then composes a step that already returns a Result; failures skip it.
func (c Chain[T]) Then(onSuccess func(ctx context.Context, t T) outcome.Result[T, error]) Chain[T] {
	if c.res.IsErr() {
		return c
	}
	v, _ := c.res.Get()
	return Chain[T]{ctx: c.ctx, res: onSuccess(c.ctx, v)}
}

// ThenTry composes a (value, error) call, like a repository lookup;
// a non-nil error becomes the chain's failure.
func (c Chain[T]) ThenTry(try func(ctx context.Context, t T) (T, error)) Chain[T] {
	if c.res.IsErr() {
		return c
	}
	v, _ := c.res.Get()
	return Chain[T]{ctx: c.ctx, res: outcome.FromTuple(try(c.ctx, v))}
}

// Map transforms the success value; failures skip it.
func (c Chain[T]) Map(onSuccess func(ctx context.Context, t T) T) Chain[T] {
	if c.res.IsErr() {
		return c
	}
	v, _ := c.res.Get()
	return Chain[T]{ctx: c.ctx, res: outcome.Ok[T, error](onSuccess(c.ctx, v))}
}

// Ensure runs side effects for the current case without changing the
// result. Either handler may be nil.
func (c Chain[T]) Ensure(onSuccess func(context.Context, T), onFailure func(context.Context, error)) Chain[T] {
	if e, failed := c.res.GetErr(); failed {
		if onFailure != nil {
			onFailure(c.ctx, e)
		}
		return c
	}
	if onSuccess != nil {
		v, _ := c.res.Get()
		onSuccess(c.ctx, v)
	}
	return c
}

// Or returns c when it succeeded, the alternative otherwise.
func (c Chain[T]) Or(alternative Chain[T]) Chain[T] {
	if c.res.IsOk() {
		return c
	}
	return alternative
}

// And returns the required chain when c succeeded, c's failure otherwise.
func (c Chain[T]) And(required Chain[T]) Chain[T] {
	if c.res.IsErr() {
		return c
	}
	return required
}

// Finally collapses the chain into a final value of the same type.
func (c Chain[T]) Finally(onSuccess func(context.Context, T) T, onFailure func(context.Context, error) T) T {
	return Finally(c, onSuccess, onFailure)
}

// Then moves the chain to a new payload type; failures pass through re-typed.
func Then[T, U any](c Chain[T], onSuccess func(ctx context.Context, t T) outcome.Result[U, error]) Chain[U] {
	return Chain[U]{ctx: c.ctx, res: outcome.AndThen(c.res, func(t T) outcome.Result[U, error] {
		return onSuccess(c.ctx, t)
	})}
}

// ThenTry moves the chain to a new payload type via a (value, error) call.
func ThenTry[T, U any](c Chain[T], try func(ctx context.Context, t T) (U, error)) Chain[U] {
	return Chain[U]{ctx: c.ctx, res: outcome.AndThen(c.res, func(t T) outcome.Result[U, error] {
		return outcome.FromTuple(try(c.ctx, t))
	})}
}

// Map moves the chain to a new payload type via a pure transformation.
func Map[T, U any](c Chain[T], onSuccess func(ctx context.Context, t T) U) Chain[U] {
	return Chain[U]{ctx: c.ctx, res: outcome.Map(c.res, func(t T) U {
		return onSuccess(c.ctx, t)
	})}
}

// Finally collapses the chain into a final value via per-case handlers.
func Finally[T, U any](c Chain[T],
	onSuccess func(ctx context.Context, t T) U,
	onFailure func(ctx context.Context, err error) U) U {

	return outcome.MapOrElse(c.res,
		func(err error) U { return onFailure(c.ctx, err) },
		func(t T) U { return onSuccess(c.ctx, t) })
}
