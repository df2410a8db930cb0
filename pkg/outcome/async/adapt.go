package async

import (
	"context"
	"errors"

	"github.com/ib-77/outcome/pkg/outcome"
)

// Thenable is the narrow capability a foreign future must expose:
// registration of a fulfillment and a rejection continuation, of which at
// most one is invoked, at most once.
type Thenable interface {
	Then(fulfilled func(value any), rejected func(reason any))
}

// From adapts a foreign future: fulfillment settles success, rejection
// settles failure. The adapter boundary reinterprets a foreign rejection
// as a typed error; a thenable returned from inside a continuation faults
// instead (see resolve).
func From[T, E any](th Thenable) AsyncResult[T, E] {
	a := newHandle[T, E]()
	if outcome.IsNil(th) {
		a.cell.fault(errors.New("async: nil thenable"))
		return a
	}
	adoptThenable(a.cell, th)
	return a
}

// FromFunc calls fn and adapts the future it returns. A synchronous panic
// inside fn is abnormal completion at the adapter boundary and settles
// failure, like a rejection.
func FromFunc[T, E any](fn func() Thenable) AsyncResult[T, E] {
	a := newHandle[T, E]()

	lifted := outcome.From(fn)
	th, ok := lifted.Get()
	if !ok {
		a.cell.settleFailure(lifted.Payload())
		return a
	}
	if outcome.IsNil(th) {
		a.cell.fault(errors.New("async: nil thenable"))
		return a
	}
	adoptThenable(a.cell, th)
	return a
}

func adoptThenable[T, E any](c *cell[T, E], th Thenable) {
	th.Then(
		func(value any) { c.settleValue(value) },
		func(reason any) { c.settleFailure(reason) },
	)
}

// Go runs fn on its own goroutine and settles with its (T, error) outcome.
// A panic inside fn settles failure through outcome.AsError; like From,
// this adapter reifies abnormal completion as a typed error.
func Go[T any](fn func() (T, error)) AsyncResult[T, error] {
	a := newHandle[T, error]()

	go func() {
		defer func() {
			if rec := recover(); rec != nil {
				a.cell.settleResult(outcome.Err[T](outcome.AsError(rec)))
			}
		}()

		v, err := fn()
		if err != nil {
			a.cell.settleResult(outcome.Err[T](err))
			return
		}
		a.cell.settleResult(outcome.Ok[T, error](v))
	}()

	return a
}

// GoContext is Go with the caller's context threaded through to fn.
func GoContext[T any](ctx context.Context, fn func(context.Context) (T, error)) AsyncResult[T, error] {
	return Go(func() (T, error) { return fn(ctx) })
}
