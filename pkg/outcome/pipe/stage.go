package pipe

import (
	"context"
	"errors"

	"github.com/ib-77/outcome/pkg/outcome"
)

// Stage transforms one pipeline item. Failures pass through untouched, so
// stages compose without caring where an error entered the line.
type Stage[In, Out any] func(ctx context.Context, input outcome.Result[In, error]) outcome.Result[Out, error]

// Validate keeps successes that pass the check and fails the rest with the
// returned message.
func Validate[T any](validate func(ctx context.Context, in T) (valid bool, errMsg string)) Stage[T, T] {
	return func(ctx context.Context, input outcome.Result[T, error]) outcome.Result[T, error] {
		return outcome.AndThen(input, func(v T) outcome.Result[T, error] {
			if valid, errMsg := validate(ctx, v); !valid {
				return outcome.Err[T, error](errors.New(errMsg))
			}
			return input
		})
	}
}

// Map lifts a pure transformation into a stage.
func Map[In, Out any](fn func(ctx context.Context, in In) Out) Stage[In, Out] {
	return func(ctx context.Context, input outcome.Result[In, error]) outcome.Result[Out, error] {
		return outcome.Map(input, func(v In) Out {
			return fn(ctx, v)
		})
	}
}

// Try lifts a (value, error) call into a stage; a non-nil error becomes the
// item's failure.
func Try[In, Out any](fn func(ctx context.Context, in In) (Out, error)) Stage[In, Out] {
	return func(ctx context.Context, input outcome.Result[In, error]) outcome.Result[Out, error] {
		return outcome.AndThen(input, func(v In) outcome.Result[Out, error] {
			return outcome.FromTuple(fn(ctx, v))
		})
	}
}

// Switch lifts a Result-returning step into a stage.
func Switch[In, Out any](fn func(ctx context.Context, in In) outcome.Result[Out, error]) Stage[In, Out] {
	return func(ctx context.Context, input outcome.Result[In, error]) outcome.Result[Out, error] {
		return outcome.AndThen(input, func(v In) outcome.Result[Out, error] {
			return fn(ctx, v)
		})
	}
}

// Tee runs a side effect on successes and passes the item through.
func Tee[T any](sideEffect func(ctx context.Context, r outcome.Result[T, error])) Stage[T, T] {
	return func(ctx context.Context, input outcome.Result[T, error]) outcome.Result[T, error] {
		if input.IsOk() {
			sideEffect(ctx, input)
		}
		return input
	}
}
