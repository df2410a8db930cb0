package pipe

import (
	"context"

	"github.com/ib-77/outcome/pkg/outcome"
)

// Source lifts plain values into a channel of successes. The channel
// closes after the last value or when ctx ends.
func Source[T any](ctx context.Context, values ...T) <-chan outcome.Result[T, error] {
	out := make(chan outcome.Result[T, error])

	go func() {
		defer close(out)

		for _, v := range values {
			select {
			case out <- outcome.Ok[T, error](v):
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

// Emit feeds pre-built results into a channel, for pipelines that start
// from mixed successes and failures.
func Emit[T any](ctx context.Context, results ...outcome.Result[T, error]) <-chan outcome.Result[T, error] {
	out := make(chan outcome.Result[T, error])

	go func() {
		defer close(out)

		for _, r := range results {
			select {
			case out <- r:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

// Collect gathers channel values until ch closes or ctx ends.
func Collect[T any](ctx context.Context, ch <-chan T) []T {
	res := make([]T, 0)

	for {
		select {
		case v, ok := <-ch:
			if !ok {
				return res
			}
			res = append(res, v)
		case <-ctx.Done():
			return res
		}
	}
}

// First returns the first channel value, or fallback when the channel
// closes empty or ctx ends before a value arrives.
func First[T any](ctx context.Context, ch <-chan T, fallback T) T {
	select {
	case v, ok := <-ch:
		if !ok {
			return fallback
		}
		return v
	case <-ctx.Done():
		return fallback
	}
}
