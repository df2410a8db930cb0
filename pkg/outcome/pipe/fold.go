package pipe

import (
	"context"

	"github.com/ib-77/outcome/pkg/outcome"
)

// Handlers collapse each pipeline result into a final value.
type Handlers[In, Out any] struct {
	OnSuccess func(ctx context.Context, in In) Out
	OnError   func(ctx context.Context, err error) Out
}

// Fold collapses a channel of results into a channel of final values. When
// the context ends with draining enabled, the remaining inputs are still
// folded and sent before the output closes.
func Fold[In, Out any](ctx context.Context, in <-chan outcome.Result[In, error],
	handlers Handlers[In, Out]) <-chan Out {

	out := make(chan Out)

	go func() {
		defer close(out)

		for {
			select {
			case <-ctx.Done():
				foldRemaining(ctx, in, out, handlers)
				return
			case r, ok := <-in:
				if !ok {
					return
				}

				v := fold(ctx, r, handlers)

				select {
				case out <- v:
				case <-ctx.Done():
					if DrainEnabled(ctx, true) {
						out <- v
					}
					foldRemaining(ctx, in, out, handlers)
					return
				}
			}
		}
	}()

	return out
}

func fold[In, Out any](ctx context.Context, r outcome.Result[In, error], h Handlers[In, Out]) Out {
	return outcome.MapOrElse(r,
		func(err error) Out { return h.OnError(ctx, err) },
		func(t In) Out { return h.OnSuccess(ctx, t) })
}

func foldRemaining[In, Out any](ctx context.Context, in <-chan outcome.Result[In, error],
	out chan<- Out, h Handlers[In, Out]) {

	if !DrainEnabled(ctx, true) {
		return
	}
	for r := range in {
		out <- fold(ctx, r, h)
	}
}
