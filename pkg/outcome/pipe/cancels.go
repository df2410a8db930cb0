package pipe

import (
	"context"
	"errors"

	"github.com/ib-77/outcome/pkg/outcome"
)

// ErrCancelled marks results drained after the pipeline context ended.
var ErrCancelled = errors.New("pipeline cancelled")

// IsCancellation reports whether err carries the cancellation mark.
func IsCancellation(err error) bool {
	return errors.Is(err, ErrCancelled)
}

func cancelled(ctx context.Context) error {
	return errors.Join(ErrCancelled, ctx.Err())
}

// drained converts an unprocessed input into its cancelled form: existing
// failures keep their error, successes become ErrCancelled failures.
func drained[In, Out any](ctx context.Context, r outcome.Result[In, error]) outcome.Result[Out, error] {
	if err, failed := r.GetErr(); failed {
		return outcome.Err[Out, error](err)
	}
	return outcome.Err[Out, error](cancelled(ctx))
}

func drainOne[In, Out any](ctx context.Context, r outcome.Result[In, error],
	out chan<- outcome.Result[Out, error]) {

	if !DrainEnabled(ctx, true) {
		return
	}
	out <- drained[In, Out](ctx, r)
}

func drainRemaining[In, Out any](ctx context.Context, in <-chan outcome.Result[In, error],
	out chan<- outcome.Result[Out, error]) {

	if !DrainEnabled(ctx, true) {
		return
	}
	for r := range in {
		out <- drained[In, Out](ctx, r)
	}
}

// deliverLate sends a result whose stage had already run when the context
// ended; it rides out as-is, not as a cancellation.
func deliverLate[Out any](ctx context.Context, pr outcome.Result[Out, error],
	out chan<- outcome.Result[Out, error]) {

	if !DrainEnabled(ctx, true) {
		return
	}
	out <- pr
}
