package pipe

import (
	"context"
	"sync"

	"github.com/ib-77/outcome/pkg/outcome"
)

// Run processes a channel of results through a same-type stage with the
// given number of workers.
func Run[T any](ctx context.Context, in <-chan outcome.Result[T, error],
	stage Stage[T, T], workers int) <-chan outcome.Result[T, error] {

	return Through(ctx, in, stage, workers)
}

// Through processes a channel of results through a type-moving stage with
// the given number of workers. Output order follows completion, not input.
func Through[In, Out any](ctx context.Context, in <-chan outcome.Result[In, error],
	stage Stage[In, Out], workers int) <-chan outcome.Result[Out, error] {

	if workers < 1 {
		workers = 1
	}

	out := make(chan outcome.Result[Out, error])
	wg := &sync.WaitGroup{}

	for range workers {
		wg.Add(1)
		go locomotive(ctx, in, out, stage, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

// locomotive drives one worker line: receive, run the stage, send.
// Cancellation is checked at every blocking point; what happens to items
// still in flight is decided by the context's drain option.
func locomotive[In, Out any](ctx context.Context, in <-chan outcome.Result[In, error],
	out chan<- outcome.Result[Out, error], stage Stage[In, Out], wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			drainRemaining(ctx, in, out)
			return
		case r, ok := <-in:
			if !ok {
				return
			}

			if ctx.Err() != nil {
				drainOne(ctx, r, out)
				drainRemaining(ctx, in, out)
				return
			}

			pr := stage(ctx, r)

			select {
			case <-ctx.Done():
				deliverLate(ctx, pr, out)
				drainRemaining(ctx, in, out)
				return
			case out <- pr:
			}
		}
	}
}
