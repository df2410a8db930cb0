package async

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/outcome/pkg/outcome"
)

// AsyncResult is a handle on a future that either settles with an
// outcome.Result[T, E] or faults out-of-band. Copies share the same
// underlying future.
type AsyncResult[T, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	cell      *cell[T, E]
}

func newHandle[T, E any]() AsyncResult[T, E] {
	id := uuid.New()
	return AsyncResult[T, E]{
		id:        id,
		createdAt: time.Now().UTC(),
		cell:      newCell[T, E](id),
	}
}

// New constructs a future from an executor. The executor runs synchronously
// on the calling goroutine and settles through exactly one of the three
// capabilities; later calls are no-ops. A panic inside the executor faults
// the future.
func New[T, E any](exec func(succeed func(T), fail func(E), fault func(any))) AsyncResult[T, E] {
	a := newHandle[T, E]()

	func() {
		defer func() {
			if rec := recover(); rec != nil {
				a.cell.fault(rec)
			}
		}()
		exec(
			func(v T) { a.cell.settleResult(outcome.Ok[T, E](v)) },
			func(e E) { a.cell.settleResult(outcome.Err[T](e)) },
			func(reason any) { a.cell.fault(reason) },
		)
	}()

	return a
}

// Ok settles success immediately.
func Ok[T, E any](value T) AsyncResult[T, E] {
	return FromResult(outcome.Ok[T, E](value))
}

// Empty settles a success without a payload immediately.
func Empty[T, E any]() AsyncResult[T, E] {
	return FromResult(outcome.Empty[T, E]())
}

// Err settles failure immediately.
func Err[T, E any](err E) AsyncResult[T, E] {
	return FromResult(outcome.Err[T](err))
}

// FromResult lifts an already-computed Result.
func FromResult[T, E any](r outcome.Result[T, E]) AsyncResult[T, E] {
	a := newHandle[T, E]()
	a.cell.settleResult(r)
	return a
}

func (a AsyncResult[T, E]) ID() uuid.UUID {
	return a.id
}

func (a AsyncResult[T, E]) CreatedAt() time.Time {
	return a.createdAt
}

func (a AsyncResult[T, E]) State() State {
	return a.cell.state()
}

// Done is closed once the future completes in either channel.
func (a AsyncResult[T, E]) Done() <-chan struct{} {
	return a.cell.done
}

// Await blocks until the future completes or ctx expires. A settled future
// returns its Result; a faulted one returns a *FaultError; ctx expiry
// returns ctx.Err().
func (a AsyncResult[T, E]) Await(ctx context.Context) (outcome.Result[T, E], error) {
	a.cell.report.observe()

	select {
	case <-a.cell.done:
	case <-ctx.Done():
		var zero outcome.Result[T, E]
		return zero, ctx.Err()
	}

	s := a.cell.snapshot()
	if s.faulted {
		var zero outcome.Result[T, E]
		return zero, &FaultError{Reason: s.reason}
	}
	return s.result, nil
}

// FaultError carries an out-of-band fault reason across an error seam.
type FaultError struct {
	Reason any
}

func (e *FaultError) Error() string {
	return fmt.Sprintf("async fault: %v", e.Reason)
}
