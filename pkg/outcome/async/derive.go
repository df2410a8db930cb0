package async

import (
	"github.com/ib-77/outcome/pkg/outcome"
)

// derive builds a future of [U, F] completed from a's outcome through a
// handler pair. A nil onSettled passes the settled Result through by
// variant; a nil onFault propagates the fault unchanged. A non-nil
// handler's return value goes through resolve; a handler panic faults the
// derived future, never its typed-failure channel.
func derive[U, F, T, E any](
	a AsyncResult[T, E],
	onSettled func(outcome.Result[T, E]) any,
	onFault func(reason any) any,
) AsyncResult[U, F] {
	d := newHandle[U, F]()

	a.cell.subscribe(func(s settlement[T, E]) {
		if s.faulted {
			if onFault == nil {
				d.cell.fault(s.reason)
				return
			}
			runHandler(d.cell, func() any { return onFault(s.reason) })
			return
		}

		if onSettled == nil {
			d.cell.settleAnyResult(s.result)
			return
		}
		runHandler(d.cell, func() any { return onSettled(s.result) })
	})

	return d
}

// runHandler guards a continuation: the return value resolves the cell, a
// panic routes the raised value to the fault channel.
func runHandler[U, F any](c *cell[U, F], fn func() any) {
	defer func() {
		if rec := recover(); rec != nil {
			c.fault(rec)
		}
	}()
	resolve(c, fn())
}

// Then is the generalized continuation combinator: onSettled receives the
// settled Result of either case, onFault the out-of-band reason. Either
// handler may be nil.
func (a AsyncResult[T, E]) Then(
	onSettled func(r outcome.Result[T, E]) any,
	onFault func(reason any) any,
) AsyncResult[T, E] {
	return derive[T, E](a, onSettled, onFault)
}

// Catch intercepts only the fault channel; a settled Result passes through
// untouched. The handler's return value is resolved like any continuation
// return.
func (a AsyncResult[T, E]) Catch(onFault func(reason any) any) AsyncResult[T, E] {
	return derive[T, E](a, nil, onFault)
}

// Inspect observes the eventual success value; the outcome passes through.
func (a AsyncResult[T, E]) Inspect(fn func(T)) AsyncResult[T, E] {
	return derive[T, E](a, func(r outcome.Result[T, E]) any {
		return r.Inspect(fn)
	}, nil)
}

// InspectErr observes the eventual typed error; the outcome passes through.
func (a AsyncResult[T, E]) InspectErr(fn func(E)) AsyncResult[T, E] {
	return derive[T, E](a, func(r outcome.Result[T, E]) any {
		return r.InspectErr(fn)
	}, nil)
}

// InspectFault observes the fault reason; the fault still propagates.
func (a AsyncResult[T, E]) InspectFault(fn func(reason any)) AsyncResult[T, E] {
	d := newHandle[T, E]()

	a.cell.subscribe(func(s settlement[T, E]) {
		if !s.faulted {
			d.cell.forward(s)
			return
		}
		defer func() {
			if rec := recover(); rec != nil {
				d.cell.fault(rec)
				return
			}
			d.cell.fault(s.reason)
		}()
		fn(s.reason)
	})

	return d
}

// Ensure runs fn on any completion, settled or faulted, and passes the
// outcome through. A panic inside fn replaces the outcome with a fault.
func (a AsyncResult[T, E]) Ensure(fn func()) AsyncResult[T, E] {
	d := newHandle[T, E]()

	a.cell.subscribe(func(s settlement[T, E]) {
		defer func() {
			if rec := recover(); rec != nil {
				d.cell.fault(rec)
				return
			}
			d.cell.forward(s)
		}()
		fn()
	})

	return d
}
