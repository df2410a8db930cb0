package async

import (
	"sync"

	"github.com/ib-77/outcome/pkg/outcome"
)

// All settles with every success value in input order. The first failure
// settles failure, the first fault faults; either way the rest is ignored.
// No items settles an empty slice.
func All[T, E any](items ...AsyncResult[T, E]) AsyncResult[[]T, E] {
	d := newHandle[[]T, E]()

	if len(items) == 0 {
		d.cell.settleResult(outcome.Ok[[]T, E]([]T{}))
		return d
	}

	var (
		mu     sync.Mutex
		values = make([]T, len(items))
		remain = len(items)
	)

	for i, item := range items {
		item.cell.subscribe(func(s settlement[T, E]) {
			switch {
			case s.faulted:
				d.cell.fault(s.reason)
			case s.result.IsErr():
				e, _ := s.result.GetErr()
				d.cell.settleResult(outcome.Err[[]T](e))
			default:
				v, _ := s.result.Get()
				mu.Lock()
				values[i] = v
				remain--
				finished := remain == 0
				mu.Unlock()
				if finished {
					d.cell.settleResult(outcome.Ok[[]T, E](values))
				}
			}
		})
	}

	return d
}

// Race completes with the first completion of any kind, settled or
// faulted. No items settles Empty.
func Race[T, E any](items ...AsyncResult[T, E]) AsyncResult[T, E] {
	d := newHandle[T, E]()

	if len(items) == 0 {
		d.cell.settleResult(outcome.Empty[T, E]())
		return d
	}

	for _, item := range items {
		item.cell.subscribe(func(s settlement[T, E]) {
			d.cell.forward(s)
		})
	}

	return d
}

// Any settles with the first success; when nothing succeeds, the last
// completion wins, mirroring the synchronous Or fold. No items settles
// Empty.
func Any[T, E any](items ...AsyncResult[T, E]) AsyncResult[T, E] {
	d := newHandle[T, E]()

	if len(items) == 0 {
		d.cell.settleResult(outcome.Empty[T, E]())
		return d
	}

	var (
		mu     sync.Mutex
		remain = len(items)
	)

	for _, item := range items {
		item.cell.subscribe(func(s settlement[T, E]) {
			if !s.faulted && s.result.IsOk() {
				d.cell.settleResult(s.result)
				return
			}
			mu.Lock()
			remain--
			last := remain == 0
			mu.Unlock()
			if last {
				d.cell.forward(s)
			}
		})
	}

	return d
}
