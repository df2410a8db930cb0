package async

import (
	"fmt"
	"sync"

	"github.com/eapache/queue"
	"github.com/google/uuid"

	"github.com/ib-77/outcome/pkg/outcome"
)

// State of an AsyncResult's completion.
type State int

const (
	Pending State = iota
	Settled
	Faulted
)

func (s State) String() string {
	switch s {
	case Settled:
		return "settled"
	case Faulted:
		return "faulted"
	default:
		return "pending"
	}
}

// settlement is a completed outcome: a Result in the settled channel, or a
// reason in the faulted one.
type settlement[T, E any] struct {
	result  outcome.Result[T, E]
	reason  any
	faulted bool
}

// cell is the shared completion state behind an AsyncResult. It settles at
// most once; subscribed callbacks run on a drain goroutine in registration
// order, never inside the registering call.
type cell[T, E any] struct {
	mu       sync.Mutex
	done     chan struct{}
	pending  *queue.Queue // of func(settlement[T, E])
	sett     settlement[T, E]
	settled  bool
	draining bool
	report   *faultRecord
}

func newCell[T, E any](id uuid.UUID) *cell[T, E] {
	c := &cell[T, E]{
		done:    make(chan struct{}),
		pending: queue.New(),
		report:  newFaultRecord(id),
	}
	watchUnhandled(c)
	return c
}

func (c *cell[T, E]) settleResult(r outcome.Result[T, E]) {
	c.settle(settlement[T, E]{result: r})
}

func (c *cell[T, E]) fault(reason any) {
	c.settle(settlement[T, E]{reason: reason, faulted: true})
}

// forward re-settles another future's completion as-is.
func (c *cell[T, E]) forward(s settlement[T, E]) {
	c.settle(s)
}

func (c *cell[T, E]) settle(s settlement[T, E]) {
	c.mu.Lock()
	if c.settled {
		c.mu.Unlock()
		return
	}
	c.sett = s
	c.settled = true
	close(c.done)
	c.mu.Unlock()

	if s.faulted {
		c.report.record(s.reason)
	}

	c.pump()
}

// subscribe queues fn for dispatch once the cell settles. Registration
// alone counts as observing the future: propagation moves unhandled-fault
// responsibility to the derived futures.
func (c *cell[T, E]) subscribe(fn func(settlement[T, E])) {
	c.report.observe()

	c.mu.Lock()
	c.pending.Add(fn)
	ready := c.settled
	c.mu.Unlock()

	if ready {
		c.pump()
	}
}

// pump starts the single drainer when there is work; callbacks stay FIFO
// because at most one drainer runs at a time.
func (c *cell[T, E]) pump() {
	c.mu.Lock()
	if c.draining || !c.settled || c.pending.Length() == 0 {
		c.mu.Unlock()
		return
	}
	c.draining = true
	c.mu.Unlock()

	go c.drain()
}

func (c *cell[T, E]) drain() {
	for {
		c.mu.Lock()
		if c.pending.Length() == 0 {
			c.draining = false
			c.mu.Unlock()
			return
		}
		fn := c.pending.Remove().(func(settlement[T, E]))
		s := c.sett
		c.mu.Unlock()

		fn(s)
	}
}

func (c *cell[T, E]) snapshot() settlement[T, E] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sett
}

func (c *cell[T, E]) state() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.settled {
		return Pending
	}
	if c.sett.faulted {
		return Faulted
	}
	return Settled
}

// settleValue types an untyped success payload: nil settles Empty, a T
// settles Ok, anything else is a programming error and faults.
func (c *cell[T, E]) settleValue(v any) {
	if outcome.IsNil(v) {
		c.settleResult(outcome.Empty[T, E]())
		return
	}
	t, ok := v.(T)
	if !ok {
		c.fault(fmt.Errorf("async: cannot settle success of type %T as %T", v, *new(T)))
		return
	}
	c.settleResult(outcome.Ok[T, E](t))
}

// settleFailure types an untyped failure reason as E, coercing through
// error where that helps; an untypeable reason faults.
func (c *cell[T, E]) settleFailure(reason any) {
	if outcome.IsNil(reason) {
		var zero E
		c.settleResult(outcome.Err[T](zero))
		return
	}
	if e, ok := reason.(E); ok {
		c.settleResult(outcome.Err[T](e))
		return
	}
	if e, ok := any(outcome.AsError(reason)).(E); ok {
		c.settleResult(outcome.Err[T](e))
		return
	}
	c.fault(reason)
}

// settleAnyResult routes a type-erased Result by variant.
func (c *cell[T, E]) settleAnyResult(r outcome.AnyResult) {
	if r.IsOk() {
		if !r.HasValue() {
			c.settleResult(outcome.Empty[T, E]())
			return
		}
		c.settleValue(r.Payload())
		return
	}
	c.settleFailure(r.Payload())
}
