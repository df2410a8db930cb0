package async

import (
	"github.com/ib-77/outcome/pkg/outcome"
)

// spliceable marks this package's own futures during resolution, checked
// ahead of the generic Thenable capability.
type spliceable interface {
	splice(succeed func(value any), fail func(err any), fault func(reason any))
}

// splice forwards this future's eventual completion, channel by channel,
// into another future's settlement capabilities.
func (a AsyncResult[T, E]) splice(succeed func(value any), fail func(err any), fault func(reason any)) {
	a.cell.subscribe(func(s settlement[T, E]) {
		switch {
		case s.faulted:
			fault(s.reason)
		case s.result.IsErr():
			fail(s.result.Payload())
		case !s.result.HasValue():
			succeed(nil)
		default:
			succeed(s.result.Payload())
		}
	})
}

// resolve normalizes a continuation's return value into c's channels:
//  1. one of our own futures splices settled outcomes into settle-success/
//     settle-failure and faults into fault;
//  2. a generic foreign thenable maps fulfillment to settle-success and
//     rejection to fault: where From reinterprets rejection as a typed
//     failure, an in-chain foreign rejection is an unexpected fault;
//  3. a Result value routes by variant;
//  4. anything else settles as a plain success payload.
func resolve[T, E any](c *cell[T, E], v any) {
	switch x := v.(type) {
	case spliceable:
		x.splice(
			func(value any) { c.settleValue(value) },
			func(err any) { c.settleFailure(err) },
			func(reason any) { c.fault(reason) },
		)
	case Thenable:
		x.Then(
			func(value any) { c.settleValue(value) },
			func(reason any) { c.fault(reason) },
		)
	case outcome.AnyResult:
		c.settleAnyResult(x)
	default:
		c.settleValue(v)
	}
}
