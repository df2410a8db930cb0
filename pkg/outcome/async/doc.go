// Package async bridges Result values with a future primitive.
//
// An AsyncResult[T, E] completes exactly once, in one of two channels:
// settled, carrying an outcome.Result[T, E] of either case, or faulted,
// carrying an arbitrary out-of-band reason reserved for programming errors,
// panicking continuations, and foreign rejections inside a chain.
// Continuations never run inside the call that registers them; each future
// dispatches its callbacks in registration order.
//
// Key operations:
// - New: construct from an executor exposing succeed/fail/fault
// - Ok/Empty/Err/FromResult: settle immediately
// - From/FromFunc/Go: adapt foreign futures and plain (T, error) calls,
//   reifying their abnormal completion as a typed failure
// - Then/Catch: the generalized continuation pair over both channels
// - Map/MapErr/MapOrElse/AndThen/Switch/FlatMap/OrElse: settled-side
//   combinators, short-circuiting like their synchronous counterparts
// - All/Race/Any: whole-collection combinators
// - Await: block for the outcome, surfacing a fault as *FaultError
//
// A faulted future dropped without any observer is reported through a
// replaceable package-level hook, like a host runtime's unhandled
// rejection event.
package async
