// Package chain provides a fluent, context-carrying wrapper around
// Result[T, error] for building synchronous railway pipelines.
//
// A Chain holds a context alongside the running Result, so every step
// receives ctx without threading it by hand. Failures short-circuit:
// once a step fails, later steps are skipped and the failure rides
// unchanged to the end of the chain.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result or a plain value
// - Then: compose a step that returns a Result
// - ThenTry: compose a (value, error) call, lifting the error to a failure
// - Map: transform the success value
// - Ensure: run side effects without changing the result
// - Or/And: choose between finished chains
// - Finally: collapse the chain into a final value via handlers
//
// Same-type steps are methods; steps that move the payload type are
// package-level functions of the same names.
package chain
