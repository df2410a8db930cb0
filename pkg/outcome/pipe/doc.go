// Package pipe runs Result values through concurrent channel pipelines.
//
// A pipeline starts from Source or Emit, flows through stages built with
// Validate, Map, Try, Switch, and Tee, runs them concurrently with Run or
// Through, and ends in Fold, Collect, or First. Stages are plain functions
// over Result values; the package handles the channel plumbing and worker
// fan-out.
//
// Cancellation follows the pipeline context: when it ends, workers stop
// pulling new inputs and, when draining is enabled (the default), flush
// everything still in flight as failures carrying ErrCancelled. With
// draining on, consumers must read the output until it closes. Worker
// count and drain behavior travel on the context via WithWorkers and
// WithDrain.
package pipe
