// Package outcome provides an explicit success/failure container used in
// place of panics for recoverable errors.
//
// A Result[T, E] holds either a success value of type T or a typed error of
// type E, fixed at construction. Combinators transform and chain Results
// without branching at every step; extraction helpers either return the
// payload or fail fast.
//
// Key operations:
// - Ok/Empty/Err: construct the two cases (Empty is a success without payload)
// - From/FromTuple/Try: lift plain calls and (T, error) returns into Results
// - Map/MapErr/AndThen/OrElse: transform and chain, short-circuiting per case
// - Unwrap/Expect/UnwrapOr: extract the payload or fail fast
// - And/Or/Flatten: fold ordered sequences of Results
// - Iter/Items: walk a success payload as a lazy sequence
package outcome
