package async

import (
	"github.com/ib-77/outcome/pkg/outcome"
)

// The settled-side combinators derive from the generalized continuation:
// each reuses the synchronous combinator of the same name, so
// short-circuiting matches the Result contract exactly, and each handler
// return value goes through resolve.

// Map transforms the eventual success value; failures and faults pass
// through.
func Map[T, E, U any](a AsyncResult[T, E], fn func(T) U) AsyncResult[U, E] {
	return derive[U, E](a, func(r outcome.Result[T, E]) any {
		return outcome.Map(r, fn)
	}, nil)
}

// MapErr transforms the eventual typed error; successes and faults pass
// through.
func MapErr[T, E, F any](a AsyncResult[T, E], fn func(E) F) AsyncResult[T, F] {
	return derive[T, F](a, func(r outcome.Result[T, E]) any {
		return outcome.MapErr(r, fn)
	}, nil)
}

// MapOrElse maps both settled cases to a success value.
func MapOrElse[T, E, U any](a AsyncResult[T, E], onErr func(E) U, fn func(T) U) AsyncResult[U, E] {
	return derive[U, E](a, func(r outcome.Result[T, E]) any {
		return outcome.MapOrElse(r, onErr, fn)
	}, nil)
}

// Switch chains fn over the eventual success value, moving the chain to a
// new success type; failures short-circuit. The return value is resolved
// in full: a plain value settles success, a Result routes by variant, a
// future splices. Instantiate the target type explicitly:
//
//	async.Switch[string](a, func(v int) any { ... })
func Switch[U, T, E any](a AsyncResult[T, E], fn func(T) any) AsyncResult[U, E] {
	return derive[U, E](a, func(r outcome.Result[T, E]) any {
		if r.IsErr() {
			return r
		}
		v, _ := r.Get()
		return fn(v)
	}, nil)
}

// AndThen is Switch without a type change.
func AndThen[T, E any](a AsyncResult[T, E], fn func(T) any) AsyncResult[T, E] {
	return Switch[T](a, fn)
}

// FlatMap chains a continuation that itself returns a future of the same
// error type; the derived future splices its completion.
func FlatMap[T, E, U any](a AsyncResult[T, E], fn func(T) AsyncResult[U, E]) AsyncResult[U, E] {
	return Switch[U](a, func(v T) any { return fn(v) })
}

// OrElse recovers from the eventual typed error; successes short-circuit.
// The return value is resolved in full.
func OrElse[T, E any](a AsyncResult[T, E], fn func(E) any) AsyncResult[T, E] {
	return derive[T, E](a, func(r outcome.Result[T, E]) any {
		if r.IsOk() {
			return r
		}
		e, _ := r.GetErr()
		return fn(e)
	}, nil)
}
