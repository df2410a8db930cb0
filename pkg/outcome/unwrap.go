package outcome

import "fmt"

// Inspect runs fn on the success value as a side effect; failures ignore it.
func (r Result[T, E]) Inspect(fn func(T)) Result[T, E] {
	if r.ok {
		fn(r.value)
	}
	return r
}

// InspectErr runs fn on the error as a side effect; successes ignore it.
func (r Result[T, E]) InspectErr(fn func(E)) Result[T, E] {
	if !r.ok {
		fn(r.err)
	}
	return r
}

// Expect returns the success value; on failure it panics with msg prefixed
// to the error.
func (r Result[T, E]) Expect(msg string) T {
	if !r.ok {
		panic(fmt.Errorf("%s: %v", msg, r.err))
	}
	return r.value
}

// ExpectWith returns the success value; on failure it panics with fn(err).
func (r Result[T, E]) ExpectWith(fn func(E) any) T {
	if !r.ok {
		panic(fn(r.err))
	}
	return r.value
}

// Unwrap returns the success value; on failure it panics with the error.
func (r Result[T, E]) Unwrap() T {
	if !r.ok {
		panic(r.err)
	}
	return r.value
}

func (r Result[T, E]) UnwrapOr(fallback T) T {
	if r.ok {
		return r.value
	}
	return fallback
}

func (r Result[T, E]) UnwrapOrElse(fn func(E) T) T {
	if r.ok {
		return r.value
	}
	return fn(r.err)
}

// UnwrapErr returns the error; on success it panics with the value.
func (r Result[T, E]) UnwrapErr() E {
	if r.ok {
		panic(r.value)
	}
	return r.err
}

// UnwrapErrWith returns the error; on success it panics with fn(value).
func (r Result[T, E]) UnwrapErrWith(fn func(T) any) E {
	if r.ok {
		panic(fn(r.value))
	}
	return r.err
}

// And returns other if r is a success, else r.
func (r Result[T, E]) And(other Result[T, E]) Result[T, E] {
	if r.ok {
		return other
	}
	return r
}

// Or returns r if it is a success, else other.
func (r Result[T, E]) Or(other Result[T, E]) Result[T, E] {
	if r.ok {
		return r
	}
	return other
}
