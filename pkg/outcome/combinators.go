package outcome

// Type-changing combinators live at package level: Go methods cannot
// introduce type parameters of their own.

// Map transforms the success value; failures pass through re-typed.
func Map[T, E, U any](r Result[T, E], fn func(T) U) Result[U, E] {
	if r.ok {
		return Ok[U, E](fn(r.value))
	}
	return Err[U, E](r.err)
}

// MapOr returns fn(value) on success, fallback on failure.
func MapOr[T, E, U any](r Result[T, E], fallback U, fn func(T) U) U {
	if r.ok {
		return fn(r.value)
	}
	return fallback
}

// MapOrElse returns fn(value) on success, onErr(err) on failure.
func MapOrElse[T, E, U any](r Result[T, E], onErr func(E) U, fn func(T) U) U {
	if r.ok {
		return fn(r.value)
	}
	return onErr(r.err)
}

// MapErr transforms the error; successes pass through unchanged.
func MapErr[T, E, F any](r Result[T, E], fn func(E) F) Result[T, F] {
	if r.ok {
		if !r.hasValue {
			return Empty[T, F]()
		}
		return Ok[T, F](r.value)
	}
	return Err[T, F](fn(r.err))
}

// AndThen chains fn over the success value; failures short-circuit.
func AndThen[T, E, U any](r Result[T, E], fn func(T) Result[U, E]) Result[U, E] {
	if r.ok {
		return fn(r.value)
	}
	return Err[U, E](r.err)
}

// OrElse chains fn over the error; successes short-circuit.
func OrElse[T, E, F any](r Result[T, E], fn func(E) Result[T, F]) Result[T, F] {
	if !r.ok {
		return fn(r.err)
	}
	if !r.hasValue {
		return Empty[T, F]()
	}
	return Ok[T, F](r.value)
}
