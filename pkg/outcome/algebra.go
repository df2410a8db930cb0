package outcome

// Is reports whether v is a genuine Result of any type arguments. Foreign
// types that merely look like one do not count.
func Is(v any) bool {
	_, ok := v.(AnyResult)
	return ok
}

func IsOk[T, E any](r Result[T, E]) bool {
	return r.ok
}

func IsErr[T, E any](r Result[T, E]) bool {
	return !r.ok
}

// And folds an ordered sequence: the first failure wins, otherwise the
// last element. No arguments yields Empty.
func And[T, E any](results ...Result[T, E]) Result[T, E] {
	if len(results) == 0 {
		return Empty[T, E]()
	}
	for _, r := range results[:len(results)-1] {
		if !r.ok {
			return r
		}
	}
	return results[len(results)-1]
}

// Or folds an ordered sequence: the first success wins, otherwise the
// last element. No arguments yields Empty.
func Or[T, E any](results ...Result[T, E]) Result[T, E] {
	if len(results) == 0 {
		return Empty[T, E]()
	}
	for _, r := range results[:len(results)-1] {
		if r.ok {
			return r
		}
	}
	return results[len(results)-1]
}

// Flatten collapses one level of nesting: a success returns the inner
// Result as-is, a failure returns the outer failure. A success without a
// payload has nothing to unnest and stays Empty.
func Flatten[T, E any](outer Result[Result[T, E], E]) Result[T, E] {
	if outer.ok {
		if !outer.hasValue {
			return Empty[T, E]()
		}
		return outer.value
	}
	return Err[T, E](outer.err)
}
