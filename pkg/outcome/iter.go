package outcome

import (
	"iter"
	"reflect"
)

// Iter walks the success payload as a lazy, finite sequence: a slice or
// array payload yields its elements (one level of unnesting), any other
// payload yields itself once. Failures and Empty yield nothing. The
// sequence is restartable; every range starts over from the same Result.
func (r Result[T, E]) Iter() iter.Seq[any] {
	return func(yield func(any) bool) {
		if !r.ok || !r.hasValue {
			return
		}

		v := reflect.ValueOf(r.value)
		switch v.Kind() {
		case reflect.Slice, reflect.Array:
			for i := 0; i < v.Len(); i++ {
				if !yield(v.Index(i).Interface()) {
					return
				}
			}
		default:
			yield(r.value)
		}
	}
}

// Items is the typed form of Iter for slice payloads.
func Items[T, E any](r Result[[]T, E]) iter.Seq[T] {
	return func(yield func(T) bool) {
		items, ok := r.Get()
		if !ok {
			return
		}
		for _, item := range items {
			if !yield(item) {
				return
			}
		}
	}
}
