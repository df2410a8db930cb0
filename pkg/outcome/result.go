package outcome

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Result[T, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       E
	ok        bool
	hasValue  bool
}

func Ok[T, E any](value T) Result[T, E] {
	return Result[T, E]{
		value:     value,
		ok:        true,
		hasValue:  true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Empty is the niladic success: ok, but with no payload.
func Empty[T, E any]() Result[T, E] {
	return Result[T, E]{
		ok:        true,
		hasValue:  false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Err[T, E any](err E) Result[T, E] {
	return Result[T, E]{
		err:       err,
		ok:        false,
		hasValue:  false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// From runs fn and captures its outcome: a normal return becomes Ok, a
// panic is recovered and reified as Err carrying the raised value. This is
// the one place a synchronous fault turns into a typed failure.
func From[T any](fn func() T) (res Result[T, any]) {
	defer func() {
		if rec := recover(); rec != nil {
			res = Err[T, any](rec)
		}
	}()
	return Ok[T, any](fn())
}

// FromTuple lifts a conventional (value, error) pair.
func FromTuple[T any](value T, err error) Result[T, error] {
	if err != nil {
		return Err[T, error](err)
	}
	return Ok[T, error](value)
}

// Try calls fn and lifts its (value, error) return.
func Try[T any](fn func() (T, error)) Result[T, error] {
	return FromTuple(fn())
}

func (r Result[T, E]) IsOk() bool {
	return r.ok
}

func (r Result[T, E]) IsErr() bool {
	return !r.ok
}

// IsOkAnd reports success whose value also satisfies pred.
func (r Result[T, E]) IsOkAnd(pred func(T) bool) bool {
	return r.ok && pred(r.value)
}

// IsErrAnd reports failure whose error also satisfies pred.
func (r Result[T, E]) IsErrAnd(pred func(E) bool) bool {
	return !r.ok && pred(r.err)
}

// HasValue reports whether a success carries a payload; Empty does not.
func (r Result[T, E]) HasValue() bool {
	return r.hasValue
}

// Get returns the success payload and whether one is present.
func (r Result[T, E]) Get() (T, bool) {
	return r.value, r.ok && r.hasValue
}

// GetErr returns the error and whether the Result is a failure.
func (r Result[T, E]) GetErr() (E, bool) {
	return r.err, !r.ok
}

func (r Result[T, E]) ID() uuid.UUID {
	return r.id
}

func (r Result[T, E]) CreatedAt() time.Time {
	return r.createdAt
}

// Payload returns the active case's payload untyped: the success value,
// the error, or nil for Empty.
func (r Result[T, E]) Payload() any {
	if !r.ok {
		return r.err
	}
	if !r.hasValue {
		return nil
	}
	return r.value
}

// Clone returns a Result with the same case and payload but a fresh
// identity.
func (r Result[T, E]) Clone() Result[T, E] {
	return Result[T, E]{
		value:     r.value,
		err:       r.err,
		ok:        r.ok,
		hasValue:  r.hasValue,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func (r Result[T, E]) String() string {
	switch {
	case r.ok && r.hasValue:
		return fmt.Sprintf("ok(%v)", r.value)
	case r.ok:
		return "ok()"
	default:
		return fmt.Sprintf("err(%v)", r.err)
	}
}

func (r Result[T, E]) isResult() {}
