package outcome

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

// Test Ok constructor and success accessors
func TestOk_Success(t *testing.T) {
	t.Parallel()

	r := Ok[int, string](5)

	if !r.IsOk() {
		t.Error("Expected IsOk to be true")
	}
	if r.IsErr() {
		t.Error("Expected IsErr to be false")
	}
	if !r.HasValue() {
		t.Error("Expected HasValue to be true")
	}

	v, ok := r.Get()
	if !ok || v != 5 {
		t.Errorf("Expected Get to return (5, true), got (%d, %v)", v, ok)
	}

	if _, isErr := r.GetErr(); isErr {
		t.Error("Expected GetErr to report no failure")
	}

	if r.Payload() != 5 {
		t.Errorf("Expected payload 5, got %v", r.Payload())
	}
}

// Test Err constructor and failure accessors
func TestErr_Failure(t *testing.T) {
	t.Parallel()

	r := Err[int]("broken")

	if r.IsOk() {
		t.Error("Expected IsOk to be false")
	}
	if !r.IsErr() {
		t.Error("Expected IsErr to be true")
	}
	if r.HasValue() {
		t.Error("Expected HasValue to be false")
	}

	if _, ok := r.Get(); ok {
		t.Error("Expected Get to report no value")
	}

	e, isErr := r.GetErr()
	if !isErr || e != "broken" {
		t.Errorf("Expected GetErr to return (broken, true), got (%s, %v)", e, isErr)
	}

	if r.Payload() != "broken" {
		t.Errorf("Expected payload 'broken', got %v", r.Payload())
	}
}

// Test Empty: success without a payload
func TestEmpty_VoidSuccess(t *testing.T) {
	t.Parallel()

	r := Empty[int, string]()

	if !r.IsOk() {
		t.Error("Expected Empty to be a success")
	}
	if r.HasValue() {
		t.Error("Expected Empty to carry no payload")
	}
	if _, ok := r.Get(); ok {
		t.Error("Expected Get to report no value")
	}
	if r.Payload() != nil {
		t.Errorf("Expected nil payload, got %v", r.Payload())
	}
}

func TestFrom_NormalReturn(t *testing.T) {
	t.Parallel()

	r := From(func() int { return 5 })

	if !r.IsOk() {
		t.Errorf("Expected success, got %v", r)
	}
	if v, _ := r.Get(); v != 5 {
		t.Errorf("Expected 5, got %v", v)
	}
}

func TestFrom_PanicReified(t *testing.T) {
	t.Parallel()

	r := From(func() int { panic("boom") })

	if !r.IsErr() {
		t.Error("Expected panic to become a failure")
	}
	e, _ := r.GetErr()
	if e != "boom" {
		t.Errorf("Expected raised value 'boom', got %v", e)
	}
}

func TestFrom_PanicWithError(t *testing.T) {
	t.Parallel()

	cause := errors.New("io failed")
	r := From(func() string { panic(cause) })

	e, _ := r.GetErr()
	if e != cause {
		t.Errorf("Expected the raised error itself, got %v", e)
	}
}

func TestFromTuple(t *testing.T) {
	t.Parallel()

	t.Run("nil error", func(t *testing.T) {
		r := FromTuple(42, nil)
		if !r.IsOk() {
			t.Errorf("Expected success, got %v", r)
		}
	})

	t.Run("non-nil error", func(t *testing.T) {
		r := FromTuple(0, errors.New("bad"))
		if !r.IsErr() {
			t.Error("Expected failure")
		}
		if e, _ := r.GetErr(); e.Error() != "bad" {
			t.Errorf("Expected 'bad', got %v", e)
		}
	})
}

func TestTry(t *testing.T) {
	t.Parallel()

	ok := Try(func() (string, error) { return "done", nil })
	if v, _ := ok.Get(); v != "done" {
		t.Errorf("Expected 'done', got %v", v)
	}

	bad := Try(func() (string, error) { return "", errors.New("nope") })
	if !bad.IsErr() {
		t.Error("Expected failure")
	}
}

func TestIsOkAnd(t *testing.T) {
	t.Parallel()

	if !Ok[int, string](4).IsOkAnd(func(v int) bool { return v%2 == 0 }) {
		t.Error("Expected predicate to hold on even success")
	}
	if Ok[int, string](3).IsOkAnd(func(v int) bool { return v%2 == 0 }) {
		t.Error("Expected predicate to fail on odd success")
	}

	called := false
	if Err[int]("e").IsOkAnd(func(v int) bool { called = true; return true }) {
		t.Error("Expected false on failure")
	}
	if called {
		t.Error("Predicate must not run on failure")
	}
}

func TestIsErrAnd(t *testing.T) {
	t.Parallel()

	if !Err[int]("timeout").IsErrAnd(func(e string) bool { return e == "timeout" }) {
		t.Error("Expected predicate to hold on matching failure")
	}

	called := false
	if Ok[int, string](1).IsErrAnd(func(e string) bool { called = true; return true }) {
		t.Error("Expected false on success")
	}
	if called {
		t.Error("Predicate must not run on success")
	}
}

// Test Clone: same case and payload, fresh identity
func TestClone_FreshIdentity(t *testing.T) {
	t.Parallel()

	r := Ok[int, string](7)
	c := r.Clone()

	if !c.IsOk() {
		t.Error("Expected clone to stay a success")
	}
	if v, _ := c.Get(); v != 7 {
		t.Errorf("Expected payload 7, got %d", v)
	}
	if c.ID() == r.ID() {
		t.Error("Expected clone to carry a fresh id")
	}

	f := Err[int]("gone").Clone()
	if e, _ := f.GetErr(); e != "gone" {
		t.Errorf("Expected cloned error 'gone', got %s", e)
	}
}

func TestIdentity_Stamped(t *testing.T) {
	t.Parallel()

	r := Ok[string, error]("x")

	if r.ID() == uuid.Nil {
		t.Error("Expected a non-nil id")
	}
	if r.CreatedAt().IsZero() {
		t.Error("Expected createdAt to be stamped")
	}
	if r.CreatedAt().Location() != time.UTC {
		t.Error("Expected createdAt in UTC")
	}
	if Ok[int, error](1).ID() == Ok[int, error](1).ID() {
		t.Error("Expected distinct instances to carry distinct ids")
	}
}

func TestString(t *testing.T) {
	t.Parallel()

	if s := Ok[int, string](5).String(); s != "ok(5)" {
		t.Errorf("Expected 'ok(5)', got %s", s)
	}
	if s := Empty[int, string]().String(); s != "ok()" {
		t.Errorf("Expected 'ok()', got %s", s)
	}
	if s := Err[int]("down").String(); s != "err(down)" {
		t.Errorf("Expected 'err(down)', got %s", s)
	}
}

// Zero value behaves as a failure carrying E's zero value
func TestZeroValue_IsFailure(t *testing.T) {
	t.Parallel()

	var r Result[int, string]

	if !r.IsErr() {
		t.Error("Expected the zero Result to be a failure")
	}
	if e, _ := r.GetErr(); e != "" {
		t.Errorf("Expected zero error payload, got %q", e)
	}
}
