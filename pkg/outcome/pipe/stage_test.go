package pipe

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/ib-77/outcome/pkg/outcome"
)

// Test Validate stage with valid input
func TestValidate_ValidInput(t *testing.T) {
	t.Parallel()

	stage := Validate(func(ctx context.Context, in int) (bool, string) {
		return in > 0, "value must be positive"
	})

	res := stage(context.Background(), outcome.Ok[int, error](5))
	if v, ok := res.Get(); !ok || v != 5 {
		t.Fatalf("expected success with 5, got %v", res)
	}
}

// Test Validate stage with invalid input
func TestValidate_InvalidInput(t *testing.T) {
	t.Parallel()

	stage := Validate(func(ctx context.Context, in int) (bool, string) {
		return in > 0, "value must be positive"
	})

	res := stage(context.Background(), outcome.Ok[int, error](-5))
	if e, failed := res.GetErr(); !failed || e.Error() != "value must be positive" {
		t.Fatalf("expected validation failure, got %v", res)
	}
}

// Test Map stage transformation
func TestMap_Transformation(t *testing.T) {
	t.Parallel()

	stage := Map(func(ctx context.Context, in int) string {
		return fmt.Sprintf("mapped_%d", in*2)
	})

	res := stage(context.Background(), outcome.Ok[int, error](3))
	if v, ok := res.Get(); !ok || v != "mapped_6" {
		t.Fatalf("expected 'mapped_6', got %v", res)
	}
}

// Test Try stage success and error
func TestTry_SuccessAndError(t *testing.T) {
	t.Parallel()

	stage := Try(func(ctx context.Context, in int) (string, error) {
		if in > 0 {
			return fmt.Sprintf("processed_%d", in), nil
		}
		return "", fmt.Errorf("cannot process non-positive number: %d", in)
	})

	res := stage(context.Background(), outcome.Ok[int, error](5))
	if v, ok := res.Get(); !ok || v != "processed_5" {
		t.Fatalf("expected 'processed_5', got %v", res)
	}

	res = stage(context.Background(), outcome.Ok[int, error](-3))
	if e, failed := res.GetErr(); !failed || e.Error() != "cannot process non-positive number: -3" {
		t.Fatalf("expected processing failure, got %v", res)
	}
}

// Test failure passes through a stage untouched
func TestStage_FailurePassesThrough(t *testing.T) {
	t.Parallel()

	original := errors.New("original error")
	stage := Try(func(ctx context.Context, in int) (string, error) {
		t.Error("stage body must not run on a failure")
		return "", nil
	})

	res := stage(context.Background(), outcome.Err[int, error](original))
	if e, failed := res.GetErr(); !failed || !errors.Is(e, original) {
		t.Fatalf("expected the original error to pass through, got %v", res)
	}
}

// Test Switch stage routing
func TestSwitch_Routing(t *testing.T) {
	t.Parallel()

	stage := Switch(func(ctx context.Context, in int) outcome.Result[string, error] {
		if in%2 == 0 {
			return outcome.Ok[string, error]("even")
		}
		return outcome.Err[string, error](errors.New("odd rejected"))
	})

	res := stage(context.Background(), outcome.Ok[int, error](4))
	if v, ok := res.Get(); !ok || v != "even" {
		t.Fatalf("expected 'even', got %v", res)
	}

	res = stage(context.Background(), outcome.Ok[int, error](3))
	if e, failed := res.GetErr(); !failed || e.Error() != "odd rejected" {
		t.Fatalf("expected 'odd rejected', got %v", res)
	}
}

// Test Tee stage side effect
func TestTee_SideEffect(t *testing.T) {
	t.Parallel()

	var seen int
	stage := Tee(func(ctx context.Context, r outcome.Result[int, error]) {
		v, _ := r.Get()
		seen = v * 10
	})

	res := stage(context.Background(), outcome.Ok[int, error](5))
	if v, ok := res.Get(); !ok || v != 5 {
		t.Fatalf("expected the input unchanged, got %v", res)
	}
	if seen != 50 {
		t.Fatalf("expected side effect value 50, got %d", seen)
	}

	// failures skip the side effect
	seen = 0
	stage(context.Background(), outcome.Err[int, error](errors.New("x")))
	if seen != 0 {
		t.Fatalf("Tee must not run on a failure, got %d", seen)
	}
}
