// internal/platform/errors/errors_test.go
package errors

import (
	stderrors "errors"
	"testing"
)

func TestWrap(t *testing.T) {
	t.Run("wraps with context", func(t *testing.T) {
		err := Wrap(ErrTimeout, "fetching results")

		if err == nil {
			t.Fatal("Wrap() = nil")
		}
		if !Is(err, ErrTimeout) {
			t.Error("wrapped error lost its sentinel")
		}
		if got := err.Error(); got != "fetching results: operation timed out" {
			t.Errorf("Error() = %q", got)
		}
	})

	t.Run("nil passthrough", func(t *testing.T) {
		if err := Wrap(nil, "context"); err != nil {
			t.Errorf("Wrap(nil) = %v, want nil", err)
		}
	})
}

func TestWrapf(t *testing.T) {
	err := Wrapf(ErrNotFound, "source %s", "crtsh")

	if !Is(err, ErrNotFound) {
		t.Error("wrapped error lost its sentinel")
	}
	if got := err.Error(); got != "source crtsh: resource not found" {
		t.Errorf("Error() = %q", got)
	}

	if err := Wrapf(nil, "source %s", "crtsh"); err != nil {
		t.Errorf("Wrapf(nil) = %v, want nil", err)
	}
}

func TestUnwrap(t *testing.T) {
	err := Wrap(ErrRateLimit, "outer")

	if got := Unwrap(err); got != ErrRateLimit {
		t.Errorf("Unwrap() = %v, want %v", got, ErrRateLimit)
	}
}

func TestSentinelPredicates(t *testing.T) {
	tests := []struct {
		name string
		pred func(error) bool
		err  error
		want bool
	}{
		{"timeout match", IsTimeout, Wrap(ErrTimeout, "ctx"), true},
		{"timeout mismatch", IsTimeout, ErrNotFound, false},
		{"rate limit match", IsRateLimit, Wrap(ErrRateLimit, "ctx"), true},
		{"not found match", IsNotFound, ErrNotFound, true},
		{"service unavailable match", IsServiceUnavailable, Wrap(ErrServiceUnavailable, "ctx"), true},
		{"invalid response match", IsInvalidResponse, Wrap(ErrInvalidResponse, "ctx"), true},
		{"nil", IsTimeout, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pred(tt.err); got != tt.want {
				t.Errorf("predicate = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAsInteropsWithStdlib(t *testing.T) {
	wrapped := Wrap(stderrors.New("inner"), "outer")

	var target *wrappedError
	if !As(wrapped, &target) {
		t.Fatal("As() = false")
	}
	if target.msg != "outer" {
		t.Errorf("msg = %q, want %q", target.msg, "outer")
	}
}
