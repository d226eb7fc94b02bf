package apierr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jameson75/kalshix/apierr"
)

// Compile-time check: APIError implements error.
var _ error = (*apierr.APIError)(nil)

func TestNew_RequiresMessage(t *testing.T) {
	if _, err := apierr.New("", http.StatusBadRequest); !errors.Is(err, apierr.ErrEmptyMessage) {
		t.Fatalf("New with empty message: err = %v, want ErrEmptyMessage", err)
	}
	if _, err := apierr.NewNotFound(""); !errors.Is(err, apierr.ErrEmptyMessage) {
		t.Fatalf("NewNotFound with empty message: err = %v, want ErrEmptyMessage", err)
	}
}

func TestNew_SetsOptions(t *testing.T) {
	cause := errors.New("connection reset")
	e, err := apierr.New("rate limited", http.StatusTooManyRequests,
		apierr.WithCode("rate_limit_exceeded"),
		apierr.WithRaw(`{"error":{"code":"rate_limit_exceeded"}}`),
		apierr.WithRequestID("req_abc123"),
		apierr.WithCause(cause),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if e.Status != http.StatusTooManyRequests {
		t.Fatalf("Status = %d, want 429", e.Status)
	}
	if e.Code != "rate_limit_exceeded" {
		t.Fatalf("Code = %q", e.Code)
	}
	if e.RequestID != "req_abc123" {
		t.Fatalf("RequestID = %q", e.RequestID)
	}
	if !errors.Is(e, cause) {
		t.Fatalf("expected errors.Is to reach the cause")
	}
}

func TestNewNotFound_AlwaysStatus404(t *testing.T) {
	// Even a hostile option can't move the status off 404.
	e, err := apierr.NewNotFound("no such market",
		apierr.WithCode("market_not_found"),
		func(e *apierr.APIError) { e.Status = http.StatusTeapot },
	)
	if err != nil {
		t.Fatalf("NewNotFound: %v", err)
	}
	if e.Status != http.StatusNotFound {
		t.Fatalf("Status = %d, want 404", e.Status)
	}
	if !apierr.IsNotFound(e) {
		t.Fatalf("IsNotFound = false, want true")
	}
}

func TestAPIError_Error_PrefersMessage(t *testing.T) {
	e, err := apierr.New("bad payload: missing ticker", http.StatusBadRequest)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got, want := e.Error(), "bad payload: missing ticker"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestAPIError_Error_FallsBackToStatusText(t *testing.T) {
	e := &apierr.APIError{Status: http.StatusNotFound}
	if got, want := e.Error(), http.StatusText(http.StatusNotFound); got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestAPIError_WrappingAndErrorsAs(t *testing.T) {
	orig, err := apierr.New("order rejected", http.StatusBadRequest, apierr.WithCode("insufficient_balance"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	// Wrap it like resource-client code would.
	wrapped := fmt.Errorf("create order: %w", orig)

	var target *apierr.APIError
	if !errors.As(wrapped, &target) {
		t.Fatalf("errors.As failed to find *APIError in wrapped error")
	}
	if target.Status != http.StatusBadRequest || target.Code != "insufficient_balance" {
		t.Fatalf("unexpected *APIError contents: %#v", target)
	}
}

func TestIsNotFound_ThroughWrapping(t *testing.T) {
	e, _ := apierr.NewNotFound("gone")
	wrapped := fmt.Errorf("get market: %w", e)
	if !apierr.IsNotFound(wrapped) {
		t.Fatalf("IsNotFound(wrapped) = false, want true")
	}
	other, _ := apierr.New("boom", http.StatusInternalServerError)
	if apierr.IsNotFound(other) {
		t.Fatalf("IsNotFound(500) = true, want false")
	}
}
