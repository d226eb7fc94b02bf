// Package apierr defines the typed failure surface of the Kalshi SDK: one
// immutable APIError carrying status/correlation metadata, a Kind
// discriminant for exhaustive handling, and helpers to classify errors.
package apierr

import (
	"errors"
	"net/http"
)

// APIError is the error returned for every failed API call. Fields are set
// at construction and never mutated afterwards.
type APIError struct {
	Status    int    // HTTP status; 0 for pure transport failures
	Code      string // Kalshi machine-readable code, e.g. "order_not_found"
	Message   string // human-ish summary, always non-empty
	Raw       string // raw (trimmed, size-limited) response body
	RequestID string // server correlation id, when the response carried one
	cause     error  // wrapped underlying error, if any
}

// Option configures an APIError during construction.
type Option func(*APIError)

// WithCode sets the service-specific error code.
func WithCode(code string) Option { return func(e *APIError) { e.Code = code } }

// WithRaw attaches the raw response body.
func WithRaw(raw string) Option { return func(e *APIError) { e.Raw = raw } }

// WithRequestID attaches the server's request correlation id.
func WithRequestID(id string) Option { return func(e *APIError) { e.RequestID = id } }

// WithCause sets the underlying cause returned by Unwrap.
func WithCause(cause error) Option { return func(e *APIError) { e.cause = cause } }

// ErrEmptyMessage is returned by New when no message is supplied.
var ErrEmptyMessage = errors.New("apierr: message is required")

// New constructs an APIError. The message is mandatory; everything else is
// optional.
func New(message string, status int, opts ...Option) (*APIError, error) {
	if message == "" {
		return nil, ErrEmptyMessage
	}
	e := &APIError{Status: status, Message: message}
	for _, o := range opts {
		o(e)
	}
	return e, nil
}

// NewNotFound constructs a not-found APIError. The status is pinned to 404
// no matter what options are applied.
func NewNotFound(message string, opts ...Option) (*APIError, error) {
	e, err := New(message, http.StatusNotFound, opts...)
	if err != nil {
		return nil, err
	}
	e.Status = http.StatusNotFound
	return e, nil
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return http.StatusText(e.Status)
}

func (e *APIError) Unwrap() error { return e.cause }

// IsNotFound reports whether err is (or wraps) an APIError with status 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}
