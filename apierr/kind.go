package apierr

import (
	"context"
	"errors"
	"net/http"
)

// Kind discriminates the failure categories callers are expected to switch
// on exhaustively.
type Kind int

const (
	// KindTransport is a network-level failure: no HTTP status, cause wraps
	// the underlying transport error.
	KindTransport Kind = iota
	// KindAPI is a non-2xx response from the exchange.
	KindAPI
	// KindNotFound is the 404 special case of KindAPI.
	KindNotFound
	// KindCancelled means the caller's context aborted the call.
	KindCancelled
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindAPI:
		return "api"
	case KindNotFound:
		return "not_found"
	case KindCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Kind classifies the error itself.
func (e *APIError) Kind() Kind {
	switch {
	case e.Status == http.StatusNotFound:
		return KindNotFound
	case e.Status == 0:
		return KindTransport
	default:
		return KindAPI
	}
}

// KindOf classifies any error produced by the SDK. Cancellation wins over
// everything else so callers can tell "I aborted" from "the server said no".
func KindOf(err error) Kind {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return KindCancelled
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind()
	}
	return KindTransport
}
