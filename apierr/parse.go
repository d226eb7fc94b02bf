package apierr

import (
	"encoding/json"
	"net/http"
	"strings"
)

// Parse builds an APIError from a non-2xx response body. slurp is already
// size-limited by the transport; status is the HTTP status; requestID is the
// correlation id pulled from response headers ("" when absent).
//
// Kalshi error bodies come in two shapes:
//
//	{"error":{"code":"missing_parameters","message":"..."}}
//	{"code":"missing_parameters","message":"..."}
func Parse(slurp []byte, status int, requestID string) *APIError {
	trimmed := strings.TrimSpace(string(slurp))

	e := &APIError{
		Status:    status,
		Message:   http.StatusText(status),
		Raw:       trimmed,
		RequestID: requestID,
	}

	// Non-JSON fallback: keep the body as the message if it's short enough
	// to be one.
	if len(trimmed) == 0 || trimmed[0] != '{' {
		if trimmed != "" && len(trimmed) <= 200 {
			e.Message = trimmed
		}
		return e
	}

	var payload struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Error   struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(slurp, &payload); err != nil {
		// invalid json: status text + raw body is the best we can do
		return e
	}

	e.Code = coalesce(payload.Error.Code, payload.Code)
	e.Message = coalesce(payload.Error.Message, payload.Message, http.StatusText(status))
	return e
}

func coalesce(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}
	return ""
}
