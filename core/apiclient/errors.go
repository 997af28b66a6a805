package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrMissingBaseURL is returned when the client is constructed without an API base URL.
	ErrMissingBaseURL = errors.New("api base URL is required")
	// ErrRequestFailed is returned for transport-level failures where no response was received.
	ErrRequestFailed = errors.New("request failed")
	// ErrNoRefreshToken is returned when a 401 cannot be recovered because no refresh token is stored.
	ErrNoRefreshToken = errors.New("no refresh token available")
	// ErrInvalidResponse is returned when a response body cannot be decoded.
	ErrInvalidResponse = errors.New("invalid response body")
)

// HTTPError carries a non-2xx response. Detail holds the server's
// human-readable message when the body contained one; callers show it
// verbatim and fall back to per-operation copy otherwise.
type HTTPError struct {
	Status int
	Body   []byte
	Detail string
}

func (e *HTTPError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("http %d: %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("http %d", e.Status)
}

// Temporary reports whether retrying the same request may succeed.
// Only server-side failures qualify; client errors are permanent.
func (e *HTTPError) Temporary() bool {
	return e.Status >= http.StatusInternalServerError
}

// newHTTPError builds an HTTPError, extracting the server's detail message
// from the common error body shapes.
func newHTTPError(status int, body []byte) *HTTPError {
	e := &HTTPError{Status: status, Body: body}

	var payload struct {
		Detail  string `json:"detail"`
		Err     string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		switch {
		case payload.Detail != "":
			e.Detail = payload.Detail
		case payload.Err != "":
			e.Detail = payload.Err
		case payload.Message != "":
			e.Detail = payload.Message
		}
	}
	return e
}

// IsUnauthorized reports whether err is an HTTP 401.
func IsUnauthorized(err error) bool {
	var httpErr *HTTPError
	return errors.As(err, &httpErr) && httpErr.Status == http.StatusUnauthorized
}

// IsTransient reports whether err is worth retrying: a transport failure
// with no response, or a server-side (5xx) error.
func IsTransient(err error) bool {
	if errors.Is(err, ErrRequestFailed) {
		return true
	}
	var httpErr *HTTPError
	return errors.As(err, &httpErr) && httpErr.Temporary()
}

// Message returns the server's human-readable detail when present,
// otherwise the given fallback.
func Message(err error, fallback string) string {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) && httpErr.Detail != "" {
		return httpErr.Detail
	}
	return fallback
}
