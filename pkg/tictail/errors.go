package tictail

import (
	"errors"
	"fmt"
	"net/http"
)

// Error kinds. Every *Error unwraps to exactly one of these, so callers can
// branch with errors.Is(err, tictail.ErrNotFound).
var (
	// ErrConnectionFailure means no response was received (DNS, TCP, TLS, timeout).
	ErrConnectionFailure = errors.New("connection failure")
	// ErrBadRequest is returned for HTTP 400.
	ErrBadRequest = errors.New("bad request")
	// ErrForbidden is returned for HTTP 403.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound is returned for HTTP 404.
	ErrNotFound = errors.New("not found")
	// ErrValidationFailed is returned for HTTP 422.
	ErrValidationFailed = errors.New("validation failed")
	// ErrServerError is returned for every other HTTP error status.
	ErrServerError = errors.New("server error")
	// ErrAPI is returned when a successful response could not be decoded.
	ErrAPI = errors.New("api error")
)

// Static errors for err113 compliance.
var (
	ErrConfigRequired      = errors.New("config is required")
	ErrAccessTokenRequired = errors.New("access token is required")
	ErrStoreIDRequired     = errors.New("store id cannot be empty")
	ErrIDRequired          = errors.New("resource id cannot be empty")
	ErrInvalidID           = errors.New("invalid resource id")
	ErrNoPrimaryKey        = errors.New("resource does not have a primary key value")
	ErrNoSuchField         = errors.New("no such field")
	ErrUnexpectedPayload   = errors.New("unexpected response payload")
	ErrUnsupportedMethod   = errors.New("unsupported HTTP method")
)

// Error is returned by every failed API call.
type Error struct {
	// Kind is one of the Err* kind sentinels above.
	Kind error
	// Message is the API's message, or a synthesized one when the body
	// could not be read.
	Message string
	// Status is the HTTP status code, 0 for connection failures.
	Status int
	// Raw is the undecoded response body.
	Raw string
	// JSON is the decoded error body, nil when it was not JSON.
	JSON map[string]interface{}
	// SupportEmail is taken from the error body when present.
	SupportEmail string
	// Cause is the underlying transport error for connection failures.
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}

	return fmt.Sprintf("%s: %s (status: %d)", e.Kind, e.Message, e.Status)
}

// Unwrap exposes the kind and, when set, the underlying cause.
func (e *Error) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Kind, e.Cause}
	}

	return []error{e.Kind}
}

// Params returns the "params" object of the error body, which the API uses
// to report per-field problems.
func (e *Error) Params() map[string]interface{} {
	if e.JSON == nil {
		return nil
	}

	params, _ := e.JSON["params"].(map[string]interface{})

	return params
}

// KindForStatus maps an HTTP error status to an error kind.
func KindForStatus(status int) error {
	switch status {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusUnprocessableEntity:
		return ErrValidationFailed
	default:
		return ErrServerError
	}
}

// AsError extracts the *Error from err's chain.
func AsError(err error) (*Error, bool) {
	apiErr := &Error{}
	if errors.As(err, &apiErr) {
		return apiErr, true
	}

	return nil, false
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsForbidden checks if the error is a forbidden error.
func IsForbidden(err error) bool {
	return errors.Is(err, ErrForbidden)
}

// IsBadRequest checks if the error is a bad request error.
func IsBadRequest(err error) bool {
	return errors.Is(err, ErrBadRequest)
}

// IsValidationFailed checks if the error is a validation error.
func IsValidationFailed(err error) bool {
	return errors.Is(err, ErrValidationFailed)
}

// IsServerError checks if the error is a server error.
func IsServerError(err error) bool {
	return errors.Is(err, ErrServerError)
}

// IsConnectionFailure checks if the request never got a response.
func IsConnectionFailure(err error) bool {
	return errors.Is(err, ErrConnectionFailure)
}
