package rcloud

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// APIError represents an error returned by the Redis Cloud API.
type APIError struct {
	StatusCode  int    `json:"statusCode,omitempty"`
	Title       string `json:"error,omitempty"`
	Message     string `json:"message,omitempty"`
	Description string `json:"description,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Description
	}

	if e.Title != "" {
		return fmt.Sprintf("%s: %s (status: %d)", e.Title, msg, e.StatusCode)
	}

	return fmt.Sprintf("%s (status: %d)", msg, e.StatusCode)
}

// Retryable reports whether the error is worth retrying. Rate limiting and
// service unavailability are transient; everything else is not.
func (e *APIError) Retryable() bool {
	return e.StatusCode == http.StatusTooManyRequests ||
		e.StatusCode == http.StatusServiceUnavailable ||
		e.StatusCode >= http.StatusInternalServerError
}

// Common static errors that can be wrapped with context.
var (
	ErrConfigRequired        = errors.New("config is required")
	ErrAPIKeyRequired        = errors.New("API key is required")
	ErrAPISecretRequired     = errors.New("API secret is required")
	ErrCircuitBreakerOpen    = errors.New("circuit breaker is open")
	ErrNoMoreItems           = errors.New("no more items")
	ErrTaskTimeout           = errors.New("timed out waiting for task")
	ErrTaskFailed            = errors.New("task finished with an error")
	ErrTaskMissingResourceID = errors.New("task carries no resource ID")
	ErrEmptyResponse         = errors.New("empty response body")
)

// IsNotFound checks if the error is a 404 from the API.
func IsNotFound(err error) bool {
	return statusIs(err, http.StatusNotFound)
}

// IsUnauthorized checks if the error is a 401 from the API.
func IsUnauthorized(err error) bool {
	return statusIs(err, http.StatusUnauthorized)
}

// IsForbidden checks if the error is a 403 from the API.
func IsForbidden(err error) bool {
	return statusIs(err, http.StatusForbidden)
}

// IsRateLimited checks if the error is a 429 from the API.
func IsRateLimited(err error) bool {
	return statusIs(err, http.StatusTooManyRequests)
}

// IsBadRequest checks if the error is a 400 from the API.
func IsBadRequest(err error) bool {
	return statusIs(err, http.StatusBadRequest)
}

// IsPreconditionFailed checks if the error is a 412 from the API. The API
// answers 412 when the feature flag for the requested flow is off.
func IsPreconditionFailed(err error) bool {
	return statusIs(err, http.StatusPreconditionFailed)
}

func statusIs(err error, code int) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == code
	}

	return false
}

// ParseAPIError builds an APIError from an error response body. The upstream
// error format is {"error": ..., "message": ...}; bodies that are not JSON are
// kept verbatim in Message.
func ParseAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: statusCode}

	if len(body) == 0 {
		apiErr.Message = http.StatusText(statusCode)

		return apiErr
	}

	if err := json.Unmarshal(body, apiErr); err != nil || (apiErr.Message == "" && apiErr.Title == "" && apiErr.Description == "") {
		apiErr.Title = ""
		apiErr.Message = string(body)
	}

	apiErr.StatusCode = statusCode

	return apiErr
}
