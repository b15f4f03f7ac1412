package rcloud_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/rediscloud-community/rediscloud-go/pkg/rcloud"
	"github.com/stretchr/testify/assert"
)

func TestAPIError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      *rcloud.APIError
		expected string
	}{
		{
			name: "title and message",
			err: &rcloud.APIError{
				StatusCode: http.StatusNotFound,
				Title:      "Not Found",
				Message:    "subscription 12345 not found",
			},
			expected: "Not Found: subscription 12345 not found (status: 404)",
		},
		{
			name: "message only",
			err: &rcloud.APIError{
				StatusCode: http.StatusBadRequest,
				Message:    "memoryLimitInGb must be positive",
			},
			expected: "memoryLimitInGb must be positive (status: 400)",
		},
		{
			name: "description fallback",
			err: &rcloud.APIError{
				StatusCode:  http.StatusPreconditionFailed,
				Title:       "Precondition Failed",
				Description: "feature flag is not enabled for this account",
			},
			expected: "Precondition Failed: feature flag is not enabled for this account (status: 412)",
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.expected, testCase.err.Error())
		})
	}
}

func TestAPIError_Retryable(t *testing.T) {
	t.Parallel()

	assert.True(t, (&rcloud.APIError{StatusCode: http.StatusTooManyRequests}).Retryable())
	assert.True(t, (&rcloud.APIError{StatusCode: http.StatusServiceUnavailable}).Retryable())
	assert.True(t, (&rcloud.APIError{StatusCode: http.StatusInternalServerError}).Retryable())
	assert.False(t, (&rcloud.APIError{StatusCode: http.StatusBadRequest}).Retryable())
	assert.False(t, (&rcloud.APIError{StatusCode: http.StatusNotFound}).Retryable())
}

func TestStatusHelpers(t *testing.T) {
	t.Parallel()

	wrap := func(code int) error {
		return fmt.Errorf("calling API: %w", &rcloud.APIError{StatusCode: code})
	}

	assert.True(t, rcloud.IsNotFound(wrap(http.StatusNotFound)))
	assert.True(t, rcloud.IsUnauthorized(wrap(http.StatusUnauthorized)))
	assert.True(t, rcloud.IsForbidden(wrap(http.StatusForbidden)))
	assert.True(t, rcloud.IsRateLimited(wrap(http.StatusTooManyRequests)))
	assert.True(t, rcloud.IsBadRequest(wrap(http.StatusBadRequest)))
	assert.True(t, rcloud.IsPreconditionFailed(wrap(http.StatusPreconditionFailed)))

	assert.False(t, rcloud.IsNotFound(wrap(http.StatusForbidden)))
	assert.False(t, rcloud.IsNotFound(fmt.Errorf("not an API error")))
	assert.False(t, rcloud.IsNotFound(nil))
}

func TestParseAPIError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		statusCode int
		body       []byte
		wantTitle  string
		wantMsg    string
	}{
		{
			name:       "JSON error body",
			statusCode: http.StatusNotFound,
			body:       []byte(`{"error": "Not Found", "message": "database 42 not found"}`),
			wantTitle:  "Not Found",
			wantMsg:    "database 42 not found",
		},
		{
			name:       "empty body uses status text",
			statusCode: http.StatusServiceUnavailable,
			body:       nil,
			wantMsg:    "Service Unavailable",
		},
		{
			name:       "non-JSON body kept verbatim",
			statusCode: http.StatusBadGateway,
			body:       []byte("upstream connect error"),
			wantMsg:    "upstream connect error",
		},
		{
			name:       "JSON without known fields kept verbatim",
			statusCode: http.StatusInternalServerError,
			body:       []byte(`{"timestamp": "2026-08-30"}`),
			wantMsg:    `{"timestamp": "2026-08-30"}`,
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			apiErr := rcloud.ParseAPIError(testCase.statusCode, testCase.body)
			assert.Equal(t, testCase.statusCode, apiErr.StatusCode)
			assert.Equal(t, testCase.wantTitle, apiErr.Title)
			assert.Equal(t, testCase.wantMsg, apiErr.Message)
		})
	}
}
