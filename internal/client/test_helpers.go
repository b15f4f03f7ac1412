package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rediscloud-community/rediscloud-go/internal/auth"
	internalhttp "github.com/rediscloud-community/rediscloud-go/internal/http"
	"github.com/rediscloud-community/rediscloud-go/pkg/rcloud"
)

// Test static errors.
var (
	ErrTestSomeError = errors.New("some error")
)

// testCredentials is the key pair the test server helpers accept.
var testCredentials = auth.Credentials{
	APIKey:    "test-key",
	APISecret: "test-secret",
}

// NewTestClient creates a client wired to the given base URL with test
// credentials.
func NewTestClient(baseURL string) *Client {
	httpClient := internalhttp.NewClient(baseURL, auth.NewStaticProvider(testCredentials.APIKey, testCredentials.APISecret))

	client := &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
	}

	client.initializeResourceClients()

	return client
}

// taskResponse builds the asynchronous operation envelope test servers
// answer with.
func taskResponse(taskID, commandType string) *rcloud.TaskStateUpdate {
	return &rcloud.TaskStateUpdate{
		TaskID:      taskID,
		CommandType: commandType,
		Status:      rcloud.TaskStatusReceived,
	}
}

// taskResourceResponse builds a completed task envelope carrying the given
// payload in response.resource, the shape networking GETs answer with.
func taskResourceResponse(taskID, commandType string, resource interface{}) *rcloud.TaskStateUpdate {
	data, err := json.Marshal(resource)
	if err != nil {
		panic(err)
	}

	return &rcloud.TaskStateUpdate{
		TaskID:      taskID,
		CommandType: commandType,
		Status:      rcloud.TaskStatusProcessingCompleted,
		Response: &rcloud.ProcessorResponse{
			Resource: data,
		},
	}
}

// TestTaskOperation represents a test case for an operation that answers
// 202 Accepted with a task envelope.
type TestTaskOperation struct {
	Name         string
	Method       string
	ExpectedPath string
	StatusCode   int
	Response     interface{}
	WantErr      bool
	ErrMessage   string
	Call         func(*Client, context.Context) (*rcloud.TaskStateUpdate, error)
}

// RunTaskOperationTests runs a series of asynchronous operation tests.
func RunTaskOperationTests(t *testing.T, tests []TestTaskOperation) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.ExpectedPath, request.URL.Path)
				assert.Equal(t, testCase.Method, request.Method)
				assert.Equal(t, testCredentials.APIKey, request.Header.Get("x-api-key"))
				assert.Equal(t, testCredentials.APISecret, request.Header.Get("x-api-secret-key"))

				writer.Header().Set("Content-Type", "application/json")
				writer.WriteHeader(testCase.StatusCode)

				if testCase.Response != nil {
					_ = json.NewEncoder(writer).Encode(testCase.Response)
				}
			}))
			defer server.Close()

			client := NewTestClient(server.URL)

			task, err := testCase.Call(client, context.Background())

			if testCase.WantErr {
				require.Error(t, err)

				if testCase.ErrMessage != "" {
					assert.Contains(t, err.Error(), testCase.ErrMessage)
				}

				assert.Nil(t, task)
			} else {
				require.NoError(t, err)
				require.NotNil(t, task)
				assert.NotEmpty(t, task.TaskID)
			}
		})
	}
}

// RunListTest runs a generic list test against a canned collection
// response.
func RunListTest[TResource any](
	t *testing.T,
	testName string,
	expectedPath string,
	response interface{},
	listCall func(*Client, context.Context) ([]TResource, error),
	expectedCount int,
	validate func([]TResource),
) {
	t.Helper()

	t.Run(testName, func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, expectedPath, request.URL.Path)
			assert.Equal(t, "GET", request.Method)

			writer.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(writer).Encode(response)
		}))
		defer server.Close()

		client := NewTestClient(server.URL)

		resources, err := listCall(client, context.Background())
		require.NoError(t, err)
		assert.Len(t, resources, expectedCount)

		if validate != nil {
			validate(resources)
		}
	})
}

// RunGetTest runs a generic single-resource get test.
func RunGetTest[TResponse any](
	t *testing.T,
	testName string,
	expectedPath string,
	response interface{},
	getCall func(*Client, context.Context) (*TResponse, error),
	validate func(*TResponse),
) {
	t.Helper()

	t.Run(testName, func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, expectedPath, request.URL.Path)
			assert.Equal(t, "GET", request.Method)

			writer.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(writer).Encode(response)
		}))
		defer server.Close()

		client := NewTestClient(server.URL)

		result, err := getCall(client, context.Background())
		require.NoError(t, err)
		require.NotNil(t, result)

		if validate != nil {
			validate(result)
		}
	})
}

// RunNotFoundTest runs a generic 404 test and asserts the typed API error
// surfaces.
func RunNotFoundTest(t *testing.T, testName string, call func(*Client, context.Context) error) {
	t.Helper()

	t.Run(testName, func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.Header().Set("Content-Type", "application/json")
			writer.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(writer).Encode(map[string]interface{}{
				"error":   "Not Found",
				"message": "resource not found",
			})
		}))
		defer server.Close()

		client := NewTestClient(server.URL)

		err := call(client, context.Background())
		require.Error(t, err)
		assert.True(t, rcloud.IsNotFound(err))
	})
}
