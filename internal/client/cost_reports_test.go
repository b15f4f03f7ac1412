package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rediscloud-community/rediscloud-go/pkg/rcloud"
)

func TestCostReportsClient_Request(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/cost-report", request.URL.Path)
		assert.Equal(t, "POST", request.Method)

		var req rcloud.CostReportRequest

		err := json.NewDecoder(request.Body).Decode(&req)
		assert.NoError(t, err)
		assert.Equal(t, "2026-07-01", req.StartDate)
		assert.Equal(t, "2026-07-31", req.EndDate)

		writer.WriteHeader(http.StatusAccepted)
		_ = json.NewEncoder(writer).Encode(rcloud.TaskStateUpdate{
			TaskID:      "task-1",
			CommandType: "costReportRequest",
			Status:      rcloud.TaskStatusReceived,
		})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	task, err := client.CostReports().Request(context.Background(), &rcloud.CostReportRequest{
		StartDate: "2026-07-01",
		EndDate:   "2026-07-31",
		Format:    "csv",
	})
	require.NoError(t, err)
	assert.Equal(t, "task-1", task.TaskID)
}

func TestCostReportsClient_Download(t *testing.T) {
	t.Parallel()

	report := []byte("subscription,database,cost\nproduction,cache,12.50\n")

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/cost-report/report-42", request.URL.Path)
		assert.Equal(t, "GET", request.Method)

		writer.Header().Set("Content-Type", "text/csv")
		_, _ = writer.Write(report)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	data, err := client.CostReports().Download(context.Background(), "report-42")
	require.NoError(t, err)
	assert.Equal(t, report, data)
}
