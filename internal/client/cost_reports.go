package client

import (
	"context"
	"fmt"

	"github.com/rediscloud-community/rediscloud-go/internal/http"
	"github.com/rediscloud-community/rediscloud-go/pkg/rcloud"
)

// CostReportsClient implements rcloud.CostReportsClient.
type CostReportsClient struct {
	httpClient *http.Client
}

// NewCostReportsClient creates a new cost reports client.
func NewCostReportsClient(httpClient *http.Client) *CostReportsClient {
	return &CostReportsClient{
		httpClient: httpClient,
	}
}

// Request implements rcloud.CostReportsClient.Request.
func (c *CostReportsClient) Request(ctx context.Context, request *rcloud.CostReportRequest) (*rcloud.TaskStateUpdate, error) {
	resp, err := c.httpClient.Post(ctx, "/cost-report", request)
	if err != nil {
		return nil, fmt.Errorf("requesting cost report: %w", err)
	}

	return parseTask(resp, "request cost report")
}

// Download implements rcloud.CostReportsClient.Download.
func (c *CostReportsClient) Download(ctx context.Context, reportID string) ([]byte, error) {
	path := fmt.Sprintf("/cost-report/%s", reportID)

	data, err := c.httpClient.GetBytes(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("downloading cost report: %w", err)
	}

	return data, nil
}
