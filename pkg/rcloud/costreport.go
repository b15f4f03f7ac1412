package rcloud

import "context"

// CostReportsClient provides access to billing cost report generation. Report
// generation is asynchronous: Request answers with a task whose resource ID
// is the report ID, and Download fetches the rendered report bytes.
type CostReportsClient interface {
	Request(ctx context.Context, request *CostReportRequest) (*TaskStateUpdate, error)
	Download(ctx context.Context, reportID string) ([]byte, error)
}

// CostReportRequest describes the period and format of a cost report.
type CostReportRequest struct {
	StartDate string `json:"startDate"        yaml:"startDate"`
	EndDate   string `json:"endDate"          yaml:"endDate"`
	Format    string `json:"format,omitempty" yaml:"format,omitempty"`
}
