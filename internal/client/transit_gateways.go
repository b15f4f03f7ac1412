package client

import (
	"context"
	"fmt"

	"github.com/rediscloud-community/rediscloud-go/internal/http"
	"github.com/rediscloud-community/rediscloud-go/pkg/rcloud"
)

// TransitGatewayClient implements rcloud.TransitGatewayClient.
type TransitGatewayClient struct {
	httpClient *http.Client
}

// NewTransitGatewayClient creates a new transit gateway client.
func NewTransitGatewayClient(httpClient *http.Client) *TransitGatewayClient {
	return &TransitGatewayClient{
		httpClient: httpClient,
	}
}

// ListAttachments implements rcloud.TransitGatewayClient.ListAttachments.
func (c *TransitGatewayClient) ListAttachments(ctx context.Context, subscriptionID int) ([]rcloud.TransitGatewayAttachment, error) {
	path := fmt.Sprintf("/subscriptions/%d/transitGateways", subscriptionID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing transit gateway attachments: %w", err)
	}

	return parseTgwAttachments(resp, "list transit gateway attachments")
}

// CreateAttachment implements rcloud.TransitGatewayClient.CreateAttachment.
func (c *TransitGatewayClient) CreateAttachment(ctx context.Context, subscriptionID int, tgwID string) (*rcloud.TaskStateUpdate, error) {
	path := fmt.Sprintf("/subscriptions/%d/transitGateways/%s/attachment", subscriptionID, tgwID)

	resp, err := c.httpClient.Post(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("creating transit gateway attachment: %w", err)
	}

	return parseTask(resp, "create transit gateway attachment")
}

// UpdateAttachmentCIDRs implements rcloud.TransitGatewayClient.UpdateAttachmentCIDRs.
func (c *TransitGatewayClient) UpdateAttachmentCIDRs(ctx context.Context, subscriptionID, attachmentID int, request *rcloud.TransitGatewayCIDRsUpdateRequest) (*rcloud.TaskStateUpdate, error) {
	path := fmt.Sprintf("/subscriptions/%d/transitGateways/%d/attachment", subscriptionID, attachmentID)

	resp, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating transit gateway attachment CIDRs: %w", err)
	}

	return parseTask(resp, "update transit gateway attachment CIDRs")
}

// DeleteAttachment implements rcloud.TransitGatewayClient.DeleteAttachment.
func (c *TransitGatewayClient) DeleteAttachment(ctx context.Context, subscriptionID, attachmentID int) (*rcloud.TaskStateUpdate, error) {
	path := fmt.Sprintf("/subscriptions/%d/transitGateways/%d/attachment", subscriptionID, attachmentID)

	resp, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("deleting transit gateway attachment: %w", err)
	}

	return parseTask(resp, "delete transit gateway attachment")
}

// ListInvitations implements rcloud.TransitGatewayClient.ListInvitations.
func (c *TransitGatewayClient) ListInvitations(ctx context.Context, subscriptionID int) ([]rcloud.TransitGatewayInvitation, error) {
	path := fmt.Sprintf("/subscriptions/%d/tgw/shared-invitations", subscriptionID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing transit gateway invitations: %w", err)
	}

	return parseTgwInvitations(resp, "list transit gateway invitations")
}

// AcceptResourceShare implements rcloud.TransitGatewayClient.AcceptResourceShare.
func (c *TransitGatewayClient) AcceptResourceShare(ctx context.Context, subscriptionID, invitationID int) (*rcloud.TaskStateUpdate, error) {
	path := fmt.Sprintf("/subscriptions/%d/tgw/shared-invitations/%d/accept", subscriptionID, invitationID)

	resp, err := c.httpClient.Post(ctx, path, struct{}{})
	if err != nil {
		return nil, fmt.Errorf("accepting resource share: %w", err)
	}

	return parseTask(resp, "accept resource share")
}

// RejectResourceShare implements rcloud.TransitGatewayClient.RejectResourceShare.
func (c *TransitGatewayClient) RejectResourceShare(ctx context.Context, subscriptionID, invitationID int) (*rcloud.TaskStateUpdate, error) {
	path := fmt.Sprintf("/subscriptions/%d/tgw/shared-invitations/%d/reject", subscriptionID, invitationID)

	resp, err := c.httpClient.Post(ctx, path, struct{}{})
	if err != nil {
		return nil, fmt.Errorf("rejecting resource share: %w", err)
	}

	return parseTask(resp, "reject resource share")
}

// ListActiveActiveAttachments implements rcloud.TransitGatewayClient.ListActiveActiveAttachments.
func (c *TransitGatewayClient) ListActiveActiveAttachments(ctx context.Context, subscriptionID int) ([]rcloud.TransitGatewayAttachment, error) {
	path := fmt.Sprintf("/subscriptions/%d/regions/transitGateways", subscriptionID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing Active-Active transit gateway attachments: %w", err)
	}

	return parseTgwAttachments(resp, "list Active-Active transit gateway attachments")
}

// ListActiveActiveInvitations implements rcloud.TransitGatewayClient.ListActiveActiveInvitations.
func (c *TransitGatewayClient) ListActiveActiveInvitations(ctx context.Context, subscriptionID int) ([]rcloud.TransitGatewayInvitation, error) {
	path := fmt.Sprintf("/subscriptions/%d/regions/tgw/shared-invitations", subscriptionID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing Active-Active transit gateway invitations: %w", err)
	}

	return parseTgwInvitations(resp, "list Active-Active transit gateway invitations")
}

// AcceptActiveActiveResourceShare implements rcloud.TransitGatewayClient.AcceptActiveActiveResourceShare.
func (c *TransitGatewayClient) AcceptActiveActiveResourceShare(ctx context.Context, subscriptionID, regionID, invitationID int) (*rcloud.TaskStateUpdate, error) {
	path := fmt.Sprintf("/subscriptions/%d/regions/%d/tgw/shared-invitations/%d/accept", subscriptionID, regionID, invitationID)

	resp, err := c.httpClient.Post(ctx, path, struct{}{})
	if err != nil {
		return nil, fmt.Errorf("accepting Active-Active resource share: %w", err)
	}

	return parseTask(resp, "accept Active-Active resource share")
}

// RejectActiveActiveResourceShare implements rcloud.TransitGatewayClient.RejectActiveActiveResourceShare.
func (c *TransitGatewayClient) RejectActiveActiveResourceShare(ctx context.Context, subscriptionID, regionID, invitationID int) (*rcloud.TaskStateUpdate, error) {
	path := fmt.Sprintf("/subscriptions/%d/regions/%d/tgw/shared-invitations/%d/reject", subscriptionID, regionID, invitationID)

	resp, err := c.httpClient.Post(ctx, path, struct{}{})
	if err != nil {
		return nil, fmt.Errorf("rejecting Active-Active resource share: %w", err)
	}

	return parseTask(resp, "reject Active-Active resource share")
}

// CreateActiveActiveAttachment implements rcloud.TransitGatewayClient.CreateActiveActiveAttachment.
func (c *TransitGatewayClient) CreateActiveActiveAttachment(ctx context.Context, subscriptionID, regionID int, request *rcloud.TransitGatewayAttachmentRequest) (*rcloud.TaskStateUpdate, error) {
	path := fmt.Sprintf("/subscriptions/%d/regions/%d/tgw/attachments", subscriptionID, regionID)

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("creating Active-Active transit gateway attachment: %w", err)
	}

	return parseTask(resp, "create Active-Active transit gateway attachment")
}

// UpdateActiveActiveAttachmentCIDRs implements rcloud.TransitGatewayClient.UpdateActiveActiveAttachmentCIDRs.
func (c *TransitGatewayClient) UpdateActiveActiveAttachmentCIDRs(ctx context.Context, subscriptionID, regionID, attachmentID int, request *rcloud.TransitGatewayCIDRsUpdateRequest) (*rcloud.TaskStateUpdate, error) {
	path := fmt.Sprintf("/subscriptions/%d/regions/%d/tgw/attachments/%d/cidrs", subscriptionID, regionID, attachmentID)

	resp, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating Active-Active transit gateway attachment CIDRs: %w", err)
	}

	return parseTask(resp, "update Active-Active transit gateway attachment CIDRs")
}

// DeleteActiveActiveAttachment implements rcloud.TransitGatewayClient.DeleteActiveActiveAttachment.
func (c *TransitGatewayClient) DeleteActiveActiveAttachment(ctx context.Context, subscriptionID, regionID, attachmentID int) (*rcloud.TaskStateUpdate, error) {
	path := fmt.Sprintf("/subscriptions/%d/regions/%d/tgw/attachments/%d", subscriptionID, regionID, attachmentID)

	resp, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("deleting Active-Active transit gateway attachment: %w", err)
	}

	return parseTask(resp, "delete Active-Active transit gateway attachment")
}

func parseTgwAttachments(resp *http.Response, operation string) ([]rcloud.TransitGatewayAttachment, error) {
	var result struct {
		TransitGatewayAttachment []rcloud.TransitGatewayAttachment `json:"tgws"`
	}

	if err := parseTaskResource(resp, operation, &result); err != nil {
		return nil, err
	}

	return result.TransitGatewayAttachment, nil
}

func parseTgwInvitations(resp *http.Response, operation string) ([]rcloud.TransitGatewayInvitation, error) {
	var result struct {
		Invitations []rcloud.TransitGatewayInvitation `json:"sharedTgwInvitations"`
	}

	if err := parseTaskResource(resp, operation, &result); err != nil {
		return nil, err
	}

	return result.Invitations, nil
}
