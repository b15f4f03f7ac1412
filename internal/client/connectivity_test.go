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

func TestVPCPeeringClient_List(t *testing.T) {
	t.Parallel()

	RunListTest(t, "list peerings", "/subscriptions/12345/peerings",
		taskResourceResponse("task-list-peerings", "GET_VPC_PEERING", map[string]interface{}{
			"peerings": []rcloud.VPCPeering{
				{ID: 1, Status: "active", Provider: rcloud.ProviderAWS, VPCID: "vpc-0abc"},
			},
		}),
		func(c *Client, ctx context.Context) ([]rcloud.VPCPeering, error) {
			return c.VPCPeerings().List(ctx, 12345)
		},
		1,
		func(peerings []rcloud.VPCPeering) {
			assert.Equal(t, "vpc-0abc", peerings[0].VPCID)
		})
}

func TestVPCPeeringClient_TaskOperations(t *testing.T) {
	t.Parallel()

	RunTaskOperationTests(t, []TestTaskOperation{
		{
			Name:         "create peering",
			Method:       "POST",
			ExpectedPath: "/subscriptions/12345/peerings",
			StatusCode:   http.StatusAccepted,
			Response:     taskResponse("task-1", "peeringCreateRequest"),
			Call: func(c *Client, ctx context.Context) (*rcloud.TaskStateUpdate, error) {
				return c.VPCPeerings().Create(ctx, 12345, &rcloud.VPCPeeringCreateRequest{
					Provider:     rcloud.ProviderAWS,
					Region:       "us-east-1",
					AWSAccountID: "123456789012",
					VPCID:        "vpc-0abc",
					VPCCIDR:      "10.0.0.0/24",
				})
			},
		},
		{
			Name:         "delete peering",
			Method:       "DELETE",
			ExpectedPath: "/subscriptions/12345/peerings/1",
			StatusCode:   http.StatusAccepted,
			Response:     taskResponse("task-2", "peeringDeleteRequest"),
			Call: func(c *Client, ctx context.Context) (*rcloud.TaskStateUpdate, error) {
				return c.VPCPeerings().Delete(ctx, 12345, 1)
			},
		},
		{
			// Active-Active peerings share the standard endpoints.
			Name:         "delete Active-Active peering",
			Method:       "DELETE",
			ExpectedPath: "/subscriptions/12345/peerings/1",
			StatusCode:   http.StatusAccepted,
			Response:     taskResponse("task-3", "peeringDeleteRequest"),
			Call: func(c *Client, ctx context.Context) (*rcloud.TaskStateUpdate, error) {
				return c.VPCPeerings().DeleteActiveActive(ctx, 12345, 1)
			},
		},
		{
			Name:         "create Active-Active peering",
			Method:       "POST",
			ExpectedPath: "/subscriptions/12345/peerings",
			StatusCode:   http.StatusAccepted,
			Response:     taskResponse("task-4", "peeringCreateRequest"),
			Call: func(c *Client, ctx context.Context) (*rcloud.TaskStateUpdate, error) {
				return c.VPCPeerings().CreateActiveActive(ctx, 12345, &rcloud.ActiveActiveVPCPeeringCreateRequest{
					SourceRegion: "us-east-1",
					AWSAccountID: "123456789012",
					VPCID:        "vpc-0abc",
					VPCCIDR:      "10.0.0.0/24",
				})
			},
		},
	})
}

func TestTransitGatewayClient_ListAttachments(t *testing.T) {
	t.Parallel()

	RunListTest(t, "list attachments", "/subscriptions/12345/transitGateways",
		taskResourceResponse("task-list-tgws", "GET_TGWS", map[string]interface{}{
			"tgws": []rcloud.TransitGatewayAttachment{
				{ID: 1, AWSTgwUID: "tgw-0abc", Status: "available", CIDRs: []string{"10.1.0.0/16"}},
			},
		}),
		func(c *Client, ctx context.Context) ([]rcloud.TransitGatewayAttachment, error) {
			return c.TransitGateways().ListAttachments(ctx, 12345)
		},
		1,
		func(attachments []rcloud.TransitGatewayAttachment) {
			assert.Equal(t, "tgw-0abc", attachments[0].AWSTgwUID)
		})

	RunListTest(t, "list Active-Active attachments", "/subscriptions/12345/regions/transitGateways",
		taskResourceResponse("task-list-aa-tgws", "GET_TGWS", map[string]interface{}{
			"tgws": []rcloud.TransitGatewayAttachment{
				{ID: 7, AWSTgwUID: "tgw-0def", Status: "available"},
			},
		}),
		func(c *Client, ctx context.Context) ([]rcloud.TransitGatewayAttachment, error) {
			return c.TransitGateways().ListActiveActiveAttachments(ctx, 12345)
		},
		1,
		func(attachments []rcloud.TransitGatewayAttachment) {
			assert.Equal(t, "tgw-0def", attachments[0].AWSTgwUID)
		})
}

func TestTransitGatewayClient_ListInvitations(t *testing.T) {
	t.Parallel()

	RunListTest(t, "list invitations", "/subscriptions/12345/tgw/shared-invitations",
		taskResourceResponse("task-list-invitations", "GET_TGW_INVITATIONS", map[string]interface{}{
			"sharedTgwInvitations": []rcloud.TransitGatewayInvitation{
				{ID: 5, ShareName: "redis-share", Status: "pending"},
			},
		}),
		func(c *Client, ctx context.Context) ([]rcloud.TransitGatewayInvitation, error) {
			return c.TransitGateways().ListInvitations(ctx, 12345)
		},
		1,
		func(invitations []rcloud.TransitGatewayInvitation) {
			assert.Equal(t, "redis-share", invitations[0].ShareName)
		})

	RunListTest(t, "list Active-Active invitations", "/subscriptions/12345/regions/tgw/shared-invitations",
		taskResourceResponse("task-list-aa-invitations", "GET_TGW_INVITATIONS", map[string]interface{}{
			"sharedTgwInvitations": []rcloud.TransitGatewayInvitation{
				{ID: 6, ShareName: "redis-share-aa", Status: "pending"},
			},
		}),
		func(c *Client, ctx context.Context) ([]rcloud.TransitGatewayInvitation, error) {
			return c.TransitGateways().ListActiveActiveInvitations(ctx, 12345)
		},
		1,
		func(invitations []rcloud.TransitGatewayInvitation) {
			assert.Equal(t, "redis-share-aa", invitations[0].ShareName)
		})
}

func TestTransitGatewayClient_ResourceShares(t *testing.T) {
	t.Parallel()

	// Accepting and rejecting invitations POSTs an empty JSON object.
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/subscriptions/12345/tgw/shared-invitations/5/accept", request.URL.Path)
		assert.Equal(t, "POST", request.Method)

		var body map[string]interface{}

		err := json.NewDecoder(request.Body).Decode(&body)
		assert.NoError(t, err)
		assert.Empty(t, body)

		writer.WriteHeader(http.StatusAccepted)
		_ = json.NewEncoder(writer).Encode(taskResponse("task-1", "tgwInvitationAcceptRequest"))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	task, err := client.TransitGateways().AcceptResourceShare(context.Background(), 12345, 5)
	require.NoError(t, err)
	assert.Equal(t, "task-1", task.TaskID)
}

func TestTransitGatewayClient_TaskOperations(t *testing.T) {
	t.Parallel()

	RunTaskOperationTests(t, []TestTaskOperation{
		{
			Name:         "create attachment",
			Method:       "POST",
			ExpectedPath: "/subscriptions/12345/transitGateways/tgw-0abc/attachment",
			StatusCode:   http.StatusAccepted,
			Response:     taskResponse("task-1", "tgwAttachmentCreateRequest"),
			Call: func(c *Client, ctx context.Context) (*rcloud.TaskStateUpdate, error) {
				return c.TransitGateways().CreateAttachment(ctx, 12345, "tgw-0abc")
			},
		},
		{
			Name:         "update attachment CIDRs",
			Method:       "PUT",
			ExpectedPath: "/subscriptions/12345/transitGateways/1/attachment",
			StatusCode:   http.StatusAccepted,
			Response:     taskResponse("task-2", "tgwAttachmentCidrsRequest"),
			Call: func(c *Client, ctx context.Context) (*rcloud.TaskStateUpdate, error) {
				return c.TransitGateways().UpdateAttachmentCIDRs(ctx, 12345, 1, &rcloud.TransitGatewayCIDRsUpdateRequest{
					CIDRs: []string{"10.1.0.0/16", "10.2.0.0/16"},
				})
			},
		},
		{
			Name:         "reject resource share",
			Method:       "POST",
			ExpectedPath: "/subscriptions/12345/tgw/shared-invitations/5/reject",
			StatusCode:   http.StatusAccepted,
			Response:     taskResponse("task-3", "tgwInvitationRejectRequest"),
			Call: func(c *Client, ctx context.Context) (*rcloud.TaskStateUpdate, error) {
				return c.TransitGateways().RejectResourceShare(ctx, 12345, 5)
			},
		},
		{
			Name:         "accept Active-Active resource share",
			Method:       "POST",
			ExpectedPath: "/subscriptions/12345/regions/2/tgw/shared-invitations/5/accept",
			StatusCode:   http.StatusAccepted,
			Response:     taskResponse("task-4", "tgwInvitationAcceptRequest"),
			Call: func(c *Client, ctx context.Context) (*rcloud.TaskStateUpdate, error) {
				return c.TransitGateways().AcceptActiveActiveResourceShare(ctx, 12345, 2, 5)
			},
		},
		{
			Name:         "create Active-Active attachment",
			Method:       "POST",
			ExpectedPath: "/subscriptions/12345/regions/2/tgw/attachments",
			StatusCode:   http.StatusAccepted,
			Response:     taskResponse("task-5", "tgwAttachmentCreateRequest"),
			Call: func(c *Client, ctx context.Context) (*rcloud.TaskStateUpdate, error) {
				return c.TransitGateways().CreateActiveActiveAttachment(ctx, 12345, 2, &rcloud.TransitGatewayAttachmentRequest{
					TgwID: "tgw-0abc",
					CIDRs: []string{"10.1.0.0/16"},
				})
			},
		},
		{
			Name:         "update Active-Active attachment CIDRs",
			Method:       "PUT",
			ExpectedPath: "/subscriptions/12345/regions/2/tgw/attachments/1/cidrs",
			StatusCode:   http.StatusAccepted,
			Response:     taskResponse("task-6", "tgwAttachmentCidrsRequest"),
			Call: func(c *Client, ctx context.Context) (*rcloud.TaskStateUpdate, error) {
				return c.TransitGateways().UpdateActiveActiveAttachmentCIDRs(ctx, 12345, 2, 1, &rcloud.TransitGatewayCIDRsUpdateRequest{
					CIDRs: []string{"10.3.0.0/16"},
				})
			},
		},
		{
			Name:         "delete Active-Active attachment",
			Method:       "DELETE",
			ExpectedPath: "/subscriptions/12345/regions/2/tgw/attachments/1",
			StatusCode:   http.StatusAccepted,
			Response:     taskResponse("task-7", "tgwAttachmentDeleteRequest"),
			Call: func(c *Client, ctx context.Context) (*rcloud.TaskStateUpdate, error) {
				return c.TransitGateways().DeleteActiveActiveAttachment(ctx, 12345, 2, 1)
			},
		},
	})
}

func TestPrivateServiceConnectClient_GetService(t *testing.T) {
	t.Parallel()

	RunGetTest(t, "get PSC service", "/subscriptions/12345/private-service-connect",
		taskResourceResponse("task-get-psc", "GET_PSC_SERVICE",
			rcloud.PSCService{ID: 1, ConnectionHostName: "psc.internal", Status: "active"}),
		func(c *Client, ctx context.Context) (*rcloud.PSCService, error) {
			return c.PrivateServiceConnect().GetService(ctx, 12345)
		},
		func(service *rcloud.PSCService) {
			assert.Equal(t, "psc.internal", service.ConnectionHostName)
		})

	RunGetTest(t, "get Active-Active PSC service", "/subscriptions/12345/regions/private-service-connect",
		taskResourceResponse("task-get-aa-psc", "GET_PSC_SERVICE",
			rcloud.PSCService{ID: 2, ConnectionHostName: "psc-aa.internal", Status: "active"}),
		func(c *Client, ctx context.Context) (*rcloud.PSCService, error) {
			return c.PrivateServiceConnect().GetActiveActiveService(ctx, 12345)
		},
		func(service *rcloud.PSCService) {
			assert.Equal(t, "psc-aa.internal", service.ConnectionHostName)
		})
}

func TestPrivateServiceConnectClient_Endpoints(t *testing.T) {
	t.Parallel()

	RunListTest(t, "list PSC endpoints", "/subscriptions/12345/private-service-connect/endpoints",
		taskResourceResponse("task-list-psc-endpoints", "GET_PSC_ENDPOINTS", map[string]interface{}{
			"endpoints": []rcloud.PSCEndpoint{
				{ID: 1, GCPProjectID: "my-project", GCPVPCName: "default", Status: "active"},
			},
		}),
		func(c *Client, ctx context.Context) ([]rcloud.PSCEndpoint, error) {
			return c.PrivateServiceConnect().ListEndpoints(ctx, 12345)
		},
		1,
		func(endpoints []rcloud.PSCEndpoint) {
			assert.Equal(t, "my-project", endpoints[0].GCPProjectID)
		})

	RunGetTest(t, "get PSC endpoint creation script",
		"/subscriptions/12345/private-service-connect/endpoints/1/creationScripts",
		rcloud.PSCEndpointScript{Script: "gcloud compute forwarding-rules create ..."},
		func(c *Client, ctx context.Context) (*rcloud.PSCEndpointScript, error) {
			return c.PrivateServiceConnect().GetEndpointCreationScript(ctx, 12345, 1)
		},
		func(script *rcloud.PSCEndpointScript) {
			assert.Contains(t, script.Script, "gcloud")
		})

	RunGetTest(t, "get Active-Active PSC endpoint creation script",
		"/subscriptions/12345/regions/2/private-service-connect/9/endpoints/1/creationScripts",
		rcloud.PSCEndpointScript{Script: "gcloud compute forwarding-rules create ..."},
		func(c *Client, ctx context.Context) (*rcloud.PSCEndpointScript, error) {
			return c.PrivateServiceConnect().GetActiveActiveEndpointCreationScript(ctx, 12345, 2, 9, 1)
		},
		func(script *rcloud.PSCEndpointScript) {
			assert.Contains(t, script.Script, "gcloud")
		})

	RunTaskOperationTests(t, []TestTaskOperation{
		{
			Name:         "create PSC endpoint",
			Method:       "POST",
			ExpectedPath: "/subscriptions/12345/private-service-connect/endpoints",
			StatusCode:   http.StatusAccepted,
			Response:     taskResponse("task-1", "pscEndpointCreateRequest"),
			Call: func(c *Client, ctx context.Context) (*rcloud.TaskStateUpdate, error) {
				return c.PrivateServiceConnect().CreateEndpoint(ctx, 12345, &rcloud.PSCEndpointRequest{
					GCPProjectID:           "my-project",
					GCPVPCName:             "default",
					GCPVPCSubnetName:       "default",
					EndpointConnectionName: "redis-psc",
				})
			},
		},
		{
			// The update path names the owning service from the request.
			Name:         "update PSC endpoint",
			Method:       "PUT",
			ExpectedPath: "/subscriptions/12345/private-service-connect/9/endpoints/1",
			StatusCode:   http.StatusAccepted,
			Response:     taskResponse("task-2", "pscEndpointUpdateRequest"),
			Call: func(c *Client, ctx context.Context) (*rcloud.TaskStateUpdate, error) {
				return c.PrivateServiceConnect().UpdateEndpoint(ctx, 12345, 1, &rcloud.PSCEndpointRequest{
					PSCServiceID:           9,
					GCPProjectID:           "my-project",
					GCPVPCName:             "default",
					GCPVPCSubnetName:       "default",
					EndpointConnectionName: "redis-psc",
				})
			},
		},
		{
			Name:         "delete PSC service",
			Method:       "DELETE",
			ExpectedPath: "/subscriptions/12345/private-service-connect",
			StatusCode:   http.StatusAccepted,
			Response:     taskResponse("task-3", "pscServiceDeleteRequest"),
			Call: func(c *Client, ctx context.Context) (*rcloud.TaskStateUpdate, error) {
				return c.PrivateServiceConnect().DeleteService(ctx, 12345)
			},
		},
		{
			Name:         "create Active-Active PSC endpoint",
			Method:       "POST",
			ExpectedPath: "/subscriptions/12345/regions/private-service-connect/endpoints",
			StatusCode:   http.StatusAccepted,
			Response:     taskResponse("task-4", "pscEndpointCreateRequest"),
			Call: func(c *Client, ctx context.Context) (*rcloud.TaskStateUpdate, error) {
				return c.PrivateServiceConnect().CreateActiveActiveEndpoint(ctx, 12345, &rcloud.PSCEndpointRequest{
					GCPProjectID:           "my-project",
					GCPVPCName:             "default",
					GCPVPCSubnetName:       "default",
					EndpointConnectionName: "redis-psc",
				})
			},
		},
		{
			// The service segment of the update path carries the
			// subscription ID.
			Name:         "update Active-Active PSC endpoint",
			Method:       "PUT",
			ExpectedPath: "/subscriptions/12345/regions/2/private-service-connect/12345/endpoints/1",
			StatusCode:   http.StatusAccepted,
			Response:     taskResponse("task-5", "pscEndpointUpdateRequest"),
			Call: func(c *Client, ctx context.Context) (*rcloud.TaskStateUpdate, error) {
				return c.PrivateServiceConnect().UpdateActiveActiveEndpoint(ctx, 12345, 2, 1, &rcloud.PSCEndpointRequest{
					GCPProjectID:           "my-project",
					GCPVPCName:             "default",
					GCPVPCSubnetName:       "default",
					EndpointConnectionName: "redis-psc",
				})
			},
		},
		{
			Name:         "delete Active-Active PSC endpoint",
			Method:       "DELETE",
			ExpectedPath: "/subscriptions/12345/regions/2/private-service-connect/endpoints/1",
			StatusCode:   http.StatusAccepted,
			Response:     taskResponse("task-6", "pscEndpointDeleteRequest"),
			Call: func(c *Client, ctx context.Context) (*rcloud.TaskStateUpdate, error) {
				return c.PrivateServiceConnect().DeleteActiveActiveEndpoint(ctx, 12345, 2, 1)
			},
		},
	})
}

func TestPrivateLinkClient_Get(t *testing.T) {
	t.Parallel()

	RunGetTest(t, "get PrivateLink", "/subscriptions/12345/private-link",
		rcloud.PrivateLink{
			ServiceName: "redis-share",
			Status:      "active",
			Principals: []rcloud.PrivateLinkPrincipal{
				{Principal: "arn:aws:iam::123456789012:root", PrincipalType: "aws_account"},
			},
		},
		func(c *Client, ctx context.Context) (*rcloud.PrivateLink, error) {
			return c.PrivateLink().Get(ctx, 12345)
		},
		func(link *rcloud.PrivateLink) {
			assert.Equal(t, "redis-share", link.ServiceName)
			require.Len(t, link.Principals, 1)
		})
}

func TestPrivateLinkClient_GetEndpointScript(t *testing.T) {
	t.Parallel()

	RunGetTest(t, "get PrivateLink endpoint script",
		"/subscriptions/12345/private-link/endpoint-script",
		rcloud.PrivateLinkEndpointScript{Script: "aws ec2 create-vpc-endpoint ..."},
		func(c *Client, ctx context.Context) (*rcloud.PrivateLinkEndpointScript, error) {
			return c.PrivateLink().GetEndpointScript(ctx, 12345)
		},
		func(script *rcloud.PrivateLinkEndpointScript) {
			assert.Contains(t, script.Script, "aws")
		})

	RunGetTest(t, "get Active-Active PrivateLink endpoint script",
		"/subscriptions/12345/regions/2/private-link/endpoint-script",
		rcloud.PrivateLinkEndpointScript{Script: "aws ec2 create-vpc-endpoint ..."},
		func(c *Client, ctx context.Context) (*rcloud.PrivateLinkEndpointScript, error) {
			return c.PrivateLink().GetActiveActiveEndpointScript(ctx, 12345, 2)
		},
		func(script *rcloud.PrivateLinkEndpointScript) {
			assert.Contains(t, script.Script, "aws")
		})
}

func TestPrivateLinkClient_RemovePrincipal(t *testing.T) {
	t.Parallel()

	// Principal removal sends the principal in a DELETE body.
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/subscriptions/12345/private-link/principals", request.URL.Path)
		assert.Equal(t, "DELETE", request.Method)

		var req rcloud.PrivateLinkPrincipalRequest

		err := json.NewDecoder(request.Body).Decode(&req)
		assert.NoError(t, err)
		assert.Equal(t, "arn:aws:iam::123456789012:root", req.Principal)

		writer.WriteHeader(http.StatusAccepted)
		_ = json.NewEncoder(writer).Encode(taskResponse("task-1", "privateLinkPrincipalRemoveRequest"))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	task, err := client.PrivateLink().RemovePrincipal(context.Background(), 12345, &rcloud.PrivateLinkPrincipalRequest{
		Principal:     "arn:aws:iam::123456789012:root",
		PrincipalType: "aws_account",
	})
	require.NoError(t, err)
	assert.Equal(t, "task-1", task.TaskID)
}

func TestPrivateLinkClient_TaskOperations(t *testing.T) {
	t.Parallel()

	RunTaskOperationTests(t, []TestTaskOperation{
		{
			Name:         "create PrivateLink",
			Method:       "POST",
			ExpectedPath: "/subscriptions/12345/private-link",
			StatusCode:   http.StatusAccepted,
			Response:     taskResponse("task-1", "privateLinkCreateRequest"),
			Call: func(c *Client, ctx context.Context) (*rcloud.TaskStateUpdate, error) {
				return c.PrivateLink().Create(ctx, 12345, &rcloud.PrivateLinkCreateRequest{
					ShareName: "redis-share",
				})
			},
		},
		{
			Name:         "add principal",
			Method:       "POST",
			ExpectedPath: "/subscriptions/12345/private-link/principals",
			StatusCode:   http.StatusAccepted,
			Response:     taskResponse("task-2", "privateLinkPrincipalAddRequest"),
			Call: func(c *Client, ctx context.Context) (*rcloud.TaskStateUpdate, error) {
				return c.PrivateLink().AddPrincipal(ctx, 12345, &rcloud.PrivateLinkPrincipalRequest{
					Principal: "arn:aws:iam::123456789012:root",
				})
			},
		},
		{
			Name:         "delete Active-Active PrivateLink",
			Method:       "DELETE",
			ExpectedPath: "/subscriptions/12345/regions/2/private-link",
			StatusCode:   http.StatusAccepted,
			Response:     taskResponse("task-3", "privateLinkDeleteRequest"),
			Call: func(c *Client, ctx context.Context) (*rcloud.TaskStateUpdate, error) {
				return c.PrivateLink().DeleteActiveActive(ctx, 12345, 2)
			},
		},
	})
}
