package rcloud

import "context"

// VPCPeeringClient provides access to VPC peering management. Active-Active
// subscriptions share the endpoints with standard ones; the region rides in
// the request payload.
type VPCPeeringClient interface {
	List(ctx context.Context, subscriptionID int) ([]VPCPeering, error)
	Create(ctx context.Context, subscriptionID int, request *VPCPeeringCreateRequest) (*TaskStateUpdate, error)
	Update(ctx context.Context, subscriptionID, peeringID int, request *VPCPeeringUpdateRequest) (*TaskStateUpdate, error)
	Delete(ctx context.Context, subscriptionID, peeringID int) (*TaskStateUpdate, error)

	ListActiveActive(ctx context.Context, subscriptionID int) ([]VPCPeering, error)
	CreateActiveActive(ctx context.Context, subscriptionID int, request *ActiveActiveVPCPeeringCreateRequest) (*TaskStateUpdate, error)
	DeleteActiveActive(ctx context.Context, subscriptionID, peeringID int) (*TaskStateUpdate, error)
}

// VPCPeering represents one VPC peering connection.
type VPCPeering struct {
	ID           int      `json:"vpcPeeringId"             yaml:"vpcPeeringId"`
	Status       string   `json:"status,omitempty"         yaml:"status,omitempty"`
	Provider     string   `json:"provider,omitempty"       yaml:"provider,omitempty"`
	AWSAccountID string   `json:"awsAccountId,omitempty"   yaml:"awsAccountId,omitempty"`
	AWSPeeringID string   `json:"awsPeeringUid,omitempty"  yaml:"awsPeeringUid,omitempty"`
	VPCID        string   `json:"vpcUid,omitempty"         yaml:"vpcUid,omitempty"`
	VPCCIDR      string   `json:"vpcCidr,omitempty"        yaml:"vpcCidr,omitempty"`
	VPCCIDRs     []string `json:"vpcCidrs,omitempty"       yaml:"vpcCidrs,omitempty"`
	GCPProjectID string   `json:"vpcProjectUid,omitempty"  yaml:"vpcProjectUid,omitempty"`
	GCPNetwork   string   `json:"vpcNetworkName,omitempty" yaml:"vpcNetworkName,omitempty"`
	Region       string   `json:"regionName,omitempty"     yaml:"regionName,omitempty"`
	RegionID     int      `json:"regionId,omitempty"       yaml:"regionId,omitempty"`
	Links        Links    `json:"links,omitempty"          yaml:"links,omitempty"`
}

// VPCPeeringCreateRequest initiates a peering. AWS peerings need account,
// region, VPC, and CIDR; GCP peerings need project and network name.
type VPCPeeringCreateRequest struct {
	Provider       string   `json:"provider,omitempty"       yaml:"provider,omitempty"`
	Region         string   `json:"region,omitempty"         yaml:"region,omitempty"`
	AWSAccountID   string   `json:"awsAccountId,omitempty"   yaml:"awsAccountId,omitempty"`
	VPCID          string   `json:"vpcId,omitempty"          yaml:"vpcId,omitempty"`
	VPCCIDR        string   `json:"vpcCidr,omitempty"        yaml:"vpcCidr,omitempty"`
	VPCCIDRs       []string `json:"vpcCidrs,omitempty"       yaml:"vpcCidrs,omitempty"`
	GCPProjectID   string   `json:"vpcProjectUid,omitempty"  yaml:"vpcProjectUid,omitempty"`
	GCPNetworkName string   `json:"vpcNetworkName,omitempty" yaml:"vpcNetworkName,omitempty"`
}

// VPCPeeringUpdateRequest replaces the advertised CIDRs of a peering.
type VPCPeeringUpdateRequest struct {
	VPCCIDR  string   `json:"vpcCidr,omitempty"  yaml:"vpcCidr,omitempty"`
	VPCCIDRs []string `json:"vpcCidrs,omitempty" yaml:"vpcCidrs,omitempty"`
}

// ActiveActiveVPCPeeringCreateRequest initiates a peering against one region
// of an Active-Active subscription.
type ActiveActiveVPCPeeringCreateRequest struct {
	SourceRegion      string   `json:"sourceRegion"                yaml:"sourceRegion"`
	DestinationRegion string   `json:"destinationRegion,omitempty" yaml:"destinationRegion,omitempty"`
	Provider          string   `json:"provider,omitempty"          yaml:"provider,omitempty"`
	AWSAccountID      string   `json:"awsAccountId,omitempty"      yaml:"awsAccountId,omitempty"`
	VPCID             string   `json:"vpcId,omitempty"             yaml:"vpcId,omitempty"`
	VPCCIDR           string   `json:"vpcCidr,omitempty"           yaml:"vpcCidr,omitempty"`
	VPCCIDRs          []string `json:"vpcCidrs,omitempty"          yaml:"vpcCidrs,omitempty"`
	GCPProjectID      string   `json:"vpcProjectUid,omitempty"     yaml:"vpcProjectUid,omitempty"`
	GCPNetworkName    string   `json:"vpcNetworkName,omitempty"    yaml:"vpcNetworkName,omitempty"`
}

// TransitGatewayClient provides access to AWS Transit Gateway attachment
// management.
type TransitGatewayClient interface {
	ListAttachments(ctx context.Context, subscriptionID int) ([]TransitGatewayAttachment, error)
	CreateAttachment(ctx context.Context, subscriptionID int, tgwID string) (*TaskStateUpdate, error)
	UpdateAttachmentCIDRs(ctx context.Context, subscriptionID, attachmentID int, request *TransitGatewayCIDRsUpdateRequest) (*TaskStateUpdate, error)
	DeleteAttachment(ctx context.Context, subscriptionID, attachmentID int) (*TaskStateUpdate, error)

	ListInvitations(ctx context.Context, subscriptionID int) ([]TransitGatewayInvitation, error)
	AcceptResourceShare(ctx context.Context, subscriptionID, invitationID int) (*TaskStateUpdate, error)
	RejectResourceShare(ctx context.Context, subscriptionID, invitationID int) (*TaskStateUpdate, error)

	ListActiveActiveAttachments(ctx context.Context, subscriptionID int) ([]TransitGatewayAttachment, error)
	ListActiveActiveInvitations(ctx context.Context, subscriptionID int) ([]TransitGatewayInvitation, error)
	AcceptActiveActiveResourceShare(ctx context.Context, subscriptionID, regionID, invitationID int) (*TaskStateUpdate, error)
	RejectActiveActiveResourceShare(ctx context.Context, subscriptionID, regionID, invitationID int) (*TaskStateUpdate, error)
	CreateActiveActiveAttachment(ctx context.Context, subscriptionID, regionID int, request *TransitGatewayAttachmentRequest) (*TaskStateUpdate, error)
	UpdateActiveActiveAttachmentCIDRs(ctx context.Context, subscriptionID, regionID, attachmentID int, request *TransitGatewayCIDRsUpdateRequest) (*TaskStateUpdate, error)
	DeleteActiveActiveAttachment(ctx context.Context, subscriptionID, regionID, attachmentID int) (*TaskStateUpdate, error)
}

// TransitGatewayAttachment represents one transit gateway attachment.
type TransitGatewayAttachment struct {
	ID             int      `json:"id"                       yaml:"id"`
	AWSTgwUID      string   `json:"awsTgwUid,omitempty"      yaml:"awsTgwUid,omitempty"`
	AttachmentUID  string   `json:"attachmentUid,omitempty"  yaml:"attachmentUid,omitempty"`
	Status         string   `json:"status,omitempty"         yaml:"status,omitempty"`
	AttachmentType string   `json:"attachmentType,omitempty" yaml:"attachmentType,omitempty"`
	AWSAccountID   string   `json:"awsAccountId,omitempty"   yaml:"awsAccountId,omitempty"`
	CIDRs          []string `json:"cidrs,omitempty"          yaml:"cidrs,omitempty"`
	Links          Links    `json:"links,omitempty"          yaml:"links,omitempty"`
}

// TransitGatewayAttachmentRequest attaches a regional Active-Active
// deployment to a transit gateway.
type TransitGatewayAttachmentRequest struct {
	AWSAccountID string   `json:"awsAccountId,omitempty" yaml:"awsAccountId,omitempty"`
	TgwID        string   `json:"tgwId,omitempty"        yaml:"tgwId,omitempty"`
	CIDRs        []string `json:"cidrs,omitempty"        yaml:"cidrs,omitempty"`
}

// TransitGatewayCIDRsUpdateRequest replaces the CIDRs routed through an
// attachment.
type TransitGatewayCIDRsUpdateRequest struct {
	CIDRs []string `json:"cidrs" yaml:"cidrs"`
}

// TransitGatewayInvitation represents a pending AWS resource share
// invitation.
type TransitGatewayInvitation struct {
	ID               int    `json:"id"                         yaml:"id"`
	ResourceShareARN string `json:"resourceShareArn,omitempty" yaml:"resourceShareArn,omitempty"`
	ShareName        string `json:"shareName,omitempty"        yaml:"shareName,omitempty"`
	Status           string `json:"status,omitempty"           yaml:"status,omitempty"`
	ReceivedDate     string `json:"receivedDate,omitempty"     yaml:"receivedDate,omitempty"`
}

// PrivateServiceConnectClient provides access to GCP Private Service Connect
// management.
type PrivateServiceConnectClient interface {
	GetService(ctx context.Context, subscriptionID int) (*PSCService, error)
	CreateService(ctx context.Context, subscriptionID int) (*TaskStateUpdate, error)
	DeleteService(ctx context.Context, subscriptionID int) (*TaskStateUpdate, error)

	ListEndpoints(ctx context.Context, subscriptionID int) ([]PSCEndpoint, error)
	CreateEndpoint(ctx context.Context, subscriptionID int, request *PSCEndpointRequest) (*TaskStateUpdate, error)
	UpdateEndpoint(ctx context.Context, subscriptionID, endpointID int, request *PSCEndpointRequest) (*TaskStateUpdate, error)
	DeleteEndpoint(ctx context.Context, subscriptionID, endpointID int) (*TaskStateUpdate, error)
	GetEndpointCreationScript(ctx context.Context, subscriptionID, endpointID int) (*PSCEndpointScript, error)
	GetEndpointDeletionScript(ctx context.Context, subscriptionID, endpointID int) (*PSCEndpointScript, error)

	GetActiveActiveService(ctx context.Context, subscriptionID int) (*PSCService, error)
	CreateActiveActiveService(ctx context.Context, subscriptionID int) (*TaskStateUpdate, error)
	DeleteActiveActiveService(ctx context.Context, subscriptionID int) (*TaskStateUpdate, error)
	ListActiveActiveEndpoints(ctx context.Context, subscriptionID int) ([]PSCEndpoint, error)
	CreateActiveActiveEndpoint(ctx context.Context, subscriptionID int, request *PSCEndpointRequest) (*TaskStateUpdate, error)
	UpdateActiveActiveEndpoint(ctx context.Context, subscriptionID, regionID, endpointID int, request *PSCEndpointRequest) (*TaskStateUpdate, error)
	DeleteActiveActiveEndpoint(ctx context.Context, subscriptionID, regionID, endpointID int) (*TaskStateUpdate, error)
	GetActiveActiveEndpointCreationScript(ctx context.Context, subscriptionID, regionID, pscServiceID, endpointID int) (*PSCEndpointScript, error)
	GetActiveActiveEndpointDeletionScript(ctx context.Context, subscriptionID, regionID, pscServiceID, endpointID int) (*PSCEndpointScript, error)
}

// PSCService represents the Private Service Connect service of a
// subscription.
type PSCService struct {
	ID                 int    `json:"id,omitempty"                    yaml:"id,omitempty"`
	ConnectionHostName string `json:"connectionHostName,omitempty"    yaml:"connectionHostName,omitempty"`
	ServiceAttachment  string `json:"serviceAttachmentName,omitempty" yaml:"serviceAttachmentName,omitempty"`
	Status             string `json:"status,omitempty"                yaml:"status,omitempty"`
}

// PSCEndpoint represents one Private Service Connect endpoint.
type PSCEndpoint struct {
	ID                     int    `json:"id"                               yaml:"id"`
	GCPProjectID           string `json:"gcpProjectId,omitempty"           yaml:"gcpProjectId,omitempty"`
	GCPVPCName             string `json:"gcpVpcName,omitempty"             yaml:"gcpVpcName,omitempty"`
	GCPVPCSubnetName       string `json:"gcpVpcSubnetName,omitempty"       yaml:"gcpVpcSubnetName,omitempty"`
	EndpointConnectionName string `json:"endpointConnectionName,omitempty" yaml:"endpointConnectionName,omitempty"`
	Status                 string `json:"status,omitempty"                 yaml:"status,omitempty"`
}

// PSCEndpointRequest creates or updates a Private Service Connect endpoint.
// Updates name the owning service through PSCServiceID.
type PSCEndpointRequest struct {
	PSCServiceID           int    `json:"pscServiceId,omitempty" yaml:"pscServiceId,omitempty"`
	GCPProjectID           string `json:"gcpProjectId"           yaml:"gcpProjectId"`
	GCPVPCName             string `json:"gcpVpcName"             yaml:"gcpVpcName"`
	GCPVPCSubnetName       string `json:"gcpVpcSubnetName"       yaml:"gcpVpcSubnetName"`
	EndpointConnectionName string `json:"endpointConnectionName" yaml:"endpointConnectionName"`
}

// PSCEndpointScript carries the gcloud commands that create or tear down an
// endpoint on the customer side.
type PSCEndpointScript struct {
	Script       string            `json:"script,omitempty"       yaml:"script,omitempty"`
	TerraformGcp map[string]string `json:"terraformGcp,omitempty" yaml:"terraformGcp,omitempty"`
}

// PrivateLinkClient provides access to AWS PrivateLink management.
type PrivateLinkClient interface {
	Get(ctx context.Context, subscriptionID int) (*PrivateLink, error)
	Create(ctx context.Context, subscriptionID int, request *PrivateLinkCreateRequest) (*TaskStateUpdate, error)
	Delete(ctx context.Context, subscriptionID int) (*TaskStateUpdate, error)
	AddPrincipal(ctx context.Context, subscriptionID int, request *PrivateLinkPrincipalRequest) (*TaskStateUpdate, error)
	RemovePrincipal(ctx context.Context, subscriptionID int, request *PrivateLinkPrincipalRequest) (*TaskStateUpdate, error)
	GetEndpointScript(ctx context.Context, subscriptionID int) (*PrivateLinkEndpointScript, error)

	GetActiveActive(ctx context.Context, subscriptionID, regionID int) (*PrivateLink, error)
	CreateActiveActive(ctx context.Context, subscriptionID, regionID int, request *PrivateLinkCreateRequest) (*TaskStateUpdate, error)
	DeleteActiveActive(ctx context.Context, subscriptionID, regionID int) (*TaskStateUpdate, error)
	AddActiveActivePrincipal(ctx context.Context, subscriptionID, regionID int, request *PrivateLinkPrincipalRequest) (*TaskStateUpdate, error)
	RemoveActiveActivePrincipal(ctx context.Context, subscriptionID, regionID int, request *PrivateLinkPrincipalRequest) (*TaskStateUpdate, error)
	GetActiveActiveEndpointScript(ctx context.Context, subscriptionID, regionID int) (*PrivateLinkEndpointScript, error)
}

// PrivateLink represents the PrivateLink service of a subscription.
type PrivateLink struct {
	ServiceName string                  `json:"shareName,omitempty"                yaml:"shareName,omitempty"`
	ResourceARN string                  `json:"resourceConfigurationArn,omitempty" yaml:"resourceConfigurationArn,omitempty"`
	Status      string                  `json:"status,omitempty"                   yaml:"status,omitempty"`
	Principals  []PrivateLinkPrincipal  `json:"principals,omitempty"               yaml:"principals,omitempty"`
	Connections []PrivateLinkConnection `json:"connections,omitempty"              yaml:"connections,omitempty"`
	Databases   []PrivateLinkDatabase   `json:"databases,omitempty"                yaml:"databases,omitempty"`
}

// PrivateLinkPrincipal is one AWS principal allowed to connect.
type PrivateLinkPrincipal struct {
	Principal     string `json:"principal"                yaml:"principal"`
	PrincipalType string `json:"principalType,omitempty"  yaml:"principalType,omitempty"`
	Alias         string `json:"principalAlias,omitempty" yaml:"principalAlias,omitempty"`
	Status        string `json:"status,omitempty"         yaml:"status,omitempty"`
}

// PrivateLinkConnection is one established endpoint connection.
type PrivateLinkConnection struct {
	ConnectionID   string `json:"connectionId,omitempty"     yaml:"connectionId,omitempty"`
	OwnerAccountID string `json:"ownerId,omitempty"          yaml:"ownerId,omitempty"`
	Type           string `json:"type,omitempty"             yaml:"type,omitempty"`
	Status         string `json:"associationState,omitempty" yaml:"associationState,omitempty"`
}

// PrivateLinkDatabase maps one database to its PrivateLink port.
type PrivateLinkDatabase struct {
	DatabaseID           int    `json:"databaseId,omitempty"           yaml:"databaseId,omitempty"`
	Port                 int    `json:"port,omitempty"                 yaml:"port,omitempty"`
	ResourceLinkEndpoint string `json:"resourceLinkEndpoint,omitempty" yaml:"resourceLinkEndpoint,omitempty"`
}

// PrivateLinkCreateRequest provisions the PrivateLink service.
type PrivateLinkCreateRequest struct {
	ShareName  string                        `json:"shareName"            yaml:"shareName"`
	Principals []PrivateLinkPrincipalRequest `json:"principals,omitempty" yaml:"principals,omitempty"`
}

// PrivateLinkPrincipalRequest names one AWS principal.
type PrivateLinkPrincipalRequest struct {
	Principal     string `json:"principal"                yaml:"principal"`
	PrincipalType string `json:"principalType,omitempty"  yaml:"principalType,omitempty"`
	Alias         string `json:"principalAlias,omitempty" yaml:"principalAlias,omitempty"`
}

// PrivateLinkEndpointScript carries the AWS CLI commands that connect a
// customer VPC to the service.
type PrivateLinkEndpointScript struct {
	Script string `json:"script,omitempty" yaml:"script,omitempty"`
}
