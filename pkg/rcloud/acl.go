package rcloud

import "context"

// ACLClient provides access to role-based access control: Redis rules, roles,
// and ACL users.
type ACLClient interface {
	ListRedisRules(ctx context.Context) ([]ACLRedisRule, error)
	CreateRedisRule(ctx context.Context, request *ACLRedisRuleCreateRequest) (*TaskStateUpdate, error)
	UpdateRedisRule(ctx context.Context, ruleID int, request *ACLRedisRuleUpdateRequest) (*TaskStateUpdate, error)
	DeleteRedisRule(ctx context.Context, ruleID int) (*TaskStateUpdate, error)

	ListRoles(ctx context.Context) ([]ACLRole, error)
	CreateRole(ctx context.Context, request *ACLRoleCreateRequest) (*TaskStateUpdate, error)
	UpdateRole(ctx context.Context, roleID int, request *ACLRoleUpdateRequest) (*TaskStateUpdate, error)
	DeleteRole(ctx context.Context, roleID int) (*TaskStateUpdate, error)

	ListUsers(ctx context.Context) ([]ACLUser, error)
	GetUser(ctx context.Context, userID int) (*ACLUser, error)
	CreateUser(ctx context.Context, request *ACLUserCreateRequest) (*TaskStateUpdate, error)
	UpdateUser(ctx context.Context, userID int, request *ACLUserUpdateRequest) (*TaskStateUpdate, error)
	DeleteUser(ctx context.Context, userID int) (*TaskStateUpdate, error)
}

// ACLRedisRule is a named Redis ACL rule.
type ACLRedisRule struct {
	ID        int    `json:"id"                  yaml:"id"`
	Name      string `json:"name"                yaml:"name"`
	ACL       string `json:"acl,omitempty"       yaml:"acl,omitempty"`
	IsDefault bool   `json:"isDefault,omitempty" yaml:"isDefault,omitempty"`
	Status    string `json:"status,omitempty"    yaml:"status,omitempty"`
	Links     Links  `json:"links,omitempty"     yaml:"links,omitempty"`
}

// ACLRedisRuleCreateRequest creates a Redis rule.
type ACLRedisRuleCreateRequest struct {
	Name      string `json:"name"      yaml:"name"`
	RedisRule string `json:"redisRule" yaml:"redisRule"`
}

// ACLRedisRuleUpdateRequest updates a Redis rule.
type ACLRedisRuleUpdateRequest struct {
	Name      string `json:"name,omitempty"      yaml:"name,omitempty"`
	RedisRule string `json:"redisRule,omitempty" yaml:"redisRule,omitempty"`
}

// ACLRole is a role binding Redis rules to databases.
type ACLRole struct {
	ID         int                `json:"id"                   yaml:"id"`
	Name       string             `json:"name"                 yaml:"name"`
	RedisRules []ACLRoleRedisRule `json:"redisRules,omitempty" yaml:"redisRules,omitempty"`
	Users      []ACLRoleUser      `json:"users,omitempty"      yaml:"users,omitempty"`
	Status     string             `json:"status,omitempty"     yaml:"status,omitempty"`
	Links      Links              `json:"links,omitempty"      yaml:"links,omitempty"`
}

// ACLRoleRedisRule associates one Redis rule with databases inside a role.
type ACLRoleRedisRule struct {
	RuleID    int               `json:"ruleId,omitempty"    yaml:"ruleId,omitempty"`
	RuleName  string            `json:"ruleName,omitempty"  yaml:"ruleName,omitempty"`
	Databases []ACLRoleDatabase `json:"databases,omitempty" yaml:"databases,omitempty"`
}

// ACLRoleDatabase scopes a rule association to one database.
type ACLRoleDatabase struct {
	SubscriptionID int      `json:"subscriptionId"         yaml:"subscriptionId"`
	DatabaseID     int      `json:"databaseId"             yaml:"databaseId"`
	DatabaseName   string   `json:"databaseName,omitempty" yaml:"databaseName,omitempty"`
	Regions        []string `json:"regions,omitempty"      yaml:"regions,omitempty"`
}

// ACLRoleUser names one user assigned to a role.
type ACLRoleUser struct {
	ID   int    `json:"id"             yaml:"id"`
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
}

// ACLRoleCreateRequest creates a role.
type ACLRoleCreateRequest struct {
	Name       string             `json:"name"       yaml:"name"`
	RedisRules []ACLRoleRedisRule `json:"redisRules" yaml:"redisRules"`
}

// ACLRoleUpdateRequest updates a role.
type ACLRoleUpdateRequest struct {
	Name       string             `json:"name,omitempty"       yaml:"name,omitempty"`
	RedisRules []ACLRoleRedisRule `json:"redisRules,omitempty" yaml:"redisRules,omitempty"`
}

// ACLUser is a database access user.
type ACLUser struct {
	ID     int    `json:"id"               yaml:"id"`
	Name   string `json:"name"             yaml:"name"`
	Role   string `json:"role,omitempty"   yaml:"role,omitempty"`
	Status string `json:"status,omitempty" yaml:"status,omitempty"`
	Links  Links  `json:"links,omitempty"  yaml:"links,omitempty"`
}

// ACLUserCreateRequest creates an ACL user.
type ACLUserCreateRequest struct {
	Name     string `json:"name"     yaml:"name"`
	Role     string `json:"role"     yaml:"role"`
	Password string `json:"password" yaml:"password"`
}

// ACLUserUpdateRequest updates an ACL user. Empty fields are left unchanged.
type ACLUserUpdateRequest struct {
	Role     string `json:"role,omitempty"     yaml:"role,omitempty"`
	Password string `json:"password,omitempty" yaml:"password,omitempty"`
}
