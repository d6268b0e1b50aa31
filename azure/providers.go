package azure

import "context"

// DirectoryService is the narrow directory surface the core resolves
// principals through. Implemented over Microsoft Graph in azure/directory.
//
//go:generate go run github.com/vektra/mockery/v2 --name=DirectoryService --with-expecter --inpackage
type DirectoryService interface {
	FindGroupsByDisplayName(ctx context.Context, displayName string) ([]Principal, error)
	FindUsersBySignInName(ctx context.Context, signInName string) ([]Principal, error)
	ListGroupMembers(ctx context.Context, groupId string) ([]Principal, error)
	ListVerifiedDomains(ctx context.Context) ([]VerifiedDomain, error)
}

// AuthorizationService is the RBAC surface of a subscription. Implemented
// over ARM authorization in azure/authorization.
//
//go:generate go run github.com/vektra/mockery/v2 --name=AuthorizationService --with-expecter --inpackage
type AuthorizationService interface {
	ListSubscriptions(ctx context.Context) ([]Subscription, error)
	ListRoleAssignments(ctx context.Context, subscriptionId string, includeClassicAdministrators bool) ([]RoleAssignmentRecord, error)
	GetRoleDefinition(ctx context.Context, subscriptionId, roleDefinitionId string) (*RoleDefinition, error)
	ListRoleDefinitions(ctx context.Context, subscriptionId string) ([]RoleDefinition, error)
	CreateRoleAssignment(ctx context.Context, scope, objectId, roleDefinitionId string) error
}

// ExportSink receives everything the export collector produces. The file
// layout lives behind this interface so the collector can be tested without a
// filesystem.
type ExportSink interface {
	WriteAssignments(subscriptionId string, records []RoleAssignmentRecord) error
	WriteAllAssignments(records []RoleAssignmentRecord) error
	WriteCustomRoleDefinition(definition RoleDefinition) error
	WriteGroupSnapshot(snapshot GroupMembershipSnapshot) error
}
