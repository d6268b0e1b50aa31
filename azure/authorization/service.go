// Package authorization implements the AuthorizationService over ARM.
package authorization

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/authorization/armauthorization/v2"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armsubscriptions"
	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"

	"github.com/entraops/azrm/azure"
	"github.com/entraops/azrm/global"
)

var logger hclog.Logger

func init() {
	logger = global.Logger()
}

// PrincipalLookup annotates raw ARM assignments, which only carry object ids,
// with directory names. Satisfied by *directory.Service.
type PrincipalLookup interface {
	GetPrincipalByObjectId(ctx context.Context, objectId string) (*azure.Principal, error)
}

type Service struct {
	cred       azcore.TokenCredential
	lookup     PrincipalLookup
	subsClient *armsubscriptions.Client

	mu         sync.Mutex
	factories  map[string]*armauthorization.ClientFactory
	principals map[string]*azure.Principal
}

func NewService(cred azcore.TokenCredential, lookup PrincipalLookup) (*Service, error) {
	subsClient, err := armsubscriptions.NewClient(cred, nil)
	if err != nil {
		return nil, fmt.Errorf("could not create a subscriptions client: %w", err)
	}

	return &Service{
		cred:       cred,
		lookup:     lookup,
		subsClient: subsClient,
		factories:  make(map[string]*armauthorization.ClientFactory),
		principals: make(map[string]*azure.Principal),
	}, nil
}

func (s *Service) ListSubscriptions(ctx context.Context) ([]azure.Subscription, error) {
	subscriptions := make([]azure.Subscription, 0)

	pager := s.subsClient.NewListPager(nil)

	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("listing subscriptions: %w", err)
		}

		for _, v := range page.Value {
			sub := azure.Subscription{ID: deref(v.SubscriptionID), DisplayName: deref(v.DisplayName)}

			if v.State != nil {
				sub.State = string(*v.State)
			}

			subscriptions = append(subscriptions, sub)
		}
	}

	return subscriptions, nil
}

func (s *Service) ListRoleAssignments(ctx context.Context, subscriptionId string, includeClassicAdministrators bool) ([]azure.RoleAssignmentRecord, error) {
	factory, err := s.factory(subscriptionId)
	if err != nil {
		return nil, err
	}

	records := make([]azure.RoleAssignmentRecord, 0)

	pager := factory.NewRoleAssignmentsClient().NewListForScopePager(azure.SubscriptionScope(subscriptionId), nil)

	for pager.More() {
		page, err2 := pager.NextPage(ctx)
		if err2 != nil {
			return nil, classifyScopeError(fmt.Errorf("listing role assignments: %w", err2))
		}

		for _, v := range page.Value {
			if v.Properties == nil {
				continue
			}

			record := azure.RoleAssignmentRecord{
				ObjectID:         deref(v.Properties.PrincipalID),
				ObjectType:       mapPrincipalType(v.Properties.PrincipalType),
				Scope:            deref(v.Properties.Scope),
				RoleDefinitionID: deref(v.Properties.RoleDefinitionID),
			}

			s.annotatePrincipal(ctx, &record)

			records = append(records, record)
		}
	}

	if includeClassicAdministrators {
		classic, err2 := s.listClassicAdministrators(ctx, factory, subscriptionId)
		if err2 != nil {
			// Older tenants may not expose the classic API at all.
			logger.Debug("classic administrators unavailable", "subscription", subscriptionId, "error", err2)
		} else {
			records = append(records, classic...)
		}
	}

	return records, nil
}

// listClassicAdministrators maps classic administrator entries onto the
// record shape: user records at subscription scope whose role name is the
// classic role string (e.g. CoAdministrator) and with no role-definition id.
func (s *Service) listClassicAdministrators(ctx context.Context, factory *armauthorization.ClientFactory, subscriptionId string) ([]azure.RoleAssignmentRecord, error) {
	records := make([]azure.RoleAssignmentRecord, 0)

	pager := factory.NewClassicAdministratorsClient().NewListPager(nil)

	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}

		for _, v := range page.Value {
			if v.Properties == nil {
				continue
			}

			email := deref(v.Properties.EmailAddress)

			records = append(records, azure.RoleAssignmentRecord{
				ObjectID:           deref(v.Name),
				DisplayName:        email,
				SignInName:         email,
				ObjectType:         azure.ObjectTypeUser,
				Scope:              azure.SubscriptionScope(subscriptionId),
				RoleDefinitionName: deref(v.Properties.Role),
			})
		}
	}

	return records, nil
}

func (s *Service) GetRoleDefinition(ctx context.Context, subscriptionId, roleDefinitionId string) (*azure.RoleDefinition, error) {
	factory, err := s.factory(subscriptionId)
	if err != nil {
		return nil, err
	}

	resp, err := factory.NewRoleDefinitionsClient().GetByID(ctx, roleDefinitionId, nil)
	if err != nil {
		return nil, classifyScopeError(fmt.Errorf("role definition %s: %w", roleDefinitionId, err))
	}

	return mapRoleDefinition(resp.RoleDefinition)
}

func (s *Service) ListRoleDefinitions(ctx context.Context, subscriptionId string) ([]azure.RoleDefinition, error) {
	factory, err := s.factory(subscriptionId)
	if err != nil {
		return nil, err
	}

	definitions := make([]azure.RoleDefinition, 0)

	pager := factory.NewRoleDefinitionsClient().NewListPager(azure.SubscriptionScope(subscriptionId), nil)

	for pager.More() {
		page, err2 := pager.NextPage(ctx)
		if err2 != nil {
			return nil, classifyScopeError(fmt.Errorf("listing role definitions: %w", err2))
		}

		for _, v := range page.Value {
			definition, err3 := mapRoleDefinition(*v)
			if err3 != nil {
				return nil, err3
			}

			definitions = append(definitions, *definition)
		}
	}

	return definitions, nil
}

func (s *Service) CreateRoleAssignment(ctx context.Context, scope, objectId, roleDefinitionId string) error {
	subscriptionId, err := subscriptionFromScope(scope)
	if err != nil {
		return err
	}

	factory, err := s.factory(subscriptionId)
	if err != nil {
		return err
	}

	_, err = factory.NewRoleAssignmentsClient().Create(ctx, scope, uuid.New().String(), armauthorization.RoleAssignmentCreateParameters{
		Properties: &armauthorization.RoleAssignmentProperties{
			PrincipalID:      &objectId,
			RoleDefinitionID: &roleDefinitionId,
		},
	}, nil)

	if err != nil {
		return classifyCreateError(err)
	}

	return nil
}

// annotatePrincipal backfills display and sign-in names from the directory,
// memoized per object id. A principal that no longer resolves keeps its bare
// id; the record still exports.
func (s *Service) annotatePrincipal(ctx context.Context, record *azure.RoleAssignmentRecord) {
	if s.lookup == nil || record.ObjectID == "" {
		return
	}

	s.mu.Lock()
	principal, found := s.principals[record.ObjectID]
	s.mu.Unlock()

	if !found {
		var err error

		principal, err = s.lookup.GetPrincipalByObjectId(ctx, record.ObjectID)
		if err != nil {
			logger.Debug("principal not resolvable", "objectId", record.ObjectID, "error", err)

			principal = nil
		}

		s.mu.Lock()
		s.principals[record.ObjectID] = principal
		s.mu.Unlock()
	}

	if principal == nil {
		return
	}

	record.DisplayName = principal.DisplayName
	record.SignInName = principal.SignInName

	if record.ObjectType == azure.ObjectTypeUnknown {
		record.ObjectType = principal.Type
	}
}

func (s *Service) factory(subscriptionId string) (*armauthorization.ClientFactory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if factory, found := s.factories[subscriptionId]; found {
		return factory, nil
	}

	factory, err := armauthorization.NewClientFactory(subscriptionId, s.cred, nil)
	if err != nil {
		return nil, fmt.Errorf("could not create an authorization client factory: %w", err)
	}

	s.factories[subscriptionId] = factory

	return factory, nil
}

func mapRoleDefinition(definition armauthorization.RoleDefinition) (*azure.RoleDefinition, error) {
	payload, err := json.Marshal(definition)
	if err != nil {
		return nil, fmt.Errorf("encoding role definition: %w", err)
	}

	mapped := &azure.RoleDefinition{ID: deref(definition.ID), Payload: payload}

	if definition.Properties != nil {
		mapped.Name = deref(definition.Properties.RoleName)
		mapped.Custom = strings.EqualFold(deref(definition.Properties.RoleType), "CustomRole")
	}

	return mapped, nil
}

func mapPrincipalType(principalType *armauthorization.PrincipalType) azure.ObjectType {
	if principalType == nil {
		return azure.ObjectTypeUnknown
	}

	switch *principalType {
	case armauthorization.PrincipalTypeUser:
		return azure.ObjectTypeUser
	case armauthorization.PrincipalTypeGroup:
		return azure.ObjectTypeGroup
	case armauthorization.PrincipalTypeServicePrincipal:
		return azure.ObjectTypeServicePrincipal
	default:
		return azure.ObjectTypeUnknown
	}
}

func subscriptionFromScope(scope string) (string, error) {
	const prefix = "/subscriptions/"

	if !strings.HasPrefix(scope, prefix) {
		return "", fmt.Errorf("scope %q does not name a subscription", scope)
	}

	rest := scope[len(prefix):]
	if idx := strings.Index(rest, "/"); idx >= 0 {
		rest = rest[:idx]
	}

	return rest, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
