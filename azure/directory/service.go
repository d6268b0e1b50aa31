// Package directory implements the DirectoryService over Microsoft Graph.
package directory

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/hashicorp/go-hclog"
	msgraphsdk "github.com/microsoftgraph/msgraph-sdk-go"
	msgraphcore "github.com/microsoftgraph/msgraph-sdk-go-core"
	"github.com/microsoftgraph/msgraph-sdk-go/groups"
	graphmodels "github.com/microsoftgraph/msgraph-sdk-go/models"
	"github.com/microsoftgraph/msgraph-sdk-go/users"

	"github.com/entraops/azrm/azure"
	"github.com/entraops/azrm/global"
)

var logger hclog.Logger

func init() {
	logger = global.Logger()
}

var graphScopes = []string{"https://graph.microsoft.com/.default"}

type Service struct {
	client *msgraphsdk.GraphServiceClient
}

func NewService(cred azcore.TokenCredential) (*Service, error) {
	client, err := msgraphsdk.NewGraphServiceClientWithCredentials(cred, graphScopes)
	if err != nil {
		return nil, fmt.Errorf("could not create a Graph client: %w", err)
	}

	return &Service{client: client}, nil
}

func (s *Service) FindGroupsByDisplayName(ctx context.Context, displayName string) ([]azure.Principal, error) {
	filter := fmt.Sprintf("displayName eq '%s'", escapeODataLiteral(displayName))

	result, err := s.client.Groups().Get(ctx, &groups.GroupsRequestBuilderGetRequestConfiguration{
		QueryParameters: &groups.GroupsRequestBuilderGetQueryParameters{Filter: &filter},
	})
	if err != nil {
		return nil, fmt.Errorf("group lookup %q: %w", displayName, err)
	}

	principals := make([]azure.Principal, 0, len(result.GetValue()))

	for _, group := range result.GetValue() {
		principals = append(principals, azure.Principal{
			ObjectID:    deref(group.GetId()),
			DisplayName: deref(group.GetDisplayName()),
			Type:        azure.ObjectTypeGroup,
		})
	}

	return principals, nil
}

func (s *Service) FindUsersBySignInName(ctx context.Context, signInName string) ([]azure.Principal, error) {
	filter := fmt.Sprintf("userPrincipalName eq '%s'", escapeODataLiteral(signInName))

	result, err := s.client.Users().Get(ctx, &users.UsersRequestBuilderGetRequestConfiguration{
		QueryParameters: &users.UsersRequestBuilderGetQueryParameters{Filter: &filter},
	})
	if err != nil {
		return nil, fmt.Errorf("user lookup %q: %w", signInName, err)
	}

	principals := make([]azure.Principal, 0, len(result.GetValue()))

	for _, user := range result.GetValue() {
		principals = append(principals, azure.Principal{
			ObjectID:    deref(user.GetId()),
			DisplayName: deref(user.GetDisplayName()),
			SignInName:  deref(user.GetUserPrincipalName()),
			Type:        azure.ObjectTypeUser,
		})
	}

	return principals, nil
}

func (s *Service) ListGroupMembers(ctx context.Context, groupId string) ([]azure.Principal, error) {
	result, err := s.client.Groups().ByGroupId(groupId).Members().Get(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("listing members of group %s: %w", groupId, err)
	}

	pageIterator, err := msgraphcore.NewPageIterator[graphmodels.DirectoryObjectable](result, s.client.GetAdapter(), graphmodels.CreateDirectoryObjectCollectionResponseFromDiscriminatorValue)
	if err != nil {
		return nil, fmt.Errorf("paging members of group %s: %w", groupId, err)
	}

	members := make([]azure.Principal, 0)

	err = pageIterator.Iterate(ctx, func(object graphmodels.DirectoryObjectable) bool {
		members = append(members, mapDirectoryObject(object))
		return true
	})
	if err != nil {
		return nil, fmt.Errorf("paging members of group %s: %w", groupId, err)
	}

	return members, nil
}

func (s *Service) ListVerifiedDomains(ctx context.Context) ([]azure.VerifiedDomain, error) {
	result, err := s.client.Organization().Get(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("fetching organization: %w", err)
	}

	organizations := result.GetValue()
	if len(organizations) == 0 {
		return nil, errors.New("organization information unavailable")
	}

	verified := organizations[0].GetVerifiedDomains()
	domains := make([]azure.VerifiedDomain, 0, len(verified))

	for _, d := range verified {
		domains = append(domains, azure.VerifiedDomain{
			Name:      deref(d.GetName()),
			IsInitial: d.GetIsInitial() != nil && *d.GetIsInitial(),
		})
	}

	return domains, nil
}

// GetPrincipalByObjectId resolves any directory object id to a principal.
// Export uses it to annotate raw ARM assignments, which only carry ids, with
// display names and sign-in names.
func (s *Service) GetPrincipalByObjectId(ctx context.Context, objectId string) (*azure.Principal, error) {
	object, err := s.client.DirectoryObjects().ByDirectoryObjectId(objectId).Get(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("directory object %s: %w", objectId, err)
	}

	principal := mapDirectoryObject(object)

	return &principal, nil
}

func mapDirectoryObject(object graphmodels.DirectoryObjectable) azure.Principal {
	switch m := object.(type) {
	case graphmodels.Userable:
		return azure.Principal{
			ObjectID:    deref(m.GetId()),
			DisplayName: deref(m.GetDisplayName()),
			SignInName:  deref(m.GetUserPrincipalName()),
			Type:        azure.ObjectTypeUser,
		}
	case graphmodels.Groupable:
		return azure.Principal{
			ObjectID:    deref(m.GetId()),
			DisplayName: deref(m.GetDisplayName()),
			Type:        azure.ObjectTypeGroup,
		}
	case graphmodels.ServicePrincipalable:
		return azure.Principal{
			ObjectID:    deref(m.GetId()),
			DisplayName: deref(m.GetDisplayName()),
			Type:        azure.ObjectTypeServicePrincipal,
		}
	default:
		logger.Debug("unrecognized directory object type", "objectId", deref(object.GetId()))

		return azure.Principal{
			ObjectID: deref(object.GetId()),
			Type:     azure.ObjectTypeUnknown,
		}
	}
}

// escapeODataLiteral doubles single quotes so display names survive $filter
// expressions.
func escapeODataLiteral(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
