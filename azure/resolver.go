package azure

import (
	"context"
	"fmt"
	"sync"

	"github.com/hashicorp/go-hclog"

	"github.com/entraops/azrm/global"
)

var logger hclog.Logger

func init() {
	logger = global.Logger()
}

const (
	// CoAdministratorRole is the display name classic administrator entries
	// carry. Classic administrator roles do not map 1:1 onto RBAC role
	// definitions, so these records get a fixed mapping on import.
	CoAdministratorRole = "CoAdministrator"

	// ownerRoleDefinitionGUID is the built-in Owner role, the RBAC equivalent
	// of a classic service administrator.
	ownerRoleDefinitionGUID = "8e3af657-a8ff-443c-a75c-2fe8c4bcb635"
)

// Resolver turns exported records back into object ids of the target
// directory. The verified-domain set is fetched once, on the first user
// resolution.
type Resolver struct {
	dir DirectoryService

	domainsOnce sync.Once
	domains     VerifiedDomains
	domainsErr  error
}

func NewResolver(dir DirectoryService) *Resolver {
	return &Resolver{dir: dir}
}

// Resolve maps a record to exactly one principal in the target directory, or
// a classified *ResolveError (not found, ambiguous, unsupported). Provider
// errors are returned as-is.
func (r *Resolver) Resolve(ctx context.Context, record RoleAssignmentRecord) (ResolvedPrincipal, error) {
	switch record.ObjectType {
	case ObjectTypeGroup:
		matches, err := r.dir.FindGroupsByDisplayName(ctx, record.DisplayName)
		if err != nil {
			return ResolvedPrincipal{}, fmt.Errorf("searching group %q: %w", record.DisplayName, err)
		}

		return classifyMatches(record, record.DisplayName, matches)

	case ObjectTypeUser:
		domains, err := r.verifiedDomains(ctx)
		if err != nil {
			return ResolvedPrincipal{}, fmt.Errorf("listing verified domains: %w", err)
		}

		identity := Normalize(record.SignInName, domains)
		logger.Debug("resolving user", "signInName", record.SignInName, "loginName", identity.LoginName, "external", identity.External)

		matches, err := r.dir.FindUsersBySignInName(ctx, identity.LoginName)
		if err != nil {
			return ResolvedPrincipal{}, fmt.Errorf("searching user %q: %w", identity.LoginName, err)
		}

		return classifyMatches(record, identity.LoginName, matches)

	default:
		return ResolvedPrincipal{}, &ResolveError{
			Failure:    ResolveUnsupported,
			ObjectType: record.ObjectType,
			Name:       record.DisplayName,
		}
	}
}

func (r *Resolver) verifiedDomains(ctx context.Context) (VerifiedDomains, error) {
	r.domainsOnce.Do(func() {
		domains, err := r.dir.ListVerifiedDomains(ctx)
		if err != nil {
			r.domainsErr = err
			return
		}

		r.domains = NewVerifiedDomains(domains)
	})

	return r.domains, r.domainsErr
}

func classifyMatches(record RoleAssignmentRecord, name string, matches []Principal) (ResolvedPrincipal, error) {
	switch len(matches) {
	case 0:
		return ResolvedPrincipal{}, &ResolveError{
			Failure:    ResolveNotFound,
			ObjectType: record.ObjectType,
			Name:       name,
		}
	case 1:
		return ResolvedPrincipal{ObjectID: matches[0].ObjectID, Type: record.ObjectType}, nil
	default:
		return ResolvedPrincipal{}, &ResolveError{
			Failure:    ResolveAmbiguous,
			ObjectType: record.ObjectType,
			Name:       name,
			Matches:    len(matches),
		}
	}
}

// MapRole picks the scope and role-definition id a record is replayed with.
// CoAdministrator records are forced to the subscription root and the Owner
// built-in role regardless of what was recorded; everything else keeps its
// recorded values, re-rooted onto the target subscription.
func MapRole(record RoleAssignmentRecord, targetSubscriptionId string) (scope, roleDefinitionId string) {
	if record.RoleDefinitionName == CoAdministratorRole {
		scope = SubscriptionScope(targetSubscriptionId)
		return scope, scope + "/providers/Microsoft.Authorization/roleDefinitions/" + ownerRoleDefinitionGUID
	}

	return ReRootScope(record.Scope, targetSubscriptionId), ReRootScope(record.RoleDefinitionID, targetSubscriptionId)
}
