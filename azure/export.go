package azure

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/raito-io/golang-set/set"
	"golang.org/x/sync/errgroup"

	"github.com/entraops/azrm/global"
)

// ExportSummary is what an export run produced, plus the per-scope failures
// that were caught and skipped along the way.
type ExportSummary struct {
	Subscriptions  int
	Assignments    int
	CustomRoles    int
	GroupSnapshots int
	FailedScopes   []string

	// ScopeErrors aggregates the caught per-scope failures. They are reported,
	// not fatal: the run's error return is reserved for failures that stop the
	// whole export.
	ScopeErrors error
}

// Exporter walks every accessible subscription and hands assignments, custom
// role definitions and group membership snapshots to the sink.
type Exporter struct {
	auth    AuthorizationService
	dir     DirectoryService
	sink    ExportSink
	workers int
	timeout time.Duration

	mu             sync.Mutex
	snapshotGroups set.Set[string]
	roleNames      map[string]string
}

func NewExporter(auth AuthorizationService, dir DirectoryService, sink ExportSink, workers int, callTimeout time.Duration) *Exporter {
	if workers < 1 {
		workers = 1
	}

	return &Exporter{
		auth:           auth,
		dir:            dir,
		sink:           sink,
		workers:        workers,
		timeout:        callTimeout,
		snapshotGroups: set.NewSet[string](),
		roleNames:      make(map[string]string),
	}
}

// Export fans out one worker per accessible subscription, bounded. A failing
// scope is recorded in the summary and the rest continue; only a failure to
// enumerate subscriptions at all aborts the run.
func (e *Exporter) Export(ctx context.Context) (*ExportSummary, error) {
	subscriptions, err := e.auth.ListSubscriptions(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing subscriptions: %w", err)
	}

	summary := &ExportSummary{}

	var (
		mu   sync.Mutex
		merr *multierror.Error
		all  []RoleAssignmentRecord
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)

	for i := range subscriptions {
		sub := subscriptions[i]

		if sub.DisplayName == global.DirectoryPseudoSubscription {
			logger.Debug("skipping directory pseudo subscription", "subscription", sub.ID)
			continue
		}

		summary.Subscriptions++

		g.Go(func() error {
			records, custom, snapshots, scopeErr := e.exportScope(gctx, sub)

			mu.Lock()
			defer mu.Unlock()

			if scopeErr != nil {
				logger.Warn("scope export failed", "subscription", sub.ID, "error", scopeErr)
				summary.FailedScopes = append(summary.FailedScopes, sub.ID)
				merr = multierror.Append(merr, fmt.Errorf("subscription %s: %w", sub.ID, scopeErr))

				return nil
			}

			all = append(all, records...)
			summary.Assignments += len(records)
			summary.CustomRoles += custom
			summary.GroupSnapshots += snapshots

			return nil
		})
	}

	_ = g.Wait()

	if err := e.sink.WriteAllAssignments(all); err != nil {
		return summary, fmt.Errorf("writing aggregate assignment list: %w", err)
	}

	summary.ScopeErrors = merr.ErrorOrNil()

	return summary, nil
}

func (e *Exporter) exportScope(ctx context.Context, sub Subscription) (records []RoleAssignmentRecord, custom, snapshots int, err error) {
	logger.Info("exporting subscription", "subscription", sub.ID, "name", sub.DisplayName)

	callCtx, cancel := e.callContext(ctx)
	defer cancel()

	records, err = e.auth.ListRoleAssignments(callCtx, sub.ID, true)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("listing role assignments: %w", err)
	}

	for i := range records {
		if records[i].RoleDefinitionName == "" && records[i].RoleDefinitionID != "" {
			name, nameErr := e.roleName(callCtx, sub.ID, records[i].RoleDefinitionID)
			if nameErr != nil {
				return nil, 0, 0, fmt.Errorf("resolving role definition %s: %w", records[i].RoleDefinitionID, nameErr)
			}

			records[i].RoleDefinitionName = name
		}

		if records[i].ObjectType == ObjectTypeGroup && e.markSnapshot(records[i].DisplayName) {
			if snapErr := e.snapshotGroup(callCtx, records[i]); snapErr != nil {
				logger.Warn("group snapshot failed", "group", records[i].DisplayName, "error", snapErr)
				continue
			}

			snapshots++
		}
	}

	if err = e.sink.WriteAssignments(sub.ID, records); err != nil {
		return nil, 0, 0, fmt.Errorf("writing assignments: %w", err)
	}

	definitions, err := e.auth.ListRoleDefinitions(callCtx, sub.ID)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("listing role definitions: %w", err)
	}

	for _, definition := range definitions {
		if !definition.Custom {
			continue
		}

		if err = e.sink.WriteCustomRoleDefinition(definition); err != nil {
			return nil, 0, 0, fmt.Errorf("writing custom role %q: %w", definition.Name, err)
		}

		custom++
	}

	return records, custom, snapshots, nil
}

// roleName resolves a role-definition id to its display name, memoized across
// scopes.
func (e *Exporter) roleName(ctx context.Context, subscriptionId, roleDefinitionId string) (string, error) {
	e.mu.Lock()
	name, found := e.roleNames[roleDefinitionId]
	e.mu.Unlock()

	if found {
		return name, nil
	}

	definition, err := e.auth.GetRoleDefinition(ctx, subscriptionId, roleDefinitionId)
	if err != nil {
		return "", err
	}

	e.mu.Lock()
	e.roleNames[roleDefinitionId] = definition.Name
	e.mu.Unlock()

	return definition.Name, nil
}

// markSnapshot claims a group display name for this run. Scopes run
// concurrently, so the claim and the membership fetch that follows must
// happen at most once per name.
func (e *Exporter) markSnapshot(groupDisplayName string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.snapshotGroups.Contains(groupDisplayName) {
		return false
	}

	e.snapshotGroups.Add(groupDisplayName)

	return true
}

func (e *Exporter) snapshotGroup(ctx context.Context, record RoleAssignmentRecord) error {
	members, err := e.dir.ListGroupMembers(ctx, record.ObjectID)
	if err != nil {
		return err
	}

	return e.sink.WriteGroupSnapshot(GroupMembershipSnapshot{
		GroupDisplayName: record.DisplayName,
		Members:          members,
	})
}

func (e *Exporter) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if e.timeout <= 0 {
		return ctx, func() {}
	}

	return context.WithTimeout(ctx, e.timeout)
}
