package azure

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"
)

// Reconciler replays exported records against a target subscription. Records
// are independent of each other: outcomes are collected per record, nothing
// is retried and nothing is rolled back.
type Reconciler struct {
	resolver *Resolver
	auth     AuthorizationService
	workers  int
	timeout  time.Duration
}

func NewReconciler(resolver *Resolver, auth AuthorizationService, workers int, callTimeout time.Duration) *Reconciler {
	if workers < 1 {
		workers = 1
	}

	return &Reconciler{
		resolver: resolver,
		auth:     auth,
		workers:  workers,
		timeout:  callTimeout,
	}
}

// Reconcile processes every record and returns one outcome per record, in
// input order regardless of execution order. Cancelling the context stops
// scheduling new records; in-flight provider calls complete or fail on their
// own. Per-record failures never abort the batch.
func (r *Reconciler) Reconcile(ctx context.Context, records []RoleAssignmentRecord, targetSubscriptionId string) []ReconcileOutcome {
	outcomes := make([]ReconcileOutcome, len(records))

	g := new(errgroup.Group)
	g.SetLimit(r.workers)

	for i := range records {
		if err := ctx.Err(); err != nil {
			for j := i; j < len(records); j++ {
				outcomes[j] = ReconcileOutcome{Record: records[j], Status: OutcomeFailed, Err: err}
			}

			break
		}

		i := i
		record := records[i]

		g.Go(func() error {
			outcomes[i] = r.reconcileOne(ctx, record, targetSubscriptionId)
			return nil
		})
	}

	_ = g.Wait()

	return outcomes
}

func (r *Reconciler) reconcileOne(ctx context.Context, record RoleAssignmentRecord, targetSubscriptionId string) ReconcileOutcome {
	outcome := ReconcileOutcome{Record: record}

	if record.Scope == RootScope {
		// Directory-root assignments cannot be re-created inside a
		// subscription context.
		outcome.Status = OutcomeSkippedRootScope
		logger.Info("skipping root-scope assignment", "principal", record.DisplayName, "role", record.RoleDefinitionName)

		return outcome
	}

	if record.ObjectType == ObjectTypeServicePrincipal {
		// Action item for manual assignment, never a provider call.
		outcome.Status = OutcomeSkippedServicePrincipal
		logger.Info("service principal requires manual assignment", "principal", record.DisplayName, "role", record.RoleDefinitionName)

		return outcome
	}

	callCtx, cancel := r.callContext(ctx)
	defer cancel()

	resolved, err := r.resolver.Resolve(callCtx, record)
	if err != nil {
		outcome.Status = OutcomeFailed
		outcome.Err = err
		logger.Warn("could not resolve principal", "principal", record.DisplayName, "error", err)

		return outcome
	}

	scope, roleDefinitionId := MapRole(record, targetSubscriptionId)

	err = r.auth.CreateRoleAssignment(callCtx, scope, resolved.ObjectID, roleDefinitionId)

	switch {
	case errors.Is(err, ErrAssignmentExists):
		outcome.Status = OutcomeAlreadyAssigned
		logger.Debug("assignment already present", "principal", record.DisplayName, "scope", scope)
	case err != nil:
		outcome.Status = OutcomeFailed
		outcome.Err = err
		logger.Warn("could not create assignment", "principal", record.DisplayName, "scope", scope, "error", err)
	default:
		outcome.Status = OutcomeAssigned
		logger.Info("assignment created", "principal", record.DisplayName, "role", record.RoleDefinitionName, "scope", scope)
	}

	return outcome
}

func (r *Reconciler) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.timeout <= 0 {
		return ctx, func() {}
	}

	return context.WithTimeout(ctx, r.timeout)
}
