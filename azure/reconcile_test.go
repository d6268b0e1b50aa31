package azure

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReconciler_Reconcile(t *testing.T) {
	records := []RoleAssignmentRecord{
		{
			ObjectType:         ObjectTypeGroup,
			DisplayName:        "Platform Team",
			Scope:              "/subscriptions/src-sub",
			RoleDefinitionID:   "/subscriptions/src-sub/providers/Microsoft.Authorization/roleDefinitions/reader",
			RoleDefinitionName: "Reader",
		},
		{
			ObjectType:         ObjectTypeGroup,
			DisplayName:        "Root Admins",
			Scope:              RootScope,
			RoleDefinitionName: "Owner",
		},
		{
			ObjectType:  ObjectTypeServicePrincipal,
			DisplayName: "ci-deployer",
			Scope:       "/subscriptions/src-sub",
		},
		{
			ObjectType:  ObjectTypeGroup,
			DisplayName: "Ghost Team",
			Scope:       "/subscriptions/src-sub",
		},
		{
			ObjectType:         ObjectTypeGroup,
			DisplayName:        "Ops",
			Scope:              "/subscriptions/src-sub/resourceGroups/rg-ops",
			RoleDefinitionID:   "/subscriptions/src-sub/providers/Microsoft.Authorization/roleDefinitions/contributor",
			RoleDefinitionName: "Contributor",
		},
	}

	dir := NewMockDirectoryService(t)
	dir.EXPECT().FindGroupsByDisplayName(mock.Anything, "Platform Team").Return([]Principal{{ObjectID: "group-1"}}, nil).Once()
	dir.EXPECT().FindGroupsByDisplayName(mock.Anything, "Ghost Team").Return([]Principal{}, nil).Once()
	dir.EXPECT().FindGroupsByDisplayName(mock.Anything, "Ops").Return([]Principal{{ObjectID: "group-2"}}, nil).Once()

	auth := NewMockAuthorizationService(t)
	auth.EXPECT().CreateRoleAssignment(mock.Anything, "/subscriptions/dst-sub", "group-1",
		"/subscriptions/dst-sub/providers/Microsoft.Authorization/roleDefinitions/reader").Return(nil).Once()
	auth.EXPECT().CreateRoleAssignment(mock.Anything, "/subscriptions/dst-sub/resourceGroups/rg-ops", "group-2",
		"/subscriptions/dst-sub/providers/Microsoft.Authorization/roleDefinitions/contributor").Return(ErrAssignmentExists).Once()

	reconciler := NewReconciler(NewResolver(dir), auth, 2, 0)

	outcomes := reconciler.Reconcile(context.Background(), records, "dst-sub")

	require.Len(t, outcomes, len(records))

	// Outcomes come back in input order regardless of worker scheduling.
	for i := range records {
		assert.Equal(t, records[i].DisplayName, outcomes[i].Record.DisplayName)
	}

	assert.Equal(t, OutcomeAssigned, outcomes[0].Status)
	assert.Equal(t, OutcomeSkippedRootScope, outcomes[1].Status)
	assert.Equal(t, OutcomeSkippedServicePrincipal, outcomes[2].Status)
	assert.Equal(t, OutcomeFailed, outcomes[3].Status)
	assert.Equal(t, OutcomeAlreadyAssigned, outcomes[4].Status)

	var resolveErr *ResolveError
	require.ErrorAs(t, outcomes[3].Err, &resolveErr)
	assert.Equal(t, ResolveNotFound, resolveErr.Failure)
}

func TestReconciler_Reconcile_FailureDoesNotAbortBatch(t *testing.T) {
	records := []RoleAssignmentRecord{
		{ObjectType: ObjectTypeGroup, DisplayName: "First", Scope: "/subscriptions/src-sub"},
		{ObjectType: ObjectTypeGroup, DisplayName: "Second", Scope: "/subscriptions/src-sub"},
	}

	dir := NewMockDirectoryService(t)
	dir.EXPECT().FindGroupsByDisplayName(mock.Anything, "First").Return([]Principal{{ObjectID: "group-1"}}, nil).Once()
	dir.EXPECT().FindGroupsByDisplayName(mock.Anything, "Second").Return([]Principal{{ObjectID: "group-2"}}, nil).Once()

	createErr := errors.New("the scope is locked")

	auth := NewMockAuthorizationService(t)
	auth.EXPECT().CreateRoleAssignment(mock.Anything, "/subscriptions/dst-sub", "group-1", "").Return(createErr).Once()
	auth.EXPECT().CreateRoleAssignment(mock.Anything, "/subscriptions/dst-sub", "group-2", "").Return(nil).Once()

	reconciler := NewReconciler(NewResolver(dir), auth, 1, 0)

	outcomes := reconciler.Reconcile(context.Background(), records, "dst-sub")

	require.Len(t, outcomes, 2)
	assert.Equal(t, OutcomeFailed, outcomes[0].Status)
	assert.ErrorIs(t, outcomes[0].Err, createErr)
	assert.Equal(t, OutcomeAssigned, outcomes[1].Status)
}

func TestReconciler_Reconcile_CancelledContextStopsScheduling(t *testing.T) {
	records := []RoleAssignmentRecord{
		{ObjectType: ObjectTypeGroup, DisplayName: "First", Scope: "/subscriptions/src-sub"},
		{ObjectType: ObjectTypeGroup, DisplayName: "Second", Scope: "/subscriptions/src-sub"},
	}

	dir := NewMockDirectoryService(t)
	auth := NewMockAuthorizationService(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	reconciler := NewReconciler(NewResolver(dir), auth, 1, 0)

	outcomes := reconciler.Reconcile(ctx, records, "dst-sub")

	require.Len(t, outcomes, 2)

	for _, outcome := range outcomes {
		assert.Equal(t, OutcomeFailed, outcome.Status)
		assert.ErrorIs(t, outcome.Err, context.Canceled)
	}
}
