package azure

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/entraops/azrm/global"
)

// memorySink collects everything the exporter writes. Safe for the exporter's
// concurrent scope workers.
type memorySink struct {
	mu          sync.Mutex
	perScope    map[string][]RoleAssignmentRecord
	all         []RoleAssignmentRecord
	customRoles []RoleDefinition
	snapshots   []GroupMembershipSnapshot
}

func newMemorySink() *memorySink {
	return &memorySink{perScope: make(map[string][]RoleAssignmentRecord)}
}

func (s *memorySink) WriteAssignments(subscriptionId string, records []RoleAssignmentRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.perScope[subscriptionId] = records

	return nil
}

func (s *memorySink) WriteAllAssignments(records []RoleAssignmentRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.all = records

	return nil
}

func (s *memorySink) WriteCustomRoleDefinition(definition RoleDefinition) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.customRoles = append(s.customRoles, definition)

	return nil
}

func (s *memorySink) WriteGroupSnapshot(snapshot GroupMembershipSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshots = append(s.snapshots, snapshot)

	return nil
}

func TestExporter_Export(t *testing.T) {
	const (
		readerRole = "/subscriptions/sub-1/providers/Microsoft.Authorization/roleDefinitions/reader"
	)

	auth := NewMockAuthorizationService(t)
	auth.EXPECT().ListSubscriptions(mock.Anything).Return([]Subscription{
		{ID: "sub-1", DisplayName: "Production"},
		{ID: "directory", DisplayName: global.DirectoryPseudoSubscription},
	}, nil).Once()
	auth.EXPECT().ListRoleAssignments(mock.Anything, "sub-1", true).Return([]RoleAssignmentRecord{
		{ObjectID: "user-1", DisplayName: "Alice", ObjectType: ObjectTypeUser, Scope: "/subscriptions/sub-1", RoleDefinitionID: readerRole},
		{ObjectID: "group-1", DisplayName: "Platform Team", ObjectType: ObjectTypeGroup, Scope: "/subscriptions/sub-1", RoleDefinitionID: readerRole, RoleDefinitionName: "Reader"},
	}, nil).Once()
	auth.EXPECT().GetRoleDefinition(mock.Anything, "sub-1", readerRole).Return(&RoleDefinition{ID: readerRole, Name: "Reader"}, nil).Once()
	auth.EXPECT().ListRoleDefinitions(mock.Anything, "sub-1").Return([]RoleDefinition{
		{ID: readerRole, Name: "Reader"},
		{ID: "custom-1", Name: "Log Inspector", Custom: true},
	}, nil).Once()

	dir := NewMockDirectoryService(t)
	dir.EXPECT().ListGroupMembers(mock.Anything, "group-1").Return([]Principal{
		{ObjectID: "user-2", DisplayName: "Bob", Type: ObjectTypeUser},
	}, nil).Once()

	sink := newMemorySink()

	exporter := NewExporter(auth, dir, sink, 2, 0)

	summary, err := exporter.Export(context.Background())
	require.NoError(t, err)
	require.NoError(t, summary.ScopeErrors)

	assert.Equal(t, 1, summary.Subscriptions, "the directory pseudo subscription is skipped")
	assert.Equal(t, 2, summary.Assignments)
	assert.Equal(t, 1, summary.CustomRoles)
	assert.Equal(t, 1, summary.GroupSnapshots)
	assert.Empty(t, summary.FailedScopes)

	require.Len(t, sink.perScope["sub-1"], 2)
	assert.Equal(t, "Reader", sink.perScope["sub-1"][0].RoleDefinitionName, "missing role name is backfilled")

	require.Len(t, sink.customRoles, 1)
	assert.Equal(t, "Log Inspector", sink.customRoles[0].Name)

	require.Len(t, sink.snapshots, 1)
	assert.Equal(t, "Platform Team", sink.snapshots[0].GroupDisplayName)
	assert.Len(t, sink.snapshots[0].Members, 1)

	assert.Len(t, sink.all, 2)
}

func TestExporter_Export_SnapshotsEachGroupOnce(t *testing.T) {
	groupRecord := func(scope string) RoleAssignmentRecord {
		return RoleAssignmentRecord{
			ObjectID:           "group-1",
			DisplayName:        "Platform Team",
			ObjectType:         ObjectTypeGroup,
			Scope:              scope,
			RoleDefinitionName: "Reader",
		}
	}

	auth := NewMockAuthorizationService(t)
	auth.EXPECT().ListSubscriptions(mock.Anything).Return([]Subscription{
		{ID: "sub-1"},
		{ID: "sub-2"},
	}, nil).Once()
	auth.EXPECT().ListRoleAssignments(mock.Anything, "sub-1", true).Return([]RoleAssignmentRecord{groupRecord("/subscriptions/sub-1")}, nil).Once()
	auth.EXPECT().ListRoleAssignments(mock.Anything, "sub-2", true).Return([]RoleAssignmentRecord{groupRecord("/subscriptions/sub-2")}, nil).Once()
	auth.EXPECT().ListRoleDefinitions(mock.Anything, "sub-1").Return(nil, nil).Once()
	auth.EXPECT().ListRoleDefinitions(mock.Anything, "sub-2").Return(nil, nil).Once()

	dir := NewMockDirectoryService(t)
	dir.EXPECT().ListGroupMembers(mock.Anything, "group-1").Return([]Principal{}, nil).Once()

	sink := newMemorySink()

	exporter := NewExporter(auth, dir, sink, 2, 0)

	summary, err := exporter.Export(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, summary.GroupSnapshots)
	assert.Len(t, sink.snapshots, 1)
}

func TestExporter_Export_FailingScopeDoesNotAbortTheRun(t *testing.T) {
	auth := NewMockAuthorizationService(t)
	auth.EXPECT().ListSubscriptions(mock.Anything).Return([]Subscription{
		{ID: "sub-denied"},
		{ID: "sub-ok"},
	}, nil).Once()
	auth.EXPECT().ListRoleAssignments(mock.Anything, "sub-denied", true).Return(nil, ErrScopeAccessDenied).Once()
	auth.EXPECT().ListRoleAssignments(mock.Anything, "sub-ok", true).Return([]RoleAssignmentRecord{
		{ObjectID: "user-1", DisplayName: "Alice", ObjectType: ObjectTypeUser, Scope: "/subscriptions/sub-ok", RoleDefinitionName: "Reader"},
	}, nil).Once()
	auth.EXPECT().ListRoleDefinitions(mock.Anything, "sub-ok").Return(nil, nil).Once()

	dir := NewMockDirectoryService(t)
	sink := newMemorySink()

	exporter := NewExporter(auth, dir, sink, 1, 0)

	summary, err := exporter.Export(context.Background())
	require.NoError(t, err, "per-scope failures are reported, not returned")

	assert.Equal(t, 2, summary.Subscriptions)
	assert.Equal(t, 1, summary.Assignments)
	assert.Equal(t, []string{"sub-denied"}, summary.FailedScopes)
	require.Error(t, summary.ScopeErrors)
	assert.ErrorIs(t, summary.ScopeErrors, ErrScopeAccessDenied)

	assert.Len(t, sink.all, 1)
	assert.NotContains(t, sink.perScope, "sub-denied")
}
