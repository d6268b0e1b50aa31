package interchange

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/entraops/azrm/azure"
)

func TestDirectorySink_Layout(t *testing.T) {
	dir := t.TempDir()

	sink, err := NewDirectorySink(dir)
	require.NoError(t, err)

	records := []azure.RoleAssignmentRecord{
		{ObjectID: "user-1", DisplayName: "Alice", ObjectType: azure.ObjectTypeUser, Scope: "/subscriptions/sub-1", RoleDefinitionName: "Reader"},
	}

	require.NoError(t, sink.WriteAssignments("sub-1", records))
	require.NoError(t, sink.WriteAllAssignments(records))
	require.NoError(t, sink.WriteCustomRoleDefinition(azure.RoleDefinition{
		Name:    "Log Inspector",
		Custom:  true,
		Payload: json.RawMessage(`{"id":"custom-1"}`),
	}))
	require.NoError(t, sink.WriteGroupSnapshot(azure.GroupMembershipSnapshot{
		GroupDisplayName: "Platform Team",
		Members:          []azure.Principal{{ObjectID: "user-1", DisplayName: "Alice"}},
	}))

	for _, path := range []string{
		"assignments.csv",
		"assignments-sub-1.csv",
		filepath.Join("roles", "Log Inspector.json"),
		filepath.Join("groups", "Platform Team.json"),
	} {
		_, statErr := os.Stat(filepath.Join(dir, path))
		assert.NoError(t, statErr, path)
	}

	f, err := os.Open(filepath.Join(dir, "assignments.csv"))
	require.NoError(t, err)
	defer f.Close()

	got, err := ReadAssignments(f)
	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestDirectorySink_GroupSnapshotIsWrittenOnce(t *testing.T) {
	dir := t.TempDir()

	sink, err := NewDirectorySink(dir)
	require.NoError(t, err)

	first := azure.GroupMembershipSnapshot{
		GroupDisplayName: "Platform Team",
		Members:          []azure.Principal{{ObjectID: "user-1"}},
	}

	require.NoError(t, sink.WriteGroupSnapshot(first))
	require.NoError(t, sink.WriteGroupSnapshot(azure.GroupMembershipSnapshot{GroupDisplayName: "Platform Team"}))

	payload, err := os.ReadFile(filepath.Join(dir, "groups", "Platform Team.json"))
	require.NoError(t, err)

	var got azure.GroupMembershipSnapshot
	require.NoError(t, json.Unmarshal(payload, &got))

	assert.Equal(t, first, got)
}

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain name", in: "Platform Team", want: "Platform Team"},
		{name: "path separators", in: "a/b\\c", want: "a-b-c"},
		{name: "shell metacharacters", in: `ops:*?"<>|`, want: "ops-------"},
		{name: "empty", in: "", want: "unnamed"},
		{name: "whitespace only", in: "  ", want: "unnamed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeFileName(tt.in))
		})
	}
}
