package interchange

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/entraops/azrm/azure"
)

func TestSummarize(t *testing.T) {
	outcomes := []azure.ReconcileOutcome{
		{Status: azure.OutcomeAssigned},
		{Status: azure.OutcomeAssigned},
		{Status: azure.OutcomeAlreadyAssigned},
		{Status: azure.OutcomeFailed},
	}

	summary := Summarize(outcomes)

	assert.Equal(t, ReportSummary{
		azure.OutcomeAssigned:        2,
		azure.OutcomeAlreadyAssigned: 1,
		azure.OutcomeFailed:          1,
	}, summary)
}

func TestWriteReport(t *testing.T) {
	outcomes := []azure.ReconcileOutcome{
		{
			Record: azure.RoleAssignmentRecord{
				DisplayName:        "Alice Admin",
				ObjectType:         azure.ObjectTypeUser,
				Scope:              "/subscriptions/sub-1",
				RoleDefinitionName: "Reader",
			},
			Status: azure.OutcomeAssigned,
		},
		{
			Record: azure.RoleAssignmentRecord{
				DisplayName:        "Ghost Team",
				ObjectType:         azure.ObjectTypeGroup,
				Scope:              "/subscriptions/sub-1",
				RoleDefinitionName: "Contributor",
			},
			Status: azure.OutcomeFailed,
			Err:    errors.New("group \"Ghost Team\" not found in the target directory"),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, outcomes))

	report := buf.String()

	assert.Contains(t, report, "| Assigned | User | Alice Admin | Reader | /subscriptions/sub-1 |  |")
	assert.Contains(t, report, "| Failed | Group | Ghost Team | Contributor | /subscriptions/sub-1 | group \"Ghost Team\" not found in the target directory |")

	// Rows keep input order.
	assert.Less(t, strings.Index(report, "Alice Admin"), strings.Index(report, "Ghost Team"))

	assert.Contains(t, report, "- Assigned: 1")
	assert.Contains(t, report, "- Failed: 1")
	assert.NotContains(t, report, "SkippedRootScope:")
}
