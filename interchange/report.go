package interchange

import (
	"fmt"
	"io"

	"github.com/entraops/azrm/azure"
)

// ReportSummary counts outcomes by status.
type ReportSummary map[azure.OutcomeStatus]int

func Summarize(outcomes []azure.ReconcileOutcome) ReportSummary {
	summary := make(ReportSummary)

	for _, outcome := range outcomes {
		summary[outcome.Status]++
	}

	return summary
}

// WriteReport renders the per-record outcomes as a markdown table, preserving
// input order, followed by the summary counts.
func WriteReport(w io.Writer, outcomes []azure.ReconcileOutcome) error {
	if _, err := fmt.Fprintf(w, "# Role assignment import report\n\n"); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "| Status | Type | Principal | Role | Scope | Detail |\n|---|---|---|---|---|---|\n"); err != nil {
		return err
	}

	for _, outcome := range outcomes {
		detail := ""
		if outcome.Err != nil {
			detail = outcome.Err.Error()
		}

		record := outcome.Record

		_, err := fmt.Fprintf(w, "| %s | %s | %s | %s | %s | %s |\n",
			outcome.Status, record.ObjectType, record.DisplayName, record.RoleDefinitionName, record.Scope, detail)
		if err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "\n## Summary\n\n"); err != nil {
		return err
	}

	summary := Summarize(outcomes)

	for _, status := range azure.OutcomeStatusValues() {
		if summary[status] == 0 {
			continue
		}

		if _, err := fmt.Fprintf(w, "- %s: %d\n", status, summary[status]); err != nil {
			return err
		}
	}

	return nil
}
