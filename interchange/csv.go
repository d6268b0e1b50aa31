// Package interchange reads and writes the portable export format: tabular
// assignment rows, per-name JSON payload files and the import report.
package interchange

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/entraops/azrm/azure"
)

// assignmentHeader is the interchange schema. Column order is part of the
// contract: files written by one run must parse in any other.
var assignmentHeader = []string{"ObjectId", "DisplayName", "ObjectType", "Scope", "SignInName", "RoleDefinitionId", "RoleDefinitionName"}

func WriteAssignments(w io.Writer, records []azure.RoleAssignmentRecord) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(assignmentHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, record := range records {
		row := []string{
			record.ObjectID,
			record.DisplayName,
			record.ObjectType.String(),
			record.Scope,
			record.SignInName,
			record.RoleDefinitionID,
			record.RoleDefinitionName,
		}

		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing assignment row: %w", err)
		}
	}

	cw.Flush()

	return cw.Error()
}

func ReadAssignments(r io.Reader) ([]azure.RoleAssignmentRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(assignmentHeader)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	for i, column := range assignmentHeader {
		if header[i] != column {
			return nil, fmt.Errorf("unexpected column %q, want %q", header[i], column)
		}
	}

	records := make([]azure.RoleAssignmentRecord, 0)

	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("reading assignment row: %w", err)
		}

		objectType, err := azure.ObjectTypeString(row[2])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", len(records)+2, err)
		}

		records = append(records, azure.RoleAssignmentRecord{
			ObjectID:           row[0],
			DisplayName:        row[1],
			ObjectType:         objectType,
			Scope:              row[3],
			SignInName:         row[4],
			RoleDefinitionID:   row[5],
			RoleDefinitionName: row[6],
		})
	}

	return records, nil
}
