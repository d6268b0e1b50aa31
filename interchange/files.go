package interchange

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/entraops/azrm/azure"
	"github.com/entraops/azrm/global"
)

var logger hclog.Logger

func init() {
	logger = global.Logger()
}

const (
	aggregateFile = "assignments.csv"
	rolesDir      = "roles"
	groupsDir     = "groups"
)

// DirectorySink lays an export out on disk:
//
//	<dir>/assignments.csv               every scope, aggregated
//	<dir>/assignments-<subscription>.csv
//	<dir>/roles/<role name>.json        custom role definitions
//	<dir>/groups/<group name>.json      membership snapshots
type DirectorySink struct {
	dir string
}

func NewDirectorySink(dir string) (*DirectorySink, error) {
	for _, sub := range []string{"", rolesDir, groupsDir} {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0o755); err != nil {
			return nil, fmt.Errorf("creating output directory: %w", err)
		}
	}

	return &DirectorySink{dir: dir}, nil
}

func (s *DirectorySink) WriteAssignments(subscriptionId string, records []azure.RoleAssignmentRecord) error {
	return s.writeAssignmentsFile(fmt.Sprintf("assignments-%s.csv", sanitizeFileName(subscriptionId)), records)
}

func (s *DirectorySink) WriteAllAssignments(records []azure.RoleAssignmentRecord) error {
	return s.writeAssignmentsFile(aggregateFile, records)
}

func (s *DirectorySink) writeAssignmentsFile(name string, records []azure.RoleAssignmentRecord) error {
	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return fmt.Errorf("creating %s: %w", name, err)
	}
	defer f.Close()

	if err = WriteAssignments(f, records); err != nil {
		return err
	}

	return f.Close()
}

func (s *DirectorySink) WriteCustomRoleDefinition(definition azure.RoleDefinition) error {
	path := filepath.Join(s.dir, rolesDir, sanitizeFileName(definition.Name)+".json")

	payload, err := json.MarshalIndent(json.RawMessage(definition.Payload), "", "  ")
	if err != nil {
		return fmt.Errorf("encoding role definition %q: %w", definition.Name, err)
	}

	return os.WriteFile(path, payload, 0o644)
}

// WriteGroupSnapshot persists a membership snapshot once: an existing file
// for the same group name is left untouched.
func (s *DirectorySink) WriteGroupSnapshot(snapshot azure.GroupMembershipSnapshot) error {
	path := filepath.Join(s.dir, groupsDir, sanitizeFileName(snapshot.GroupDisplayName)+".json")

	if _, err := os.Stat(path); err == nil {
		logger.Debug("group snapshot already captured", "group", snapshot.GroupDisplayName)
		return nil
	}

	payload, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding group snapshot %q: %w", snapshot.GroupDisplayName, err)
	}

	return os.WriteFile(path, payload, 0o644)
}

// sanitizeFileName keeps name-keyed files inside the sink directory no matter
// what a display name contains.
func sanitizeFileName(name string) string {
	replacer := strings.NewReplacer("/", "-", "\\", "-", ":", "-", "*", "-", "?", "-", "\"", "-", "<", "-", ">", "-", "|", "-")

	cleaned := strings.TrimSpace(replacer.Replace(name))
	if cleaned == "" {
		return "unnamed"
	}

	return cleaned
}
