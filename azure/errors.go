package azure

import (
	"errors"
	"fmt"
)

var (
	// ErrAssignmentExists marks a duplicate create on replay. The reconciler
	// reports it as a benign outcome instead of a failure.
	ErrAssignmentExists = errors.New("role assignment already exists")

	// ErrScopeAccessDenied marks a scope the credential cannot read or write.
	// Per-scope work is skipped, the run continues.
	ErrScopeAccessDenied = errors.New("access to scope denied")
)

type ResolveFailure int

const (
	ResolveNotFound ResolveFailure = iota
	ResolveAmbiguous
	ResolveUnsupported
)

func (f ResolveFailure) String() string {
	switch f {
	case ResolveNotFound:
		return "NotFound"
	case ResolveAmbiguous:
		return "Ambiguous"
	case ResolveUnsupported:
		return "Unsupported"
	default:
		return fmt.Sprintf("ResolveFailure(%d)", f)
	}
}

// ResolveError is a terminal per-record resolution failure. It never aborts
// the batch; the reconciler records it and moves on.
type ResolveError struct {
	Failure    ResolveFailure
	ObjectType ObjectType
	Name       string
	Matches    int
}

func (e *ResolveError) Error() string {
	switch e.Failure {
	case ResolveAmbiguous:
		return fmt.Sprintf("%s %q is ambiguous in the target directory (%d matches)", e.ObjectType, e.Name, e.Matches)
	case ResolveUnsupported:
		return fmt.Sprintf("%s %q cannot be resolved automatically, assign manually", e.ObjectType, e.Name)
	default:
		return fmt.Sprintf("%s %q not found in the target directory", e.ObjectType, e.Name)
	}
}
