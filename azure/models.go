package azure

import (
	"encoding/json"
	"strings"
)

// RootScope is the directory-root scope. Assignments recorded there cannot be
// re-created inside a subscription context and are always skipped on import.
const RootScope = "/"

//go:generate go run github.com/raito-io/enumer -type=ObjectType -trimprefix=ObjectType -json
type ObjectType int

const (
	ObjectTypeUnknown ObjectType = iota
	ObjectTypeUser
	ObjectTypeGroup
	ObjectTypeServicePrincipal
)

// RoleAssignmentRecord is one exported principal-to-role-to-scope binding.
// ObjectID and RoleDefinitionID are source-tenant identifiers and are never
// reused directly on import; the resolver derives fresh ones for the target.
type RoleAssignmentRecord struct {
	ObjectID           string     `json:"objectId"`
	DisplayName        string     `json:"displayName"`
	ObjectType         ObjectType `json:"objectType"`
	Scope              string     `json:"scope"`
	SignInName         string     `json:"signInName,omitempty"`
	RoleDefinitionID   string     `json:"roleDefinitionId"`
	RoleDefinitionName string     `json:"roleDefinitionName"`
}

// Principal is a directory entity that can hold permissions.
type Principal struct {
	ObjectID    string     `json:"objectId"`
	DisplayName string     `json:"displayName"`
	SignInName  string     `json:"signInName,omitempty"`
	Type        ObjectType `json:"type"`
}

// ResolvedPrincipal is the target-tenant identity a record resolved to. It is
// only used transiently during reconciliation and never persisted.
type ResolvedPrincipal struct {
	ObjectID string
	Type     ObjectType
}

type VerifiedDomain struct {
	Name      string `json:"name"`
	IsInitial bool   `json:"isInitial"`
}

type Subscription struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	State       string `json:"state,omitempty"`
}

// RoleDefinition carries the resolved display name next to the full ARM
// payload so custom definitions can be exported without losing fields.
type RoleDefinition struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Custom  bool            `json:"custom"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type GroupMembershipSnapshot struct {
	GroupDisplayName string      `json:"groupDisplayName"`
	Members          []Principal `json:"members"`
}

//go:generate go run github.com/raito-io/enumer -type=OutcomeStatus -trimprefix=Outcome -json
type OutcomeStatus int

const (
	OutcomeAssigned OutcomeStatus = iota
	OutcomeAlreadyAssigned
	OutcomeSkippedRootScope
	OutcomeSkippedServicePrincipal
	OutcomeFailed
)

// ReconcileOutcome is the per-record result of an import run, reported in
// input order.
type ReconcileOutcome struct {
	Record RoleAssignmentRecord
	Status OutcomeStatus
	Err    error
}

// SubscriptionScope returns the root scope path of a subscription.
func SubscriptionScope(subscriptionId string) string {
	return "/subscriptions/" + subscriptionId
}

// ReRootScope rewrites the subscription id embedded in a scope (or in a
// role-definition id, which shares the same path shape) to the target
// subscription, keeping any nested resource path intact.
func ReRootScope(scope, targetSubscriptionId string) string {
	const prefix = "/subscriptions/"

	if !strings.HasPrefix(scope, prefix) {
		return scope
	}

	rest := scope[len(prefix):]
	if idx := strings.Index(rest, "/"); idx >= 0 {
		return prefix + targetSubscriptionId + rest[idx:]
	}

	return prefix + targetSubscriptionId
}
