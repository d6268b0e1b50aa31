package authorization

import (
	"errors"
	"net/http"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/stretchr/testify/assert"

	"github.com/entraops/azrm/azure"
)

func TestClassifyCreateError(t *testing.T) {
	opaque := errors.New("connection reset")

	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "RoleAssignmentExists code",
			err:  &azcore.ResponseError{ErrorCode: "RoleAssignmentExists", StatusCode: http.StatusConflict},
			want: azure.ErrAssignmentExists,
		},
		{
			name: "conflict without a code",
			err:  &azcore.ResponseError{StatusCode: http.StatusConflict},
			want: azure.ErrAssignmentExists,
		},
		{
			name: "forbidden",
			err:  &azcore.ResponseError{ErrorCode: "AuthorizationFailed", StatusCode: http.StatusForbidden},
			want: azure.ErrScopeAccessDenied,
		},
		{
			name: "duplicate reported as plain text",
			err:  errors.New("the role assignment already exists"),
			want: azure.ErrAssignmentExists,
		},
		{
			name: "anything else passes through",
			err:  opaque,
			want: opaque,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, classifyCreateError(tt.err), tt.want)
		})
	}
}

func TestClassifyScopeError(t *testing.T) {
	forbidden := &azcore.ResponseError{ErrorCode: "AuthorizationFailed", StatusCode: http.StatusForbidden}
	assert.ErrorIs(t, classifyScopeError(forbidden), azure.ErrScopeAccessDenied)

	notFound := &azcore.ResponseError{StatusCode: http.StatusNotFound}
	assert.Equal(t, error(notFound), classifyScopeError(notFound))
}

func TestSubscriptionFromScope(t *testing.T) {
	tests := []struct {
		name    string
		scope   string
		want    string
		wantErr bool
	}{
		{name: "subscription root", scope: "/subscriptions/sub-1", want: "sub-1"},
		{name: "nested scope", scope: "/subscriptions/sub-1/resourceGroups/rg-app", want: "sub-1"},
		{name: "root scope", scope: "/", wantErr: true},
		{name: "management group", scope: "/providers/Microsoft.Management/managementGroups/mg-1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := subscriptionFromScope(tt.scope)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
