package authorization

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"

	"github.com/entraops/azrm/azure"
)

// classifyCreateError folds the ARM error surface into the outcome taxonomy:
// duplicate creates are benign, forbidden scopes are skippable, everything
// else stays a provider error for that record.
func classifyCreateError(err error) error {
	var respErr *azcore.ResponseError

	if errors.As(err, &respErr) {
		switch {
		case respErr.ErrorCode == "RoleAssignmentExists" || respErr.StatusCode == http.StatusConflict:
			return azure.ErrAssignmentExists
		case respErr.StatusCode == http.StatusForbidden:
			return fmt.Errorf("%w: %v", azure.ErrScopeAccessDenied, err)
		}
	}

	if strings.Contains(err.Error(), "already exists") {
		return azure.ErrAssignmentExists
	}

	return err
}

func classifyScopeError(err error) error {
	var respErr *azcore.ResponseError

	if errors.As(err, &respErr) && respErr.StatusCode == http.StatusForbidden {
		return fmt.Errorf("%w: %v", azure.ErrScopeAccessDenied, err)
	}

	return err
}
