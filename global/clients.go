package global

import (
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
)

// CreateCredential builds the token credential shared by the ARM and Graph
// clients. A configured client secret selects the client-secret flow; without
// one the default chain (CLI, environment, managed identity) is used.
func CreateCredential(tenantId, clientId, secret string) (azcore.TokenCredential, error) {
	if secret == "" {
		return azidentity.NewDefaultAzureCredential(nil)
	}

	if clientId == "" {
		return nil, fmt.Errorf("missing input parameter %q", AzClientId)
	}

	if tenantId == "" {
		return nil, fmt.Errorf("missing input parameter %q", AzTenantId)
	}

	// Initializing the client credential
	return azidentity.NewClientSecretCredential(tenantId, clientId, secret, nil)
}
