package global

const (
	AzTenantId       = "tenant-id"
	AzClientId       = "client-id"
	AzSecret         = "client-secret"
	AzSubscriptionId = "subscription"

	// DirectoryPseudoSubscription is the placeholder subscription every tenant
	// carries for directory-only access. It holds no resources and cannot take
	// role assignments, so export always skips it.
	DirectoryPseudoSubscription = "Access to Azure Active Directory"
)
