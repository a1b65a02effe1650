package constant

// Roles form a closed set; anything else on a user record is a data error.
const (
	RoleUser       = "user"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

const (
	DefaultAccessExpiryMin  = 15
	DefaultRefreshExpiryMin = 10080 // 7 days

	DefaultBruteForceMaxAttempts = 5
	DefaultLockoutSeconds        = 900

	DefaultMaxActiveTokensPerUser = 5

	DefaultBcryptCost = 12

	// APIKeyMarker prefixes every raw API key so it can be told apart
	// from a JWT in the bearer slot.
	DefaultAPIKeyMarker = "ask_"

	// APIKeyPrefixLen is the number of secret characters (after the
	// marker) stored in clear for candidate narrowing.
	APIKeyPrefixLen = 8

	// APIKeySecretBytes of entropy go into each generated key.
	APIKeySecretBytes = 32
)
