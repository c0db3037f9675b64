package sdk

// Version is the published SDK version.
// 0.4.0: Coalesce concurrent token refreshes into a single in-flight exchange.
// 0.3.0: Breaking - Config takes a TokenStore + IdentityProvider instead of a
// raw refresh callback; session-expired failures now clear the stored token.
// 0.2.0: Add Integrations.Verify and task filtering by project/status.
const Version = "0.4.0"
