// Package routes provides shared API route constants used by the
// AgentDesk dashboard clients to prevent path mismatches.
package routes

// API route paths under the versioned prefix. Collection routes are listed
// here; item routes are built by appending the entity ID.
const (
	// AuthToken exchanges an identity-provider token for a short-lived access token.
	AuthToken = "/auth/token" // #nosec G101 -- route path, not a credential

	// AuthMe returns the current authenticated user's profile.
	AuthMe = "/auth/me"

	// AuthLogout revokes the current session server-side.
	AuthLogout = "/auth/logout"

	// Agents is the AI agent collection.
	Agents = "/agents"

	// Integrations is the messaging-platform integration collection.
	Integrations = "/integrations"

	// Projects is the project collection.
	Projects = "/projects"

	// Tasks is the task collection (filterable by project and status).
	Tasks = "/tasks"

	// TimeEntries is the logged-time collection.
	TimeEntries = "/time-entries"
)
