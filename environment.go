package sdk

import "fmt"

// Environment selects which backend origin the client talks to.
type Environment string

const (
	// EnvironmentDevelopment targets a locally running API server.
	EnvironmentDevelopment Environment = "development"
	// EnvironmentProduction targets the hosted AgentDesk API.
	EnvironmentProduction Environment = "production"
)

const (
	developmentBaseURL = "http://localhost:8000/api/v1"
	productionBaseURL  = "https://api.agentdesk.io/api/v1"
)

// BaseURL returns the backend origin for the environment.
func (e Environment) BaseURL() (string, error) {
	switch e {
	case EnvironmentDevelopment:
		return developmentBaseURL, nil
	case EnvironmentProduction, "":
		return productionBaseURL, nil
	default:
		return "", ConfigError{Reason: fmt.Sprintf("unknown environment %q", string(e))}
	}
}

// EnvironmentFromString resolves a runtime flag value ("dev", "development",
// "prod", "production") to an Environment. Empty input selects production.
func EnvironmentFromString(s string) (Environment, error) {
	switch s {
	case "dev", "development":
		return EnvironmentDevelopment, nil
	case "prod", "production", "":
		return EnvironmentProduction, nil
	default:
		return "", ConfigError{Reason: fmt.Sprintf("unknown environment %q", s)}
	}
}
