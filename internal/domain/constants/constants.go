// Package constants contains string identifiers shared across layers.
package constants

// Deployment environments
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Visibility policy variants. A deployment runs exactly one of them.
const (
	PolicyCommunity   = "community"
	PolicyConnections = "connections"
)

// Location event types published after a successful write.
const (
	LocationEventLogged  = "location.logged"
	LocationEventCleared = "location.cleared"
)
