// Package constants holds configuration values shared across layers.
package constants

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Storage drivers
const (
	StorageDriverMemory   = "memory"
	StorageDriverPostgres = "postgres"
)

// Key lock drivers
const (
	LockDriverMemory = "memory"
	LockDriverRedis  = "redis"
)

// Deployment environments
const (
	EnvLocal   = "local"
	EnvDevelop = "develop"
)
