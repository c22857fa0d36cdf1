package config

import "fmt"

// Store driver names.
const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

// StoreConfig selects the persistence backend.
type StoreConfig struct {
	// Driver is the store backend (postgres, memory).
	Driver string
}

// LoadStoreConfigFromEnv loads store configuration from environment variables.
func LoadStoreConfigFromEnv() StoreConfig {
	return StoreConfig{
		Driver: GetEnv("STORE_DRIVER", StoreDriverPostgres),
	}
}

// Validate validates store configuration.
func (c StoreConfig) Validate() error {
	switch c.Driver {
	case StoreDriverPostgres, StoreDriverMemory:
		return nil
	default:
		return fmt.Errorf("invalid STORE_DRIVER: %s (must be: postgres, memory)", c.Driver)
	}
}
