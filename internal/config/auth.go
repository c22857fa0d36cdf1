package config

import "fmt"

// AuthConfig holds bearer-token verification configuration.
// Tokens are issued by the external identity provider; this service only
// verifies the signature and reads the subject and email claims.
type AuthConfig struct {
	// JWTSecret is the HS256 shared secret used to verify tokens.
	JWTSecret string
}

// LoadAuthConfigFromEnv loads auth configuration from environment variables.
func LoadAuthConfigFromEnv() AuthConfig {
	return AuthConfig{
		JWTSecret: GetEnv("AUTH_JWT_SECRET", ""),
	}
}

// Validate validates auth configuration.
func (c AuthConfig) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("AUTH_JWT_SECRET must be set")
	}
	return nil
}
