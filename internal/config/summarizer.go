package config

import (
	"fmt"
	"time"
)

// SummarizerConfig holds configuration for the external text-summarization API.
type SummarizerConfig struct {
	// BaseURL is the summarization endpoint URL.
	BaseURL string
	// APIKey is the bearer token sent with each request.
	APIKey string
	// Timeout bounds the summarization call; expiry takes the local fallback path.
	Timeout time.Duration
}

// LoadSummarizerConfigFromEnv loads summarizer configuration from environment variables.
func LoadSummarizerConfigFromEnv() SummarizerConfig {
	return SummarizerConfig{
		BaseURL: GetEnv("SUMMARIZER_URL", "https://api-inference.huggingface.co/models/facebook/bart-large-cnn"),
		APIKey:  GetEnv("SUMMARIZER_API_KEY", ""),
		Timeout: GetEnvDuration("SUMMARIZER_TIMEOUT", 10*time.Second),
	}
}

// Validate validates summarizer configuration.
func (c SummarizerConfig) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("SUMMARIZER_URL must be set")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("SUMMARIZER_TIMEOUT must be greater than 0")
	}
	return nil
}
