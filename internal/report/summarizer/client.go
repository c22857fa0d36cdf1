// Package summarizer provides an HTTP client for the hosted
// text-summarization API. Failures here never reach API consumers; the
// report service falls back to a locally computed summary.
package summarizer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	appConfig "github.com/teampulse/standup/internal/config"
)

// Generation parameters sent with every request: a fixed output length band
// and non-sampling decoding.
const (
	maxLength = 300
	minLength = 50
)

// Client calls the summarization endpoint with a bounded timeout.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *zap.SugaredLogger
}

// NewClient creates a new summarizer client instance.
func NewClient(cfg appConfig.SummarizerConfig, logger *zap.SugaredLogger) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}
}

type request struct {
	Inputs     string     `json:"inputs"`
	Parameters parameters `json:"parameters"`
}

type parameters struct {
	MaxLength int  `json:"max_length"`
	MinLength int  `json:"min_length"`
	DoSample  bool `json:"do_sample"`
}

type result struct {
	SummaryText   string `json:"summary_text"`
	GeneratedText string `json:"generated_text"`
}

// Summarize sends the input text and returns the generated summary.
// Timeouts, non-2xx statuses, malformed bodies and empty results all
// surface as errors.
func (c *Client) Summarize(ctx context.Context, input string) (string, error) {
	payload, err := json.Marshal(request{
		Inputs: input,
		Parameters: parameters{
			MaxLength: maxLength,
			MinLength: minLength,
			DoSample:  false,
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("summarizer call: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Debugw("summarizer returned non-success status", "status", resp.StatusCode)
		return "", fmt.Errorf("summarizer status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	var results []result
	if err := json.Unmarshal(data, &results); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(results) == 0 {
		return "", fmt.Errorf("empty summarizer response")
	}

	if results[0].SummaryText != "" {
		return results[0].SummaryText, nil
	}
	if results[0].GeneratedText != "" {
		return results[0].GeneratedText, nil
	}
	return "", fmt.Errorf("summarizer response has no text")
}
