package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	apperrors "emojiexplainer/internal/errors"
)

// Client talks to the Groq emoji-explanation API. It is safe for concurrent
// use; the embedded http.Client enforces a bounded timeout so a dead provider
// cannot hang a handler.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient creates a Groq client against baseURL.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
	}
}

type explainRequest struct {
	Emoji string `json:"emoji"`
}

type explainResponse struct {
	Meaning string `json:"meaning"`
}

// Explain asks the provider for the meaning of a single emoji character.
// Transport failures and non-2xx statuses map to ErrProviderUnavailable;
// a payload without a meaning maps to ErrInvalidResponse.
func (c *Client) Explain(ctx context.Context, emoji string) (string, error) {
	payload, err := json.Marshal(explainRequest{Emoji: emoji})
	if err != nil {
		return "", fmt.Errorf("marshal explain request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/emoji", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build explain request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: status %d", apperrors.ErrProviderUnavailable, resp.StatusCode)
	}

	var out explainResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrInvalidResponse, err)
	}
	if out.Meaning == "" {
		return "", fmt.Errorf("%w: missing meaning field", apperrors.ErrInvalidResponse)
	}
	return out.Meaning, nil
}

// Status probes the provider's status endpoint and returns the HTTP status
// code it answered with.
func (c *Client) Status(ctx context.Context) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/status", nil)
	if err != nil {
		return 0, fmt.Errorf("build status request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", apperrors.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	return resp.StatusCode, nil
}
