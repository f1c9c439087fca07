// Package engram is the HTTP client for the local Engram capture service.
// The service is opaque to the hooks: two endpoints, single-shot calls,
// no retries.
package engram

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	json "github.com/goccy/go-json"
	"github.com/thebtf/engram-hooks/internal/config"
)

// Observation is the payload stored per captured learning.
type Observation struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Type     string   `json:"type"`
	Project  string   `json:"project"`
	Metadata Metadata `json:"metadata"`
}

// Metadata records capture provenance.
type Metadata struct {
	SessionID  string `json:"session_id"`
	AgentName  string `json:"agent_name"`
	Source     string `json:"source"`
	CapturedAt string `json:"captured_at"`
}

// Client talks to one Engram server instance.
type Client struct {
	base          string
	healthTimeout time.Duration
	saveTimeout   time.Duration
	httpClient    *http.Client
}

// New returns a client for the server the configuration points at.
func New(cfg *config.Config) *Client {
	return &Client{
		base:          cfg.BaseURL(),
		healthTimeout: cfg.HealthTimeout,
		saveTimeout:   cfg.SaveTimeout,
		httpClient:    &http.Client{},
	}
}

// Healthy reports whether the server answers its health endpoint with a 2xx.
// Connection errors and timeouts count as unhealthy.
func (c *Client) Healthy(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, c.healthTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/health", nil)
	if err != nil {
		return false
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

// SaveObservation submits one observation and returns the id the server
// assigned it. Any failure is final; the caller decides whether to move on.
func (c *Client) SaveObservation(ctx context.Context, obs Observation) (int64, error) {
	body, err := json.Marshal(obs)
	if err != nil {
		return 0, fmt.Errorf("encode observation: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.saveTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/observations", bytes.NewReader(body))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 120))
		return 0, fmt.Errorf("engram returned %d: %s", resp.StatusCode, bytes.TrimSpace(snippet))
	}

	var saved struct {
		ID int64 `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&saved); err != nil {
		return 0, fmt.Errorf("decode save response: %w", err)
	}
	return saved.ID, nil
}
