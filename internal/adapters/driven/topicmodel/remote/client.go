// Package remote provides a topic model adapter that calls a pre-trained
// model served over HTTP.
//
// The server exposes:
//
//	POST /transform            {"documents": [...]} -> {"topics": [...], "probabilities": [...]}
//	GET  /topics/{id}/keywords {"keywords": [{"word": "...", "score": 0.1}]}
//	GET  /health
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/gutentopics/gutentopics/internal/core/domain"
	"github.com/gutentopics/gutentopics/internal/core/ports/driven"
	"github.com/gutentopics/gutentopics/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.TopicModel = (*Client)(nil)

// Default configuration values.
const (
	DefaultBaseURL           = "http://localhost:8765"
	DefaultTimeout           = 30 * time.Second
	DefaultRequestsPerSecond = 5.0
	DefaultBurst             = 5
)

// maxErrorBody caps how much of an error response is quoted.
const maxErrorBody = 512

// Config holds configuration for the topic model client.
type Config struct {
	// BaseURL is the model server base URL.
	BaseURL string

	// Timeout is the per-request timeout.
	Timeout time.Duration

	// RequestsPerSecond is the sustained request rate.
	RequestsPerSecond float64

	// Burst is the maximum burst size.
	Burst int
}

// ConfigFrom derives a client config from application settings.
func ConfigFrom(s domain.TopicModelSettings) Config {
	return Config{
		BaseURL:           s.BaseURL,
		Timeout:           s.Timeout,
		RequestsPerSecond: s.RequestsPerSecond,
		Burst:             s.Burst,
	}
}

// Client talks to a remote topic model server.
// Keywords of a topic never change for a trained model, so they are cached.
type Client struct {
	client  *http.Client
	baseURL string
	limiter *rate.Limiter

	mu       sync.RWMutex
	keywords map[int][]domain.Keyword
}

type transformRequest struct {
	Documents []string `json:"documents"`
}

type transformResponse struct {
	Topics        []int     `json:"topics"`
	Probabilities []float64 `json:"probabilities"`
}

type keywordsResponse struct {
	Keywords []domain.Keyword `json:"keywords"`
}

// New creates a new topic model client.
func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = DefaultRequestsPerSecond
	}
	if cfg.Burst <= 0 {
		cfg.Burst = DefaultBurst
	}

	return &Client{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		limiter:  rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
		keywords: make(map[int][]domain.Keyword),
	}
}

// Transform assigns each document of the batch a topic id and probability.
func (c *Client) Transform(ctx context.Context, documents []string) ([]int, []float64, error) {
	body, err := json.Marshal(transformRequest{Documents: documents})
	if err != nil {
		return nil, nil, fmt.Errorf("marshal request: %w", err)
	}

	var resp transformResponse
	if err := c.do(ctx, http.MethodPost, "/transform", body, &resp); err != nil {
		return nil, nil, err
	}

	logger.Debug("topic model transform", "documents", len(documents), "topics", resp.Topics)
	return resp.Topics, resp.Probabilities, nil
}

// TopicKeywords returns the representative words of a topic.
func (c *Client) TopicKeywords(ctx context.Context, topicID int) ([]domain.Keyword, error) {
	c.mu.RLock()
	cached, ok := c.keywords[topicID]
	c.mu.RUnlock()
	if ok {
		return cached, nil
	}

	var resp keywordsResponse
	path := "/topics/" + strconv.Itoa(topicID) + "/keywords"
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.keywords[topicID] = resp.Keywords
	c.mu.Unlock()

	return resp.Keywords, nil
}

// Ping checks the model server is reachable.
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil)
}

// do sends one rate-limited request and decodes a JSON response into out
// when out is non-nil.
func (c *Client) do(ctx context.Context, method, path string, body []byte, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("topic model: rate limit wait: %w", err)
	}

	var reader io.Reader = http.NoBody
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("topic model: create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("topic model: send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		if err != nil {
			return fmt.Errorf("topic model: %s %s returned status %d", method, path, resp.StatusCode)
		}
		return fmt.Errorf("topic model: %s %s returned status %d: %s",
			method, path, resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("topic model: decode response: %w", err)
	}
	return nil
}
