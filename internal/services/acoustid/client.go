// Package acoustid looks up Chromaprint fingerprints against the AcoustID
// web service.
package acoustid

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"knobgenre/internal/pacing"
	"knobgenre/internal/services"
)

const (
	defaultBaseURL     = "https://api.acoustid.org/v2"
	defaultHTTPTimeout = 15 * time.Second
	// DefaultInterval keeps requests under the service's three per second.
	DefaultInterval = 350 * time.Millisecond
)

// Config captures the runtime settings for AcoustID lookups.
type Config struct {
	APIKey          string
	BaseURL         string
	RequestInterval time.Duration
	TimeoutSeconds  int
}

// Match is one candidate recording with the fingerprint match score of its result.
type Match struct {
	RecordingID string
	Score       float64
}

// Client wraps the AcoustID lookup endpoint.
type Client struct {
	cfg        Config
	httpClient *http.Client
	gate       *pacing.Gate
}

// Option customizes the client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithGate overrides the request pacing gate.
func WithGate(gate *pacing.Gate) Option {
	return func(c *Client) {
		c.gate = gate
	}
}

// NewClient constructs an AcoustID client.
func NewClient(cfg Config, opts ...Option) *Client {
	timeout := defaultHTTPTimeout
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	client := &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
		gate:       pacing.NewGate("acoustid", cfg.RequestInterval, nil),
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// HasAPIKey reports whether a client key is configured.
func (c *Client) HasAPIKey() bool {
	return c != nil && c.cfg.APIKey != ""
}

type lookupResponse struct {
	Status string `json:"status"`
	Error  *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Results []struct {
		ID         string  `json:"id"`
		Score      float64 `json:"score"`
		Recordings []struct {
			ID string `json:"id"`
		} `json:"recordings"`
	} `json:"results"`
}

// Lookup returns candidate recordings for a fingerprint in service order.
// Every recording of a result inherits that result's score.
func (c *Client) Lookup(ctx context.Context, fingerprint string, duration float64) ([]Match, error) {
	if !c.HasAPIKey() {
		return nil, services.Wrap(services.ErrConfiguration, "acoustid", "lookup", "api key required", nil)
	}
	if strings.TrimSpace(fingerprint) == "" {
		return nil, services.Wrap(services.ErrValidation, "acoustid", "lookup", "empty fingerprint", nil)
	}
	if _, err := c.gate.Wait(ctx); err != nil {
		return nil, err
	}

	form := url.Values{}
	form.Set("client", c.cfg.APIKey)
	form.Set("format", "json")
	form.Set("meta", "recordings")
	form.Set("duration", strconv.Itoa(int(math.Round(duration))))
	form.Set("fingerprint", fingerprint)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/lookup", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("acoustid lookup: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, services.Wrap(services.ErrTransient, "acoustid", "lookup", "request failed", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, services.Wrap(services.ErrTransient, "acoustid", "lookup", "read response", err)
	}

	var payload lookupResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		if resp.StatusCode >= 300 {
			return nil, services.Wrap(services.ErrTransient, "acoustid", "lookup",
				fmt.Sprintf("http %d", resp.StatusCode), nil)
		}
		return nil, services.Wrap(services.ErrTransient, "acoustid", "lookup", "decode response", err)
	}
	if payload.Status != "ok" {
		message := "unexpected status " + strconv.Quote(payload.Status)
		if payload.Error != nil {
			message = fmt.Sprintf("error %d: %s", payload.Error.Code, payload.Error.Message)
		}
		return nil, services.Wrap(services.ErrTransient, "acoustid", "lookup", message, nil)
	}

	var matches []Match
	for _, result := range payload.Results {
		for _, recording := range result.Recordings {
			if id := strings.TrimSpace(recording.ID); id != "" {
				matches = append(matches, Match{RecordingID: id, Score: result.Score})
			}
		}
	}
	return matches, nil
}
