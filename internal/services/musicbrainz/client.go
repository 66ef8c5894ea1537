// Package musicbrainz fetches community genre tags for MusicBrainz recordings.
package musicbrainz

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"knobgenre/internal/pacing"
	"knobgenre/internal/services"
)

const (
	defaultBaseURL = "https://musicbrainz.org/ws/2"
	// DefaultTimeout bounds one catalog request.
	DefaultTimeout = 10 * time.Second
	// DefaultInterval respects the service's one request per second budget.
	DefaultInterval  = 1100 * time.Millisecond
	defaultUserAgent = "knobgenre/1.0 (contact@example.org)"
)

// Config captures the runtime settings for catalog lookups.
type Config struct {
	BaseURL         string
	UserAgent       string
	RequestInterval time.Duration
	TimeoutSeconds  int
}

// Tag is a community tag with its vote count.
type Tag struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Client wraps the recording lookup endpoint.
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

// NewClient constructs a catalog client.
func NewClient(cfg Config, opts ...Option) *Client {
	timeout := DefaultTimeout
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if strings.TrimSpace(cfg.UserAgent) == "" {
		cfg.UserAgent = defaultUserAgent
	}
	client := &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
		gate:       pacing.NewGate("musicbrainz", cfg.RequestInterval, nil),
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// RecordingTags returns the tags of a recording sorted by descending vote count.
// Tags with equal counts keep the service's order.
func (c *Client) RecordingTags(ctx context.Context, recordingID string) ([]Tag, error) {
	recordingID = strings.TrimSpace(recordingID)
	if recordingID == "" {
		return nil, services.Wrap(services.ErrValidation, "musicbrainz", "recording tags", "empty recording id", nil)
	}
	if _, err := c.gate.Wait(ctx); err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/recording/%s?inc=tags&fmt=json", c.cfg.BaseURL, url.PathEscape(recordingID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("musicbrainz: build request: %w", err)
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, services.Wrap(services.ErrTransient, "musicbrainz", "recording tags", "request failed", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, services.Wrap(services.ErrNotFound, "musicbrainz", "recording tags", recordingID, nil)
	case resp.StatusCode >= 300:
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, services.Wrap(services.ErrTransient, "musicbrainz", "recording tags",
			fmt.Sprintf("http %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet))), nil)
	}

	var payload struct {
		Tags []Tag `json:"tags"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 4<<20)).Decode(&payload); err != nil {
		return nil, services.Wrap(services.ErrTransient, "musicbrainz", "recording tags", "decode response", err)
	}

	tags := make([]Tag, 0, len(payload.Tags))
	for _, tag := range payload.Tags {
		if tag.Name = strings.TrimSpace(tag.Name); tag.Name != "" {
			tags = append(tags, tag)
		}
	}
	sort.SliceStable(tags, func(i, j int) bool {
		return tags[i].Count > tags[j].Count
	})
	return tags, nil
}
