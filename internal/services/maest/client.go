// Package maest talks to the local audio-tagging inference server that hosts
// the Discogs-trained MAEST model.
//
// The server exposes two endpoints:
//
//	GET  /health   -> {"status":"ok","model":"...","labels":400}
//	POST /classify -> {"predictions":[{"label":"Electronic---Dubstep","probability":0.83}]}
//
// Classify sends raw little-endian float32 mono samples with the sample rate
// in the query string. The model runs on CPU, so callers keep at most one
// request in flight.
package maest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"knobgenre/internal/media/pcm"
	"knobgenre/internal/services"
)

const defaultHTTPTimeout = 120 * time.Second

// Config captures the runtime settings for the inference server.
type Config struct {
	BaseURL        string
	TimeoutSeconds int
}

// ModelInfo describes the loaded model.
type ModelInfo struct {
	Status string `json:"status"`
	Model  string `json:"model"`
	Labels int    `json:"labels"`
}

// Prediction is one label with its sigmoid probability.
type Prediction struct {
	Label       string  `json:"label"`
	Probability float64 `json:"probability"`
}

// Client wraps the inference server API.
type Client struct {
	cfg        Config
	httpClient *http.Client
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

// NewClient constructs an inference client.
func NewClient(cfg Config, opts ...Option) *Client {
	timeout := defaultHTTPTimeout
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	client := &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// Configured reports whether an endpoint is set.
func (c *Client) Configured() bool {
	return c != nil && c.cfg.BaseURL != ""
}

// BaseURL returns the configured endpoint.
func (c *Client) BaseURL() string {
	if c == nil {
		return ""
	}
	return c.cfg.BaseURL
}

// Health asks the server whether the model is loaded.
func (c *Client) Health(ctx context.Context) (ModelInfo, error) {
	if !c.Configured() {
		return ModelInfo{}, services.Wrap(services.ErrConfiguration, "maest", "health", "base url required", nil)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+"/health", nil)
	if err != nil {
		return ModelInfo{}, fmt.Errorf("maest health: build request: %w", err)
	}
	var info ModelInfo
	if err := c.do(req, "health", &info); err != nil {
		return ModelInfo{}, err
	}
	if !strings.EqualFold(info.Status, "ok") {
		return ModelInfo{}, services.Wrap(services.ErrDependency, "maest", "health",
			fmt.Sprintf("model status %q", info.Status), nil)
	}
	return info, nil
}

// Classify runs inference on a decoded clip and returns at most topK
// predictions ordered by descending probability. A non-positive topK keeps all.
func (c *Client) Classify(ctx context.Context, clip pcm.Clip, topK int) ([]Prediction, error) {
	if !c.Configured() {
		return nil, services.Wrap(services.ErrConfiguration, "maest", "classify", "base url required", nil)
	}
	if len(clip.Samples) == 0 {
		return nil, services.Wrap(services.ErrValidation, "maest", "classify", "empty clip", nil)
	}

	query := url.Values{}
	query.Set("sample_rate", strconv.Itoa(clip.SampleRate))
	body := bytes.NewReader(pcm.EncodeFloat32LE(clip.Samples))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/classify?"+query.Encode(), body)
	if err != nil {
		return nil, fmt.Errorf("maest classify: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/octet-stream")

	var payload struct {
		Predictions []Prediction `json:"predictions"`
	}
	if err := c.do(req, "classify", &payload); err != nil {
		return nil, err
	}
	return TopK(payload.Predictions, topK), nil
}

// TopK sorts predictions by descending probability and keeps the first k.
func TopK(predictions []Prediction, k int) []Prediction {
	out := make([]Prediction, 0, len(predictions))
	for _, p := range predictions {
		if p.Label = strings.TrimSpace(p.Label); p.Label != "" {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Probability > out[j].Probability
	})
	if k > 0 && len(out) > k {
		out = out[:k]
	}
	return out
}

func (c *Client) do(req *http.Request, operation string, into any) error {
	req.Header.Set("Accept", "application/json")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return services.Wrap(services.ErrDependency, "maest", operation, "request failed", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		marker := services.ErrTransient
		if resp.StatusCode == http.StatusServiceUnavailable {
			marker = services.ErrDependency
		}
		return services.Wrap(marker, "maest", operation,
			fmt.Sprintf("http %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet))), nil)
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 8<<20)).Decode(into); err != nil {
		return services.Wrap(services.ErrTransient, "maest", operation, "decode response", err)
	}
	return nil
}
