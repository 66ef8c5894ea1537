// Package maest classifies tracks by running the MAEST audio model on a short
// decoded clip and mapping its Discogs labels onto the canonical taxonomy.
package maest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os/exec"
	"strings"
	"time"

	"knobgenre/internal/config"
	"knobgenre/internal/logging"
	"knobgenre/internal/media/pcm"
	"knobgenre/internal/registry"
	"knobgenre/internal/services"
	maestsvc "knobgenre/internal/services/maest"
	"knobgenre/internal/stage"
	"knobgenre/internal/taxonomy"
)

const (
	// DefaultTopK is how many model labels are considered per track.
	DefaultTopK = 5

	name = "maest"
)

// Decoder turns an audio file into a mono clip.
type Decoder interface {
	Decode(ctx context.Context, path string) (pcm.Clip, error)
}

// Model is the inference collaborator.
type Model interface {
	Health(ctx context.Context) (maestsvc.ModelInfo, error)
	Classify(ctx context.Context, clip pcm.Clip, topK int) ([]maestsvc.Prediction, error)
}

// Dependencies bundles the pass 3 collaborators.
type Dependencies struct {
	Decoder Decoder
	Model   Model
	// FFmpegBinary is resolved on PATH by HealthCheck when set.
	FFmpegBinary string
	// Endpoint is reported by HealthCheck; empty means not configured.
	Endpoint string
	Enabled  bool
	TopK     int
}

// Classifier is the pass 3 strategy.
type Classifier struct {
	mediaRoot string
	deps      Dependencies
	logger    *slog.Logger
	loaded    bool
}

// New builds a classifier backed by ffmpeg and the inference server.
func New(cfg *config.Config, logger *slog.Logger) *Classifier {
	decoder := &pcm.Decoder{
		Binary:     cfg.MAEST.FFmpegBinary,
		SampleRate: cfg.MAEST.SampleRate,
		MaxSeconds: cfg.MAEST.ClipSeconds,
		Timeout:    time.Duration(cfg.MAEST.TimeoutSeconds) * time.Second,
	}
	model := maestsvc.NewClient(maestsvc.Config{
		BaseURL:        cfg.MAEST.BaseURL,
		TimeoutSeconds: cfg.MAEST.TimeoutSeconds,
	})
	return NewWithDependencies(cfg.Paths.MediaRoot, Dependencies{
		Decoder:      decoder,
		Model:        model,
		FFmpegBinary: cfg.MAEST.FFmpegBinary,
		Endpoint:     model.BaseURL(),
		Enabled:      cfg.MAEST.Enabled,
		TopK:         cfg.MAEST.TopK,
	}, logger)
}

// NewWithDependencies allows injecting custom collaborators (used for tests).
func NewWithDependencies(mediaRoot string, deps Dependencies, logger *slog.Logger) *Classifier {
	if deps.TopK <= 0 {
		deps.TopK = DefaultTopK
	}
	return &Classifier{
		mediaRoot: mediaRoot,
		deps:      deps,
		logger:    logging.NewComponentLogger(logger, name),
	}
}

// Pass identifies the inference pass.
func (c *Classifier) Pass() registry.Pass {
	return registry.PassInference
}

// UnclassifiedOnly restricts candidates to tracks no earlier pass classified.
func (c *Classifier) UnclassifiedOnly() bool {
	return true
}

// HealthCheck verifies the pass is enabled and its tools are configured. The
// model itself is probed by Load.
func (c *Classifier) HealthCheck(context.Context) stage.Health {
	switch {
	case !c.deps.Enabled:
		return stage.Unhealthy(name, "disabled in configuration")
	case c.deps.Decoder == nil || c.deps.Model == nil:
		return stage.Unhealthy(name, "inference collaborators unavailable")
	case strings.TrimSpace(c.deps.Endpoint) == "":
		return stage.Unhealthy(name, "inference endpoint not configured (set maest.base_url or KNOBGENRE_MAEST_URL)")
	}
	if binary := strings.TrimSpace(c.deps.FFmpegBinary); binary != "" {
		if _, err := exec.LookPath(binary); err != nil {
			return stage.Unhealthy(name, fmt.Sprintf("ffmpeg binary %q not found", binary))
		}
	}
	return stage.Healthy(name)
}

// Load confirms the model is loaded and ready. Called once per run.
func (c *Classifier) Load(ctx context.Context) error {
	info, err := c.deps.Model.Health(ctx)
	if err != nil {
		if !errors.Is(err, services.ErrDependency) && !errors.Is(err, services.ErrConfiguration) {
			err = services.Wrap(services.ErrDependency, name, "load model", "inference server unavailable", err)
		}
		return err
	}
	c.loaded = true
	c.logger.Info("model ready",
		logging.String("model", info.Model),
		logging.Int("labels", info.Labels),
		logging.String("endpoint", c.deps.Endpoint),
	)
	return nil
}

// Classify decodes a clip, runs inference, and maps the first top-K label the
// catalog table knows. The unmapped top label is only logged.
func (c *Classifier) Classify(ctx context.Context, track *registry.Track) (stage.Outcome, error) {
	logger := logging.WithContext(ctx, c.logger)

	clip, err := c.deps.Decoder.Decode(ctx, stage.MediaPath(c.mediaRoot, track))
	if err != nil {
		logger.Debug("audio decode failed", logging.Error(err))
		return stage.NoMatch("audio unreadable", registry.TrackFields{}), nil
	}
	if len(clip.Samples) == 0 {
		return stage.NoMatch("audio empty", registry.TrackFields{}), nil
	}

	predictions, err := c.deps.Model.Classify(ctx, clip, c.deps.TopK)
	if err != nil {
		logger.Debug("inference failed", logging.Error(err))
		return stage.NoMatch("inference failed", registry.TrackFields{}), nil
	}
	predictions = maestsvc.TopK(predictions, c.deps.TopK)
	if len(predictions) == 0 {
		return stage.NoMatch("no predictions", registry.TrackFields{}), nil
	}

	for _, p := range predictions {
		genre, ok := taxonomy.NormalizeCatalogLabel(p.Label)
		if !ok {
			continue
		}
		return stage.Match(registry.Classification{
			Genre:      genre,
			Source:     registry.SourceMAEST,
			Confidence: clampProbability(p.Probability),
			RawLabel:   "maest:" + p.Label,
		}, registry.TrackFields{}), nil
	}

	detail := fmt.Sprintf("maest:%s (unmapped)", predictions[0].Label)
	logger.Info("top predictions unmapped",
		logging.String("top_label", detail),
		logging.Float64("probability", predictions[0].Probability),
	)
	return stage.NoMatch(detail, registry.TrackFields{}), nil
}

func clampProbability(p float64) float64 {
	switch {
	case math.IsNaN(p) || p < 0:
		return 0
	case p > 1:
		return 1
	default:
		return p
	}
}
