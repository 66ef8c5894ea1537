// Package acoustid classifies tracks by fingerprinting the audio, matching it
// against AcoustID, and mapping the matched recording's MusicBrainz tags.
package acoustid

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"os/exec"
	"strings"
	"time"

	"knobgenre/internal/config"
	"knobgenre/internal/logging"
	"knobgenre/internal/registry"
	acoustidsvc "knobgenre/internal/services/acoustid"
	"knobgenre/internal/services/fpcalc"
	"knobgenre/internal/services/musicbrainz"
	"knobgenre/internal/stage"
	"knobgenre/internal/taxonomy"
)

const (
	// MaxTagConfidence caps the confidence derived from tag votes.
	MaxTagConfidence = 0.8

	baseTagConfidence = 0.5
	perVoteConfidence = 0.05
	defaultPrefixLen  = 32

	name = "acoustid"
)

// Fingerprinter computes an acoustic fingerprint.
type Fingerprinter interface {
	Fingerprint(ctx context.Context, path string) (fpcalc.Result, error)
}

// Matcher resolves a fingerprint to candidate recordings, best first.
type Matcher interface {
	Lookup(ctx context.Context, fingerprint string, duration float64) ([]acoustidsvc.Match, error)
}

// TagSource returns community tags for a recording, most voted first.
type TagSource interface {
	RecordingTags(ctx context.Context, recordingID string) ([]musicbrainz.Tag, error)
}

// Dependencies bundles the pass 2 collaborators.
type Dependencies struct {
	Fingerprinter Fingerprinter
	Matcher       Matcher
	Tags          TagSource
	// FpcalcBinary is resolved on PATH by HealthCheck when set.
	FpcalcBinary string
	APIKey       string
	// PrefixLength truncates the stored fingerprint.
	PrefixLength int
}

// Classifier is the pass 2 strategy.
type Classifier struct {
	mediaRoot string
	deps      Dependencies
	logger    *slog.Logger
}

// New builds a classifier backed by fpcalc, AcoustID, and MusicBrainz.
func New(cfg *config.Config, logger *slog.Logger) *Classifier {
	deps := Dependencies{
		Fingerprinter: fpcalc.NewRunner(cfg.Fingerprint.FpcalcBinary,
			time.Duration(cfg.Fingerprint.TimeoutSeconds)*time.Second),
		Matcher: acoustidsvc.NewClient(acoustidsvc.Config{
			APIKey:          cfg.AcoustID.APIKey,
			BaseURL:         cfg.AcoustID.BaseURL,
			RequestInterval: cfg.AcoustIDInterval(),
			TimeoutSeconds:  cfg.AcoustID.TimeoutSeconds,
		}),
		Tags: musicbrainz.NewClient(musicbrainz.Config{
			BaseURL:         cfg.MusicBrainz.BaseURL,
			UserAgent:       cfg.MusicBrainz.UserAgent,
			RequestInterval: cfg.MusicBrainzInterval(),
			TimeoutSeconds:  cfg.MusicBrainz.TimeoutSeconds,
		}),
		FpcalcBinary: cfg.Fingerprint.FpcalcBinary,
		APIKey:       cfg.AcoustID.APIKey,
		PrefixLength: cfg.Fingerprint.PrefixLength,
	}
	return NewWithDependencies(cfg.Paths.MediaRoot, deps, logger)
}

// NewWithDependencies allows injecting custom collaborators (used for tests).
func NewWithDependencies(mediaRoot string, deps Dependencies, logger *slog.Logger) *Classifier {
	if deps.PrefixLength <= 0 {
		deps.PrefixLength = defaultPrefixLen
	}
	return &Classifier{
		mediaRoot: mediaRoot,
		deps:      deps,
		logger:    logging.NewComponentLogger(logger, name),
	}
}

// Pass identifies the fingerprint pass.
func (c *Classifier) Pass() registry.Pass {
	return registry.PassFingerprint
}

// UnclassifiedOnly restricts candidates to tracks no earlier pass classified.
func (c *Classifier) UnclassifiedOnly() bool {
	return true
}

// HealthCheck requires the fingerprinter and an AcoustID client key.
func (c *Classifier) HealthCheck(context.Context) stage.Health {
	if c.deps.Fingerprinter == nil || c.deps.Matcher == nil || c.deps.Tags == nil {
		return stage.Unhealthy(name, "lookup clients unavailable")
	}
	if binary := strings.TrimSpace(c.deps.FpcalcBinary); binary != "" {
		if _, err := exec.LookPath(binary); err != nil {
			return stage.Unhealthy(name, fmt.Sprintf("fpcalc binary %q not found (install chromaprint-tools)", binary))
		}
	}
	if strings.TrimSpace(c.deps.APIKey) == "" {
		return stage.Unhealthy(name, "no AcoustID API key (set ACOUSTID_API_KEY or create ~/.config/acoustid/apikey)")
	}
	return stage.Healthy(name)
}

// Classify fingerprints the track and maps the best match's tags. Collaborator
// failures resolve to a miss.
func (c *Classifier) Classify(ctx context.Context, track *registry.Track) (stage.Outcome, error) {
	logger := logging.WithContext(ctx, c.logger)

	fp, err := c.deps.Fingerprinter.Fingerprint(ctx, stage.MediaPath(c.mediaRoot, track))
	if err != nil {
		logger.Debug("fingerprint failed", logging.Error(err))
		return stage.NoMatch("no fingerprint", registry.TrackFields{}), nil
	}
	fields := registry.TrackFields{Duration: fp.Duration}

	matches, err := c.deps.Matcher.Lookup(ctx, fp.Fingerprint, fp.Duration)
	if err != nil {
		logger.Debug("acoustid lookup failed", logging.Error(err))
		matches = nil
	}
	if len(matches) == 0 {
		return stage.NoMatch("no AcoustID match", fields), nil
	}

	best := matches[0]
	fields.AcoustID = prefix(fp.Fingerprint, c.deps.PrefixLength)
	fields.MusicBrainzID = best.RecordingID

	tags, err := c.deps.Tags.RecordingTags(ctx, best.RecordingID)
	if err != nil {
		logger.Debug("musicbrainz tag lookup failed",
			logging.String("recording_id", best.RecordingID),
			logging.Error(err),
		)
		tags = nil
	}
	for _, tag := range tags {
		genre, ok := taxonomy.NormalizeTag(tag.Name)
		if !ok {
			continue
		}
		return stage.Match(registry.Classification{
			Genre:      genre,
			Source:     registry.SourceAcoustID,
			Confidence: Confidence(tag.Count, best.Score),
			RawLabel:   "mb:" + tag.Name,
		}, fields), nil
	}
	return stage.NoMatch("AcoustID match but no usable tags", fields), nil
}

// Confidence scales the vote-derived tag confidence by the fingerprint match
// score. The result lies in [0, MaxTagConfidence*score].
func Confidence(votes int, score float64) float64 {
	if math.IsNaN(score) || score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}
	tag := math.Min(MaxTagConfidence, baseTagConfidence+perVoteConfidence*float64(votes))
	if tag < 0 {
		tag = 0
	}
	return tag * score
}

func prefix(value string, n int) string {
	if n <= 0 || len(value) <= n {
		return value
	}
	return value[:n]
}
