// Package metadata classifies tracks from their embedded genre tags, falling
// back to genre hints in the directory name.
package metadata

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"knobgenre/internal/config"
	"knobgenre/internal/logging"
	"knobgenre/internal/media/ffprobe"
	"knobgenre/internal/registry"
	"knobgenre/internal/stage"
	"knobgenre/internal/taxonomy"
)

const (
	// TagConfidence is assigned to genres read from embedded tags.
	TagConfidence = 0.9
	// DirectoryConfidence is assigned to genres implied by the directory name.
	DirectoryConfidence = 0.7

	name = "metadata"
)

// TagReader returns the embedded tags of an audio file.
type TagReader interface {
	ReadTags(ctx context.Context, path string) (ffprobe.Tags, error)
}

// Classifier is the pass 1 strategy.
type Classifier struct {
	mediaRoot string
	binary    string
	reader    TagReader
	logger    *slog.Logger
}

// New builds a classifier that reads tags with ffprobe.
func New(cfg *config.Config, logger *slog.Logger) *Classifier {
	timeout := time.Duration(cfg.Tags.TimeoutSeconds) * time.Second
	c := NewWithReader(cfg.Paths.MediaRoot, ffprobe.NewReader(cfg.Tags.FFprobeBinary, timeout), logger)
	c.binary = cfg.Tags.FFprobeBinary
	return c
}

// NewWithReader allows injecting a custom tag reader (used for tests).
func NewWithReader(mediaRoot string, reader TagReader, logger *slog.Logger) *Classifier {
	return &Classifier{
		mediaRoot: mediaRoot,
		reader:    reader,
		logger:    logging.NewComponentLogger(logger, name),
	}
}

// Pass identifies the metadata pass.
func (c *Classifier) Pass() registry.Pass {
	return registry.PassMetadata
}

// HealthCheck verifies the tag reader can run. Without it every track would
// be marked attempted on directory hints alone.
func (c *Classifier) HealthCheck(context.Context) stage.Health {
	if c.reader == nil {
		return stage.Unhealthy(name, "tag reader unavailable")
	}
	if binary := strings.TrimSpace(c.binary); binary != "" {
		if _, err := exec.LookPath(binary); err != nil {
			return stage.Unhealthy(name, fmt.Sprintf("ffprobe binary %q not found", binary))
		}
	}
	return stage.Healthy(name)
}

// Classify reads the track's tags and maps its first genre, then tries the
// directory hints. Descriptive tags are returned whatever the outcome.
func (c *Classifier) Classify(ctx context.Context, track *registry.Track) (stage.Outcome, error) {
	logger := logging.WithContext(ctx, c.logger)

	tags, err := c.reader.ReadTags(ctx, stage.MediaPath(c.mediaRoot, track))
	if err != nil {
		logger.Debug("tag read failed; treating as untagged", logging.Error(err))
		tags = ffprobe.Tags{}
	}
	fields := registry.TrackFields{
		Artist:   tags.Artist,
		Title:    tags.Title,
		Album:    tags.Album,
		Duration: tags.Duration,
	}

	if len(tags.Genres) > 0 {
		raw := strings.TrimSpace(tags.Genres[0])
		genre, result := taxonomy.LookupTag(raw)
		if result == taxonomy.TagMapped {
			return stage.Match(registry.Classification{
				Genre:      genre,
				Source:     registry.SourceMetadata,
				Confidence: TagConfidence,
				RawLabel:   raw,
			}, fields), nil
		}
		logger.Debug("genre tag not mapped",
			logging.String("tag", raw),
			logging.String("lookup", result.String()),
		)
	}

	if genre, ok := taxonomy.DirectoryHint(track.Directory); ok {
		return stage.Match(registry.Classification{
			Genre:      genre,
			Source:     registry.SourceDirectory,
			Confidence: DirectoryConfidence,
			RawLabel:   "dir:" + track.Directory,
		}, fields), nil
	}

	return stage.NoMatch("no metadata match", fields), nil
}
