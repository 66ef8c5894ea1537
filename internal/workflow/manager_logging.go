package workflow

import (
	"context"
	"log/slog"

	"knobgenre/internal/logging"
	"knobgenre/internal/registry"
	"knobgenre/internal/services"
)

func withPassContext(ctx context.Context, pass registry.Pass, runID string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = services.WithPass(ctx, pass.String())
	if runID != "" {
		ctx = services.WithRequestID(ctx, runID)
	}
	return ctx
}

func withTrackContext(ctx context.Context, track *registry.Track) context.Context {
	if track == nil {
		return ctx
	}
	return services.WithTrackID(ctx, track.ID)
}

func (m *Manager) passLogger(ctx context.Context) *slog.Logger {
	return logging.WithContext(ctx, m.logger)
}

func classificationAttrs(c *registry.Classification) []logging.Attr {
	return []logging.Attr{
		logging.String("genre_parent", c.Genre.Parent),
		logging.String("genre_sub", c.Genre.Sub),
		logging.String("genre_source", string(c.Source)),
		logging.Float64("confidence", c.Confidence),
		logging.String("raw_label", c.RawLabel),
	}
}
