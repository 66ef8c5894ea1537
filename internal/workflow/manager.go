package workflow

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"knobgenre/internal/logging"
	"knobgenre/internal/registry"
)

// Registry is the subset of the track registry the manager writes through.
type Registry interface {
	TracksPending(ctx context.Context, q registry.PendingQuery) ([]*registry.Track, error)
	RecordClassification(ctx context.Context, trackID int64, c registry.Classification, pass registry.Pass, fields registry.TrackFields) error
	UpdateDescriptiveFields(ctx context.Context, trackID int64, fields registry.TrackFields) error
	MarkPassAttempted(ctx context.Context, trackID int64, pass registry.Pass) error
	Count(ctx context.Context, f registry.TrackFilter) (int, error)
}

// Manager coordinates classification passes against the registry.
type Manager struct {
	store    Registry
	logger   *slog.Logger
	newRunID func() string
	now      func() time.Time
}

// ManagerOption configures optional Manager behavior.
type ManagerOption func(*Manager)

// WithRunIDGenerator overrides the correlation id source (used in tests).
func WithRunIDGenerator(fn func() string) ManagerOption {
	return func(m *Manager) {
		if fn != nil {
			m.newRunID = fn
		}
	}
}

// WithClock overrides the time source used for elapsed durations.
func WithClock(fn func() time.Time) ManagerOption {
	return func(m *Manager) {
		if fn != nil {
			m.now = fn
		}
	}
}

// NewManager constructs a pass manager over store.
func NewManager(store Registry, logger *slog.Logger, opts ...ManagerOption) *Manager {
	m := &Manager{
		store:    store,
		logger:   logging.NewComponentLogger(logger, "workflow"),
		newRunID: uuid.NewString,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}
