package workflow

import (
	"context"
	"fmt"

	"knobgenre/internal/registry"
	"knobgenre/internal/stage"
	"knobgenre/internal/taxonomy"
)

// Status reports readiness and backlog for each classifier.
func (m *Manager) Status(ctx context.Context, classifiers []stage.Classifier) ([]PassStatus, error) {
	out := make([]PassStatus, 0, len(classifiers))
	for _, classifier := range classifiers {
		pass := classifier.Pass()
		query := registry.PendingQuery{Pass: pass}
		if filter, ok := classifier.(stage.CandidateFilter); ok {
			query.UnclassifiedOnly = filter.UnclassifiedOnly()
		}
		pending, err := m.store.TracksPending(ctx, query)
		if err != nil {
			return nil, fmt.Errorf("pending tracks for %s: %w", pass, err)
		}
		out = append(out, PassStatus{
			Pass:    pass,
			Health:  classifier.HealthCheck(ctx),
			Pending: len(pending),
		})
	}
	return out, nil
}

// Progress reports how many songs carry a genre.
func (m *Manager) Progress(ctx context.Context) (Progress, error) {
	songs, err := m.store.Count(ctx, registry.TrackFilter{ContentType: taxonomy.ContentSong})
	if err != nil {
		return Progress{}, err
	}
	classified := true
	done, err := m.store.Count(ctx, registry.TrackFilter{ContentType: taxonomy.ContentSong, Classified: &classified})
	if err != nil {
		return Progress{}, err
	}
	return Progress{Songs: songs, Classified: done}, nil
}
