package workflow

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"knobgenre/internal/logging"
	"knobgenre/internal/registry"
	"knobgenre/internal/stage"
)

// RunPass applies classifier to every pending track once. An unhealthy or
// unloadable classifier yields an Unavailable result and a nil error. Registry
// failures and context cancellation end the run early and are returned along
// with the counts so far.
func (m *Manager) RunPass(ctx context.Context, classifier stage.Classifier, opts RunOptions) (result Result, err error) {
	if classifier == nil {
		return Result{}, errors.New("workflow: nil classifier")
	}
	pass := classifier.Pass()
	result = Result{Pass: pass, RunID: m.newRunID()}
	start := m.now()
	defer func() { result.Elapsed = m.now().Sub(start) }()

	ctx = withPassContext(ctx, pass, result.RunID)
	logger := m.passLogger(ctx)

	health := classifier.HealthCheck(ctx)
	if !health.Ready {
		logging.WarnWithContext(logger, "pass unavailable", "pass_unavailable",
			logging.String("reason", health.Detail),
			logging.String(logging.FieldErrorHint, "install or configure the missing dependency and rerun"),
		)
		result.Unavailable = true
		result.Detail = health.Detail
		return result, nil
	}

	query := registry.PendingQuery{Pass: pass, Limit: opts.Limit}
	if filter, ok := classifier.(stage.CandidateFilter); ok {
		query.UnclassifiedOnly = filter.UnclassifiedOnly()
	}
	tracks, err := m.store.TracksPending(ctx, query)
	if err != nil {
		return result, fmt.Errorf("select pending tracks for %s: %w", pass, err)
	}
	if len(tracks) == 0 {
		logger.Info("nothing pending", logging.String(logging.FieldEventType, "pass_idle"))
		return result, nil
	}

	if loader, ok := classifier.(stage.Loader); ok {
		if err := loader.Load(ctx); err != nil {
			logging.WarnWithContext(logger, "pass unavailable", "pass_unavailable",
				logging.Error(err),
				logging.String(logging.FieldErrorHint, "check that the model service is running"),
			)
			result.Unavailable = true
			result.Detail = err.Error()
			return result, nil
		}
	}

	logger.Info("pass started",
		logging.String(logging.FieldEventType, "pass_start"),
		logging.Int("pending", len(tracks)),
		logging.Bool("unclassified_only", query.UnclassifiedOnly),
	)

	for i, track := range tracks {
		if err := ctx.Err(); err != nil {
			logger.Info("pass interrupted",
				logging.Int("visited", i),
				logging.Int("pending", len(tracks)),
			)
			return result, err
		}
		matched, err := m.processTrack(ctx, classifier, track)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
				return result, ctxErr
			}
			logging.ErrorWithContext(logger, "registry write failed", "registry_error",
				logging.Int64(logging.FieldTrackID, track.ID),
				logging.Error(err),
			)
			return result, err
		}
		if matched {
			result.Classified++
		} else {
			result.Skipped++
		}
	}

	logger.Info("pass completed",
		logging.String(logging.FieldEventType, "pass_complete"),
		logging.Int("classified", result.Classified),
		logging.Int("skipped", result.Skipped),
		logging.Duration("elapsed", m.now().Sub(start)),
	)
	return result, nil
}

// processTrack classifies one track and persists the outcome. The returned
// error is always a registry or context failure.
func (m *Manager) processTrack(ctx context.Context, classifier stage.Classifier, track *registry.Track) (bool, error) {
	pass := classifier.Pass()
	ctx = withTrackContext(ctx, track)
	logger := m.passLogger(ctx)

	outcome, err := classifier.Classify(ctx, track)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return false, ctxErr
	}
	if err != nil {
		logging.WarnWithContext(logger, "classifier failed; treating as no match", "classify_failed",
			logging.String("path", track.Path),
			logging.Error(err),
		)
		outcome = stage.NoMatch(err.Error(), registry.TrackFields{})
	}

	if outcome.Matched() {
		if err := m.store.RecordClassification(ctx, track.ID, *outcome.Classification, pass, outcome.Fields); err != nil {
			return false, fmt.Errorf("record classification for track %d: %w", track.ID, err)
		}
		attrs := append([]logging.Attr{logging.String("path", track.Path)}, classificationAttrs(outcome.Classification)...)
		logger.Info("track classified", logging.Args(attrs...)...)
		return true, nil
	}

	if !outcome.Fields.IsEmpty() {
		if err := m.store.UpdateDescriptiveFields(ctx, track.ID, outcome.Fields); err != nil {
			return false, fmt.Errorf("update fields for track %d: %w", track.ID, err)
		}
	}
	if err := m.store.MarkPassAttempted(ctx, track.ID, pass); err != nil {
		return false, fmt.Errorf("mark track %d attempted: %w", track.ID, err)
	}
	logger.Debug("no match",
		logging.String("path", track.Path),
		logging.String("detail", strings.TrimSpace(outcome.Detail)),
	)
	return false, nil
}

// RunAll runs classifiers in order. Unavailable passes are skipped; the first
// registry or context error stops the sequence.
func (m *Manager) RunAll(ctx context.Context, classifiers []stage.Classifier, opts RunOptions) ([]Result, error) {
	results := make([]Result, 0, len(classifiers))
	for _, classifier := range classifiers {
		res, err := m.RunPass(ctx, classifier, opts)
		results = append(results, res)
		if err != nil {
			return results, err
		}
	}
	return results, nil
}
