package stage

import (
	"context"

	"knobgenre/internal/registry"
)

// Classifier describes the contract the pass orchestrator needs from each
// classification strategy. Classify is called at most once per track per run.
type Classifier interface {
	Pass() registry.Pass
	HealthCheck(context.Context) Health
	Classify(context.Context, *registry.Track) (Outcome, error)
}

// Loader is implemented by classifiers with expensive one-time setup. The
// orchestrator calls Load once per run, only when there is work to do.
type Loader interface {
	Load(context.Context) error
}

// CandidateFilter is implemented by classifiers that only consider tracks
// no earlier pass has classified.
type CandidateFilter interface {
	UnclassifiedOnly() bool
}

// Outcome is the result of classifying one track.
type Outcome struct {
	// Classification is nil when nothing mapped.
	Classification *registry.Classification
	// Fields are descriptive values discovered along the way, written either way.
	Fields registry.TrackFields
	// Detail explains a miss for logs; it is never persisted.
	Detail string
}

// Matched reports whether the outcome carries a classification.
func (o Outcome) Matched() bool {
	return o.Classification != nil
}

// Match builds a successful outcome.
func Match(c registry.Classification, fields registry.TrackFields) Outcome {
	return Outcome{Classification: &c, Fields: fields}
}

// NoMatch builds an attempted-no-match outcome.
func NoMatch(detail string, fields registry.TrackFields) Outcome {
	return Outcome{Fields: fields, Detail: detail}
}
