package workflow

import (
	"time"

	"knobgenre/internal/registry"
	"knobgenre/internal/stage"
)

// RunOptions bounds a pass run.
type RunOptions struct {
	// Limit caps how many pending tracks are visited; zero means all.
	Limit int
}

// Result summarizes one pass run.
type Result struct {
	Pass registry.Pass
	// RunID correlates the run's log records.
	RunID string
	// Classified counts tracks that received a genre.
	Classified int
	// Skipped counts tracks attempted without a match.
	Skipped int
	// Unavailable is set when the classifier failed its health check or load.
	Unavailable bool
	Detail      string
	Elapsed     time.Duration
}

// Attempted is the number of tracks the pass visited.
func (r Result) Attempted() int {
	return r.Classified + r.Skipped
}

// PassStatus is the readiness and backlog of one classifier.
type PassStatus struct {
	Pass    registry.Pass
	Health  stage.Health
	Pending int
}

// Progress is the overall classification coverage of songs.
type Progress struct {
	Songs      int
	Classified int
}

// Percent is the classified share of songs, or zero when there are none.
func (p Progress) Percent() float64 {
	if p.Songs == 0 {
		return 0
	}
	return float64(p.Classified) * 100 / float64(p.Songs)
}
