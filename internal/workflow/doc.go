// Package workflow runs classification passes over the track registry.
//
// The Manager drives one stage.Classifier at a time: it checks the
// classifier's health, selects the tracks whose pass flag is still unset,
// performs any one-time model loading, and then visits each pending track
// exactly once. Matches are recorded together with their audit entry; misses
// persist whatever descriptive fields were discovered and mark the pass as
// attempted so the track is never revisited by that pass.
//
// Passes run serially in escalation order (metadata, fingerprint, inference)
// via RunAll. An unavailable classifier is reported and skipped; a registry
// failure aborts the run with the work committed so far left intact.
package workflow
