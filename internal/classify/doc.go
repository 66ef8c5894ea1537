// Package classify groups the escalating pass classifiers.
//
// Each subpackage implements stage.Classifier for one pass:
//   - metadata: embedded tags, then directory-name hints (cheap, local)
//   - acoustid: Chromaprint fingerprint, AcoustID match, MusicBrainz tags
//   - maest: audio decode plus model inference against the Discogs vocabulary
//
// Classifiers never return registry writes; they report a stage.Outcome and
// the workflow manager applies it.
package classify
