// Package services defines shared utilities consumed by the classification
// passes and their external integrations.
//
// Key responsibilities:
//   - Context helpers that stamp track IDs, pass names, and run correlation
//     identifiers for logging.
//   - Structured error markers plus the Wrap helper so callers can tell a
//     missing dependency from a per-track failure.
//
// Concrete clients for external tools and web services live in the
// subpackages (fpcalc, acoustid, musicbrainz, maest).
package services
