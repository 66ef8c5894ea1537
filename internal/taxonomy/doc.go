// Package taxonomy holds the station's fixed two-level genre hierarchy and the
// lookup tables that translate tag strings, directory names, and model labels
// into it.
//
// All tables are read-only after package initialization. Lookups are pure and
// safe for concurrent use. Tag lookups fall back to Unicode case folding when
// no exact entry exists; catalog labels only match exactly.
package taxonomy
