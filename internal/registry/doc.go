// Package registry persists one record per audio file plus an append-only
// classification audit log in SQLite.
//
// The Store owns all durable state for the indexer. Every mutation runs in a
// transaction: a classification writes the genre group, the pass flag, any
// discovered descriptive fields, and its audit entry together or not at all.
// Pass flags only ever move from unset to set; the schema rejects attempts to
// clear them. Scan-level refreshes never touch classification state.
//
// Schema changes bump schemaVersion in schema.go; users move the old database
// aside and rescan to adopt the new schema.
package registry
