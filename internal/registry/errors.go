package registry

import "errors"

var (
	// ErrSchemaMismatch indicates the database schema version doesn't match the expected version.
	ErrSchemaMismatch = errors.New("schema version mismatch")
	// ErrTrackNotFound is returned when a mutation targets an unknown track id.
	ErrTrackNotFound = errors.New("track not found")
	// ErrInvalidPass is returned for pass numbers outside 1..3.
	ErrInvalidPass = errors.New("invalid pass number")
)
