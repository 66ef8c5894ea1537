// Package config loads, normalizes, and validates knobgenre configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, loads an optional .env file beside the config,
// and honours environment fallbacks such as ACOUSTID_API_KEY. The Config type
// centralizes every knob the CLI and the classification passes need.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
