package preflight

import (
	"context"
	"path/filepath"

	"knobgenre/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// Failed returns the results that did not pass.
func Failed(results []Result) []Result {
	var out []Result
	for _, r := range results {
		if !r.Passed {
			out = append(out, r)
		}
	}
	return out
}

// CheckPaths verifies the media root is readable and the registry and log
// directories are writable.
func CheckPaths(cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}
	results := []Result{
		CheckDirectoryAccess("Media root", cfg.Paths.MediaRoot, false),
		CheckDirectoryAccess("Registry directory", filepath.Dir(cfg.Paths.Database), true),
	}
	if cfg.Paths.LogDir != "" {
		results = append(results, CheckDirectoryAccess("Log directory", cfg.Paths.LogDir, true))
	}
	return results
}

// RunAll executes the path checks plus every enabled service check.
func RunAll(ctx context.Context, cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}
	results := CheckPaths(cfg)
	results = append(results, CheckAcoustIDKey(cfg.AcoustID.APIKey))
	if cfg.MAEST.Enabled {
		results = append(results, CheckMAEST(ctx, cfg.MAEST.BaseURL))
	}
	return results
}
