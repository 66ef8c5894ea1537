// Package fpcalc runs the Chromaprint fpcalc tool to fingerprint audio files.
package fpcalc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"knobgenre/internal/services"
)

// DefaultTimeout bounds a single fpcalc process.
const DefaultTimeout = 60 * time.Second

// Result is an acoustic fingerprint and the audio duration it covers.
type Result struct {
	Fingerprint string  `json:"fingerprint"`
	Duration    float64 `json:"duration"`
}

// Runner invokes fpcalc.
type Runner struct {
	Binary  string
	Timeout time.Duration
}

// NewRunner returns a runner for binary. A non-positive timeout uses DefaultTimeout.
func NewRunner(binary string, timeout time.Duration) *Runner {
	if strings.TrimSpace(binary) == "" {
		binary = "fpcalc"
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Runner{Binary: binary, Timeout: timeout}
}

// Fingerprint computes the fingerprint of path.
func (r *Runner) Fingerprint(ctx context.Context, path string) (Result, error) {
	if strings.TrimSpace(path) == "" {
		return Result{}, services.Wrap(services.ErrValidation, "fpcalc", "fingerprint", "empty path", nil)
	}
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, r.Binary, "-json", path)
	output, err := cmd.Output()
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return Result{}, services.Wrap(services.ErrTimeout, "fpcalc", "fingerprint",
			fmt.Sprintf("exceeded %s", timeout), ctx.Err())
	}
	if err != nil {
		detail := ""
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			detail = strings.TrimSpace(string(exitErr.Stderr))
		}
		return Result{}, services.Wrap(services.ErrExternalTool, "fpcalc", "fingerprint", detail, err)
	}

	var result Result
	if err := json.Unmarshal(output, &result); err != nil {
		return Result{}, services.Wrap(services.ErrExternalTool, "fpcalc", "parse output", "", err)
	}
	if strings.TrimSpace(result.Fingerprint) == "" {
		return Result{}, services.Wrap(services.ErrExternalTool, "fpcalc", "parse output", "no fingerprint", nil)
	}
	return result, nil
}
