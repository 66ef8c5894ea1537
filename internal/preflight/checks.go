package preflight

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	"golang.org/x/sys/unix"

	"knobgenre/internal/config"
	"knobgenre/internal/deps"
	"knobgenre/internal/services/maest"
)

// CheckMAEST verifies the inference server is reachable and its model loaded.
// It uses a 10-second timeout and a single attempt.
func CheckMAEST(ctx context.Context, baseURL string) Result {
	const name = "MAEST inference"

	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if base == "" {
		return Result{Name: name, Detail: "missing url"}
	}

	checkCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client := maest.NewClient(maest.Config{BaseURL: base, TimeoutSeconds: 10})
	info, err := client.Health(checkCtx)
	if err != nil {
		return Result{Name: name, Detail: summarizeHTTPError(err)}
	}
	detail := fmt.Sprintf("%s (%d labels)", base, info.Labels)
	if info.Model != "" {
		detail = fmt.Sprintf("%s: %s (%d labels)", base, info.Model, info.Labels)
	}
	return Result{Name: name, Passed: true, Detail: detail}
}

// CheckAcoustIDKey reports whether a fingerprint lookup key is configured.
func CheckAcoustIDKey(apiKey string) Result {
	const name = "AcoustID key"
	if strings.TrimSpace(apiKey) == "" {
		return Result{Name: name, Detail: "missing (set ACOUSTID_API_KEY or ~/.config/acoustid/apikey)"}
	}
	return Result{Name: name, Passed: true, Detail: "configured"}
}

// CheckDirectoryAccess verifies that the directory exists and is readable, and
// writable when writable is set.
func CheckDirectoryAccess(name, path string, writable bool) Result {
	if strings.TrimSpace(path) == "" {
		return Result{Name: name, Detail: "not configured"}
	}
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	mode := uint32(unix.R_OK | unix.X_OK)
	label := "read ok"
	if writable {
		mode |= unix.W_OK
		label = "read/write ok"
	}
	if err := unix.Access(path, mode); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (%s)", path, label)}
}

// CheckSystemDeps evaluates the external audio tools each pass needs. Tools
// for a disabled pass are reported as optional.
func CheckSystemDeps(cfg *config.Config) []deps.Status {
	requirements := []deps.Requirement{
		{
			Name:        "FFprobe",
			Command:     cfg.Tags.FFprobeBinary,
			Description: "Required for embedded tag reading (pass 1)",
		},
		{
			Name:        "fpcalc",
			Command:     cfg.Fingerprint.FpcalcBinary,
			Description: "Required for Chromaprint fingerprints (pass 2)",
		},
		{
			Name:        "FFmpeg",
			Command:     cfg.MAEST.FFmpegBinary,
			Description: "Required for audio decoding (pass 3)",
			Optional:    !cfg.MAEST.Enabled,
		},
	}
	return deps.CheckBinaries(requirements)
}

func summarizeHTTPError(err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return "health check timed out (server unresponsive)"
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return "health check timed out (server unreachable)"
	}
	return err.Error()
}
