package stage

import (
	"path/filepath"
	"strings"

	"knobgenre/internal/registry"
)

// MediaPath resolves a track's stored relative path against the media root.
func MediaPath(mediaRoot string, track *registry.Track) string {
	if track == nil {
		return ""
	}
	rel := filepath.FromSlash(strings.TrimLeft(track.Path, "/"))
	if strings.TrimSpace(mediaRoot) == "" {
		return rel
	}
	return filepath.Join(mediaRoot, rel)
}
