package testsupport

import (
	"context"
	"path/filepath"
	"testing"

	"knobgenre/internal/config"
	"knobgenre/internal/registry"
	"knobgenre/internal/taxonomy"
)

// MustOpenStore opens a registry.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *registry.Store {
	t.Helper()

	store, err := registry.Open(cfg)
	if err != nil {
		t.Fatalf("registry.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// AddTrack registers a song at the media-root-relative path rel.
func AddTrack(t testing.TB, store *registry.Store, rel string) *registry.Track {
	t.Helper()
	return AddTrackOfType(t, store, rel, taxonomy.ContentSong)
}

// AddTrackOfType registers a track with an explicit content type.
func AddTrackOfType(t testing.TB, store *registry.Store, rel string, contentType taxonomy.ContentType) *registry.Track {
	t.Helper()

	ctx := context.Background()
	dir := filepath.Dir(rel)
	if dir == "." {
		dir = ""
	}
	id, err := store.UpsertScanResult(ctx, registry.ScanResult{
		Path:        rel,
		Filename:    filepath.Base(rel),
		Directory:   dir,
		Size:        1024,
		ModTime:     1700000000,
		ContentType: contentType,
	})
	if err != nil {
		t.Fatalf("store.UpsertScanResult: %v", err)
	}
	track, err := store.GetByID(ctx, id)
	if err != nil || track == nil {
		t.Fatalf("store.GetByID(%d): %v", id, err)
	}
	return track
}
