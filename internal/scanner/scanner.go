// Package scanner walks the media root and keeps the registry in step with
// the files on disk.
package scanner

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"knobgenre/internal/config"
	"knobgenre/internal/fileutil"
	"knobgenre/internal/logging"
	"knobgenre/internal/registry"
	"knobgenre/internal/taxonomy"
)

// Store is the registry surface the scanner needs.
type Store interface {
	AllPaths(ctx context.Context) (map[string]struct{}, error)
	NeedsRescan(ctx context.Context, path string, mtime float64, size int64) (bool, error)
	UpsertScanResult(ctx context.Context, res registry.ScanResult) (int64, error)
	Remove(ctx context.Context, path string) (bool, error)
}

// Stats counts what one Sync changed.
type Stats struct {
	New       int
	Updated   int
	Removed   int
	Unchanged int
}

// Total is the number of audio files seen on disk.
func (s Stats) Total() int {
	return s.New + s.Updated + s.Unchanged
}

// Scanner discovers audio files beneath a media root.
type Scanner struct {
	root       string
	extensions map[string]struct{}
	skipDirs   map[string]struct{}
	logger     *slog.Logger
}

// New builds a scanner from the configured media root and filters.
func New(cfg *config.Config, logger *slog.Logger) *Scanner {
	return NewWithOptions(cfg.Paths.MediaRoot, cfg.Scanner.Extensions, cfg.Scanner.SkipDirs, logger)
}

// NewWithOptions builds a scanner without a full config.
func NewWithOptions(root string, extensions, skipDirs []string, logger *slog.Logger) *Scanner {
	s := &Scanner{
		root:       filepath.Clean(root),
		extensions: make(map[string]struct{}, len(extensions)),
		skipDirs:   make(map[string]struct{}, len(skipDirs)),
		logger:     logging.NewComponentLogger(logger, "scanner"),
	}
	for _, ext := range extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		s.extensions[ext] = struct{}{}
	}
	for _, dir := range skipDirs {
		if dir = strings.TrimSpace(dir); dir != "" {
			s.skipDirs[dir] = struct{}{}
		}
	}
	return s
}

// Root returns the media root being scanned.
func (s *Scanner) Root() string {
	return s.root
}

// Walk returns every audio file under the media root, sorted by path. Paths
// are relative to the root and slash-separated.
func (s *Scanner) Walk(ctx context.Context) ([]registry.ScanResult, error) {
	info, err := os.Stat(s.root)
	if err != nil {
		return nil, fmt.Errorf("media root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("media root %q is not a directory", s.root)
	}

	var out []registry.ScanResult
	err = filepath.WalkDir(s.root, func(path string, d fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if walkErr != nil {
			if path == s.root {
				return walkErr
			}
			s.logger.Warn("skipping unreadable entry", logging.String("path", path), logging.Error(walkErr))
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(s.root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if path != s.root && !strings.Contains(rel, "/") {
				if _, skip := s.skipDirs[rel]; skip {
					return filepath.SkipDir
				}
			}
			return nil
		}
		if !d.Type().IsRegular() || !s.isAudio(d.Name()) {
			return nil
		}
		fi, err := d.Info()
		if err != nil {
			s.logger.Warn("skipping unreadable file", logging.String("path", path), logging.Error(err))
			return nil
		}
		out = append(out, resultFor(rel, fi))
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out, nil
}

// Sync walks the media root, inserts new files, refreshes changed ones, and
// removes registry entries whose files are gone.
func (s *Scanner) Sync(ctx context.Context, store Store) (Stats, error) {
	var stats Stats

	existing, err := store.AllPaths(ctx)
	if err != nil {
		return stats, fmt.Errorf("load known paths: %w", err)
	}
	found, err := s.Walk(ctx)
	if err != nil {
		return stats, err
	}

	seen := make(map[string]struct{}, len(found))
	for _, res := range found {
		seen[res.Path] = struct{}{}
		_, known := existing[res.Path]
		if known {
			changed, err := store.NeedsRescan(ctx, res.Path, res.ModTime, res.Size)
			if err != nil {
				return stats, err
			}
			if !changed {
				stats.Unchanged++
				continue
			}
		}
		if _, err := store.UpsertScanResult(ctx, res); err != nil {
			return stats, fmt.Errorf("upsert %s: %w", res.Path, err)
		}
		if known {
			stats.Updated++
			s.logger.Debug("updated", logging.String("path", res.Path))
		} else {
			stats.New++
			s.logger.Debug("new", logging.String("path", res.Path))
		}
	}

	gone := make([]string, 0)
	for path := range existing {
		if _, ok := seen[path]; !ok {
			gone = append(gone, path)
		}
	}
	sort.Strings(gone)
	for _, path := range gone {
		removed, err := store.Remove(ctx, path)
		if err != nil {
			return stats, fmt.Errorf("remove %s: %w", path, err)
		}
		if removed {
			stats.Removed++
			s.logger.Debug("removed", logging.String("path", path))
		}
	}

	s.logger.Info("scan complete",
		logging.String(logging.FieldEventType, "scan_complete"),
		logging.String("media_root", s.root),
		logging.Int("new", stats.New),
		logging.Int("updated", stats.Updated),
		logging.Int("removed", stats.Removed),
		logging.Int("unchanged", stats.Unchanged),
	)
	return stats, nil
}

func (s *Scanner) isAudio(name string) bool {
	_, ok := s.extensions[strings.ToLower(filepath.Ext(name))]
	return ok
}

func resultFor(rel string, info fs.FileInfo) registry.ScanResult {
	dir := filepath.ToSlash(filepath.Dir(filepath.FromSlash(rel)))
	if dir == "." {
		dir = ""
	}
	contentType := taxonomy.ContentSong
	if ct, ok := taxonomy.ContentTypeFromDir(dir); ok {
		contentType = ct
	}
	return registry.ScanResult{
		Path:        rel,
		Filename:    filepath.Base(rel),
		Directory:   dir,
		Size:        info.Size(),
		ModTime:     fileutil.ModTimeSeconds(info),
		ContentType: contentType,
	}
}

// IsNotExist reports whether err came from a missing media root.
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
