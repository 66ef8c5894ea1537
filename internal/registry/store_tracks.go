package registry

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"knobgenre/internal/taxonomy"
)

// UpsertScanResult inserts a newly discovered file or refreshes the scan-level
// fields of a known one. Classification state and pass flags are never
// touched. Returns the track id.
func (s *Store) UpsertScanResult(ctx context.Context, res ScanResult) (int64, error) {
	if strings.TrimSpace(res.Path) == "" {
		return 0, errors.New("upsert track: path is required")
	}
	contentType := res.ContentType
	if contentType == "" {
		contentType = taxonomy.ContentSong
	}

	var id int64
	err := s.withTx(ctx, func(tx txExecer) error {
		now := timestamp()
		err := tx.QueryRowContext(ctx, `SELECT id FROM tracks WHERE path = ?`, res.Path).Scan(&id)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			result, err := tx.ExecContext(ctx,
				`INSERT INTO tracks (path, filename, directory, filesize, mtime, content_type, created_at, updated_at)
                 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
				res.Path, res.Filename, res.Directory, res.Size, res.ModTime, string(contentType), now, now,
			)
			if err != nil {
				return fmt.Errorf("insert track: %w", err)
			}
			id, err = result.LastInsertId()
			if err != nil {
				return fmt.Errorf("last insert id: %w", err)
			}
			return nil
		case err != nil:
			return fmt.Errorf("lookup track: %w", err)
		}
		_, err = tx.ExecContext(ctx,
			`UPDATE tracks SET filename = ?, directory = ?, filesize = ?, mtime = ?, content_type = ?, updated_at = ?
             WHERE id = ?`,
			res.Filename, res.Directory, res.Size, res.ModTime, string(contentType), now, id,
		)
		if err != nil {
			return fmt.Errorf("update track: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// NeedsRescan reports whether the file is unknown or its mtime or size changed.
func (s *Store) NeedsRescan(ctx context.Context, path string, mtime float64, size int64) (bool, error) {
	var (
		storedMtime float64
		storedSize  int64
	)
	err := s.db.QueryRowContext(ensureContext(ctx),
		`SELECT mtime, filesize FROM tracks WHERE path = ?`, path,
	).Scan(&storedMtime, &storedSize)
	if errors.Is(err, sql.ErrNoRows) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("needs rescan: %w", err)
	}
	return storedMtime != mtime || storedSize != size, nil
}

// GetByID fetches a track by identifier. Returns nil when absent.
func (s *Store) GetByID(ctx context.Context, id int64) (*Track, error) {
	row := s.db.QueryRowContext(ensureContext(ctx), `SELECT `+trackColumns+` FROM tracks WHERE id = ?`, id)
	track, err := scanTrack(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get track: %w", err)
	}
	return track, nil
}

// GetByPath fetches a track by its media-root-relative path. Returns nil when absent.
func (s *Store) GetByPath(ctx context.Context, path string) (*Track, error) {
	row := s.db.QueryRowContext(ensureContext(ctx), `SELECT `+trackColumns+` FROM tracks WHERE path = ?`, path)
	track, err := scanTrack(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get track by path: %w", err)
	}
	return track, nil
}

// AllPaths returns the set of every tracked path.
func (s *Store) AllPaths(ctx context.Context) (map[string]struct{}, error) {
	rows, err := s.db.QueryContext(ensureContext(ctx), `SELECT path FROM tracks`)
	if err != nil {
		return nil, fmt.Errorf("list paths: %w", err)
	}
	defer rows.Close()

	paths := make(map[string]struct{})
	for rows.Next() {
		var path string
		if err := rows.Scan(&path); err != nil {
			return nil, err
		}
		paths[path] = struct{}{}
	}
	return paths, rows.Err()
}

// Remove deletes a track and its audit entries. Reports whether a track existed.
func (s *Store) Remove(ctx context.Context, path string) (bool, error) {
	var removed bool
	err := s.withTx(ctx, func(tx txExecer) error {
		removed = false
		var id int64
		err := tx.QueryRowContext(ctx, `SELECT id FROM tracks WHERE path = ?`, path).Scan(&id)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("lookup track: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM classification_log WHERE track_id = ?`, id); err != nil {
			return fmt.Errorf("delete classification log: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM tracks WHERE id = ?`, id); err != nil {
			return fmt.Errorf("delete track: %w", err)
		}
		removed = true
		return nil
	})
	return removed, err
}
