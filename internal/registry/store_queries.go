package registry

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"knobgenre/internal/taxonomy"
)

// TracksPending returns tracks whose pass flag is unset, ordered by id.
func (s *Store) TracksPending(ctx context.Context, q PendingQuery) ([]*Track, error) {
	column, err := q.Pass.column()
	if err != nil {
		return nil, err
	}
	contentType := q.ContentType
	if contentType == "" {
		contentType = taxonomy.ContentSong
	}

	var b strings.Builder
	b.WriteString(`SELECT ` + trackColumns + ` FROM tracks WHERE ` + column + ` = 0 AND content_type = ?`)
	args := []any{string(contentType)}
	if q.UnclassifiedOnly {
		b.WriteString(` AND genre_parent IS NULL`)
	}
	b.WriteString(` ORDER BY id`)
	if q.Limit > 0 {
		b.WriteString(` LIMIT ?`)
		args = append(args, q.Limit)
	}

	rows, err := s.db.QueryContext(ensureContext(ctx), b.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("query pending tracks: %w", err)
	}
	tracks, err := scanTracks(rows)
	if err != nil {
		return nil, fmt.Errorf("scan pending tracks: %w", err)
	}
	return tracks, nil
}

// Count returns the number of tracks matching the filter.
func (s *Store) Count(ctx context.Context, f TrackFilter) (int, error) {
	var (
		conds []string
		args  []any
	)
	if f.ContentType != "" {
		conds = append(conds, "content_type = ?")
		args = append(args, string(f.ContentType))
	}
	if f.Classified != nil {
		if *f.Classified {
			conds = append(conds, "genre_parent IS NOT NULL")
		} else {
			conds = append(conds, "genre_parent IS NULL")
		}
	}
	if f.PassDone != 0 {
		column, err := f.PassDone.column()
		if err != nil {
			return 0, err
		}
		conds = append(conds, column+" = 1")
	}
	query := `SELECT COUNT(*) FROM tracks`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	var count int
	if err := s.db.QueryRowContext(ensureContext(ctx), query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count tracks: %w", err)
	}
	return count, nil
}

// ContentTypeCounts returns track counts per content type, largest first.
func (s *Store) ContentTypeCounts(ctx context.Context) ([]GroupCount, error) {
	return s.groupCounts(ctx, `SELECT content_type, COUNT(*) AS cnt FROM tracks
        GROUP BY content_type ORDER BY cnt DESC, content_type`)
}

// SourceCounts returns classified track counts per evidence source, largest first.
func (s *Store) SourceCounts(ctx context.Context) ([]GroupCount, error) {
	return s.groupCounts(ctx, `SELECT genre_source, COUNT(*) AS cnt FROM tracks
        WHERE genre_parent IS NOT NULL
        GROUP BY genre_source ORDER BY cnt DESC, genre_source`)
}

func (s *Store) groupCounts(ctx context.Context, query string) ([]GroupCount, error) {
	rows, err := s.db.QueryContext(ensureContext(ctx), query)
	if err != nil {
		return nil, fmt.Errorf("group counts: %w", err)
	}
	defer rows.Close()
	var out []GroupCount
	for rows.Next() {
		var gc GroupCount
		if err := rows.Scan(&gc.Label, &gc.Count); err != nil {
			return nil, err
		}
		out = append(out, gc)
	}
	return out, rows.Err()
}

// GenreDistribution counts songs per parent genre or per (parent, sub) pair,
// largest first. Unclassified songs appear as a zero Genre.
func (s *Store) GenreDistribution(ctx context.Context, by GroupBy) ([]GenreCount, error) {
	var query string
	switch by {
	case GroupByParent:
		query = `SELECT genre_parent, NULL, COUNT(*) AS cnt FROM tracks
            WHERE content_type = 'song'
            GROUP BY genre_parent ORDER BY cnt DESC, genre_parent`
	case GroupBySub:
		query = `SELECT genre_parent, genre_sub, COUNT(*) AS cnt FROM tracks
            WHERE content_type = 'song'
            GROUP BY genre_parent, genre_sub ORDER BY cnt DESC, genre_parent, genre_sub`
	default:
		return nil, fmt.Errorf("unknown grouping %d", int(by))
	}

	rows, err := s.db.QueryContext(ensureContext(ctx), query)
	if err != nil {
		return nil, fmt.Errorf("genre distribution: %w", err)
	}
	defer rows.Close()
	var out []GenreCount
	for rows.Next() {
		var (
			parent, sub sql.NullString
			gc          GenreCount
		)
		if err := rows.Scan(&parent, &sub, &gc.Count); err != nil {
			return nil, err
		}
		gc.Genre = taxonomy.Genre{Parent: parent.String, Sub: sub.String}
		out = append(out, gc)
	}
	return out, rows.Err()
}

// TracksByGenre returns songs in the given parent, optionally narrowed to a
// subgenre, ordered by artist then title.
func (s *Store) TracksByGenre(ctx context.Context, parent, sub string) ([]*Track, error) {
	conds := []string{"content_type = 'song'"}
	var args []any
	if parent != "" {
		conds = append(conds, "genre_parent = ?")
		args = append(args, parent)
	}
	if sub != "" {
		conds = append(conds, "genre_sub = ?")
		args = append(args, sub)
	}
	rows, err := s.db.QueryContext(ensureContext(ctx),
		`SELECT `+trackColumns+` FROM tracks WHERE `+strings.Join(conds, " AND ")+` ORDER BY artist, title, id`,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("tracks by genre: %w", err)
	}
	tracks, err := scanTracks(rows)
	if err != nil {
		return nil, fmt.Errorf("scan tracks by genre: %w", err)
	}
	return tracks, nil
}

// Unclassified returns songs without a genre, ordered by directory then filename.
func (s *Store) Unclassified(ctx context.Context) ([]*Track, error) {
	rows, err := s.db.QueryContext(ensureContext(ctx),
		`SELECT `+trackColumns+` FROM tracks
         WHERE content_type = 'song' AND genre_parent IS NULL
         ORDER BY directory, filename`,
	)
	if err != nil {
		return nil, fmt.Errorf("unclassified tracks: %w", err)
	}
	tracks, err := scanTracks(rows)
	if err != nil {
		return nil, fmt.Errorf("scan unclassified tracks: %w", err)
	}
	return tracks, nil
}

// ClassificationLog returns the audit entries for a track, oldest first.
func (s *Store) ClassificationLog(ctx context.Context, trackID int64) ([]LogEntry, error) {
	rows, err := s.db.QueryContext(ensureContext(ctx),
		`SELECT id, track_id, pass_num, genre_parent, genre_sub, confidence, raw_label, created_at
         FROM classification_log WHERE track_id = ? ORDER BY id`, trackID,
	)
	if err != nil {
		return nil, fmt.Errorf("classification log: %w", err)
	}
	defer rows.Close()
	var out []LogEntry
	for rows.Next() {
		var (
			e         LogEntry
			pass      int
			createdAt string
		)
		if err := rows.Scan(&e.ID, &e.TrackID, &pass, &e.Genre.Parent, &e.Genre.Sub,
			&e.Confidence, &e.RawLabel, &createdAt); err != nil {
			return nil, err
		}
		e.Pass = Pass(pass)
		e.CreatedAt = parseTimeString(createdAt)
		out = append(out, e)
	}
	return out, rows.Err()
}
