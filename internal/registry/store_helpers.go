package registry

import (
	"database/sql"
	"strings"
	"time"

	"knobgenre/internal/taxonomy"
)

const trackColumns = `id, path, filename, directory, filesize, mtime, duration, content_type,
    genre_parent, genre_sub, genre_source, genre_confidence, genre_raw,
    artist, title, album, acoustid, musicbrainz_id,
    pass1_done, pass2_done, pass3_done, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTrack(scanner rowScanner) (*Track, error) {
	var (
		t             Track
		duration      sql.NullFloat64
		contentType   string
		genreParent   sql.NullString
		genreSub      sql.NullString
		genreSource   sql.NullString
		genreConf     sql.NullFloat64
		genreRaw      sql.NullString
		artist        sql.NullString
		title         sql.NullString
		album         sql.NullString
		acoustID      sql.NullString
		musicbrainzID sql.NullString
		pass1, pass2  int
		pass3         int
		createdAt     string
		updatedAt     string
	)
	err := scanner.Scan(
		&t.ID, &t.Path, &t.Filename, &t.Directory, &t.Size, &t.ModTime, &duration, &contentType,
		&genreParent, &genreSub, &genreSource, &genreConf, &genreRaw,
		&artist, &title, &album, &acoustID, &musicbrainzID,
		&pass1, &pass2, &pass3, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	t.Duration = duration.Float64
	t.ContentType = taxonomy.ContentType(contentType)
	if genreParent.Valid && genreSub.Valid {
		t.Classification = &Classification{
			Genre:      taxonomy.Genre{Parent: genreParent.String, Sub: genreSub.String},
			Source:     Source(genreSource.String),
			Confidence: genreConf.Float64,
			RawLabel:   genreRaw.String,
		}
	}
	t.Artist = artist.String
	t.Title = title.String
	t.Album = album.String
	t.AcoustID = acoustID.String
	t.MusicBrainzID = musicbrainzID.String
	t.Pass1Done = pass1 != 0
	t.Pass2Done = pass2 != 0
	t.Pass3Done = pass3 != 0
	t.CreatedAt = parseTimeString(createdAt)
	t.UpdatedAt = parseTimeString(updatedAt)
	return &t, nil
}

func scanTracks(rows *sql.Rows) ([]*Track, error) {
	defer rows.Close()
	var tracks []*Track
	for rows.Next() {
		track, err := scanTrack(rows)
		if err != nil {
			return nil, err
		}
		tracks = append(tracks, track)
	}
	return tracks, rows.Err()
}

func parseTimeString(value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02 15:04:05", value); err == nil {
		return t.UTC()
	}
	return time.Time{}
}
