package registry

import (
	"fmt"
	"strings"
	"time"

	"knobgenre/internal/services"
	"knobgenre/internal/taxonomy"
)

// Pass identifies one of the escalating classification passes.
type Pass int

const (
	PassMetadata    Pass = 1
	PassFingerprint Pass = 2
	PassInference   Pass = 3
)

// Passes lists every pass in escalation order.
func Passes() []Pass {
	return []Pass{PassMetadata, PassFingerprint, PassInference}
}

// Valid reports whether p is a known pass.
func (p Pass) Valid() bool {
	return p >= PassMetadata && p <= PassInference
}

func (p Pass) String() string {
	switch p {
	case PassMetadata:
		return "metadata"
	case PassFingerprint:
		return "acoustid"
	case PassInference:
		return "maest"
	default:
		return fmt.Sprintf("pass%d", int(p))
	}
}

// column maps a pass onto its fixed flag column; caller input never reaches SQL text.
func (p Pass) column() (string, error) {
	switch p {
	case PassMetadata:
		return "pass1_done", nil
	case PassFingerprint:
		return "pass2_done", nil
	case PassInference:
		return "pass3_done", nil
	default:
		return "", fmt.Errorf("%w: %d", ErrInvalidPass, int(p))
	}
}

// Source records which evidence produced a classification.
type Source string

const (
	SourceMetadata  Source = "metadata"
	SourceDirectory Source = "directory"
	SourceAcoustID  Source = "acoustid"
	SourceMAEST     Source = "maest"
)

// Classification is the genre assignment group. It is written as a unit.
type Classification struct {
	Genre      taxonomy.Genre
	Source     Source
	Confidence float64
	RawLabel   string
}

// Validate checks that the group is complete and the confidence is in [0, 1].
func (c Classification) Validate() error {
	switch {
	case strings.TrimSpace(c.Genre.Parent) == "" || strings.TrimSpace(c.Genre.Sub) == "":
		return services.Wrap(services.ErrValidation, "registry", "classification", "genre parent and sub are required", nil)
	case strings.TrimSpace(string(c.Source)) == "":
		return services.Wrap(services.ErrValidation, "registry", "classification", "source is required", nil)
	case strings.TrimSpace(c.RawLabel) == "":
		return services.Wrap(services.ErrValidation, "registry", "classification", "raw label is required", nil)
	case c.Confidence < 0 || c.Confidence > 1 || c.Confidence != c.Confidence:
		return services.Wrap(services.ErrValidation, "registry", "classification",
			fmt.Sprintf("confidence %v outside [0, 1]", c.Confidence), nil)
	}
	return nil
}

// TrackFields carries descriptive metadata discovered by a pass. Zero values
// are left untouched when written.
type TrackFields struct {
	Artist        string
	Title         string
	Album         string
	Duration      float64
	AcoustID      string
	MusicBrainzID string
}

// IsEmpty reports whether no field would be written.
func (f TrackFields) IsEmpty() bool {
	return len(f.assignments()) == 0
}

type assignment struct {
	column string
	value  any
}

func (f TrackFields) assignments() []assignment {
	var out []assignment
	add := func(column, value string) {
		if value = strings.TrimSpace(value); value != "" {
			out = append(out, assignment{column, value})
		}
	}
	add("artist", f.Artist)
	add("title", f.Title)
	add("album", f.Album)
	if f.Duration > 0 {
		out = append(out, assignment{"duration", f.Duration})
	}
	add("acoustid", f.AcoustID)
	add("musicbrainz_id", f.MusicBrainzID)
	return out
}

// Track is the registry's record of one audio file.
type Track struct {
	ID             int64
	Path           string
	Filename       string
	Directory      string
	Size           int64
	ModTime        float64
	Duration       float64
	ContentType    taxonomy.ContentType
	Classification *Classification
	Artist         string
	Title          string
	Album          string
	AcoustID       string
	MusicBrainzID  string
	Pass1Done      bool
	Pass2Done      bool
	Pass3Done      bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// PassDone reports the attempted flag for pass p.
func (t *Track) PassDone(p Pass) bool {
	switch p {
	case PassMetadata:
		return t.Pass1Done
	case PassFingerprint:
		return t.Pass2Done
	case PassInference:
		return t.Pass3Done
	default:
		return false
	}
}

// Classified reports whether the track carries a genre assignment.
func (t *Track) Classified() bool {
	return t.Classification != nil
}

// DisplayTitle falls back to the filename when no title tag is known.
func (t *Track) DisplayTitle() string {
	if t.Title != "" {
		return t.Title
	}
	return t.Filename
}

// ScanResult is what the scanner observed for one file.
type ScanResult struct {
	Path        string
	Filename    string
	Directory   string
	Size        int64
	ModTime     float64
	ContentType taxonomy.ContentType
}

// PendingQuery selects tracks whose pass flag is unset.
type PendingQuery struct {
	Pass Pass
	// ContentType defaults to songs.
	ContentType taxonomy.ContentType
	// Limit caps the result; zero means unlimited.
	Limit int
	// UnclassifiedOnly additionally excludes tracks that already have a genre.
	UnclassifiedOnly bool
}

// LogEntry is one row of the classification audit trail.
type LogEntry struct {
	ID         int64
	TrackID    int64
	Pass       Pass
	Genre      taxonomy.Genre
	Confidence float64
	RawLabel   string
	CreatedAt  time.Time
}

// TrackFilter narrows Count. Zero values match everything.
type TrackFilter struct {
	ContentType taxonomy.ContentType
	Classified  *bool
	PassDone    Pass
}

// GroupBy selects the genre distribution granularity.
type GroupBy int

const (
	GroupByParent GroupBy = iota
	GroupBySub
)

// GenreCount is one row of a genre distribution. A zero Genre counts
// unclassified songs.
type GenreCount struct {
	Genre taxonomy.Genre
	Count int
}

// GroupCount is a labelled count.
type GroupCount struct {
	Label string
	Count int
}
