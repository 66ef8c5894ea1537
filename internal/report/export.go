package report

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"knobgenre/internal/fileutil"
	"knobgenre/internal/registry"
)

// Format is an export file format.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatM3U  Format = "m3u"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(value string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(value))); f {
	case "":
		return FormatJSON, nil
	case FormatJSON, FormatCSV, FormatM3U:
		return f, nil
	default:
		return "", fmt.Errorf("unknown export format %q (want json, csv, or m3u)", value)
	}
}

// csvFields is the fixed column order of CSV exports and the key set of JSON
// records.
var csvFields = []string{
	"path", "artist", "title", "album", "genre_parent", "genre_sub",
	"genre_source", "genre_confidence", "duration", "content_type",
}

// ExportOptions selects and places an export.
type ExportOptions struct {
	Format Format
	// Parent and Sub filter songs; both empty exports every song.
	Parent string
	Sub    string
	// Output defaults to DefaultOutputName in the working directory.
	Output string
	// MediaRoot prefixes M3U entries.
	MediaRoot string
}

// Label names the selection for playlist headers.
func (o ExportOptions) Label() string {
	switch {
	case o.Sub != "":
		return o.Sub
	case o.Parent != "":
		return o.Parent
	default:
		return "All Songs"
	}
}

// DefaultOutputName is knob_<label>.<format>, with the label lowercased and
// slashes and spaces made filename-safe.
func DefaultOutputName(parent, sub string, format Format) string {
	label := sub
	if label == "" {
		label = parent
	}
	if label == "" {
		label = "all"
	}
	label = strings.ToLower(strings.ReplaceAll(strings.ReplaceAll(label, "/", "-"), " ", "_"))
	return fmt.Sprintf("knob_%s.%s", label, format)
}

// Export writes the selected songs to disk and returns the output path and
// the number of tracks written.
func Export(ctx context.Context, src Source, opts ExportOptions) (string, int, error) {
	if opts.Format == "" {
		opts.Format = FormatJSON
	}
	output := opts.Output
	if output == "" {
		output = DefaultOutputName(opts.Parent, opts.Sub, opts.Format)
	}
	tracks, err := src.TracksByGenre(ctx, opts.Parent, opts.Sub)
	if err != nil {
		return "", 0, err
	}
	err = fileutil.WriteFileAtomic(output, 0o644, func(w io.Writer) error {
		return Write(w, tracks, opts)
	})
	if err != nil {
		return "", 0, fmt.Errorf("write %s: %w", output, err)
	}
	return output, len(tracks), nil
}

// Write encodes tracks in opts.Format.
func Write(w io.Writer, tracks []*registry.Track, opts ExportOptions) error {
	switch opts.Format {
	case FormatJSON, "":
		return WriteJSON(w, tracks)
	case FormatCSV:
		return WriteCSV(w, tracks)
	case FormatM3U:
		return WriteM3U(w, tracks, opts.Label(), opts.MediaRoot)
	default:
		return fmt.Errorf("unknown export format %q", opts.Format)
	}
}

type exportRecord struct {
	Path            string   `json:"path"`
	Artist          *string  `json:"artist"`
	Title           *string  `json:"title"`
	Album           *string  `json:"album"`
	GenreParent     *string  `json:"genre_parent"`
	GenreSub        *string  `json:"genre_sub"`
	GenreSource     *string  `json:"genre_source"`
	GenreConfidence *float64 `json:"genre_confidence"`
	Duration        *float64 `json:"duration"`
	ContentType     string   `json:"content_type"`
}

func newExportRecord(t *registry.Track) exportRecord {
	rec := exportRecord{
		Path:        t.Path,
		Artist:      optString(t.Artist),
		Title:       optString(t.Title),
		Album:       optString(t.Album),
		Duration:    optFloat(t.Duration),
		ContentType: string(t.ContentType),
	}
	if c := t.Classification; c != nil {
		source := string(c.Source)
		confidence := c.Confidence
		rec.GenreParent = optString(c.Genre.Parent)
		rec.GenreSub = optString(c.Genre.Sub)
		rec.GenreSource = &source
		rec.GenreConfidence = &confidence
	}
	return rec
}

// WriteJSON writes an indented array; unknown values are null.
func WriteJSON(w io.Writer, tracks []*registry.Track) error {
	records := make([]exportRecord, 0, len(tracks))
	for _, t := range tracks {
		records = append(records, newExportRecord(t))
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

// WriteCSV writes a header row and one row per track; unknown values are empty.
func WriteCSV(w io.Writer, tracks []*registry.Track) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvFields); err != nil {
		return err
	}
	for _, t := range tracks {
		rec := newExportRecord(t)
		row := []string{
			rec.Path,
			derefString(rec.Artist),
			derefString(rec.Title),
			derefString(rec.Album),
			derefString(rec.GenreParent),
			derefString(rec.GenreSub),
			derefString(rec.GenreSource),
			formatOptFloat(rec.GenreConfidence),
			formatOptFloat(rec.Duration),
			rec.ContentType,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteM3U writes an extended playlist with absolute paths under mediaRoot.
func WriteM3U(w io.Writer, tracks []*registry.Track, label, mediaRoot string) error {
	var b strings.Builder
	b.WriteString("#EXTM3U\n")
	fmt.Fprintf(&b, "# KNOB Radio - %s\n", label)
	fmt.Fprintf(&b, "# %d tracks\n\n", len(tracks))
	for _, t := range tracks {
		duration := -1
		if t.Duration > 0 {
			duration = int(t.Duration)
		}
		artist := t.Artist
		if artist == "" {
			artist = "Unknown"
		}
		fmt.Fprintf(&b, "#EXTINF:%d,%s - %s\n", duration, artist, t.DisplayTitle())
		b.WriteString(filepath.Join(mediaRoot, filepath.FromSlash(t.Path)))
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func optString(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func optFloat(v float64) *float64 {
	if v == 0 {
		return nil
	}
	return &v
}

func derefString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func formatOptFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
