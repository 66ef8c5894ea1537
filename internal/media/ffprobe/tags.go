package ffprobe

import (
	"context"
	"strings"
	"time"
)

// Tags holds the embedded metadata the metadata pass consumes.
type Tags struct {
	Artist   string
	Title    string
	Album    string
	Duration float64
	// Genres lists the raw genre strings in file order.
	Genres []string
}

// Empty reports whether nothing was read.
func (t Tags) Empty() bool {
	return t.Artist == "" && t.Title == "" && t.Album == "" && t.Duration <= 0 && len(t.Genres) == 0
}

// TagsFromResult extracts Tags from a parsed ffprobe result.
func TagsFromResult(r Result) Tags {
	return Tags{
		Artist:   r.Tag("artist"),
		Title:    r.Tag("title"),
		Album:    r.Tag("album"),
		Duration: r.DurationSeconds(),
		Genres:   splitGenres(r.Tag("genre")),
	}
}

// ID3v2.4 and Vorbis multi-value genres reach ffprobe joined by these.
func splitGenres(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.FieldsFunc(value, func(r rune) bool {
		return r == ';' || r == 0
	})
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Reader reads embedded tags by running ffprobe.
type Reader struct {
	Binary  string
	Timeout time.Duration
}

// NewReader returns a tag reader for the given ffprobe binary.
func NewReader(binary string, timeout time.Duration) *Reader {
	return &Reader{Binary: binary, Timeout: timeout}
}

// ReadTags probes path and returns its embedded tags.
func (r *Reader) ReadTags(ctx context.Context, path string) (Tags, error) {
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}
	result, err := Inspect(ctx, r.Binary, path)
	if err != nil {
		return Tags{}, err
	}
	return TagsFromResult(result), nil
}
