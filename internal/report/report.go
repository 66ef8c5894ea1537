// Package report summarizes the registry and exports track listings.
//
// Report builders gather plain data structs from the registry; the Render*
// functions turn them into terminal tables. Exporters write the same track
// listing as JSON, CSV, or an M3U playlist.
package report

import (
	"context"
	"sort"

	"knobgenre/internal/registry"
	"knobgenre/internal/taxonomy"
)

// UnclassifiedSampleSize caps how many tracks are listed per directory.
const UnclassifiedSampleSize = 10

// Source is the registry surface reports read from.
type Source interface {
	Count(ctx context.Context, f registry.TrackFilter) (int, error)
	ContentTypeCounts(ctx context.Context) ([]registry.GroupCount, error)
	SourceCounts(ctx context.Context) ([]registry.GroupCount, error)
	GenreDistribution(ctx context.Context, by registry.GroupBy) ([]registry.GenreCount, error)
	TracksByGenre(ctx context.Context, parent, sub string) ([]*registry.Track, error)
	Unclassified(ctx context.Context) ([]*registry.Track, error)
}

// Summary is the high-level state of the index.
type Summary struct {
	Total        int
	Songs        int
	Classified   int
	Unclassified int
	ContentTypes []registry.GroupCount
	Sources      []registry.GroupCount
	// PassDone counts songs whose pass flag is set, indexed by pass.
	PassDone map[registry.Pass]int
}

// ClassifiedPercent is the classified share of songs.
func (s Summary) ClassifiedPercent() float64 {
	return percent(s.Classified, s.Songs)
}

// BuildSummary gathers totals, breakdowns, and pass completion.
func BuildSummary(ctx context.Context, src Source) (Summary, error) {
	var (
		out  Summary
		err  error
		yes  = true
		no   = false
		song = taxonomy.ContentSong
	)
	if out.Total, err = src.Count(ctx, registry.TrackFilter{}); err != nil {
		return out, err
	}
	if out.Songs, err = src.Count(ctx, registry.TrackFilter{ContentType: song}); err != nil {
		return out, err
	}
	if out.Classified, err = src.Count(ctx, registry.TrackFilter{ContentType: song, Classified: &yes}); err != nil {
		return out, err
	}
	if out.Unclassified, err = src.Count(ctx, registry.TrackFilter{ContentType: song, Classified: &no}); err != nil {
		return out, err
	}
	if out.ContentTypes, err = src.ContentTypeCounts(ctx); err != nil {
		return out, err
	}
	if out.Sources, err = src.SourceCounts(ctx); err != nil {
		return out, err
	}
	out.PassDone = make(map[registry.Pass]int, len(registry.Passes()))
	for _, pass := range registry.Passes() {
		n, err := src.Count(ctx, registry.TrackFilter{ContentType: song, PassDone: pass})
		if err != nil {
			return out, err
		}
		out.PassDone[pass] = n
	}
	return out, nil
}

// ParentRow is one parent genre in the distribution.
type ParentRow struct {
	Parent string
	Count  int
	// Percent is relative to all songs, classified or not.
	Percent float64
}

// ParentDistribution lists parent genres largest first.
type ParentDistribution struct {
	Rows         []ParentRow
	Unclassified int
}

// BuildParentDistribution counts songs per parent genre.
func BuildParentDistribution(ctx context.Context, src Source) (ParentDistribution, error) {
	counts, err := src.GenreDistribution(ctx, registry.GroupByParent)
	if err != nil {
		return ParentDistribution{}, err
	}
	total := 0
	for _, c := range counts {
		total += c.Count
	}
	var out ParentDistribution
	for _, c := range counts {
		if c.Genre.Parent == "" {
			out.Unclassified += c.Count
			continue
		}
		out.Rows = append(out.Rows, ParentRow{
			Parent:  c.Genre.Parent,
			Count:   c.Count,
			Percent: percent(c.Count, total),
		})
	}
	return out, nil
}

// SubGroup is one parent with its subgenre counts.
type SubGroup struct {
	Parent string
	Subs   []registry.GenreCount
}

// BuildSubDistribution groups subgenre counts under their parent. Parents are
// ordered by their largest subgenre; subgenres largest first.
func BuildSubDistribution(ctx context.Context, src Source) ([]SubGroup, error) {
	counts, err := src.GenreDistribution(ctx, registry.GroupBySub)
	if err != nil {
		return nil, err
	}
	index := make(map[string]int)
	var out []SubGroup
	for _, c := range counts {
		if c.Genre.Parent == "" {
			continue
		}
		i, ok := index[c.Genre.Parent]
		if !ok {
			i = len(out)
			index[c.Genre.Parent] = i
			out = append(out, SubGroup{Parent: c.Genre.Parent})
		}
		out[i].Subs = append(out[i].Subs, c)
	}
	return out, nil
}

// DirectoryGroup is the unclassified songs of one directory.
type DirectoryGroup struct {
	Directory string
	Total     int
	// Sample holds at most UnclassifiedSampleSize tracks.
	Sample []*registry.Track
}

// Remaining is how many tracks the sample leaves out.
func (g DirectoryGroup) Remaining() int {
	return g.Total - len(g.Sample)
}

// BuildUnclassified groups unclassified songs by directory, sorted by name.
func BuildUnclassified(ctx context.Context, src Source) ([]DirectoryGroup, int, error) {
	tracks, err := src.Unclassified(ctx)
	if err != nil {
		return nil, 0, err
	}
	byDir := make(map[string]*DirectoryGroup)
	for _, track := range tracks {
		g, ok := byDir[track.Directory]
		if !ok {
			g = &DirectoryGroup{Directory: track.Directory}
			byDir[track.Directory] = g
		}
		g.Total++
		if len(g.Sample) < UnclassifiedSampleSize {
			g.Sample = append(g.Sample, track)
		}
	}
	out := make([]DirectoryGroup, 0, len(byDir))
	for _, g := range byDir {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Directory < out[j].Directory })
	return out, len(tracks), nil
}

func percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) * 100 / float64(whole)
}
