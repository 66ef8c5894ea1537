package report

import (
	"fmt"
	"io"
	"strings"

	"knobgenre/internal/registry"
)

const rule = "============================================================"

func writeHeading(w io.Writer, title string) {
	fmt.Fprintf(w, "\n%s\n  %s\n%s\n", rule, title, rule)
}

// RenderSummary writes totals, content types, sources, and pass completion.
func RenderSummary(w io.Writer, s Summary) {
	writeHeading(w, "KNOB Radio Genre Index Summary")
	totals := [][]string{
		{"Total tracks", FormatCount(s.Total), ""},
		{"Songs", FormatCount(s.Songs), ""},
		{"Classified", FormatCount(s.Classified), formatPercent(s.ClassifiedPercent())},
		{"Unclassified", FormatCount(s.Unclassified), ""},
	}
	fmt.Fprintln(w, RenderTable([]string{"Index", "Tracks", "Share"}, totals, []Alignment{AlignLeft, AlignRight, AlignRight}))

	if len(s.ContentTypes) > 0 {
		fmt.Fprintln(w, RenderTable([]string{"Content type", "Tracks"}, groupRows(s.ContentTypes, "none"), []Alignment{AlignLeft, AlignRight}))
	}
	if len(s.Sources) > 0 {
		fmt.Fprintln(w, RenderTable([]string{"Source", "Tracks"}, groupRows(s.Sources, "none"), []Alignment{AlignLeft, AlignRight}))
	}

	passes := make([][]string, 0, len(registry.Passes()))
	for _, pass := range registry.Passes() {
		passes = append(passes, []string{
			fmt.Sprintf("Pass %d (%s)", int(pass), pass),
			FormatCount(s.PassDone[pass]),
		})
	}
	fmt.Fprintln(w, RenderTable([]string{"Pass completion (songs)", "Tracks"}, passes, []Alignment{AlignLeft, AlignRight}))
}

// RenderParents writes the parent genre distribution with a bar per row.
func RenderParents(w io.Writer, d ParentDistribution) {
	writeHeading(w, "Genre Distribution (Parent)")
	rows := make([][]string, 0, len(d.Rows)+1)
	for _, r := range d.Rows {
		rows = append(rows, []string{r.Parent, FormatCount(r.Count), formatPercent(r.Percent), Bar(r.Percent)})
	}
	if d.Unclassified > 0 {
		rows = append(rows, []string{"(unclassified)", FormatCount(d.Unclassified), "", ""})
	}
	fmt.Fprintln(w, RenderTable([]string{"Parent", "Tracks", "Share", ""}, rows, []Alignment{AlignLeft, AlignRight, AlignRight, AlignLeft}))
}

// RenderSubs writes subgenre counts grouped under their parent.
func RenderSubs(w io.Writer, groups []SubGroup) {
	writeHeading(w, "Genre Distribution (Subgenre)")
	var rows [][]string
	breaks := make(map[int]bool)
	for gi, g := range groups {
		if gi > 0 {
			breaks[len(rows)] = true
		}
		for i, sub := range g.Subs {
			parent := ""
			if i == 0 {
				parent = g.Parent
			}
			name := sub.Genre.Sub
			if name == "" {
				name = "(none)"
			}
			rows = append(rows, []string{parent, name, FormatCount(sub.Count)})
		}
	}
	fmt.Fprintln(w, renderTable([]string{"Parent", "Subgenre", "Tracks"}, rows, []Alignment{AlignLeft, AlignLeft, AlignRight}, breaks))
}

// RenderUnclassified writes a sample of unclassified songs per directory.
func RenderUnclassified(w io.Writer, groups []DirectoryGroup, total int) {
	writeHeading(w, fmt.Sprintf("Unclassified Tracks (%s)", FormatCount(total)))
	if len(groups) == 0 {
		return
	}
	var rows [][]string
	breaks := make(map[int]bool)
	for gi, g := range groups {
		if gi > 0 {
			breaks[len(rows)] = true
		}
		label := fmt.Sprintf("%s/ (%s tracks)", g.Directory, FormatCount(g.Total))
		for i, track := range g.Sample {
			dir := ""
			if i == 0 {
				dir = label
			}
			rows = append(rows, []string{dir, TrackLabel(track)})
		}
		if rest := g.Remaining(); rest > 0 {
			rows = append(rows, []string{"", fmt.Sprintf("... and %s more", FormatCount(rest))})
		}
	}
	fmt.Fprintln(w, renderTable([]string{"Directory", "Track"}, rows, nil, breaks))
}

// Bar draws one '#' per two percentage points.
func Bar(pct float64) string {
	if pct <= 0 {
		return ""
	}
	return strings.Repeat("#", int(pct/2))
}

// TrackLabel is "artist - title", or just the title when the artist is unknown.
func TrackLabel(t *registry.Track) string {
	title := t.DisplayTitle()
	if t.Artist == "" {
		return title
	}
	return t.Artist + " - " + title
}

func groupRows(counts []registry.GroupCount, blank string) [][]string {
	rows := make([][]string, 0, len(counts))
	for _, c := range counts {
		label := c.Label
		if label == "" {
			label = blank
		}
		rows = append(rows, []string{label, FormatCount(c.Count)})
	}
	return rows
}
