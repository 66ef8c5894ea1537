package report_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"knobgenre/internal/registry"
	"knobgenre/internal/report"
	"knobgenre/internal/taxonomy"
)

func sampleTracks() []*registry.Track {
	return []*registry.Track{
		{
			Path:        "bass/a.mp3",
			Filename:    "a.mp3",
			Artist:      "Skream",
			Title:       "Midnight Request Line",
			Duration:    245.7,
			ContentType: taxonomy.ContentSong,
			Classification: &registry.Classification{
				Genre:      taxonomy.Genre{Parent: "Bass", Sub: "Dubstep"},
				Source:     registry.SourceMetadata,
				Confidence: 0.9,
				RawLabel:   "Dubstep",
			},
		},
		{
			Path:        "misc/untagged.mp3",
			Filename:    "untagged.mp3",
			ContentType: taxonomy.ContentSong,
		},
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := report.WriteJSON(&buf, sampleTracks()); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	var got []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	if got[0]["genre_sub"] != "Dubstep" || got[0]["genre_confidence"] != 0.9 {
		t.Fatalf("unexpected first record %v", got[0])
	}
	if v, ok := got[1]["artist"]; !ok || v != nil {
		t.Fatalf("unknown values should be null, got %v", got[1])
	}
	if !strings.Contains(buf.String(), "\n  {") {
		t.Fatalf("expected indented output:\n%s", buf.String())
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := report.WriteCSV(&buf, sampleTracks()); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	want := "path,artist,title,album,genre_parent,genre_sub,genre_source,genre_confidence,duration,content_type"
	if strings.Join(rows[0], ",") != want {
		t.Fatalf("unexpected header %v", rows[0])
	}
	if strings.Join(rows[1], ",") != "bass/a.mp3,Skream,Midnight Request Line,,Bass,Dubstep,metadata,0.9,245.7,song" {
		t.Fatalf("unexpected row %v", rows[1])
	}
	if strings.Join(rows[2], ",") != "misc/untagged.mp3,,,,,,,,,song" {
		t.Fatalf("unexpected row %v", rows[2])
	}
}

func TestWriteM3U(t *testing.T) {
	var buf bytes.Buffer
	if err := report.WriteM3U(&buf, sampleTracks(), "Dubstep", "/media/radio"); err != nil {
		t.Fatalf("WriteM3U: %v", err)
	}
	want := strings.Join([]string{
		"#EXTM3U",
		"# KNOB Radio - Dubstep",
		"# 2 tracks",
		"",
		"#EXTINF:245,Skream - Midnight Request Line",
		"/media/radio/bass/a.mp3",
		"#EXTINF:-1,Unknown - untagged.mp3",
		"/media/radio/misc/untagged.mp3",
		"",
	}, "\n")
	if buf.String() != want {
		t.Fatalf("unexpected playlist:\n%s", buf.String())
	}
}

func TestDefaultOutputName(t *testing.T) {
	cases := []struct {
		parent, sub string
		format      report.Format
		want        string
	}{
		{"", "", report.FormatJSON, "knob_all.json"},
		{"Bass", "", report.FormatM3U, "knob_bass.m3u"},
		{"Dub/Reggae", "", report.FormatCSV, "knob_dub-reggae.csv"},
		{"Bass", "Drum & Bass", report.FormatM3U, "knob_drum_&_bass.m3u"},
	}
	for _, tc := range cases {
		if got := report.DefaultOutputName(tc.parent, tc.sub, tc.format); got != tc.want {
			t.Fatalf("DefaultOutputName(%q, %q) = %q, want %q", tc.parent, tc.sub, got, tc.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := report.ParseFormat(""); err != nil || f != report.FormatJSON {
		t.Fatalf("expected json default, got %q %v", f, err)
	}
	if f, err := report.ParseFormat("M3U"); err != nil || f != report.FormatM3U {
		t.Fatalf("expected m3u, got %q %v", f, err)
	}
	if _, err := report.ParseFormat("xml"); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestExportFiltersByGenre(t *testing.T) {
	store := seedLibrary(t)
	out := filepath.Join(t.TempDir(), "bass.m3u")
	path, n, err := report.Export(context.Background(), store, report.ExportOptions{
		Format:    report.FormatM3U,
		Parent:    "Bass",
		Output:    out,
		MediaRoot: "/media/radio",
	})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if path != out || n != 3 {
		t.Fatalf("expected 3 tracks at %s, got %d at %s", out, n, path)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if !strings.Contains(string(data), "# KNOB Radio - Bass") || strings.Contains(string(data), "jazz/") {
		t.Fatalf("unexpected export:\n%s", data)
	}
}
