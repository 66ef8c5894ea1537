package registry_test

import (
	"context"
	"errors"
	"testing"

	"knobgenre/internal/registry"
	"knobgenre/internal/services"
	"knobgenre/internal/taxonomy"
	"knobgenre/internal/testsupport"
)

func dubstep(raw string) registry.Classification {
	return registry.Classification{
		Genre:      taxonomy.Genre{Parent: "Bass", Sub: "Dubstep"},
		Source:     registry.SourceMetadata,
		Confidence: 0.9,
		RawLabel:   raw,
	}
}

func TestOpenCreatesSchemaAndReopens(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	testsupport.AddTrack(t, store, "bass/track1.mp3")
	if err := store.Ping(context.Background()); err != nil {
		t.Fatalf("Ping: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := registry.Open(cfg)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()
	track, err := reopened.GetByPath(context.Background(), "bass/track1.mp3")
	if err != nil {
		t.Fatalf("GetByPath: %v", err)
	}
	if track == nil || track.Filename != "track1.mp3" || track.Directory != "bass" {
		t.Fatalf("unexpected track after reopen: %#v", track)
	}
}

func TestUpsertPreservesClassification(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	track := testsupport.AddTrack(t, store, "bass/track1.mp3")
	if err := store.RecordClassification(ctx, track.ID, dubstep("Dubstep"), registry.PassMetadata, registry.TrackFields{}); err != nil {
		t.Fatalf("RecordClassification: %v", err)
	}

	id, err := store.UpsertScanResult(ctx, registry.ScanResult{
		Path:      "bass/track1.mp3",
		Filename:  "track1.mp3",
		Directory: "bass",
		Size:      2048,
		ModTime:   1800000000,
	})
	if err != nil {
		t.Fatalf("UpsertScanResult: %v", err)
	}
	if id != track.ID {
		t.Fatalf("expected same id %d, got %d", track.ID, id)
	}

	updated, err := store.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if updated.Size != 2048 || updated.ModTime != 1800000000 {
		t.Fatalf("scan attributes not refreshed: %#v", updated)
	}
	if !updated.Classified() || updated.Classification.Genre.Sub != "Dubstep" || !updated.Pass1Done {
		t.Fatalf("classification lost on upsert: %#v", updated)
	}
}

func TestNeedsRescan(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	needs, err := store.NeedsRescan(ctx, "new.mp3", 1, 1)
	if err != nil || !needs {
		t.Fatalf("unseen path: needs=%v err=%v", needs, err)
	}

	track := testsupport.AddTrack(t, store, "a/b.mp3")
	cases := []struct {
		name  string
		mtime float64
		size  int64
		want  bool
	}{
		{"unchanged", track.ModTime, track.Size, false},
		{"mtime changed", track.ModTime + 1, track.Size, true},
		{"size changed", track.ModTime, track.Size + 1, true},
	}
	for _, tc := range cases {
		got, err := store.NeedsRescan(ctx, "a/b.mp3", tc.mtime, tc.size)
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if got != tc.want {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestTracksPendingExcludesNonSongs(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	song := testsupport.AddTrack(t, store, "bass/track1.mp3")
	testsupport.AddTrackOfType(t, store, "callsigns/id.mp3", taxonomy.ContentCallsign)
	testsupport.AddTrackOfType(t, store, "promos/p.mp3", taxonomy.ContentPromo)

	for _, pass := range registry.Passes() {
		tracks, err := store.TracksPending(ctx, registry.PendingQuery{Pass: pass})
		if err != nil {
			t.Fatalf("TracksPending(%s): %v", pass, err)
		}
		if len(tracks) != 1 || tracks[0].ID != song.ID {
			t.Fatalf("pass %s: expected only the song, got %d tracks", pass, len(tracks))
		}
	}
}

func TestTracksPendingFiltersAndLimits(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	a := testsupport.AddTrack(t, store, "x/a.mp3")
	b := testsupport.AddTrack(t, store, "x/b.mp3")
	c := testsupport.AddTrack(t, store, "x/c.mp3")

	if err := store.RecordClassification(ctx, a.ID, dubstep("Dubstep"), registry.PassMetadata, registry.TrackFields{}); err != nil {
		t.Fatalf("RecordClassification: %v", err)
	}
	if err := store.MarkPassAttempted(ctx, b.ID, registry.PassFingerprint); err != nil {
		t.Fatalf("MarkPassAttempted: %v", err)
	}

	all, err := store.TracksPending(ctx, registry.PendingQuery{Pass: registry.PassFingerprint})
	if err != nil {
		t.Fatalf("TracksPending: %v", err)
	}
	if len(all) != 2 || all[0].ID != a.ID || all[1].ID != c.ID {
		t.Fatalf("expected a,c pending for pass 2, got %v", ids(all))
	}

	unclassified, err := store.TracksPending(ctx, registry.PendingQuery{Pass: registry.PassFingerprint, UnclassifiedOnly: true})
	if err != nil {
		t.Fatalf("TracksPending unclassified: %v", err)
	}
	if len(unclassified) != 1 || unclassified[0].ID != c.ID {
		t.Fatalf("expected only c, got %v", ids(unclassified))
	}

	limited, err := store.TracksPending(ctx, registry.PendingQuery{Pass: registry.PassInference, Limit: 2})
	if err != nil {
		t.Fatalf("TracksPending limited: %v", err)
	}
	if len(limited) != 2 || limited[0].ID != a.ID || limited[1].ID != b.ID {
		t.Fatalf("expected first two by id, got %v", ids(limited))
	}

	if _, err := store.TracksPending(ctx, registry.PendingQuery{Pass: 4}); !errors.Is(err, registry.ErrInvalidPass) {
		t.Fatalf("expected ErrInvalidPass, got %v", err)
	}
}

func TestRecordClassificationWritesGroupFlagAndAudit(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	track := testsupport.AddTrack(t, store, "bass/track1.mp3")
	fields := registry.TrackFields{Artist: "Artist", Title: "Song", Duration: 181.5}
	if err := store.RecordClassification(ctx, track.ID, dubstep("Dubstep"), registry.PassMetadata, fields); err != nil {
		t.Fatalf("RecordClassification: %v", err)
	}

	got, err := store.GetByID(ctx, track.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	c := got.Classification
	if c == nil || c.Genre.Parent != "Bass" || c.Genre.Sub != "Dubstep" || c.Source != registry.SourceMetadata ||
		c.Confidence != 0.9 || c.RawLabel != "Dubstep" {
		t.Fatalf("unexpected classification: %#v", c)
	}
	if !got.Pass1Done || got.Pass2Done || got.Pass3Done {
		t.Fatalf("unexpected pass flags: %v %v %v", got.Pass1Done, got.Pass2Done, got.Pass3Done)
	}
	if got.Artist != "Artist" || got.Title != "Song" || got.Duration != 181.5 {
		t.Fatalf("descriptive fields not written: %#v", got)
	}

	entries, err := store.ClassificationLog(ctx, track.ID)
	if err != nil {
		t.Fatalf("ClassificationLog: %v", err)
	}
	if len(entries) != 1 || entries[0].Pass != registry.PassMetadata || entries[0].Genre.Sub != "Dubstep" {
		t.Fatalf("unexpected audit entries: %#v", entries)
	}
}

func TestRecordClassificationIsIdempotent(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	track := testsupport.AddTrack(t, store, "bass/track1.mp3")
	for i := 0; i < 2; i++ {
		if err := store.RecordClassification(ctx, track.ID, dubstep("Dubstep"), registry.PassMetadata, registry.TrackFields{}); err != nil {
			t.Fatalf("RecordClassification #%d: %v", i, err)
		}
	}
	entries, err := store.ClassificationLog(ctx, track.ID)
	if err != nil {
		t.Fatalf("ClassificationLog: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected a single audit entry, got %d", len(entries))
	}
}

func TestRecordClassificationRejectsIncompleteGroup(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	track := testsupport.AddTrack(t, store, "x/a.mp3")
	bad := []registry.Classification{
		{Genre: taxonomy.Genre{Parent: "Bass"}, Source: registry.SourceMetadata, Confidence: 0.5, RawLabel: "x"},
		{Genre: taxonomy.Genre{Parent: "Bass", Sub: "Dubstep"}, Confidence: 0.5, RawLabel: "x"},
		{Genre: taxonomy.Genre{Parent: "Bass", Sub: "Dubstep"}, Source: registry.SourceMetadata, Confidence: 1.5, RawLabel: "x"},
		{Genre: taxonomy.Genre{Parent: "Bass", Sub: "Dubstep"}, Source: registry.SourceMetadata, Confidence: 0.5},
	}
	for i, c := range bad {
		err := store.RecordClassification(ctx, track.ID, c, registry.PassMetadata, registry.TrackFields{})
		if !errors.Is(err, services.ErrValidation) {
			t.Fatalf("case %d: expected validation error, got %v", i, err)
		}
	}

	got, err := store.GetByID(ctx, track.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Classified() || got.Pass1Done {
		t.Fatalf("rejected classification left state behind: %#v", got)
	}
	entries, _ := store.ClassificationLog(ctx, track.ID)
	if len(entries) != 0 {
		t.Fatalf("expected no audit entries, got %d", len(entries))
	}
}

func TestMutationsOnUnknownTrack(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	if err := store.RecordClassification(ctx, 999, dubstep("Dubstep"), registry.PassMetadata, registry.TrackFields{}); !errors.Is(err, registry.ErrTrackNotFound) {
		t.Fatalf("RecordClassification: expected ErrTrackNotFound, got %v", err)
	}
	if err := store.MarkPassAttempted(ctx, 999, registry.PassMetadata); !errors.Is(err, registry.ErrTrackNotFound) {
		t.Fatalf("MarkPassAttempted: expected ErrTrackNotFound, got %v", err)
	}
	if err := store.UpdateDescriptiveFields(ctx, 999, registry.TrackFields{Artist: "x"}); !errors.Is(err, registry.ErrTrackNotFound) {
		t.Fatalf("UpdateDescriptiveFields: expected ErrTrackNotFound, got %v", err)
	}
}

func TestMarkPassAttemptedLeavesGenreAndLogAlone(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	track := testsupport.AddTrack(t, store, "x/a.mp3")
	if err := store.MarkPassAttempted(ctx, track.ID, registry.PassInference); err != nil {
		t.Fatalf("MarkPassAttempted: %v", err)
	}
	// Repeating is harmless: flags never go back to zero.
	if err := store.MarkPassAttempted(ctx, track.ID, registry.PassInference); err != nil {
		t.Fatalf("MarkPassAttempted again: %v", err)
	}
	got, err := store.GetByID(ctx, track.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if !got.Pass3Done || got.Classified() {
		t.Fatalf("unexpected state: %#v", got)
	}
	entries, _ := store.ClassificationLog(ctx, track.ID)
	if len(entries) != 0 {
		t.Fatalf("expected no audit entries, got %d", len(entries))
	}
}

func TestUpdateDescriptiveFieldsSkipsEmptyValues(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	track := testsupport.AddTrack(t, store, "x/a.mp3")
	if err := store.UpdateDescriptiveFields(ctx, track.ID, registry.TrackFields{Artist: "First", Album: "LP"}); err != nil {
		t.Fatalf("UpdateDescriptiveFields: %v", err)
	}
	if err := store.UpdateDescriptiveFields(ctx, track.ID, registry.TrackFields{Title: "Tune", AcoustID: "AQAD"}); err != nil {
		t.Fatalf("UpdateDescriptiveFields: %v", err)
	}
	if err := store.UpdateDescriptiveFields(ctx, track.ID, registry.TrackFields{}); err != nil {
		t.Fatalf("empty update: %v", err)
	}
	got, err := store.GetByID(ctx, track.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Artist != "First" || got.Album != "LP" || got.Title != "Tune" || got.AcoustID != "AQAD" {
		t.Fatalf("unexpected fields: %#v", got)
	}
	if got.Pass1Done || got.Classified() {
		t.Fatalf("descriptive update touched pass state: %#v", got)
	}
}

func TestRemoveDeletesTrackAndAudit(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	track := testsupport.AddTrack(t, store, "bass/track1.mp3")
	if err := store.RecordClassification(ctx, track.ID, dubstep("Dubstep"), registry.PassMetadata, registry.TrackFields{}); err != nil {
		t.Fatalf("RecordClassification: %v", err)
	}

	removed, err := store.Remove(ctx, "bass/track1.mp3")
	if err != nil || !removed {
		t.Fatalf("Remove: removed=%v err=%v", removed, err)
	}
	removed, err = store.Remove(ctx, "bass/track1.mp3")
	if err != nil || removed {
		t.Fatalf("second Remove: removed=%v err=%v", removed, err)
	}
	if got, _ := store.GetByID(ctx, track.ID); got != nil {
		t.Fatalf("track still present: %#v", got)
	}
	entries, err := store.ClassificationLog(ctx, track.ID)
	if err != nil {
		t.Fatalf("ClassificationLog: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("audit entries survived removal: %d", len(entries))
	}
	paths, err := store.AllPaths(ctx)
	if err != nil {
		t.Fatalf("AllPaths: %v", err)
	}
	if len(paths) != 0 {
		t.Fatalf("expected no paths, got %v", paths)
	}
}

func TestAggregateQueries(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	a := testsupport.AddTrack(t, store, "bass/a.mp3")
	b := testsupport.AddTrack(t, store, "bass/b.mp3")
	testsupport.AddTrack(t, store, "misc/c.mp3")
	testsupport.AddTrackOfType(t, store, "callsigns/id.mp3", taxonomy.ContentCallsign)

	if err := store.RecordClassification(ctx, a.ID, dubstep("Dubstep"), registry.PassMetadata,
		registry.TrackFields{Artist: "Zed"}); err != nil {
		t.Fatalf("RecordClassification: %v", err)
	}
	dnb := registry.Classification{
		Genre:      taxonomy.Genre{Parent: "Bass", Sub: "Drum & Bass"},
		Source:     registry.SourceDirectory,
		Confidence: 0.7,
		RawLabel:   "dir:bass",
	}
	if err := store.RecordClassification(ctx, b.ID, dnb, registry.PassMetadata,
		registry.TrackFields{Artist: "Alpha"}); err != nil {
		t.Fatalf("RecordClassification: %v", err)
	}

	total, err := store.Count(ctx, registry.TrackFilter{})
	if err != nil || total != 4 {
		t.Fatalf("Count all: %d %v", total, err)
	}
	classified := true
	n, err := store.Count(ctx, registry.TrackFilter{ContentType: taxonomy.ContentSong, Classified: &classified})
	if err != nil || n != 2 {
		t.Fatalf("Count classified songs: %d %v", n, err)
	}
	n, err = store.Count(ctx, registry.TrackFilter{PassDone: registry.PassMetadata})
	if err != nil || n != 2 {
		t.Fatalf("Count pass1 done: %d %v", n, err)
	}

	parents, err := store.GenreDistribution(ctx, registry.GroupByParent)
	if err != nil {
		t.Fatalf("GenreDistribution: %v", err)
	}
	if len(parents) != 2 || parents[0].Genre.Parent != "Bass" || parents[0].Count != 2 || !parents[1].Genre.IsZero() {
		t.Fatalf("unexpected parent distribution: %#v", parents)
	}

	subs, err := store.GenreDistribution(ctx, registry.GroupBySub)
	if err != nil {
		t.Fatalf("GenreDistribution sub: %v", err)
	}
	if len(subs) != 3 {
		t.Fatalf("expected three sub rows, got %#v", subs)
	}

	bass, err := store.TracksByGenre(ctx, "Bass", "")
	if err != nil {
		t.Fatalf("TracksByGenre: %v", err)
	}
	if len(bass) != 2 || bass[0].Artist != "Alpha" || bass[1].Artist != "Zed" {
		t.Fatalf("expected artist ordering Alpha, Zed; got %v", ids(bass))
	}

	unclassified, err := store.Unclassified(ctx)
	if err != nil {
		t.Fatalf("Unclassified: %v", err)
	}
	if len(unclassified) != 1 || unclassified[0].Path != "misc/c.mp3" {
		t.Fatalf("unexpected unclassified: %v", ids(unclassified))
	}

	sources, err := store.SourceCounts(ctx)
	if err != nil {
		t.Fatalf("SourceCounts: %v", err)
	}
	if len(sources) != 2 {
		t.Fatalf("expected two sources, got %#v", sources)
	}

	types, err := store.ContentTypeCounts(ctx)
	if err != nil {
		t.Fatalf("ContentTypeCounts: %v", err)
	}
	if len(types) != 2 || types[0].Label != "song" || types[0].Count != 3 {
		t.Fatalf("unexpected content type counts: %#v", types)
	}
}

func ids(tracks []*registry.Track) []int64 {
	out := make([]int64, 0, len(tracks))
	for _, t := range tracks {
		out = append(out, t.ID)
	}
	return out
}
