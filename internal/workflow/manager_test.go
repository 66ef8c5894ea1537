package workflow_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"knobgenre/internal/classify/metadata"
	"knobgenre/internal/media/ffprobe"
	"knobgenre/internal/registry"
	"knobgenre/internal/stage"
	"knobgenre/internal/taxonomy"
	"knobgenre/internal/testsupport"
	"knobgenre/internal/workflow"
)

type tagMap map[string]ffprobe.Tags

func (m tagMap) ReadTags(_ context.Context, path string) (ffprobe.Tags, error) {
	tags, ok := m[filepath.Base(path)]
	if !ok {
		return ffprobe.Tags{}, errors.New("no such file")
	}
	return tags, nil
}

type stubClassifier struct {
	pass      registry.Pass
	health    stage.Health
	unclassOK bool
	outcome   func(*registry.Track) (stage.Outcome, error)
	loadErr   error
	loads     int
	calls     []int64
}

func (s *stubClassifier) Pass() registry.Pass { return s.pass }

func (s *stubClassifier) HealthCheck(context.Context) stage.Health { return s.health }

func (s *stubClassifier) UnclassifiedOnly() bool { return s.unclassOK }

func (s *stubClassifier) Load(context.Context) error {
	s.loads++
	return s.loadErr
}

func (s *stubClassifier) Classify(_ context.Context, track *registry.Track) (stage.Outcome, error) {
	s.calls = append(s.calls, track.ID)
	if s.outcome == nil {
		return stage.NoMatch("stub", registry.TrackFields{}), nil
	}
	return s.outcome(track)
}

func newStub(pass registry.Pass) *stubClassifier {
	return &stubClassifier{pass: pass, health: stage.Healthy("stub"), unclassOK: pass != registry.PassMetadata}
}

func fixedRunID() workflow.ManagerOption {
	return workflow.WithRunIDGenerator(func() string { return "run-1" })
}

func TestDubstepTagScenario(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	track := testsupport.AddTrack(t, store, "bass/track1.mp3")

	classifier := metadata.NewWithReader(cfg.Paths.MediaRoot, tagMap{
		"track1.mp3": {Artist: "Artist", Title: "Wobble", Genres: []string{"Dubstep"}},
	}, nil)
	mgr := workflow.NewManager(store, nil, fixedRunID())

	ctx := context.Background()
	res, err := mgr.RunPass(ctx, classifier, workflow.RunOptions{})
	if err != nil {
		t.Fatalf("RunPass: %v", err)
	}
	if res.Classified != 1 || res.Skipped != 0 || res.Unavailable || res.RunID != "run-1" {
		t.Fatalf("unexpected result %+v", res)
	}

	got, err := store.GetByID(ctx, track.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	c := got.Classification
	if c == nil || c.Genre != (taxonomy.Genre{Parent: "Bass", Sub: "Dubstep"}) || c.Source != registry.SourceMetadata || c.Confidence != 0.9 {
		t.Fatalf("unexpected classification %#v", c)
	}
	if !got.Pass1Done || got.Artist != "Artist" || got.Title != "Wobble" {
		t.Fatalf("unexpected track state %#v", got)
	}
	entries, err := store.ClassificationLog(ctx, track.ID)
	if err != nil {
		t.Fatalf("ClassificationLog: %v", err)
	}
	if len(entries) != 1 || entries[0].Pass != registry.PassMetadata {
		t.Fatalf("expected one pass 1 audit entry, got %#v", entries)
	}
}

func TestDirectoryHintScenario(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	track := testsupport.AddTrack(t, store, "chill/Downtempo:Lofi/track1.mp3")

	classifier := metadata.NewWithReader(cfg.Paths.MediaRoot, tagMap{"track1.mp3": {}}, nil)
	mgr := workflow.NewManager(store, nil)

	ctx := context.Background()
	if _, err := mgr.RunPass(ctx, classifier, workflow.RunOptions{}); err != nil {
		t.Fatalf("RunPass: %v", err)
	}
	got, err := store.GetByID(ctx, track.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	c := got.Classification
	if c == nil || c.Source != registry.SourceDirectory || c.Confidence != 0.7 || c.Genre.Sub != "Lofi" {
		t.Fatalf("unexpected classification %#v", c)
	}
}

func TestRerunIsIdempotent(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	hit := testsupport.AddTrack(t, store, "bass/hit.mp3")
	miss := testsupport.AddTrack(t, store, "misc/miss.mp3")

	classifier := metadata.NewWithReader(cfg.Paths.MediaRoot, tagMap{
		"hit.mp3":  {Genres: []string{"Dubstep/Grime"}},
		"miss.mp3": {Title: "Unknown Thing", Genres: []string{"seen live"}},
	}, nil)
	mgr := workflow.NewManager(store, nil)
	ctx := context.Background()

	first, err := mgr.RunPass(ctx, classifier, workflow.RunOptions{})
	if err != nil {
		t.Fatalf("first RunPass: %v", err)
	}
	if first.Classified != 1 || first.Skipped != 1 {
		t.Fatalf("unexpected first result %+v", first)
	}

	second, err := mgr.RunPass(ctx, classifier, workflow.RunOptions{})
	if err != nil {
		t.Fatalf("second RunPass: %v", err)
	}
	if second.Attempted() != 0 {
		t.Fatalf("expected no work on rerun, got %+v", second)
	}

	entries, err := store.ClassificationLog(ctx, hit.ID)
	if err != nil || len(entries) != 1 {
		t.Fatalf("expected exactly one audit entry, got %d (%v)", len(entries), err)
	}
	missed, err := store.GetByID(ctx, miss.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if !missed.Pass1Done || missed.Classification != nil || missed.Title != "Unknown Thing" {
		t.Fatalf("expected attempted miss with descriptive fields, got %#v", missed)
	}
}

func TestNonSongsAreNeverVisited(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	testsupport.AddTrackOfType(t, store, "callsigns/knob.mp3", taxonomy.ContentCallsign)
	song := testsupport.AddTrack(t, store, "misc/song.mp3")

	mgr := workflow.NewManager(store, nil)
	for _, pass := range registry.Passes() {
		stub := newStub(pass)
		if _, err := mgr.RunPass(context.Background(), stub, workflow.RunOptions{}); err != nil {
			t.Fatalf("RunPass %s: %v", pass, err)
		}
		if len(stub.calls) != 1 || stub.calls[0] != song.ID {
			t.Fatalf("pass %s visited %v", pass, stub.calls)
		}
	}
}

func TestUnavailableClassifierTouchesNothing(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	track := testsupport.AddTrack(t, store, "misc/song.mp3")

	stub := newStub(registry.PassFingerprint)
	stub.health = stage.Unhealthy("acoustid", "fpcalc not found")
	mgr := workflow.NewManager(store, nil)

	res, err := mgr.RunPass(context.Background(), stub, workflow.RunOptions{})
	if err != nil {
		t.Fatalf("RunPass: %v", err)
	}
	if !res.Unavailable || res.Detail != "fpcalc not found" || res.Attempted() != 0 {
		t.Fatalf("unexpected result %+v", res)
	}
	if stub.loads != 0 || len(stub.calls) != 0 {
		t.Fatalf("unhealthy classifier should not be loaded or called")
	}
	got, _ := store.GetByID(context.Background(), track.ID)
	if got.Pass2Done {
		t.Fatal("pass flag must stay unset when the pass is unavailable")
	}
}

func TestLoadOnlyWhenWorkPending(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	mgr := workflow.NewManager(store, nil)
	ctx := context.Background()

	stub := newStub(registry.PassInference)
	if _, err := mgr.RunPass(ctx, stub, workflow.RunOptions{}); err != nil {
		t.Fatalf("RunPass: %v", err)
	}
	if stub.loads != 0 {
		t.Fatalf("expected no load on an empty backlog, got %d", stub.loads)
	}

	testsupport.AddTrack(t, store, "a/one.mp3")
	testsupport.AddTrack(t, store, "a/two.mp3")
	if _, err := mgr.RunPass(ctx, stub, workflow.RunOptions{}); err != nil {
		t.Fatalf("RunPass: %v", err)
	}
	if stub.loads != 1 || len(stub.calls) != 2 {
		t.Fatalf("expected one load and two calls, got loads=%d calls=%v", stub.loads, stub.calls)
	}

	failing := newStub(registry.PassInference)
	failing.loadErr = errors.New("model server down")
	testsupport.AddTrack(t, store, "a/three.mp3")
	res, err := mgr.RunPass(ctx, failing, workflow.RunOptions{})
	if err != nil {
		t.Fatalf("RunPass: %v", err)
	}
	if !res.Unavailable || len(failing.calls) != 0 {
		t.Fatalf("expected unavailable after load failure, got %+v calls=%v", res, failing.calls)
	}
}

func TestLaterPassesSkipClassifiedTracks(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	classified := testsupport.AddTrack(t, store, "bass/hit.mp3")
	open := testsupport.AddTrack(t, store, "misc/open.mp3")
	ctx := context.Background()

	if err := store.RecordClassification(ctx, classified.ID, registry.Classification{
		Genre:      taxonomy.Genre{Parent: "Bass", Sub: "Grime"},
		Source:     registry.SourceMetadata,
		Confidence: 0.9,
		RawLabel:   "Grime",
	}, registry.PassMetadata, registry.TrackFields{}); err != nil {
		t.Fatalf("RecordClassification: %v", err)
	}

	stub := newStub(registry.PassFingerprint)
	mgr := workflow.NewManager(store, nil)
	if _, err := mgr.RunPass(ctx, stub, workflow.RunOptions{}); err != nil {
		t.Fatalf("RunPass: %v", err)
	}
	if len(stub.calls) != 1 || stub.calls[0] != open.ID {
		t.Fatalf("expected only the unclassified track, got %v", stub.calls)
	}
}

func TestClassifierErrorCountsAsMiss(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	track := testsupport.AddTrack(t, store, "misc/song.mp3")

	stub := newStub(registry.PassFingerprint)
	stub.outcome = func(*registry.Track) (stage.Outcome, error) {
		return stage.Outcome{}, errors.New("lookup exploded")
	}
	res, err := workflow.NewManager(store, nil).RunPass(context.Background(), stub, workflow.RunOptions{})
	if err != nil {
		t.Fatalf("RunPass: %v", err)
	}
	if res.Skipped != 1 {
		t.Fatalf("expected one skip, got %+v", res)
	}
	got, _ := store.GetByID(context.Background(), track.ID)
	if !got.Pass2Done || got.Classification != nil {
		t.Fatalf("expected attempted without genre, got %#v", got)
	}
}

func TestLimitCapsVisitedTracks(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	for _, rel := range []string{"a/1.mp3", "a/2.mp3", "a/3.mp3"} {
		testsupport.AddTrack(t, store, rel)
	}
	stub := newStub(registry.PassMetadata)
	res, err := workflow.NewManager(store, nil).RunPass(context.Background(), stub, workflow.RunOptions{Limit: 2})
	if err != nil {
		t.Fatalf("RunPass: %v", err)
	}
	if res.Attempted() != 2 || len(stub.calls) != 2 {
		t.Fatalf("expected two visits, got %+v", res)
	}
}

func TestCancellationStopsBetweenTracks(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	first := testsupport.AddTrack(t, store, "a/1.mp3")
	second := testsupport.AddTrack(t, store, "a/2.mp3")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	stub := newStub(registry.PassMetadata)
	stub.outcome = func(*registry.Track) (stage.Outcome, error) {
		cancel()
		return stage.NoMatch("cancelled during classify", registry.TrackFields{}), nil
	}

	mgr := workflow.NewManager(store, nil)
	res, err := mgr.RunPass(ctx, stub, workflow.RunOptions{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(stub.calls) != 1 || res.Attempted() != 0 {
		t.Fatalf("expected the run to stop at the first track, calls=%v result=%+v", stub.calls, res)
	}
	for _, id := range []int64{first.ID, second.ID} {
		got, _ := store.GetByID(context.Background(), id)
		if got.Pass1Done {
			t.Fatalf("track %d must stay pending after cancellation", id)
		}
	}
}

type failingRegistry struct {
	workflow.Registry
}

func (failingRegistry) MarkPassAttempted(context.Context, int64, registry.Pass) error {
	return errors.New("disk I/O error")
}

func TestRegistryErrorAbortsRun(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	testsupport.AddTrack(t, store, "a/1.mp3")
	testsupport.AddTrack(t, store, "a/2.mp3")

	stub := newStub(registry.PassMetadata)
	mgr := workflow.NewManager(failingRegistry{Registry: store}, nil)
	_, err := mgr.RunPass(context.Background(), stub, workflow.RunOptions{})
	if err == nil {
		t.Fatal("expected registry error")
	}
	if len(stub.calls) != 1 {
		t.Fatalf("expected the run to abort after the first track, calls=%v", stub.calls)
	}

	results, err := mgr.RunAll(context.Background(), []stage.Classifier{stub, newStub(registry.PassFingerprint)}, workflow.RunOptions{})
	if err == nil || len(results) != 1 {
		t.Fatalf("expected RunAll to stop at the failing pass, got %d results err=%v", len(results), err)
	}
}

func TestRunAllEscalates(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	easy := testsupport.AddTrack(t, store, "bass/easy.mp3")
	hard := testsupport.AddTrack(t, store, "misc/hard.mp3")

	pass1 := newStub(registry.PassMetadata)
	pass1.outcome = func(track *registry.Track) (stage.Outcome, error) {
		if track.ID != easy.ID {
			return stage.NoMatch("no tag", registry.TrackFields{}), nil
		}
		return stage.Match(registry.Classification{
			Genre: taxonomy.Genre{Parent: "Bass", Sub: "Dubstep"}, Source: registry.SourceMetadata, Confidence: 0.9, RawLabel: "Dubstep",
		}, registry.TrackFields{}), nil
	}
	pass2 := newStub(registry.PassFingerprint)
	pass2.health = stage.Unhealthy("acoustid", "no api key")
	pass3 := newStub(registry.PassInference)
	pass3.outcome = func(*registry.Track) (stage.Outcome, error) {
		return stage.Match(registry.Classification{
			Genre: taxonomy.Genre{Parent: "Jazz", Sub: "Bebop"}, Source: registry.SourceMAEST, Confidence: 0.4, RawLabel: "maest:Jazz---Bebop",
		}, registry.TrackFields{}), nil
	}

	mgr := workflow.NewManager(store, nil)
	ctx := context.Background()
	results, err := mgr.RunAll(ctx, []stage.Classifier{pass1, pass2, pass3}, workflow.RunOptions{})
	if err != nil {
		t.Fatalf("RunAll: %v", err)
	}
	if len(results) != 3 || !results[1].Unavailable {
		t.Fatalf("unexpected results %+v", results)
	}
	if len(pass3.calls) != 1 || pass3.calls[0] != hard.ID {
		t.Fatalf("pass 3 should only see the track pass 1 missed, got %v", pass3.calls)
	}

	progress, err := mgr.Progress(ctx)
	if err != nil {
		t.Fatalf("Progress: %v", err)
	}
	if progress.Songs != 2 || progress.Classified != 2 || progress.Percent() != 100 {
		t.Fatalf("unexpected progress %+v", progress)
	}

	status, err := mgr.Status(ctx, []stage.Classifier{pass1, pass2, pass3})
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if status[1].Health.Ready || status[1].Pending != 0 {
		t.Fatalf("unexpected pass 2 status %+v", status[1])
	}
}
