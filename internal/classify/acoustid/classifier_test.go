package acoustid

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"knobgenre/internal/registry"
	acoustidsvc "knobgenre/internal/services/acoustid"
	"knobgenre/internal/services/fpcalc"
	"knobgenre/internal/services/musicbrainz"
	"knobgenre/internal/testsupport"
)

type fakeFingerprinter struct {
	result fpcalc.Result
	err    error
}

func (f fakeFingerprinter) Fingerprint(context.Context, string) (fpcalc.Result, error) {
	return f.result, f.err
}

type fakeMatcher struct {
	matches []acoustidsvc.Match
	err     error
	calls   int
}

func (f *fakeMatcher) Lookup(context.Context, string, float64) ([]acoustidsvc.Match, error) {
	f.calls++
	return f.matches, f.err
}

type fakeTags struct {
	tags  map[string][]musicbrainz.Tag
	err   error
	asked []string
}

func (f *fakeTags) RecordingTags(_ context.Context, id string) ([]musicbrainz.Tag, error) {
	f.asked = append(f.asked, id)
	return f.tags[id], f.err
}

var longFingerprint = "AQADtEmUaEkSRZEGAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"

func newTestClassifier(fp Fingerprinter, m Matcher, tags TagSource) *Classifier {
	return NewWithDependencies("/media", Dependencies{
		Fingerprinter: fp,
		Matcher:       m,
		Tags:          tags,
		APIKey:        "key",
	}, nil)
}

func TestClassifyUsesFirstMatchAndFirstMappableTag(t *testing.T) {
	matcher := &fakeMatcher{matches: []acoustidsvc.Match{
		{RecordingID: "mb-best", Score: 0.9},
		{RecordingID: "mb-other", Score: 0.99},
	}}
	tags := &fakeTags{tags: map[string][]musicbrainz.Tag{
		"mb-best": {{Name: "seen live", Count: 9}, {Name: "dubstep", Count: 4}, {Name: "grime", Count: 1}},
	}}
	c := newTestClassifier(fakeFingerprinter{result: fpcalc.Result{Fingerprint: longFingerprint, Duration: 212}}, matcher, tags)

	out, err := c.Classify(context.Background(), &registry.Track{ID: 1, Path: "x/a.mp3"})
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if !out.Matched() {
		t.Fatalf("expected match, got %#v", out)
	}
	got := out.Classification
	if got.Genre.Parent != "Bass" || got.Genre.Sub != "Dubstep" || got.Source != registry.SourceAcoustID || got.RawLabel != "mb:dubstep" {
		t.Fatalf("unexpected classification %#v", got)
	}
	want := 0.7 * 0.9
	if math.Abs(got.Confidence-want) > 1e-9 {
		t.Fatalf("expected confidence %v, got %v", want, got.Confidence)
	}
	if len(tags.asked) != 1 || tags.asked[0] != "mb-best" {
		t.Fatalf("expected only the first match to be queried, got %v", tags.asked)
	}
	if out.Fields.AcoustID != longFingerprint[:32] || out.Fields.MusicBrainzID != "mb-best" || out.Fields.Duration != 212 {
		t.Fatalf("unexpected fields %#v", out.Fields)
	}
}

func TestClassifyMisses(t *testing.T) {
	fp := fakeFingerprinter{result: fpcalc.Result{Fingerprint: "AQAD", Duration: 100}}

	t.Run("fingerprint failure", func(t *testing.T) {
		matcher := &fakeMatcher{}
		c := newTestClassifier(fakeFingerprinter{err: errors.New("timeout")}, matcher, &fakeTags{})
		out, err := c.Classify(context.Background(), &registry.Track{ID: 1})
		if err != nil || out.Matched() || !out.Fields.IsEmpty() {
			t.Fatalf("unexpected outcome %#v err=%v", out, err)
		}
		if matcher.calls != 0 {
			t.Fatal("lookup must not run without a fingerprint")
		}
	})

	t.Run("no acoustid match", func(t *testing.T) {
		c := newTestClassifier(fp, &fakeMatcher{}, &fakeTags{})
		out, err := c.Classify(context.Background(), &registry.Track{ID: 1})
		if err != nil || out.Matched() {
			t.Fatalf("unexpected outcome %#v err=%v", out, err)
		}
		if out.Fields.Duration != 100 || out.Fields.MusicBrainzID != "" || out.Fields.AcoustID != "" {
			t.Fatalf("expected only duration recorded, got %#v", out.Fields)
		}
	})

	t.Run("lookup error", func(t *testing.T) {
		c := newTestClassifier(fp, &fakeMatcher{err: errors.New("503")}, &fakeTags{})
		out, err := c.Classify(context.Background(), &registry.Track{ID: 1})
		if err != nil || out.Matched() {
			t.Fatalf("unexpected outcome %#v err=%v", out, err)
		}
	})

	t.Run("no usable tags", func(t *testing.T) {
		matcher := &fakeMatcher{matches: []acoustidsvc.Match{{RecordingID: "mb-1", Score: 1}}}
		tags := &fakeTags{tags: map[string][]musicbrainz.Tag{"mb-1": {{Name: "favorites", Count: 3}}}}
		c := newTestClassifier(fp, matcher, tags)
		out, err := c.Classify(context.Background(), &registry.Track{ID: 1})
		if err != nil || out.Matched() {
			t.Fatalf("unexpected outcome %#v err=%v", out, err)
		}
		if out.Fields.MusicBrainzID != "mb-1" || out.Fields.AcoustID != "AQAD" {
			t.Fatalf("expected match fields recorded, got %#v", out.Fields)
		}
		if !strings.Contains(out.Detail, "no usable tags") {
			t.Fatalf("unexpected detail %q", out.Detail)
		}
	})
}

func TestConfidenceBound(t *testing.T) {
	scores := []float64{0, 0.1, 0.35, 0.5, 0.9, 1, 1.2, -0.3}
	for votes := -20; votes <= 40; votes++ {
		for _, score := range scores {
			clamped := math.Max(0, math.Min(1, score))
			got := Confidence(votes, score)
			if got < 0 || got > MaxTagConfidence*clamped+1e-12 {
				t.Fatalf("Confidence(%d, %v) = %v outside [0, %v]", votes, score, got, MaxTagConfidence*clamped)
			}
		}
	}
	if got := Confidence(0, 1); math.Abs(got-0.5) > 1e-12 {
		t.Fatalf("expected 0.5 at zero votes, got %v", got)
	}
	if got := Confidence(100, 1); got != MaxTagConfidence {
		t.Fatalf("expected cap at %v, got %v", MaxTagConfidence, got)
	}
}

func TestHealthCheck(t *testing.T) {
	c := NewWithDependencies("/media", Dependencies{
		Fingerprinter: fakeFingerprinter{},
		Matcher:       &fakeMatcher{},
		Tags:          &fakeTags{},
	}, nil)
	if h := c.HealthCheck(context.Background()); h.Ready || !strings.Contains(h.Detail, "API key") {
		t.Fatalf("expected missing key to be unhealthy, got %#v", h)
	}

	cfg := testsupport.NewConfig(t, testsupport.WithAcoustIDKey("key"))
	cfg.Fingerprint.FpcalcBinary = "definitely-not-fpcalc-xyz"
	if h := New(cfg, nil).HealthCheck(context.Background()); h.Ready || !strings.Contains(h.Detail, "fpcalc") {
		t.Fatalf("expected missing fpcalc to be unhealthy, got %#v", h)
	}

	stubbed := testsupport.NewConfig(t, testsupport.WithAcoustIDKey("key"), testsupport.WithStubbedBinaries("fpcalc"))
	if h := New(stubbed, nil).HealthCheck(context.Background()); !h.Ready {
		t.Fatalf("expected healthy, got %#v", h)
	}
	if !New(stubbed, nil).UnclassifiedOnly() {
		t.Fatal("pass 2 must only consider unclassified tracks")
	}
}
