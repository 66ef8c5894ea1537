package taxonomy

import "testing"

func TestEveryTableTargetIsCanonical(t *testing.T) {
	tables := map[string][]entry{
		"tags":    tagTable,
		"catalog": catalogTable,
		"hints":   directoryHints,
	}
	for name, table := range tables {
		for _, e := range table {
			if e.genre.IsZero() {
				continue
			}
			if !IsValid(e.genre) {
				t.Errorf("%s entry %q maps to non-canonical pair %v", name, e.key, e.genre)
			}
		}
	}
}

func TestCanonicalShape(t *testing.T) {
	parents := Parents()
	if len(parents) != 11 {
		t.Fatalf("expected 11 parents, got %d", len(parents))
	}
	if parents[0] != "Bass" || parents[len(parents)-1] != "Pop/Rock" {
		t.Fatalf("unexpected parent order: %v", parents)
	}
	if subs := Subgenres("Hip-Hop"); len(subs) != 3 || subs[2] != "Beats" {
		t.Fatalf("unexpected Hip-Hop subgenres: %v", subs)
	}
	if Subgenres("Polka") != nil {
		t.Fatal("expected nil subgenres for unknown parent")
	}
	if IsValid(Genre{Parent: "Bass", Sub: "House"}) {
		t.Fatal("expected cross-parent pair to be invalid")
	}
}

func TestNormalizeTag(t *testing.T) {
	tests := []struct {
		raw  string
		want Genre
		ok   bool
	}{
		{"Dubstep", Genre{"Bass", "Dubstep"}, true},
		{"  Deep House  ", Genre{"Electronic", "Deep House"}, true},
		{"DUBSTEP", Genre{"Bass", "Dubstep"}, true},
		{"chill out", Genre{"Chill", "Chillout"}, true},
		{"Dubstep / Trap", Genre{"Hip-Hop", "Trap"}, true},
		{"Other", Genre{}, false},
		{"kulemina", Genre{}, false},
		{"Polka", Genre{}, false},
		{"", Genre{}, false},
		{"   ", Genre{}, false},
	}
	for _, tt := range tests {
		got, ok := NormalizeTag(tt.raw)
		if ok != tt.ok || got != tt.want {
			t.Errorf("NormalizeTag(%q) = %v, %v; want %v, %v", tt.raw, got, ok, tt.want, tt.ok)
		}
	}
}

func TestLookupTagDistinguishesUnmappable(t *testing.T) {
	if _, result := LookupTag("Other"); result != TagUnmappable {
		t.Fatalf("expected unmappable for Other, got %s", result)
	}
	if _, result := LookupTag("OTHER"); result != TagUnmappable {
		t.Fatalf("expected unmappable for case-folded Other, got %s", result)
	}
	if _, result := LookupTag("Vaporwave"); result != TagUnknown {
		t.Fatalf("expected unknown for Vaporwave, got %s", result)
	}
	if g, result := LookupTag("Trip Hop"); result != TagMapped || g.Sub != "Trip Hop" {
		t.Fatalf("expected mapped Trip Hop, got %v %s", g, result)
	}
}

func TestDirectoryHint(t *testing.T) {
	tests := []struct {
		dir  string
		want Genre
		ok   bool
	}{
		{"chill/Downtempo:Lofi", Genre{"Chill", "Lofi"}, true},
		{"music/downtempo:lofi/vol2", Genre{"Chill", "Lofi"}, true},
		{"Deltron 3030", Genre{"Hip-Hop", "Hip-Hop"}, true},
		{"mobcoin_deep_dubsteap/2019", Genre{"Bass", "Dubstep"}, true},
		{"chill/downtempo-mix", Genre{}, false},
		{"", Genre{}, false},
	}
	for _, tt := range tests {
		got, ok := DirectoryHint(tt.dir)
		if ok != tt.ok || got != tt.want {
			t.Errorf("DirectoryHint(%q) = %v, %v; want %v, %v", tt.dir, got, ok, tt.want, tt.ok)
		}
	}
}

func TestNormalizeCatalogLabel(t *testing.T) {
	if g, ok := NormalizeCatalogLabel("Electronic---Dubstep"); !ok || g != (Genre{"Bass", "Dubstep"}) {
		t.Fatalf("unexpected mapping: %v %v", g, ok)
	}
	if g, ok := NormalizeCatalogLabel("Rock---Lo-Fi"); !ok || g != (Genre{"Chill", "Lofi"}) {
		t.Fatalf("unexpected mapping: %v %v", g, ok)
	}
	if _, ok := NormalizeCatalogLabel("Non-Music---Spoken Word"); ok {
		t.Fatal("expected non-music label to report no genre")
	}
	if _, ok := NormalizeCatalogLabel("electronic---dubstep"); ok {
		t.Fatal("expected catalog lookup to be case-sensitive")
	}
}

func TestContentTypeFromDir(t *testing.T) {
	tests := []struct {
		dir  string
		want ContentType
		ok   bool
	}{
		{"callsigns", ContentCallsign, true},
		{"station/commercials/2020", ContentCommercial, true},
		{`archive\SHOWS\ep1`, ContentTalking, true},
		{"abnormal", ContentPromo, true},
		{"shows", "", false},
		{"promos-old", "", false},
		{"bass/dubstep", "", false},
	}
	for _, tt := range tests {
		got, ok := ContentTypeFromDir(tt.dir)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ContentTypeFromDir(%q) = %q, %v; want %q, %v", tt.dir, got, ok, tt.want, tt.ok)
		}
	}
}
