package taxonomy

import (
	"strings"

	"golang.org/x/text/cases"
)

// Genre is a canonical (parent, sub) pair.
type Genre struct {
	Parent string
	Sub    string
}

// IsZero reports whether the genre carries no assignment.
func (g Genre) IsZero() bool {
	return g.Parent == "" && g.Sub == ""
}

func (g Genre) String() string {
	if g.IsZero() {
		return ""
	}
	return g.Parent + " / " + g.Sub
}

// ContentType categorizes a track. Only songs are ever classified.
type ContentType string

const (
	ContentSong       ContentType = "song"
	ContentCallsign   ContentType = "callsign"
	ContentCommercial ContentType = "commercial"
	ContentPromo      ContentType = "promo"
	ContentTalking    ContentType = "talking"
)

// TagResult distinguishes the three outcomes of a tag lookup.
type TagResult int

const (
	// TagUnknown means the string is not in the table.
	TagUnknown TagResult = iota
	// TagMapped means the string maps to a canonical genre.
	TagMapped
	// TagUnmappable means the string is known but deliberately maps to no genre.
	TagUnmappable
)

func (r TagResult) String() string {
	switch r {
	case TagMapped:
		return "mapped"
	case TagUnmappable:
		return "unmappable"
	default:
		return "unknown"
	}
}

type entry struct {
	key   string
	genre Genre
}

var noGenre = Genre{}

type parentEntry struct {
	name string
	subs []string
}

var canonical = []parentEntry{
	{"Bass", []string{"Dubstep", "Deep Dubstep", "Riddim", "Grime", "Garage", "Drum & Bass", "Leftfield Bass", "Freeform Bass"}},
	{"Electronic", []string{"House", "Deep House", "Progressive House", "Trance", "IDM", "Breakbeat", "Big Beat", "Glitch Hop"}},
	{"Chill", []string{"Downtempo", "Chillout", "Lofi", "Ambient", "Trip Hop", "Chillstep"}},
	{"Hip-Hop", []string{"Hip-Hop", "Trap", "Beats"}},
	{"Dub/Reggae", []string{"Dub", "Reggae"}},
	{"Metal", []string{"Heavy Metal", "Death Metal", "Black Metal", "Doom", "Thrash", "Stoner/Sludge"}},
	{"Punk", []string{"Punk", "Hardcore", "Post-Punk", "Crust", "Skate Punk"}},
	{"Blues/Soul", []string{"Blues", "R&B", "Soul", "Funk"}},
	{"Jazz", []string{"Bebop", "Cool Jazz", "Free Jazz", "Fusion", "Latin Jazz", "Swing"}},
	{"Classical", []string{"Orchestral", "Chamber", "Solo", "Opera", "Modern/Contemporary"}},
	{"Pop/Rock", []string{"Pop", "Rock", "Indie", "Country", "Folk"}},
}

// Directories whose contents are non-music. Matched per path component, case-sensitive.
var contentTypeDirs = map[string]ContentType{
	"callsigns":     ContentCallsign,
	"commercials":   ContentCommercial,
	"promos":        ContentPromo,
	"talking_clips": ContentTalking,
	"SHOWS":         ContentTalking,
	"abnormal":      ContentPromo,
}

// Directory substrings (case-insensitive) that imply a genre. Checked in order.
var directoryHints = []entry{
	{"MOBCOIN_DEEP_DUBSTEAP", Genre{"Bass", "Dubstep"}},
	{"Downtempo:Lofi", Genre{"Chill", "Lofi"}},
	{"deltron", Genre{"Hip-Hop", "Hip-Hop"}},
	{"Animatrix", Genre{"Electronic", "IDM"}},
	{"NinjaSexParty", Genre{"Pop/Rock", "Pop"}},
}

var (
	subsByParent map[string]map[string]struct{}
	tagsExact    map[string]Genre
	tagsFolded   map[string]Genre
	catalogExact map[string]Genre
	folder       = cases.Fold()
)

func init() {
	subsByParent = make(map[string]map[string]struct{}, len(canonical))
	for _, p := range canonical {
		subs := make(map[string]struct{}, len(p.subs))
		for _, s := range p.subs {
			subs[s] = struct{}{}
		}
		subsByParent[p.name] = subs
	}

	tagsExact = make(map[string]Genre, len(tagTable))
	tagsFolded = make(map[string]Genre, len(tagTable))
	for _, e := range tagTable {
		tagsExact[e.key] = e.genre
		folded := fold(e.key)
		if _, seen := tagsFolded[folded]; !seen {
			tagsFolded[folded] = e.genre
		}
	}

	catalogExact = make(map[string]Genre, len(catalogTable))
	for _, e := range catalogTable {
		catalogExact[e.key] = e.genre
	}
}

func fold(value string) string {
	return folder.String(value)
}

// Parents returns the canonical parent genres in declaration order.
func Parents() []string {
	out := make([]string, 0, len(canonical))
	for _, p := range canonical {
		out = append(out, p.name)
	}
	return out
}

// Subgenres returns the subgenres of parent in declaration order, or nil when
// parent is not canonical.
func Subgenres(parent string) []string {
	for _, p := range canonical {
		if p.name == parent {
			return append([]string(nil), p.subs...)
		}
	}
	return nil
}

// IsValid reports whether g is a canonical pair.
func IsValid(g Genre) bool {
	subs, ok := subsByParent[g.Parent]
	if !ok {
		return false
	}
	_, ok = subs[g.Sub]
	return ok
}

// LookupTag resolves a raw tag string, preserving whether an unmatched string
// was recognized but unmappable.
func LookupTag(raw string) (Genre, TagResult) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return noGenre, TagUnknown
	}
	genre, ok := tagsExact[value]
	if !ok {
		genre, ok = tagsFolded[fold(value)]
	}
	switch {
	case !ok:
		return noGenre, TagUnknown
	case genre.IsZero():
		return noGenre, TagUnmappable
	default:
		return genre, TagMapped
	}
}

// NormalizeTag maps a free-form genre tag to a canonical pair.
func NormalizeTag(raw string) (Genre, bool) {
	genre, result := LookupTag(raw)
	return genre, result == TagMapped
}

// DirectoryHint returns the genre implied by the first hint whose key appears
// in dir, ignoring case.
func DirectoryHint(dir string) (Genre, bool) {
	lowered := strings.ToLower(dir)
	for _, hint := range directoryHints {
		if strings.Contains(lowered, strings.ToLower(hint.key)) {
			return hint.genre, true
		}
	}
	return noGenre, false
}

// NormalizeCatalogLabel maps a Discogs "Parent---Label" string to a canonical
// pair. Matching is exact; labels known to carry no music genre report false.
func NormalizeCatalogLabel(label string) (Genre, bool) {
	genre, ok := catalogExact[label]
	if !ok || genre.IsZero() {
		return noGenre, false
	}
	return genre, true
}

// ContentTypeFromDir returns the non-music content type implied by any
// component of dir.
func ContentTypeFromDir(dir string) (ContentType, bool) {
	parts := strings.Split(strings.ReplaceAll(dir, `\`, "/"), "/")
	for _, part := range parts {
		if ct, ok := contentTypeDirs[part]; ok {
			return ct, true
		}
	}
	return "", false
}
