package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"knobgenre/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// External services point at unroutable defaults; tests override them.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.MediaRoot = filepath.Join(base, "media")
	cfgVal.Paths.Database = filepath.Join(base, "state", "genre_index.db")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.AcoustID.APIKey = ""
	cfgVal.AcoustID.APIKeyFile = ""
	cfgVal.AcoustID.RequestIntervalMS = 0
	cfgVal.MusicBrainz.RequestIntervalMS = 0

	if err := os.MkdirAll(cfgVal.Paths.MediaRoot, 0o755); err != nil {
		t.Fatalf("mkdir media root: %v", err)
	}

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithAcoustIDKey sets the AcoustID client key on the test config.
func WithAcoustIDKey(key string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.AcoustID.APIKey = key
	}
}

// WithMAESTURL points the inference client at url.
func WithMAESTURL(url string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.MAEST.Enabled = true
		b.cfg.MAEST.BaseURL = url
	}
}

// WithStubbedBinaries writes stub executables for the provided names and
// prepends them to PATH. If names is empty, the default external audio tools
// are stubbed.
func WithStubbedBinaries(names ...string) ConfigOption {
	return func(b *configBuilder) {
		if len(names) == 0 {
			names = []string{"ffprobe", "ffmpeg", "fpcalc"}
		}
		binDir := filepath.Join(b.baseDir, "bin")
		for _, name := range names {
			WriteScript(b.t, filepath.Join(binDir, name), "exit 0\n")
		}
		b.t.Setenv("PATH", binDir+string(os.PathListSeparator)+os.Getenv("PATH"))
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.MediaRoot)
}
