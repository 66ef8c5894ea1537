package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"knobgenre/internal/config"
	"knobgenre/internal/testsupport"
)

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
}

// stubFFprobe reports a Dubstep genre tag for files whose name starts with
// "tagged_" and an empty container otherwise.
const stubFFprobe = `for last; do :; done
case "$last" in
  */tagged_*)
    echo '{"format":{"duration":"245.5","tags":{"genre":"Dubstep","artist":"Skream","title":"Midnight Request Line"}}}'
    ;;
  *)
    echo '{"format":{}}'
    ;;
esac
`

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	t.Setenv("ACOUSTID_API_KEY", "")
	t.Setenv("KNOBGENRE_MAEST_URL", "")

	cfg := testsupport.NewConfig(t, testsupport.WithStubbedBinaries())
	base := testsupport.BaseDir(cfg)
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)

	cfg.Tags.FFprobeBinary = testsupport.WriteScript(t, filepath.Join(base, "tools", "ffprobe"), stubFFprobe)
	cfg.MAEST.Enabled = false

	configPath := filepath.Join(homeDir, ".config", "knobgenre", "config.toml")
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		t.Fatalf("mkdir config dir: %v", err)
	}
	writeTestConfig(t, configPath, cfg)

	return &cliTestEnv{cfg: cfg, configPath: configPath}
}

func (e *cliTestEnv) addMedia(t *testing.T, rels ...string) {
	t.Helper()
	for _, rel := range rels {
		testsupport.WriteFile(t, filepath.Join(e.cfg.Paths.MediaRoot, filepath.FromSlash(rel)), 256)
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeTestConfig(t *testing.T, path string, cfg *config.Config) {
	t.Helper()
	content := fmt.Sprintf(
		"[paths]\nmedia_root = %q\ndatabase = %q\nlog_dir = %q\n\n[tags]\nffprobe_binary = %q\n\n[maest]\nenabled = %t\n",
		cfg.Paths.MediaRoot,
		cfg.Paths.Database,
		cfg.Paths.LogDir,
		cfg.Tags.FFprobeBinary,
		cfg.MAEST.Enabled,
	)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected output to contain %q\noutput:\n%s", needle, haystack)
	}
}
