package testsupport

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// id3Magic opens placeholder audio files so they sniff as tagged MP3s.
var id3Magic = []byte("ID3\x04\x00\x00\x00\x00\x00\x00")

// WriteFile creates path (and its parents) holding size bytes. Files with an
// .mp3 extension start with an empty ID3v2 header; the rest is filler.
func WriteFile(t testing.TB, path string, size int64) {
	t.Helper()

	if size <= 0 {
		size = 1
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	var data []byte
	if strings.EqualFold(filepath.Ext(path), ".mp3") && size > int64(len(id3Magic)) {
		data = append(data, id3Magic...)
	}
	data = append(data, bytes.Repeat([]byte{0x42}, int(size)-len(data))...)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// SetModTime stamps path with mtime so change detection sees an edit.
func SetModTime(t testing.TB, path string, mtime time.Time) {
	t.Helper()
	if err := os.Chtimes(path, mtime, mtime); err != nil {
		t.Fatalf("chtimes %s: %v", path, err)
	}
}

// WriteScript writes an executable /bin/sh script and returns its path.
func WriteScript(t testing.TB, path, body string) string {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755); err != nil {
		t.Fatalf("write script %s: %v", path, err)
	}
	return path
}
