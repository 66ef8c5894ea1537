package pcm

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeStub(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ffmpeg")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	return path
}

func TestFloat32LE(t *testing.T) {
	samples := []float32{0, 0.5, -1, 0.25}
	raw := append(EncodeFloat32LE(samples), 0x01, 0x02)
	got := Float32LE(raw)
	if len(got) != len(samples) {
		t.Fatalf("expected %d samples, got %d", len(samples), len(got))
	}
	for i := range samples {
		if got[i] != samples[i] {
			t.Fatalf("sample %d: got %v want %v", i, got[i], samples[i])
		}
	}
}

func TestDecodePassesClipArguments(t *testing.T) {
	argsFile := filepath.Join(t.TempDir(), "args")
	// 0x3f800000 is 1.0 as little-endian float32.
	stub := writeStub(t, `echo "$@" > `+argsFile+`
printf '\000\000\200\077\000\000\200\077'
`)
	decoder := &Decoder{Binary: stub, SampleRate: 16000, MaxSeconds: 30, Timeout: 5 * time.Second}
	clip, err := decoder.Decode(context.Background(), "/music/a.flac")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(clip.Samples) != 2 || clip.Samples[0] != 1 || clip.SampleRate != 16000 {
		t.Fatalf("unexpected clip %#v", clip)
	}

	data, err := os.ReadFile(argsFile)
	if err != nil {
		t.Fatalf("read args: %v", err)
	}
	args := strings.TrimSpace(string(data))
	for _, want := range []string{"-t 30", "-i /music/a.flac", "-ac 1", "-ar 16000", "-f f32le"} {
		if !strings.Contains(args, want) {
			t.Fatalf("expected %q in ffmpeg args %q", want, args)
		}
	}
}

func TestDecodeEmptyOutput(t *testing.T) {
	stub := writeStub(t, "exit 0\n")
	decoder := &Decoder{Binary: stub, SampleRate: 16000}
	if _, err := decoder.Decode(context.Background(), "/music/a.flac"); !errors.Is(err, ErrEmptyAudio) {
		t.Fatalf("expected ErrEmptyAudio, got %v", err)
	}
}

func TestDecodeFailure(t *testing.T) {
	stub := writeStub(t, "echo 'moov atom not found' >&2\nexit 1\n")
	decoder := &Decoder{Binary: stub, SampleRate: 16000}
	_, err := decoder.Decode(context.Background(), "/music/a.m4a")
	if err == nil || !strings.Contains(err.Error(), "moov atom not found") {
		t.Fatalf("expected stderr in error, got %v", err)
	}
}
