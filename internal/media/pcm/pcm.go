// Package pcm decodes audio files into mono float32 samples using ffmpeg.
package pcm

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// ErrEmptyAudio is returned when decoding yields no samples.
var ErrEmptyAudio = errors.New("decoded audio is empty")

// Decoder runs ffmpeg to produce a fixed-rate mono clip.
type Decoder struct {
	Binary     string
	SampleRate int
	MaxSeconds int
	Timeout    time.Duration
}

// Clip is a decoded mono excerpt.
type Clip struct {
	Samples    []float32
	SampleRate int
}

// Seconds returns the clip length.
func (c Clip) Seconds() float64 {
	if c.SampleRate <= 0 {
		return 0
	}
	return float64(len(c.Samples)) / float64(c.SampleRate)
}

// Decode reads up to MaxSeconds of path, resampled to SampleRate mono.
func (d *Decoder) Decode(ctx context.Context, path string) (Clip, error) {
	binaryName := strings.TrimSpace(d.Binary)
	if binaryName == "" {
		binaryName = "ffmpeg"
	}
	if strings.TrimSpace(path) == "" {
		return Clip{}, errors.New("pcm decode: empty path")
	}
	if d.SampleRate <= 0 {
		return Clip{}, fmt.Errorf("pcm decode: invalid sample rate %d", d.SampleRate)
	}
	if d.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.Timeout)
		defer cancel()
	}

	args := []string{"-v", "error", "-nostdin"}
	if d.MaxSeconds > 0 {
		args = append(args, "-t", strconv.Itoa(d.MaxSeconds))
	}
	args = append(args,
		"-i", path,
		"-vn",
		"-ac", "1",
		"-ar", strconv.Itoa(d.SampleRate),
		"-f", "f32le",
		"-",
	)

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, binaryName, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return Clip{}, fmt.Errorf("pcm decode: %w: %s", err, strings.TrimSpace(stderr.String()))
	}

	samples := Float32LE(stdout.Bytes())
	if len(samples) == 0 {
		return Clip{}, ErrEmptyAudio
	}
	return Clip{Samples: samples, SampleRate: d.SampleRate}, nil
}

// Float32LE converts raw little-endian float32 bytes to samples. A trailing
// partial sample is dropped.
func Float32LE(raw []byte) []float32 {
	n := len(raw) / 4
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(raw[i*4:]))
	}
	return out
}

// EncodeFloat32LE is the inverse of Float32LE.
func EncodeFloat32LE(samples []float32) []byte {
	out := make([]byte, len(samples)*4)
	for i, s := range samples {
		binary.LittleEndian.PutUint32(out[i*4:], math.Float32bits(s))
	}
	return out
}
