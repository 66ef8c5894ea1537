// Package ffprobe provides a typed wrapper around ffprobe JSON output and a
// tag reader built on it.
//
// Key types:
//   - Result: parsed ffprobe output containing streams and format metadata
//   - Tags: the descriptive fields and genre strings embedded in an audio file
//   - Reader: runs ffprobe with a timeout and extracts Tags
//
// Tag keys are matched case-insensitively; container-level tags win over
// stream-level tags, which is where Ogg and Opus files carry theirs.
package ffprobe
