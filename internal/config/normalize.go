package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeScanner()
	c.normalizeTags()
	if err := c.normalizeAcoustID(); err != nil {
		return err
	}
	c.normalizeMusicBrainz()
	c.normalizeFingerprint()
	c.normalizeMAEST()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.MediaRoot) == "" {
		c.Paths.MediaRoot = defaultMediaRoot
	}
	if c.Paths.MediaRoot, err = expandPath(c.Paths.MediaRoot); err != nil {
		return fmt.Errorf("paths.media_root: %w", err)
	}
	if strings.TrimSpace(c.Paths.Database) == "" {
		c.Paths.Database = defaultDatabase
	}
	if c.Paths.Database, err = expandPath(c.Paths.Database); err != nil {
		return fmt.Errorf("paths.database: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(strings.TrimSpace(c.Paths.LogDir)); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeScanner() {
	exts := make([]string, 0, len(c.Scanner.Extensions))
	for _, ext := range c.Scanner.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		exts = append(exts, ext)
	}
	if len(exts) == 0 {
		exts = append(exts, defaultExtensions...)
	}
	c.Scanner.Extensions = exts

	skips := make([]string, 0, len(c.Scanner.SkipDirs))
	for _, dir := range c.Scanner.SkipDirs {
		if dir = strings.Trim(strings.TrimSpace(dir), "/"); dir != "" {
			skips = append(skips, dir)
		}
	}
	c.Scanner.SkipDirs = skips
}

func (c *Config) normalizeTags() {
	c.Tags.FFprobeBinary = strings.TrimSpace(c.Tags.FFprobeBinary)
	if c.Tags.FFprobeBinary == "" {
		c.Tags.FFprobeBinary = defaultFFprobeBinary
	}
	if c.Tags.TimeoutSeconds <= 0 {
		c.Tags.TimeoutSeconds = defaultTagsTimeoutSeconds
	}
}

func (c *Config) normalizeAcoustID() error {
	c.AcoustID.BaseURL = strings.TrimRight(strings.TrimSpace(c.AcoustID.BaseURL), "/")
	if c.AcoustID.BaseURL == "" {
		c.AcoustID.BaseURL = defaultAcoustIDBaseURL
	}
	if c.AcoustID.TimeoutSeconds <= 0 {
		c.AcoustID.TimeoutSeconds = defaultAcoustIDTimeoutSeconds
	}
	if c.AcoustID.RequestIntervalMS < 0 {
		c.AcoustID.RequestIntervalMS = defaultAcoustIDIntervalMS
	}

	c.AcoustID.APIKey = strings.TrimSpace(c.AcoustID.APIKey)
	if c.AcoustID.APIKey == "" {
		if value, ok := os.LookupEnv("ACOUSTID_API_KEY"); ok {
			c.AcoustID.APIKey = strings.TrimSpace(value)
		}
	}

	var err error
	if c.AcoustID.APIKeyFile, err = expandPath(strings.TrimSpace(c.AcoustID.APIKeyFile)); err != nil {
		return fmt.Errorf("acoustid.api_key_file: %w", err)
	}
	if c.AcoustID.APIKey == "" && c.AcoustID.APIKeyFile != "" {
		data, err := os.ReadFile(c.AcoustID.APIKeyFile)
		switch {
		case err == nil:
			c.AcoustID.APIKey = strings.TrimSpace(string(data))
		case errors.Is(err, fs.ErrNotExist):
		default:
			return fmt.Errorf("acoustid.api_key_file: %w", err)
		}
	}
	return nil
}

func (c *Config) normalizeMusicBrainz() {
	c.MusicBrainz.BaseURL = strings.TrimRight(strings.TrimSpace(c.MusicBrainz.BaseURL), "/")
	if c.MusicBrainz.BaseURL == "" {
		c.MusicBrainz.BaseURL = defaultMusicBrainzBaseURL
	}
	c.MusicBrainz.UserAgent = strings.TrimSpace(c.MusicBrainz.UserAgent)
	if c.MusicBrainz.UserAgent == "" {
		c.MusicBrainz.UserAgent = defaultMusicBrainzUserAgent
	}
	if c.MusicBrainz.TimeoutSeconds <= 0 {
		c.MusicBrainz.TimeoutSeconds = defaultMusicBrainzTimeout
	}
	if c.MusicBrainz.RequestIntervalMS < 0 {
		c.MusicBrainz.RequestIntervalMS = defaultMusicBrainzIntervalMS
	}
}

func (c *Config) normalizeFingerprint() {
	c.Fingerprint.FpcalcBinary = strings.TrimSpace(c.Fingerprint.FpcalcBinary)
	if c.Fingerprint.FpcalcBinary == "" {
		c.Fingerprint.FpcalcBinary = defaultFpcalcBinary
	}
	if c.Fingerprint.TimeoutSeconds <= 0 {
		c.Fingerprint.TimeoutSeconds = defaultFpcalcTimeoutSeconds
	}
	if c.Fingerprint.PrefixLength <= 0 {
		c.Fingerprint.PrefixLength = defaultFingerprintPrefixLen
	}
}

func (c *Config) normalizeMAEST() {
	c.MAEST.BaseURL = strings.TrimRight(strings.TrimSpace(c.MAEST.BaseURL), "/")
	if value, ok := os.LookupEnv("KNOBGENRE_MAEST_URL"); ok && strings.TrimSpace(value) != "" {
		c.MAEST.BaseURL = strings.TrimRight(strings.TrimSpace(value), "/")
	}
	c.MAEST.FFmpegBinary = strings.TrimSpace(c.MAEST.FFmpegBinary)
	if c.MAEST.FFmpegBinary == "" {
		c.MAEST.FFmpegBinary = defaultFFmpegBinary
	}
	if c.MAEST.ClipSeconds <= 0 {
		c.MAEST.ClipSeconds = defaultMAESTClipSeconds
	}
	if c.MAEST.SampleRate <= 0 {
		c.MAEST.SampleRate = defaultMAESTSampleRate
	}
	if c.MAEST.TimeoutSeconds <= 0 {
		c.MAEST.TimeoutSeconds = defaultMAESTTimeoutSeconds
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Logging.MaxSizeMB <= 0 {
		c.Logging.MaxSizeMB = defaultLogMaxSizeMB
	}
	if c.Logging.MaxBackups < 0 {
		c.Logging.MaxBackups = 0
	}
	if c.Logging.MaxAgeDays < 0 {
		c.Logging.MaxAgeDays = 0
	}
}
