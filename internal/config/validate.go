package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Validate ensures the configuration is usable. Missing pass 2/3 credentials
// are not errors here; those passes report themselves unavailable instead.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateServices(); err != nil {
		return err
	}
	if err := c.validateMAEST(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if c.Paths.MediaRoot == "" {
		return errors.New("paths.media_root must be set")
	}
	if c.Paths.Database == "" {
		return errors.New("paths.database must be set")
	}
	if len(c.Scanner.Extensions) == 0 {
		return errors.New("scanner.extensions must list at least one extension")
	}
	return nil
}

func (c *Config) validateServices() error {
	if err := validateBaseURL("acoustid.base_url", c.AcoustID.BaseURL); err != nil {
		return err
	}
	if err := validateBaseURL("musicbrainz.base_url", c.MusicBrainz.BaseURL); err != nil {
		return err
	}
	if c.Fingerprint.PrefixLength > 256 {
		return errors.New("fingerprint.acoustid_prefix_len must be at most 256")
	}
	return nil
}

func (c *Config) validateMAEST() error {
	if !c.MAEST.Enabled {
		return nil
	}
	if c.MAEST.BaseURL != "" {
		if err := validateBaseURL("maest.base_url", c.MAEST.BaseURL); err != nil {
			return err
		}
	}
	if c.MAEST.TopK <= 0 {
		return errors.New("maest.top_k must be positive")
	}
	if c.MAEST.SampleRate < 8000 {
		return errors.New("maest.sample_rate must be at least 8000")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q (use console or json)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}

func validateBaseURL(field, value string) error {
	parsed, err := url.Parse(value)
	if err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("%s must use http or https, got %q", field, value)
	}
	if strings.TrimSpace(parsed.Host) == "" {
		return fmt.Errorf("%s must include a host", field)
	}
	return nil
}
