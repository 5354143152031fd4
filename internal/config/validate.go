package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"audionorm/internal/fileutil"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateCDN(); err != nil {
		return err
	}
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateNormalize(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateAssets(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateCDN() error {
	parsed, err := url.Parse(c.CDN.BaseURL)
	if err != nil {
		return fmt.Errorf("cdn.base_url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("cdn.base_url must use http or https, got %q", c.CDN.BaseURL)
	}
	if parsed.Host == "" {
		return fmt.Errorf("cdn.base_url is missing a host: %q", c.CDN.BaseURL)
	}
	if c.CDN.RequestTimeout < 0 {
		return errors.New("cdn.request_timeout must be positive")
	}
	return nil
}

// validatePaths guards work_dir, which every run deletes recursively.
func (c *Config) validatePaths() error {
	workDir, err := expandPath(strings.TrimSpace(c.Paths.WorkDir))
	if err != nil {
		return fmt.Errorf("paths.work_dir: %w", err)
	}
	if err := fileutil.CheckRemovable(workDir); err != nil {
		return fmt.Errorf("paths.work_dir: %w", err)
	}
	return nil
}

func (c *Config) validateNormalize() error {
	if c.Normalize.TargetDBFS > 0 {
		return fmt.Errorf("normalize.target_dbfs must be at or below 0, got %v", c.Normalize.TargetDBFS)
	}
	if c.Normalize.HeadroomDB < 0 {
		return fmt.Errorf("normalize.headroom_db must not be negative, got %v", c.Normalize.HeadroomDB)
	}
	if c.Normalize.SampleRate < 0 {
		return errors.New("normalize.sample_rate must be positive")
	}
	if !strings.HasSuffix(c.Normalize.MP3Bitrate, "k") || len(c.Normalize.MP3Bitrate) < 2 {
		return fmt.Errorf("normalize.mp3_bitrate must look like \"192k\", got %q", c.Normalize.MP3Bitrate)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}

func (c *Config) validateAssets() error {
	if len(c.Assets) == 0 {
		return errors.New("assets must list at least one file")
	}
	for _, asset := range c.Assets {
		if asset == "." || asset == ".." || strings.HasPrefix(asset, "../") {
			return fmt.Errorf("asset %q escapes the work tree", asset)
		}
	}
	return nil
}
