package config

import (
	"fmt"
	"path"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeCDN()
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeEncoder()
	c.normalizeLogging()
	c.normalizeAssets()
	return nil
}

func (c *Config) normalizeCDN() {
	c.CDN.BaseURL = strings.TrimRight(strings.TrimSpace(c.CDN.BaseURL), "/")
	if c.CDN.BaseURL == "" {
		c.CDN.BaseURL = defaultCDNBaseURL
	}
	if c.CDN.RequestTimeout == 0 {
		c.CDN.RequestTimeout = defaultRequestTimeout
	}
}

func (c *Config) normalizePaths() error {
	if strings.TrimSpace(c.Paths.WorkDir) == "" {
		c.Paths.WorkDir = defaultWorkDir
	}
	var err error
	if c.Paths.WorkDir, err = expandPath(strings.TrimSpace(c.Paths.WorkDir)); err != nil {
		return fmt.Errorf("paths.work_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeEncoder() {
	if c.Normalize.SampleRate == 0 {
		c.Normalize.SampleRate = defaultSampleRate
	}
	c.Normalize.MP3Bitrate = strings.ToLower(strings.TrimSpace(c.Normalize.MP3Bitrate))
	if c.Normalize.MP3Bitrate == "" {
		c.Normalize.MP3Bitrate = defaultMP3Bitrate
	}
	c.Normalize.FFmpegBinary = strings.TrimSpace(c.Normalize.FFmpegBinary)
	c.Normalize.FFprobeBinary = strings.TrimSpace(c.Normalize.FFprobeBinary)
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
}

// normalizeAssets trims leading slashes, cleans each path and drops
// duplicates while keeping the configured order.
func (c *Config) normalizeAssets() {
	assets := make([]string, 0, len(c.Assets))
	seen := make(map[string]struct{}, len(c.Assets))
	for _, raw := range c.Assets {
		trimmed := strings.TrimLeft(strings.TrimSpace(raw), "/")
		if trimmed == "" {
			continue
		}
		cleaned := path.Clean(strings.ReplaceAll(trimmed, "\\", "/"))
		if _, ok := seen[cleaned]; ok {
			continue
		}
		seen[cleaned] = struct{}{}
		assets = append(assets, cleaned)
	}
	c.Assets = assets
}
