package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeScan()
	c.normalizeProbe()
	if err := c.normalizeLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) normalizeScan() {
	if c.Scan.Workers < 0 {
		c.Scan.Workers = 0
	}
	suffixes := make([]string, 0, len(c.Scan.ExcludeSuffixes))
	seen := make(map[string]struct{}, len(c.Scan.ExcludeSuffixes))
	for _, suffix := range c.Scan.ExcludeSuffixes {
		// Suffixes match literally, so only surrounding whitespace is trimmed.
		trimmed := strings.TrimSpace(suffix)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		suffixes = append(suffixes, trimmed)
	}
	c.Scan.ExcludeSuffixes = suffixes
}

func (c *Config) normalizeProbe() {
	c.Probe.FFprobeBinary = strings.TrimSpace(c.Probe.FFprobeBinary)
	if value, ok := os.LookupEnv("MEDIADIFF_FFPROBE"); ok && strings.TrimSpace(value) != "" {
		c.Probe.FFprobeBinary = strings.TrimSpace(value)
	}
	if c.Probe.FFprobeBinary == "" {
		c.Probe.FFprobeBinary = defaultFFprobeBinary
	}
	if c.Probe.TimeoutSeconds < 0 {
		c.Probe.TimeoutSeconds = 0
	}
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if strings.TrimSpace(c.Logging.File) != "" {
		var err error
		if c.Logging.File, err = expandPath(strings.TrimSpace(c.Logging.File)); err != nil {
			return fmt.Errorf("logging.file: %w", err)
		}
	}
	return nil
}
