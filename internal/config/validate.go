package config

import (
	"fmt"
	"strings"

	"mediadiff/internal/faults"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateScan(); err != nil {
		return err
	}
	if err := c.validateProbe(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateScan() error {
	if c.Scan.Workers > maxWorkers {
		return invalid("scan.workers must be at most %d", maxWorkers)
	}
	if c.Scan.FollowSymlinks {
		return invalid("scan.follow_symlinks is not supported; symlinked directories are never traversed")
	}
	return nil
}

func (c *Config) validateProbe() error {
	if strings.TrimSpace(c.Probe.FFprobeBinary) == "" {
		return invalid("probe.ffprobe_binary must be set")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return invalid("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return invalid("logging.level must be debug, info, warn or error, got %q", c.Logging.Level)
	}
	return nil
}

func invalid(format string, args ...any) error {
	return faults.Wrap(faults.ErrConfiguration, "config", "validate", fmt.Sprintf(format, args...), nil)
}
