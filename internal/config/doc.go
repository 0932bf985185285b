// Package config loads, normalizes, and validates mediadiff configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// MEDIADIFF_FFPROBE. The Config type centralizes every knob the scan pipeline
// and CLI need: worker counts, filter suffixes, probe behaviour, report
// ordering, and logging.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
