package config

const (
	defaultConfigPath     = "~/.config/mediadiff/config.toml"
	defaultProjectConfig  = "mediadiff.toml"
	defaultFFprobeBinary  = "ffprobe"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
	defaultExcludedSuffix = ".nfo"
	maxWorkers            = 256
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Scan: Scan{
			Workers:         0,
			ExcludeSuffixes: []string{defaultExcludedSuffix},
			FollowSymlinks:  false,
		},
		Probe: Probe{
			FFprobeBinary:  defaultFFprobeBinary,
			TimeoutSeconds: 0,
			StrictMIME:     false,
			ReadTags:       true,
		},
		Report: Report{
			Sort:          true,
			RelativePaths: false,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
