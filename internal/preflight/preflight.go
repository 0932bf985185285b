package preflight

import (
	"path/filepath"
	"strings"

	"mediadiff/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes every applicable preflight check for the given config and
// scan root. An empty root skips the root check.
func RunAll(cfg *config.Config, root string) []Result {
	if cfg == nil {
		return nil
	}

	var results []Result

	results = append(results, CheckFFprobe(cfg.FFprobeBinary()))

	if strings.TrimSpace(root) != "" {
		results = append(results, CheckReadableDirectory("Scan root", root))
	}

	// Log directory (when file logging is configured)
	if file := strings.TrimSpace(cfg.Logging.File); file != "" {
		results = append(results, CheckDirectoryAccess("Log directory", filepath.Dir(file)))
	}

	return results
}

// Failed reports whether any result did not pass.
func Failed(results []Result) bool {
	for _, r := range results {
		if !r.Passed {
			return true
		}
	}
	return false
}
