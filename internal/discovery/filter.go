package discovery

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"mediadiff/internal/faults"
)

// ErrNonTextName marks paths that cannot be represented as UTF-8 text.
var ErrNonTextName = errors.New("file name is not valid UTF-8")

// Filter decides which walked entries are probe candidates.
type Filter struct {
	excludeSuffixes []string
}

// NewFilter returns a filter rejecting names that end in any of suffixes.
// Suffixes are matched literally and case-sensitively.
func NewFilter(excludeSuffixes []string) Filter {
	suffixes := make([]string, 0, len(excludeSuffixes))
	for _, suffix := range excludeSuffixes {
		if suffix != "" {
			suffixes = append(suffixes, suffix)
		}
	}
	return Filter{excludeSuffixes: suffixes}
}

// ShouldInspect reports whether the entry at path should be probed.
// Directories and excluded suffixes return false. A file name that is not
// valid UTF-8 returns ErrNonTextName wrapped with the faults.ErrFilter marker;
// only the final path element is judged, so parent directories may carry any
// bytes.
func (f Filter) ShouldInspect(path string, d fs.DirEntry) (bool, error) {
	if d != nil && d.IsDir() {
		return false, nil
	}
	name := filepath.Base(path)
	if d != nil {
		name = d.Name()
	}
	if !utf8.ValidString(name) {
		return false, faults.Wrap(faults.ErrFilter, "discovery", "filter", fmt.Sprintf("%q", path), ErrNonTextName)
	}
	for _, suffix := range f.excludeSuffixes {
		if strings.HasSuffix(path, suffix) {
			return false, nil
		}
	}
	return true, nil
}
