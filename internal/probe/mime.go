package probe

import (
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// detectMIMETypes returns the detected MIME type of path followed by its
// parent types, most specific first.
func detectMIMETypes(path string) ([]string, error) {
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return nil, err
	}
	var types []string
	for m := mtype; m != nil; m = m.Parent() {
		types = append(types, m.String())
	}
	return types, nil
}

// isMediaMIME reports whether any type in the chain is audio or video.
func isMediaMIME(types []string) bool {
	for _, t := range types {
		if strings.HasPrefix(t, "audio/") || strings.HasPrefix(t, "video/") {
			return true
		}
	}
	return false
}
