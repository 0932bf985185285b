package probe

import (
	"context"

	"mediadiff/internal/media/ffprobe"
)

// inspectMedia is the ffprobe function used by the probe package.
// It is a package-level variable so tests can override it.
var inspectMedia = ffprobe.Inspect

// SetInspectForTests overrides the ffprobe runner during tests.
func SetInspectForTests(fn func(context.Context, string, string) (ffprobe.Result, error)) func() {
	previous := inspectMedia
	inspectMedia = fn
	return func() {
		inspectMedia = previous
	}
}
