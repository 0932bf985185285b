package probe

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"mediadiff/internal/config"
	"mediadiff/internal/faults"
	"mediadiff/internal/logging"
	"mediadiff/internal/media/ffprobe"
	"mediadiff/internal/media/selection"
	"mediadiff/internal/report"
	"mediadiff/internal/scanctx"
)

// reportedKinds lists the stream kinds summarised per file, in output order.
var reportedKinds = []string{ffprobe.KindVideo, ffprobe.KindAudio}

// Prober inspects single files. It holds no mutable state and is safe for
// concurrent use.
type Prober struct {
	binary     string
	timeout    time.Duration
	strictMIME bool
	readTags   bool
	root       string
	relative   bool
	logger     *slog.Logger
}

// New builds a Prober from configuration. root is only consulted when the
// report prints paths relative to the scan root.
func New(cfg *config.Config, root string, logger *slog.Logger) *Prober {
	return &Prober{
		binary:     cfg.FFprobeBinary(),
		timeout:    cfg.ProbeTimeout(),
		strictMIME: cfg.Probe.StrictMIME,
		readTags:   cfg.Probe.ReadTags,
		root:       root,
		relative:   cfg.Report.RelativePaths,
		logger:     logging.NewComponentLogger(logger, "prober"),
	}
}

// Probe inspects path and returns its summary. The boolean is false when the
// file could not be opened as media (or failed the strict MIME check); the
// failure has already been logged.
func (p *Prober) Probe(ctx context.Context, path string) (report.Summary, bool) {
	ctx = scanctx.WithPath(scanctx.WithStage(ctx, "probe"), path)
	logger := logging.WithContext(ctx, p.logger)

	probeCtx := ctx
	if p.timeout > 0 {
		var cancel context.CancelFunc
		probeCtx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	result, err := inspectMedia(probeCtx, p.binary, path)
	if err != nil {
		logging.WarnWithContext(logger, "error processing file, ignoring", "probe_failed",
			logging.Error(faults.Wrap(faults.ErrProbeOpen, "probe", "open", "", err)),
		)
		return report.Summary{}, false
	}

	if !p.checkMIME(ctx, logger, path) {
		return report.Summary{}, false
	}

	summary := report.Summary{
		Path:     path,
		Name:     p.displayName(path),
		Duration: time.Duration(result.DurationMicros()) * time.Microsecond,
		BitRate:  max(result.BitRate(), 0),
	}

	titler := cases.Title(language.Und)
	for _, kind := range reportedKinds {
		stream, ok := selection.Best(result.Streams, kind)
		if !ok {
			continue
		}
		logger.Debug("best stream selected",
			logging.String("kind", kind),
			logging.Int("stream_index", stream.Index),
		)
		summary.Streams = append(summary.Streams, report.StreamDescription{
			Kind: titler.String(kind),
			Rate: stream.Rate(),
		})
	}

	logStreamMetadata(ctx, logger, result)
	if p.readTags {
		logEmbeddedTags(ctx, logger, path)
	}

	return summary, true
}

// checkMIME logs the sniffed MIME chain. It only rejects the file in strict mode.
func (p *Prober) checkMIME(ctx context.Context, logger *slog.Logger, path string) bool {
	if !p.strictMIME && !logger.Enabled(ctx, slog.LevelDebug) {
		return true
	}
	types, err := detectMIMETypes(path)
	if err != nil {
		logger.Debug("mime detection failed", logging.Error(err))
		return !p.strictMIME
	}
	media := isMediaMIME(types)
	logger.Debug("mime types", logging.Strings("mime_types", types), logging.Bool("media", media))
	if media || !p.strictMIME {
		return true
	}
	logging.WarnWithContext(logger, "error processing file, ignoring", "mime_mismatch",
		logging.Error(faults.Wrap(faults.ErrMimeMismatch, "probe", "mime", types[0], nil)),
		logging.String(logging.FieldErrorHint, "strict_mime enabled; file is not audio or video"),
	)
	return false
}

func (p *Prober) displayName(path string) string {
	if !p.relative || p.root == "" {
		return path
	}
	rel, err := filepath.Rel(p.root, path)
	if err != nil {
		return path
	}
	return rel
}
