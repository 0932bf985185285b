package scan

import (
	"context"
	"log/slog"
	"sync"

	"mediadiff/internal/config"
	"mediadiff/internal/discovery"
	"mediadiff/internal/logging"
	"mediadiff/internal/probe"
	"mediadiff/internal/report"
	"mediadiff/internal/scanctx"
)

// Scanner walks a root and probes every candidate it finds.
type Scanner struct {
	cfg    *config.Config
	filter discovery.Filter
	logger *slog.Logger
}

// New constructs a Scanner. A nil logger discards output.
func New(cfg *config.Config, logger *slog.Logger) *Scanner {
	return &Scanner{
		cfg:    cfg,
		filter: discovery.NewFilter(cfg.Scan.ExcludeSuffixes),
		logger: logging.NewComponentLogger(logger, "scan"),
	}
}

type probeResult struct {
	summary report.Summary
	ok      bool
}

// Run scans root and returns the assembled report. Only root-level failures
// (missing root, cancelled context) are returned as errors; per-file failures
// are logged and counted in Stats.Skipped.
func (s *Scanner) Run(ctx context.Context, root string) (report.Report, error) {
	if _, ok := scanctx.RunIDFromContext(ctx); !ok {
		ctx = scanctx.WithRunID(ctx, scanctx.NewRunID())
	}
	logger := logging.WithContext(ctx, s.logger)
	logger.Info("Path", logging.String(logging.FieldPath, root))

	candidates, err := discovery.Walk(scanctx.WithStage(ctx, "discovery"), root, s.filter, logger)
	if err != nil {
		return report.Report{}, err
	}
	logger.Debug("discovered paths", logging.Int("count", len(candidates)))

	rep := report.Report{Stats: report.Stats{Candidates: len(candidates)}}
	if len(candidates) == 0 {
		return rep, nil
	}

	prober := probe.New(s.cfg, root, logger)
	results, err := s.probeAll(ctx, prober, candidates)
	if err != nil {
		return report.Report{}, err
	}

	for _, result := range results {
		if !result.ok {
			rep.Stats.Skipped++
			continue
		}
		rep.Stats.Probed++
		rep.Summaries = append(rep.Summaries, result.summary)
	}
	if s.cfg.Report.Sort {
		rep.SortByPath()
	}

	logger.Debug("scan complete",
		logging.Int("candidates", rep.Stats.Candidates),
		logging.Int("probed", rep.Stats.Probed),
		logging.Int("skipped", rep.Stats.Skipped),
	)
	return rep, nil
}

// probeAll runs the prober over candidates on a bounded worker pool and
// returns the results in completion order.
func (s *Scanner) probeAll(ctx context.Context, prober *probe.Prober, candidates []string) ([]probeResult, error) {
	workers := min(s.cfg.WorkerCount(), len(candidates))

	jobs := make(chan string)
	out := make(chan probeResult, workers)

	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			for path := range jobs {
				summary, ok := prober.Probe(ctx, path)
				out <- probeResult{summary: summary, ok: ok}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, path := range candidates {
			select {
			case <-ctx.Done():
				return
			case jobs <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(out)
	}()

	results := make([]probeResult, 0, len(candidates))
	for result := range out {
		results = append(results, result)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
