package report

import (
	"sort"
	"strings"
	"time"
)

// StreamDescription records one selected stream in a summary.
type StreamDescription struct {
	Kind string
	Rate string
}

// String renders the stream fragment printed under a report block.
func (s StreamDescription) String() string {
	return s.Kind + ": " + s.Rate + " kb/s"
}

// Summary is the outcome of probing one media file.
type Summary struct {
	Path     string
	Name     string
	Duration time.Duration
	BitRate  int64
	Streams  []StreamDescription
}

// Block renders the summary as a multi-line report block without a trailing newline.
func (s Summary) Block() string {
	var b strings.Builder
	b.WriteString(s.Name)
	b.WriteString("\n\tDuration: ")
	b.WriteString(FormatDuration(s.Duration))
	b.WriteString("\n\tBit rate: ")
	b.WriteString(FormatBitRate(s.BitRate))
	for _, stream := range s.Streams {
		b.WriteString("\n\t")
		b.WriteString(stream.String())
	}
	return b.String()
}

// Stats counts how a run's candidates were resolved.
type Stats struct {
	Candidates int
	Probed     int
	Skipped    int
}

// Report is the ordered set of summaries produced by one scan.
type Report struct {
	Summaries []Summary
	Stats     Stats
}

// Empty reports whether the scan discovered no candidates at all.
func (r Report) Empty() bool {
	return r.Stats.Candidates == 0
}

// SortByPath orders summaries by their source path. The sort is stable so
// duplicate paths keep their collection order.
func (r *Report) SortByPath() {
	sort.SliceStable(r.Summaries, func(i, j int) bool {
		return r.Summaries[i].Path < r.Summaries[j].Path
	})
}

// String joins every block with a single newline.
func (r Report) String() string {
	blocks := make([]string, 0, len(r.Summaries))
	for _, summary := range r.Summaries {
		blocks = append(blocks, summary.Block())
	}
	return strings.Join(blocks, "\n")
}
