// Package report renders probed media summaries into the line-oriented,
// diffable text format printed by mediadiff.
//
// It owns the two formatting routines whose output must stay byte-stable
// across releases (FormatDuration and FormatBitRate), the Summary value the
// prober produces per file, and the Report that joins summaries into blocks.
package report
