// Package scan assembles the report for one root directory.
//
// A Scanner walks the root, fans the candidates out to a bounded pool of
// probe workers and gathers the summaries that succeeded. Failed files are
// dropped individually. By default the finished report is ordered by path so
// two scans of the same collection diff cleanly.
package scan
