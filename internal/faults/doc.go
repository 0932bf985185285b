// Package faults defines the error markers shared by the scan pipeline.
//
// Every failure a stage produces is wrapped with one of the exported
// sentinels so callers can classify it with errors.Is without parsing
// messages. Per-file markers (traversal, filter, probe, MIME) are recoverable:
// the pipeline logs them and moves on. Root and configuration markers abort
// the run.
package faults
