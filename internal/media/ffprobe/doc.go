// Package ffprobe provides a typed wrapper around ffprobe JSON output.
//
// This package has no mediadiff-specific dependencies and could be extracted
// as a standalone library.
//
// Key types:
//   - Result: parsed ffprobe output containing streams and format metadata
//   - Stream: individual audio/video/subtitle stream properties
//   - Format: container-level metadata (duration, size, bitrate)
//
// Primary entry points:
//   - Inspect: executes ffprobe and returns parsed Result
//   - Parse: decodes previously captured ffprobe JSON
//
// Helper methods on Result provide convenient access to stream counts,
// duration parsing, and bitrate extraction. Stream helpers expose the base
// frame rate, disposition flags and numeric fields with zero fallbacks.
package ffprobe
