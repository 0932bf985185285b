// Package selection picks the representative stream of a given kind from an
// ffprobe result.
//
// This package depends only on internal/media/ffprobe and could be extracted
// as a standalone library alongside ffprobe.
//
// Candidates are ranked the way ffmpeg's av_find_best_stream ranks them:
//  1. Disposition score (not hearing/visual impaired, default flag)
//  2. Decoded frame evidence, capped at five frames
//  3. Stream bit rate
//  4. Total frame count
//
// The earliest stream wins remaining ties. Audio streams that report no
// channels or no sample rate are never selected.
//
// Primary entry point:
//   - Best: returns the selected stream for a kind, if any
package selection
