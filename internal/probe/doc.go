// Package probe turns one candidate path into a report summary.
//
// A Prober runs ffprobe on the file, converts container duration and bit rate
// into report values and picks the best video and audio stream. Files that
// ffprobe cannot open are logged and skipped; the scan never aborts on a single
// file. MIME sniffing and tag reading are diagnostic side channels logged at
// DEBUG; only strict MIME mode lets them exclude a file.
package probe
