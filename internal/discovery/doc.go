// Package discovery finds the candidate files of a scan.
//
// Walk traverses the root with fastwalk without following symlinks, applies
// the Filter to each entry and returns the surviving paths in lexical order.
// Per-entry failures (unreadable directories, non-UTF-8 names) are logged and
// skipped; only a missing or non-directory root fails the walk.
package discovery
