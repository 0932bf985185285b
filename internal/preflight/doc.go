// Package preflight provides readiness checks for the tools and paths a
// scan depends on.
//
// The CLI "mediadiff check" command runs RunAll and renders each Result as a
// status line. Checks never modify the filesystem; the log directory check
// only tests permissions.
package preflight
