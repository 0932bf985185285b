// Package main hosts the mediadiff CLI entrypoint and command graph.
//
// The root command scans one directory and prints the report to stdout, so
// two runs can be compared with diff. Logs go to stderr. The check and config
// subcommands cover preflight diagnostics and configuration scaffolding.
//
// Keep this package lean: scanning, probing and formatting live in internal
// packages; commands here only resolve configuration and route output.
package main
