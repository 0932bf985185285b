package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mediadiff/internal/media/ffprobe"
	"mediadiff/internal/probe"
)

// setupCLITestEnv isolates config lookup from the developer's machine and
// replaces ffprobe with a stub that accepts .mp3 and .mkv files.
func setupCLITestEnv(t *testing.T) string {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)
	t.Setenv("MEDIADIFF_FFPROBE", "")
	t.Chdir(base)

	restore := probe.SetInspectForTests(func(_ context.Context, _ string, path string) (ffprobe.Result, error) {
		switch filepath.Ext(path) {
		case ".mp3":
			return ffprobe.Result{
				Format: ffprobe.Format{FormatName: "mp3", Duration: "91", BitRate: "12000"},
				Streams: []ffprobe.Stream{
					{Index: 0, CodecType: "audio", SampleRate: "44100", Channels: 2, RFrameRate: "0/0"},
				},
			}, nil
		case ".mkv":
			return ffprobe.Result{
				Format: ffprobe.Format{FormatName: "matroska,webm", Duration: "28797", BitRate: "2500000"},
				Streams: []ffprobe.Stream{
					{Index: 0, CodecType: "video", RFrameRate: "24/1"},
					{Index: 1, CodecType: "audio", SampleRate: "48000", Channels: 2, RFrameRate: "0/0"},
				},
			}, nil
		default:
			return ffprobe.Result{}, errors.New("Invalid data found when processing input")
		}
	})
	t.Cleanup(restore)

	return base
}

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected %q to contain %q", haystack, needle)
	}
}

func writeExecutable(t *testing.T, dir, name string) {
	t.Helper()
	script := []byte("#!/bin/sh\nexit 0\n")
	if err := os.WriteFile(filepath.Join(dir, name), script, 0o755); err != nil {
		t.Fatalf("write stub %s: %v", name, err)
	}
}
