package deps

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// CheckFFprobe reports the ffprobe binary a scan will execute.
//
// The configured command is resolved first. When it is the bare default name
// and not on PATH, an ffprobe sitting next to the real ffmpeg binary (after
// following symlinks) is accepted. That covers static ffmpeg bundles where
// only ffmpeg was linked into PATH.
func CheckFFprobe(configured string) Status {
	result := Status{
		Name:        "FFprobe",
		Description: "Required for media inspection",
	}

	command := strings.TrimSpace(configured)
	if command == "" {
		command = "ffprobe"
	}
	if resolved, err := exec.LookPath(command); err == nil {
		result.Command = resolved
		result.Available = true
		return result
	}

	if command == "ffprobe" {
		if ffmpegPath, err := exec.LookPath("ffmpeg"); err == nil {
			if real, err := filepath.EvalSymlinks(ffmpegPath); err == nil {
				ffmpegPath = real
			}
			candidate := sidecarCandidate(ffmpegPath, "ffprobe")
			if info, statErr := os.Stat(candidate); statErr == nil && isExecutable(info) {
				result.Command = candidate
				result.Available = true
				return result
			}
		}
	}

	result.Command = command
	result.Detail = fmt.Sprintf("binary %q not found", command)
	return result
}

// ResolveFFprobePath returns the command CheckFFprobe would run, falling back
// to the configured value when nothing resolves.
func ResolveFFprobePath(configured string) string {
	return CheckFFprobe(configured).Command
}

func sidecarCandidate(siblingPath, name string) string {
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	return filepath.Join(filepath.Dir(siblingPath), name)
}

func isExecutable(info os.FileInfo) bool {
	if info == nil {
		return false
	}
	if info.IsDir() {
		return false
	}
	if runtime.GOOS == "windows" {
		return true
	}
	return info.Mode().Perm()&0o111 != 0
}
