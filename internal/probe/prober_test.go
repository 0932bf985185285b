package probe_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"mediadiff/internal/logging"
	"mediadiff/internal/media/ffprobe"
	"mediadiff/internal/probe"
	"mediadiff/internal/report"
	"mediadiff/internal/testsupport"
)

func mp3Header() []byte {
	content := append([]byte("ID3\x03\x00\x00\x00\x00\x00\x0a"), make([]byte, 64)...)
	return append(content, testsupport.ID3v1("Track", "Artist")...)
}

func stubInspect(t *testing.T, results map[string]ffprobe.Result) {
	t.Helper()
	restore := probe.SetInspectForTests(func(_ context.Context, _ string, path string) (ffprobe.Result, error) {
		result, ok := results[filepath.Base(path)]
		if !ok {
			return ffprobe.Result{}, errors.New("Invalid data found when processing input")
		}
		return result, nil
	})
	t.Cleanup(restore)
}

func audioResult(duration, bitRate string) ffprobe.Result {
	return ffprobe.Result{
		Format: ffprobe.Format{FormatName: "mp3", Duration: duration, BitRate: bitRate},
		Streams: []ffprobe.Stream{
			{Index: 0, CodecType: "audio", CodecName: "mp3", SampleRate: "44100", Channels: 2, RFrameRate: "0/0"},
		},
	}
}

func TestProbeAudioFile(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "song.mp3")
	testsupport.WriteBytes(t, path, mp3Header())
	stubInspect(t, map[string]ffprobe.Result{"song.mp3": audioResult("91.000000", "12000")})

	cfg := testsupport.NewConfig(t)
	summary, ok := probe.New(cfg, root, logging.NewNop()).Probe(context.Background(), path)
	if !ok {
		t.Fatal("expected probe to succeed")
	}
	want := path + "\n\tDuration: 01:31\n\tBit rate: 12.00 KB/s\n\tAudio: 0/0 kb/s"
	if got := summary.Block(); got != want {
		t.Fatalf("Block() = %q, want %q", got, want)
	}
	if summary.Duration != 91*time.Second {
		t.Fatalf("Duration = %v", summary.Duration)
	}
}

func TestProbeOrdersVideoBeforeAudio(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "movie.mkv")
	testsupport.WriteFile(t, path, 64)
	stubInspect(t, map[string]ffprobe.Result{"movie.mkv": {
		Format: ffprobe.Format{FormatName: "matroska,webm", Duration: "3600.5", BitRate: "4500000"},
		Streams: []ffprobe.Stream{
			{Index: 0, CodecType: "audio", SampleRate: "48000", Channels: 6, RFrameRate: "0/0"},
			{Index: 1, CodecType: "video", RFrameRate: "24000/1001", Disposition: map[string]int{"default": 1}},
			{Index: 2, CodecType: "subtitle"},
		},
	}})

	summary, ok := probe.New(testsupport.NewConfig(t), root, nil).Probe(context.Background(), path)
	if !ok {
		t.Fatal("expected probe to succeed")
	}
	want := []report.StreamDescription{{Kind: "Video", Rate: "24000/1001"}, {Kind: "Audio", Rate: "0/0"}}
	if len(summary.Streams) != len(want) {
		t.Fatalf("Streams = %v, want %v", summary.Streams, want)
	}
	for i := range want {
		if summary.Streams[i] != want[i] {
			t.Fatalf("Streams[%d] = %v, want %v", i, summary.Streams[i], want[i])
		}
	}
	if got := report.FormatDuration(summary.Duration); got != "01:00:00.50" {
		t.Fatalf("duration = %q", got)
	}
	if got := report.FormatBitRate(summary.BitRate); got != "4.50 MB/s" {
		t.Fatalf("bit rate = %q", got)
	}
}

func TestProbeMissingMetadataYieldsZeros(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "raw.bin")
	testsupport.WriteFile(t, path, 16)
	stubInspect(t, map[string]ffprobe.Result{"raw.bin": {Format: ffprobe.Format{FormatName: "data", Duration: "N/A"}}})

	summary, ok := probe.New(testsupport.NewConfig(t), root, nil).Probe(context.Background(), path)
	if !ok {
		t.Fatal("expected probe to succeed")
	}
	want := path + "\n\tDuration: 00:00\n\tBit rate: 0 B/s"
	if got := summary.Block(); got != want {
		t.Fatalf("Block() = %q, want %q", got, want)
	}
}

func TestProbeOpenFailureIsSkipped(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "notes.txt")
	testsupport.WriteFile(t, path, 16)
	stubInspect(t, nil)

	if _, ok := probe.New(testsupport.NewConfig(t), root, nil).Probe(context.Background(), path); ok {
		t.Fatal("expected probe failure to be reported as skipped")
	}
}

func TestProbeRelativeNames(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "album", "01.mp3")
	testsupport.WriteBytes(t, path, mp3Header())
	stubInspect(t, map[string]ffprobe.Result{"01.mp3": audioResult("1.12", "320000")})

	cfg := testsupport.NewConfig(t, testsupport.WithRelativePaths())
	summary, ok := probe.New(cfg, root, nil).Probe(context.Background(), path)
	if !ok {
		t.Fatal("expected probe to succeed")
	}
	if summary.Name != filepath.Join("album", "01.mp3") {
		t.Fatalf("Name = %q", summary.Name)
	}
	if summary.Path != path {
		t.Fatalf("Path = %q", summary.Path)
	}
	if !strings.Contains(summary.Block(), "Duration: 00:01.12") {
		t.Fatalf("unexpected block %q", summary.Block())
	}
}

func TestProbeStrictMIME(t *testing.T) {
	root := t.TempDir()
	media := filepath.Join(root, "song.mp3")
	text := filepath.Join(root, "lyrics.txt")
	testsupport.WriteBytes(t, media, mp3Header())
	testsupport.WriteBytes(t, text, []byte("just some lyrics\n"))
	stubInspect(t, map[string]ffprobe.Result{
		"song.mp3":   audioResult("10", "128000"),
		"lyrics.txt": audioResult("10", "128000"),
	})

	lenient := probe.New(testsupport.NewConfig(t), root, nil)
	if _, ok := lenient.Probe(context.Background(), text); !ok {
		t.Fatal("lenient mode should keep files ffprobe can open")
	}

	strict := probe.New(testsupport.NewConfig(t, testsupport.WithStrictMIME()), root, nil)
	if _, ok := strict.Probe(context.Background(), media); !ok {
		t.Fatal("strict mode should keep audio files")
	}
	if _, ok := strict.Probe(context.Background(), text); ok {
		t.Fatal("strict mode should reject text files")
	}
}

func TestProbeTimeoutReachesInspector(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "slow.mkv")
	testsupport.WriteFile(t, path, 16)

	var sawDeadline bool
	restore := probe.SetInspectForTests(func(ctx context.Context, _ string, _ string) (ffprobe.Result, error) {
		_, sawDeadline = ctx.Deadline()
		return audioResult("1", "1"), nil
	})
	t.Cleanup(restore)

	cfg := testsupport.NewConfig(t)
	cfg.Probe.TimeoutSeconds = 5
	if _, ok := probe.New(cfg, root, nil).Probe(context.Background(), path); !ok {
		t.Fatal("expected probe to succeed")
	}
	if !sawDeadline {
		t.Fatal("expected per-file deadline on inspector context")
	}
}

func TestContainerDiagnosticsLogged(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "movie.mkv")
	testsupport.WriteFile(t, path, 64)
	stubInspect(t, map[string]ffprobe.Result{"movie.mkv": {
		Format: ffprobe.Format{FormatName: "matroska,webm", Duration: "10", Size: "2048"},
		Streams: []ffprobe.Stream{
			{Index: 0, CodecType: "video", RFrameRate: "25/1"},
			{Index: 1, CodecType: "audio", SampleRate: "48000", Channels: 2},
			{Index: 2, CodecType: "audio", SampleRate: "48000", Channels: 6},
		},
	}})

	logPath := filepath.Join(t.TempDir(), "probe.log")
	logger, err := logging.New(logging.Options{Format: "json", Level: "debug", OutputPaths: []string{logPath}})
	if err != nil {
		t.Fatalf("logging.New: %v", err)
	}
	if _, ok := probe.New(testsupport.NewConfig(t), root, logger).Probe(context.Background(), path); !ok {
		t.Fatal("expected probe to succeed")
	}

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	var line string
	for _, candidate := range strings.Split(string(content), "\n") {
		if strings.Contains(candidate, `"msg":"container format"`) {
			line = candidate
			break
		}
	}
	if line == "" {
		t.Fatalf("container format line missing from %q", content)
	}
	for _, want := range []string{`"video_streams":1`, `"audio_streams":2`, `"size_bytes":2048`, `"matroska"`} {
		if !strings.Contains(line, want) {
			t.Fatalf("expected %s in %q", want, line)
		}
	}
}

func TestOverflowingDurationIsZero(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "corrupt.mkv")
	testsupport.WriteFile(t, path, 16)
	stubInspect(t, map[string]ffprobe.Result{"corrupt.mkv": {
		Format: ffprobe.Format{FormatName: "matroska,webm", Duration: "1e10"},
	}})

	summary, ok := probe.New(testsupport.NewConfig(t), root, nil).Probe(context.Background(), path)
	if !ok {
		t.Fatal("expected probe to succeed")
	}
	if summary.Duration != 0 {
		t.Fatalf("Duration = %v, want 0 for out-of-range container duration", summary.Duration)
	}
	if !strings.Contains(summary.Block(), "Duration: 00:00") {
		t.Fatalf("unexpected block %q", summary.Block())
	}
}
