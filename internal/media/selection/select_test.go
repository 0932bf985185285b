package selection

import (
	"testing"

	"mediadiff/internal/media/ffprobe"
)

func TestBestPrefersDefaultDisposition(t *testing.T) {
	streams := []ffprobe.Stream{
		{Index: 0, CodecType: "video", BitRate: "9000000"},
		{Index: 1, CodecType: "video", BitRate: "1000000", Disposition: map[string]int{"default": 1}},
	}

	got, ok := Best(streams, ffprobe.KindVideo)
	if !ok {
		t.Fatal("expected a video stream")
	}
	if got.Index != 1 {
		t.Fatalf("expected default stream (index 1), got %d", got.Index)
	}
}

func TestBestPenalizesImpairedStreams(t *testing.T) {
	streams := []ffprobe.Stream{
		{Index: 0, CodecType: "audio", Channels: 2, SampleRate: "48000", BitRate: "640000", Disposition: map[string]int{"hearing_impaired": 1}},
		{Index: 1, CodecType: "audio", Channels: 2, SampleRate: "48000", BitRate: "128000"},
	}

	got, ok := Best(streams, ffprobe.KindAudio)
	if !ok {
		t.Fatal("expected an audio stream")
	}
	if got.Index != 1 {
		t.Fatalf("expected unimpaired stream (index 1), got %d", got.Index)
	}
}

func TestBestPrefersHigherBitRate(t *testing.T) {
	streams := []ffprobe.Stream{
		{Index: 0, CodecType: "audio", Channels: 2, SampleRate: "44100", BitRate: "128000"},
		{Index: 1, CodecType: "audio", Channels: 6, SampleRate: "48000", BitRate: "640000"},
	}

	got, _ := Best(streams, ffprobe.KindAudio)
	if got.Index != 1 {
		t.Fatalf("expected higher bit rate stream (index 1), got %d", got.Index)
	}
}

func TestBestFrameEvidenceOutranksBitRate(t *testing.T) {
	streams := []ffprobe.Stream{
		{Index: 0, CodecType: "video", BitRate: "9000000", NBFrames: "1"},
		{Index: 1, CodecType: "video", BitRate: "1000", NBFrames: "2400"},
	}

	got, _ := Best(streams, ffprobe.KindVideo)
	if got.Index != 1 {
		t.Fatalf("expected multi-frame stream (index 1), got %d", got.Index)
	}
}

func TestBestKeepsEarliestOnTie(t *testing.T) {
	streams := []ffprobe.Stream{
		{Index: 3, CodecType: "video"},
		{Index: 4, CodecType: "video"},
	}

	got, _ := Best(streams, ffprobe.KindVideo)
	if got.Index != 3 {
		t.Fatalf("expected earliest stream on tie, got %d", got.Index)
	}
}

func TestBestSkipsUndecodableAudio(t *testing.T) {
	streams := []ffprobe.Stream{
		{Index: 0, CodecType: "audio", Channels: 0, SampleRate: "48000"},
		{Index: 1, CodecType: "audio", Channels: 2, SampleRate: ""},
	}

	if got, ok := Best(streams, ffprobe.KindAudio); ok {
		t.Fatalf("expected no audio selection, got index %d", got.Index)
	}
}

func TestBestNoMatchingKind(t *testing.T) {
	streams := []ffprobe.Stream{{Index: 0, CodecType: "subtitle"}}
	if _, ok := Best(streams, ffprobe.KindVideo); ok {
		t.Fatal("expected no video stream")
	}
	if _, ok := Best(nil, ffprobe.KindAudio); ok {
		t.Fatal("expected no audio stream for empty input")
	}
}
