package report

import (
	"testing"
	"time"
)

func TestSummaryBlock(t *testing.T) {
	summary := Summary{
		Path:     "/media/show.mkv",
		Name:     "/media/show.mkv",
		Duration: 91 * time.Second,
		BitRate:  12_000,
		Streams: []StreamDescription{
			{Kind: "Video", Rate: "24000/1001"},
			{Kind: "Audio", Rate: "0/0"},
		},
	}
	want := "/media/show.mkv\n\tDuration: 01:31\n\tBit rate: 12.00 KB/s\n\tVideo: 24000/1001 kb/s\n\tAudio: 0/0 kb/s"
	if got := summary.Block(); got != want {
		t.Fatalf("unexpected block:\n%q\nwant:\n%q", got, want)
	}
}

func TestSummaryBlockWithoutStreams(t *testing.T) {
	summary := Summary{Name: "a.bin"}
	want := "a.bin\n\tDuration: 00:00\n\tBit rate: 0 B/s"
	if got := summary.Block(); got != want {
		t.Fatalf("unexpected block: %q", got)
	}
}

func TestReportSortAndJoin(t *testing.T) {
	rep := Report{
		Summaries: []Summary{
			{Path: "/b", Name: "b"},
			{Path: "/a", Name: "a"},
		},
		Stats: Stats{Candidates: 3, Probed: 2, Skipped: 1},
	}
	rep.SortByPath()
	want := "a\n\tDuration: 00:00\n\tBit rate: 0 B/s\nb\n\tDuration: 00:00\n\tBit rate: 0 B/s"
	if got := rep.String(); got != want {
		t.Fatalf("unexpected report:\n%q", got)
	}
	if rep.Empty() {
		t.Fatal("expected non-empty report")
	}
}

func TestReportEmpty(t *testing.T) {
	var rep Report
	if !rep.Empty() {
		t.Fatal("expected empty report")
	}
	if rep.String() != "" {
		t.Fatalf("expected empty string, got %q", rep.String())
	}
}
