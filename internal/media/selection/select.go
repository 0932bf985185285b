package selection

import (
	"mediadiff/internal/media/ffprobe"
)

// candidate captures the derived metadata used for stream ranking.
type candidate struct {
	stream      ffprobe.Stream
	disposition int
	multiframe  int64
	bitRate     int64
	frames      int64
}

// Best returns the highest ranked stream of the requested kind.
func Best(streams []ffprobe.Stream, kind string) (ffprobe.Stream, bool) {
	var (
		best  candidate
		found bool
	)
	for _, stream := range streams {
		if !stream.IsKind(kind) {
			continue
		}
		if kind == ffprobe.KindAudio && (stream.Channels <= 0 || stream.SampleRateValue() <= 0) {
			continue
		}
		cand := buildCandidate(stream)
		if !found || outranks(cand, best) {
			best = cand
			found = true
		}
	}
	if !found {
		return ffprobe.Stream{}, false
	}
	return best.stream, true
}

func buildCandidate(stream ffprobe.Stream) candidate {
	cand := candidate{
		stream:  stream,
		bitRate: stream.BitRateValue(),
		frames:  stream.FrameCount(),
	}
	if !stream.HasDisposition("hearing_impaired") && !stream.HasDisposition("visual_impaired") {
		cand.disposition++
	}
	if stream.HasDisposition("default") {
		cand.disposition++
	}
	cand.multiframe = min(cand.frames, 5)
	return cand
}

// outranks reports whether a strictly beats b. Equal candidates keep the
// earlier stream.
func outranks(a, b candidate) bool {
	if a.disposition != b.disposition {
		return a.disposition > b.disposition
	}
	if a.multiframe != b.multiframe {
		return a.multiframe > b.multiframe
	}
	if a.bitRate != b.bitRate {
		return a.bitRate > b.bitRate
	}
	return a.frames > b.frames
}
