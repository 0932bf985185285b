package ffprobe

import (
	"strconv"
	"strings"
)

// Stream kinds as reported in codec_type.
const (
	KindVideo = "video"
	KindAudio = "audio"
)

// IsKind reports whether the stream's codec_type matches kind.
func (s Stream) IsKind(kind string) bool {
	return strings.EqualFold(strings.TrimSpace(s.CodecType), kind)
}

// Rate returns the stream's base frame rate as a "num/den" rational, the
// same value ffmpeg exposes as r_frame_rate. Streams without one render "0/0".
func (s Stream) Rate() string {
	num, den, ok := parseRational(s.RFrameRate)
	if !ok {
		return "0/0"
	}
	return strconv.FormatInt(num, 10) + "/" + strconv.FormatInt(den, 10)
}

// BitRateValue returns the per-stream bit rate, or 0 when unavailable.
func (s Stream) BitRateValue() int64 {
	value, err := strconv.ParseInt(strings.TrimSpace(s.BitRate), 10, 64)
	if err != nil || value < 0 {
		return 0
	}
	return value
}

// FrameCount returns nb_frames, or 0 when the container does not record it.
func (s Stream) FrameCount() int64 {
	value, err := strconv.ParseInt(strings.TrimSpace(s.NBFrames), 10, 64)
	if err != nil || value < 0 {
		return 0
	}
	return value
}

// SampleRateValue returns the audio sample rate in Hz, or 0 when unknown.
func (s Stream) SampleRateValue() int {
	value, err := strconv.Atoi(strings.TrimSpace(s.SampleRate))
	if err != nil || value < 0 {
		return 0
	}
	return value
}

// HasDisposition reports whether the named disposition flag is set.
func (s Stream) HasDisposition(flag string) bool {
	return s.Disposition != nil && s.Disposition[flag] == 1
}

func parseRational(value string) (int64, int64, bool) {
	num, den, found := strings.Cut(strings.TrimSpace(value), "/")
	if !found {
		return 0, 0, false
	}
	n, err := strconv.ParseInt(num, 10, 64)
	if err != nil {
		return 0, 0, false
	}
	d, err := strconv.ParseInt(den, 10, 64)
	if err != nil {
		return 0, 0, false
	}
	return n, d, true
}
