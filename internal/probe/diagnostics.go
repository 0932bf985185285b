package probe

import (
	"context"
	"log/slog"
	"os"
	"sort"

	"github.com/dhowden/tag"

	"mediadiff/internal/logging"
	"mediadiff/internal/media/ffprobe"
)

func logStreamMetadata(ctx context.Context, logger *slog.Logger, result ffprobe.Result) {
	if !logger.Enabled(ctx, slog.LevelDebug) {
		return
	}
	logger.Debug("container format",
		logging.Strings("format_names", result.FormatNames()),
		logging.Int("video_streams", result.VideoStreamCount()),
		logging.Int("audio_streams", result.AudioStreamCount()),
		logging.Int64("size_bytes", result.SizeBytes()),
	)
	for _, stream := range result.Streams {
		keys := make([]string, 0, len(stream.Tags))
		for key := range stream.Tags {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		attrs := []logging.Attr{
			logging.Int("stream_index", stream.Index),
			logging.String("codec_type", stream.CodecType),
			logging.String("codec_name", stream.CodecName),
		}
		for _, key := range keys {
			attrs = append(attrs, logging.String("tag."+key, stream.Tags[key]))
		}
		logger.Debug("stream metadata", logging.Args(attrs...)...)
	}
}

// logEmbeddedTags reads ID3/MP4/FLAC/OGG tags straight from the file. Failures
// are expected for video and untagged files and stay at DEBUG.
func logEmbeddedTags(ctx context.Context, logger *slog.Logger, path string) {
	if !logger.Enabled(ctx, slog.LevelDebug) {
		return
	}
	file, err := os.Open(path)
	if err != nil {
		logger.Debug("tag read skipped", logging.Error(err))
		return
	}
	defer file.Close()

	metadata, err := tag.ReadFrom(file)
	if err != nil {
		logger.Debug("no embedded tags", logging.String("reason", err.Error()))
		return
	}
	logger.Debug("embedded tags",
		logging.String("tag_format", string(metadata.Format())),
		logging.String("file_type", string(metadata.FileType())),
		logging.String("title", metadata.Title()),
		logging.String("artist", metadata.Artist()),
		logging.String("album", metadata.Album()),
	)
}
