package services

import (
	"context"

	"github.com/elevita-health/elevita-backend/internal/logger"
)

// Transcriber turns recorded audio into text. A real speech-to-text engine
// implements this; the wired default is a placeholder.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, contentType string) (transcript string, durationSec int, err error)
}

// placeholderBytesPerSecond approximates compressed speech audio so the
// placeholder can report a plausible duration from byte size alone.
const placeholderBytesPerSecond = 16000

const placeholderTranscript = "Audio transcription is being processed. " +
	"The full transcript will appear here once a speech-to-text engine is connected."

type placeholderTranscriber struct {
	log *logger.Logger
}

func NewPlaceholderTranscriber(log *logger.Logger) Transcriber {
	return &placeholderTranscriber{log: log.With("service", "PlaceholderTranscriber")}
}

func (pt *placeholderTranscriber) Transcribe(ctx context.Context, audio []byte, contentType string) (string, int, error) {
	duration := len(audio) / placeholderBytesPerSecond
	if duration < 1 {
		duration = 1
	}
	pt.log.Debug("Produced placeholder transcript",
		"content_type", contentType,
		"bytes", len(audio),
		"estimated_duration_sec", duration,
	)
	return placeholderTranscript, duration, nil
}
