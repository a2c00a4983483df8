package services

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/elevita-health/elevita-backend/internal/apperr"
	"github.com/elevita-health/elevita-backend/internal/logger"
	"github.com/elevita-health/elevita-backend/internal/repos"
	"github.com/elevita-health/elevita-backend/internal/types"
	"github.com/elevita-health/elevita-backend/internal/validation"
)

// CreateTranscriptionInput is a decoded multipart upload.
type CreateTranscriptionInput struct {
	Title         string
	Description   string
	PatientID     *uuid.UUID
	AppointmentID *uuid.UUID
	Audio         []byte
	ContentType   string
	Filename      string
}

type TranscriptionUpdateInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Transcript  *string `json:"transcript"`
}

type TranscriptionService interface {
	// ListTranscriptions filters to a YYYY-MM-DD day when day is non-empty.
	ListTranscriptions(ctx context.Context, userID uuid.UUID, day string) ([]*types.Transcription, error)
	GetTranscription(ctx context.Context, transcriptionID, userID uuid.UUID) (*types.Transcription, error)
	CreateTranscription(ctx context.Context, userID uuid.UUID, input *CreateTranscriptionInput) (*types.Transcription, error)
	UpdateTranscription(ctx context.Context, transcriptionID, userID uuid.UUID, input *TranscriptionUpdateInput) (*types.Transcription, error)
	DeleteTranscription(ctx context.Context, transcriptionID, userID uuid.UUID) error
}

type transcriptionService struct {
	log               *logger.Logger
	transcriptionRepo repos.TranscriptionRepo
	bucket            BucketService
	transcriber       Transcriber
}

func NewTranscriptionService(
	log *logger.Logger,
	transcriptionRepo repos.TranscriptionRepo,
	bucket BucketService,
	transcriber Transcriber,
) TranscriptionService {
	return &transcriptionService{
		log:               log.With("service", "TranscriptionService"),
		transcriptionRepo: transcriptionRepo,
		bucket:            bucket,
		transcriber:       transcriber,
	}
}

func (ts *transcriptionService) ListTranscriptions(ctx context.Context, userID uuid.UUID, day string) ([]*types.Transcription, error) {
	if day == "" {
		return ts.transcriptionRepo.GetByUserID(ctx, userID)
	}
	dayStart, dayEnd, err := validation.ParseDay(day)
	if err != nil {
		return nil, err
	}
	return ts.transcriptionRepo.GetByDate(ctx, userID, dayStart, dayEnd)
}

func (ts *transcriptionService) GetTranscription(ctx context.Context, transcriptionID, userID uuid.UUID) (*types.Transcription, error) {
	row, err := ts.transcriptionRepo.GetByID(ctx, transcriptionID)
	if err != nil {
		return nil, err
	}
	if row.UserID != userID {
		return nil, apperr.ErrNotFound
	}
	return row, nil
}

func (ts *transcriptionService) CreateTranscription(ctx context.Context, userID uuid.UUID, input *CreateTranscriptionInput) (*types.Transcription, error) {
	fe := validation.FieldErrors{}
	if strings.TrimSpace(input.Title) == "" {
		fe["title"] = "is required"
	}
	if len(input.Audio) == 0 {
		fe["audio"] = "is required"
	}
	if len(fe) > 0 {
		return nil, fe
	}

	ext := path.Ext(input.Filename)
	if ext == "" {
		ext = ".webm"
	}
	key := fmt.Sprintf("transcriptions/%s/%s%s", userID, uuid.New(), ext)
	if err := ts.bucket.UploadFile(ctx, key, bytes.NewReader(input.Audio)); err != nil {
		return nil, fmt.Errorf("failed to store audio: %w", err)
	}

	transcript, duration, err := ts.transcriber.Transcribe(ctx, input.Audio, input.ContentType)
	if err != nil {
		return nil, fmt.Errorf("failed to transcribe audio: %w", err)
	}

	row := &types.Transcription{
		UserID:        userID,
		PatientID:     input.PatientID,
		AppointmentID: input.AppointmentID,
		Title:         strings.TrimSpace(input.Title),
		Description:   input.Description,
		Transcript:    transcript,
		AudioKey:      key,
		AudioURL:      ts.bucket.GetPublicURL(key),
		Duration:      duration,
		RecordedAt:    time.Now(),
	}
	return ts.transcriptionRepo.Create(ctx, row)
}

func (ts *transcriptionService) UpdateTranscription(ctx context.Context, transcriptionID, userID uuid.UUID, input *TranscriptionUpdateInput) (*types.Transcription, error) {
	updates := map[string]any{}
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Transcript != nil {
		updates["transcript"] = *input.Transcript
	}
	if len(updates) == 0 {
		return ts.GetTranscription(ctx, transcriptionID, userID)
	}
	return ts.transcriptionRepo.Update(ctx, transcriptionID, userID, updates)
}

func (ts *transcriptionService) DeleteTranscription(ctx context.Context, transcriptionID, userID uuid.UUID) error {
	row, err := ts.transcriptionRepo.GetByID(ctx, transcriptionID)
	if err != nil {
		if err == apperr.ErrNotFound {
			return nil
		}
		return err
	}
	if row.UserID != userID {
		return nil
	}
	if row.AudioKey != "" {
		if dErr := ts.bucket.DeleteFile(ctx, row.AudioKey); dErr != nil {
			ts.log.Warn("Failed to delete audio object", "key", row.AudioKey, "error", dErr)
		}
	}
	return ts.transcriptionRepo.Delete(ctx, transcriptionID, userID)
}
