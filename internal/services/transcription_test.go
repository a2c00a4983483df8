package services

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/elevita-health/elevita-backend/internal/logger"
	"github.com/elevita-health/elevita-backend/internal/repos/memstore"
	"github.com/elevita-health/elevita-backend/internal/validation"
)

type fakeBucket struct {
	uploads map[string][]byte
	deletes []string
}

func newFakeBucket() *fakeBucket {
	return &fakeBucket{uploads: map[string][]byte{}}
}

func (fb *fakeBucket) UploadFile(ctx context.Context, key string, file io.Reader) error {
	data, err := io.ReadAll(file)
	if err != nil {
		return err
	}
	fb.uploads[key] = data
	return nil
}

func (fb *fakeBucket) DeleteFile(ctx context.Context, key string) error {
	fb.deletes = append(fb.deletes, key)
	delete(fb.uploads, key)
	return nil
}

func (fb *fakeBucket) GetPublicURL(key string) string {
	return "https://cdn.test/" + key
}

func newTranscriptionFixture(t *testing.T) (TranscriptionService, *fakeBucket) {
	t.Helper()
	store := memstore.New()
	bucket := newFakeBucket()
	svc := NewTranscriptionService(
		logger.NewNop(),
		memstore.NewTranscriptionRepo(store),
		bucket,
		NewPlaceholderTranscriber(logger.NewNop()),
	)
	return svc, bucket
}

func TestCreateTranscription(t *testing.T) {
	ctx := context.Background()
	svc, bucket := newTranscriptionFixture(t)
	userID := uuid.New()

	audio := bytes.Repeat([]byte{0xAB}, 48000)
	created, err := svc.CreateTranscription(ctx, userID, &CreateTranscriptionInput{
		Title:       "Visit recording",
		Description: "Follow-up consult",
		Audio:       audio,
		ContentType: "audio/webm",
		Filename:    "visit.webm",
	})
	if err != nil {
		t.Fatalf("create transcription: %v", err)
	}
	if !strings.HasPrefix(created.AudioKey, "transcriptions/"+userID.String()+"/") {
		t.Fatalf("unexpected audio key: %q", created.AudioKey)
	}
	if !strings.HasSuffix(created.AudioKey, ".webm") {
		t.Fatalf("expected filename extension preserved, got %q", created.AudioKey)
	}
	if created.AudioURL != bucket.GetPublicURL(created.AudioKey) {
		t.Fatalf("unexpected audio url: %q", created.AudioURL)
	}
	if _, ok := bucket.uploads[created.AudioKey]; !ok {
		t.Fatal("audio bytes were not uploaded")
	}
	if created.Transcript == "" {
		t.Fatal("expected a placeholder transcript")
	}
	if created.Duration < 1 {
		t.Fatalf("expected positive duration, got %d", created.Duration)
	}
	if created.RecordedAt.IsZero() {
		t.Fatal("expected recorded_at to default to now")
	}
}

func TestCreateTranscriptionValidation(t *testing.T) {
	svc, bucket := newTranscriptionFixture(t)

	_, err := svc.CreateTranscription(context.Background(), uuid.New(), &CreateTranscriptionInput{})
	var fe validation.FieldErrors
	if !errors.As(err, &fe) {
		t.Fatalf("expected FieldErrors, got %v", err)
	}
	if _, ok := fe["title"]; !ok {
		t.Fatalf("expected title error, got %v", fe)
	}
	if _, ok := fe["audio"]; !ok {
		t.Fatalf("expected audio error, got %v", fe)
	}
	if len(bucket.uploads) != 0 {
		t.Fatal("nothing should be uploaded on validation failure")
	}
}

func TestDeleteTranscriptionRemovesAudio(t *testing.T) {
	ctx := context.Background()
	svc, bucket := newTranscriptionFixture(t)
	userID := uuid.New()

	created, err := svc.CreateTranscription(ctx, userID, &CreateTranscriptionInput{
		Title: "Visit", Audio: []byte("pcm"), Filename: "a.wav",
	})
	if err != nil {
		t.Fatalf("create transcription: %v", err)
	}

	// foreign caller cannot delete, and the object stays
	if err := svc.DeleteTranscription(ctx, created.ID, uuid.New()); err != nil {
		t.Fatalf("foreign delete: %v", err)
	}
	if len(bucket.deletes) != 0 {
		t.Fatal("foreign delete must not touch stored audio")
	}

	if err := svc.DeleteTranscription(ctx, created.ID, userID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(bucket.deletes) != 1 || bucket.deletes[0] != created.AudioKey {
		t.Fatalf("expected audio object delete, got %v", bucket.deletes)
	}
	// repeat delete is silent
	if err := svc.DeleteTranscription(ctx, created.ID, userID); err != nil {
		t.Fatalf("second delete: %v", err)
	}
}

func TestGetTranscriptionScopedToOwner(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTranscriptionFixture(t)
	userID := uuid.New()

	created, err := svc.CreateTranscription(ctx, userID, &CreateTranscriptionInput{
		Title: "Visit", Audio: []byte("pcm"), Filename: "a.wav",
	})
	if err != nil {
		t.Fatalf("create transcription: %v", err)
	}
	if _, err := svc.GetTranscription(ctx, created.ID, uuid.New()); err == nil {
		t.Fatal("expected foreign read to fail")
	}
	if _, err := svc.GetTranscription(ctx, created.ID, userID); err != nil {
		t.Fatalf("owner read: %v", err)
	}
}
