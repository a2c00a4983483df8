package repos

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/elevita-health/elevita-backend/internal/apperr"
	"github.com/elevita-health/elevita-backend/internal/logger"
	"github.com/elevita-health/elevita-backend/internal/types"
)

type TranscriptionRepo interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]*types.Transcription, error)
	GetByID(ctx context.Context, transcriptionID uuid.UUID) (*types.Transcription, error)
	GetByDate(ctx context.Context, userID uuid.UUID, dayStart, dayEnd time.Time) ([]*types.Transcription, error)
	Create(ctx context.Context, transcription *types.Transcription) (*types.Transcription, error)
	Update(ctx context.Context, transcriptionID, userID uuid.UUID, updates map[string]any) (*types.Transcription, error)
	Delete(ctx context.Context, transcriptionID, userID uuid.UUID) error
}

type transcriptionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTranscriptionRepo(db *gorm.DB, baseLog *logger.Logger) TranscriptionRepo {
	repoLog := baseLog.With("repo", "TranscriptionRepo")
	return &transcriptionRepo{db: db, log: repoLog}
}

func (tr *transcriptionRepo) GetByUserID(ctx context.Context, userID uuid.UUID) ([]*types.Transcription, error) {
	var results []*types.Transcription
	if err := tr.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("recorded_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (tr *transcriptionRepo) GetByID(ctx context.Context, transcriptionID uuid.UUID) (*types.Transcription, error) {
	var result types.Transcription
	if err := tr.db.WithContext(ctx).
		Where("id = ?", transcriptionID).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &result, nil
}

func (tr *transcriptionRepo) GetByDate(ctx context.Context, userID uuid.UUID, dayStart, dayEnd time.Time) ([]*types.Transcription, error) {
	var results []*types.Transcription
	if err := tr.db.WithContext(ctx).
		Where("user_id = ? AND recorded_at >= ? AND recorded_at < ?", userID, dayStart, dayEnd).
		Order("recorded_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (tr *transcriptionRepo) Create(ctx context.Context, transcription *types.Transcription) (*types.Transcription, error) {
	if err := tr.db.WithContext(ctx).Create(transcription).Error; err != nil {
		return nil, err
	}
	return transcription, nil
}

func (tr *transcriptionRepo) Update(ctx context.Context, transcriptionID, userID uuid.UUID, updates map[string]any) (*types.Transcription, error) {
	updates["updated_at"] = time.Now()
	res := tr.db.WithContext(ctx).
		Model(&types.Transcription{}).
		Where("id = ? AND user_id = ?", transcriptionID, userID).
		Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, apperr.ErrNotFound
	}
	return tr.GetByID(ctx, transcriptionID)
}

func (tr *transcriptionRepo) Delete(ctx context.Context, transcriptionID, userID uuid.UUID) error {
	return tr.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", transcriptionID, userID).
		Delete(&types.Transcription{}).Error
}
