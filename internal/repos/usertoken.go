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

type UserTokenRepo interface {
	Create(ctx context.Context, token *types.UserToken) (*types.UserToken, error)
	GetByAccessToken(ctx context.Context, accessToken string) (*types.UserToken, error)
	GetByRefreshToken(ctx context.Context, refreshToken string) (*types.UserToken, error)
	DeleteByID(ctx context.Context, tokenID uuid.UUID) error
	DeleteExpired(ctx context.Context, before time.Time) error
}

type userTokenRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserTokenRepo(db *gorm.DB, baseLog *logger.Logger) UserTokenRepo {
	repoLog := baseLog.With("repo", "UserTokenRepo")
	return &userTokenRepo{db: db, log: repoLog}
}

func (tr *userTokenRepo) Create(ctx context.Context, token *types.UserToken) (*types.UserToken, error) {
	if err := tr.db.WithContext(ctx).Create(token).Error; err != nil {
		return nil, err
	}
	return token, nil
}

func (tr *userTokenRepo) GetByAccessToken(ctx context.Context, accessToken string) (*types.UserToken, error) {
	var result types.UserToken
	if err := tr.db.WithContext(ctx).
		Where("access_token = ?", accessToken).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &result, nil
}

func (tr *userTokenRepo) GetByRefreshToken(ctx context.Context, refreshToken string) (*types.UserToken, error) {
	var result types.UserToken
	if err := tr.db.WithContext(ctx).
		Where("refresh_token = ?", refreshToken).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &result, nil
}

func (tr *userTokenRepo) DeleteByID(ctx context.Context, tokenID uuid.UUID) error {
	return tr.db.WithContext(ctx).
		Where("id = ?", tokenID).
		Delete(&types.UserToken{}).Error
}

func (tr *userTokenRepo) DeleteExpired(ctx context.Context, before time.Time) error {
	return tr.db.WithContext(ctx).
		Where("expires_at < ?", before).
		Delete(&types.UserToken{}).Error
}
