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

type UserRepo interface {
	Create(ctx context.Context, user *types.User) (*types.User, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*types.User, error)
	GetByEmail(ctx context.Context, email string) (*types.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UpdateSetup(ctx context.Context, userID uuid.UUID, updates map[string]any) (*types.User, error)
	CompleteSetup(ctx context.Context, userID uuid.UUID) (*types.User, error)
	GetPatients(ctx context.Context) ([]*types.User, error)
	Delete(ctx context.Context, userID uuid.UUID) error
}

type userRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo {
	repoLog := baseLog.With("repo", "UserRepo")
	return &userRepo{db: db, log: repoLog}
}

func (ur *userRepo) Create(ctx context.Context, user *types.User) (*types.User, error) {
	if err := ur.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (ur *userRepo) GetByID(ctx context.Context, userID uuid.UUID) (*types.User, error) {
	var result types.User
	if err := ur.db.WithContext(ctx).
		Where("id = ?", userID).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &result, nil
}

func (ur *userRepo) GetByEmail(ctx context.Context, email string) (*types.User, error) {
	var result types.User
	if err := ur.db.WithContext(ctx).
		Where("email = ?", email).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &result, nil
}

func (ur *userRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := ur.db.WithContext(ctx).
		Model(&types.User{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (ur *userRepo) UpdateSetup(ctx context.Context, userID uuid.UUID, updates map[string]any) (*types.User, error) {
	updates["updated_at"] = time.Now()
	res := ur.db.WithContext(ctx).
		Model(&types.User{}).
		Where("id = ?", userID).
		Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, apperr.ErrNotFound
	}
	return ur.GetByID(ctx, userID)
}

func (ur *userRepo) CompleteSetup(ctx context.Context, userID uuid.UUID) (*types.User, error) {
	return ur.UpdateSetup(ctx, userID, map[string]any{
		"setup_completed": true,
		"setup_step":      3,
	})
}

func (ur *userRepo) GetPatients(ctx context.Context) ([]*types.User, error) {
	var results []*types.User
	if err := ur.db.WithContext(ctx).
		Where("is_healthcare_professional = ?", false).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (ur *userRepo) Delete(ctx context.Context, userID uuid.UUID) error {
	return ur.db.WithContext(ctx).
		Where("id = ?", userID).
		Delete(&types.User{}).Error
}
