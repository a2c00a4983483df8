package memstore

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/elevita-health/elevita-backend/internal/apperr"
	"github.com/elevita-health/elevita-backend/internal/repos"
	"github.com/elevita-health/elevita-backend/internal/types"
)

type userRepo struct {
	s *Store
}

func NewUserRepo(s *Store) repos.UserRepo {
	return &userRepo{s: s}
}

func (ur *userRepo) Create(ctx context.Context, user *types.User) (*types.User, error) {
	ur.s.mu.Lock()
	defer ur.s.mu.Unlock()
	user.ID = ensureID(user.ID)
	user.CreatedAt = ensureTime(user.CreatedAt)
	user.UpdatedAt = ensureTime(user.UpdatedAt)
	if user.CurrentView == "" {
		user.CurrentView = types.ViewPatient
	}
	row := *user
	ur.s.users[user.ID] = &row
	return user, nil
}

func (ur *userRepo) GetByID(ctx context.Context, userID uuid.UUID) (*types.User, error) {
	ur.s.mu.RLock()
	defer ur.s.mu.RUnlock()
	row, ok := ur.s.users[userID]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	out := *row
	return &out, nil
}

func (ur *userRepo) GetByEmail(ctx context.Context, email string) (*types.User, error) {
	ur.s.mu.RLock()
	defer ur.s.mu.RUnlock()
	for _, row := range ur.s.users {
		if row.Email == email {
			out := *row
			return &out, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (ur *userRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	ur.s.mu.RLock()
	defer ur.s.mu.RUnlock()
	for _, row := range ur.s.users {
		if row.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (ur *userRepo) UpdateSetup(ctx context.Context, userID uuid.UUID, updates map[string]any) (*types.User, error) {
	ur.s.mu.Lock()
	defer ur.s.mu.Unlock()
	row, ok := ur.s.users[userID]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	applyUpdates(row, updates)
	row.UpdatedAt = time.Now()
	out := *row
	return &out, nil
}

func (ur *userRepo) CompleteSetup(ctx context.Context, userID uuid.UUID) (*types.User, error) {
	return ur.UpdateSetup(ctx, userID, map[string]any{
		"setup_completed": true,
		"setup_step":      3,
	})
}

func (ur *userRepo) GetPatients(ctx context.Context) ([]*types.User, error) {
	ur.s.mu.RLock()
	defer ur.s.mu.RUnlock()
	var results []*types.User
	for _, row := range ur.s.users {
		if !row.IsHealthcareProfessional {
			out := *row
			results = append(results, &out)
		}
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].CreatedAt.Before(results[j].CreatedAt)
	})
	return results, nil
}

func (ur *userRepo) Delete(ctx context.Context, userID uuid.UUID) error {
	ur.s.mu.Lock()
	defer ur.s.mu.Unlock()
	if _, ok := ur.s.users[userID]; !ok {
		return nil
	}
	delete(ur.s.users, userID)
	ur.s.cascadeDeleteUser(userID)
	return nil
}
