package memstore

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/elevita-health/elevita-backend/internal/apperr"
	"github.com/elevita-health/elevita-backend/internal/repos"
	"github.com/elevita-health/elevita-backend/internal/types"
)

type userTokenRepo struct {
	s *Store
}

func NewUserTokenRepo(s *Store) repos.UserTokenRepo {
	return &userTokenRepo{s: s}
}

func (tr *userTokenRepo) Create(ctx context.Context, token *types.UserToken) (*types.UserToken, error) {
	tr.s.mu.Lock()
	defer tr.s.mu.Unlock()
	token.ID = ensureID(token.ID)
	token.CreatedAt = ensureTime(token.CreatedAt)
	row := *token
	tr.s.tokens[token.ID] = &row
	return token, nil
}

func (tr *userTokenRepo) GetByAccessToken(ctx context.Context, accessToken string) (*types.UserToken, error) {
	tr.s.mu.RLock()
	defer tr.s.mu.RUnlock()
	for _, row := range tr.s.tokens {
		if row.AccessToken == accessToken {
			out := *row
			return &out, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (tr *userTokenRepo) GetByRefreshToken(ctx context.Context, refreshToken string) (*types.UserToken, error) {
	tr.s.mu.RLock()
	defer tr.s.mu.RUnlock()
	for _, row := range tr.s.tokens {
		if row.RefreshToken == refreshToken {
			out := *row
			return &out, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (tr *userTokenRepo) DeleteByID(ctx context.Context, tokenID uuid.UUID) error {
	tr.s.mu.Lock()
	defer tr.s.mu.Unlock()
	delete(tr.s.tokens, tokenID)
	return nil
}

func (tr *userTokenRepo) DeleteExpired(ctx context.Context, before time.Time) error {
	tr.s.mu.Lock()
	defer tr.s.mu.Unlock()
	for id, row := range tr.s.tokens {
		if row.ExpiresAt.Before(before) {
			delete(tr.s.tokens, id)
		}
	}
	return nil
}
