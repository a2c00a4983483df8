package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/elevita-health/elevita-backend/internal/apperr"
	"github.com/elevita-health/elevita-backend/internal/logger"
	"github.com/elevita-health/elevita-backend/internal/repos"
	"github.com/elevita-health/elevita-backend/internal/requestdata"
	"github.com/elevita-health/elevita-backend/internal/types"
	"github.com/elevita-health/elevita-backend/internal/validation"
)

type JWTClaims struct {
	jwt.RegisteredClaims
}

type AuthService interface {
	RegisterUser(ctx context.Context, user *types.User) (string, string, error)
	LoginUser(ctx context.Context, email, password string) (string, string, error)
	RefreshUser(ctx context.Context, refreshToken string) (string, string, error)
	LogoutUser(ctx context.Context) error
	SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error)
	AccessTTL() time.Duration
	RefreshTTL() time.Duration
}

type authService struct {
	log           *logger.Logger
	userRepo      repos.UserRepo
	userTokenRepo repos.UserTokenRepo
	jwtSecretKey  string
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewAuthService(
	log *logger.Logger,
	userRepo repos.UserRepo,
	userTokenRepo repos.UserTokenRepo,
	jwtSecretKey string,
	accessTTL time.Duration,
	refreshTTL time.Duration,
) AuthService {
	serviceLog := log.With("service", "AuthService")
	return &authService{
		log:           serviceLog,
		userRepo:      userRepo,
		userTokenRepo: userTokenRepo,
		jwtSecretKey:  jwtSecretKey,
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

func (as *authService) RegisterUser(ctx context.Context, user *types.User) (string, string, error) {
	normalizeUserFields(user)
	if vErr := validation.Registration(user); vErr != nil {
		return "", "", vErr
	}
	emailExists, err := as.userRepo.EmailExists(ctx, user.Email)
	if err != nil {
		return "", "", fmt.Errorf("failed to check user email: %w", err)
	}
	if emailExists {
		return "", "", validation.FieldErrors{"email": "is already in use"}
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", "", fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hashed)
	if _, err := as.userRepo.Create(ctx, user); err != nil {
		return "", "", fmt.Errorf("failed to create user: %w", err)
	}
	return as.issueTokens(ctx, user)
}

func (as *authService) LoginUser(ctx context.Context, email, password string) (string, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if vErr := validation.Login(email, password); vErr != nil {
		return "", "", vErr
	}
	user, err := as.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return "", "", apperr.ErrUnauthorized
		}
		return "", "", fmt.Errorf("error retrieving user by email: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", "", apperr.ErrUnauthorized
	}
	if err := as.userTokenRepo.DeleteExpired(ctx, time.Now()); err != nil {
		as.log.Warn("Failed to clear expired tokens", "error", err)
	}
	return as.issueTokens(ctx, user)
}

func (as *authService) RefreshUser(ctx context.Context, refreshToken string) (string, string, error) {
	if refreshToken == "" {
		return "", "", apperr.ErrUnauthorized
	}
	existing, err := as.userTokenRepo.GetByRefreshToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return "", "", apperr.ErrUnauthorized
		}
		return "", "", fmt.Errorf("error fetching refresh token: %w", err)
	}
	if existing.ExpiresAt.Before(time.Now()) {
		if dErr := as.userTokenRepo.DeleteByID(ctx, existing.ID); dErr != nil {
			as.log.Warn("Failed to delete expired refresh token", "error", dErr)
		}
		return "", "", apperr.ErrUnauthorized
	}
	user, err := as.userRepo.GetByID(ctx, existing.UserID)
	if err != nil {
		return "", "", fmt.Errorf("failed to load user for refresh: %w", err)
	}
	access, refresh, err := as.issueTokens(ctx, user)
	if err != nil {
		return "", "", err
	}
	// rotation: the presented refresh token is single use
	if dErr := as.userTokenRepo.DeleteByID(ctx, existing.ID); dErr != nil {
		as.log.Warn("Failed to remove rotated refresh token", "error", dErr)
	}
	return access, refresh, nil
}

func (as *authService) LogoutUser(ctx context.Context) error {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.TokenString == "" {
		return apperr.ErrUnauthorized
	}
	found, err := as.userTokenRepo.GetByAccessToken(ctx, rd.TokenString)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("error finding user token: %w", err)
	}
	return as.userTokenRepo.DeleteByID(ctx, found.ID)
}

func (as *authService) SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
	if tokenString == "" {
		return ctx, apperr.ErrUnauthorized
	}
	parsedToken, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(as.jwtSecretKey), nil
	})
	if err != nil {
		return ctx, apperr.ErrUnauthorized
	}
	claims, ok := parsedToken.Claims.(*JWTClaims)
	if !ok || !parsedToken.Valid {
		return ctx, apperr.ErrUnauthorized
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return ctx, apperr.ErrUnauthorized
	}
	// the session row must still exist; logout revokes it before the JWT expires
	found, err := as.userTokenRepo.GetByAccessToken(ctx, tokenString)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return ctx, apperr.ErrUnauthorized
		}
		return ctx, fmt.Errorf("failed to fetch user token: %w", err)
	}
	rd := &requestdata.RequestData{
		TokenString:  tokenString,
		RefreshToken: found.RefreshToken,
		UserID:       userID,
	}
	return requestdata.WithRequestData(ctx, rd), nil
}

func (as *authService) AccessTTL() time.Duration  { return as.accessTTL }
func (as *authService) RefreshTTL() time.Duration { return as.refreshTTL }

func (as *authService) issueTokens(ctx context.Context, user *types.User) (string, string, error) {
	access, err := as.generateAccessToken(user)
	if err != nil {
		return "", "", fmt.Errorf("generate access token error: %w", err)
	}
	refresh := uuid.New().String()
	userToken := &types.UserToken{
		UserID:       user.ID,
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresAt:    time.Now().Add(as.refreshTTL),
	}
	if _, err := as.userTokenRepo.Create(ctx, userToken); err != nil {
		as.log.Warn("Create user token error", "error", err)
		return "", "", fmt.Errorf("create user token error: %w", err)
	}
	return access, refresh, nil
}

func (as *authService) generateAccessToken(user *types.User) (string, error) {
	claims := JWTClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(as.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(as.jwtSecretKey))
}

func normalizeUserFields(user *types.User) {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	user.FirstName = strings.TrimSpace(user.FirstName)
	user.LastName = strings.TrimSpace(user.LastName)
}
