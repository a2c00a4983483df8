package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/elevita-health/elevita-backend/internal/apperr"
	"github.com/elevita-health/elevita-backend/internal/logger"
	"github.com/elevita-health/elevita-backend/internal/repos/memstore"
	"github.com/elevita-health/elevita-backend/internal/requestdata"
	"github.com/elevita-health/elevita-backend/internal/types"
	"github.com/elevita-health/elevita-backend/internal/validation"
)

func newAuthFixture(t *testing.T) AuthService {
	t.Helper()
	store := memstore.New()
	return NewAuthService(
		logger.NewNop(),
		memstore.NewUserRepo(store),
		memstore.NewUserTokenRepo(store),
		"test-secret",
		time.Hour,
		24*time.Hour,
	)
}

func registerUser(t *testing.T, auth AuthService, email string) (string, string) {
	t.Helper()
	access, refresh, err := auth.RegisterUser(context.Background(), &types.User{
		Email:     email,
		FirstName: "Ada",
		LastName:  "Lovelace",
		Password:  "s3cret-pass",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	return access, refresh
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	auth := newAuthFixture(t)
	access, refresh := registerUser(t, auth, "ada@example.com")
	if access == "" || refresh == "" {
		t.Fatal("expected both tokens on register")
	}

	if _, _, err := auth.LoginUser(ctx, "ADA@example.com", "s3cret-pass"); err != nil {
		t.Fatalf("login with normalized email: %v", err)
	}
	if _, _, err := auth.LoginUser(ctx, "ada@example.com", "wrong"); !errors.Is(err, apperr.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for bad password, got %v", err)
	}
	if _, _, err := auth.LoginUser(ctx, "nobody@example.com", "s3cret-pass"); !errors.Is(err, apperr.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for unknown email, got %v", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	auth := newAuthFixture(t)
	registerUser(t, auth, "ada@example.com")

	_, _, err := auth.RegisterUser(context.Background(), &types.User{
		Email:     "Ada@Example.com",
		FirstName: "Other",
		LastName:  "Person",
		Password:  "another-pass",
	})
	var fe validation.FieldErrors
	if !errors.As(err, &fe) {
		t.Fatalf("expected FieldErrors, got %v", err)
	}
	if _, ok := fe["email"]; !ok {
		t.Fatalf("expected email conflict, got %v", fe)
	}
}

func TestRegisterMissingFields(t *testing.T) {
	auth := newAuthFixture(t)
	_, _, err := auth.RegisterUser(context.Background(), &types.User{Email: "x@example.com"})
	var fe validation.FieldErrors
	if !errors.As(err, &fe) {
		t.Fatalf("expected FieldErrors, got %v", err)
	}
	for _, field := range []string{"password", "first_name", "last_name"} {
		if _, ok := fe[field]; !ok {
			t.Fatalf("expected %s error, got %v", field, fe)
		}
	}
}

func TestRefreshRotation(t *testing.T) {
	ctx := context.Background()
	auth := newAuthFixture(t)
	_, refresh := registerUser(t, auth, "ada@example.com")

	newAccess, newRefresh, err := auth.RefreshUser(ctx, refresh)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if newAccess == "" || newRefresh == "" || newRefresh == refresh {
		t.Fatal("expected a rotated token pair")
	}

	// the old refresh token is dead after rotation
	if _, _, err := auth.RefreshUser(ctx, refresh); !errors.Is(err, apperr.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for stale refresh token, got %v", err)
	}
}

func TestSetContextFromToken(t *testing.T) {
	ctx := context.Background()
	auth := newAuthFixture(t)
	access, _ := registerUser(t, auth, "ada@example.com")

	authedCtx, err := auth.SetContextFromToken(ctx, access)
	if err != nil {
		t.Fatalf("set context: %v", err)
	}
	rd := requestdata.GetRequestData(authedCtx)
	if rd == nil || rd.UserID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Fatal("expected request data with user id")
	}

	if _, err := auth.SetContextFromToken(ctx, "not-a-jwt"); !errors.Is(err, apperr.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for garbage token, got %v", err)
	}
}

func TestLogoutInvalidatesSession(t *testing.T) {
	ctx := context.Background()
	auth := newAuthFixture(t)
	access, _ := registerUser(t, auth, "ada@example.com")

	authedCtx, err := auth.SetContextFromToken(ctx, access)
	if err != nil {
		t.Fatalf("set context: %v", err)
	}
	if err := auth.LogoutUser(authedCtx); err != nil {
		t.Fatalf("logout: %v", err)
	}
	// session row is gone so the token no longer authenticates
	if _, err := auth.SetContextFromToken(ctx, access); !errors.Is(err, apperr.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized after logout, got %v", err)
	}
}
