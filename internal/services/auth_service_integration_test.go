package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Sarmadkhalid1/fithabs-backend/internal/logger"
	"github.com/Sarmadkhalid1/fithabs-backend/internal/repository"
)

func newIntegrationAuthService(pool *pgxpool.Pool) *AuthService {
	log := logger.NewNop()
	return NewAuthService(
		repository.NewUserRepository(pool),
		repository.NewAdminRepository(pool),
		repository.NewCoachRepository(pool),
		repository.NewClinicRepository(pool),
		repository.NewTherapistRepository(pool),
		repository.NewTokenRepository(pool),
		repository.NewPasswordResetRepository(pool),
		NewLogMailer(log),
		"integration-test-secret",
		log,
	)
}

// cleanupAuthUser removes the user and any tokens Register issued; tokens are
// anchored by (principal_id, kind) rather than a foreign key.
func cleanupAuthUser(t *testing.T, ctx context.Context, pool *pgxpool.Pool, userID int64) {
	t.Helper()

	if _, err := pool.Exec(ctx,
		"DELETE FROM access_tokens WHERE principal_id = $1 AND principal_kind = 'user'", userID); err != nil {
		t.Fatalf("cleanup access tokens: %v", err)
	}
	if _, err := pool.Exec(ctx, "DELETE FROM users WHERE id = $1", userID); err != nil {
		t.Fatalf("cleanup user: %v", err)
	}
}

func TestTokenLifecycleRegisterAuthenticateLogout(t *testing.T) {
	ctx := context.Background()
	pool := integrationPool(t)
	service := newIntegrationAuthService(pool)

	email := fmt.Sprintf("lifecycle-%d@example.com", time.Now().UnixNano())
	user, bearer, err := service.Register(ctx, RegisterInput{
		Name:     "Lifecycle User",
		Email:    email,
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	t.Cleanup(func() { cleanupAuthUser(t, ctx, pool, user.ID) })

	token, err := service.Authenticate(ctx, bearer)
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if token.PrincipalID != user.ID || token.PrincipalKind != PrincipalUser {
		t.Fatalf("unexpected principal: %+v", token)
	}

	if err := service.Logout(ctx, token.ID); err != nil {
		t.Fatalf("Logout: %v", err)
	}

	if _, err := service.Authenticate(ctx, bearer); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials after logout, got %v", err)
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	pool := integrationPool(t)
	service := newIntegrationAuthService(pool)

	email := fmt.Sprintf("duplicate-%d@example.com", time.Now().UnixNano())
	user, _, err := service.Register(ctx, RegisterInput{
		Name:     "First",
		Email:    email,
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	t.Cleanup(func() { cleanupAuthUser(t, ctx, pool, user.ID) })

	_, _, err = service.Register(ctx, RegisterInput{
		Name:     "Second",
		Email:    email,
		Password: "password123",
	})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	if _, _, err := service.Login(ctx, PrincipalUser, email, "password123"); err != nil {
		t.Fatalf("Login after duplicate attempt: %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	ctx := context.Background()
	pool := integrationPool(t)
	service := newIntegrationAuthService(pool)

	email := fmt.Sprintf("wrongpass-%d@example.com", time.Now().UnixNano())
	user, _, err := service.Register(ctx, RegisterInput{
		Name:     "Wrong Pass",
		Email:    email,
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	t.Cleanup(func() { cleanupAuthUser(t, ctx, pool, user.ID) })

	if _, _, err := service.Login(ctx, PrincipalUser, email, "not-the-password"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
