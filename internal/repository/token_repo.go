package repository

import (
	"context"

	"github.com/Sarmadkhalid1/fithabs-backend/internal/models"
)

type TokenRepository struct {
	db DBTX
}

func NewTokenRepository(db DBTX) *TokenRepository {
	return &TokenRepository{db: db}
}

func (r *TokenRepository) Create(ctx context.Context, token *models.AccessToken) error {
	query := `
		INSERT INTO access_tokens (id, principal_id, principal_kind)
		VALUES ($1, $2, $3)
		RETURNING created_at, last_used_at
	`
	return r.db.QueryRow(ctx, query, token.ID, token.PrincipalID, token.PrincipalKind).
		Scan(&token.CreatedAt, &token.LastUsedAt)
}

func (r *TokenRepository) Get(ctx context.Context, id string) (*models.AccessToken, error) {
	query := `
		SELECT id, principal_id, principal_kind, created_at, last_used_at
		FROM access_tokens
		WHERE id = $1
	`
	var token models.AccessToken
	err := r.db.QueryRow(ctx, query, id).Scan(
		&token.ID,
		&token.PrincipalID,
		&token.PrincipalKind,
		&token.CreatedAt,
		&token.LastUsedAt,
	)
	if err != nil {
		return nil, err
	}
	return &token, nil
}

func (r *TokenRepository) Touch(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `UPDATE access_tokens SET last_used_at = NOW() WHERE id = $1`, id)
	return err
}

func (r *TokenRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM access_tokens WHERE id = $1`, id)
	return err
}

func (r *TokenRepository) DeleteForPrincipal(ctx context.Context, principalID int64, kind string) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM access_tokens WHERE principal_id = $1 AND principal_kind = $2`,
		principalID, kind,
	)
	return err
}

type PasswordResetRepository struct {
	db DBTX
}

func NewPasswordResetRepository(db DBTX) *PasswordResetRepository {
	return &PasswordResetRepository{db: db}
}

func (r *PasswordResetRepository) Upsert(ctx context.Context, email, tokenHash string) error {
	query := `
		INSERT INTO password_reset_tokens (email, token, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (email) DO UPDATE SET token = EXCLUDED.token, created_at = NOW()
	`
	_, err := r.db.Exec(ctx, query, email, tokenHash)
	return err
}

func (r *PasswordResetRepository) Get(ctx context.Context, email string) (*models.PasswordResetToken, error) {
	query := `SELECT email, token, created_at FROM password_reset_tokens WHERE email = $1`
	var token models.PasswordResetToken
	err := r.db.QueryRow(ctx, query, email).Scan(&token.Email, &token.Token, &token.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &token, nil
}

func (r *PasswordResetRepository) Delete(ctx context.Context, email string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM password_reset_tokens WHERE email = $1`, email)
	return err
}
