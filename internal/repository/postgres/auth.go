package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/hirestream/hirestream/internal/domain/auth"
	ierr "github.com/hirestream/hirestream/internal/errors"
	"github.com/hirestream/hirestream/internal/logger"
	"github.com/hirestream/hirestream/internal/postgres"
	"github.com/hirestream/hirestream/internal/types"
)

type authRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewAuthRepository(db *postgres.DB, logger *logger.Logger) auth.Repository {
	return &authRepository{db: db, logger: logger}
}

func (r *authRepository) CreateAuth(ctx context.Context, a *auth.Auth) error {
	query := `
		INSERT INTO auths (
			user_id, provider, token, status, created_at, updated_at
		) VALUES (
			:user_id, :provider, :token, :status, :created_at, :updated_at
		)`

	if _, err := r.db.NamedExecContext(ctx, query, a); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create auth record").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *authRepository) GetAuthByUserID(ctx context.Context, userID string) (*auth.Auth, error) {
	var a auth.Auth
	query := `SELECT * FROM auths WHERE user_id = $1 AND status = $2`

	err := r.db.GetQuerier(ctx).GetContext(ctx, &a, query, userID, types.StatusPublished)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ierr.NewError("auth record not found").
				WithHint("No credentials exist for this user").
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get auth record").
			Mark(ierr.ErrDatabase)
	}
	return &a, nil
}

func (r *authRepository) UpdateAuth(ctx context.Context, a *auth.Auth) error {
	a.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE auths SET
			token = :token,
			status = :status,
			updated_at = :updated_at
		WHERE user_id = :user_id`

	if _, err := r.db.NamedExecContext(ctx, query, a); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update auth record").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *authRepository) DeleteAuth(ctx context.Context, userID string) error {
	query := `
		UPDATE auths SET status = $1, updated_at = $2 WHERE user_id = $3`

	_, err := r.db.GetQuerier(ctx).ExecContext(ctx, query,
		types.StatusDeleted, time.Now().UTC(), userID)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete auth record").
			Mark(ierr.ErrDatabase)
	}
	return nil
}
