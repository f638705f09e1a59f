package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/timeclock-app/timeclock-backend-go/internal/domain/auth"
	"github.com/timeclock-app/timeclock-backend-go/internal/pkg/database"
)

type refreshTokenRepositoryImpl struct {
	db *database.DB
}

func NewRefreshTokenRepository(db *database.DB) auth.RefreshTokenRepository {
	return &refreshTokenRepositoryImpl{db: db}
}

// Create implements auth.RefreshTokenRepository.
func (r *refreshTokenRepositoryImpl) Create(ctx context.Context, token string, userID string, expiresAt time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO refresh_tokens (token, user_id, expires_at, revoked, created_at)
		VALUES ($1, $2, $3, FALSE, NOW())
	`

	_, err := q.Exec(ctx, query, token, userID, expiresAt)
	return err
}

// Revoke implements auth.RefreshTokenRepository.
func (r *refreshTokenRepositoryImpl) Revoke(ctx context.Context, token string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE refresh_tokens SET revoked = TRUE WHERE token = $1`

	tag, err := q.Exec(ctx, query, token)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return auth.ErrRefreshTokenNotFound
	}
	return nil
}

// IsRevoked implements auth.RefreshTokenRepository. An unknown token counts
// as revoked: it was never issued by this server or was already purged.
func (r *refreshTokenRepositoryImpl) IsRevoked(ctx context.Context, token string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT revoked FROM refresh_tokens WHERE token = $1`

	var revoked bool
	err := q.QueryRow(ctx, query, token).Scan(&revoked)
	if errors.Is(err, pgx.ErrNoRows) {
		return true, nil
	}
	if err != nil {
		return false, err
	}

	return revoked, nil
}
