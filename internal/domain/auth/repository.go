package auth

import (
	"context"
	"time"
)

// RefreshTokenRepository persists issued refresh tokens so they can be
// revoked individually on logout.
type RefreshTokenRepository interface {
	Create(ctx context.Context, token string, userID string, expiresAt time.Time) error
	Revoke(ctx context.Context, token string) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}
