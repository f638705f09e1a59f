package auth

import (
	"context"
)

type AuthService interface {
	// Login verifies credentials and issues an access/refresh token pair.
	// The refresh grant is returned separately so the handler can set it
	// as an HTTP-only cookie.
	Login(ctx context.Context, req LoginRequest) (TokenResponse, RefreshGrant, error)

	// Refresh rotates the refresh token and issues a new access token
	Refresh(ctx context.Context, refreshToken string) (TokenResponse, RefreshGrant, error)

	// Logout revokes the presented refresh token
	Logout(ctx context.Context, refreshToken string) error

	// IssueStreamToken mints a short-lived token for the SSE endpoint,
	// which cannot send Authorization headers
	IssueStreamToken(ctx context.Context, userID string) (StreamTokenResponse, error)
}
