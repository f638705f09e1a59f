package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/timeclock-app/timeclock-backend-go/internal/domain/auth"
	"github.com/timeclock-app/timeclock-backend-go/internal/domain/user"
	"github.com/timeclock-app/timeclock-backend-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	user.UserRepository
	auth.RefreshTokenRepository
	jwtService jwt.Service
}

func NewAuthService(
	userRepo user.UserRepository,
	refreshRepo auth.RefreshTokenRepository,
	jwtService jwt.Service,
) auth.AuthService {
	return &AuthServiceImpl{
		UserRepository:         userRepo,
		RefreshTokenRepository: refreshRepo,
		jwtService:             jwtService,
	}
}

func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, auth.RefreshGrant, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, auth.RefreshGrant{}, err
	}

	u, err := s.UserRepository.GetByEmail(ctx, req.Email)
	if errors.Is(err, user.ErrUserNotFound) {
		return auth.TokenResponse{}, auth.RefreshGrant{}, auth.ErrInvalidCredentials
	}
	if err != nil {
		return auth.TokenResponse{}, auth.RefreshGrant{}, fmt.Errorf("failed to look up user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return auth.TokenResponse{}, auth.RefreshGrant{}, auth.ErrInvalidCredentials
	}

	tokens, grant, err := s.issueTokens(ctx, u)
	if err != nil {
		return auth.TokenResponse{}, auth.RefreshGrant{}, err
	}

	slog.Info("user logged in", "user_id", u.ID, "email", u.Email)

	return tokens, grant, nil
}

func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.TokenResponse, auth.RefreshGrant, error) {
	if refreshToken == "" {
		return auth.TokenResponse{}, auth.RefreshGrant{}, auth.ErrInvalidToken
	}

	revoked, err := s.RefreshTokenRepository.IsRevoked(ctx, refreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.RefreshGrant{}, fmt.Errorf("failed to check refresh token: %w", err)
	}
	if revoked {
		return auth.TokenResponse{}, auth.RefreshGrant{}, auth.ErrRefreshTokenRevoked
	}

	decoded, err := s.jwtService.JWTAuth().Decode(refreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.RefreshGrant{}, auth.ErrInvalidToken
	}
	if tokenType, ok := decoded.Get("type"); !ok || tokenType != "refresh" {
		return auth.TokenResponse{}, auth.RefreshGrant{}, auth.ErrInvalidToken
	}
	if decoded.Expiration().Before(time.Now()) {
		return auth.TokenResponse{}, auth.RefreshGrant{}, auth.ErrTokenExpired
	}

	userIDVal, ok := decoded.Get("user_id")
	if !ok {
		return auth.TokenResponse{}, auth.RefreshGrant{}, auth.ErrInvalidToken
	}
	userID, ok := userIDVal.(string)
	if !ok {
		return auth.TokenResponse{}, auth.RefreshGrant{}, auth.ErrInvalidToken
	}

	u, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return auth.TokenResponse{}, auth.RefreshGrant{}, auth.ErrInvalidToken
	}

	// rotation: the presented token is retired before its replacement exists
	if err := s.RefreshTokenRepository.Revoke(ctx, refreshToken); err != nil {
		return auth.TokenResponse{}, auth.RefreshGrant{}, fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	return s.issueTokens(ctx, u)
}

func (s *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	if err := s.RefreshTokenRepository.Revoke(ctx, refreshToken); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}

func (s *AuthServiceImpl) IssueStreamToken(ctx context.Context, userID string) (auth.StreamTokenResponse, error) {
	if _, err := s.UserRepository.GetByID(ctx, userID); err != nil {
		return auth.StreamTokenResponse{}, err
	}

	token, expiresIn, err := s.jwtService.GenerateStreamToken(userID)
	if err != nil {
		return auth.StreamTokenResponse{}, fmt.Errorf("failed to generate stream token: %w", err)
	}

	return auth.StreamTokenResponse{
		StreamToken: token,
		ExpiresIn:   expiresIn,
	}, nil
}

func (s *AuthServiceImpl) issueTokens(ctx context.Context, u user.User) (auth.TokenResponse, auth.RefreshGrant, error) {
	accessToken, accessExpiresAt, err := s.jwtService.GenerateAccessToken(u.ID, u.Email, u.IsAdmin)
	if err != nil {
		return auth.TokenResponse{}, auth.RefreshGrant{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExpiresAt, err := s.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.TokenResponse{}, auth.RefreshGrant{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	if err := s.RefreshTokenRepository.Create(ctx, refreshToken, u.ID, time.Unix(refreshExpiresAt, 0)); err != nil {
		return auth.TokenResponse{}, auth.RefreshGrant{}, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return auth.TokenResponse{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresIn:   int(accessExpiresAt - time.Now().Unix()),
		User: auth.UserResponse{
			ID:      u.ID,
			Email:   u.Email,
			Name:    u.Name,
			IsAdmin: u.IsAdmin,
		},
	}, auth.RefreshGrant{Token: refreshToken, ExpiresAt: refreshExpiresAt}, nil
}
