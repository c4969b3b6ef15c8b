// Package users implements account lifecycle and authentication: account
// registration, credential verification, and issuing/rotating JWT access
// tokens backed by server-stored refresh tokens.
package users

import (
	"context"
	"time"

	"github.com/mbaklanov/chatline/internal/common"
	"github.com/mbaklanov/chatline/internal/logging"
	"github.com/mbaklanov/chatline/internal/server/auth"
	"github.com/mbaklanov/chatline/internal/server/chat"
	"github.com/mbaklanov/chatline/internal/server/repositories/refreshtokens"
)

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// Service provides authentication-related operations:
// - Register: create accounts
// - Login: verify credentials and mint tokens
// - Refresh: rotate refresh tokens and mint new access tokens
type Service struct {
	directory                    *chat.Directory
	refreshTokens                refreshtokens.Repository
	jwtSecret                    []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
	logger                       logging.Logger
}

func NewService(directory *chat.Directory, refreshTokens refreshtokens.Repository,
	jwtSecret []byte, accessValidity, refreshValidity time.Duration, logger logging.Logger) *Service {
	return &Service{
		directory:                    directory,
		refreshTokens:                refreshTokens,
		jwtSecret:                    jwtSecret,
		accessTokenValidityDuration:  accessValidity,
		refreshTokenValidityDuration: refreshValidity,
		logger:                       logger.With("module", "users"),
	}
}

// Register creates a new account with the given username and password.
func (s *Service) Register(ctx context.Context, username, password string) error {
	return s.directory.CreateAccount(ctx, username, password)
}

// Login verifies the credentials and, on success, returns a new TokenPair.
// Wrong password and unknown username come back as distinct sentinels so the
// client can count retries.
func (s *Service) Login(ctx context.Context, username, password string) (*TokenPair, error) {
	if err := s.directory.Authenticate(ctx, username, password); err != nil {
		return nil, err
	}
	return s.generateTokenPair(ctx, username)
}

// Refresh validates a refresh token, rotates it, and returns a fresh
// TokenPair. Expired tokens are dropped and yield ErrRefreshTokenExpired.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	token, err := s.refreshTokens.Find(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	if token.ExpiresAt.Before(time.Now()) {
		if err := s.refreshTokens.Delete(ctx, refreshToken); err != nil {
			s.logger.Error(ctx, "error dropping expired refresh token", "error", err.Error())
		}
		return nil, common.ErrRefreshTokenExpired
	}

	if err := s.refreshTokens.Delete(ctx, refreshToken); err != nil {
		return nil, common.ErrInternal
	}
	return s.generateTokenPair(ctx, token.Username)
}

// RevokeAll drops every refresh token issued to username; called on account
// deletion so the deleted identity cannot mint new access tokens.
func (s *Service) RevokeAll(ctx context.Context, username string) error {
	return s.refreshTokens.DeleteForUser(ctx, username)
}

// Authorize validates an access token and returns the username it was
// issued for.
func (s *Service) Authorize(tokenString string) (string, error) {
	return auth.GetUsernameFromToken(tokenString, s.jwtSecret)
}

func (s *Service) generateTokenPair(ctx context.Context, username string) (*TokenPair, error) {
	access, err := auth.GenerateToken(username, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, common.ErrInternal
	}
	refresh, err := common.MakeRandHexString(32)
	if err != nil {
		return nil, common.ErrInternal
	}
	if err := s.refreshTokens.Create(ctx, username, refresh, s.refreshTokenValidityDuration); err != nil {
		return nil, common.ErrInternal
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
