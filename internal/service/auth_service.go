package service

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/yourorg/jobboard/internal/domain"
	"github.com/yourorg/jobboard/internal/observability/metrics"
	"github.com/yourorg/jobboard/internal/security/auth"
	"golang.org/x/crypto/bcrypt"
)

// AuthService authenticates the single configured administrator and
// issues signed tokens. There is no user store; the admin credential
// pair comes from configuration and is read-only after startup.
type AuthService struct {
	adminUsername     string
	adminPasswordHash []byte
	tokens            *auth.TokenManager
	logger            *slog.Logger
}

// NewAuthService creates a new authentication service. The password
// hash is a bcrypt digest, never the plaintext password.
func NewAuthService(adminUsername, adminPasswordHash string, tokens *auth.TokenManager, logger *slog.Logger) *AuthService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{
		adminUsername:     adminUsername,
		adminPasswordHash: []byte(adminPasswordHash),
		tokens:            tokens,
		logger:            logger,
	}
}

// Login verifies the credential pair and returns a signed token valid
// for one hour. Username and password failures both map to
// domain.ErrInvalidCredentials so callers cannot tell which was wrong.
func (s *AuthService) Login(username, password string) (string, error) {
	if s.adminUsername == "" || username != s.adminUsername {
		s.logger.Info("login attempt with unknown username", slog.String("username", username))
		metrics.ObserveLogin("rejected")
		return "", domain.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(s.adminPasswordHash, []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			s.logger.Info("login failed with wrong password", slog.String("username", username))
			metrics.ObserveLogin("rejected")
			return "", domain.ErrInvalidCredentials
		}
		s.logger.Error("password hash comparison failed", slog.String("error", err.Error()))
		metrics.ObserveLogin("error")
		return "", fmt.Errorf("compare password hash: %w", err)
	}

	token, err := s.tokens.GenerateToken(username, auth.TokenTTL)
	if err != nil {
		s.logger.Error("failed to sign token", slog.String("error", err.Error()))
		metrics.ObserveLogin("error")
		return "", fmt.Errorf("generate token: %w", err)
	}

	s.logger.Info("admin logged in", slog.String("username", username))
	metrics.ObserveLogin("accepted")
	return token, nil
}
