package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sabaipos/pos_backend/internal/apperrors"
	portsrepo "github.com/sabaipos/pos_backend/internal/core/ports/repositories"
	portssvc "github.com/sabaipos/pos_backend/internal/core/ports/services"
	"github.com/sabaipos/pos_backend/internal/dto"
	"github.com/sabaipos/pos_backend/internal/middleware"
	"github.com/sabaipos/pos_backend/internal/utils"
	"github.com/sabaipos/pos_backend/pkg/config"
)

// authService issues bearer tokens for staff logins. It exists only so the
// API has an authenticated caller; roster and ledger logic never touch it.
type authService struct {
	cfg  *config.Config
	repo portsrepo.StaffUserRepositoryFacade
}

// NewAuthService creates the login service.
func NewAuthService(cfg *config.Config, repo portsrepo.StaffUserRepositoryFacade) portssvc.AuthSvcFacade {
	return &authService{cfg: cfg, repo: repo}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.repo.FindUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Same response as a bad password so usernames can't be probed.
			return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !utils.VerifyStaffPassword(req.Password, user.PasswordHash) {
		logger.Warn("Failed login attempt", slog.String("username", req.Username))
		return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   user.UserID,
		Issuer:    s.cfg.JWTIssuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.JWTExpiryDuration)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	logger.Info("Staff logged in", slog.String("username", req.Username))
	return &dto.LoginResponse{Token: signed, DisplayName: user.DisplayName}, nil
}
