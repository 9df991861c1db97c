package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/wb-go/wbf/logger"
	"golang.org/x/crypto/bcrypt"

	"github.com/cachinadev/turismo-app/internal/auth"
	"github.com/cachinadev/turismo-app/internal/domain"
	"github.com/cachinadev/turismo-app/internal/service/ports"
)

type TokenPair struct {
	Access  string
	Refresh string
}

type AuthService struct {
	userRepo ports.UserRepo
	tokens   *auth.TokenManager
	logger   logger.Logger
	now      func() time.Time
}

func NewAuthService(userRepo ports.UserRepo, tokens *auth.TokenManager, logger logger.Logger) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger,
		now:      time.Now,
	}
}

// Login verifies the credentials and mints a token pair. All failure modes
// collapse into ErrInvalidCredentials so callers cannot probe which emails
// exist.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, *TokenPair, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, nil, domain.ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, nil, domain.ErrInvalidCredentials
	}
	if !user.Active {
		return nil, nil, domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, nil, domain.ErrInvalidCredentials
	}

	pair, err := s.mintPair(user)
	if err != nil {
		return nil, nil, err
	}

	if err := s.userRepo.SetLastLogin(ctx, user.ID, s.now().UTC()); err != nil {
		s.logger.Error("failed to record last login",
			logger.String("user_id", user.ID),
			logger.String("error", err.Error()),
		)
	}

	s.logger.Info("operator logged in",
		logger.String("user_id", user.ID),
		logger.String("role", user.Role),
	)

	return user, pair, nil
}

// Refresh rotates the token pair off a valid refresh token.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*domain.User, *TokenPair, error) {
	claims, err := s.tokens.ParseRefresh(refreshToken)
	if err != nil {
		return nil, nil, err
	}

	user, err := s.userRepo.GetByID(ctx, claims.Subject)
	if err != nil {
		return nil, nil, domain.ErrTokenInvalid
	}
	if !user.Active {
		return nil, nil, domain.ErrTokenInvalid
	}

	pair, err := s.mintPair(user)
	if err != nil {
		return nil, nil, err
	}

	return user, pair, nil
}

func (s *AuthService) Me(ctx context.Context, id string) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *AuthService) mintPair(user *domain.User) (*TokenPair, error) {
	access, err := s.tokens.NewAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("mint access token: %w", err)
	}
	refresh, err := s.tokens.NewRefreshToken(user)
	if err != nil {
		return nil, fmt.Errorf("mint refresh token: %w", err)
	}
	return &TokenPair{Access: access, Refresh: refresh}, nil
}
