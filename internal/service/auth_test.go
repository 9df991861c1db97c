package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/cachinadev/turismo-app/internal/auth"
	"github.com/cachinadev/turismo-app/internal/domain"
	"github.com/cachinadev/turismo-app/internal/service/ports/mocks"
)

func newTestTokenManager() *auth.TokenManager {
	return auth.NewTokenManager("test-secret", "turismo-api", "turismo-frontend", time.Hour, 24*time.Hour)
}

func testUser(t *testing.T, password string) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &domain.User{
		ID:           "u1",
		Name:         "Operador",
		Email:        "ops@turismo.pe",
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		Active:       true,
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewAuthService(userRepo, newTestTokenManager(), newTestLogger(t))

	user := testUser(t, "secret123")
	userRepo.EXPECT().GetByEmail(mock.Anything, "ops@turismo.pe").Return(user, nil)
	userRepo.EXPECT().SetLastLogin(mock.Anything, "u1", mock.Anything).Return(nil)

	got, pair, err := svc.Login(context.Background(), "  Ops@Turismo.PE ", "secret123")

	require.NoError(t, err)
	assert.Equal(t, "u1", got.ID)
	assert.NotEmpty(t, pair.Access)
	assert.NotEmpty(t, pair.Refresh)
	assert.NotEqual(t, pair.Access, pair.Refresh)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewAuthService(userRepo, newTestTokenManager(), newTestLogger(t))

	user := testUser(t, "secret123")
	userRepo.EXPECT().GetByEmail(mock.Anything, "ops@turismo.pe").Return(user, nil)

	_, _, err := svc.Login(context.Background(), "ops@turismo.pe", "nope")

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewAuthService(userRepo, newTestTokenManager(), newTestLogger(t))

	userRepo.EXPECT().GetByEmail(mock.Anything, "ghost@turismo.pe").Return(nil, domain.ErrUserNotFound)

	_, _, err := svc.Login(context.Background(), "ghost@turismo.pe", "whatever")

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Login_InactiveAccount(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewAuthService(userRepo, newTestTokenManager(), newTestLogger(t))

	user := testUser(t, "secret123")
	user.Active = false
	userRepo.EXPECT().GetByEmail(mock.Anything, "ops@turismo.pe").Return(user, nil)

	_, _, err := svc.Login(context.Background(), "ops@turismo.pe", "secret123")

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Refresh_RotatesPair(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	tm := newTestTokenManager()
	svc := NewAuthService(userRepo, tm, newTestLogger(t))

	user := testUser(t, "secret123")
	refresh, err := tm.NewRefreshToken(user)
	require.NoError(t, err)

	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)

	got, pair, err := svc.Refresh(context.Background(), refresh)

	require.NoError(t, err)
	assert.Equal(t, "u1", got.ID)
	assert.NotEmpty(t, pair.Access)
	assert.NotEmpty(t, pair.Refresh)
}

func TestAuthService_Refresh_AccessTokenRejected(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	tm := newTestTokenManager()
	svc := NewAuthService(userRepo, tm, newTestLogger(t))

	user := testUser(t, "secret123")
	access, err := tm.NewAccessToken(user)
	require.NoError(t, err)

	_, _, err = svc.Refresh(context.Background(), access)

	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}
