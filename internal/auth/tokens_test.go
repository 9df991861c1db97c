package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cachinadev/turismo-app/internal/domain"
)

func newManager() *TokenManager {
	return NewTokenManager("test-secret", "turismo-api", "turismo-frontend", time.Hour, 24*time.Hour)
}

func testUser() *domain.User {
	return &domain.User{ID: "u1", Name: "Ana", Email: "ana@example.com", Role: domain.RoleAdmin}
}

func TestTokenManager_AccessRoundTrip(t *testing.T) {
	m := newManager()

	tok, err := m.NewAccessToken(testUser())
	require.NoError(t, err)

	claims, err := m.ParseAccess(tok)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.Subject)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
	assert.Equal(t, "ana@example.com", claims.Email)
}

func TestTokenManager_RefreshNotAcceptedAsAccess(t *testing.T) {
	m := newManager()

	refresh, err := m.NewRefreshToken(testUser())
	require.NoError(t, err)

	_, err = m.ParseAccess(refresh)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)

	_, err = m.ParseRefresh(refresh)
	require.NoError(t, err)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	tok, err := newManager().NewAccessToken(testUser())
	require.NoError(t, err)

	other := NewTokenManager("other-secret", "turismo-api", "turismo-frontend", time.Hour, 24*time.Hour)
	_, err = other.ParseAccess(tok)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestTokenManager_Expired(t *testing.T) {
	m := NewTokenManager("test-secret", "turismo-api", "turismo-frontend", -time.Minute, 24*time.Hour)

	tok, err := m.NewAccessToken(testUser())
	require.NoError(t, err)

	_, err = m.ParseAccess(tok)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}
