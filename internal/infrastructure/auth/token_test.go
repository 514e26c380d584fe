package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paperstock/backend/internal/infrastructure/config"
)

func newTestTokenService() *TokenService {
	cfg := config.SessionConfig{
		Secret:     "test-secret-key-at-least-32-chars",
		Expiration: 12 * time.Hour,
		Issuer:     "test-issuer",
	}
	return NewTokenService(cfg)
}

func TestNewTokenService_RandomSecretWhenEmpty(t *testing.T) {
	svc := NewTokenService(config.SessionConfig{Expiration: time.Hour})

	assert.NotEmpty(t, svc.secret)
}

func TestIssueAndValidate(t *testing.T) {
	svc := newTestTokenService()

	session, err := svc.Issue("admin-001", "Admin User", "admin", "ADM001")
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, "Bearer", session.TokenType)
	assert.True(t, session.ExpiresAt.After(time.Now()))

	claims, err := svc.Validate(session.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin-001", claims.UserID)
	assert.Equal(t, "admin-001", claims.Subject)
	assert.Equal(t, "Admin User", claims.Name)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "ADM001", claims.Identifier)
	assert.Equal(t, "test-issuer", claims.Issuer)
	assert.NotEmpty(t, claims.ID)
}

func TestValidate_RejectsGarbage(t *testing.T) {
	svc := newTestTokenService()

	_, err := svc.Validate("not-a-token")

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidate_RejectsWrongSecret(t *testing.T) {
	svc := newTestTokenService()
	other := NewTokenService(config.SessionConfig{
		Secret:     "a-completely-different-secret-key",
		Expiration: time.Hour,
		Issuer:     "test-issuer",
	})

	session, err := other.Issue("user-001", "John Doe", "user", "USR001")
	require.NoError(t, err)

	_, err = svc.Validate(session.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidate_RejectsExpired(t *testing.T) {
	svc := NewTokenService(config.SessionConfig{
		Secret:     "test-secret-key-at-least-32-chars",
		Expiration: -time.Minute,
		Issuer:     "test-issuer",
	})

	session, err := svc.Issue("user-001", "John Doe", "user", "USR001")
	require.NoError(t, err)

	_, err = svc.Validate(session.Token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}
