package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadpilot/lead-intent-api/internal/models"
)

func newTestTokenService(t *testing.T, ttl time.Duration) TokenService {
	t.Helper()
	svc, err := NewTokenService("test-secret-key-for-jwt-signing-32-chars", ttl, "test-issuer")
	require.NoError(t, err)
	return svc
}

func TestTokenServiceRequiresSecret(t *testing.T) {
	_, err := NewTokenService("", time.Hour, "test-issuer")
	assert.Error(t, err)
}

func TestIssueAndValidateToken(t *testing.T) {
	svc := newTestTokenService(t, time.Hour)

	account := &models.Account{ID: uuid.New(), Email: "ava@example.com"}

	token, err := svc.IssueToken(account)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	accountID, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, account.ID, accountID)
}

func TestValidateExpiredToken(t *testing.T) {
	svc := newTestTokenService(t, -time.Minute)

	account := &models.Account{ID: uuid.New(), Email: "ava@example.com"}

	token, err := svc.IssueToken(account)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidateGarbageToken(t *testing.T) {
	svc := newTestTokenService(t, time.Hour)

	_, err := svc.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateTokenSignedWithDifferentSecret(t *testing.T) {
	svc := newTestTokenService(t, time.Hour)
	other, err := NewTokenService("another-secret-key-entirely-32-chars!!", time.Hour, "test-issuer")
	require.NoError(t, err)

	account := &models.Account{ID: uuid.New(), Email: "ava@example.com"}
	token, err := other.IssueToken(account)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
