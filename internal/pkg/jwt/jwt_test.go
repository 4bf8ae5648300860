package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_AccessTokenRoundTrip(t *testing.T) {
	svc := New("test-secret-123", 15*time.Minute, 7*24*time.Hour)

	token, err := svc.GenerateAccessToken(42, "ADMIN")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "ADMIN", claims.Role)
}

func TestService_ExpiredTokenFailsValidation(t *testing.T) {
	svc := New("test-secret-123", -time.Minute, 7*24*time.Hour)

	token, err := svc.GenerateAccessToken(42, "USER")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestService_WrongSecretFailsValidation(t *testing.T) {
	issuer := New("secret-a", 15*time.Minute, 7*24*time.Hour)
	verifier := New("secret-b", 15*time.Minute, 7*24*time.Hour)

	token, err := issuer.GenerateAccessToken(1, "USER")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestService_MalformedTokenFailsValidation(t *testing.T) {
	svc := New("test-secret-123", 15*time.Minute, 7*24*time.Hour)

	_, err := svc.ValidateToken("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestService_RefreshTokensAreUnique(t *testing.T) {
	svc := New("test-secret-123", 15*time.Minute, 7*24*time.Hour)

	// Same user, same instant: the jti claim must still make them distinct
	// because the stored token string is a unique key.
	first, err := svc.GenerateRefreshToken(7)
	require.NoError(t, err)
	second, err := svc.GenerateRefreshToken(7)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	claims, err := svc.ValidateToken(first)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.NotEmpty(t, claims.ID)
}
