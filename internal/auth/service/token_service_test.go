package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTokenService(t *testing.T) {
	ts := NewTokenService("access-secret", "refresh-secret", 15, 10080)

	assert.Equal(t, 15*time.Minute, ts.GetAccessTokenExpiry())
	assert.Equal(t, 10080*time.Minute, ts.GetRefreshTokenExpiry())
}

func TestTokenService_Generate(t *testing.T) {
	ts := NewTokenService("access-secret", "refresh-secret", 15, 10080)

	accessToken, refreshToken, refreshExpiresAt, err := ts.Generate("user-123", "test@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)
	assert.NotEqual(t, accessToken, refreshToken)
	assert.WithinDuration(t, time.Now().Add(ts.RefreshTokenExpiry), refreshExpiresAt, 5*time.Second)
}

func TestTokenService_VerifyAccessToken(t *testing.T) {
	ts := NewTokenService("access-secret", "refresh-secret", 15, 10080)

	accessToken, _, _, err := ts.Generate("user-123", "test@example.com")
	require.NoError(t, err)

	claims, err := ts.VerifyAccessToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "test@example.com", claims.Email)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), claims.ExpiresAt.Time, 5*time.Second)
}

func TestTokenService_VerifyAccessToken_WrongSecret(t *testing.T) {
	ts := NewTokenService("access-secret", "refresh-secret", 15, 10080)
	other := NewTokenService("different-secret", "refresh-secret", 15, 10080)

	accessToken, _, _, err := ts.Generate("user-123", "test@example.com")
	require.NoError(t, err)

	_, err = other.VerifyAccessToken(accessToken)
	assert.Error(t, err)
}

// A refresh token must not pass where an access token is expected, even
// when both classes are signed with the same secret.
func TestTokenService_VerifyAccessToken_RejectsRefreshType(t *testing.T) {
	ts := NewTokenService("shared-secret", "shared-secret", 15, 10080)

	_, refreshToken, _, err := ts.Generate("user-123", "test@example.com")
	require.NoError(t, err)

	_, err = ts.VerifyAccessToken(refreshToken)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "token type")
}

func TestTokenService_VerifyAccessToken_Expired(t *testing.T) {
	ts := NewTokenService("access-secret", "refresh-secret", 15, 10080)

	claims := JWTCustomClaims{
		UserID:    "user-123",
		Email:     "test@example.com",
		TokenType: TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("access-secret"))
	require.NoError(t, err)

	_, err = ts.VerifyAccessToken(expired)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestTokenService_VerifyAccessToken_RejectsNoneAlgorithm(t *testing.T) {
	ts := NewTokenService("access-secret", "refresh-secret", 15, 10080)

	claims := JWTCustomClaims{
		UserID:    "user-123",
		TokenType: TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ts.VerifyAccessToken(unsigned)
	assert.Error(t, err)
}
