package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	tok, err := GenerateToken(7, "admin", "staff@x.com", "secret", time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(tok, "secret")
	require.NoError(t, err)
	assert.EqualValues(t, 7, claims.UserID)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "staff@x.com", claims.Email)

	_, err = ParseToken(tok, "other-secret")
	require.Error(t, err)
}

func TestParseToken_Expired(t *testing.T) {
	tok, err := GenerateToken(1, "student", "a@x.com", "secret", -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(tok, "secret")
	require.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestParseToken_RejectsNone(t *testing.T) {
	tok, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: 1, Role: "admin"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ParseToken(tok, "secret")
	require.Error(t, err)
}
