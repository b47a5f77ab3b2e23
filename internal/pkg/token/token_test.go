package token

import (
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateAdminToken(t *testing.T) {
	tokenString, err := GenerateAdminToken("test-secret", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims, err := ValidateToken("test-secret", tokenString)
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, claims.Role)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	tokenString, err := GenerateAdminToken("test-secret", time.Hour)
	require.NoError(t, err)

	_, err = ValidateToken("other-secret", tokenString)
	assert.Error(t, err)
}

func TestValidateTokenExpired(t *testing.T) {
	tokenString, err := GenerateAdminToken("test-secret", -time.Minute)
	require.NoError(t, err)

	_, err = ValidateToken("test-secret", tokenString)
	assert.Error(t, err)
}

func TestValidateTokenRejectsNonHMACSigningMethod(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	claims := &Claims{
		Role: RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	require.NoError(t, err)

	_, err = ValidateToken("test-secret", forged)
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	_, err := ValidateToken("test-secret", "not.a.token")
	assert.Error(t, err)
}
