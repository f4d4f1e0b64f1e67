package jwthelper

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndVerifyToken(t *testing.T) {
	key := []byte("test-signing-key")

	token, err := GenerateToken(key, 42, "ADMIN")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := VerifyToken(key, token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "ADMIN", claims.Role)
	assert.Equal(t, "apexflow", claims.Issuer)
	assert.WithinDuration(t, time.Now().Add(8*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestVerifyToken_WrongKey(t *testing.T) {
	token, err := GenerateToken([]byte("key-one"), 1, "STAFF")
	require.NoError(t, err)

	claims, err := VerifyToken([]byte("key-two"), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestVerifyToken_Expired(t *testing.T) {
	key := []byte("test-signing-key")

	expired := UserClaims{
		UserID: 7,
		Role:   "STAFF",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "apexflow",
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-9 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, expired).SignedString(key)
	require.NoError(t, err)

	_, err = VerifyToken(key, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyToken_Tampered(t *testing.T) {
	key := []byte("test-signing-key")

	token, err := GenerateToken(key, 1, "STAFF")
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = VerifyToken(key, tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyToken_Garbage(t *testing.T) {
	_, err := VerifyToken([]byte("test-signing-key"), "not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
