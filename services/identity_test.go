package services

import (
	"testing"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestTokenUID(t *testing.T) {
	uid, err := TokenUID(signedToken(t, jwt.MapClaims{"user_id": "uid-1", "sub": "other"}))
	require.NoError(t, err)
	assert.Equal(t, "uid-1", uid)

	uid, err = TokenUID(signedToken(t, jwt.MapClaims{"sub": "uid-2"}))
	require.NoError(t, err)
	assert.Equal(t, "uid-2", uid)

	_, err = TokenUID(signedToken(t, jwt.MapClaims{"email": "a@b.c"}))
	assert.Error(t, err)

	_, err = TokenUID("not-a-token")
	assert.Error(t, err)
}
