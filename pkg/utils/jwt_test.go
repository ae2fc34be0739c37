package utils

import (
	"testing"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndParseJWTToken(t *testing.T) {
	token, err := CreateJWTToken("6650c0ffee", "user", "secret")
	require.NoError(t, err)

	userID, err := ParseJWTToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "6650c0ffee", userID)

	_, err = ParseJWTToken(token, "another-secret")
	assert.Error(t, err)

	_, err = ParseJWTToken("not-a-token", "secret")
	assert.Error(t, err)
}

func TestUserIDFromToken(t *testing.T) {
	valid := &jwt.Token{Valid: true, Claims: jwt.MapClaims{"userId": "6650c0ffee"}}
	userID, err := UserIDFromToken(valid)
	require.NoError(t, err)
	assert.Equal(t, "6650c0ffee", userID)

	_, err = UserIDFromToken(&jwt.Token{Valid: true, Claims: jwt.MapClaims{"role": "user"}})
	assert.Error(t, err)

	_, err = UserIDFromToken(&jwt.Token{Valid: false, Claims: jwt.MapClaims{"userId": "6650c0ffee"}})
	assert.Error(t, err)
}
