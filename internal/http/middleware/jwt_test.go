package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserTokenRoundTrip(t *testing.T) {
	token, err := GenerateUserJWT(7, 3, "user-secret")
	require.NoError(t, err)

	userID, customerID, err := parseToken(token, "user-secret", tokenTypeUser)
	require.NoError(t, err)
	assert.Equal(t, 7, userID)
	assert.Equal(t, 3, customerID)
}

func TestPlayerTokenRoundTrip(t *testing.T) {
	token, err := GeneratePlayerJWT(42, 3, "device-secret")
	require.NoError(t, err)

	playerID, customerID, err := parseToken(token, "device-secret", tokenTypePlayer)
	require.NoError(t, err)
	assert.Equal(t, 42, playerID)
	assert.Equal(t, 3, customerID)
}

func TestTokenTypeIsEnforced(t *testing.T) {
	userToken, err := GenerateUserJWT(7, 3, "shared-secret")
	require.NoError(t, err)

	// a user token must not pass as a device token even under the same secret
	_, _, err = parseToken(userToken, "shared-secret", tokenTypePlayer)
	assert.Error(t, err)

	playerToken, err := GeneratePlayerJWT(42, 3, "shared-secret")
	require.NoError(t, err)
	_, _, err = parseToken(playerToken, "shared-secret", tokenTypeUser)
	assert.Error(t, err)
}

func TestWrongSecretRejected(t *testing.T) {
	token, err := GenerateUserJWT(7, 3, "right-secret")
	require.NoError(t, err)

	_, _, err = parseToken(token, "wrong-secret", tokenTypeUser)
	assert.Error(t, err)
}

func TestGarbageTokenRejected(t *testing.T) {
	_, _, err := parseToken("not.a.jwt", "secret", tokenTypeUser)
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hashed, err := HashPassword("hunter2hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2hunter2", hashed)

	assert.True(t, CheckPassword(hashed, "hunter2hunter2"))
	assert.False(t, CheckPassword(hashed, "wrong-password"))
}
