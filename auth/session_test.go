package auth

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestSessionDecodesUserSnapshot(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		claimUserId:      "u1",
		claimDisplayName: "Alice",
		claimEmail:       "alice@example.com",
	})

	session := NewSession(token)

	require.NotNil(t, session.User())
	assert.Equal(t, "u1", session.User().UserId)
	assert.Equal(t, "Alice", session.User().DisplayName)
	assert.Equal(t, "alice@example.com", session.User().Email)
	assert.Equal(t, token, session.Token())
}

func TestSessionFallsBackToNameIdentifierClaim(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		claimNameIdentifier: "u42",
	})

	session := NewSession(token)

	require.NotNil(t, session.User())
	assert.Equal(t, "u42", session.User().UserId)
	assert.Equal(t, "User", session.User().DisplayName)
}

func TestEmptyTokenIsSignedOut(t *testing.T) {
	session := NewSession("")

	assert.Nil(t, session.User())
	assert.Empty(t, session.Token())
}

func TestMalformedTokenIsSignedOut(t *testing.T) {
	session := NewSession("not-a-jwt")

	assert.Nil(t, session.User())
	assert.Empty(t, session.Token())
}

func TestSignOutDropsTokenAndUser(t *testing.T) {
	session := NewSession(signToken(t, jwt.MapClaims{claimUserId: "u1"}))
	require.NotNil(t, session.User())

	session.SignOut()

	assert.Nil(t, session.User())
	assert.Empty(t, session.Token())
}
