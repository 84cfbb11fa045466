package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	secret := []byte("test-secret")
	issued := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	token, err := GenerateToken("user-123", secret, issued)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := UserIDFromToken(token, secret)
	require.NoError(t, err)
	require.Equal(t, "user-123", userID)
}

func TestUserIDFromToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken("user-123", []byte("secret-a"), time.Now())
	require.NoError(t, err)

	_, err = UserIDFromToken(token, []byte("secret-b"))
	require.Error(t, err)
}

func TestUserIDFromToken_Garbage(t *testing.T) {
	_, err := UserIDFromToken("not-a-token", []byte("secret"))
	require.Error(t, err)
}
