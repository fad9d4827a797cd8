package auth_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sohanurdev/portfolio-backend/internal/auth"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := auth.HashPassword("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, "secret123", hash)
	assert.True(t, auth.CheckPassword(hash, "secret123"))
	assert.False(t, auth.CheckPassword(hash, "secret124"))
}

func TestTokenRoundTrip(t *testing.T) {
	id := uuid.New()

	token, err := auth.MakeToken(id, "admin", "test-secret", time.Hour)
	require.NoError(t, err)

	claims, err := auth.ParseToken(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, id.String(), claims.AccountID)
	assert.Equal(t, "admin", claims.Role)
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := auth.MakeToken(uuid.New(), "user", "test-secret", time.Hour)
	require.NoError(t, err)

	_, err = auth.ParseToken(token, "other-secret")
	assert.Error(t, err)
}

func TestParseTokenExpired(t *testing.T) {
	token, err := auth.MakeToken(uuid.New(), "user", "test-secret", -time.Minute)
	require.NoError(t, err)

	_, err = auth.ParseToken(token, "test-secret")
	assert.Error(t, err)
}
