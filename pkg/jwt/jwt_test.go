package jwt

import (
	"testing"

	"gamecatalog/admin/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withSecret(t *testing.T, secret string) {
	t.Helper()
	prev := config.AppConfig
	config.AppConfig = &config.Config{JWTSecret: secret}
	t.Cleanup(func() { config.AppConfig = prev })
}

func TestGenerateAndParse(t *testing.T) {
	withSecret(t, "unit-test-secret")

	token, err := GenerateToken(42)
	require.NoError(t, err)

	id, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)
}

func TestParseToken_WrongSecret(t *testing.T) {
	withSecret(t, "first")
	token, err := GenerateToken(7)
	require.NoError(t, err)

	config.AppConfig.JWTSecret = "second"
	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestGenerateToken_NoSecret(t *testing.T) {
	withSecret(t, "")

	_, err := GenerateToken(1)
	assert.Error(t, err)
	_, err = ParseToken("anything")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
