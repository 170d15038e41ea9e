package utils

import (
	"testing"
	"time"

	"github.com/SscSPs/journal_engine/internal/core/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseJWT(t *testing.T) {
	actor := domain.Actor{UserID: "u-1", Username: "maria", Role: domain.RoleManager}

	token, err := GenerateJWT(actor, "secret", time.Hour, "journal-engine")
	require.NoError(t, err)

	claims, err := ParseAndValidateJWT(token, "secret", "journal-engine")
	require.NoError(t, err)

	got, err := claims.Actor()
	require.NoError(t, err)
	assert.Equal(t, actor, got)
}

func TestParseJWT_Rejects(t *testing.T) {
	actor := domain.Actor{UserID: "u-1", Username: "maria", Role: domain.RoleAccountant}

	t.Run("wrong secret", func(t *testing.T) {
		token, err := GenerateJWT(actor, "secret", time.Hour, "")
		require.NoError(t, err)
		_, err = ParseAndValidateJWT(token, "other", "")
		assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
	})

	t.Run("expired", func(t *testing.T) {
		token, err := GenerateJWT(actor, "secret", -time.Minute, "")
		require.NoError(t, err)
		_, err = ParseAndValidateJWT(token, "secret", "")
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		token, err := GenerateJWT(actor, "secret", time.Hour, "someone-else")
		require.NoError(t, err)
		_, err = ParseAndValidateJWT(token, "secret", "journal-engine")
		assert.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)
	})
}

func TestIdentityClaims_UnknownRole(t *testing.T) {
	claims := &IdentityClaims{Role: "Intern", RegisteredClaims: jwt.RegisteredClaims{Subject: "u-9"}}
	_, err := claims.Actor()
	assert.Error(t, err)
}
