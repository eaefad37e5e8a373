package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("test-secret")

func TestGenerateVerify(t *testing.T) {
	raw, err := Generate(secret, Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"},
		Name:             "Ada",
		Handle:           "ada",
		Avatar:           "https://example.com/a.png",
	}, time.Minute)
	require.NoError(t, err)

	claims, err := Verify(secret, raw)
	require.NoError(t, err)

	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "Ada", claims.Name)
	assert.Equal(t, "ada", claims.Handle)
	assert.Equal(t, "https://example.com/a.png", claims.Avatar)
}

func TestVerify_Expired(t *testing.T) {
	raw, err := Generate(secret, Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"},
	}, -time.Minute)
	require.NoError(t, err)

	_, err = Verify(secret, raw)
	require.Error(t, err)
}

func TestVerify_WrongSecret(t *testing.T) {
	raw, err := Generate([]byte("other"), Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"},
	}, time.Minute)
	require.NoError(t, err)

	_, err = Verify(secret, raw)
	require.Error(t, err)
}

func TestVerify_EmptySubject(t *testing.T) {
	raw, err := Generate(secret, Claims{}, time.Minute)
	require.NoError(t, err)

	_, err = Verify(secret, raw)
	require.Error(t, err)
}
