// Package token issues and verifies the bearer tokens the API trusts for
// caller identity.
package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// Claims carries the caller identity and the display fields the identity
// provider knows about.
type Claims struct {
	jwt.RegisteredClaims

	Name   string `json:"name,omitempty"`
	Handle string `json:"handle,omitempty"`
	Avatar string `json:"avatar,omitempty"`
}

// Generate signs claims for the given subject with HS256.
func Generate(secret []byte, c Claims, ttl time.Duration) (string, error) {
	c.ExpiresAt = jwt.NewNumericDate(time.Now().Add(ttl))

	t, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &c).SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return t, nil
}

// Verify parses and validates a token and returns its claims.
func Verify(secret []byte, token string) (*Claims, error) {
	claims := &Claims{}

	if _, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}

		return secret, nil
	}); err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims.Subject == "" {
		return nil, fmt.Errorf("token subject is empty")
	}

	return claims, nil
}
