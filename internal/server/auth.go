package server

import (
	"context"
	"net/http"
	"strings"

	"github.com/growloop/icarus/internal/token"
)

type claimsKey struct{}

const bearerPrefix = "Bearer "

// authMiddleware resolves the caller identity from the Authorization header
// and stores its claims in the request context.
func authMiddleware(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := r.Header.Get("Authorization")
			if !strings.HasPrefix(h, bearerPrefix) {
				writeError(w, http.StatusUnauthorized, "authorization required")
				return
			}

			claims, err := token.Verify(secret, strings.TrimPrefix(h, bearerPrefix))
			if err != nil {
				writeError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), claimsKey{}, claims)))
		})
	}
}

func claimsFromContext(ctx context.Context) *token.Claims {
	claims, _ := ctx.Value(claimsKey{}).(*token.Claims)
	return claims
}
