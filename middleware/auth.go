package middleware

import (
	"context"
	"fmt"
	"net/http"

	"github.com/golang-jwt/jwt/v4"

	"github.com/sportsync/pickup-games/models"
)

type contextKey string

const identityContextKey contextKey = "identity"

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "pickup_session"

// Identity parses the session cookie and, when its signature checks out,
// attaches the caller's verified claims to the request context. Requests
// without a cookie, or with a token that fails verification, pass through
// anonymously; pages decide for themselves what anonymous users may do.
func Identity(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(secret) == 0 {
				next.ServeHTTP(w, r)
				return
			}

			cookie, err := r.Cookie(SessionCookieName)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ident, err := ParseIdentity(cookie.Value, secret)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), identityContextKey, ident)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ParseIdentity verifies an HS256 token against the secret and extracts the
// name and email claims.
func ParseIdentity(tokenString string, secret []byte) (*models.Identity, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse session token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("session token claims are not usable")
	}

	ident := &models.Identity{}
	if name, ok := claims["name"].(string); ok {
		ident.Name = name
	}
	if email, ok := claims["email"].(string); ok {
		ident.Email = email
	}
	return ident, nil
}

// IdentityFromContext returns the verified caller identity, or nil for
// anonymous requests.
func IdentityFromContext(ctx context.Context) *models.Identity {
	ident, _ := ctx.Value(identityContextKey).(*models.Identity)
	return ident
}
