package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	h "campuscal/internal/delivery/http/helpers"
	"campuscal/internal/domain"
)

type contextKey string

const claimsKey contextKey = "claims"

// SetClaims returns a context carrying the verified token claims.
func SetClaims(ctx context.Context, claims domain.TokenClaims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// ClaimsFromContext returns the authenticated token claims, if present.
func ClaimsFromContext(ctx context.Context) (domain.TokenClaims, bool) {
	claims, ok := ctx.Value(claimsKey).(domain.TokenClaims)
	return claims, ok
}

// RequireRole returns a wrapper that validates the Bearer token and checks
// that its role claim matches role. Missing or invalid tokens get 401, a
// valid token with the wrong role gets 403. On success the claims are set
// in the request context.
func RequireRole(verifier domain.TokenVerifier, role string, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" {
				h.WriteError(w, http.StatusUnauthorized, "missing authorization header")
				return
			}
			const prefix = "Bearer "
			if !strings.HasPrefix(auth, prefix) {
				h.WriteError(w, http.StatusUnauthorized, "invalid authorization format")
				return
			}
			token := strings.TrimSpace(auth[len(prefix):])
			if token == "" {
				h.WriteError(w, http.StatusUnauthorized, "missing token")
				return
			}
			claims, err := verifier.Verify(token)
			if err != nil {
				h.WriteError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}
			if claims.Role != role {
				logger.Warn("role check failed",
					"path", r.URL.Path,
					"user_id", claims.UserID,
					"role", claims.Role,
					"required", role,
				)
				h.WriteError(w, http.StatusForbidden, "insufficient role")
				return
			}
			next(w, r.WithContext(SetClaims(r.Context(), claims)))
		}
	}
}
