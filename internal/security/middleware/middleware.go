package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/yourorg/jobboard/internal/observability/metrics"
	"github.com/yourorg/jobboard/internal/security/audit"
	"github.com/yourorg/jobboard/internal/security/auth"
)

type ClaimsContextKey struct{}

// RequireAuth gates a handler behind a bearer token. Both mutating job
// operations (create and delete) are wrapped with it; everything else
// stays public.
func RequireAuth(tm *auth.TokenManager, auditLog *audit.Logger, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				auditLog.LogDenied(r.Context(), "", r.Method+" "+r.URL.Path, "missing token")
				metrics.ObserveAuthRejection("missing_token")
				forbidden(w, "Access denied.")
				return
			}

			tokenString, err := auth.ExtractToken(authHeader)
			if err != nil {
				auditLog.LogDenied(r.Context(), "", r.Method+" "+r.URL.Path, "malformed header")
				metrics.ObserveAuthRejection("invalid_token")
				forbidden(w, "Invalid token.")
				return
			}

			claims, err := tm.ValidateToken(tokenString)
			if err != nil {
				log.Warn("token rejected",
					slog.String("path", r.URL.Path),
					slog.String("error", err.Error()),
				)
				auditLog.LogDenied(r.Context(), "", r.Method+" "+r.URL.Path, "invalid token")
				metrics.ObserveAuthRejection("invalid_token")
				forbidden(w, "Invalid token.")
				return
			}

			ctx := context.WithValue(r.Context(), ClaimsContextKey{}, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func forbidden(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusForbidden)
	w.Write([]byte(`{"message":"` + message + `"}`))
}

// GetClaimsFromContext returns the authenticated principal, or nil for
// unauthenticated requests.
func GetClaimsFromContext(ctx context.Context) *auth.Claims {
	if c := ctx.Value(ClaimsContextKey{}); c != nil {
		return c.(*auth.Claims)
	}
	return nil
}
