package middleware

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"

	"naukriedge/internal/logger"
)

// CronOrAdmin authorizes the generation trigger endpoints two ways: a bearer
// token matching the shared cron secret (for the external scheduler), or an
// admin JWT whose email is on the allow-list (for the dashboard). Everything
// else gets 401 with no partial processing.
func CronOrAdmin(cronSecret, jwtSecret string, adminEmails []string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(adminEmails))
	for _, e := range adminEmails {
		allowed[strings.ToLower(e)] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			token := strings.TrimPrefix(authHeader, "Bearer ")

			if cronSecret != "" && subtle.ConstantTimeCompare([]byte(token), []byte(cronSecret)) == 1 {
				ctx := context.WithValue(r.Context(), ContextRole, "cron")
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			if jwtSecret != "" {
				if claims, err := parseBearer(jwtSecret, token); err == nil && claims.Role == "admin" {
					if _, ok := allowed[claims.Email]; ok || len(allowed) == 0 {
						ctx := context.WithValue(r.Context(), ContextRole, claims.Role)
						ctx = context.WithValue(ctx, ContextEmail, claims.Email)
						next.ServeHTTP(w, r.WithContext(ctx))
						return
					}
					logger.WithCtx(r.Context()).Warn("CronOrAdmin: admin email not on allow-list")
				}
			}

			http.Error(w, "unauthorized", http.StatusUnauthorized)
		})
	}
}
