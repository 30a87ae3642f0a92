package middleware

import (
	"context"
	"net/http"
	"strings"

	"naukriedge/internal/logger"
	"naukriedge/internal/reqctx"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

type tokenClaims struct {
	UserID int
	Role   string
	Email  string
}

// parseBearer validates an HS256 access token and extracts the claims we
// care about. Token issuance lives in the main product backend; this
// service only verifies.
func parseBearer(secret, tokenString string) (*tokenClaims, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}

	out := &tokenClaims{}
	if v, ok := claims["user_id"].(float64); ok {
		out.UserID = int(v)
	}
	if v, ok := claims["role"].(string); ok {
		out.Role = v
	}
	if v, ok := claims["email"].(string); ok {
		out.Email = strings.ToLower(v)
	}
	return out, nil
}

func JWTAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				logger.WithCtx(r.Context()).Warn("JWTAuth: missing access token")
				http.Error(w, "missing access token", http.StatusUnauthorized)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			claims, err := parseBearer(secret, tokenString)
			if err != nil {
				logger.WithCtx(r.Context()).Warn("JWTAuth: invalid or expired token", zap.Error(err))
				http.Error(w, "invalid or expired token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), ContextUserID, claims.UserID)
			ctx = context.WithValue(ctx, ContextRole, claims.Role)
			ctx = context.WithValue(ctx, ContextEmail, claims.Email)
			ctx = reqctx.WithUserEmail(ctx, claims.Email)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
