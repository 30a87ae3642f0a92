package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateToken creates an HS256 access token carrying the role and email
// claims the middleware checks. Used by ops tooling and tests; the main
// product backend issues the tokens end users actually hold.
func GenerateToken(secret string, userID int, role, email string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id":    userID,
		"role":       role,
		"email":      email,
		"exp":        time.Now().Add(duration).Unix(),
		"iat":        time.Now().Unix(),
		"token_type": "access",
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
