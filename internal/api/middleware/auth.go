package middleware

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"ctchen222/Tic-Tac-Toe-Scoreboard/internal/api/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const roleAdmin = "admin"

var errNotAdmin = errors.New("token does not carry the admin role")

// IssueAdminToken signs an HS256 token with role=admin valid for ttl.
func IssueAdminToken(secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "scoreboard-admin",
		"role": roleAdmin,
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	})

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// AdminAuth requires a bearer token signed with secret and carrying role=admin.
// An empty secret leaves the route open.
func AdminAuth(secret string) gin.HandlerFunc {
	if secret == "" {
		return func(c *gin.Context) { c.Next() }
	}
	key := []byte(secret)

	return func(c *gin.Context) {
		raw, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || raw == "" {
			response.AbortWithError(c, response.Unauthorized("Missing bearer token"))
			return
		}

		if err := verifyAdmin(raw, key); err != nil {
			response.AbortWithError(c, response.Unauthorized("Invalid token"))
			return
		}
		c.Next()
	}
}

func verifyAdmin(raw string, key []byte) error {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		return key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return err
	}

	if role, _ := claims["role"].(string); role != roleAdmin {
		return errNotAdmin
	}
	return nil
}
