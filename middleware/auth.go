// middleware/auth.go
package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"courtside/services/user"
	"courtside/utils"

	"github.com/gin-gonic/gin"
)

// Context keys populated by AuthMiddleware.
const (
	ContextEmailKey = "email"
	ContextRoleKey  = "role"
)

// AuthMiddleware validates the bearer token and resolves the caller's
// role. Firebase ID tokens are verified when an Auth client is
// configured; otherwise locally issued HS256 tokens are accepted.
// A missing or invalid token is a 401; the client reacts to 401/403 by
// forcing sign-out.
func AuthMiddleware(userSvc user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		email, err := verifyToken(c.Request.Context(), tokenString)
		if err != nil || email == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(ContextEmailKey, email)
		c.Set(ContextRoleKey, userSvc.ResolveRole(email))
		c.Next()
	}
}

// verifyToken resolves the bearer token to an email.
func verifyToken(ctx context.Context, tokenString string) (string, error) {
	if utils.AuthClient != nil {
		verifyCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		token, err := utils.AuthClient.VerifyIDToken(verifyCtx, tokenString)
		if err != nil {
			return "", err
		}
		email, _ := token.Claims["email"].(string)
		return email, nil
	}
	return utils.ExtractEmailFromToken(tokenString)
}

// RequireRoles gates a route group to the given roles. Must run after
// AuthMiddleware.
func RequireRoles(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		role := c.GetString(ContextRoleKey)
		if !allowed[role] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient role"})
			return
		}
		c.Next()
	}
}
