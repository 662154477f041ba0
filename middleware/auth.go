package middleware

import (
	"net/http"
	"strings"

	"github.com/anand7600/CodeAlpha-Social-Media-Platform/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuth protects a route group. A missing Authorization header is 401; a
// header that is present but carries an invalid or expired token is 403.
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		if authHeader == "" {
			utils.SendError(c, http.StatusUnauthorized, "Authorization header missing")
			c.Abort()
			return
		}

		authHeader = strings.Trim(authHeader, "\"' ")

		if !strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
			authHeader = "Bearer " + authHeader
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			utils.SendError(c, http.StatusForbidden, "Invalid authorization format, expected: Bearer <token>")
			c.Abort()
			return
		}

		tokenString := strings.Trim(parts[1], "\"' ")

		claims, err := utils.DecodeJWT(tokenString)
		if err != nil {
			utils.SendError(c, http.StatusForbidden, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("user_id", claims["user_id"])
		c.Next()
	}
}
