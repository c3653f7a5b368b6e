package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lukeklipping/NourishBox/utils"
)

// AuthMiddleware guards the user-scoped routes. It validates the Bearer
// session token and requires its subject to be the user id in the request
// path, so one account's token cannot touch another account's cart or
// profile.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		sub, err := utils.ParseJWT(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		if id := c.Param("id"); id != "" && id != sub {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token does not match user"})
			return
		}

		c.Set("userID", sub)
		c.Next()
	}
}
