package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// StaticTokenMiddleware закрывает служебные эндпоинты (например /metrics) общим токеном.
// Пустой token - доступ открыт.
func StaticTokenMiddleware(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token == "" {
			c.Next()
			return
		}
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") || strings.TrimPrefix(header, "Bearer ") != token {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}
		c.Next()
	}
}
