package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/salahou-dine/hon-hon/utils"
)

// Ключи контекста gin, которые выставляет JWTAuthMiddleware
const (
	CtxUserID   = "user_id"
	CtxUserType = "user_type"
	CtxToken    = "token"
)

// JWTAuthMiddleware пускает и гостей (guest:...), и зарегистрированных (user:...).
// rdb может быть nil, тогда черный список не проверяется.
func JWTAuthMiddleware(secret string, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}
		header := c.GetHeader("Authorization")
		if header == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing Authorization header"})
			c.Abort()
			return
		}
		if !strings.HasPrefix(header, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid Authorization header"})
			c.Abort()
			return
		}
		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))

		if utils.IsTokenBlacklisted(c.Request.Context(), rdb, token) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token has been revoked"})
			c.Abort()
			return
		}

		claims, err := utils.ParseJWT(token, secret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}
		subject, err := utils.SubjectFromClaims(claims)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token payload"})
			c.Abort()
			return
		}

		c.Set(CtxUserID, subject)
		c.Set(CtxUserType, utils.PrincipalType(subject))
		c.Set(CtxToken, token)
		c.Next()
	}
}
