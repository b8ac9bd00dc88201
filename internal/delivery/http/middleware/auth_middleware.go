package middleware

import (
	"context"
	"fmt"
	"strings"

	"go-pestcontrol-web/config"
	"go-pestcontrol-web/internal/delivery/http/response"
	"go-pestcontrol-web/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware guards the admin endpoints with an HMAC-signed
// bearer token. Tokens are issued out of band; the server only
// verifies them.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			response.Error(c, 401, "Missing or malformed Authorization header", nil)
			c.Abort()
			return
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")

		if cfg.AdminJWTSecret == "" {
			response.Error(c, 401, "Admin access is not configured", nil)
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(cfg.AdminJWTSecret), nil
		})
		if err != nil || !token.Valid {
			response.Error(c, 401, "Invalid or expired token", nil)
			c.Abort()
			return
		}

		sub := ""
		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			sub, _ = claims["sub"].(string)
		}

		ctx := context.WithValue(c.Request.Context(), domain.KeyAdminID, sub)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
