package middleware

import (
	"os"

	"github.com/gin-gonic/gin"
)

// CORSMiddleware adds CORS headers for the contact API. Pages are
// served same-origin; the whitelist exists for the staging frontend
// and local development.
func CORSMiddleware() gin.HandlerFunc {
	isProduction := os.Getenv("GIN_MODE") == "release"

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		productionOrigins := map[string]bool{
			"https://alameen-pest.com":     true,
			"https://www.alameen-pest.com": true,
		}

		devOrigins := map[string]bool{
			"http://localhost:3000": true,
			"http://localhost:8080": true,
			"http://127.0.0.1:8080": true,
		}

		var isAllowed bool
		if productionOrigins[origin] {
			isAllowed = true
		}
		if !isProduction && devOrigins[origin] {
			isAllowed = true
		}

		if isAllowed {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Vary", "Origin")
			c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Request-ID")
			c.Header("Access-Control-Max-Age", "86400")
		}

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
