package middleware

import (
	"net/http"
	"strings"

	"samsat-api/pkg/response"

	"github.com/gin-gonic/gin"
)

// APIKey guards a route group with the static shared secret. The key is
// accepted either as an X-API-KEY header or as a Bearer token.
func APIKey(expected string) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader("X-API-KEY")

		if apiKey == "" {
			authHeader := c.GetHeader("Authorization")
			if strings.HasPrefix(authHeader, "Bearer ") {
				apiKey = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}

		if apiKey == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(response.MsgAPIKeyRequired))
			return
		}
		if apiKey != expected {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(response.MsgUnauthorized))
			return
		}

		c.Next()
	}
}
