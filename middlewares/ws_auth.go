// middlewares/ws_auth.go
package middlewares

import (
	"preorder/utils"

	"github.com/gin-gonic/gin"
)

// OptionalAuth attaches the caller's identity when a valid token is present and lets
// anonymous requests through. The token may come from ?token= (websocket clients
// cannot set headers) or the Authorization header.
func OptionalAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := c.Query("token")
		if tokenStr == "" {
			tokenStr = bearerToken(c)
		}
		if tokenStr != "" {
			if claims, err := utils.ParseToken(tokenStr, secret); err == nil {
				setClaims(c, claims)
			}
		}
		c.Next()
	}
}
