package middleware

import (
	"net/http"

	"staffMan/utils"

	"github.com/gin-gonic/gin"
)

// TokenHeader carries the session token on authenticated requests.
const TokenHeader = "x-auth-token"

// AuthMiddleware rejects requests without a valid signed token and makes
// the token's subject id available to handlers under "userId".
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader(TokenHeader)
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "No token, authorization denied"})
			c.Abort()
			return
		}

		userID, err := utils.ParseToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "Token is not valid"})
			c.Abort()
			return
		}

		c.Set("userId", userID)
		c.Next()
	}
}
