package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	a "github.com/Nicoladla/drivent-booking/pkg/auth"
)

// UserIDKey is where JWTAuth stores the authenticated user's id in the
// request context.
const UserIDKey = "userID"

func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		tok := strings.TrimPrefix(h, "Bearer ")
		claims, err := a.ParseValidate(tok)
		if err != nil || claims.UserID == 0 {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		c.Set(UserIDKey, claims.UserID)
		c.Next()
	}
}
