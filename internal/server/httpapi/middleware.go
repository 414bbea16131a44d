package httpapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ndmitriev/authcore/internal/server/auth"
)

// ctxUserIDKey is the gin context key holding the authenticated user id.
const ctxUserIDKey = "userID"

// authMiddleware accepts the session token either as a bearer header or as
// the session cookie, so both client styles work.
func (s *Server) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""

		if h := c.GetHeader("Authorization"); h != "" {
			tokenString = strings.TrimPrefix(h, "Bearer ")
		} else if cookie, err := c.Cookie(sessionCookieName); err == nil {
			tokenString = cookie
		}

		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				response{Success: false, Message: "Authorization required", Code: codeUnauthorized})
			return
		}

		userID, err := auth.GetUserIDFromToken(tokenString, s.jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				response{Success: false, Message: "Invalid token", Code: codeUnauthorized})
			return
		}

		c.Set(ctxUserIDKey, userID)
		c.Next()
	}
}
