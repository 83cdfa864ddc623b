package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestID tags every request with an id for log correlation, reusing
// the client's X-Request-ID when one is supplied.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("requestID", id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

// AuthRequired guards the admin routes. It accepts a Bearer token in the
// Authorization header and falls back to the token cookie set at login.
func (a *API) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""

		if header := c.GetHeader("Authorization"); header != "" {
			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				respondError(c, http.StatusUnauthorized, "Invalid authorization header format")
				c.Abort()
				return
			}
			tokenString = parts[1]
		} else if cookie, err := c.Cookie("token"); err == nil {
			tokenString = cookie
		}

		if tokenString == "" {
			respondError(c, http.StatusUnauthorized, "Authorization token is required")
			c.Abort()
			return
		}

		adminID, err := a.auth.VerifyToken(tokenString)
		if err != nil {
			respondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("adminID", adminID)
		c.Next()
	}
}
