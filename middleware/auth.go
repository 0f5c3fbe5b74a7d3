package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SessionCookie is the name of the HTTP-only cookie carrying the session
// token.
const SessionCookie = "pharmacy_session"

// UsernameKey is the gin context key under which RequireAuth stores the
// authenticated username.
const UsernameKey = "username"

// SessionChecker reports the username bound to a session token, if any.
type SessionChecker interface {
	Check(token string) (string, bool)
}

// RequireAuth guards mutating endpoints. Requests without a live session
// are rejected with 401 before the handler runs.
func RequireAuth(sessions SessionChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized. Please log in."})
			return
		}
		username, ok := sessions.Check(token)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized. Please log in."})
			return
		}
		c.Set(UsernameKey, username)
		c.Next()
	}
}
