package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"courseadmin/internal/infrastructure/security"
)

// TokenCookie carries the signed session token.
const TokenCookie = "token"

const sessionKey = "session"

// SessionContext holds the validated claims for the request. It is
// built once by the gate and read by handlers via SessionFrom; handlers
// never re-derive it from the cookie.
type SessionContext struct {
	UserID uuid.UUID
	Email  string
}

var publicPaths = map[string]struct{}{
	"/login":         {},
	"/register":      {},
	"/auth/login":    {},
	"/auth/register": {},
	"/health":        {},
}

// SessionGate runs ahead of every route. Unauthenticated browser
// requests to protected paths are redirected to /login; API requests get
// a 401. Authenticated requests to the login/register pages bounce back
// to the app root.
func SessionGate(tokens *security.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var claims security.Claims
		authenticated := false
		if token, err := c.Cookie(TokenCookie); err == nil {
			if claims, err = tokens.Validate(token); err == nil {
				authenticated = true
			}
		}

		path := c.Request.URL.Path
		if _, public := publicPaths[path]; public {
			if authenticated && (path == "/login" || path == "/register") {
				c.Redirect(http.StatusFound, "/")
				c.Abort()
				return
			}
			c.Next()
			return
		}

		if !authenticated {
			if wantsHTML(c) {
				c.Redirect(http.StatusFound, "/login")
				c.Abort()
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		c.Set(sessionKey, SessionContext{UserID: claims.UserID, Email: claims.Email})
		c.Next()
	}
}

func wantsHTML(c *gin.Context) bool {
	return strings.Contains(c.GetHeader("Accept"), "text/html")
}

// SessionFrom returns the session placed by SessionGate.
func SessionFrom(c *gin.Context) (SessionContext, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return SessionContext{}, false
	}
	session, ok := v.(SessionContext)
	return session, ok
}
