package auth

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/example/photoproof/internal/account"
)

type contextKey string

const actorIDKey contextKey = "actorID"

// ActorID retrieves the authenticated account id from context.
func ActorID(ctx context.Context) (uint, bool) {
	if ctx == nil {
		return 0, false
	}
	if value, ok := ctx.Value(actorIDKey).(uint); ok && value != 0 {
		return value, true
	}
	return 0, false
}

// Identify resolves an optional actor from the session cookie and injects
// it into the request context. Requests without a valid session continue
// anonymously; handlers decide what anonymity means for them.
func Identify(sessions *account.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(account.CookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}

		actorID, err := sessions.Resolve(c.Request.Context(), token)
		if err != nil {
			c.Next()
			return
		}

		ctx := context.WithValue(c.Request.Context(), actorIDKey, actorID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// Require aborts with 401 when Identify did not resolve an actor.
func Require() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := ActorID(c.Request.Context()); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Next()
	}
}
