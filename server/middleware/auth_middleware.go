package middleware

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"jobpilot-backend/shared/database/models"
	"jobpilot-backend/shared/session"
)

// userContextKey is the Gin context key under which the resolved user is
// stored. Handlers read it through CurrentUser instead of touching the
// key directly.
const userContextKey = "authUser"

// UserFinder loads the user row for a resolved session.
type UserFinder interface {
	FindUserByID(ctx context.Context, id uuid.UUID) (models.User, error)
}

// RequireSession resolves the session cookie to a user. Requests without a
// valid session are redirected to the login page instead of reaching the
// handler; resolved users are attached to the request context.
func RequireSession(sessions session.Manager, users UserFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(session.CookieName)
		if err != nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		userID, ok, err := sessions.Resolve(c.Request.Context(), token)
		if err != nil {
			log.Printf("❌ Session resolve failed: %v", err)
			c.String(http.StatusInternalServerError, "Internal server error")
			c.Abort()
			return
		}
		if !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		user, err := users.FindUserByID(c.Request.Context(), userID)
		if err != nil {
			// Session points at a user that no longer exists; treat as
			// unauthenticated rather than erroring the page.
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// CurrentUser returns the user attached by RequireSession.
func CurrentUser(c *gin.Context) (models.User, bool) {
	value, exists := c.Get(userContextKey)
	if !exists {
		return models.User{}, false
	}
	user, ok := value.(models.User)
	return user, ok
}
