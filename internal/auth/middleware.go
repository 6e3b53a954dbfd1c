package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Wolihts/Group-7-Healthy-Habit-Tracker/internal/storage"
)

// RequireAuth loads the session user into the context, or redirects to
// /login. Every protected handler derives the user id from here, never
// from request parameters.
func RequireAuth(sessions *SessionManager, users storage.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(CookieName)
		if err != nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		userID, err := sessions.Parse(token)
		if err != nil {
			sessions.ClearCookie(c)
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		user, err := users.GetUserByID(c.Request.Context(), userID)
		if err != nil {
			sessions.ClearCookie(c)
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Set("user", user)
		c.Next()
	}
}
