package middleware

import (
	"net/http" // HTTP status codes

	"expensetracker/internal/session" // Session store and cookie codec

	"github.com/gin-gonic/gin" // Gin web framework
)

// RequireSession redirects to the login page unless the request carries a
// cookie that resolves to a live session with a bound user id
func RequireSession(store session.Store, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(session.CookieName) // Read the session cookie
		// Check if the cookie is present
		if err != nil {
			// If not, redirect to login
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		sid, err := session.DecodeCookie(token, secret) // Verify the signature and extract the session id
		if err != nil {
			// Tampered or expired cookie, treat as anonymous
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		userID, ok, err := store.Get(c.Request.Context(), sid) // Look the session up in the store
		if err != nil || !ok {
			// Session missing or store unreachable, back to login
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Set("userID", userID)   // Store the bound user id in context
		c.Set("sessionID", sid)   // Store the session id for logout
		c.Next()                  // Proceed to the next handler
	}
}
