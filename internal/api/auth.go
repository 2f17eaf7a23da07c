package api

import (
	"net/http" // HTTP status codes
	"strings"  // Error message inspection
	"time"     // Session TTL

	"expensetracker/internal/domain"  // Importing domain models
	"expensetracker/internal/session" // Session store and cookie codec

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/gorm"               // GORM ORM library
)

// RegisterFormHandler renders the registration form
func RegisterFormHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "register.html", gin.H{}) // Render the form
	}
}

// LoginFormHandler renders the login form
func LoginFormHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "login.html", gin.H{}) // Render the form
	}
}

// isDuplicateEmailError reports whether a create failed on the unique
// email constraint rather than a storage outage
func isDuplicateEmailError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	// MySQL 1062 plus the phrasings other drivers use
	return strings.Contains(s, "Duplicate entry") ||
		strings.Contains(s, "duplicate key") ||
		strings.Contains(s, "UNIQUE constraint")
}

// startSession creates a server-side session for the user and sets the
// signed session cookie on the response
func startSession(c *gin.Context, store session.Store, secret string, ttl time.Duration, userID uint) error {
	sid, err := store.Create(c.Request.Context(), userID) // Create the server-side session
	if err != nil {
		return err // Return error if the store write fails
	}
	token, err := session.EncodeCookie(sid, secret, ttl) // Sign the session id into the cookie token
	if err != nil {
		return err // Return error if signing fails
	}
	// HttpOnly session cookie, lifetime matching the server-side session
	c.SetCookie(session.CookieName, token, int(ttl.Seconds()), "/", "", false, true)
	return nil
}

// RegisterHandler creates a new account and starts a session for it
func RegisterHandler(db *gorm.DB, store session.Store, secret string, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.PostForm("email")       // Login email from the form
		password := c.PostForm("password") // Raw password from the form
		// Hash the password and create the user
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			// If hashing fails, return internal server error
			c.String(http.StatusInternalServerError, "Something went wrong.")
			return
		}
		user := domain.User{Email: email, PasswordHash: string(hash), Budget: 20000}
		// Attempt to create the user in the database
		if err := db.Create(&user).Error; err != nil {
			// Taken email gets the plain message with no redirect
			if isDuplicateEmailError(err) {
				logrus.WithFields(logrus.Fields{
					"email": email, // Attempted email
				}).Warn("Registration failed")
				c.String(http.StatusOK, "Registration failed. Try a different email.")
				return
			}
			// Anything else is a storage failure, logged and reported as a 500
			logrus.WithFields(logrus.Fields{
				"email": email,       // Attempted email
				"error": err.Error(), // Error message
			}).Error("Failed to create user")
			c.String(http.StatusInternalServerError, "Something went wrong.")
			return
		}
		// Bind the session to the new account
		if err := startSession(c, store, secret, ttl, user.ID); err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": user.ID,     // New user id
				"error":   err.Error(), // Error message
			}).Error("Failed to start session")
			c.String(http.StatusInternalServerError, "Something went wrong.")
			return
		}
		c.Redirect(http.StatusFound, "/dashboard") // Redirect to the dashboard
	}
}

// LoginHandler authenticates a user and starts a session
func LoginHandler(db *gorm.DB, store session.Store, secret string, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.PostForm("email")       // Login email from the form
		password := c.PostForm("password") // Raw password from the form
		var user domain.User               // Fetch user from database
		if err := db.Where("email = ?", email).First(&user).Error; err != nil {
			// Unknown email, plain message to the user
			c.String(http.StatusOK, "No user found.")
			return
		}
		// Compare provided password with stored hash
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
			c.String(http.StatusOK, "Incorrect password.")
			return
		}
		// Bind the session to the user
		if err := startSession(c, store, secret, ttl, user.ID); err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": user.ID,     // User id
				"error":   err.Error(), // Error message
			}).Error("Failed to start session")
			c.String(http.StatusInternalServerError, "Something went wrong.")
			return
		}
		c.Redirect(http.StatusFound, "/dashboard") // Redirect to the dashboard
	}
}

// LogoutHandler destroys the session and redirects to login regardless of
// whether the destroy succeeded
func LogoutHandler(store session.Store, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Resolve the session from the cookie, if any
		if token, err := c.Cookie(session.CookieName); err == nil {
			if sid, err := session.DecodeCookie(token, secret); err == nil {
				// Destroy failures are logged, never surfaced
				if err := store.Destroy(c.Request.Context(), sid); err != nil {
					logrus.WithFields(logrus.Fields{
						"error": err.Error(), // Error message
					}).Error("Failed to destroy session")
				}
			}
		}
		// Clear the cookie and send the user back to login
		c.SetCookie(session.CookieName, "", -1, "/", "", false, true)
		c.Redirect(http.StatusFound, "/login")
	}
}
