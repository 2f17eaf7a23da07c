package api

import (
	"time" // Session TTL

	"expensetracker/internal/middleware" // Session guard
	"expensetracker/internal/session"    // Session store

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// SetupRoutes registers every route on the router. The CSV export route
// deliberately stays outside the session guard.
func SetupRoutes(r *gin.Engine, db *gorm.DB, sessions session.Store, secret string, ttl time.Duration) {
	// Public routes
	r.GET("/", HomeHandler())                                     // Home page
	r.GET("/register", RegisterFormHandler())                     // Registration form
	r.POST("/register", RegisterHandler(db, sessions, secret, ttl)) // Create account, start session
	r.GET("/login", LoginFormHandler())                           // Login form
	r.POST("/login", LoginHandler(db, sessions, secret, ttl))     // Authenticate, start session
	r.GET("/logout", LogoutHandler(sessions, secret))             // End session
	r.GET("/download-csv", DownloadCSVHandler(db, sessions, secret)) // Current-month export, ungated

	// Gated routes (protected by the session guard)
	gated := r.Group("")
	gated.Use(middleware.RequireSession(sessions, secret))
	gated.GET("/add-expense", AddExpenseFormHandler())         // Add form
	gated.POST("/add-expense", AddExpenseHandler(db))          // Create expense
	gated.GET("/dashboard", DashboardHandler(db))              // List + aggregate
	gated.GET("/edit-expense/:id", EditExpenseFormHandler(db)) // Edit form
	gated.POST("/edit-expense/:id", EditExpenseHandler(db))    // Apply edit
	gated.GET("/delete-expense/:id", DeleteExpenseHandler(db)) // Delete
	gated.POST("/update-budget", UpdateBudgetHandler(db))      // Set budget
}
