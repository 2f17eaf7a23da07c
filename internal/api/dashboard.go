package api

import (
	"net/http" // HTTP status codes
	"time"     // Month boundaries

	"expensetracker/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// MonthWindow returns the calendar-month boundaries around now in local
// time: first moment of the 1st and last moment of the last day
func MonthWindow(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()) // First day, midnight
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)                        // Last moment of the last day
	return start, end
}

// TotalWithin sums the amounts of the expenses whose date falls inside
// the inclusive window
func TotalWithin(expenses []domain.Expense, start, end time.Time) float64 {
	var total float64
	for _, e := range expenses {
		if !e.Date.Before(start) && !e.Date.After(end) {
			total += e.Amount
		}
	}
	return total
}

// CategoryTotals sums amounts grouped by category over the whole slice
func CategoryTotals(expenses []domain.Expense) map[string]float64 {
	totals := make(map[string]float64)
	for _, e := range expenses {
		totals[e.Category] += e.Amount
	}
	return totals
}

// HomeHandler renders the landing page
func HomeHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", gin.H{}) // Render the page
	}
}

// DashboardHandler builds the filtered, sorted expense list for the
// session user plus the monthly total and per-category totals
func DashboardHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("userID") // Session user
		var user domain.User          // Fetch user for budget and email
		if err := db.First(&user, userID).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": userID,      // Session user
				"error":   err.Error(), // Error message
			}).Error("Failed to load dashboard user")
			c.String(http.StatusInternalServerError, "Failed to load dashboard.")
			return
		}
		// Echoed filter and sort parameters
		params := DashboardParams{
			Category: c.Query("category"), // Category filter
			From:     c.Query("from"),     // Lower date bound
			To:       c.Query("to"),       // Upper date bound
			Search:   c.Query("search"),   // Substring search
			Sort:     c.Query("sort"),     // Sort key
		}
		// Base restriction to the session user, then the composed filter,
		// then a single ordered fetch of the whole filtered set
		q := db.Where("user_id = ?", userID)
		q = ApplyFilter(q, BuildExpenseFilter(params))
		var expenses []domain.Expense
		if err := q.Order(SortOrder(params.Sort)).Find(&expenses).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": userID,      // Session user
				"error":   err.Error(), // Error message
			}).Error("Failed to load dashboard expenses")
			c.String(http.StatusInternalServerError, "Failed to load dashboard.")
			return
		}
		// Monthly total over the already-filtered set. A date filter
		// excluding the current month therefore yields 0 here.
		start, end := MonthWindow(time.Now())
		totalThisMonth := TotalWithin(expenses, start, end)
		// Category totals over the same filtered set, all months
		categoryTotals := CategoryTotals(expenses)
		c.HTML(http.StatusOK, "dashboard.html", gin.H{
			"Expenses":       expenses,       // Full filtered, sorted list
			"TotalThisMonth": totalThisMonth, // Current-month total over the filtered set
			"BudgetLimit":    user.Budget,    // User's budget, defaulted at registration
			"CategoryTotals": categoryTotals, // Category to total mapping
			"UserEmail":      user.Email,     // Shown in the header
			"Category":       params.Category, // Echoed for form state
			"From":           params.From,     // Echoed for form state
			"To":             params.To,       // Echoed for form state
			"Search":         params.Search,   // Echoed for form state
			"Sort":           params.Sort,     // Echoed for form state
		})
	}
}
