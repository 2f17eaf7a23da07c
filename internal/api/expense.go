package api

import (
	"net/http" // HTTP status codes
	"strconv"  // String conversion
	"time"     // Default expense date

	"expensetracker/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// AddExpenseFormHandler renders the add-expense form
func AddExpenseFormHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "add-expense.html", gin.H{}) // Render the form
	}
}

// AddExpenseHandler creates a new expense owned by the session user
func AddExpenseHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("userID")                       // Owning user from the session guard
		amount, _ := strconv.ParseFloat(c.PostForm("amount"), 64) // Amount, sign not validated
		expense := domain.Expense{
			Title:    c.PostForm("title"),    // Expense title
			Amount:   amount,                 // Spent amount
			Category: c.PostForm("category"), // Any category string is accepted
			UserID:   userID,                 // Assign current user
		}
		// Date defaults to now when the form leaves it empty
		if d, ok := parseDate(c.PostForm("date")); ok {
			expense.Date = d
		} else {
			expense.Date = time.Now()
		}
		// Attempt to create the expense in the database
		if err := db.Create(&expense).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": userID,      // Owning user
				"error":   err.Error(), // Error message
			}).Error("Failed to add expense")
			c.String(http.StatusInternalServerError, "Something went wrong.")
			return
		}
		// Success confirmation view
		c.HTML(http.StatusOK, "expense-added.html", gin.H{})
	}
}

// EditExpenseFormHandler loads an expense for the edit form pre-fill
func EditExpenseFormHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")        // Expense id from the path
		var expense domain.Expense // Expense to pre-fill the form with
		// The id stays a bound parameter, never inlined into the SQL
		if err := db.Where("id = ?", id).First(&expense).Error; err != nil {
			// Missing record gets an explicit 404 instead of a null render
			if err == gorm.ErrRecordNotFound {
				c.String(http.StatusNotFound, "Expense not found")
				return
			}
			logrus.WithFields(logrus.Fields{
				"expense_id": id,          // Requested expense
				"error":      err.Error(), // Error message
			}).Error("Failed to load expense for edit")
			c.String(http.StatusInternalServerError, "Error loading expense for edit.")
			return
		}
		c.HTML(http.StatusOK, "edit-expense.html", gin.H{
			"Expense": expense,                            // Record being edited
			"Date":    expense.Date.Format("2006-01-02"), // Pre-filled date input value
		})
	}
}

// EditExpenseHandler overwrites all four fields of an expense by id.
// Ownership is not checked, matching the current behavior.
func EditExpenseHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")                                       // Expense id from the path
		amount, _ := strconv.ParseFloat(c.PostForm("amount"), 64) // Amount, sign not validated
		updates := map[string]any{
			"title":    c.PostForm("title"),    // New title
			"amount":   amount,                 // New amount
			"category": c.PostForm("category"), // New category
		}
		// Only a parseable date overwrites the stored one
		if d, ok := parseDate(c.PostForm("date")); ok {
			updates["date"] = d
		}
		// Apply the update unconditionally by id
		if err := db.Model(&domain.Expense{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"expense_id": id,          // Target expense
				"error":      err.Error(), // Error message
			}).Error("Failed to update expense")
			c.String(http.StatusInternalServerError, "Error updating expense")
			return
		}
		c.Redirect(http.StatusFound, "/dashboard") // Back to the dashboard
	}
}

// DeleteExpenseHandler deletes an expense by id unconditionally.
// Deleting a missing id is a no-op; ownership is not checked.
func DeleteExpenseHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id") // Expense id from the path
		if err := db.Delete(&domain.Expense{}, "id = ?", id).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"expense_id": id,          // Target expense
				"error":      err.Error(), // Error message
			}).Error("Failed to delete expense")
			c.String(http.StatusInternalServerError, "Error deleting expense")
			return
		}
		c.Redirect(http.StatusFound, "/dashboard") // Back to the dashboard
	}
}

// UpdateBudgetHandler overwrites the session user's budget.
// The value is not validated, unparseable input stores 0.
func UpdateBudgetHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("userID")                             // Session user
		budget, _ := strconv.ParseFloat(c.PostForm("budget"), 64) // Negative values accepted as-is
		if err := db.Model(&domain.User{}).Where("id = ?", userID).Update("budget", budget).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": userID,      // Session user
				"error":   err.Error(), // Error message
			}).Error("Failed to update budget")
			c.String(http.StatusInternalServerError, "Failed to update budget.")
			return
		}
		c.Redirect(http.StatusFound, "/dashboard") // Back to the dashboard
	}
}
