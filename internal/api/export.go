package api

import (
	"encoding/csv" // CSV serialization with standard quoting
	"io"           // Writer interface for the CSV body
	"net/http"     // HTTP status codes
	"strconv"      // Amount formatting
	"time"         // Month boundaries and date formatting

	"expensetracker/internal/domain"  // Importing domain models
	"expensetracker/internal/session" // Session resolution for the ungated route

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// WriteExpensesCSV serializes expenses as CSV: a header row then
// title, amount, category, date per record
func WriteExpensesCSV(w io.Writer, expenses []domain.Expense) error {
	cw := csv.NewWriter(w) // Standard comma-separated escaping
	if err := cw.Write([]string{"title", "amount", "category", "date"}); err != nil {
		return err // Return error if the header write fails
	}
	for _, e := range expenses {
		row := []string{
			e.Title,                                      // Expense title
			strconv.FormatFloat(e.Amount, 'f', -1, 64),   // Amount without trailing zeros
			e.Category,                                   // Category label
			e.Date.Format(time.RFC3339),                  // Full timestamp
		}
		if err := cw.Write(row); err != nil {
			return err // Return error if a row write fails
		}
	}
	cw.Flush()        // Flush buffered rows
	return cw.Error() // Surface any deferred write error
}

// DownloadCSVHandler exports the session user's current-month expenses as
// a CSV attachment. The route is not behind the session guard: without a
// resolvable session the user id is zero and the export is empty.
func DownloadCSVHandler(db *gorm.DB, store session.Store, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var userID uint // Zero when no session resolves
		// Best-effort session resolution from the cookie
		if token, err := c.Cookie(session.CookieName); err == nil {
			if sid, err := session.DecodeCookie(token, secret); err == nil {
				if uid, ok, err := store.Get(c.Request.Context(), sid); err == nil && ok {
					userID = uid
				}
			}
		}
		// Independent current-month query, not reusing dashboard filters
		start, end := MonthWindow(time.Now())
		var expenses []domain.Expense
		if err := db.Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
			Find(&expenses).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": userID,      // Resolved user, possibly zero
				"error":   err.Error(), // Error message
			}).Error("Failed to export CSV")
			c.String(http.StatusInternalServerError, "Error generating CSV")
			return
		}
		// CSV attachment headers
		c.Header("Content-Type", "text/csv")
		c.Header("Content-Disposition", `attachment; filename=monthly-expenses.csv`)
		c.Status(http.StatusOK)
		if err := WriteExpensesCSV(c.Writer, expenses); err != nil {
			// Headers are already out, log the truncated response
			logrus.WithFields(logrus.Fields{
				"user_id": userID,      // Resolved user
				"error":   err.Error(), // Error message
			}).Error("Failed to write CSV body")
		}
	}
}
