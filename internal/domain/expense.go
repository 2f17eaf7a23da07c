package domain

import "time"

// Expense Model
type Expense struct {
	ID       uint      `gorm:"primaryKey"` // Primary key
	Title    string    // What the money was spent on
	Amount   float64   // Spent amount, sign not validated
	Category string    // Free-form category label
	Date     time.Time // Expense date, defaults to creation time
	UserID   uint      `gorm:"index;not null"` // Owning user
}
