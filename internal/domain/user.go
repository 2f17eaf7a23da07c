package domain

// User Model
type User struct {
	ID           uint    `gorm:"primaryKey"`             // Primary key
	Email        string  `gorm:"unique;not null"`        // Unique login email
	PasswordHash string  `gorm:"not null"`               // Bcrypt hash, never the raw password
	Budget       float64 `gorm:"not null;default:20000"` // Monthly budget limit
}
