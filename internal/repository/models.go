package repository

import "time"

type User struct {
	ID           string    `gorm:"primaryKey;autoIncrement:false"`
	Username     string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	CreatedAt    time.Time `gorm:"not null"`
}

type Expense struct {
	ID        string    `gorm:"primaryKey;autoIncrement:false"`
	Amount    float64   `gorm:"not null"`
	Category  string    `gorm:"type:varchar(32);not null"`
	UserID    string    `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"not null"`
	Month     int       `gorm:"not null"` // denormalized from CreatedAt
	Year      int       `gorm:"not null"` // denormalized from CreatedAt
}

// Budget is provisioned in the schema but has no lifecycle: no endpoint
// creates, updates or reads it.
type Budget struct {
	ID     string  `gorm:"primaryKey;autoIncrement:false"`
	Budget float64 `gorm:"not null"`
	Spent  float64 `gorm:"not null;default:0"`
}
