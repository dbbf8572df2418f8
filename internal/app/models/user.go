package models

import (
	"time"
)

// User defines an admin account based on the 'users' table
type User struct {
	ID          int64     `json:"id" db:"id" example:"1"`
	Name        string    `json:"name" db:"name" example:"Muhsin"`
	Username    string    `json:"username" db:"username" example:"dpt"`
	PhoneNumber string    `json:"phone_number" db:"phone_number" example:"9876543210"`
	Password    string    `json:"-" db:"password"` // bcrypt hash, or legacy plaintext before migration
	Role        Role      `json:"role" db:"role" example:"admin"`
	CreatedAt   time.Time `json:"created_at" db:"created_at" example:"2026-03-01T10:00:00Z"`
}
