package models

import "time"

// User represents a registered account. Users are immutable after
// creation; the only lifecycle transitions are insert and delete.
type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Not serialized
	CreatedAt    time.Time `json:"created_at"`
}
