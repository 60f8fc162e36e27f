package models

import (
	"time"

	"github.com/google/uuid"
)

// Notification represents a user-facing notification. IDs are opaque UUIDs.
type Notification struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	Message   string    `json:"message" db:"message"`
	IsRead    bool      `json:"isRead" db:"is_read"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
