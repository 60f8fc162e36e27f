package models

import "time"

// Message represents an inbox message between two users. This replaces the
// hardcoded inbox samples of the legacy screens with a persisted store.
type Message struct {
	ID          int64     `json:"id" db:"id"`
	SenderID    int64     `json:"senderId" db:"sender_id"`
	RecipientID int64     `json:"recipientId" db:"recipient_id"`
	Subject     string    `json:"subject" db:"subject"`
	Body        string    `json:"body" db:"body"`
	IsRead      bool      `json:"isRead" db:"is_read"`
	IsStarred   bool      `json:"isStarred" db:"is_starred"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	Sender      *User     `json:"sender,omitempty"`
}
