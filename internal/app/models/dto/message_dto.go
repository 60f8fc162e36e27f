package dto

import "time"

// SendMessageRequest is the payload for sending an inbox message
type SendMessageRequest struct {
	RecipientID int64  `json:"recipientId" binding:"required,gt=0"`
	Subject     string `json:"subject" binding:"required,max=200"`
	Body        string `json:"body" binding:"required"`
}

// MessageResponse describes an inbox message on the wire
type MessageResponse struct {
	ID         int64     `json:"id"`
	SenderID   int64     `json:"senderId"`
	SenderName string    `json:"senderName"`
	SenderRole string    `json:"senderRole"`
	Subject    string    `json:"subject"`
	Body       string    `json:"body"`
	IsRead     bool      `json:"isRead"`
	IsStarred  bool      `json:"isStarred"`
	CreatedAt  time.Time `json:"createdAt"`
}

// InboxResponse is the inbox screen payload
type InboxResponse struct {
	Messages    []MessageResponse `json:"messages"`
	UnreadCount int               `json:"unreadCount"`
	UserRole    string            `json:"userRole"`
}
