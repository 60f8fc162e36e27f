package services

import (
	"context"
	"fmt"

	"github.com/preskool/school/internal/app/models"
	"github.com/preskool/school/internal/app/models/dto"
	"github.com/preskool/school/internal/pkg/apperrors"
	"github.com/preskool/school/internal/pkg/logger"
)

// MessageStore is the message persistence surface the service needs.
type MessageStore interface {
	Create(ctx context.Context, message *models.Message) error
	GetInbox(ctx context.Context, recipientID int64) ([]*models.Message, error)
	GetByID(ctx context.Context, id int64) (*models.Message, error)
	MarkRead(ctx context.Context, id, recipientID int64) error
	ToggleStar(ctx context.Context, id, recipientID int64) error
	CountUnread(ctx context.Context, recipientID int64) (int, error)
}

// RecipientGetter resolves a user record by ID.
type RecipientGetter interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// Notifier pushes an entry onto a user's notification feed.
type Notifier interface {
	Notify(ctx context.Context, userID int64, message string) (*models.Notification, error)
}

// MessageService manages the user-to-user inbox
type MessageService struct {
	messageStore MessageStore
	users        RecipientGetter
	notifier     Notifier
}

// NewMessageService creates a new message service
func NewMessageService(messageStore MessageStore, users RecipientGetter, notifier Notifier) *MessageService {
	return &MessageService{
		messageStore: messageStore,
		users:        users,
		notifier:     notifier,
	}
}

// Inbox returns the caller's inbox, newest first, with the unread count
func (s *MessageService) Inbox(ctx context.Context, userID int64, role models.RoleType) (*dto.InboxResponse, error) {
	messages, err := s.messageStore.GetInbox(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load inbox: %w", err)
	}

	unread, err := s.messageStore.CountUnread(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count unread messages: %w", err)
	}

	resp := &dto.InboxResponse{
		Messages:    make([]dto.MessageResponse, 0, len(messages)),
		UnreadCount: unread,
		UserRole:    string(role),
	}
	for _, m := range messages {
		resp.Messages = append(resp.Messages, toMessageResponse(m))
	}
	return resp, nil
}

// Send delivers a message to another user. The recipient must exist and be
// active.
func (s *MessageService) Send(ctx context.Context, senderID int64, req dto.SendMessageRequest) (*dto.MessageResponse, error) {
	recipient, err := s.users.GetByID(ctx, req.RecipientID)
	if err != nil {
		return nil, fmt.Errorf("failed to check recipient: %w", err)
	}
	if recipient == nil || !recipient.IsActive {
		return nil, apperrors.ErrRecipientInvalid
	}

	message := &models.Message{
		SenderID:    senderID,
		RecipientID: req.RecipientID,
		Subject:     req.Subject,
		Body:        req.Body,
	}

	if err := s.messageStore.Create(ctx, message); err != nil {
		return nil, fmt.Errorf("failed to send message: %w", err)
	}

	// The message is delivered at this point; a feed failure only loses the
	// hint, so it is logged and not returned.
	if _, err := s.notifier.Notify(ctx, req.RecipientID, "New message: "+req.Subject); err != nil {
		logger.Warn().Err(err).Int64("recipientId", req.RecipientID).Msg("Failed to notify message recipient")
	}

	resp := toMessageResponse(message)
	return &resp, nil
}

// MarkRead marks one of the caller's messages as read
func (s *MessageService) MarkRead(ctx context.Context, id, userID int64) error {
	return s.messageStore.MarkRead(ctx, id, userID)
}

// ToggleStar flips the starred flag on one of the caller's messages
func (s *MessageService) ToggleStar(ctx context.Context, id, userID int64) error {
	return s.messageStore.ToggleStar(ctx, id, userID)
}

func toMessageResponse(m *models.Message) dto.MessageResponse {
	resp := dto.MessageResponse{
		ID:        m.ID,
		SenderID:  m.SenderID,
		Subject:   m.Subject,
		Body:      m.Body,
		IsRead:    m.IsRead,
		IsStarred: m.IsStarred,
		CreatedAt: m.CreatedAt,
	}
	if m.Sender != nil {
		resp.SenderName = m.Sender.FullName()
		resp.SenderRole = string(m.Sender.Role)
	}
	return resp
}
