package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/preskool/school/internal/app/models"
	"github.com/preskool/school/internal/pkg/logger"
)

// NotificationStore is the notification persistence surface the service needs.
type NotificationStore interface {
	Create(ctx context.Context, notification *models.Notification) error
	GetByUserID(ctx context.Context, userID int64) ([]*models.Notification, error)
	MarkAllRead(ctx context.Context, userID int64) (int64, error)
	DeleteAllForUser(ctx context.Context, userID int64) (int64, error)
}

// NotificationService manages a user's notification feed
type NotificationService struct {
	notificationStore NotificationStore
}

// NewNotificationService creates a new notification service
func NewNotificationService(notificationStore NotificationStore) *NotificationService {
	return &NotificationService{
		notificationStore: notificationStore,
	}
}

// List returns the caller's notifications, newest first
func (s *NotificationService) List(ctx context.Context, userID int64) ([]*models.Notification, error) {
	notifications, err := s.notificationStore.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

// Notify creates a notification for a user
func (s *NotificationService) Notify(ctx context.Context, userID int64, message string) (*models.Notification, error) {
	notification := &models.Notification{
		ID:      uuid.New(),
		UserID:  userID,
		Message: message,
	}

	if err := s.notificationStore.Create(ctx, notification); err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}

	return notification, nil
}

// MarkAllRead marks every unread notification of the caller as read. Calling
// it with nothing unread succeeds and changes nothing.
func (s *NotificationService) MarkAllRead(ctx context.Context, userID int64) error {
	affected, err := s.notificationStore.MarkAllRead(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}

	if affected > 0 {
		logger.Debug().Int64("userId", userID).Int64("affected", affected).Msg("Notifications marked read")
	}
	return nil
}

// ClearAll removes every notification of the caller. Clearing an empty feed
// succeeds.
func (s *NotificationService) ClearAll(ctx context.Context, userID int64) error {
	affected, err := s.notificationStore.DeleteAllForUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to clear notifications: %w", err)
	}

	if affected > 0 {
		logger.Debug().Int64("userId", userID).Int64("affected", affected).Msg("Notifications cleared")
	}
	return nil
}
