package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/preskool/school/internal/app/models"
	"github.com/preskool/school/internal/pkg/apperrors"
)

// MessageRepository handles database operations for inbox messages
type MessageRepository struct {
	db *pgxpool.Pool
}

// NewMessageRepository creates a new message repository
func NewMessageRepository(db *pgxpool.Pool) *MessageRepository {
	return &MessageRepository{
		db: db,
	}
}

// Create creates a new message
func (r *MessageRepository) Create(ctx context.Context, message *models.Message) error {
	query := `
		INSERT INTO messages (sender_id, recipient_id, subject, body)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		message.SenderID, message.RecipientID, message.Subject, message.Body,
	).Scan(&message.ID, &message.CreatedAt)
	if err != nil {
		return err
	}

	return nil
}

// GetInbox retrieves a recipient's messages with sender details, newest first
func (r *MessageRepository) GetInbox(ctx context.Context, recipientID int64) ([]*models.Message, error) {
	query := `
		SELECT m.id, m.sender_id, m.recipient_id, m.subject, m.body, m.is_read, m.is_starred, m.created_at,
		       u.id, u.email, u.first_name, u.last_name, u.role_type, u.is_active, u.created_at, u.updated_at
		FROM messages m
		JOIN users u ON u.id = m.sender_id
		WHERE m.recipient_id = $1
		ORDER BY m.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, recipientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*models.Message
	for rows.Next() {
		var message models.Message
		var sender models.User
		if err := rows.Scan(
			&message.ID,
			&message.SenderID,
			&message.RecipientID,
			&message.Subject,
			&message.Body,
			&message.IsRead,
			&message.IsStarred,
			&message.CreatedAt,
			&sender.ID,
			&sender.Email,
			&sender.FirstName,
			&sender.LastName,
			&sender.Role,
			&sender.IsActive,
			&sender.CreatedAt,
			&sender.UpdatedAt,
		); err != nil {
			return nil, err
		}
		message.Sender = &sender
		messages = append(messages, &message)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return messages, nil
}

// CountUnread counts a recipient's unread messages
func (r *MessageRepository) CountUnread(ctx context.Context, recipientID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM messages WHERE recipient_id = $1 AND is_read = FALSE`,
		recipientID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting unread messages: %w", err)
	}

	return count, nil
}

// GetByID retrieves a message by ID; returns (nil, nil) when absent
func (r *MessageRepository) GetByID(ctx context.Context, id int64) (*models.Message, error) {
	query := `
		SELECT id, sender_id, recipient_id, subject, body, is_read, is_starred, created_at
		FROM messages
		WHERE id = $1
	`

	var message models.Message
	err := r.db.QueryRow(ctx, query, id).Scan(
		&message.ID,
		&message.SenderID,
		&message.RecipientID,
		&message.Subject,
		&message.Body,
		&message.IsRead,
		&message.IsStarred,
		&message.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving message: %w", err)
	}

	return &message, nil
}

// MarkRead marks a recipient's message as read; scoping to the recipient
// keeps one user from touching another's inbox.
func (r *MessageRepository) MarkRead(ctx context.Context, id, recipientID int64) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE messages SET is_read = TRUE
		WHERE id = $1 AND recipient_id = $2`,
		id, recipientID)
	if err != nil {
		return fmt.Errorf("error marking message read: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrMessageNotFound
	}

	return nil
}

// ToggleStar flips the starred flag on a recipient's message
func (r *MessageRepository) ToggleStar(ctx context.Context, id, recipientID int64) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE messages SET is_starred = NOT is_starred
		WHERE id = $1 AND recipient_id = $2`,
		id, recipientID)
	if err != nil {
		return fmt.Errorf("error toggling message star: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrMessageNotFound
	}

	return nil
}
