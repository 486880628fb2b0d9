package repositories

import (
	"errors"

	"nexo/internal/models"
)

var ErrMessageNotFound = errors.New("message not found")

// MessageRepository defines message database operations.
// Messages are append-only; only status and read_at change after insert.
type MessageRepository interface {
	// Create inserts a new message
	Create(message *models.Message) error

	// GetByID retrieves a message by its ID
	GetByID(id uint) (*models.Message, error)

	// Conversation retrieves all messages between two members in both
	// directions, ordered by creation time ascending
	Conversation(memberA, memberB uint) ([]models.Message, error)

	// Update persists status/read_at changes
	Update(message *models.Message) error

	// UnreadCount counts unread messages addressed to a member
	UnreadCount(receiverID uint) (int64, error)
}
