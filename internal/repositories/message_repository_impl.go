package repositories

import (
	"errors"

	"nexo/internal/models"

	"gorm.io/gorm"
)

type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new instance of MessageRepository
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(message *models.Message) error {
	if err := r.db.Create(message).Error; err != nil {
		return ErrDatabaseOperation
	}
	return nil
}

func (r *messageRepository) GetByID(id uint) (*models.Message, error) {
	var message models.Message
	if err := r.db.First(&message, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMessageNotFound
		}
		return nil, ErrDatabaseOperation
	}
	return &message, nil
}

func (r *messageRepository) Conversation(memberA, memberB uint) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			memberA, memberB, memberB, memberA).
		Order("created_at ASC").
		Find(&messages).Error
	if err != nil {
		return nil, ErrDatabaseOperation
	}
	return messages, nil
}

func (r *messageRepository) Update(message *models.Message) error {
	if err := r.db.Save(message).Error; err != nil {
		return ErrDatabaseOperation
	}
	return nil
}

func (r *messageRepository) UnreadCount(receiverID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Message{}).
		Where("receiver_id = ? AND status <> ?", receiverID, models.MessageRead).
		Count(&count).Error
	if err != nil {
		return 0, ErrDatabaseOperation
	}
	return count, nil
}
