// Package message implements the member-to-member messaging store.
package message

import (
	"errors"
	"time"

	"nexo/internal/models"
	"nexo/internal/repositories"
	"nexo/internal/validation"
)

// Service errors
var (
	ErrNotFound      = errors.New("message not found")
	ErrNotReceiver   = errors.New("only the receiver may mark a message read")
	ErrSelfMessaging = errors.New("cannot send a message to yourself")
	ErrUnknownMember = errors.New("receiver not found")
)

type Service interface {
	Send(senderID uint, input *models.SendMessageInput) (*models.Message, error)
	Conversation(callerID, otherID uint) ([]models.Message, error)
	MarkRead(messageID, callerID uint) (*models.Message, error)
	UnreadCount(memberID uint) (int64, error)
}

type service struct {
	messageRepo repositories.MessageRepository
	memberRepo  repositories.MemberRepository
}

func NewService(messageRepo repositories.MessageRepository, memberRepo repositories.MemberRepository) Service {
	return &service{
		messageRepo: messageRepo,
		memberRepo:  memberRepo,
	}
}

// Send appends a new message with status sent. Content is immutable
// after this point.
func (s *service) Send(senderID uint, input *models.SendMessageInput) (*models.Message, error) {
	v := validation.New()
	v.Message(input)
	if !v.Valid() {
		return nil, errors.New(v.First())
	}

	if input.ReceiverID == senderID {
		return nil, ErrSelfMessaging
	}

	if _, err := s.memberRepo.GetByID(input.ReceiverID); err != nil {
		return nil, ErrUnknownMember
	}

	message := &models.Message{
		SenderID:   senderID,
		ReceiverID: input.ReceiverID,
		Content:    input.Content,
		Status:     models.MessageSent,
	}

	if err := s.messageRepo.Create(message); err != nil {
		return nil, err
	}

	return message, nil
}

func (s *service) Conversation(callerID, otherID uint) ([]models.Message, error) {
	return s.messageRepo.Conversation(callerID, otherID)
}

// MarkRead flips a message to read and stamps read_at. Only the
// receiver may do this; marking an already-read message is a no-op.
func (s *service) MarkRead(messageID, callerID uint) (*models.Message, error) {
	message, err := s.messageRepo.GetByID(messageID)
	if err != nil {
		if errors.Is(err, repositories.ErrMessageNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if message.ReceiverID != callerID {
		return nil, ErrNotReceiver
	}

	if message.Status == models.MessageRead {
		return message, nil
	}

	now := time.Now()
	message.Status = models.MessageRead
	message.ReadAt = &now

	if err := s.messageRepo.Update(message); err != nil {
		return nil, err
	}

	return message, nil
}

func (s *service) UnreadCount(memberID uint) (int64, error) {
	return s.messageRepo.UnreadCount(memberID)
}
