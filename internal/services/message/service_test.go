package message

import (
	"testing"
	"time"

	"nexo/internal/models"
	"nexo/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockMessageRepo struct {
	mock.Mock
}

func (m *mockMessageRepo) Create(message *models.Message) error {
	return m.Called(message).Error(0)
}

func (m *mockMessageRepo) GetByID(id uint) (*models.Message, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Message), args.Error(1)
}

func (m *mockMessageRepo) Conversation(memberA, memberB uint) ([]models.Message, error) {
	args := m.Called(memberA, memberB)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Message), args.Error(1)
}

func (m *mockMessageRepo) Update(message *models.Message) error {
	return m.Called(message).Error(0)
}

func (m *mockMessageRepo) UnreadCount(receiverID uint) (int64, error) {
	args := m.Called(receiverID)
	return args.Get(0).(int64), args.Error(1)
}

type mockMemberRepo struct {
	mock.Mock
}

func (m *mockMemberRepo) Create(member *models.Member) error {
	return m.Called(member).Error(0)
}

func (m *mockMemberRepo) GetByID(id uint) (*models.Member, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Member), args.Error(1)
}

func (m *mockMemberRepo) GetByEmail(email string) (*models.Member, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Member), args.Error(1)
}

func (m *mockMemberRepo) GetGuest() (*models.Member, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Member), args.Error(1)
}

func (m *mockMemberRepo) Update(member *models.Member) error {
	return m.Called(member).Error(0)
}

func (m *mockMemberRepo) Delete(id uint) error {
	return m.Called(id).Error(0)
}

func (m *mockMemberRepo) List(offset, limit int) ([]*models.Member, int64, error) {
	args := m.Called(offset, limit)
	var members []*models.Member
	if args.Get(0) != nil {
		members = args.Get(0).([]*models.Member)
	}
	return members, args.Get(1).(int64), args.Error(2)
}

func (m *mockMemberRepo) Search(query string) ([]*models.Member, error) {
	args := m.Called(query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Member), args.Error(1)
}

func (m *mockMemberRepo) ListShowcase(sector string) ([]*models.Member, error) {
	args := m.Called(sector)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Member), args.Error(1)
}

func (m *mockMemberRepo) ListSectors() ([]string, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *mockMemberRepo) IncrementTokenVersion(memberID uint) error {
	return m.Called(memberID).Error(0)
}

func (m *mockMemberRepo) ApplyDealTotals(memberID uint, dealCount *int, dealValue *float64) error {
	return m.Called(memberID, dealCount, dealValue).Error(0)
}

func (m *mockMemberRepo) AppendDeal(memberID uint, deal models.Deal) error {
	return m.Called(memberID, deal).Error(0)
}

func (m *mockMemberRepo) MergeDeal(memberID uint, dealID string, fields map[string]interface{}) error {
	return m.Called(memberID, dealID, fields).Error(0)
}

func TestSend(t *testing.T) {
	t.Run("creates a sent message", func(t *testing.T) {
		messageRepo := new(mockMessageRepo)
		memberRepo := new(mockMemberRepo)

		receiver := &models.Member{}
		receiver.ID = 2
		memberRepo.On("GetByID", uint(2)).Return(receiver, nil)
		messageRepo.On("Create", mock.Anything).Return(nil)

		svc := NewService(messageRepo, memberRepo)
		msg, err := svc.Send(1, &models.SendMessageInput{
			ReceiverID: 2,
			Content:    "Oi, vamos conversar?",
		})

		assert.NoError(t, err)
		assert.Equal(t, uint(1), msg.SenderID)
		assert.Equal(t, uint(2), msg.ReceiverID)
		assert.Equal(t, models.MessageSent, msg.Status)
		assert.Nil(t, msg.ReadAt)
	})

	t.Run("no self-messaging", func(t *testing.T) {
		messageRepo := new(mockMessageRepo)

		svc := NewService(messageRepo, new(mockMemberRepo))
		_, err := svc.Send(1, &models.SendMessageInput{ReceiverID: 1, Content: "hello me"})

		assert.ErrorIs(t, err, ErrSelfMessaging)
		messageRepo.AssertNotCalled(t, "Create", mock.Anything)
	})

	t.Run("unknown receiver", func(t *testing.T) {
		messageRepo := new(mockMessageRepo)
		memberRepo := new(mockMemberRepo)
		memberRepo.On("GetByID", uint(9)).Return(nil, repositories.ErrMemberNotFound)

		svc := NewService(messageRepo, memberRepo)
		_, err := svc.Send(1, &models.SendMessageInput{ReceiverID: 9, Content: "anyone there?"})

		assert.ErrorIs(t, err, ErrUnknownMember)
	})

	t.Run("empty content", func(t *testing.T) {
		svc := NewService(new(mockMessageRepo), new(mockMemberRepo))
		_, err := svc.Send(1, &models.SendMessageInput{ReceiverID: 2})
		assert.Error(t, err)
	})
}

func TestMarkRead(t *testing.T) {
	newMessage := func() *models.Message {
		msg := &models.Message{
			SenderID:   1,
			ReceiverID: 2,
			Content:    "unread",
			Status:     models.MessageSent,
		}
		msg.ID = 7
		return msg
	}

	t.Run("receiver marks read", func(t *testing.T) {
		messageRepo := new(mockMessageRepo)
		messageRepo.On("GetByID", uint(7)).Return(newMessage(), nil)
		messageRepo.On("Update", mock.Anything).Return(nil)

		svc := NewService(messageRepo, new(mockMemberRepo))
		msg, err := svc.MarkRead(7, 2)

		assert.NoError(t, err)
		assert.Equal(t, models.MessageRead, msg.Status)
		assert.NotNil(t, msg.ReadAt)
	})

	t.Run("sender may not mark read", func(t *testing.T) {
		messageRepo := new(mockMessageRepo)
		messageRepo.On("GetByID", uint(7)).Return(newMessage(), nil)

		svc := NewService(messageRepo, new(mockMemberRepo))
		_, err := svc.MarkRead(7, 1)

		assert.ErrorIs(t, err, ErrNotReceiver)
		messageRepo.AssertNotCalled(t, "Update", mock.Anything)
	})

	t.Run("marking twice is a no-op", func(t *testing.T) {
		messageRepo := new(mockMessageRepo)
		readAt := time.Now().Add(-time.Hour)
		msg := newMessage()
		msg.Status = models.MessageRead
		msg.ReadAt = &readAt
		messageRepo.On("GetByID", uint(7)).Return(msg, nil)

		svc := NewService(messageRepo, new(mockMemberRepo))
		got, err := svc.MarkRead(7, 2)

		assert.NoError(t, err)
		assert.Equal(t, &readAt, got.ReadAt)
		messageRepo.AssertNotCalled(t, "Update", mock.Anything)
	})

	t.Run("unknown message", func(t *testing.T) {
		messageRepo := new(mockMessageRepo)
		messageRepo.On("GetByID", uint(9)).Return(nil, repositories.ErrMessageNotFound)

		svc := NewService(messageRepo, new(mockMemberRepo))
		_, err := svc.MarkRead(9, 2)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestUnreadCount(t *testing.T) {
	messageRepo := new(mockMessageRepo)
	messageRepo.On("UnreadCount", uint(2)).Return(int64(3), nil)

	svc := NewService(messageRepo, new(mockMemberRepo))
	count, err := svc.UnreadCount(2)

	assert.NoError(t, err)
	assert.Equal(t, int64(3), count)
}
