package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"nexo/internal/models"
	"nexo/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type stubCompleter struct {
	gotSystem string
	gotUser   string
	reply     string
	err       error
}

func (s *stubCompleter) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	s.gotSystem = systemPrompt
	s.gotUser = userPrompt
	return s.reply, s.err
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

func TestGenerateDescription(t *testing.T) {
	member := &models.Member{
		Name:      "Maria Silva",
		Company:   "Silva Holdings",
		Sector:    "Tecnologia",
		Title:     "CEO",
		Expertise: models.Strings{"M&A", "SaaS"},
	}
	member.ID = 1

	t.Run("persists the generated bio", func(t *testing.T) {
		repo := new(mockMemberRepo)
		repo.On("GetByID", uint(1)).Return(member, nil)
		repo.On("Update", mock.MatchedBy(func(m *models.Member) bool {
			return m.Description == "uma bio gerada"
		})).Return(nil)

		completer := &stubCompleter{reply: "  uma bio gerada\n"}
		svc := NewService(completer, repo)

		description, err := svc.GenerateDescription(context.Background(), 1)

		assert.NoError(t, err)
		assert.Equal(t, "uma bio gerada", description)
		assert.Contains(t, completer.gotUser, "Maria Silva")
		assert.Contains(t, completer.gotUser, "Silva Holdings")
		assert.Contains(t, completer.gotUser, "M&A, SaaS")
		assert.Contains(t, completer.gotUser, "Quem sou eu")
		repo.AssertExpectations(t)
	})

	t.Run("unknown member", func(t *testing.T) {
		repo := new(mockMemberRepo)
		repo.On("GetByID", uint(9)).Return(nil, repositories.ErrMemberNotFound)

		svc := NewService(&stubCompleter{}, repo)
		_, err := svc.GenerateDescription(context.Background(), 9)
		assert.ErrorIs(t, err, ErrMemberNotFound)
	})

	t.Run("provider failure leaves the profile untouched", func(t *testing.T) {
		repo := new(mockMemberRepo)
		repo.On("GetByID", uint(1)).Return(member, nil)

		svc := NewService(&stubCompleter{err: errors.New("provider down")}, repo)
		_, err := svc.GenerateDescription(context.Background(), 1)

		assert.Error(t, err)
		repo.AssertNotCalled(t, "Update", mock.Anything)
	})
}

func TestClientComplete(t *testing.T) {
	t.Run("sends the prompts and returns the completion", func(t *testing.T) {
		var gotReq chatRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

			json.NewEncoder(w).Encode(map[string]interface{}{
				"choices": []map[string]interface{}{
					{"message": map[string]string{"content": "generated text"}},
				},
			})
		}))
		defer server.Close()

		client := NewClient("test-key", server.URL)
		got, err := client.Complete(context.Background(), "system says", "user asks")

		assert.NoError(t, err)
		assert.Equal(t, "generated text", got)
		assert.Equal(t, model, gotReq.Model)
		assert.Equal(t, maxTokens, gotReq.MaxTokens)
		assert.Len(t, gotReq.Messages, 2)
		assert.Equal(t, "system", gotReq.Messages[0].Role)
		assert.Equal(t, "user asks", gotReq.Messages[1].Content)
	})

	t.Run("surfaces API errors without retrying client faults", func(t *testing.T) {
		var calls int
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"error": map[string]string{"message": "bad prompt", "type": "invalid_request_error"},
			})
		}))
		defer server.Close()

		client := NewClient("test-key", server.URL)
		_, err := client.Complete(context.Background(), "s", "u")

		assert.ErrorContains(t, err, "bad prompt")
		assert.Equal(t, 1, calls)
	})

	t.Run("missing API key", func(t *testing.T) {
		client := NewClient("", "")
		_, err := client.Complete(context.Background(), "s", "u")
		assert.Error(t, err)
	})
}
