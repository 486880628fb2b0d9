package valuerequest

import (
	"testing"

	"nexo/internal/models"
	"nexo/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockRequestRepo struct {
	mock.Mock
}

func (m *mockRequestRepo) Create(request *models.ValueRequest) error {
	return m.Called(request).Error(0)
}

func (m *mockRequestRepo) GetByID(id uint) (*models.ValueRequest, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ValueRequest), args.Error(1)
}

func (m *mockRequestRepo) HasPending(memberID uint) (bool, error) {
	args := m.Called(memberID)
	return args.Bool(0), args.Error(1)
}

func (m *mockRequestRepo) ListAll() ([]models.ValueRequestView, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ValueRequestView), args.Error(1)
}

func (m *mockRequestRepo) ListPending() ([]models.ValueRequestView, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ValueRequestView), args.Error(1)
}

func (m *mockRequestRepo) ListByMember(memberID uint) ([]models.ValueRequest, error) {
	args := m.Called(memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ValueRequest), args.Error(1)
}

func (m *mockRequestRepo) Update(request *models.ValueRequest) error {
	return m.Called(request).Error(0)
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

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
func boolPtr(v bool) *bool        { return &v }

func pendingRequest(id, memberID uint, requestType string) *models.ValueRequest {
	r := &models.ValueRequest{
		MemberID:         memberID,
		RequestType:      requestType,
		CurrentDealCount: 3,
		CurrentDealValue: 500_000,
		Justification:    "closed new deals this quarter",
		Status:           models.StatusPending,
	}
	r.ID = id
	if r.WantsDealCount() {
		r.RequestedDealCount = intPtr(8)
	}
	if r.WantsDealValue() {
		r.RequestedDealValue = floatPtr(1_500_000)
	}
	return r
}

func TestCreate(t *testing.T) {
	member := &models.Member{NumberOfDeals: 3, TotalDealValue: 500_000}
	member.ID = 1

	t.Run("snapshots current totals", func(t *testing.T) {
		requestRepo := new(mockRequestRepo)
		memberRepo := new(mockMemberRepo)
		memberRepo.On("GetByID", uint(1)).Return(member, nil)
		requestRepo.On("HasPending", uint(1)).Return(false, nil)
		requestRepo.On("Create", mock.Anything).Return(nil)

		svc := NewService(requestRepo, memberRepo)
		request, err := svc.Create(1, &models.CreateValueRequestInput{
			RequestType:        models.RequestTypeBoth,
			RequestedDealCount: intPtr(8),
			RequestedDealValue: floatPtr(1_500_000),
			Justification:      "closed new deals this quarter",
		})

		assert.NoError(t, err)
		assert.Equal(t, models.StatusPending, request.Status)
		assert.Equal(t, 3, request.CurrentDealCount)
		assert.Equal(t, float64(500_000), request.CurrentDealValue)
		assert.Equal(t, 8, *request.RequestedDealCount)
		assert.Equal(t, float64(1_500_000), *request.RequestedDealValue)
		requestRepo.AssertExpectations(t)
	})

	t.Run("rejects a second pending request", func(t *testing.T) {
		requestRepo := new(mockRequestRepo)
		memberRepo := new(mockMemberRepo)
		memberRepo.On("GetByID", uint(1)).Return(member, nil)
		requestRepo.On("HasPending", uint(1)).Return(true, nil)

		svc := NewService(requestRepo, memberRepo)
		_, err := svc.Create(1, &models.CreateValueRequestInput{
			RequestType:        models.RequestTypeDealCount,
			RequestedDealCount: intPtr(8),
			Justification:      "more deals",
		})

		assert.ErrorIs(t, err, ErrDuplicatePending)
		requestRepo.AssertNotCalled(t, "Create", mock.Anything)
	})

	t.Run("ignores the requested field the type does not cover", func(t *testing.T) {
		requestRepo := new(mockRequestRepo)
		memberRepo := new(mockMemberRepo)
		memberRepo.On("GetByID", uint(1)).Return(member, nil)
		requestRepo.On("HasPending", uint(1)).Return(false, nil)
		requestRepo.On("Create", mock.Anything).Return(nil)

		svc := NewService(requestRepo, memberRepo)
		request, err := svc.Create(1, &models.CreateValueRequestInput{
			RequestType:        models.RequestTypeDealCount,
			RequestedDealCount: intPtr(8),
			RequestedDealValue: floatPtr(999_999),
			Justification:      "only the count should change",
		})

		assert.NoError(t, err)
		assert.Equal(t, 8, *request.RequestedDealCount)
		assert.Nil(t, request.RequestedDealValue)
	})

	tests := []struct {
		name  string
		input models.CreateValueRequestInput
	}{
		{
			name: "unknown request type",
			input: models.CreateValueRequestInput{
				RequestType:   "deal_everything",
				Justification: "why not",
			},
		},
		{
			name: "missing requested count",
			input: models.CreateValueRequestInput{
				RequestType:   models.RequestTypeDealCount,
				Justification: "forgot the number",
			},
		},
		{
			name: "missing requested value",
			input: models.CreateValueRequestInput{
				RequestType:   models.RequestTypeDealValue,
				Justification: "forgot the value",
			},
		},
		{
			name: "negative requested count",
			input: models.CreateValueRequestInput{
				RequestType:        models.RequestTypeDealCount,
				RequestedDealCount: intPtr(-1),
				Justification:      "negative deals",
			},
		},
		{
			name: "missing justification",
			input: models.CreateValueRequestInput{
				RequestType:        models.RequestTypeDealCount,
				RequestedDealCount: intPtr(5),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requestRepo := new(mockRequestRepo)
			memberRepo := new(mockMemberRepo)

			svc := NewService(requestRepo, memberRepo)
			_, err := svc.Create(1, &tt.input)

			assert.Error(t, err)
			requestRepo.AssertNotCalled(t, "Create", mock.Anything)
		})
	}
}

func TestVerifyApprove(t *testing.T) {
	tests := []struct {
		name        string
		requestType string
		wantCount   *int
		wantValue   *float64
	}{
		{
			name:        "deal_count overwrites only the count",
			requestType: models.RequestTypeDealCount,
			wantCount:   intPtr(8),
		},
		{
			name:        "deal_value overwrites only the value",
			requestType: models.RequestTypeDealValue,
			wantValue:   floatPtr(1_500_000),
		},
		{
			name:        "both overwrites count and value",
			requestType: models.RequestTypeBoth,
			wantCount:   intPtr(8),
			wantValue:   floatPtr(1_500_000),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requestRepo := new(mockRequestRepo)
			memberRepo := new(mockMemberRepo)
			request := pendingRequest(10, 1, tt.requestType)

			requestRepo.On("GetByID", uint(10)).Return(request, nil)
			memberRepo.On("ApplyDealTotals", uint(1), tt.wantCount, tt.wantValue).Return(nil)
			requestRepo.On("Update", mock.Anything).Return(nil)

			svc := NewService(requestRepo, memberRepo)
			verified, err := svc.Verify(10, 99, &models.VerifyValueRequestInput{
				Verified:   boolPtr(true),
				AdminNotes: "looks right",
			})

			assert.NoError(t, err)
			assert.Equal(t, models.StatusApproved, verified.Status)
			assert.True(t, verified.Verified)
			assert.Equal(t, "looks right", verified.AdminNotes)
			assert.Equal(t, uint(99), *verified.VerifiedBy)
			assert.NotNil(t, verified.VerifiedAt)
			memberRepo.AssertExpectations(t)
			requestRepo.AssertExpectations(t)
		})
	}
}

func TestVerifyReject(t *testing.T) {
	requestRepo := new(mockRequestRepo)
	memberRepo := new(mockMemberRepo)
	request := pendingRequest(10, 1, models.RequestTypeBoth)

	requestRepo.On("GetByID", uint(10)).Return(request, nil)
	requestRepo.On("Update", mock.Anything).Return(nil)

	svc := NewService(requestRepo, memberRepo)
	verified, err := svc.Verify(10, 99, &models.VerifyValueRequestInput{
		Verified:   boolPtr(false),
		AdminNotes: "numbers do not add up",
	})

	assert.NoError(t, err)
	assert.Equal(t, models.StatusRejected, verified.Status)
	assert.False(t, verified.Verified)
	// Rejection never touches the member profile.
	memberRepo.AssertNotCalled(t, "ApplyDealTotals", mock.Anything, mock.Anything, mock.Anything)
}

func TestVerifyErrors(t *testing.T) {
	t.Run("missing decision", func(t *testing.T) {
		svc := NewService(new(mockRequestRepo), new(mockMemberRepo))
		_, err := svc.Verify(10, 99, &models.VerifyValueRequestInput{})
		assert.ErrorIs(t, err, ErrInvalidRequest)
	})

	t.Run("unknown request", func(t *testing.T) {
		requestRepo := new(mockRequestRepo)
		requestRepo.On("GetByID", uint(10)).Return(nil, repositories.ErrRequestNotFound)

		svc := NewService(requestRepo, new(mockMemberRepo))
		_, err := svc.Verify(10, 99, &models.VerifyValueRequestInput{Verified: boolPtr(true)})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	for _, status := range []string{models.StatusApproved, models.StatusRejected} {
		t.Run("already "+status, func(t *testing.T) {
			requestRepo := new(mockRequestRepo)
			memberRepo := new(mockMemberRepo)
			request := pendingRequest(10, 1, models.RequestTypeBoth)
			request.Status = status
			requestRepo.On("GetByID", uint(10)).Return(request, nil)

			svc := NewService(requestRepo, memberRepo)
			_, err := svc.Verify(10, 99, &models.VerifyValueRequestInput{Verified: boolPtr(true)})

			assert.ErrorIs(t, err, ErrAlreadyProcessed)
			memberRepo.AssertNotCalled(t, "ApplyDealTotals", mock.Anything, mock.Anything, mock.Anything)
			requestRepo.AssertNotCalled(t, "Update", mock.Anything)
		})
	}
}

func TestGetDetails(t *testing.T) {
	tests := []struct {
		name       string
		callerID   uint
		callerRole string
		wantErr    error
	}{
		{name: "owner may view", callerID: 1, callerRole: models.RoleMember},
		{name: "admin may view", callerID: 99, callerRole: models.RoleAdmin},
		{name: "other member denied", callerID: 2, callerRole: models.RoleMember, wantErr: ErrAccessDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requestRepo := new(mockRequestRepo)
			request := pendingRequest(10, 1, models.RequestTypeBoth)
			requestRepo.On("GetByID", uint(10)).Return(request, nil)

			svc := NewService(requestRepo, new(mockMemberRepo))
			got, err := svc.GetDetails(10, tt.callerID, tt.callerRole)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, request, got)
			}
		})
	}

	t.Run("unknown request", func(t *testing.T) {
		requestRepo := new(mockRequestRepo)
		requestRepo.On("GetByID", uint(10)).Return(nil, repositories.ErrRequestNotFound)

		svc := NewService(requestRepo, new(mockMemberRepo))
		_, err := svc.GetDetails(10, 1, models.RoleAdmin)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
