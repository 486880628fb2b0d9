// Package valuerequest implements the deal-total verification workflow.
// A member proposes new absolute deal totals, an admin approves or
// rejects, and approval overwrites the member's recorded totals.
package valuerequest

import (
	"errors"
	"time"

	"nexo/internal/models"
	"nexo/internal/repositories"
	"nexo/internal/validation"
)

// Service errors
var (
	ErrInvalidRequest   = errors.New("invalid request")
	ErrDuplicatePending = errors.New("you already have a pending value request")
	ErrAlreadyProcessed = errors.New("request has already been processed")
	ErrAccessDenied     = errors.New("access denied")
	ErrNotFound         = errors.New("request not found")
)

type Service interface {
	Create(memberID uint, input *models.CreateValueRequestInput) (*models.ValueRequest, error)
	ListAll() ([]models.ValueRequestView, error)
	ListPending() ([]models.ValueRequestView, error)
	ListMine(memberID uint) ([]models.ValueRequest, error)
	GetDetails(requestID, callerID uint, callerRole string) (*models.ValueRequest, error)
	Verify(requestID, adminID uint, input *models.VerifyValueRequestInput) (*models.ValueRequest, error)
}

type service struct {
	requestRepo repositories.ValueRequestRepository
	memberRepo  repositories.MemberRepository
}

func NewService(requestRepo repositories.ValueRequestRepository, memberRepo repositories.MemberRepository) Service {
	return &service{
		requestRepo: requestRepo,
		memberRepo:  memberRepo,
	}
}

// Create validates the proposal and inserts it as pending, snapshotting
// the member's current totals. At most one pending request per member
// is allowed; a second submission is refused until the first is
// processed. The check is read-then-write, which is acceptable at this
// workload's write rates.
func (s *service) Create(memberID uint, input *models.CreateValueRequestInput) (*models.ValueRequest, error) {
	v := validation.New()
	v.ValueRequest(input)
	if !v.Valid() {
		return nil, errors.New(v.First())
	}

	member, err := s.memberRepo.GetByID(memberID)
	if err != nil {
		return nil, err
	}

	pending, err := s.requestRepo.HasPending(memberID)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, ErrDuplicatePending
	}

	request := &models.ValueRequest{
		MemberID:         memberID,
		RequestType:      input.RequestType,
		CurrentDealCount: member.NumberOfDeals,
		CurrentDealValue: member.TotalDealValue,
		Justification:    input.Justification,
		Verified:         false,
		Status:           models.StatusPending,
	}
	if request.WantsDealCount() {
		request.RequestedDealCount = input.RequestedDealCount
	}
	if request.WantsDealValue() {
		request.RequestedDealValue = input.RequestedDealValue
	}

	if err := s.requestRepo.Create(request); err != nil {
		return nil, err
	}

	return request, nil
}

func (s *service) ListAll() ([]models.ValueRequestView, error) {
	return s.requestRepo.ListAll()
}

func (s *service) ListPending() ([]models.ValueRequestView, error) {
	return s.requestRepo.ListPending()
}

func (s *service) ListMine(memberID uint) ([]models.ValueRequest, error) {
	return s.requestRepo.ListByMember(memberID)
}

// GetDetails returns a single request. Members may only view their own
// requests; admins may view any.
func (s *service) GetDetails(requestID, callerID uint, callerRole string) (*models.ValueRequest, error) {
	request, err := s.requestRepo.GetByID(requestID)
	if err != nil {
		if errors.Is(err, repositories.ErrRequestNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if callerRole != models.RoleAdmin && request.MemberID != callerID {
		return nil, ErrAccessDenied
	}

	return request, nil
}

// Verify applies the admin decision to a pending request. Approval
// overwrites the member's totals with the requested values — only the
// fields implied by the request type, and as absolute targets, not
// increments. The profile overwrite happens before the status flip:
// the overwrite is idempotent, so a failed status update leaves a
// retryable pending request rather than a falsely approved one.
func (s *service) Verify(requestID, adminID uint, input *models.VerifyValueRequestInput) (*models.ValueRequest, error) {
	if input.Verified == nil {
		return nil, ErrInvalidRequest
	}

	request, err := s.requestRepo.GetByID(requestID)
	if err != nil {
		if errors.Is(err, repositories.ErrRequestNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if request.Status != models.StatusPending {
		return nil, ErrAlreadyProcessed
	}

	approved := *input.Verified

	if approved {
		var count *int
		var value *float64
		if request.WantsDealCount() {
			count = request.RequestedDealCount
		}
		if request.WantsDealValue() {
			value = request.RequestedDealValue
		}
		if err := s.memberRepo.ApplyDealTotals(request.MemberID, count, value); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	request.Verified = approved
	if approved {
		request.Status = models.StatusApproved
	} else {
		request.Status = models.StatusRejected
	}
	request.AdminNotes = input.AdminNotes
	request.VerifiedBy = &adminID
	request.VerifiedAt = &now

	if err := s.requestRepo.Update(request); err != nil {
		return nil, err
	}

	return request, nil
}
