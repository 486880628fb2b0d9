// Package dealvalidation implements the deal submission workflow.
// Members submit new deals or updates to existing deals; submissions
// sit as pending rows until an admin approves or rejects them. Only
// approval touches the member's embedded deal list.
package dealvalidation

import (
	"errors"
	"time"

	"nexo/internal/models"
	"nexo/internal/repositories"
	"nexo/internal/validation"

	"github.com/google/uuid"
)

// Service errors
var (
	ErrDealNotFound      = errors.New("deal not found")
	ErrRequestNotFound   = errors.New("request not found")
	ErrRequestNotPending = errors.New("request is not pending")
)

type Service interface {
	SubmitNewDeal(memberID uint, input *models.NewDealInput) (string, error)
	SubmitDealUpdate(memberID uint, dealID string, input *models.UpdateDealInput) error
	ListPending() ([]models.DealRequest, error)
	Approve(requestID uint) error
	Reject(requestID uint) error
}

type service struct {
	requestRepo repositories.DealRequestRepository
	memberRepo  repositories.MemberRepository
}

func NewService(requestRepo repositories.DealRequestRepository, memberRepo repositories.MemberRepository) Service {
	return &service{
		requestRepo: requestRepo,
		memberRepo:  memberRepo,
	}
}

// SubmitNewDeal stores a pending new_deal request with a server-generated
// deal id and returns that id.
func (s *service) SubmitNewDeal(memberID uint, input *models.NewDealInput) (string, error) {
	v := validation.New()
	v.NewDeal(input)
	if !v.Valid() {
		return "", errors.New(v.First())
	}

	date := time.Now()
	if input.Date != nil {
		date = *input.Date
	}

	dealID := uuid.NewString()
	request := &models.DealRequest{
		MemberID:    memberID,
		RequestType: models.DealRequestNew,
		Status:      models.StatusPending,
		Data: models.JSON{
			"deal_id":     dealID,
			"description": input.Description,
			"value":       input.Value,
			"date":        date.Format(time.RFC3339),
		},
	}

	if err := s.requestRepo.Create(request); err != nil {
		return "", err
	}

	return dealID, nil
}

// SubmitDealUpdate stores a pending update_deal request carrying only
// the changed fields. The target deal must already exist in the
// member's deal list.
func (s *service) SubmitDealUpdate(memberID uint, dealID string, input *models.UpdateDealInput) error {
	v := validation.New()
	v.UpdateDeal(input)
	if !v.Valid() {
		return errors.New(v.First())
	}

	member, err := s.memberRepo.GetByID(memberID)
	if err != nil {
		return err
	}
	if member.Deals.Find(dealID) == nil {
		return ErrDealNotFound
	}

	data := models.JSON{"deal_id": dealID}
	if input.Description != nil {
		data["description"] = *input.Description
	}
	if input.Value != nil {
		data["value"] = *input.Value
	}
	if input.Date != nil {
		data["date"] = input.Date.Format(time.RFC3339)
	}

	request := &models.DealRequest{
		MemberID:    memberID,
		RequestType: models.DealRequestUpdate,
		Status:      models.StatusPending,
		Data:        data,
	}

	return s.requestRepo.Create(request)
}

func (s *service) ListPending() ([]models.DealRequest, error) {
	return s.requestRepo.ListPending()
}

// Approve applies a pending request to the member's deal list and marks
// it approved. For new_deal the deal is appended; for update_deal only
// the supplied fields are merged into the matching embedded deal.
func (s *service) Approve(requestID uint) error {
	request, err := s.getPending(requestID)
	if err != nil {
		return err
	}

	switch request.RequestType {
	case models.DealRequestNew:
		deal := dealFromPayload(request.Data)
		if err := s.memberRepo.AppendDeal(request.MemberID, deal); err != nil {
			return err
		}
	case models.DealRequestUpdate:
		dealID, _ := request.Data["deal_id"].(string)
		fields := map[string]interface{}{}
		for k, val := range request.Data {
			if k != "deal_id" {
				fields[k] = val
			}
		}
		if err := s.memberRepo.MergeDeal(request.MemberID, dealID, fields); err != nil {
			if errors.Is(err, repositories.ErrDealNotFound) {
				return ErrDealNotFound
			}
			return err
		}
	}

	request.Status = models.StatusApproved
	return s.requestRepo.Update(request)
}

// Reject marks a pending request rejected without touching the profile.
func (s *service) Reject(requestID uint) error {
	request, err := s.getPending(requestID)
	if err != nil {
		return err
	}

	request.Status = models.StatusRejected
	return s.requestRepo.Update(request)
}

func (s *service) getPending(requestID uint) (*models.DealRequest, error) {
	request, err := s.requestRepo.GetByID(requestID)
	if err != nil {
		if errors.Is(err, repositories.ErrRequestNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	if request.Status != models.StatusPending {
		return nil, ErrRequestNotPending
	}
	return request, nil
}

func dealFromPayload(data models.JSON) models.Deal {
	deal := models.Deal{Date: time.Now()}
	if v, ok := data["deal_id"].(string); ok {
		deal.DealID = v
	}
	if v, ok := data["description"].(string); ok {
		deal.Description = v
	}
	if v, ok := data["value"].(float64); ok {
		deal.Value = v
	}
	if v, ok := data["date"].(string); ok {
		if parsed, err := time.Parse(time.RFC3339, v); err == nil {
			deal.Date = parsed
		}
	}
	return deal
}
