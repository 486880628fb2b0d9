package repositories

import (
	"errors"

	"nexo/internal/models"
)

var ErrRequestNotFound = errors.New("request not found")

// ValueRequestRepository defines value-request database operations.
// Rows are never deleted; processed requests stay as the audit trail.
type ValueRequestRepository interface {
	// Create inserts a new value request
	Create(request *models.ValueRequest) error

	// GetByID retrieves a request by its ID
	GetByID(id uint) (*models.ValueRequest, error)

	// HasPending reports whether the member has a pending request
	HasPending(memberID uint) (bool, error)

	// ListAll retrieves every request joined with the member name,
	// newest first
	ListAll() ([]models.ValueRequestView, error)

	// ListPending retrieves pending requests joined with the member
	// name, newest first
	ListPending() ([]models.ValueRequestView, error)

	// ListByMember retrieves a member's own requests, newest first
	ListByMember(memberID uint) ([]models.ValueRequest, error)

	// Update persists changes to an existing request
	Update(request *models.ValueRequest) error
}
