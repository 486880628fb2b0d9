package repositories

import "nexo/internal/models"

// DealRequestRepository defines deal-submission database operations.
// Like value requests, rows are kept after processing as the audit trail.
type DealRequestRepository interface {
	// Create inserts a new deal request
	Create(request *models.DealRequest) error

	// GetByID retrieves a request by its ID
	GetByID(id uint) (*models.DealRequest, error)

	// ListPending retrieves pending requests, oldest first
	ListPending() ([]models.DealRequest, error)

	// Update persists changes to an existing request
	Update(request *models.DealRequest) error
}
