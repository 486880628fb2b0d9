package repositories

import (
	"errors"

	"nexo/internal/models"

	"gorm.io/gorm"
)

type dealRequestRepository struct {
	db *gorm.DB
}

// NewDealRequestRepository creates a new instance of DealRequestRepository
func NewDealRequestRepository(db *gorm.DB) DealRequestRepository {
	return &dealRequestRepository{db: db}
}

func (r *dealRequestRepository) Create(request *models.DealRequest) error {
	if err := r.db.Create(request).Error; err != nil {
		return ErrDatabaseOperation
	}
	return nil
}

func (r *dealRequestRepository) GetByID(id uint) (*models.DealRequest, error) {
	var request models.DealRequest
	if err := r.db.First(&request, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, ErrDatabaseOperation
	}
	return &request, nil
}

func (r *dealRequestRepository) ListPending() ([]models.DealRequest, error) {
	var requests []models.DealRequest
	err := r.db.Where("status = ?", models.StatusPending).
		Order("created_at ASC").
		Find(&requests).Error
	if err != nil {
		return nil, ErrDatabaseOperation
	}
	return requests, nil
}

func (r *dealRequestRepository) Update(request *models.DealRequest) error {
	if err := r.db.Save(request).Error; err != nil {
		return ErrDatabaseOperation
	}
	return nil
}
