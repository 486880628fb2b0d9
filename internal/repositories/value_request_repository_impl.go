package repositories

import (
	"errors"

	"nexo/internal/models"

	"gorm.io/gorm"
)

type valueRequestRepository struct {
	db *gorm.DB
}

// NewValueRequestRepository creates a new instance of ValueRequestRepository
func NewValueRequestRepository(db *gorm.DB) ValueRequestRepository {
	return &valueRequestRepository{db: db}
}

func (r *valueRequestRepository) Create(request *models.ValueRequest) error {
	if err := r.db.Create(request).Error; err != nil {
		return ErrDatabaseOperation
	}
	return nil
}

func (r *valueRequestRepository) GetByID(id uint) (*models.ValueRequest, error) {
	var request models.ValueRequest
	if err := r.db.First(&request, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, ErrDatabaseOperation
	}
	return &request, nil
}

func (r *valueRequestRepository) HasPending(memberID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.ValueRequest{}).
		Where("member_id = ? AND status = ?", memberID, models.StatusPending).
		Count(&count).Error
	if err != nil {
		return false, ErrDatabaseOperation
	}
	return count > 0, nil
}

func (r *valueRequestRepository) ListAll() ([]models.ValueRequestView, error) {
	return r.listViews(r.db)
}

func (r *valueRequestRepository) ListPending() ([]models.ValueRequestView, error) {
	return r.listViews(r.db.Where("value_requests.status = ?", models.StatusPending))
}

func (r *valueRequestRepository) listViews(q *gorm.DB) ([]models.ValueRequestView, error) {
	var views []models.ValueRequestView
	err := q.Table("value_requests").
		Select("value_requests.*, members.name AS member_name").
		Joins("LEFT JOIN members ON members.id = value_requests.member_id").
		Order("value_requests.created_at DESC").
		Scan(&views).Error
	if err != nil {
		return nil, ErrDatabaseOperation
	}
	return views, nil
}

func (r *valueRequestRepository) ListByMember(memberID uint) ([]models.ValueRequest, error) {
	var requests []models.ValueRequest
	err := r.db.Where("member_id = ?", memberID).
		Order("created_at DESC").
		Find(&requests).Error
	if err != nil {
		return nil, ErrDatabaseOperation
	}
	return requests, nil
}

func (r *valueRequestRepository) Update(request *models.ValueRequest) error {
	if err := r.db.Save(request).Error; err != nil {
		return ErrDatabaseOperation
	}
	return nil
}
