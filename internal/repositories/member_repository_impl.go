package repositories

import (
	"context"
	"errors"
	"log"
	"time"

	"nexo/internal/models"
	"nexo/internal/repositories/cache"

	"gorm.io/gorm"
)

type memberRepository struct {
	db    *gorm.DB
	cache *cache.CacheService
}

// NewMemberRepository creates a new instance of MemberRepository
func NewMemberRepository(db *gorm.DB, cache *cache.CacheService) MemberRepository {
	return &memberRepository{
		db:    db,
		cache: cache,
	}
}

func (r *memberRepository) Create(member *models.Member) error {
	if err := r.db.Create(member).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrEmailTaken
		}
		return ErrDatabaseOperation
	}
	return nil
}

func (r *memberRepository) GetByID(id uint) (*models.Member, error) {
	// Try cache first
	key := r.cache.GenerateKey("member", "id", id)
	if member, err := r.cache.GetMember(context.Background(), key); err == nil {
		return member, nil
	}

	var member models.Member
	if err := r.db.First(&member, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, ErrDatabaseOperation
	}

	if err := r.cache.CacheMember(context.Background(), &member); err != nil {
		log.Printf("Failed to cache member %d: %v", member.ID, err)
	}

	return &member, nil
}

func (r *memberRepository) GetByEmail(email string) (*models.Member, error) {
	key := r.cache.GenerateKey("member", "email", email)
	if member, err := r.cache.GetMember(context.Background(), key); err == nil {
		return member, nil
	}

	var member models.Member
	if err := r.db.Where("email = ?", email).First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, ErrDatabaseOperation
	}

	if err := r.cache.CacheMember(context.Background(), &member); err != nil {
		log.Printf("Failed to cache member %d: %v", member.ID, err)
	}

	return &member, nil
}

func (r *memberRepository) GetGuest() (*models.Member, error) {
	var member models.Member
	err := r.db.Where("role = ? AND is_active = ?", models.RoleGuest, true).First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, ErrDatabaseOperation
	}
	return &member, nil
}

func (r *memberRepository) Update(member *models.Member) error {
	if err := r.db.Save(member).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrEmailTaken
		}
		return ErrDatabaseOperation
	}
	return r.invalidate(member.ID)
}

func (r *memberRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Member{}, id)
	if result.Error != nil {
		return ErrDatabaseOperation
	}
	if result.RowsAffected == 0 {
		return ErrMemberNotFound
	}
	return r.invalidate(id)
}

func (r *memberRepository) List(offset, limit int) ([]*models.Member, int64, error) {
	var members []*models.Member
	var total int64

	if err := r.db.Model(&models.Member{}).Count(&total).Error; err != nil {
		return nil, 0, ErrDatabaseOperation
	}

	if err := r.db.Offset(offset).Limit(limit).Order("created_at DESC").Find(&members).Error; err != nil {
		return nil, 0, ErrDatabaseOperation
	}

	return members, total, nil
}

func (r *memberRepository) Search(query string) ([]*models.Member, error) {
	var members []*models.Member
	pattern := "%" + query + "%"
	err := r.db.
		Where("is_active = ?", true).
		Where("name ILIKE ? OR sector ILIKE ?", pattern, pattern).
		Order("name ASC").
		Find(&members).Error
	if err != nil {
		return nil, ErrDatabaseOperation
	}
	return members, nil
}

func (r *memberRepository) ListShowcase(sector string) ([]*models.Member, error) {
	var members []*models.Member
	q := r.db.Where("verified = ? AND public = ? AND is_active = ?", true, true, true)
	if sector != "" {
		q = q.Where("sector = ?", sector)
	}
	if err := q.Order("name ASC").Find(&members).Error; err != nil {
		return nil, ErrDatabaseOperation
	}
	return members, nil
}

func (r *memberRepository) ListSectors() ([]string, error) {
	var sectors []string
	err := r.db.Model(&models.Member{}).
		Where("sector <> ''").
		Distinct("sector").
		Order("sector ASC").
		Pluck("sector", &sectors).Error
	if err != nil {
		return nil, ErrDatabaseOperation
	}
	return sectors, nil
}

func (r *memberRepository) IncrementTokenVersion(memberID uint) error {
	err := r.db.Model(&models.Member{}).Where("id = ?", memberID).
		UpdateColumn("token_version", gorm.Expr("token_version + 1")).Error
	if err != nil {
		return ErrDatabaseOperation
	}
	return r.invalidate(memberID)
}

func (r *memberRepository) ApplyDealTotals(memberID uint, dealCount *int, dealValue *float64) error {
	updates := map[string]interface{}{}
	if dealCount != nil {
		updates["number_of_deals"] = *dealCount
	}
	if dealValue != nil {
		updates["total_deal_value"] = *dealValue
	}
	if len(updates) == 0 {
		return nil
	}
	updates["updated_at"] = time.Now()

	result := r.db.Model(&models.Member{}).Where("id = ?", memberID).Updates(updates)
	if result.Error != nil {
		return ErrDatabaseOperation
	}
	if result.RowsAffected == 0 {
		return ErrMemberNotFound
	}
	return r.invalidate(memberID)
}

func (r *memberRepository) AppendDeal(memberID uint, deal models.Deal) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var member models.Member
		if err := tx.First(&member, memberID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMemberNotFound
			}
			return ErrDatabaseOperation
		}

		member.Deals = append(member.Deals, deal)
		return tx.Model(&member).Update("deals", member.Deals).Error
	})
	if err != nil {
		return err
	}
	return r.invalidate(memberID)
}

func (r *memberRepository) MergeDeal(memberID uint, dealID string, fields map[string]interface{}) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var member models.Member
		if err := tx.First(&member, memberID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMemberNotFound
			}
			return ErrDatabaseOperation
		}

		deal := member.Deals.Find(dealID)
		if deal == nil {
			return ErrDealNotFound
		}

		// Field-level merge: only the supplied fields change.
		if v, ok := fields["description"].(string); ok {
			deal.Description = v
		}
		if v, ok := fields["value"].(float64); ok {
			deal.Value = v
		}
		if v, ok := fields["date"]; ok {
			switch t := v.(type) {
			case time.Time:
				deal.Date = t
			case string:
				if parsed, err := time.Parse(time.RFC3339, t); err == nil {
					deal.Date = parsed
				}
			}
		}

		return tx.Model(&member).Update("deals", member.Deals).Error
	})
	if err != nil {
		return err
	}
	return r.invalidate(memberID)
}

func (r *memberRepository) invalidate(memberID uint) error {
	if err := r.cache.InvalidateMember(context.Background(), memberID); err != nil {
		log.Printf("Warning: failed to invalidate member cache for %d: %v", memberID, err)
	}
	return nil
}
