package models

import (
	"time"

	"gorm.io/gorm"
)

// Role values drive the permission gate.
const (
	RoleGuest  = "guest"
	RoleMember = "member"
	RoleAdmin  = "admin"
)

// Tier values are membership level labels, unrelated to roles.
const (
	TierDisruption = "disruption"
	TierInfinity   = "infinity"
	TierSocios     = "socios"
)

// ValidTier reports whether t is a known membership tier.
func ValidTier(t string) bool {
	switch t {
	case TierDisruption, TierInfinity, TierSocios:
		return true
	}
	return false
}

type Member struct {
	gorm.Model
	Name            string   `gorm:"not null" json:"name"`
	Email           string   `gorm:"uniqueIndex;not null" json:"email"` // Unique index on Email
	Password        string   `gorm:"not null" json:"-"`
	Role            string   `gorm:"default:'member'" json:"role"`
	Tier            string   `gorm:"default:'disruption'" json:"tier"`
	ContactInfo     JSON     `gorm:"type:jsonb" json:"contact_info"`
	ProfileImageURL string   `json:"profile_image_url,omitempty"`
	Description     string   `json:"description,omitempty"`
	Company         string   `json:"company,omitempty"`
	Sector          string   `json:"sector,omitempty"`
	Title           string   `json:"title,omitempty"`
	Expertise       Strings  `gorm:"type:jsonb" json:"expertise,omitempty"`
	NumberOfDeals   int      `gorm:"default:0" json:"number_of_deals"`
	TotalDealValue  float64  `gorm:"default:0" json:"total_deal_value"`
	Deals           DealList `gorm:"type:jsonb" json:"deals,omitempty"`
	Verified        bool     `gorm:"default:false" json:"verified"`
	Public          bool     `gorm:"default:false" json:"public"`
	IsActive        bool     `gorm:"default:true" json:"is_active"`
	TokenVersion    int      `gorm:"default:1" json:"-"`
	LastLoginAt     *time.Time `json:"last_login_at,omitempty"`
}

// Showcase is the public, field-limited projection of a verified member.
// Contact fields never appear here.
type Showcase struct {
	ID              uint    `json:"id"`
	Name            string  `json:"name"`
	Tier            string  `json:"tier"`
	Company         string  `json:"company,omitempty"`
	Sector          string  `json:"sector,omitempty"`
	Title           string  `json:"title,omitempty"`
	Description     string  `json:"description,omitempty"`
	ProfileImageURL string  `json:"profile_image_url,omitempty"`
	Expertise       Strings `json:"expertise,omitempty"`
	NumberOfDeals   int     `json:"number_of_deals"`
	TotalDealValue  float64 `json:"total_deal_value"`
}

// ToShowcase projects a member down to its public showcase view.
func (m *Member) ToShowcase() Showcase {
	return Showcase{
		ID:              m.ID,
		Name:            m.Name,
		Tier:            m.Tier,
		Company:         m.Company,
		Sector:          m.Sector,
		Title:           m.Title,
		Description:     m.Description,
		ProfileImageURL: m.ProfileImageURL,
		Expertise:       m.Expertise,
		NumberOfDeals:   m.NumberOfDeals,
		TotalDealValue:  m.TotalDealValue,
	}
}
