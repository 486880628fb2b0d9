package models

import (
	"time"

	"gorm.io/gorm"
)

// Value request types. "both" alters deal count and deal value together.
const (
	RequestTypeDealCount = "deal_count"
	RequestTypeDealValue = "deal_value"
	RequestTypeBoth      = "both"
)

// Request statuses shared by value requests and deal requests.
// Approved and rejected are terminal.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// ValidRequestType reports whether t is a known value request type.
func ValidRequestType(t string) bool {
	return t == RequestTypeDealCount || t == RequestTypeDealValue || t == RequestTypeBoth
}

// ValueRequest is a member-submitted proposal to change the recorded
// deal totals on their profile. The current_* fields snapshot the profile
// at creation time; requested_* are absolute targets, not deltas.
type ValueRequest struct {
	gorm.Model
	MemberID           uint       `gorm:"index;not null" json:"member_id"`
	RequestType        string     `gorm:"not null" json:"request_type"`
	CurrentDealCount   int        `json:"current_deal_count"`
	RequestedDealCount *int       `json:"requested_deal_count,omitempty"`
	CurrentDealValue   float64    `json:"current_deal_value"`
	RequestedDealValue *float64   `json:"requested_deal_value,omitempty"`
	Justification      string     `gorm:"not null" json:"justification"`
	Verified           bool       `gorm:"default:false" json:"verified"`
	Status             string     `gorm:"index;default:'pending'" json:"status"`
	AdminNotes         string     `json:"admin_notes,omitempty"`
	VerifiedBy         *uint      `json:"verified_by,omitempty"`
	VerifiedAt         *time.Time `json:"verified_at,omitempty"`
}

// WantsDealCount reports whether the request proposes a new deal count.
func (r *ValueRequest) WantsDealCount() bool {
	return r.RequestType == RequestTypeDealCount || r.RequestType == RequestTypeBoth
}

// WantsDealValue reports whether the request proposes a new deal value.
func (r *ValueRequest) WantsDealValue() bool {
	return r.RequestType == RequestTypeDealValue || r.RequestType == RequestTypeBoth
}

// ValueRequestView is the admin listing row, joined with the member name.
type ValueRequestView struct {
	ValueRequest
	MemberName string `json:"member_name"`
}
