package models

import "gorm.io/gorm"

// Deal request types.
const (
	DealRequestNew    = "new_deal"
	DealRequestUpdate = "update_deal"
)

// DealRequest is a member-submitted new or updated deal entry awaiting
// admin approval. Data is an opaque payload carrying a deal_id plus the
// deal fields being set; for update_deal only the changed fields appear.
// Unlike value requests, a member may have any number of pending rows.
type DealRequest struct {
	gorm.Model
	MemberID    uint   `gorm:"index;not null" json:"member_id"`
	RequestType string `gorm:"not null" json:"request_type"`
	Data        JSON   `gorm:"type:jsonb" json:"data"`
	Status      string `gorm:"index;default:'pending'" json:"status"`
}
