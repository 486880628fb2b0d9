package models

import (
	"time"

	"gorm.io/gorm"
)

// Message statuses.
const (
	MessageSent      = "sent"
	MessageDelivered = "delivered"
	MessageRead      = "read"
)

// Message is an append-only record between two members. Content is
// immutable once sent; only status and read_at may change afterwards.
type Message struct {
	gorm.Model
	SenderID   uint       `gorm:"index;not null" json:"sender_id"`
	ReceiverID uint       `gorm:"index;not null" json:"receiver_id"`
	Content    string     `gorm:"not null" json:"content"`
	Status     string     `gorm:"default:'sent'" json:"status"`
	ReadAt     *time.Time `json:"read_at,omitempty"`
}
