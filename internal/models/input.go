package models

import "time"

// RegisterInput is the payload for member self-registration and
// admin-initiated member creation.
type RegisterInput struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Role        string `json:"role"`
	Tier        string `json:"tier"`
	ContactInfo JSON   `json:"contact_info"`
}

// LoginInput is the credential payload for authentication.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileInput carries a member's self-service profile update.
// Only the fields listed here are writable; nil fields are left untouched.
// Deal totals are never self-writable, they change through value requests.
type UpdateProfileInput struct {
	Name            *string  `json:"name"`
	ContactInfo     JSON     `json:"contact_info"`
	Company         *string  `json:"company"`
	Sector          *string  `json:"sector"`
	Title           *string  `json:"title"`
	Description     *string  `json:"description"`
	ProfileImageURL *string  `json:"profile_image_url"`
	Expertise       *Strings `json:"expertise"`
}

// CreateValueRequestInput is the member-submitted proposal payload.
type CreateValueRequestInput struct {
	RequestType        string   `json:"request_type"`
	RequestedDealCount *int     `json:"requested_deal_count"`
	RequestedDealValue *float64 `json:"requested_deal_value"`
	Justification      string   `json:"justification"`
}

// VerifyValueRequestInput is the admin decision payload.
type VerifyValueRequestInput struct {
	Verified   *bool  `json:"verified"`
	AdminNotes string `json:"admin_notes"`
}

// NewDealInput describes a deal being submitted for approval.
type NewDealInput struct {
	Description string     `json:"description"`
	Value       float64    `json:"value"`
	Date        *time.Time `json:"date"`
}

// UpdateDealInput carries the changed fields of an existing deal.
// Nil fields are not part of the update.
type UpdateDealInput struct {
	Description *string    `json:"description"`
	Value       *float64   `json:"value"`
	Date        *time.Time `json:"date"`
}

// SendMessageInput is the messaging payload.
type SendMessageInput struct {
	ReceiverID uint   `json:"receiver_id"`
	Content    string `json:"content"`
}

// AdminUpdateMemberInput is the admin-side member update payload.
// Password, when present, is re-hashed before persisting.
type AdminUpdateMemberInput struct {
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	Tier        *string `json:"tier"`
	Role        *string `json:"role"`
	ContactInfo JSON    `json:"contact_info"`
	Verified    *bool   `json:"verified"`
	Public      *bool   `json:"public"`
	IsActive    *bool   `json:"is_active"`
	Password    *string `json:"password"`
}
