package validation

import (
	"nexo/internal/models"
)

// MemberRegistration validates a registration payload.
func (v *Validator) MemberRegistration(input *models.RegisterInput) {
	v.Required("name", input.Name)
	v.MaxLength("name", input.Name, MaxNameLength)
	v.Required("email", input.Email)
	v.Email("email", input.Email)
	v.Required("password", input.Password)
	v.MinLength("password", input.Password, MinPasswordLength)
	v.MaxLength("password", input.Password, MaxPasswordLength)

	if input.Role != "" {
		v.Check(input.Role == models.RoleMember || input.Role == models.RoleAdmin || input.Role == models.RoleGuest,
			"role", "must be guest, member or admin")
	}
}

// ValueRequest validates a value request creation payload. The fields
// required depend on the request type: deal_count and both need a
// requested count, deal_value and both need a requested value.
func (v *Validator) ValueRequest(input *models.CreateValueRequestInput) {
	v.Check(models.ValidRequestType(input.RequestType), "request_type", "must be deal_count, deal_value or both")
	v.Required("justification", input.Justification)
	v.MaxLength("justification", input.Justification, MaxJustificationLength)

	if input.RequestType == models.RequestTypeDealCount || input.RequestType == models.RequestTypeBoth {
		if input.RequestedDealCount == nil {
			v.AddError("requested_deal_count", "is required for this request type")
		} else {
			v.NonNegative("requested_deal_count", float64(*input.RequestedDealCount))
		}
	}

	if input.RequestType == models.RequestTypeDealValue || input.RequestType == models.RequestTypeBoth {
		if input.RequestedDealValue == nil {
			v.AddError("requested_deal_value", "is required for this request type")
		} else {
			v.NonNegative("requested_deal_value", *input.RequestedDealValue)
		}
	}
}

// NewDeal validates a deal submission payload.
func (v *Validator) NewDeal(input *models.NewDealInput) {
	v.Required("description", input.Description)
	v.MaxLength("description", input.Description, MaxDescriptionLength)
	v.Range("value", input.Value, 0, MaxDealValue)
}

// UpdateDeal validates a deal update payload. At least one field must be set.
func (v *Validator) UpdateDeal(input *models.UpdateDealInput) {
	if input.Description == nil && input.Value == nil && input.Date == nil {
		v.AddError("update", "must change at least one field")
		return
	}
	if input.Description != nil {
		v.Required("description", *input.Description)
		v.MaxLength("description", *input.Description, MaxDescriptionLength)
	}
	if input.Value != nil {
		v.Range("value", *input.Value, 0, MaxDealValue)
	}
}

// Message validates a message payload.
func (v *Validator) Message(input *models.SendMessageInput) {
	v.Required("receiver_id", input.ReceiverID)
	v.Required("content", input.Content)
	v.MaxLength("content", input.Content, MaxMessageLength)
}

// Profile validates a self-service profile update. Numeric profile
// fields are not reachable from here at all; the allow-list lives in
// the input struct itself.
func (v *Validator) Profile(input *models.UpdateProfileInput) {
	if input.Name != nil {
		v.Required("name", *input.Name)
		v.MaxLength("name", *input.Name, MaxNameLength)
	}
	if input.Description != nil {
		v.MaxLength("description", *input.Description, MaxDescriptionLength)
	}
}
