package dto

import (
	"encoding/json"

	"sculpture_shop/internal/domain/models"
)

// ContactRequestInput is the public contact form payload. The selected ids
// are stored serialized, exactly as submitted.
type ContactRequestInput struct {
	CustomerName         string  `json:"customer_name" validate:"required,min=1,max=255"`
	MobileNumber         string  `json:"mobile_number" validate:"required,min=5,max=20"`
	Email                string  `json:"email" validate:"omitempty,email"`
	Message              string  `json:"message"`
	SelectedSculptureIDs []int64 `json:"selected_sculpture_ids"`
	RequestType          string  `json:"request_type" validate:"omitempty,oneof=general inquiry quotation"`
}

func (r ContactRequestInput) ToDomain() models.ContactRequest {
	ids := r.SelectedSculptureIDs
	if ids == nil {
		ids = []int64{}
	}
	serialized, _ := json.Marshal(ids)

	requestType := models.RequestType(r.RequestType)
	if requestType == "" {
		requestType = models.RequestTypeInquiry
	}

	return models.ContactRequest{
		CustomerName:         r.CustomerName,
		MobileNumber:         r.MobileNumber,
		Email:                r.Email,
		Message:              r.Message,
		SelectedSculptureIDs: string(serialized),
		RequestType:          requestType,
		Status:               models.ContactStatusPending,
	}
}

type UpdateContactStatusRequest struct {
	RequestID  int64   `json:"request_id" validate:"required,gt=0"`
	Status     string  `json:"status" validate:"required"`
	AdminNotes *string `json:"admin_notes"`
}

type CustomRequestInput struct {
	CustomerName        string   `json:"customer_name" validate:"required,min=1,max=255"`
	MobileNumber        string   `json:"mobile_number" validate:"required,min=5,max=20"`
	Email               string   `json:"email" validate:"omitempty,email"`
	ReferenceImageURL   string   `json:"reference_image_url"`
	SculptureType       string   `json:"sculpture_type"`
	PreferredMaterial   string   `json:"preferred_material"`
	ExpectedHeight      *float64 `json:"expected_height" validate:"omitempty,gt=0"`
	ExpectedWidth       *float64 `json:"expected_width" validate:"omitempty,gt=0"`
	ExpectedDepth       *float64 `json:"expected_depth" validate:"omitempty,gt=0"`
	ExpectedPrice       *float64 `json:"expected_price" validate:"omitempty,gt=0"`
	Description         string   `json:"description"`
	SpecialRequirements string   `json:"special_requirements"`
}

func (r CustomRequestInput) ToDomain() models.CustomRequest {
	return models.CustomRequest{
		CustomerName:        r.CustomerName,
		MobileNumber:        r.MobileNumber,
		Email:               r.Email,
		ReferenceImageURL:   r.ReferenceImageURL,
		SculptureType:       r.SculptureType,
		PreferredMaterial:   r.PreferredMaterial,
		ExpectedHeight:      r.ExpectedHeight,
		ExpectedWidth:       r.ExpectedWidth,
		ExpectedDepth:       r.ExpectedDepth,
		ExpectedPrice:       r.ExpectedPrice,
		Description:         r.Description,
		SpecialRequirements: r.SpecialRequirements,
		Status:              models.CustomStatusPending,
	}
}

// UpdateCustomRequestInput carries the admin quote fields. Nil fields are
// left untouched.
type UpdateCustomRequestInput struct {
	RequestID     int64    `json:"request_id" validate:"required,gt=0"`
	Status        *string  `json:"status"`
	QuotedPrice   *float64 `json:"quoted_price" validate:"omitempty,gte=0"`
	EstimatedDays *int     `json:"estimated_days" validate:"omitempty,gt=0"`
	AdminNotes    *string  `json:"admin_notes"`
}

func (r UpdateCustomRequestInput) Updates() map[string]interface{} {
	updates := make(map[string]interface{})
	if r.Status != nil {
		updates["status"] = *r.Status
	}
	if r.QuotedPrice != nil {
		updates["quoted_price"] = *r.QuotedPrice
	}
	if r.EstimatedDays != nil {
		updates["estimated_days"] = *r.EstimatedDays
	}
	if r.AdminNotes != nil {
		updates["admin_notes"] = *r.AdminNotes
	}
	return updates
}
