package models

import "time"

type RequestType string

const (
	RequestTypeGeneral   RequestType = "general"
	RequestTypeInquiry   RequestType = "inquiry"
	RequestTypeQuotation RequestType = "quotation"
)

func (t RequestType) Valid() bool {
	switch t {
	case RequestTypeGeneral, RequestTypeInquiry, RequestTypeQuotation:
		return true
	}
	return false
}

// ContactStatus is a flat enum: any status may move to any other status
// through the admin update endpoint. Only membership is checked.
type ContactStatus string

const (
	ContactStatusPending   ContactStatus = "pending"
	ContactStatusContacted ContactStatus = "contacted"
	ContactStatusCompleted ContactStatus = "completed"
	ContactStatusCancelled ContactStatus = "cancelled"
)

func (s ContactStatus) Valid() bool {
	switch s {
	case ContactStatusPending, ContactStatusContacted, ContactStatusCompleted, ContactStatusCancelled:
		return true
	}
	return false
}

type CustomStatus string

const (
	CustomStatusPending    CustomStatus = "pending"
	CustomStatusReviewed   CustomStatus = "reviewed"
	CustomStatusQuoted     CustomStatus = "quoted"
	CustomStatusAccepted   CustomStatus = "accepted"
	CustomStatusInProgress CustomStatus = "in_progress"
	CustomStatusCompleted  CustomStatus = "completed"
	CustomStatusCancelled  CustomStatus = "cancelled"
)

func (s CustomStatus) Valid() bool {
	switch s {
	case CustomStatusPending, CustomStatusReviewed, CustomStatusQuoted, CustomStatusAccepted,
		CustomStatusInProgress, CustomStatusCompleted, CustomStatusCancelled:
		return true
	}
	return false
}

// ContactRequest is a lead captured from the public contact form.
// SelectedSculptureIDs holds the JSON-serialized id list as submitted.
type ContactRequest struct {
	ID                   int64         `db:"id" json:"id"`
	CustomerName         string        `db:"customer_name" json:"customer_name"`
	MobileNumber         string        `db:"mobile_number" json:"mobile_number"`
	Email                string        `db:"email" json:"email,omitempty"`
	Message              string        `db:"message" json:"message,omitempty"`
	SelectedSculptureIDs string        `db:"selected_sculpture_ids" json:"selected_sculpture_ids"`
	RequestType          RequestType   `db:"request_type" json:"request_type"`
	Status               ContactStatus `db:"status" json:"status"`
	AdminNotes           string        `db:"admin_notes" json:"admin_notes,omitempty"`
	CreatedAt            time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt            time.Time     `db:"updated_at" json:"updated_at"`
}

type CustomRequest struct {
	ID                  int64        `db:"id" json:"id"`
	CustomerName        string       `db:"customer_name" json:"customer_name"`
	MobileNumber        string       `db:"mobile_number" json:"mobile_number"`
	Email               string       `db:"email" json:"email,omitempty"`
	ReferenceImageURL   string       `db:"reference_image_url" json:"reference_image_url,omitempty"`
	SculptureType       string       `db:"sculpture_type" json:"sculpture_type,omitempty"`
	PreferredMaterial   string       `db:"preferred_material" json:"preferred_material,omitempty"`
	ExpectedHeight      *float64     `db:"expected_height" json:"expected_height,omitempty"`
	ExpectedWidth       *float64     `db:"expected_width" json:"expected_width,omitempty"`
	ExpectedDepth       *float64     `db:"expected_depth" json:"expected_depth,omitempty"`
	ExpectedPrice       *float64     `db:"expected_price" json:"expected_price,omitempty"`
	Description         string       `db:"description" json:"description,omitempty"`
	SpecialRequirements string       `db:"special_requirements" json:"special_requirements,omitempty"`
	Status              CustomStatus `db:"status" json:"status"`
	QuotedPrice         *float64     `db:"quoted_price" json:"quoted_price,omitempty"`
	EstimatedDays       *int         `db:"estimated_days" json:"estimated_days,omitempty"`
	AdminNotes          string       `db:"admin_notes" json:"admin_notes,omitempty"`
	CreatedAt           time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt           time.Time    `db:"updated_at" json:"updated_at"`
}
