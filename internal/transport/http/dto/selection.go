package dto

import (
	"sculpture_shop/internal/domain/models"

	"github.com/google/uuid"
)

// SelectionInput identifies one entry in a client's selection. ClientID is a
// client-generated uuid persisted in the browser.
type SelectionInput struct {
	ClientID    uuid.UUID `json:"client_id" validate:"required"`
	SculptureID int64     `json:"sculpture_id" validate:"required,gt=0"`
}

// SelectionResponse returns the selection hydrated to sculpture rows, in
// insertion order.
type SelectionResponse struct {
	ClientID   uuid.UUID          `json:"client_id"`
	Sculptures []models.Sculpture `json:"sculptures"`
	TotalCount int                `json:"total_count"`
}
