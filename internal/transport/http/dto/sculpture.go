package dto

import "sculpture_shop/internal/domain/models"

// CreateSculptureRequest carries the admin add_sculpture payload. Slug is
// optional: when empty it is derived from the name.
type CreateSculptureRequest struct {
	Name        string   `json:"name" validate:"required,min=1,max=255"`
	Slug        string   `json:"slug" validate:"omitempty,max=255"`
	CategoryID  *int64   `json:"category_id"`
	MaterialID  *int64   `json:"material_id"`
	Description string   `json:"description"`
	Dimensions  string   `json:"dimensions"`
	HeightCM    *float64 `json:"height_cm" validate:"omitempty,gt=0"`
	WidthCM     *float64 `json:"width_cm" validate:"omitempty,gt=0"`
	DepthCM     *float64 `json:"depth_cm" validate:"omitempty,gt=0"`
	WeightKG    *float64 `json:"weight_kg" validate:"omitempty,gt=0"`
	Price       float64  `json:"price" validate:"gte=0"`
	IsFeatured  bool     `json:"is_featured"`
	IsAvailable *bool    `json:"is_available"`
}

func (r CreateSculptureRequest) ToDomain() models.Sculpture {
	s := models.Sculpture{
		Name:        r.Name,
		Slug:        r.Slug,
		CategoryID:  r.CategoryID,
		MaterialID:  r.MaterialID,
		Description: r.Description,
		Dimensions:  r.Dimensions,
		HeightCM:    r.HeightCM,
		WidthCM:     r.WidthCM,
		DepthCM:     r.DepthCM,
		WeightKG:    r.WeightKG,
		Price:       r.Price,
		IsFeatured:  r.IsFeatured,
		IsAvailable: true,
		IsActive:    true,
	}
	if r.IsAvailable != nil {
		s.IsAvailable = *r.IsAvailable
	}
	return s
}

// UpdateSculptureRequest is a partial update: nil fields are left untouched.
type UpdateSculptureRequest struct {
	ID          int64    `json:"id" validate:"required,gt=0"`
	Name        *string  `json:"name" validate:"omitempty,min=1,max=255"`
	Slug        *string  `json:"slug" validate:"omitempty,max=255"`
	CategoryID  *int64   `json:"category_id"`
	MaterialID  *int64   `json:"material_id"`
	Description *string  `json:"description"`
	Dimensions  *string  `json:"dimensions"`
	HeightCM    *float64 `json:"height_cm" validate:"omitempty,gt=0"`
	WidthCM     *float64 `json:"width_cm" validate:"omitempty,gt=0"`
	DepthCM     *float64 `json:"depth_cm" validate:"omitempty,gt=0"`
	WeightKG    *float64 `json:"weight_kg" validate:"omitempty,gt=0"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	IsFeatured  *bool    `json:"is_featured"`
	IsAvailable *bool    `json:"is_available"`
}

// Updates flattens the present fields into a column update map.
func (r UpdateSculptureRequest) Updates() map[string]interface{} {
	updates := make(map[string]interface{})
	if r.Name != nil {
		updates["name"] = *r.Name
	}
	if r.Slug != nil {
		updates["slug"] = *r.Slug
	}
	if r.CategoryID != nil {
		updates["category_id"] = *r.CategoryID
	}
	if r.MaterialID != nil {
		updates["material_id"] = *r.MaterialID
	}
	if r.Description != nil {
		updates["description"] = *r.Description
	}
	if r.Dimensions != nil {
		updates["dimensions"] = *r.Dimensions
	}
	if r.HeightCM != nil {
		updates["height_cm"] = *r.HeightCM
	}
	if r.WidthCM != nil {
		updates["width_cm"] = *r.WidthCM
	}
	if r.DepthCM != nil {
		updates["depth_cm"] = *r.DepthCM
	}
	if r.WeightKG != nil {
		updates["weight_kg"] = *r.WeightKG
	}
	if r.Price != nil {
		updates["price"] = *r.Price
	}
	if r.IsFeatured != nil {
		updates["is_featured"] = *r.IsFeatured
	}
	if r.IsAvailable != nil {
		updates["is_available"] = *r.IsAvailable
	}
	return updates
}

type AddImageRequest struct {
	SculptureID  int64  `json:"sculpture_id" validate:"required,gt=0"`
	ImageURL     string `json:"image_url" validate:"required"`
	AltText      string `json:"alt_text"`
	IsPrimary    bool   `json:"is_primary"`
	DisplayOrder int    `json:"display_order" validate:"gte=0"`
}

func (r AddImageRequest) ToDomain() models.SculptureImage {
	return models.SculptureImage{
		SculptureID:  r.SculptureID,
		ImageURL:     r.ImageURL,
		AltText:      r.AltText,
		IsPrimary:    r.IsPrimary,
		DisplayOrder: r.DisplayOrder,
	}
}

// SculptureListResponse is the listing payload: one page plus the total
// count for the same filter.
type SculptureListResponse struct {
	Sculptures []models.Sculpture `json:"sculptures"`
	TotalCount int64              `json:"total_count"`
	Limit      int                `json:"limit"`
	Offset     int                `json:"offset"`
}

type SculptureDetailResponse struct {
	models.Sculpture
	Images []models.SculptureImage `json:"images"`
}
