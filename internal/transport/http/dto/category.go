package dto

import "sculpture_shop/internal/domain/models"

type CreateCategoryRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=255"`
	Slug         string `json:"slug" validate:"omitempty,max=255"`
	Description  string `json:"description"`
	ImageURL     string `json:"image_url"`
	DisplayOrder int    `json:"display_order" validate:"gte=0"`
}

func (r CreateCategoryRequest) ToDomain() models.Category {
	return models.Category{
		Name:         r.Name,
		Slug:         r.Slug,
		Description:  r.Description,
		ImageURL:     r.ImageURL,
		DisplayOrder: r.DisplayOrder,
		IsActive:     true,
	}
}

type UpdateCategoryRequest struct {
	ID           int64   `json:"id" validate:"required,gt=0"`
	Name         *string `json:"name" validate:"omitempty,min=1,max=255"`
	Slug         *string `json:"slug" validate:"omitempty,max=255"`
	Description  *string `json:"description"`
	ImageURL     *string `json:"image_url"`
	DisplayOrder *int    `json:"display_order" validate:"omitempty,gte=0"`
}

func (r UpdateCategoryRequest) Updates() map[string]interface{} {
	updates := make(map[string]interface{})
	if r.Name != nil {
		updates["name"] = *r.Name
	}
	if r.Slug != nil {
		updates["slug"] = *r.Slug
	}
	if r.Description != nil {
		updates["description"] = *r.Description
	}
	if r.ImageURL != nil {
		updates["image_url"] = *r.ImageURL
	}
	if r.DisplayOrder != nil {
		updates["display_order"] = *r.DisplayOrder
	}
	return updates
}

type CreateMaterialRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=255"`
	Description string `json:"description"`
}

func (r CreateMaterialRequest) ToDomain() models.Material {
	return models.Material{
		Name:        r.Name,
		Description: r.Description,
		IsActive:    true,
	}
}

type UpdateMaterialRequest struct {
	ID          int64   `json:"id" validate:"required,gt=0"`
	Name        *string `json:"name" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description"`
}

func (r UpdateMaterialRequest) Updates() map[string]interface{} {
	updates := make(map[string]interface{})
	if r.Name != nil {
		updates["name"] = *r.Name
	}
	if r.Description != nil {
		updates["description"] = *r.Description
	}
	return updates
}
