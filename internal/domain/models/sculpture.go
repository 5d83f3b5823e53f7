package models

import (
	"time"
)

// Sculpture is a catalog item. Rows are never physically removed: admin
// delete flips is_active/is_available off.
type Sculpture struct {
	ID           int64      `db:"id" json:"id"`
	Name         string     `db:"name" json:"name"`
	Slug         string     `db:"slug" json:"slug"`
	CategoryID   *int64     `db:"category_id" json:"category_id,omitempty"`
	CategoryName string     `db:"category_name" json:"category_name,omitempty"`
	MaterialID   *int64     `db:"material_id" json:"material_id,omitempty"`
	MaterialName string     `db:"material_name" json:"material_name,omitempty"`
	Description  string     `db:"description" json:"description,omitempty"`
	Dimensions   string     `db:"dimensions" json:"dimensions,omitempty"`
	HeightCM     *float64   `db:"height_cm" json:"height_cm,omitempty"`
	WidthCM      *float64   `db:"width_cm" json:"width_cm,omitempty"`
	DepthCM      *float64   `db:"depth_cm" json:"depth_cm,omitempty"`
	WeightKG     *float64   `db:"weight_kg" json:"weight_kg,omitempty"`
	Price        float64    `db:"price" json:"price"`
	IsFeatured   bool       `db:"is_featured" json:"is_featured"`
	IsAvailable  bool       `db:"is_available" json:"is_available"`
	IsActive     bool       `db:"is_active" json:"is_active"`
	ViewCount    int64      `db:"view_count" json:"view_count"`
	PrimaryImage *string    `db:"primary_image" json:"primary_image,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
	DeletedAt    *time.Time `db:"deleted_at" json:"-"`
}

// SculptureImage is one gallery entry of a sculpture. At most one image per
// sculpture is primary; the repository enforces that on write.
type SculptureImage struct {
	ID           int64     `db:"id" json:"id"`
	SculptureID  int64     `db:"sculpture_id" json:"sculpture_id"`
	ImageURL     string    `db:"image_url" json:"image_url"`
	AltText      string    `db:"alt_text" json:"alt_text,omitempty"`
	IsPrimary    bool      `db:"is_primary" json:"is_primary"`
	DisplayOrder int       `db:"display_order" json:"display_order"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
