package repository

import (
	"context"

	"sculpture_shop/internal/catalog"
	"sculpture_shop/internal/domain/models"

	"github.com/google/uuid"
)

type SculptureRepository interface {
	GetSculptures(ctx context.Context, f catalog.Filter) ([]models.Sculpture, error)
	CountSculptures(ctx context.Context, f catalog.Filter) (int64, error)
	GetSculptureByID(ctx context.Context, id int64) (*models.Sculpture, error)
	GetSculptureBySlug(ctx context.Context, slug string) (*models.Sculpture, error)
	GetFeaturedSculptures(ctx context.Context, limit int) ([]models.Sculpture, error)
	GetRelatedSculptures(ctx context.Context, sculptureID int64, limit int) ([]models.Sculpture, error)
	SaveSculpture(ctx context.Context, s models.Sculpture) (int64, error)
	UpdateSculptureFields(ctx context.Context, id int64, updates map[string]interface{}) error
	SoftDeleteSculpture(ctx context.Context, id int64) error
	IncrementViewCount(ctx context.Context, id int64) error
	GetImages(ctx context.Context, sculptureID int64) ([]models.SculptureImage, error)
	AddImage(ctx context.Context, img models.SculptureImage) (int64, error)
	DeleteImage(ctx context.Context, id int64) error
}

type CategoryRepository interface {
	GetCategories(ctx context.Context) ([]models.Category, error)
	GetCategoryByID(ctx context.Context, id int64) (*models.Category, error)
	GetCategoriesWithCount(ctx context.Context) ([]models.CategoryWithCount, error)
	SaveCategory(ctx context.Context, c models.Category) (int64, error)
	UpdateCategoryFields(ctx context.Context, id int64, updates map[string]interface{}) error
	SoftDeleteCategory(ctx context.Context, id int64) error
}

type MaterialRepository interface {
	GetMaterials(ctx context.Context) ([]models.Material, error)
	SaveMaterial(ctx context.Context, m models.Material) (int64, error)
	UpdateMaterialFields(ctx context.Context, id int64, updates map[string]interface{}) error
	SoftDeleteMaterial(ctx context.Context, id int64) error
}

type RequestRepository interface {
	SaveContactRequest(ctx context.Context, r models.ContactRequest) (int64, error)
	GetContactRequests(ctx context.Context, status string, limit, offset int) ([]models.ContactRequest, error)
	UpdateContactRequestStatus(ctx context.Context, id int64, status models.ContactStatus, adminNotes *string) error
	SaveCustomRequest(ctx context.Context, r models.CustomRequest) (int64, error)
	GetCustomRequests(ctx context.Context, status string, limit, offset int) ([]models.CustomRequest, error)
	UpdateCustomRequestFields(ctx context.Context, id int64, updates map[string]interface{}) error
}

type AdminRepository interface {
	GetAdminByUsername(ctx context.Context, username string) (*models.AdminUser, error)
	SaveAdmin(ctx context.Context, admin models.AdminUser) (int64, error)
	UpdateLastLogin(ctx context.Context, id int64) error
	GetDashboardStats(ctx context.Context) (*models.DashboardStats, error)
}

type SettingsRepository interface {
	GetSiteSettings(ctx context.Context) ([]models.SiteSetting, error)
	UpsertSiteSetting(ctx context.Context, key, value string, settingType models.SettingType) error
	GetPaymentInfo(ctx context.Context) ([]models.PaymentInfo, error)
}

// SelectionRepository persists per-client sculpture selections: an ordered,
// deduplicated id list keyed by a client-generated uuid.
type SelectionRepository interface {
	AddSelection(ctx context.Context, clientID uuid.UUID, sculptureID int64) error
	RemoveSelection(ctx context.Context, clientID uuid.UUID, sculptureID int64) error
	ClearSelections(ctx context.Context, clientID uuid.UUID) error
	GetSelections(ctx context.Context, clientID uuid.UUID) ([]int64, error)
	IsSelected(ctx context.Context, clientID uuid.UUID, sculptureID int64) (bool, error)
}
