package http

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"sculpture_shop/internal/catalog"
	"sculpture_shop/internal/domain/models"
	"sculpture_shop/internal/lib/logger/sl"
	"sculpture_shop/internal/transport/http/dto"
	"sculpture_shop/internal/transport/http/dto/response"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type CatalogService interface {
	ListSculptures(ctx context.Context, f catalog.Filter) (*dto.SculptureListResponse, error)
	CountSculptures(ctx context.Context, f catalog.Filter) (int64, error)
	GetSculptureByID(ctx context.Context, id int64) (*dto.SculptureDetailResponse, error)
	GetSculptureBySlug(ctx context.Context, slug string) (*dto.SculptureDetailResponse, error)
	GetFeaturedSculptures(ctx context.Context, limit int) ([]models.Sculpture, error)
	GetRelatedSculptures(ctx context.Context, id int64, limit int) ([]models.Sculpture, error)
	GetImages(ctx context.Context, sculptureID int64) ([]models.SculptureImage, error)
	CreateSculpture(ctx context.Context, req dto.CreateSculptureRequest) (*models.Sculpture, error)
	UpdateSculpture(ctx context.Context, req dto.UpdateSculptureRequest) error
	DeleteSculpture(ctx context.Context, id int64) error
	AddImage(ctx context.Context, req dto.AddImageRequest) (int64, error)
	DeleteImage(ctx context.Context, id int64) error
}

type TaxonomyService interface {
	GetCategories(ctx context.Context) ([]models.Category, error)
	GetCategoryByID(ctx context.Context, id int64) (*models.Category, error)
	GetCategoriesWithCount(ctx context.Context) ([]models.CategoryWithCount, error)
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (int64, error)
	UpdateCategory(ctx context.Context, req dto.UpdateCategoryRequest) error
	DeleteCategory(ctx context.Context, id int64) error
	GetMaterials(ctx context.Context) ([]models.Material, error)
	CreateMaterial(ctx context.Context, req dto.CreateMaterialRequest) (int64, error)
	UpdateMaterial(ctx context.Context, req dto.UpdateMaterialRequest) error
	DeleteMaterial(ctx context.Context, id int64) error
}

type InquiryService interface {
	CreateContactRequest(ctx context.Context, req dto.ContactRequestInput) (int64, error)
	GetContactRequests(ctx context.Context, status string, limit, offset int) ([]models.ContactRequest, error)
	UpdateContactRequestStatus(ctx context.Context, req dto.UpdateContactStatusRequest) error
	CreateCustomRequest(ctx context.Context, req dto.CustomRequestInput) (int64, error)
	GetCustomRequests(ctx context.Context, status string, limit, offset int) ([]models.CustomRequest, error)
	UpdateCustomRequest(ctx context.Context, req dto.UpdateCustomRequestInput) error
}

type AdminService interface {
	Login(ctx context.Context, username, password string) (*dto.LoginResponse, error)
	VerifyToken(token string) (*models.AdminIdentity, error)
	CreateAdmin(ctx context.Context, req dto.CreateAdminRequest) (int64, error)
	GetDashboardStats(ctx context.Context) (*models.DashboardStats, error)
}

type SettingsService interface {
	GetSiteSettings(ctx context.Context) ([]models.SiteSetting, error)
	UpdateSetting(ctx context.Context, req dto.UpdateSettingRequest) error
	GetPaymentInfo(ctx context.Context) ([]models.PaymentInfo, error)
}

type SelectionService interface {
	Add(ctx context.Context, clientID uuid.UUID, sculptureID int64) error
	Remove(ctx context.Context, clientID uuid.UUID, sculptureID int64) error
	Clear(ctx context.Context, clientID uuid.UUID) error
	GetSelected(ctx context.Context, clientID uuid.UUID) ([]models.Sculpture, error)
	IsSelected(ctx context.Context, clientID uuid.UUID, sculptureID int64) (bool, error)
}

type Routers struct {
	log              *slog.Logger
	env              string
	CatalogService   CatalogService
	TaxonomyService  TaxonomyService
	InquiryService   InquiryService
	AdminService     AdminService
	SettingsService  SettingsService
	SelectionService SelectionService
}

func NewRouter(
	log *slog.Logger,
	env string,
	catalogService CatalogService,
	taxonomyService TaxonomyService,
	inquiryService InquiryService,
	adminService AdminService,
	settingsService SettingsService,
	selectionService SelectionService,
) *Routers {
	return &Routers{
		log:              log,
		env:              env,
		CatalogService:   catalogService,
		TaxonomyService:  taxonomyService,
		InquiryService:   inquiryService,
		AdminService:     adminService,
		SettingsService:  settingsService,
		SelectionService: selectionService,
	}
}

// internalError hides failure detail from clients. In the local
// environment the underlying error is echoed back for debugging.
func (r *Routers) internalError(c echo.Context, log *slog.Logger, err error) error {
	log.Error("request failed", sl.Err(err))

	resp := response.Fail(response.MsgInternalError)
	if r.env == "local" {
		resp.Data = err.Error()
	}

	return c.JSON(http.StatusInternalServerError, resp)
}

// queryID parses a positive integer query parameter, returning 0 when
// the parameter is absent or malformed.
func queryID(c echo.Context, name string) int64 {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0
	}

	return id
}

func queryInt(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}

	return v
}
