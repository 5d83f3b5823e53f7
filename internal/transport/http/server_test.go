package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"sculpture_shop/internal/catalog"
	"sculpture_shop/internal/domain/models"
	adminsvc "sculpture_shop/internal/services/admin_service"
	catalogsvc "sculpture_shop/internal/services/catalog_service"
	"sculpture_shop/internal/transport/http/dto"
	httpapp "sculpture_shop/internal/transport/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doRequest(t *testing.T, e *echo.Echo, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return rec, env
}

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListSculptures(ctx context.Context, f catalog.Filter) (*dto.SculptureListResponse, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SculptureListResponse), args.Error(1)
}

func (m *MockCatalogService) CountSculptures(ctx context.Context, f catalog.Filter) (int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCatalogService) GetSculptureByID(ctx context.Context, id int64) (*dto.SculptureDetailResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SculptureDetailResponse), args.Error(1)
}

func (m *MockCatalogService) GetSculptureBySlug(ctx context.Context, slug string) (*dto.SculptureDetailResponse, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SculptureDetailResponse), args.Error(1)
}

func (m *MockCatalogService) GetFeaturedSculptures(ctx context.Context, limit int) ([]models.Sculpture, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Sculpture), args.Error(1)
}

func (m *MockCatalogService) GetRelatedSculptures(ctx context.Context, id int64, limit int) ([]models.Sculpture, error) {
	args := m.Called(ctx, id, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Sculpture), args.Error(1)
}

func (m *MockCatalogService) GetImages(ctx context.Context, sculptureID int64) ([]models.SculptureImage, error) {
	args := m.Called(ctx, sculptureID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SculptureImage), args.Error(1)
}

func (m *MockCatalogService) CreateSculpture(ctx context.Context, req dto.CreateSculptureRequest) (*models.Sculpture, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Sculpture), args.Error(1)
}

func (m *MockCatalogService) UpdateSculpture(ctx context.Context, req dto.UpdateSculptureRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *MockCatalogService) DeleteSculpture(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCatalogService) AddImage(ctx context.Context, req dto.AddImageRequest) (int64, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCatalogService) DeleteImage(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockInquiryService struct {
	mock.Mock
}

func (m *MockInquiryService) CreateContactRequest(ctx context.Context, req dto.ContactRequestInput) (int64, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInquiryService) GetContactRequests(ctx context.Context, status string, limit, offset int) ([]models.ContactRequest, error) {
	args := m.Called(ctx, status, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ContactRequest), args.Error(1)
}

func (m *MockInquiryService) UpdateContactRequestStatus(ctx context.Context, req dto.UpdateContactStatusRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *MockInquiryService) CreateCustomRequest(ctx context.Context, req dto.CustomRequestInput) (int64, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInquiryService) GetCustomRequests(ctx context.Context, status string, limit, offset int) ([]models.CustomRequest, error) {
	args := m.Called(ctx, status, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CustomRequest), args.Error(1)
}

func (m *MockInquiryService) UpdateCustomRequest(ctx context.Context, req dto.UpdateCustomRequestInput) error {
	return m.Called(ctx, req).Error(0)
}

type MockAdminService struct {
	mock.Mock
}

func (m *MockAdminService) Login(ctx context.Context, username, password string) (*dto.LoginResponse, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.LoginResponse), args.Error(1)
}

func (m *MockAdminService) VerifyToken(token string) (*models.AdminIdentity, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AdminIdentity), args.Error(1)
}

func (m *MockAdminService) CreateAdmin(ctx context.Context, req dto.CreateAdminRequest) (int64, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAdminService) GetDashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DashboardStats), args.Error(1)
}

type MockSettingsService struct {
	mock.Mock
}

func (m *MockSettingsService) GetSiteSettings(ctx context.Context) ([]models.SiteSetting, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SiteSetting), args.Error(1)
}

func (m *MockSettingsService) UpdateSetting(ctx context.Context, req dto.UpdateSettingRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *MockSettingsService) GetPaymentInfo(ctx context.Context) ([]models.PaymentInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PaymentInfo), args.Error(1)
}

type MockSelectionService struct {
	mock.Mock
}

func (m *MockSelectionService) Add(ctx context.Context, clientID uuid.UUID, sculptureID int64) error {
	return m.Called(ctx, clientID, sculptureID).Error(0)
}

func (m *MockSelectionService) Remove(ctx context.Context, clientID uuid.UUID, sculptureID int64) error {
	return m.Called(ctx, clientID, sculptureID).Error(0)
}

func (m *MockSelectionService) Clear(ctx context.Context, clientID uuid.UUID) error {
	return m.Called(ctx, clientID).Error(0)
}

func (m *MockSelectionService) GetSelected(ctx context.Context, clientID uuid.UUID) ([]models.Sculpture, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Sculpture), args.Error(1)
}

func (m *MockSelectionService) IsSelected(ctx context.Context, clientID uuid.UUID, sculptureID int64) (bool, error) {
	args := m.Called(ctx, clientID, sculptureID)
	return args.Bool(0), args.Error(1)
}

type testServices struct {
	catalog   *MockCatalogService
	inquiry   *MockInquiryService
	admin     *MockAdminService
	settings  *MockSettingsService
	selection *MockSelectionService
}

func newTestServer(t *testing.T) (*echo.Echo, testServices) {
	t.Helper()

	svcs := testServices{
		catalog:   new(MockCatalogService),
		inquiry:   new(MockInquiryService),
		admin:     new(MockAdminService),
		settings:  new(MockSettingsService),
		selection: new(MockSelectionService),
	}

	r := httpapp.NewRouter(discardLogger(), "test", svcs.catalog, nil, svcs.inquiry, svcs.admin, svcs.settings, svcs.selection)

	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}

	method := e.Group("/api/method")
	method.GET("/sculpture_shop.api.get_sculptures", r.GetSculptures)
	method.GET("/sculpture_shop.api.get_sculptures_count", r.GetSculpturesCount)
	method.GET("/sculpture_shop.api.get_sculpture_by_id", r.GetSculptureByID)
	method.GET("/sculpture_shop.api.get_sculpture_by_slug", r.GetSculptureBySlug)
	method.POST("/sculpture_shop.api.create_contact_request", r.CreateContactRequest)
	method.POST("/sculpture_shop.api.admin_login", r.AdminLogin)
	method.POST("/sculpture_shop.api.add_selected_sculpture", r.AddSelectedSculpture)
	method.GET("/sculpture_shop.api.get_selected_sculptures", r.GetSelectedSculptures)

	admin := method.Group("", r.AuthRequired)
	admin.GET("/sculpture_shop.api.verify_token", r.VerifyToken)
	admin.POST("/sculpture_shop.api.delete_sculpture", r.DeleteSculpture)
	admin.POST("/sculpture_shop.api.update_site_setting", r.UpdateSiteSetting)

	return e, svcs
}

func TestGetSculptures(t *testing.T) {
	e, svcs := newTestServer(t)

	wanted := &dto.SculptureListResponse{
		Sculptures: []models.Sculpture{{ID: 1, Name: "Nataraja", Slug: "nataraja"}},
		TotalCount: 1,
		Limit:      catalog.DefaultLimit,
	}

	svcs.catalog.On("ListSculptures", mock.Anything, mock.MatchedBy(func(f catalog.Filter) bool {
		return f.CategoryID != nil && *f.CategoryID == 2 &&
			f.MinPrice != nil && *f.MinPrice == 1000 &&
			f.MaxPrice != nil && *f.MaxPrice == 25000
	})).Return(wanted, nil).Once()

	rec, env := doRequest(t, e, http.MethodGet,
		"/api/method/sculpture_shop.api.get_sculptures?category_id=2&min_price=1000&max_price=25000", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "Sculptures retrieved successfully", env.Message)

	var data dto.SculptureListResponse
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, int64(1), data.TotalCount)
	assert.Equal(t, "nataraja", data.Sculptures[0].Slug)

	svcs.catalog.AssertExpectations(t)
}

func TestGetSculpturesCount(t *testing.T) {
	e, svcs := newTestServer(t)

	svcs.catalog.On("CountSculptures", mock.Anything, mock.Anything).Return(int64(42), nil).Once()

	rec, env := doRequest(t, e, http.MethodGet, "/api/method/sculpture_shop.api.get_sculptures_count", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Count retrieved successfully", env.Message)

	var data map[string]int64
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, int64(42), data["total_count"])
}

func TestGetSculptureByID(t *testing.T) {
	t.Run("missing id", func(t *testing.T) {
		e, _ := newTestServer(t)

		rec, env := doRequest(t, e, http.MethodGet, "/api/method/sculpture_shop.api.get_sculpture_by_id", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.False(t, env.Success)
		assert.Equal(t, "Sculpture ID is required", env.Message)
	})

	t.Run("not found", func(t *testing.T) {
		e, svcs := newTestServer(t)

		svcs.catalog.On("GetSculptureByID", mock.Anything, int64(99)).
			Return(nil, catalogsvc.ErrSculptureNotFound).Once()

		rec, env := doRequest(t, e, http.MethodGet, "/api/method/sculpture_shop.api.get_sculpture_by_id?id=99", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.False(t, env.Success)
		assert.Equal(t, "Sculpture not found", env.Message)
		assert.Nil(t, env.Data)
	})

	t.Run("found", func(t *testing.T) {
		e, svcs := newTestServer(t)

		detail := &dto.SculptureDetailResponse{
			Sculpture: models.Sculpture{ID: 7, Name: "Dancing Shiva", Slug: "dancing-shiva"},
			Images:    []models.SculptureImage{{ID: 1, SculptureID: 7, IsPrimary: true}},
		}

		svcs.catalog.On("GetSculptureByID", mock.Anything, int64(7)).Return(detail, nil).Once()

		rec, env := doRequest(t, e, http.MethodGet, "/api/method/sculpture_shop.api.get_sculpture_by_id?id=7", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Sculpture retrieved successfully", env.Message)

		var data dto.SculptureDetailResponse
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, "dancing-shiva", data.Slug)
		assert.Len(t, data.Images, 1)
	})
}

func TestGetSculptureBySlug(t *testing.T) {
	e, _ := newTestServer(t)

	rec, env := doRequest(t, e, http.MethodGet, "/api/method/sculpture_shop.api.get_sculpture_by_slug", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Sculpture slug is required", env.Message)
}

func TestCreateContactRequest(t *testing.T) {
	t.Run("missing mobile number", func(t *testing.T) {
		e, svcs := newTestServer(t)

		rec, env := doRequest(t, e, http.MethodPost,
			"/api/method/sculpture_shop.api.create_contact_request",
			`{"customer_name": "Asha"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.False(t, env.Success)
		assert.Equal(t, "Customer name and mobile number are required", env.Message)
		svcs.inquiry.AssertNotCalled(t, "CreateContactRequest")
	})

	t.Run("submitted", func(t *testing.T) {
		e, svcs := newTestServer(t)

		svcs.inquiry.On("CreateContactRequest", mock.Anything, mock.MatchedBy(func(req dto.ContactRequestInput) bool {
			return req.CustomerName == "Asha" && req.MobileNumber == "9876543210"
		})).Return(int64(11), nil).Once()

		rec, env := doRequest(t, e, http.MethodPost,
			"/api/method/sculpture_shop.api.create_contact_request",
			`{"customer_name": "Asha", "mobile_number": "9876543210", "selected_sculpture_ids": [3, 7]}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, env.Success)
		assert.Equal(t, "Contact request submitted successfully", env.Message)

		svcs.inquiry.AssertExpectations(t)
	})
}

func TestAdminLogin(t *testing.T) {
	t.Run("missing password", func(t *testing.T) {
		e, _ := newTestServer(t)

		rec, env := doRequest(t, e, http.MethodPost,
			"/api/method/sculpture_shop.api.admin_login",
			`{"username": "owner"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Username and password are required", env.Message)
	})

	t.Run("wrong password", func(t *testing.T) {
		e, svcs := newTestServer(t)

		svcs.admin.On("Login", mock.Anything, "owner", "nope").
			Return(nil, adminsvc.ErrInvalidCredentials).Once()

		rec, env := doRequest(t, e, http.MethodPost,
			"/api/method/sculpture_shop.api.admin_login",
			`{"username": "owner", "password": "nope"}`)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, env.Success)
		assert.Equal(t, "Invalid credentials", env.Message)
	})

	t.Run("success", func(t *testing.T) {
		e, svcs := newTestServer(t)

		svcs.admin.On("Login", mock.Anything, "owner", "secret-pass").
			Return(&dto.LoginResponse{ID: 1, Username: "owner", FullName: "Shop Owner", Token: "jwt-token"}, nil).Once()

		rec, env := doRequest(t, e, http.MethodPost,
			"/api/method/sculpture_shop.api.admin_login",
			`{"username": "owner", "password": "secret-pass"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Login successful", env.Message)

		var data dto.LoginResponse
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, "jwt-token", data.Token)
		assert.Equal(t, "Shop Owner", data.FullName)
	})
}

func TestAuthRequired(t *testing.T) {
	t.Run("no token", func(t *testing.T) {
		e, _ := newTestServer(t)

		rec, env := doRequest(t, e, http.MethodGet, "/api/method/sculpture_shop.api.verify_token", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Access denied. No token provided.", env.Message)
	})

	t.Run("invalid token", func(t *testing.T) {
		e, svcs := newTestServer(t)

		svcs.admin.On("VerifyToken", "garbage").Return(nil, errors.New("bad token")).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/method/sculpture_shop.api.verify_token", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer garbage")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		var env envelope
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Invalid or expired token", env.Message)
	})

	t.Run("valid token reaches handler", func(t *testing.T) {
		e, svcs := newTestServer(t)

		identity := &models.AdminIdentity{ID: 1, Username: "owner", FullName: "Shop Owner"}
		svcs.admin.On("VerifyToken", "good-token").Return(identity, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/method/sculpture_shop.api.verify_token", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer good-token")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		var env envelope
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Token is valid", env.Message)

		var data models.AdminIdentity
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, "owner", data.Username)
	})

	t.Run("delete sculpture behind auth", func(t *testing.T) {
		e, svcs := newTestServer(t)

		svcs.admin.On("VerifyToken", "good-token").Return(&models.AdminIdentity{ID: 1}, nil).Once()
		svcs.catalog.On("DeleteSculpture", mock.Anything, int64(5)).Return(nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/method/sculpture_shop.api.delete_sculpture",
			strings.NewReader(`{"id": 5}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		req.Header.Set(echo.HeaderAuthorization, "Bearer good-token")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		var env envelope
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Sculpture deleted successfully", env.Message)

		svcs.catalog.AssertExpectations(t)
	})
}

func TestUpdateSiteSetting(t *testing.T) {
	doUpdate := func(t *testing.T, e *echo.Echo, body string) (*httptest.ResponseRecorder, envelope) {
		t.Helper()

		req := httptest.NewRequest(http.MethodPost, "/api/method/sculpture_shop.api.update_site_setting",
			strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		req.Header.Set(echo.HeaderAuthorization, "Bearer good-token")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		var env envelope
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

		return rec, env
	}

	t.Run("accepts the setting_key wire fields", func(t *testing.T) {
		e, svcs := newTestServer(t)

		svcs.admin.On("VerifyToken", "good-token").Return(&models.AdminIdentity{ID: 1}, nil).Once()
		svcs.settings.On("UpdateSetting", mock.Anything, mock.MatchedBy(func(req dto.UpdateSettingRequest) bool {
			return req.Key == "shop_name" && req.Value == "My Shop"
		})).Return(nil).Once()

		rec, env := doUpdate(t, e, `{"setting_key": "shop_name", "setting_value": "My Shop"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, env.Success)
		assert.Equal(t, "Setting updated successfully", env.Message)

		svcs.settings.AssertExpectations(t)
	})

	t.Run("missing setting_key", func(t *testing.T) {
		e, svcs := newTestServer(t)

		svcs.admin.On("VerifyToken", "good-token").Return(&models.AdminIdentity{ID: 1}, nil).Once()

		rec, env := doUpdate(t, e, `{"setting_value": "orphan"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Setting key is required", env.Message)
		svcs.settings.AssertNotCalled(t, "UpdateSetting")
	})
}

func TestSelections(t *testing.T) {
	clientID := uuid.New()

	t.Run("add", func(t *testing.T) {
		e, svcs := newTestServer(t)

		svcs.selection.On("Add", mock.Anything, clientID, int64(42)).Return(nil).Once()

		rec, env := doRequest(t, e, http.MethodPost,
			"/api/method/sculpture_shop.api.add_selected_sculpture",
			`{"client_id": "`+clientID.String()+`", "sculpture_id": 42}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Sculpture added to selection", env.Message)
	})

	t.Run("get preserves order", func(t *testing.T) {
		e, svcs := newTestServer(t)

		selected := []models.Sculpture{
			{ID: 42, Slug: "nataraja"},
			{ID: 7, Slug: "dancing-shiva"},
		}
		svcs.selection.On("GetSelected", mock.Anything, clientID).Return(selected, nil).Once()

		rec, env := doRequest(t, e, http.MethodGet,
			"/api/method/sculpture_shop.api.get_selected_sculptures?client_id="+clientID.String(), "")

		assert.Equal(t, http.StatusOK, rec.Code)

		var data dto.SelectionResponse
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, 2, data.TotalCount)
		require.Len(t, data.Sculptures, 2)
		assert.Equal(t, "nataraja", data.Sculptures[0].Slug)
		assert.Equal(t, "dancing-shiva", data.Sculptures[1].Slug)
	})

	t.Run("bad client id", func(t *testing.T) {
		e, _ := newTestServer(t)

		rec, env := doRequest(t, e, http.MethodGet,
			"/api/method/sculpture_shop.api.get_selected_sculptures?client_id=not-a-uuid", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Client ID is required", env.Message)
	})
}
