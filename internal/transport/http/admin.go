package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"sculpture_shop/internal/domain/models"
	"sculpture_shop/internal/lib/logger/sl"
	adminsvc "sculpture_shop/internal/services/admin_service"
	settingssvc "sculpture_shop/internal/services/settings_service"
	"sculpture_shop/internal/transport/http/dto"
	"sculpture_shop/internal/transport/http/dto/request"
	"sculpture_shop/internal/transport/http/dto/response"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

// adminContextKey is where AuthRequired stores the verified identity.
const adminContextKey = "admin"

// AuthRequired verifies the Authorization bearer token and stores the
// admin identity in the request context.
func (r *Routers) AuthRequired(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)

		token := strings.TrimPrefix(header, "Bearer ")
		if header == "" || token == header {
			return c.JSON(http.StatusUnauthorized, response.Fail(response.MsgNoToken))
		}

		identity, err := r.AdminService.VerifyToken(token)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, response.Fail(response.MsgInvalidToken))
		}

		c.Set(adminContextKey, identity)

		return next(c)
	}
}

// AdminLogin godoc
// @Summary Authenticate an admin
// @Description Returns a JWT token together with the admin profile.
// @Tags admin
// @Accept json
// @Produce json
// @Param request body request.LoginRequest true "Credentials"
// @Success 200 {object} response.Response{data=dto.LoginResponse}
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /api/method/sculpture_shop.api.admin_login [post]
func (r *Routers) AdminLogin(c echo.Context) error {
	const op = "http.routers.AdminLogin"

	log := r.log.With(slog.String("op", op))

	var req request.LoginRequest

	if err := c.Bind(&req); err != nil {
		log.Warn("failed to bind request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.Fail(response.MsgInvalidRequest))
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.Fail(response.MsgLoginFieldsNeeded))
	}

	resp, err := r.AdminService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, adminsvc.ErrInvalidCredentials) {
			log.Warn("login rejected", slog.String("username", req.Username))
			return c.JSON(http.StatusUnauthorized, response.Fail(response.MsgInvalidCredentials))
		}

		return r.internalError(c, log, err)
	}

	if sess, err := session.Get("session", c); err == nil {
		sess.Values["admin_id"] = resp.ID
		if err := sess.Save(c.Request(), c.Response()); err != nil {
			log.Warn("failed to save session", sl.Err(err))
		}
	}

	log.Info("admin logged in", slog.String("username", resp.Username))

	return c.JSON(http.StatusOK, response.OKWithMessage("Login successful", resp))
}

// AdminLogout godoc
// @Summary Clear the cookie session
// @Description Drops the session cookie. Issued tokens stay valid until expiry.
// @Tags admin
// @Produce json
// @Success 200 {object} response.Response
// @Router /api/method/sculpture_shop.api.admin_logout [post]
func (r *Routers) AdminLogout(c echo.Context) error {
	const op = "http.routers.AdminLogout"

	log := r.log.With(slog.String("op", op))

	if sess, err := session.Get("session", c); err == nil {
		delete(sess.Values, "admin_id")
		sess.Options.MaxAge = -1
		if err := sess.Save(c.Request(), c.Response()); err != nil {
			log.Warn("failed to clear session", sl.Err(err))
		}
	}

	return c.JSON(http.StatusOK, response.OKWithMessage("Logout successful", nil))
}

// VerifyToken godoc
// @Summary Validate the current token
// @Tags admin
// @Produce json
// @Success 200 {object} response.Response{data=models.AdminIdentity}
// @Failure 401 {object} response.Response
// @Security ApiKeyAuth
// @Router /api/method/sculpture_shop.api.verify_token [get]
func (r *Routers) VerifyToken(c echo.Context) error {
	identity, _ := c.Get(adminContextKey).(*models.AdminIdentity)

	return c.JSON(http.StatusOK, response.OKWithMessage("Token is valid", identity))
}

// CreateAdmin godoc
// @Summary Create an admin account
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.CreateAdminRequest true "New admin fields"
// @Success 200 {object} response.Response{data=object{id=int}}
// @Failure 400 {object} response.Response
// @Security ApiKeyAuth
// @Router /api/method/sculpture_shop.api.create_admin [post]
func (r *Routers) CreateAdmin(c echo.Context) error {
	const op = "http.routers.CreateAdmin"

	log := r.log.With(slog.String("op", op))

	var req dto.CreateAdminRequest

	if err := c.Bind(&req); err != nil {
		log.Warn("failed to bind request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.Fail(response.MsgInvalidRequest))
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.Fail(response.MsgLoginFieldsNeeded))
	}

	id, err := r.AdminService.CreateAdmin(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, adminsvc.ErrAdminExists) {
			log.Warn("username taken", slog.String("username", req.Username))
			return c.JSON(http.StatusBadRequest, response.Fail(response.MsgUsernameExists))
		}

		return r.internalError(c, log, err)
	}

	log.Info("admin created", slog.Int64("id", id), slog.String("username", req.Username))

	return c.JSON(http.StatusOK, response.OKWithMessage("Admin user created successfully", map[string]int64{"id": id}))
}

// GetDashboardStats godoc
// @Summary Aggregate counters for the admin dashboard
// @Tags admin
// @Produce json
// @Success 200 {object} response.Response{data=models.DashboardStats}
// @Security ApiKeyAuth
// @Router /api/method/sculpture_shop.api.get_dashboard_stats [get]
func (r *Routers) GetDashboardStats(c echo.Context) error {
	const op = "http.routers.GetDashboardStats"

	log := r.log.With(slog.String("op", op))

	stats, err := r.AdminService.GetDashboardStats(c.Request().Context())
	if err != nil {
		return r.internalError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.OKWithMessage("Dashboard stats retrieved successfully", stats))
}

// GetSiteSettings godoc
// @Summary Site settings as a key-value map
// @Tags settings
// @Produce json
// @Success 200 {object} response.Response{data=map[string]string}
// @Router /api/method/sculpture_shop.api.get_site_settings [get]
func (r *Routers) GetSiteSettings(c echo.Context) error {
	const op = "http.routers.GetSiteSettings"

	log := r.log.With(slog.String("op", op))

	settings, err := r.SettingsService.GetSiteSettings(c.Request().Context())
	if err != nil {
		return r.internalError(c, log, err)
	}

	kv := make(map[string]string, len(settings))
	for _, s := range settings {
		kv[s.Key] = s.Value
	}

	return c.JSON(http.StatusOK, response.OKWithMessage("Site settings retrieved successfully", kv))
}

// UpdateSiteSetting godoc
// @Summary Create or replace a site setting
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.UpdateSettingRequest true "Setting key, value and type"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Security ApiKeyAuth
// @Router /api/method/sculpture_shop.api.update_site_setting [post]
func (r *Routers) UpdateSiteSetting(c echo.Context) error {
	const op = "http.routers.UpdateSiteSetting"

	log := r.log.With(slog.String("op", op))

	var req dto.UpdateSettingRequest

	if err := c.Bind(&req); err != nil {
		log.Warn("failed to bind request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.Fail(response.MsgInvalidRequest))
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.Fail("Setting key is required"))
	}

	if err := r.SettingsService.UpdateSetting(c.Request().Context(), req); err != nil {
		if errors.Is(err, settingssvc.ErrInvalidSettingType) {
			return c.JSON(http.StatusBadRequest, response.Fail("Invalid setting type"))
		}

		return r.internalError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.OKWithMessage("Setting updated successfully", nil))
}

// GetPaymentInfo godoc
// @Summary Payment details shown at checkout
// @Tags settings
// @Produce json
// @Success 200 {object} response.Response{data=[]models.PaymentInfo}
// @Router /api/method/sculpture_shop.api.get_payment_info [get]
func (r *Routers) GetPaymentInfo(c echo.Context) error {
	const op = "http.routers.GetPaymentInfo"

	log := r.log.With(slog.String("op", op))

	info, err := r.SettingsService.GetPaymentInfo(c.Request().Context())
	if err != nil {
		return r.internalError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.OKWithMessage("Payment info retrieved successfully", info))
}
