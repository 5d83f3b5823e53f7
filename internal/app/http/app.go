package httpapp

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	appmiddleware "sculpture_shop/internal/middleware"
	httprouters "sculpture_shop/internal/transport/http"

	"github.com/arl/statsviz"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

type Server struct {
	m       *http.ServeMux
	log     *slog.Logger
	e       *echo.Echo
	routers *httprouters.Routers
	health  func(ctx context.Context) error
	host    string
	port    string
}

func New(log *slog.Logger, sessionKey string, host, port string, routers *httprouters.Routers, health func(ctx context.Context) error) *Server {
	e := echo.New()
	e.HideBanner = true

	validate := validator.New()
	e.Validator = &CustomValidator{validator: validate}

	e.Use(session.Middleware(sessions.NewCookieStore([]byte(sessionKey))))

	e.Use(middleware.CORS())
	e.Use(middleware.Recover())
	e.Use(appmiddleware.PrometheusMetrics)

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogStatus:   true,
		LogRemoteIP: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Info("request",
				slog.String("URI", v.URI),
				slog.Int("status", v.Status),
				slog.String("remote ip", v.RemoteIP),
			)

			return nil
		},
	}))

	mux := http.NewServeMux()
	err := statsviz.Register(mux)
	if err != nil {
		log.Info("Statsviz start with error", slog.Any("error:", err.Error()))
	}

	return &Server{
		m:       mux,
		log:     log,
		e:       e,
		routers: routers,
		health:  health,
		host:    host,
		port:    port,
	}
}

func (s *Server) MustRun() {
	const op = "http.Server.MustRun"

	s.log.Info(op, slog.String("Start", "server"))

	if err := s.Start(); err != nil {
		panic(err)
	}
}

func (s *Server) Start() error {
	const op = "http.Server.Start"

	if err := s.e.Start(fmt.Sprintf(":%s", s.port)); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("%s server stopped: %w", op, err)
	}

	return nil
}

func (s *Server) Stop() error {
	const op = "http.Server.Stop"

	optCtx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	s.log.Info("stopping", op, "http server")

	if err := s.e.Shutdown(optCtx); err != nil {
		return fmt.Errorf("%s could not shutdown server gracefuly: %w", op, err)
	}

	return nil
}

// BuildRouters registers the public API surface. Method-style route names
// keep URL compatibility with the previous backend.
func (s *Server) BuildRouters() {
	api := s.e.Group("/api")
	{
		api.GET("/health", func(c echo.Context) error {
			if s.health != nil {
				if err := s.health(c.Request().Context()); err != nil {
					return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unhealthy", "error": err.Error()})
				}
			}
			return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
		})

		method := api.Group("/method")
		{
			method.GET("/sculpture_shop.api.get_sculptures", s.routers.GetSculptures)
			method.GET("/sculpture_shop.api.get_sculptures_count", s.routers.GetSculpturesCount)
			method.GET("/sculpture_shop.api.get_sculpture_by_id", s.routers.GetSculptureByID)
			method.GET("/sculpture_shop.api.get_sculpture_by_slug", s.routers.GetSculptureBySlug)
			method.GET("/sculpture_shop.api.get_sculpture_images", s.routers.GetSculptureImages)
			method.GET("/sculpture_shop.api.get_featured_sculptures", s.routers.GetFeaturedSculptures)
			method.GET("/sculpture_shop.api.get_related_sculptures", s.routers.GetRelatedSculptures)

			method.GET("/sculpture_shop.api.get_categories", s.routers.GetCategories)
			method.GET("/sculpture_shop.api.get_category_by_id", s.routers.GetCategoryByID)
			method.GET("/sculpture_shop.api.get_categories_with_count", s.routers.GetCategoriesWithCount)
			method.GET("/sculpture_shop.api.get_materials", s.routers.GetMaterials)

			method.POST("/sculpture_shop.api.create_contact_request", s.routers.CreateContactRequest)
			method.POST("/sculpture_shop.api.create_custom_request", s.routers.CreateCustomRequest)

			method.GET("/sculpture_shop.api.get_site_settings", s.routers.GetSiteSettings)
			method.GET("/sculpture_shop.api.get_payment_info", s.routers.GetPaymentInfo)

			method.POST("/sculpture_shop.api.admin_login", s.routers.AdminLogin)
			method.POST("/sculpture_shop.api.admin_logout", s.routers.AdminLogout)

			method.POST("/sculpture_shop.api.add_selected_sculpture", s.routers.AddSelectedSculpture)
			method.POST("/sculpture_shop.api.remove_selected_sculpture", s.routers.RemoveSelectedSculpture)
			method.POST("/sculpture_shop.api.clear_selected_sculptures", s.routers.ClearSelectedSculptures)
			method.GET("/sculpture_shop.api.get_selected_sculptures", s.routers.GetSelectedSculptures)
			method.GET("/sculpture_shop.api.is_sculpture_selected", s.routers.IsSculptureSelected)

			admin := method.Group("", s.routers.AuthRequired)
			{
				admin.GET("/sculpture_shop.api.verify_token", s.routers.VerifyToken)
				admin.GET("/sculpture_shop.api.get_dashboard_stats", s.routers.GetDashboardStats)
				admin.POST("/sculpture_shop.api.create_admin", s.routers.CreateAdmin)

				admin.POST("/sculpture_shop.api.add_sculpture", s.routers.AddSculpture)
				admin.POST("/sculpture_shop.api.update_sculpture", s.routers.UpdateSculpture)
				admin.POST("/sculpture_shop.api.delete_sculpture", s.routers.DeleteSculpture)
				admin.POST("/sculpture_shop.api.add_sculpture_image", s.routers.AddSculptureImage)
				admin.POST("/sculpture_shop.api.delete_sculpture_image", s.routers.DeleteSculptureImage)

				admin.POST("/sculpture_shop.api.add_category", s.routers.AddCategory)
				admin.POST("/sculpture_shop.api.update_category", s.routers.UpdateCategory)
				admin.POST("/sculpture_shop.api.delete_category", s.routers.DeleteCategory)
				admin.POST("/sculpture_shop.api.add_material", s.routers.AddMaterial)
				admin.POST("/sculpture_shop.api.update_material", s.routers.UpdateMaterial)
				admin.POST("/sculpture_shop.api.delete_material", s.routers.DeleteMaterial)

				admin.GET("/sculpture_shop.api.get_contact_requests", s.routers.GetContactRequests)
				admin.POST("/sculpture_shop.api.update_contact_request_status", s.routers.UpdateContactRequestStatus)
				admin.GET("/sculpture_shop.api.get_custom_requests", s.routers.GetCustomRequests)
				admin.POST("/sculpture_shop.api.update_custom_request", s.routers.UpdateCustomRequest)

				admin.POST("/sculpture_shop.api.update_site_setting", s.routers.UpdateSiteSetting)
			}
		}
	}

	s.e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	debug := s.e.Group("/debug")
	{
		debug.GET("/statsviz/", echo.WrapHandler(s.m))
		debug.GET("/statsviz/*", echo.WrapHandler(s.m))
	}

	swagger := s.e.Group("/swag")
	{
		swagger.GET("/swagger/*", echoSwagger.WrapHandler)
	}
}
