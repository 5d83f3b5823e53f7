package app

import (
	"context"
	"log/slog"

	httpapp "sculpture_shop/internal/app/http"
	"sculpture_shop/internal/config"
	"sculpture_shop/internal/repository"
	adminsvc "sculpture_shop/internal/services/admin_service"
	catalogsvc "sculpture_shop/internal/services/catalog_service"
	inquirysvc "sculpture_shop/internal/services/inquiry_service"
	selectionsvc "sculpture_shop/internal/services/selection_service"
	settingssvc "sculpture_shop/internal/services/settings_service"
	taxonomysvc "sculpture_shop/internal/services/taxonomy_service"
	redisapp "sculpture_shop/internal/storage/redis"
	httprouters "sculpture_shop/internal/transport/http"
)

type App struct {
	HTTPServer *httpapp.Server
	Repo       *repository.Repository
	Redis      *redisapp.Client
}

func New(ctx context.Context, log *slog.Logger, cfg *config.Config) *App {
	redisClient := redisapp.NewClient(cfg.Redis.RedisAddr, cfg.Redis.RedisPassword, cfg.Redis.RedisDB)

	repo, err := repository.NewRepository(ctx, cfg.DSN, redisClient)
	if err != nil {
		panic(err)
	}

	// schema DDL is idempotent, so every start converges the database
	if err := repo.InitSchema(ctx); err != nil {
		panic(err)
	}

	catalogService := catalogsvc.NewCatalogService(log, repo.Sculpture)
	taxonomyService := taxonomysvc.NewTaxonomyService(log, repo.Category, repo.Material)
	inquiryService := inquirysvc.NewInquiryService(log, repo.Request)
	adminService := adminsvc.NewAdminService(log, repo.Admin, cfg.JWTSecret, cfg.TokenTTL)
	settingsService := settingssvc.NewSettingsService(log, repo.Settings, cfg.SettingsTTL)
	selectionService := selectionsvc.NewSelectionService(log, repo.Selection, repo.Sculpture)

	routers := httprouters.NewRouter(
		log,
		cfg.Env,
		catalogService,
		taxonomyService,
		inquiryService,
		adminService,
		settingsService,
		selectionService,
	)

	healthCheck := func(ctx context.Context) error {
		if err := repo.Ping(ctx); err != nil {
			return err
		}
		return redisClient.HealthCheck(ctx)
	}

	server := httpapp.New(log, cfg.SessionKey, cfg.HTTP.Host, cfg.HTTP.Port, routers, healthCheck)

	return &App{
		HTTPServer: server,
		Repo:       repo,
		Redis:      redisClient,
	}
}
