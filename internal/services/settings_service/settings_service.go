package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"sculpture_shop/internal/domain/models"
	"sculpture_shop/internal/lib/logger/sl"
	"sculpture_shop/internal/repository"
	"sculpture_shop/internal/transport/http/dto"

	gocache "github.com/patrickmn/go-cache"
)

var ErrInvalidSettingType = errors.New("invalid setting type")

const (
	settingsCacheKey = "site_settings"
	paymentCacheKey  = "payment_info"
)

// SettingsService serves the rarely-changing site settings and payment
// display records through a small in-process cache. Updates invalidate the
// cache so admins see their change on the next read.
type SettingsService struct {
	log   *slog.Logger
	repo  repository.SettingsRepository
	cache *gocache.Cache
}

func NewSettingsService(log *slog.Logger, repo repository.SettingsRepository, ttl time.Duration) *SettingsService {
	return &SettingsService{
		log:   log,
		repo:  repo,
		cache: gocache.New(ttl, 2*ttl),
	}
}

func (s *SettingsService) GetSiteSettings(ctx context.Context) ([]models.SiteSetting, error) {
	const op = "settings_service.GetSiteSettings"

	if cached, ok := s.cache.Get(settingsCacheKey); ok {
		return cached.([]models.SiteSetting), nil
	}

	settings, err := s.repo.GetSiteSettings(ctx)
	if err != nil {
		s.log.With(slog.String("op", op)).Error("failed to get site settings", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.cache.SetDefault(settingsCacheKey, settings)

	return settings, nil
}

func (s *SettingsService) UpdateSetting(ctx context.Context, req dto.UpdateSettingRequest) error {
	const op = "settings_service.UpdateSetting"

	log := s.log.With(
		slog.String("op", op),
		slog.String("key", req.Key),
	)

	settingType := models.SettingType(req.Type)
	if settingType == "" {
		settingType = models.SettingTypeText
	}
	if !settingType.Valid() {
		log.Warn("invalid setting type", slog.String("type", req.Type))
		return fmt.Errorf("%s: %w", op, ErrInvalidSettingType)
	}

	if err := s.repo.UpsertSiteSetting(ctx, req.Key, req.Value, settingType); err != nil {
		log.Error("failed to upsert setting", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	s.cache.Delete(settingsCacheKey)

	log.Info("setting updated")

	return nil
}

func (s *SettingsService) GetPaymentInfo(ctx context.Context) ([]models.PaymentInfo, error) {
	const op = "settings_service.GetPaymentInfo"

	if cached, ok := s.cache.Get(paymentCacheKey); ok {
		return cached.([]models.PaymentInfo), nil
	}

	info, err := s.repo.GetPaymentInfo(ctx)
	if err != nil {
		s.log.With(slog.String("op", op)).Error("failed to get payment info", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.cache.SetDefault(paymentCacheKey, info)

	return info, nil
}
