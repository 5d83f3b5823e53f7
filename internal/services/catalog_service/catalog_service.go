package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"sculpture_shop/internal/catalog"
	"sculpture_shop/internal/domain/models"
	"sculpture_shop/internal/lib/logger/sl"
	"sculpture_shop/internal/lib/slug"
	"sculpture_shop/internal/repository"
	"sculpture_shop/internal/storage"
	"sculpture_shop/internal/transport/http/dto"
)

var (
	ErrSculptureNotFound = errors.New("sculpture not found")
	ErrNothingToUpdate   = errors.New("nothing to update")
)

type CatalogService struct {
	log  *slog.Logger
	repo repository.SculptureRepository
}

func NewCatalogService(log *slog.Logger, repo repository.SculptureRepository) *CatalogService {
	return &CatalogService{log: log, repo: repo}
}

// ListSculptures returns one page and the total count for the same filter,
// so `count >= len(page)` always holds for the caller.
func (s *CatalogService) ListSculptures(ctx context.Context, f catalog.Filter) (*dto.SculptureListResponse, error) {
	const op = "catalog_service.ListSculptures"

	log := s.log.With(slog.String("op", op))

	sculptures, err := s.repo.GetSculptures(ctx, f)
	if err != nil {
		log.Error("failed to list sculptures", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	total, err := s.repo.CountSculptures(ctx, f)
	if err != nil {
		log.Error("failed to count sculptures", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &dto.SculptureListResponse{
		Sculptures: sculptures,
		TotalCount: total,
		Limit:      f.Limit,
		Offset:     f.Offset,
	}, nil
}

func (s *CatalogService) CountSculptures(ctx context.Context, f catalog.Filter) (int64, error) {
	const op = "catalog_service.CountSculptures"

	count, err := s.repo.CountSculptures(ctx, f)
	if err != nil {
		s.log.With(slog.String("op", op)).Error("failed to count sculptures", sl.Err(err))
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return count, nil
}

func (s *CatalogService) GetSculptureByID(ctx context.Context, id int64) (*dto.SculptureDetailResponse, error) {
	const op = "catalog_service.GetSculptureByID"

	log := s.log.With(
		slog.String("op", op),
		slog.Int64("sculpture_id", id),
	)

	sculpture, err := s.repo.GetSculptureByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Warn("sculpture not found")
			return nil, fmt.Errorf("%s: %w", op, ErrSculptureNotFound)
		}
		log.Error("failed to get sculpture", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.detail(ctx, log, sculpture)
}

func (s *CatalogService) GetSculptureBySlug(ctx context.Context, slugValue string) (*dto.SculptureDetailResponse, error) {
	const op = "catalog_service.GetSculptureBySlug"

	log := s.log.With(
		slog.String("op", op),
		slog.String("slug", slugValue),
	)

	sculpture, err := s.repo.GetSculptureBySlug(ctx, slugValue)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Warn("sculpture not found")
			return nil, fmt.Errorf("%s: %w", op, ErrSculptureNotFound)
		}
		log.Error("failed to get sculpture", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.detail(ctx, log, sculpture)
}

// detail loads the gallery and bumps the view counter. The bump is
// best-effort: a failed counter never fails the page.
func (s *CatalogService) detail(ctx context.Context, log *slog.Logger, sculpture *models.Sculpture) (*dto.SculptureDetailResponse, error) {
	images, err := s.repo.GetImages(ctx, sculpture.ID)
	if err != nil {
		log.Error("failed to get images", sl.Err(err))
		return nil, err
	}

	if err := s.repo.IncrementViewCount(ctx, sculpture.ID); err != nil {
		log.Warn("failed to increment view count", sl.Err(err))
	}

	return &dto.SculptureDetailResponse{
		Sculpture: *sculpture,
		Images:    images,
	}, nil
}

func (s *CatalogService) GetFeaturedSculptures(ctx context.Context, limit int) ([]models.Sculpture, error) {
	const op = "catalog_service.GetFeaturedSculptures"

	limit = catalog.ClampLimit(limit, catalog.DefaultFeaturedLimit)

	sculptures, err := s.repo.GetFeaturedSculptures(ctx, limit)
	if err != nil {
		s.log.With(slog.String("op", op)).Error("failed to get featured sculptures", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return sculptures, nil
}

func (s *CatalogService) GetRelatedSculptures(ctx context.Context, id int64, limit int) ([]models.Sculpture, error) {
	const op = "catalog_service.GetRelatedSculptures"

	limit = catalog.ClampLimit(limit, catalog.DefaultRelatedLimit)

	sculptures, err := s.repo.GetRelatedSculptures(ctx, id, limit)
	if err != nil {
		s.log.With(slog.String("op", op)).Error("failed to get related sculptures", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return sculptures, nil
}

func (s *CatalogService) GetImages(ctx context.Context, sculptureID int64) ([]models.SculptureImage, error) {
	const op = "catalog_service.GetImages"

	images, err := s.repo.GetImages(ctx, sculptureID)
	if err != nil {
		s.log.With(slog.String("op", op)).Error("failed to get images", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return images, nil
}

// CreateSculpture derives a slug from the name when none is given. A slug
// collision is retried once with a random suffix before giving up.
func (s *CatalogService) CreateSculpture(ctx context.Context, req dto.CreateSculptureRequest) (*models.Sculpture, error) {
	const op = "catalog_service.CreateSculpture"

	log := s.log.With(
		slog.String("op", op),
		slog.String("name", req.Name),
	)

	log.Info("creating sculpture")

	sculpture := req.ToDomain()
	if sculpture.Slug == "" {
		sculpture.Slug = slug.Make(sculpture.Name)
	}

	id, err := s.repo.SaveSculpture(ctx, sculpture)
	if errors.Is(err, storage.ErrAlreadyExists) {
		log.Warn("slug already taken, retrying with suffix", slog.String("slug", sculpture.Slug))
		sculpture.Slug = slug.MakeUnique(sculpture.Slug)
		id, err = s.repo.SaveSculpture(ctx, sculpture)
	}
	if err != nil {
		log.Error("failed to save sculpture", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("sculpture created", slog.Int64("sculpture_id", id), slog.String("slug", sculpture.Slug))

	created, err := s.repo.GetSculptureByID(ctx, id)
	if err != nil {
		log.Error("failed to load created sculpture", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return created, nil
}

func (s *CatalogService) UpdateSculpture(ctx context.Context, req dto.UpdateSculptureRequest) error {
	const op = "catalog_service.UpdateSculpture"

	log := s.log.With(
		slog.String("op", op),
		slog.Int64("sculpture_id", req.ID),
	)

	updates := req.Updates()
	if len(updates) == 0 {
		return fmt.Errorf("%s: %w", op, ErrNothingToUpdate)
	}

	if err := s.repo.UpdateSculptureFields(ctx, req.ID, updates); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Warn("sculpture not found")
			return fmt.Errorf("%s: %w", op, ErrSculptureNotFound)
		}
		log.Error("failed to update sculpture", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("sculpture updated", slog.Int("fields", len(updates)))

	return nil
}

func (s *CatalogService) DeleteSculpture(ctx context.Context, id int64) error {
	const op = "catalog_service.DeleteSculpture"

	log := s.log.With(
		slog.String("op", op),
		slog.Int64("sculpture_id", id),
	)

	if err := s.repo.SoftDeleteSculpture(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Warn("sculpture not found")
			return fmt.Errorf("%s: %w", op, ErrSculptureNotFound)
		}
		log.Error("failed to delete sculpture", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("sculpture deleted")

	return nil
}

func (s *CatalogService) AddImage(ctx context.Context, req dto.AddImageRequest) (int64, error) {
	const op = "catalog_service.AddImage"

	log := s.log.With(
		slog.String("op", op),
		slog.Int64("sculpture_id", req.SculptureID),
	)

	id, err := s.repo.AddImage(ctx, req.ToDomain())
	if err != nil {
		log.Error("failed to add image", sl.Err(err))
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("image added", slog.Int64("image_id", id), slog.Bool("is_primary", req.IsPrimary))

	return id, nil
}

func (s *CatalogService) DeleteImage(ctx context.Context, id int64) error {
	const op = "catalog_service.DeleteImage"

	if err := s.repo.DeleteImage(ctx, id); err != nil {
		s.log.With(slog.String("op", op)).Error("failed to delete image", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
