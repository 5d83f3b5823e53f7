package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"sculpture_shop/internal/domain/models"
	"sculpture_shop/internal/lib/logger/sl"
	"sculpture_shop/internal/lib/slug"
	"sculpture_shop/internal/repository"
	"sculpture_shop/internal/storage"
	"sculpture_shop/internal/transport/http/dto"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryInUse    = errors.New("category still has sculptures")
	ErrMaterialNotFound = errors.New("material not found")
	ErrNothingToUpdate  = errors.New("nothing to update")
)

type TaxonomyService struct {
	log        *slog.Logger
	categories repository.CategoryRepository
	materials  repository.MaterialRepository
}

func NewTaxonomyService(log *slog.Logger, categories repository.CategoryRepository, materials repository.MaterialRepository) *TaxonomyService {
	return &TaxonomyService{log: log, categories: categories, materials: materials}
}

func (s *TaxonomyService) GetCategories(ctx context.Context) ([]models.Category, error) {
	const op = "taxonomy_service.GetCategories"

	categories, err := s.categories.GetCategories(ctx)
	if err != nil {
		s.log.With(slog.String("op", op)).Error("failed to get categories", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return categories, nil
}

func (s *TaxonomyService) GetCategoryByID(ctx context.Context, id int64) (*models.Category, error) {
	const op = "taxonomy_service.GetCategoryByID"

	log := s.log.With(
		slog.String("op", op),
		slog.Int64("category_id", id),
	)

	category, err := s.categories.GetCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Warn("category not found")
			return nil, fmt.Errorf("%s: %w", op, ErrCategoryNotFound)
		}
		log.Error("failed to get category", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return category, nil
}

func (s *TaxonomyService) GetCategoriesWithCount(ctx context.Context) ([]models.CategoryWithCount, error) {
	const op = "taxonomy_service.GetCategoriesWithCount"

	categories, err := s.categories.GetCategoriesWithCount(ctx)
	if err != nil {
		s.log.With(slog.String("op", op)).Error("failed to get categories with counts", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return categories, nil
}

func (s *TaxonomyService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (int64, error) {
	const op = "taxonomy_service.CreateCategory"

	log := s.log.With(
		slog.String("op", op),
		slog.String("name", req.Name),
	)

	log.Info("creating category")

	category := req.ToDomain()
	if category.Slug == "" {
		category.Slug = slug.Make(category.Name)
	}

	id, err := s.categories.SaveCategory(ctx, category)
	if errors.Is(err, storage.ErrAlreadyExists) {
		log.Warn("slug already taken, retrying with suffix", slog.String("slug", category.Slug))
		category.Slug = slug.MakeUnique(category.Slug)
		id, err = s.categories.SaveCategory(ctx, category)
	}
	if err != nil {
		log.Error("failed to save category", sl.Err(err))
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("category created", slog.Int64("category_id", id))

	return id, nil
}

func (s *TaxonomyService) UpdateCategory(ctx context.Context, req dto.UpdateCategoryRequest) error {
	const op = "taxonomy_service.UpdateCategory"

	log := s.log.With(
		slog.String("op", op),
		slog.Int64("category_id", req.ID),
	)

	updates := req.Updates()
	if len(updates) == 0 {
		return fmt.Errorf("%s: %w", op, ErrNothingToUpdate)
	}

	if err := s.categories.UpdateCategoryFields(ctx, req.ID, updates); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Warn("category not found")
			return fmt.Errorf("%s: %w", op, ErrCategoryNotFound)
		}
		log.Error("failed to update category", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("category updated", slog.Int("fields", len(updates)))

	return nil
}

// DeleteCategory refuses to retire a category that active sculptures still
// reference.
func (s *TaxonomyService) DeleteCategory(ctx context.Context, id int64) error {
	const op = "taxonomy_service.DeleteCategory"

	log := s.log.With(
		slog.String("op", op),
		slog.Int64("category_id", id),
	)

	if err := s.categories.SoftDeleteCategory(ctx, id); err != nil {
		switch {
		case errors.Is(err, storage.ErrCategoryInUse):
			log.Warn("category still referenced by sculptures")
			return fmt.Errorf("%s: %w", op, ErrCategoryInUse)
		case errors.Is(err, storage.ErrNotFound):
			log.Warn("category not found")
			return fmt.Errorf("%s: %w", op, ErrCategoryNotFound)
		}
		log.Error("failed to delete category", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("category deleted")

	return nil
}

func (s *TaxonomyService) GetMaterials(ctx context.Context) ([]models.Material, error) {
	const op = "taxonomy_service.GetMaterials"

	materials, err := s.materials.GetMaterials(ctx)
	if err != nil {
		s.log.With(slog.String("op", op)).Error("failed to get materials", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return materials, nil
}

func (s *TaxonomyService) CreateMaterial(ctx context.Context, req dto.CreateMaterialRequest) (int64, error) {
	const op = "taxonomy_service.CreateMaterial"

	log := s.log.With(
		slog.String("op", op),
		slog.String("name", req.Name),
	)

	id, err := s.materials.SaveMaterial(ctx, req.ToDomain())
	if err != nil {
		log.Error("failed to save material", sl.Err(err))
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("material created", slog.Int64("material_id", id))

	return id, nil
}

func (s *TaxonomyService) UpdateMaterial(ctx context.Context, req dto.UpdateMaterialRequest) error {
	const op = "taxonomy_service.UpdateMaterial"

	log := s.log.With(
		slog.String("op", op),
		slog.Int64("material_id", req.ID),
	)

	updates := req.Updates()
	if len(updates) == 0 {
		return fmt.Errorf("%s: %w", op, ErrNothingToUpdate)
	}

	if err := s.materials.UpdateMaterialFields(ctx, req.ID, updates); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Warn("material not found")
			return fmt.Errorf("%s: %w", op, ErrMaterialNotFound)
		}
		log.Error("failed to update material", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("material updated", slog.Int("fields", len(updates)))

	return nil
}

func (s *TaxonomyService) DeleteMaterial(ctx context.Context, id int64) error {
	const op = "taxonomy_service.DeleteMaterial"

	log := s.log.With(
		slog.String("op", op),
		slog.Int64("material_id", id),
	)

	if err := s.materials.SoftDeleteMaterial(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Warn("material not found")
			return fmt.Errorf("%s: %w", op, ErrMaterialNotFound)
		}
		log.Error("failed to delete material", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("material deleted")

	return nil
}
