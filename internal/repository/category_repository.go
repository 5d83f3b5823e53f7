package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sculpture_shop/internal/domain/models"
	"sculpture_shop/internal/storage"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

type CategoryRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewCategoryRepository(db *pgxpool.Pool) *CategoryRepo {
	return &CategoryRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

const categoryColumns = "id, name, slug, description, image_url, display_order, is_active, created_at, updated_at"

func (r *CategoryRepo) GetCategories(ctx context.Context) ([]models.Category, error) {
	const op = "repository.category_repository.GetCategories"

	query, args, err := r.sb.Select(categoryColumns).
		From("categories").
		Where(sq.Eq{"is_active": true}).
		OrderBy("display_order", "name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		if err := scanCategory(rows, &c); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}

func (r *CategoryRepo) GetCategoryByID(ctx context.Context, id int64) (*models.Category, error) {
	const op = "repository.category_repository.GetCategoryByID"

	query, args, err := r.sb.Select(categoryColumns).
		From("categories").
		Where(sq.Eq{"id": id, "is_active": true}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var c models.Category
	if err := scanCategory(r.db.QueryRow(ctx, query, args...), &c); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &c, nil
}

func (r *CategoryRepo) GetCategoriesWithCount(ctx context.Context) ([]models.CategoryWithCount, error) {
	const op = "repository.category_repository.GetCategoriesWithCount"

	query, args, err := r.sb.Select(
		"c.id", "c.name", "c.slug", "c.description", "c.image_url",
		"c.display_order", "c.is_active", "c.created_at", "c.updated_at",
		"COUNT(s.id) AS sculpture_count",
	).
		From("categories c").
		LeftJoin("sculptures s ON s.category_id = c.id AND s.is_active = TRUE").
		Where(sq.Eq{"c.is_active": true}).
		GroupBy("c.id").
		OrderBy("c.display_order", "c.name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var categories []models.CategoryWithCount
	for rows.Next() {
		var c models.CategoryWithCount
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Slug, &c.Description, &c.ImageURL,
			&c.DisplayOrder, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
			&c.SculptureCount,
		); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}

func (r *CategoryRepo) SaveCategory(ctx context.Context, c models.Category) (int64, error) {
	const op = "repository.category_repository.SaveCategory"

	query, args, err := r.sb.Insert("categories").
		Columns("name", "slug", "description", "image_url", "display_order").
		Values(c.Name, c.Slug, c.Description, c.ImageURL, c.DisplayOrder).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

var categoryUpdatableFields = map[string]bool{
	"name":          true,
	"slug":          true,
	"description":   true,
	"image_url":     true,
	"display_order": true,
}

func (r *CategoryRepo) UpdateCategoryFields(ctx context.Context, id int64, updates map[string]interface{}) error {
	const op = "repository.category_repository.UpdateCategoryFields"

	return updateFields(ctx, r.db, r.sb, op, "categories", categoryUpdatableFields, id, updates)
}

// SoftDeleteCategory refuses to delete a category that active sculptures
// still reference; the FK is never nulled.
func (r *CategoryRepo) SoftDeleteCategory(ctx context.Context, id int64) error {
	const op = "repository.category_repository.SoftDeleteCategory"

	countQuery, countArgs, err := r.sb.Select("COUNT(*)").
		From("sculptures").
		Where(sq.Eq{"category_id": id, "is_active": true}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	var refs int64
	if err := r.db.QueryRow(ctx, countQuery, countArgs...).Scan(&refs); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if refs > 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrCategoryInUse)
	}

	query, args, err := r.sb.Update("categories").
		Set("is_active", false).
		Set("updated_at", time.Now()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

func scanCategory(row pgx.Row, c *models.Category) error {
	return row.Scan(
		&c.ID, &c.Name, &c.Slug, &c.Description, &c.ImageURL,
		&c.DisplayOrder, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	)
}
