package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"sculpture_shop/internal/catalog"
	"sculpture_shop/internal/domain/models"
	"sculpture_shop/internal/storage"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

type SculptureRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewSculptureRepository(db *pgxpool.Pool) *SculptureRepo {
	return &SculptureRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

var sculptureColumns = []string{
	"s.id", "s.name", "s.slug",
	"s.category_id", "c.name AS category_name",
	"s.material_id", "m.name AS material_name",
	"s.description", "s.dimensions",
	"s.height_cm", "s.width_cm", "s.depth_cm", "s.weight_kg",
	"s.price", "s.is_featured", "s.is_available", "s.is_active", "s.view_count",
	"(SELECT i.image_url FROM sculpture_images i WHERE i.sculpture_id = s.id AND i.is_primary LIMIT 1) AS primary_image",
	"s.created_at", "s.updated_at",
}

func (r *SculptureRepo) selectSculptures() sq.SelectBuilder {
	return r.sb.Select(sculptureColumns...).
		From("sculptures s").
		LeftJoin("categories c ON c.id = s.category_id").
		LeftJoin("materials m ON m.id = s.material_id")
}

// applyFilter translates the catalog filter contract into WHERE conditions.
// The listing and count queries both go through here, which is what makes
// count(filters) == len(list(filters)) hold for every filter combination.
func applyFilter(b sq.SelectBuilder, f catalog.Filter) sq.SelectBuilder {
	b = b.Where(sq.Eq{"s.is_active": true})

	if f.CategoryID != nil {
		b = b.Where(sq.Eq{"s.category_id": *f.CategoryID})
	}
	if f.MaterialID != nil {
		b = b.Where(sq.Eq{"s.material_id": *f.MaterialID})
	}
	if f.MinPrice != nil {
		b = b.Where(sq.GtOrEq{"s.price": *f.MinPrice})
	}
	if f.MaxPrice != nil {
		b = b.Where(sq.LtOrEq{"s.price": *f.MaxPrice})
	}
	if f.SearchTerm != nil {
		b = b.Where(sq.ILike{"s.name": "%" + escapeLike(*f.SearchTerm) + "%"})
	}
	if f.IsFeatured != nil {
		b = b.Where(sq.Eq{"s.is_featured": *f.IsFeatured})
	}

	return b
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike neutralizes LIKE metacharacters so a user-typed search term
// matches literally.
func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}

func (r *SculptureRepo) GetSculptures(ctx context.Context, f catalog.Filter) ([]models.Sculpture, error) {
	const op = "repository.sculpture_repository.GetSculptures"

	b := applyFilter(r.selectSculptures(), f).OrderBy("s.id")

	if f.Limit > 0 {
		b = b.Limit(uint64(f.Limit))
	}
	if f.Offset > 0 {
		b = b.Offset(uint64(f.Offset))
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var sculptures []models.Sculpture
	for rows.Next() {
		s, err := scanSculpture(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		sculptures = append(sculptures, *s)
	}

	return sculptures, rows.Err()
}

func (r *SculptureRepo) CountSculptures(ctx context.Context, f catalog.Filter) (int64, error) {
	const op = "repository.sculpture_repository.CountSculptures"

	b := applyFilter(r.sb.Select("COUNT(*)").From("sculptures s"), f)

	query, args, err := b.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return count, nil
}

func (r *SculptureRepo) GetSculptureByID(ctx context.Context, id int64) (*models.Sculpture, error) {
	const op = "repository.sculpture_repository.GetSculptureByID"

	return r.getOne(ctx, op, sq.Eq{"s.id": id})
}

func (r *SculptureRepo) GetSculptureBySlug(ctx context.Context, slug string) (*models.Sculpture, error) {
	const op = "repository.sculpture_repository.GetSculptureBySlug"

	return r.getOne(ctx, op, sq.Eq{"s.slug": slug})
}

func (r *SculptureRepo) getOne(ctx context.Context, op string, cond sq.Eq) (*models.Sculpture, error) {
	query, args, err := r.selectSculptures().
		Where(cond).
		Where(sq.Eq{"s.is_active": true}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s, err := scanSculpture(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s, nil
}

func (r *SculptureRepo) GetFeaturedSculptures(ctx context.Context, limit int) ([]models.Sculpture, error) {
	const op = "repository.sculpture_repository.GetFeaturedSculptures"

	featured := true
	f := catalog.Filter{IsFeatured: &featured, Limit: limit}

	sculptures, err := r.GetSculptures(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return sculptures, nil
}

func (r *SculptureRepo) GetRelatedSculptures(ctx context.Context, sculptureID int64, limit int) ([]models.Sculpture, error) {
	const op = "repository.sculpture_repository.GetRelatedSculptures"

	b := r.selectSculptures().
		Where(sq.Eq{"s.is_active": true}).
		Where("s.category_id = (SELECT category_id FROM sculptures WHERE id = ?)", sculptureID).
		Where(sq.NotEq{"s.id": sculptureID}).
		OrderBy("s.view_count DESC").
		Limit(uint64(limit))

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var sculptures []models.Sculpture
	for rows.Next() {
		s, err := scanSculpture(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		sculptures = append(sculptures, *s)
	}

	return sculptures, rows.Err()
}

func (r *SculptureRepo) SaveSculpture(ctx context.Context, s models.Sculpture) (int64, error) {
	const op = "repository.sculpture_repository.SaveSculpture"

	query, args, err := r.sb.Insert("sculptures").
		Columns(
			"name", "slug", "category_id", "material_id", "description",
			"dimensions", "height_cm", "width_cm", "depth_cm", "weight_kg",
			"price", "is_featured", "is_available",
		).
		Values(
			s.Name, s.Slug, s.CategoryID, s.MaterialID, s.Description,
			s.Dimensions, s.HeightCM, s.WidthCM, s.DepthCM, s.WeightKG,
			s.Price, s.IsFeatured, s.IsAvailable,
		).
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

var sculptureUpdatableFields = map[string]bool{
	"name":         true,
	"slug":         true,
	"category_id":  true,
	"material_id":  true,
	"description":  true,
	"dimensions":   true,
	"height_cm":    true,
	"width_cm":     true,
	"depth_cm":     true,
	"weight_kg":    true,
	"price":        true,
	"is_featured":  true,
	"is_available": true,
}

func (r *SculptureRepo) UpdateSculptureFields(ctx context.Context, id int64, updates map[string]interface{}) error {
	const op = "repository.sculpture_repository.UpdateSculptureFields"

	return updateFields(ctx, r.db, r.sb, op, "sculptures", sculptureUpdatableFields, id, updates)
}

func (r *SculptureRepo) SoftDeleteSculpture(ctx context.Context, id int64) error {
	const op = "repository.sculpture_repository.SoftDeleteSculpture"

	query, args, err := r.sb.Update("sculptures").
		Set("is_active", false).
		Set("is_available", false).
		Set("deleted_at", time.Now()).
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

func (r *SculptureRepo) IncrementViewCount(ctx context.Context, id int64) error {
	const op = "repository.sculpture_repository.IncrementViewCount"

	query, args, err := r.sb.Update("sculptures").
		Set("view_count", sq.Expr("view_count + 1")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *SculptureRepo) GetImages(ctx context.Context, sculptureID int64) ([]models.SculptureImage, error) {
	const op = "repository.sculpture_repository.GetImages"

	query, args, err := r.sb.Select(
		"id", "sculpture_id", "image_url", "alt_text", "is_primary", "display_order", "created_at",
	).
		From("sculpture_images").
		Where(sq.Eq{"sculpture_id": sculptureID}).
		OrderBy("display_order", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var images []models.SculptureImage
	for rows.Next() {
		var img models.SculptureImage
		if err := rows.Scan(
			&img.ID, &img.SculptureID, &img.ImageURL, &img.AltText,
			&img.IsPrimary, &img.DisplayOrder, &img.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		images = append(images, img)
	}

	return images, rows.Err()
}

// AddImage inserts a gallery image. When the new image is primary, the
// previous primary is cleared in the same transaction so at most one image
// per sculpture stays primary.
func (r *SculptureRepo) AddImage(ctx context.Context, img models.SculptureImage) (int64, error) {
	const op = "repository.sculpture_repository.AddImage"

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	defer tx.Rollback(ctx)

	if img.IsPrimary {
		query, args, err := r.sb.Update("sculpture_images").
			Set("is_primary", false).
			Where(sq.Eq{"sculpture_id": img.SculptureID, "is_primary": true}).
			ToSql()
		if err != nil {
			return 0, fmt.Errorf("%s: %w", op, err)
		}
		if _, err := tx.Exec(ctx, query, args...); err != nil {
			return 0, fmt.Errorf("%s: %w", op, err)
		}
	}

	query, args, err := r.sb.Insert("sculpture_images").
		Columns("sculpture_id", "image_url", "alt_text", "is_primary", "display_order").
		Values(img.SculptureID, img.ImageURL, img.AltText, img.IsPrimary, img.DisplayOrder).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	var id int64
	if err := tx.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (r *SculptureRepo) DeleteImage(ctx context.Context, id int64) error {
	const op = "repository.sculpture_repository.DeleteImage"

	query, args, err := r.sb.Delete("sculpture_images").
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

func scanSculpture(row pgx.Row) (*models.Sculpture, error) {
	var s models.Sculpture
	var categoryName, materialName *string

	err := row.Scan(
		&s.ID, &s.Name, &s.Slug,
		&s.CategoryID, &categoryName,
		&s.MaterialID, &materialName,
		&s.Description, &s.Dimensions,
		&s.HeightCM, &s.WidthCM, &s.DepthCM, &s.WeightKG,
		&s.Price, &s.IsFeatured, &s.IsAvailable, &s.IsActive, &s.ViewCount,
		&s.PrimaryImage,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if categoryName != nil {
		s.CategoryName = *categoryName
	}
	if materialName != nil {
		s.MaterialName = *materialName
	}

	return &s, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
