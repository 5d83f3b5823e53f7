package repository

import (
	"context"
	"fmt"

	"sculpture_shop/internal/domain/models"
	"sculpture_shop/internal/storage"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4/pgxpool"
)

type MaterialRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewMaterialRepository(db *pgxpool.Pool) *MaterialRepo {
	return &MaterialRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *MaterialRepo) GetMaterials(ctx context.Context) ([]models.Material, error) {
	const op = "repository.material_repository.GetMaterials"

	query, args, err := r.sb.Select("id", "name", "description", "is_active", "created_at").
		From("materials").
		Where(sq.Eq{"is_active": true}).
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var materials []models.Material
	for rows.Next() {
		var m models.Material
		if err := rows.Scan(&m.ID, &m.Name, &m.Description, &m.IsActive, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		materials = append(materials, m)
	}

	return materials, rows.Err()
}

func (r *MaterialRepo) SaveMaterial(ctx context.Context, m models.Material) (int64, error) {
	const op = "repository.material_repository.SaveMaterial"

	query, args, err := r.sb.Insert("materials").
		Columns("name", "description").
		Values(m.Name, m.Description).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

var materialUpdatableFields = map[string]bool{
	"name":        true,
	"description": true,
}

func (r *MaterialRepo) UpdateMaterialFields(ctx context.Context, id int64, updates map[string]interface{}) error {
	const op = "repository.material_repository.UpdateMaterialFields"

	// materials carry no updated_at column, so the shared helper does not fit
	if len(updates) == 0 {
		return fmt.Errorf("%s: no fields to update", op)
	}

	b := r.sb.Update("materials")
	for field, value := range updates {
		if !materialUpdatableFields[field] {
			return fmt.Errorf("%s: field '%s' is not allowed for update", op, field)
		}
		b = b.Set(field, value)
	}

	query, args, err := b.Where(sq.Eq{"id": id}).ToSql()
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

func (r *MaterialRepo) SoftDeleteMaterial(ctx context.Context, id int64) error {
	const op = "repository.material_repository.SoftDeleteMaterial"

	query, args, err := r.sb.Update("materials").
		Set("is_active", false).
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
