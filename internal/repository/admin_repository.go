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

type AdminRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewAdminRepository(db *pgxpool.Pool) *AdminRepo {
	return &AdminRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *AdminRepo) GetAdminByUsername(ctx context.Context, username string) (*models.AdminUser, error) {
	const op = "repository.admin_repository.GetAdminByUsername"

	query, args, err := r.sb.Select(
		"id", "username", "password_hash", "full_name", "is_active", "last_login", "created_at",
	).
		From("admin_users").
		Where(sq.Eq{"username": username, "is_active": true}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var admin models.AdminUser
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&admin.ID, &admin.Username, &admin.PasswordHash, &admin.FullName,
		&admin.IsActive, &admin.LastLogin, &admin.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &admin, nil
}

func (r *AdminRepo) SaveAdmin(ctx context.Context, admin models.AdminUser) (int64, error) {
	const op = "repository.admin_repository.SaveAdmin"

	query, args, err := r.sb.Insert("admin_users").
		Columns("username", "password_hash", "full_name").
		Values(admin.Username, admin.PasswordHash, admin.FullName).
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

func (r *AdminRepo) UpdateLastLogin(ctx context.Context, id int64) error {
	const op = "repository.admin_repository.UpdateLastLogin"

	query, args, err := r.sb.Update("admin_users").
		Set("last_login", time.Now()).
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

// GetDashboardStats aggregates all counters in a single round trip.
func (r *AdminRepo) GetDashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	const op = "repository.admin_repository.GetDashboardStats"

	query := `
		SELECT
			(SELECT COUNT(*) FROM sculptures WHERE is_active) AS total_sculptures,
			(SELECT COUNT(*) FROM sculptures WHERE is_active AND is_featured) AS featured_sculptures,
			(SELECT COUNT(*) FROM categories WHERE is_active) AS total_categories,
			(SELECT COUNT(*) FROM contact_requests WHERE status = 'pending') AS pending_inquiries,
			(SELECT COUNT(*) FROM custom_requests WHERE status = 'pending') AS pending_custom_requests,
			(SELECT COALESCE(SUM(view_count), 0) FROM sculptures WHERE is_active) AS total_views
	`

	var stats models.DashboardStats
	err := r.db.QueryRow(ctx, query).Scan(
		&stats.TotalSculptures, &stats.FeaturedSculptures, &stats.TotalCategories,
		&stats.PendingInquiries, &stats.PendingCustomRequests, &stats.TotalViews,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &stats, nil
}
