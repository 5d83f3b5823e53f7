package repository

import (
	"context"
	"fmt"
	"time"

	"sculpture_shop/internal/domain/models"
	"sculpture_shop/internal/storage"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4/pgxpool"
)

type RequestRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewRequestRepository(db *pgxpool.Pool) *RequestRepo {
	return &RequestRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *RequestRepo) SaveContactRequest(ctx context.Context, req models.ContactRequest) (int64, error) {
	const op = "repository.request_repository.SaveContactRequest"

	query, args, err := r.sb.Insert("contact_requests").
		Columns(
			"customer_name", "mobile_number", "email", "message",
			"selected_sculpture_ids", "request_type",
		).
		Values(
			req.CustomerName, req.MobileNumber, req.Email, req.Message,
			req.SelectedSculptureIDs, req.RequestType,
		).
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

func (r *RequestRepo) GetContactRequests(ctx context.Context, status string, limit, offset int) ([]models.ContactRequest, error) {
	const op = "repository.request_repository.GetContactRequests"

	b := r.sb.Select(
		"id", "customer_name", "mobile_number", "email", "message",
		"selected_sculpture_ids", "request_type", "status", "admin_notes",
		"created_at", "updated_at",
	).
		From("contact_requests").
		OrderBy("created_at DESC")

	if status != "" {
		b = b.Where(sq.Eq{"status": status})
	}
	if limit > 0 {
		b = b.Limit(uint64(limit))
	}
	if offset > 0 {
		b = b.Offset(uint64(offset))
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

	var requests []models.ContactRequest
	for rows.Next() {
		var req models.ContactRequest
		if err := rows.Scan(
			&req.ID, &req.CustomerName, &req.MobileNumber, &req.Email, &req.Message,
			&req.SelectedSculptureIDs, &req.RequestType, &req.Status, &req.AdminNotes,
			&req.CreatedAt, &req.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		requests = append(requests, req)
	}

	return requests, rows.Err()
}

// UpdateContactRequestStatus sets any status without transition rules;
// the enum membership check happens in the service.
func (r *RequestRepo) UpdateContactRequestStatus(ctx context.Context, id int64, status models.ContactStatus, adminNotes *string) error {
	const op = "repository.request_repository.UpdateContactRequestStatus"

	b := r.sb.Update("contact_requests").
		Set("status", status).
		Set("updated_at", time.Now())

	if adminNotes != nil {
		b = b.Set("admin_notes", *adminNotes)
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

func (r *RequestRepo) SaveCustomRequest(ctx context.Context, req models.CustomRequest) (int64, error) {
	const op = "repository.request_repository.SaveCustomRequest"

	query, args, err := r.sb.Insert("custom_requests").
		Columns(
			"customer_name", "mobile_number", "email", "reference_image_url",
			"sculpture_type", "preferred_material",
			"expected_height", "expected_width", "expected_depth", "expected_price",
			"description", "special_requirements",
		).
		Values(
			req.CustomerName, req.MobileNumber, req.Email, req.ReferenceImageURL,
			req.SculptureType, req.PreferredMaterial,
			req.ExpectedHeight, req.ExpectedWidth, req.ExpectedDepth, req.ExpectedPrice,
			req.Description, req.SpecialRequirements,
		).
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

func (r *RequestRepo) GetCustomRequests(ctx context.Context, status string, limit, offset int) ([]models.CustomRequest, error) {
	const op = "repository.request_repository.GetCustomRequests"

	b := r.sb.Select(
		"id", "customer_name", "mobile_number", "email", "reference_image_url",
		"sculpture_type", "preferred_material",
		"expected_height", "expected_width", "expected_depth", "expected_price",
		"description", "special_requirements", "status",
		"quoted_price", "estimated_days", "admin_notes",
		"created_at", "updated_at",
	).
		From("custom_requests").
		OrderBy("created_at DESC")

	if status != "" {
		b = b.Where(sq.Eq{"status": status})
	}
	if limit > 0 {
		b = b.Limit(uint64(limit))
	}
	if offset > 0 {
		b = b.Offset(uint64(offset))
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

	var requests []models.CustomRequest
	for rows.Next() {
		var req models.CustomRequest
		if err := rows.Scan(
			&req.ID, &req.CustomerName, &req.MobileNumber, &req.Email, &req.ReferenceImageURL,
			&req.SculptureType, &req.PreferredMaterial,
			&req.ExpectedHeight, &req.ExpectedWidth, &req.ExpectedDepth, &req.ExpectedPrice,
			&req.Description, &req.SpecialRequirements, &req.Status,
			&req.QuotedPrice, &req.EstimatedDays, &req.AdminNotes,
			&req.CreatedAt, &req.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		requests = append(requests, req)
	}

	return requests, rows.Err()
}

var customRequestUpdatableFields = map[string]bool{
	"status":         true,
	"quoted_price":   true,
	"estimated_days": true,
	"admin_notes":    true,
}

func (r *RequestRepo) UpdateCustomRequestFields(ctx context.Context, id int64, updates map[string]interface{}) error {
	const op = "repository.request_repository.UpdateCustomRequestFields"

	return updateFields(ctx, r.db, r.sb, op, "custom_requests", customRequestUpdatableFields, id, updates)
}
