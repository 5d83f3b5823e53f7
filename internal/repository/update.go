package repository

import (
	"context"
	"fmt"
	"time"

	"sculpture_shop/internal/storage"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4/pgxpool"
)

// updateFields builds a partial UPDATE from an allow-listed field map.
// Fields absent from updates are left unchanged; an unknown field is a
// programming error and fails the whole call.
func updateFields(ctx context.Context, db *pgxpool.Pool, sb sq.StatementBuilderType, op, table string, allowed map[string]bool, id int64, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return fmt.Errorf("%s: no fields to update", op)
	}

	b := sb.Update(table).Set("updated_at", time.Now())

	for field, value := range updates {
		if !allowed[field] {
			return fmt.Errorf("%s: field '%s' is not allowed for update", op, field)
		}
		b = b.Set(field, value)
	}

	query, args, err := b.Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	result, err := db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}
