package repository

import (
	"context"
	"fmt"
	"time"

	"sculpture_shop/internal/domain/models"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4/pgxpool"
)

type SettingsRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewSettingsRepository(db *pgxpool.Pool) *SettingsRepo {
	return &SettingsRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *SettingsRepo) GetSiteSettings(ctx context.Context) ([]models.SiteSetting, error) {
	const op = "repository.settings_repository.GetSiteSettings"

	query, args, err := r.sb.Select("setting_key", "setting_value", "setting_type", "updated_at").
		From("site_settings").
		OrderBy("setting_key").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var settings []models.SiteSetting
	for rows.Next() {
		var s models.SiteSetting
		if err := rows.Scan(&s.Key, &s.Value, &s.Type, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		settings = append(settings, s)
	}

	return settings, rows.Err()
}

func (r *SettingsRepo) UpsertSiteSetting(ctx context.Context, key, value string, settingType models.SettingType) error {
	const op = "repository.settings_repository.UpsertSiteSetting"

	query, args, err := r.sb.Insert("site_settings").
		Columns("setting_key", "setting_value", "setting_type", "updated_at").
		Values(key, value, settingType, time.Now()).
		Suffix("ON CONFLICT (setting_key) DO UPDATE SET setting_value = EXCLUDED.setting_value, setting_type = EXCLUDED.setting_type, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *SettingsRepo) GetPaymentInfo(ctx context.Context) ([]models.PaymentInfo, error) {
	const op = "repository.settings_repository.GetPaymentInfo"

	query, args, err := r.sb.Select(
		"id", "upi_id", "qr_code_url", "bank_name", "account_name",
		"account_number", "ifsc_code", "instructions", "is_active",
	).
		From("payment_info").
		Where(sq.Eq{"is_active": true}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var infos []models.PaymentInfo
	for rows.Next() {
		var p models.PaymentInfo
		if err := rows.Scan(
			&p.ID, &p.UPIID, &p.QRCodeURL, &p.BankName, &p.AccountName,
			&p.AccountNumber, &p.IFSCCode, &p.Instructions, &p.IsActive,
		); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		infos = append(infos, p)
	}

	return infos, rows.Err()
}
