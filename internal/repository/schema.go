package repository

import (
	"context"
	"fmt"
)

// InitSchema creates all tables and seeds the static settings/payment rows.
// Every statement is idempotent so the server can run it at startup.
func (r *Repository) InitSchema(ctx context.Context) error {
	const op = "repository.InitSchema"

	query := `
	CREATE TABLE IF NOT EXISTS categories (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		slug TEXT NOT NULL UNIQUE,
		description TEXT NOT NULL DEFAULT '',
		image_url TEXT NOT NULL DEFAULT '',
		display_order INT NOT NULL DEFAULT 0,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS materials (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS sculptures (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		slug TEXT NOT NULL UNIQUE,
		category_id BIGINT REFERENCES categories(id),
		material_id BIGINT REFERENCES materials(id),
		description TEXT NOT NULL DEFAULT '',
		dimensions TEXT NOT NULL DEFAULT '',
		height_cm NUMERIC,
		width_cm NUMERIC,
		depth_cm NUMERIC,
		weight_kg NUMERIC,
		price NUMERIC NOT NULL DEFAULT 0 CHECK (price >= 0),
		is_featured BOOLEAN NOT NULL DEFAULT FALSE,
		is_available BOOLEAN NOT NULL DEFAULT TRUE,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		view_count BIGINT NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		deleted_at TIMESTAMPTZ
	);

	CREATE TABLE IF NOT EXISTS sculpture_images (
		id BIGSERIAL PRIMARY KEY,
		sculpture_id BIGINT NOT NULL REFERENCES sculptures(id) ON DELETE CASCADE,
		image_url TEXT NOT NULL,
		alt_text TEXT NOT NULL DEFAULT '',
		is_primary BOOLEAN NOT NULL DEFAULT FALSE,
		display_order INT NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS contact_requests (
		id BIGSERIAL PRIMARY KEY,
		customer_name TEXT NOT NULL,
		mobile_number TEXT NOT NULL,
		email TEXT NOT NULL DEFAULT '',
		message TEXT NOT NULL DEFAULT '',
		selected_sculpture_ids TEXT NOT NULL DEFAULT '[]',
		request_type TEXT NOT NULL DEFAULT 'inquiry',
		status TEXT NOT NULL DEFAULT 'pending',
		admin_notes TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS custom_requests (
		id BIGSERIAL PRIMARY KEY,
		customer_name TEXT NOT NULL,
		mobile_number TEXT NOT NULL,
		email TEXT NOT NULL DEFAULT '',
		reference_image_url TEXT NOT NULL DEFAULT '',
		sculpture_type TEXT NOT NULL DEFAULT '',
		preferred_material TEXT NOT NULL DEFAULT '',
		expected_height NUMERIC,
		expected_width NUMERIC,
		expected_depth NUMERIC,
		expected_price NUMERIC,
		description TEXT NOT NULL DEFAULT '',
		special_requirements TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'pending',
		quoted_price NUMERIC,
		estimated_days INT,
		admin_notes TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS admin_users (
		id BIGSERIAL PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		password_hash BYTEA NOT NULL,
		full_name TEXT NOT NULL DEFAULT '',
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		last_login TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS site_settings (
		setting_key TEXT PRIMARY KEY,
		setting_value TEXT NOT NULL DEFAULT '',
		setting_type TEXT NOT NULL DEFAULT 'text',
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS payment_info (
		id BIGSERIAL PRIMARY KEY,
		upi_id TEXT NOT NULL DEFAULT '',
		qr_code_url TEXT NOT NULL DEFAULT '',
		bank_name TEXT NOT NULL DEFAULT '',
		account_name TEXT NOT NULL DEFAULT '',
		account_number TEXT NOT NULL DEFAULT '',
		ifsc_code TEXT NOT NULL DEFAULT '',
		instructions TEXT NOT NULL DEFAULT '',
		is_active BOOLEAN NOT NULL DEFAULT TRUE
	);

	INSERT INTO site_settings (setting_key, setting_value, setting_type) VALUES
		('shop_name', 'Sculpture Shop', 'text'),
		('shop_tagline', 'Handcrafted stone and metal sculptures', 'text'),
		('contact_email', '', 'text'),
		('contact_phone', '', 'text'),
		('whatsapp_number', '', 'text')
	ON CONFLICT (setting_key) DO NOTHING;
	`

	if _, err := r.db.Exec(ctx, query); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
