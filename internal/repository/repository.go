package repository

import (
	"context"
	"fmt"

	redisapp "sculpture_shop/internal/storage/redis"

	"github.com/jackc/pgx/v4/pgxpool"
)

type Repository struct {
	db        *pgxpool.Pool
	Sculpture SculptureRepository
	Category  CategoryRepository
	Material  MaterialRepository
	Request   RequestRepository
	Admin     AdminRepository
	Settings  SettingsRepository
	Selection SelectionRepository
}

func NewRepository(ctx context.Context, dsn string, redisClient *redisapp.Client) (*Repository, error) {
	db, err := pgxpool.Connect(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return NewWithPool(db, redisClient), nil
}

func NewWithPool(db *pgxpool.Pool, redisClient *redisapp.Client) *Repository {
	return &Repository{
		db:        db,
		Sculpture: NewSculptureRepository(db),
		Category:  NewCategoryRepository(db),
		Material:  NewMaterialRepository(db),
		Request:   NewRequestRepository(db),
		Admin:     NewAdminRepository(db),
		Settings:  NewSettingsRepository(db),
		Selection: NewRedisSelectionRepo(redisClient),
	}
}

func (r *Repository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

func (r *Repository) Close() {
	r.db.Close()
}
