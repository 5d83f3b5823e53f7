package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"sculpture_shop/internal/domain/models"
	"sculpture_shop/internal/lib/jwt"
	"sculpture_shop/internal/lib/logger/sl"
	"sculpture_shop/internal/repository"
	"sculpture_shop/internal/storage"
	"sculpture_shop/internal/transport/http/dto"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAdminExists        = errors.New("admin already exists")
)

type AdminService struct {
	log      *slog.Logger
	repo     repository.AdminRepository
	secret   string
	tokenTTL time.Duration
}

func NewAdminService(log *slog.Logger, repo repository.AdminRepository, secret string, tokenTTL time.Duration) *AdminService {
	return &AdminService{
		log:      log,
		repo:     repo,
		secret:   secret,
		tokenTTL: tokenTTL,
	}
}

// Login checks the bcrypt hash and issues a bearer token. An unknown
// username and a wrong password are indistinguishable to the caller.
func (s *AdminService) Login(ctx context.Context, username, password string) (*dto.LoginResponse, error) {
	const op = "admin_service.Login"

	log := s.log.With(
		slog.String("op", op),
		slog.String("username", username),
	)

	log.Info("attempting admin login")

	admin, err := s.repo.GetAdminByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Warn("admin not found")
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}
		log.Error("failed to get admin", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := bcrypt.CompareHashAndPassword(admin.PasswordHash, []byte(password)); err != nil {
		log.Info("invalid credentials", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	token, err := jwt.NewToken(*admin, s.secret, s.tokenTTL)
	if err != nil {
		log.Error("failed to generate token", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.repo.UpdateLastLogin(ctx, admin.ID); err != nil {
		log.Warn("failed to update last login", sl.Err(err))
	}

	log.Info("admin logged in")

	return &dto.LoginResponse{
		ID:       admin.ID,
		Username: admin.Username,
		FullName: admin.FullName,
		Token:    token,
	}, nil
}

// VerifyToken validates a bearer token and returns the identity baked into
// it. No server-side state is consulted: tokens stay valid until expiry.
func (s *AdminService) VerifyToken(token string) (*models.AdminIdentity, error) {
	const op = "admin_service.VerifyToken"

	identity, err := jwt.ParseToken(token, s.secret)
	if err != nil {
		s.log.With(slog.String("op", op)).Info("token rejected", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return identity, nil
}

func (s *AdminService) CreateAdmin(ctx context.Context, req dto.CreateAdminRequest) (int64, error) {
	const op = "admin_service.CreateAdmin"

	log := s.log.With(
		slog.String("op", op),
		slog.String("username", req.Username),
	)

	log.Info("creating admin user")

	passHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error("failed to generate password hash", sl.Err(err))
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	id, err := s.repo.SaveAdmin(ctx, models.AdminUser{
		Username:     req.Username,
		PasswordHash: passHash,
		FullName:     req.FullName,
		IsActive:     true,
	})
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			log.Warn("username already taken")
			return 0, fmt.Errorf("%s: %w", op, ErrAdminExists)
		}
		log.Error("failed to save admin", sl.Err(err))
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("admin created", slog.Int64("admin_id", id))

	return id, nil
}

func (s *AdminService) GetDashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	const op = "admin_service.GetDashboardStats"

	stats, err := s.repo.GetDashboardStats(ctx)
	if err != nil {
		s.log.With(slog.String("op", op)).Error("failed to get dashboard stats", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return stats, nil
}
