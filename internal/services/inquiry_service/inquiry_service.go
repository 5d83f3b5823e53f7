package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"sculpture_shop/internal/catalog"
	"sculpture_shop/internal/domain/models"
	"sculpture_shop/internal/lib/logger/sl"
	"sculpture_shop/internal/repository"
	"sculpture_shop/internal/storage"
	"sculpture_shop/internal/transport/http/dto"
)

var (
	ErrRequestNotFound = errors.New("request not found")
	ErrInvalidStatus   = errors.New("invalid status")
	ErrNothingToUpdate = errors.New("nothing to update")
)

// InquiryService captures and manages leads: contact requests from the
// public form and custom sculpture commissions.
type InquiryService struct {
	log  *slog.Logger
	repo repository.RequestRepository
}

func NewInquiryService(log *slog.Logger, repo repository.RequestRepository) *InquiryService {
	return &InquiryService{log: log, repo: repo}
}

func (s *InquiryService) CreateContactRequest(ctx context.Context, req dto.ContactRequestInput) (int64, error) {
	const op = "inquiry_service.CreateContactRequest"

	log := s.log.With(
		slog.String("op", op),
		slog.String("customer", req.CustomerName),
	)

	log.Info("creating contact request", slog.Int("selected", len(req.SelectedSculptureIDs)))

	id, err := s.repo.SaveContactRequest(ctx, req.ToDomain())
	if err != nil {
		log.Error("failed to save contact request", sl.Err(err))
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("contact request created", slog.Int64("request_id", id))

	return id, nil
}

func (s *InquiryService) GetContactRequests(ctx context.Context, status string, limit, offset int) ([]models.ContactRequest, error) {
	const op = "inquiry_service.GetContactRequests"

	log := s.log.With(
		slog.String("op", op),
		slog.String("status", status),
	)

	if status != "" && !models.ContactStatus(status).Valid() {
		log.Warn("invalid status filter")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidStatus)
	}
	limit = catalog.ClampLimit(limit, catalog.DefaultRequestLimit)
	if offset < 0 {
		offset = 0
	}

	requests, err := s.repo.GetContactRequests(ctx, status, limit, offset)
	if err != nil {
		log.Error("failed to get contact requests", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return requests, nil
}

func (s *InquiryService) UpdateContactRequestStatus(ctx context.Context, req dto.UpdateContactStatusRequest) error {
	const op = "inquiry_service.UpdateContactRequestStatus"

	log := s.log.With(
		slog.String("op", op),
		slog.Int64("request_id", req.RequestID),
		slog.String("status", req.Status),
	)

	status := models.ContactStatus(req.Status)
	if !status.Valid() {
		log.Warn("invalid status")
		return fmt.Errorf("%s: %w", op, ErrInvalidStatus)
	}

	if err := s.repo.UpdateContactRequestStatus(ctx, req.RequestID, status, req.AdminNotes); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Warn("request not found")
			return fmt.Errorf("%s: %w", op, ErrRequestNotFound)
		}
		log.Error("failed to update status", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("contact request status updated")

	return nil
}

func (s *InquiryService) CreateCustomRequest(ctx context.Context, req dto.CustomRequestInput) (int64, error) {
	const op = "inquiry_service.CreateCustomRequest"

	log := s.log.With(
		slog.String("op", op),
		slog.String("customer", req.CustomerName),
	)

	log.Info("creating custom request", slog.String("sculpture_type", req.SculptureType))

	id, err := s.repo.SaveCustomRequest(ctx, req.ToDomain())
	if err != nil {
		log.Error("failed to save custom request", sl.Err(err))
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("custom request created", slog.Int64("request_id", id))

	return id, nil
}

func (s *InquiryService) GetCustomRequests(ctx context.Context, status string, limit, offset int) ([]models.CustomRequest, error) {
	const op = "inquiry_service.GetCustomRequests"

	log := s.log.With(
		slog.String("op", op),
		slog.String("status", status),
	)

	if status != "" && !models.CustomStatus(status).Valid() {
		log.Warn("invalid status filter")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidStatus)
	}
	limit = catalog.ClampLimit(limit, catalog.DefaultRequestLimit)
	if offset < 0 {
		offset = 0
	}

	requests, err := s.repo.GetCustomRequests(ctx, status, limit, offset)
	if err != nil {
		log.Error("failed to get custom requests", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return requests, nil
}

func (s *InquiryService) UpdateCustomRequest(ctx context.Context, req dto.UpdateCustomRequestInput) error {
	const op = "inquiry_service.UpdateCustomRequest"

	log := s.log.With(
		slog.String("op", op),
		slog.Int64("request_id", req.RequestID),
	)

	if req.Status != nil && !models.CustomStatus(*req.Status).Valid() {
		log.Warn("invalid status", slog.String("status", *req.Status))
		return fmt.Errorf("%s: %w", op, ErrInvalidStatus)
	}

	updates := req.Updates()
	if len(updates) == 0 {
		return fmt.Errorf("%s: %w", op, ErrNothingToUpdate)
	}

	if err := s.repo.UpdateCustomRequestFields(ctx, req.RequestID, updates); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Warn("request not found")
			return fmt.Errorf("%s: %w", op, ErrRequestNotFound)
		}
		log.Error("failed to update custom request", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("custom request updated", slog.Int("fields", len(updates)))

	return nil
}
