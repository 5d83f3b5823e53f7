package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"sculpture_shop/internal/domain/models"
	"sculpture_shop/internal/lib/logger/sl"
	"sculpture_shop/internal/repository"
	"sculpture_shop/internal/storage"

	"github.com/google/uuid"
)

// SelectionService maintains each client's sculpture selection server-side,
// keyed by a client-generated uuid. Adding an already-selected sculpture and
// removing an absent one are both no-ops.
type SelectionService struct {
	log        *slog.Logger
	repo       repository.SelectionRepository
	sculptures repository.SculptureRepository
}

func NewSelectionService(log *slog.Logger, repo repository.SelectionRepository, sculptures repository.SculptureRepository) *SelectionService {
	return &SelectionService{log: log, repo: repo, sculptures: sculptures}
}

func (s *SelectionService) Add(ctx context.Context, clientID uuid.UUID, sculptureID int64) error {
	const op = "selection_service.Add"

	log := s.log.With(
		slog.String("op", op),
		slog.String("client_id", clientID.String()),
		slog.Int64("sculpture_id", sculptureID),
	)

	if err := s.repo.AddSelection(ctx, clientID, sculptureID); err != nil {
		log.Error("failed to add selection", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *SelectionService) Remove(ctx context.Context, clientID uuid.UUID, sculptureID int64) error {
	const op = "selection_service.Remove"

	log := s.log.With(
		slog.String("op", op),
		slog.String("client_id", clientID.String()),
		slog.Int64("sculpture_id", sculptureID),
	)

	if err := s.repo.RemoveSelection(ctx, clientID, sculptureID); err != nil {
		log.Error("failed to remove selection", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *SelectionService) Clear(ctx context.Context, clientID uuid.UUID) error {
	const op = "selection_service.Clear"

	log := s.log.With(
		slog.String("op", op),
		slog.String("client_id", clientID.String()),
	)

	if err := s.repo.ClearSelections(ctx, clientID); err != nil {
		log.Error("failed to clear selections", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Get returns the selected ids in insertion order.
func (s *SelectionService) Get(ctx context.Context, clientID uuid.UUID) ([]int64, error) {
	const op = "selection_service.Get"

	ids, err := s.repo.GetSelections(ctx, clientID)
	if err != nil {
		s.log.With(slog.String("op", op)).Error("failed to get selections", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return ids, nil
}

// GetSelected hydrates the selected ids into sculpture rows, keeping
// insertion order. Ids pointing at deleted sculptures are skipped.
func (s *SelectionService) GetSelected(ctx context.Context, clientID uuid.UUID) ([]models.Sculpture, error) {
	const op = "selection_service.GetSelected"

	log := s.log.With(
		slog.String("op", op),
		slog.String("client_id", clientID.String()),
	)

	ids, err := s.Get(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	sculptures := make([]models.Sculpture, 0, len(ids))
	for _, id := range ids {
		sculpture, err := s.sculptures.GetSculptureByID(ctx, id)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				log.Warn("selected sculpture no longer exists", slog.Int64("sculpture_id", id))
				continue
			}
			log.Error("failed to load selected sculpture", sl.Err(err))
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		sculptures = append(sculptures, *sculpture)
	}

	return sculptures, nil
}

func (s *SelectionService) IsSelected(ctx context.Context, clientID uuid.UUID, sculptureID int64) (bool, error) {
	const op = "selection_service.IsSelected"

	selected, err := s.repo.IsSelected(ctx, clientID, sculptureID)
	if err != nil {
		s.log.With(slog.String("op", op)).Error("failed to check selection", sl.Err(err))
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return selected, nil
}
