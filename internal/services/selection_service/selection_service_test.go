package services

import (
	"context"
	"log/slog"
	"testing"

	"sculpture_shop/internal/catalog"
	"sculpture_shop/internal/domain/models"
	"sculpture_shop/internal/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSelectionRepository struct {
	mock.Mock
}

func (m *MockSelectionRepository) AddSelection(ctx context.Context, clientID uuid.UUID, sculptureID int64) error {
	args := m.Called(ctx, clientID, sculptureID)
	return args.Error(0)
}

func (m *MockSelectionRepository) RemoveSelection(ctx context.Context, clientID uuid.UUID, sculptureID int64) error {
	args := m.Called(ctx, clientID, sculptureID)
	return args.Error(0)
}

func (m *MockSelectionRepository) ClearSelections(ctx context.Context, clientID uuid.UUID) error {
	args := m.Called(ctx, clientID)
	return args.Error(0)
}

func (m *MockSelectionRepository) GetSelections(ctx context.Context, clientID uuid.UUID) ([]int64, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockSelectionRepository) IsSelected(ctx context.Context, clientID uuid.UUID, sculptureID int64) (bool, error) {
	args := m.Called(ctx, clientID, sculptureID)
	return args.Bool(0), args.Error(1)
}

type MockSculptureRepository struct {
	mock.Mock
}

func (m *MockSculptureRepository) GetSculptures(ctx context.Context, f catalog.Filter) ([]models.Sculpture, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Sculpture), args.Error(1)
}

func (m *MockSculptureRepository) CountSculptures(ctx context.Context, f catalog.Filter) (int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSculptureRepository) GetSculptureByID(ctx context.Context, id int64) (*models.Sculpture, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Sculpture), args.Error(1)
}

func (m *MockSculptureRepository) GetSculptureBySlug(ctx context.Context, slug string) (*models.Sculpture, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Sculpture), args.Error(1)
}

func (m *MockSculptureRepository) GetFeaturedSculptures(ctx context.Context, limit int) ([]models.Sculpture, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Sculpture), args.Error(1)
}

func (m *MockSculptureRepository) GetRelatedSculptures(ctx context.Context, sculptureID int64, limit int) ([]models.Sculpture, error) {
	args := m.Called(ctx, sculptureID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Sculpture), args.Error(1)
}

func (m *MockSculptureRepository) SaveSculpture(ctx context.Context, s models.Sculpture) (int64, error) {
	args := m.Called(ctx, s)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSculptureRepository) UpdateSculptureFields(ctx context.Context, id int64, updates map[string]interface{}) error {
	return m.Called(ctx, id, updates).Error(0)
}

func (m *MockSculptureRepository) SoftDeleteSculpture(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockSculptureRepository) IncrementViewCount(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockSculptureRepository) GetImages(ctx context.Context, sculptureID int64) ([]models.SculptureImage, error) {
	args := m.Called(ctx, sculptureID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SculptureImage), args.Error(1)
}

func (m *MockSculptureRepository) AddImage(ctx context.Context, img models.SculptureImage) (int64, error) {
	args := m.Called(ctx, img)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSculptureRepository) DeleteImage(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func TestSelectionService(t *testing.T) {
	ctx := context.Background()
	log := slog.Default()
	clientID := uuid.New()

	t.Run("add and get", func(t *testing.T) {
		repo := new(MockSelectionRepository)
		repo.On("AddSelection", ctx, clientID, int64(7)).Return(nil).Once()
		repo.On("GetSelections", ctx, clientID).Return([]int64{7}, nil).Once()

		service := NewSelectionService(log, repo, new(MockSculptureRepository))

		require.NoError(t, service.Add(ctx, clientID, 7))

		ids, err := service.Get(ctx, clientID)
		require.NoError(t, err)
		assert.Equal(t, []int64{7}, ids)
		repo.AssertExpectations(t)
	})

	t.Run("remove and clear", func(t *testing.T) {
		repo := new(MockSelectionRepository)
		repo.On("RemoveSelection", ctx, clientID, int64(7)).Return(nil).Once()
		repo.On("ClearSelections", ctx, clientID).Return(nil).Once()

		service := NewSelectionService(log, repo, new(MockSculptureRepository))

		assert.NoError(t, service.Remove(ctx, clientID, 7))
		assert.NoError(t, service.Clear(ctx, clientID))
		repo.AssertExpectations(t)
	})

	t.Run("is selected", func(t *testing.T) {
		repo := new(MockSelectionRepository)
		repo.On("IsSelected", ctx, clientID, int64(7)).Return(true, nil).Once()
		repo.On("IsSelected", ctx, clientID, int64(8)).Return(false, nil).Once()

		service := NewSelectionService(log, repo, new(MockSculptureRepository))

		selected, err := service.IsSelected(ctx, clientID, 7)
		require.NoError(t, err)
		assert.True(t, selected)

		selected, err = service.IsSelected(ctx, clientID, 8)
		require.NoError(t, err)
		assert.False(t, selected)
	})

	t.Run("repository error surfaces", func(t *testing.T) {
		repo := new(MockSelectionRepository)
		repo.On("GetSelections", ctx, clientID).Return(nil, assert.AnError).Once()

		service := NewSelectionService(log, repo, new(MockSculptureRepository))
		_, err := service.Get(ctx, clientID)

		assert.Error(t, err)
	})
}

func TestSelectionService_GetSelected(t *testing.T) {
	ctx := context.Background()
	log := slog.Default()
	clientID := uuid.New()

	t.Run("hydrates ids in order", func(t *testing.T) {
		repo := new(MockSelectionRepository)
		repo.On("GetSelections", ctx, clientID).Return([]int64{42, 7}, nil).Once()

		sculptures := new(MockSculptureRepository)
		sculptures.On("GetSculptureByID", ctx, int64(42)).
			Return(&models.Sculpture{ID: 42, Slug: "nataraja"}, nil).Once()
		sculptures.On("GetSculptureByID", ctx, int64(7)).
			Return(&models.Sculpture{ID: 7, Slug: "dancing-shiva"}, nil).Once()

		service := NewSelectionService(log, repo, sculptures)

		got, err := service.GetSelected(ctx, clientID)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, int64(42), got[0].ID)
		assert.Equal(t, int64(7), got[1].ID)

		repo.AssertExpectations(t)
		sculptures.AssertExpectations(t)
	})

	t.Run("skips deleted sculptures", func(t *testing.T) {
		repo := new(MockSelectionRepository)
		repo.On("GetSelections", ctx, clientID).Return([]int64{42, 99}, nil).Once()

		sculptures := new(MockSculptureRepository)
		sculptures.On("GetSculptureByID", ctx, int64(42)).
			Return(&models.Sculpture{ID: 42}, nil).Once()
		sculptures.On("GetSculptureByID", ctx, int64(99)).
			Return(nil, storage.ErrNotFound).Once()

		service := NewSelectionService(log, repo, sculptures)

		got, err := service.GetSelected(ctx, clientID)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, int64(42), got[0].ID)
	})

	t.Run("empty selection", func(t *testing.T) {
		repo := new(MockSelectionRepository)
		repo.On("GetSelections", ctx, clientID).Return([]int64{}, nil).Once()

		service := NewSelectionService(log, repo, new(MockSculptureRepository))

		got, err := service.GetSelected(ctx, clientID)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
