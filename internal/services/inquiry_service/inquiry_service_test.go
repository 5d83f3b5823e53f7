package services

import (
	"context"
	"log/slog"
	"testing"

	"sculpture_shop/internal/catalog"
	"sculpture_shop/internal/domain/models"
	"sculpture_shop/internal/storage"
	"sculpture_shop/internal/transport/http/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRequestRepository struct {
	mock.Mock
}

func (m *MockRequestRepository) SaveContactRequest(ctx context.Context, r models.ContactRequest) (int64, error) {
	args := m.Called(ctx, r)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRequestRepository) GetContactRequests(ctx context.Context, status string, limit, offset int) ([]models.ContactRequest, error) {
	args := m.Called(ctx, status, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ContactRequest), args.Error(1)
}

func (m *MockRequestRepository) UpdateContactRequestStatus(ctx context.Context, id int64, status models.ContactStatus, adminNotes *string) error {
	args := m.Called(ctx, id, status, adminNotes)
	return args.Error(0)
}

func (m *MockRequestRepository) SaveCustomRequest(ctx context.Context, r models.CustomRequest) (int64, error) {
	args := m.Called(ctx, r)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRequestRepository) GetCustomRequests(ctx context.Context, status string, limit, offset int) ([]models.CustomRequest, error) {
	args := m.Called(ctx, status, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CustomRequest), args.Error(1)
}

func (m *MockRequestRepository) UpdateCustomRequestFields(ctx context.Context, id int64, updates map[string]interface{}) error {
	args := m.Called(ctx, id, updates)
	return args.Error(0)
}

func TestInquiryService_CreateContactRequest(t *testing.T) {
	ctx := context.Background()
	log := slog.Default()

	t.Run("selected ids serialized, defaults applied", func(t *testing.T) {
		repo := new(MockRequestRepository)
		repo.On("SaveContactRequest", ctx, mock.MatchedBy(func(r models.ContactRequest) bool {
			return r.SelectedSculptureIDs == "[3,7]" &&
				r.RequestType == models.RequestTypeInquiry &&
				r.Status == models.ContactStatusPending
		})).Return(int64(1), nil).Once()

		service := NewInquiryService(log, repo)
		id, err := service.CreateContactRequest(ctx, dto.ContactRequestInput{
			CustomerName:         "Priya",
			MobileNumber:         "9876543210",
			SelectedSculptureIDs: []int64{3, 7},
		})

		require.NoError(t, err)
		assert.Equal(t, int64(1), id)
		repo.AssertExpectations(t)
	})

	t.Run("nil selection stored as empty list", func(t *testing.T) {
		repo := new(MockRequestRepository)
		repo.On("SaveContactRequest", ctx, mock.MatchedBy(func(r models.ContactRequest) bool {
			return r.SelectedSculptureIDs == "[]"
		})).Return(int64(2), nil).Once()

		service := NewInquiryService(log, repo)
		_, err := service.CreateContactRequest(ctx, dto.ContactRequestInput{
			CustomerName: "Arun",
			MobileNumber: "9123456780",
		})

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})
}

func TestInquiryService_GetContactRequests(t *testing.T) {
	ctx := context.Background()
	log := slog.Default()

	t.Run("default limit applied", func(t *testing.T) {
		repo := new(MockRequestRepository)
		repo.On("GetContactRequests", ctx, "pending", catalog.DefaultRequestLimit, 0).
			Return([]models.ContactRequest{{ID: 1}}, nil).Once()

		service := NewInquiryService(log, repo)
		got, err := service.GetContactRequests(ctx, "pending", 0, -5)

		require.NoError(t, err)
		assert.Len(t, got, 1)
		repo.AssertExpectations(t)
	})

	t.Run("oversized limit is clamped", func(t *testing.T) {
		repo := new(MockRequestRepository)
		repo.On("GetContactRequests", ctx, "", catalog.MaxLimit, 0).
			Return([]models.ContactRequest{}, nil).Once()

		service := NewInquiryService(log, repo)
		_, err := service.GetContactRequests(ctx, "", 1000000, 0)

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("invalid status filter", func(t *testing.T) {
		service := NewInquiryService(log, new(MockRequestRepository))
		_, err := service.GetContactRequests(ctx, "bogus", 10, 0)
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("empty status means all", func(t *testing.T) {
		repo := new(MockRequestRepository)
		repo.On("GetContactRequests", ctx, "", 10, 0).
			Return([]models.ContactRequest{}, nil).Once()

		service := NewInquiryService(log, repo)
		_, err := service.GetContactRequests(ctx, "", 10, 0)

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})
}

func TestInquiryService_UpdateContactRequestStatus(t *testing.T) {
	ctx := context.Background()
	log := slog.Default()
	notes := "called back"

	tests := []struct {
		name      string
		req       dto.UpdateContactStatusRequest
		mockSetup func(*MockRequestRepository)
		wantErr   error
	}{
		{
			name: "any status may move to any other",
			req:  dto.UpdateContactStatusRequest{RequestID: 1, Status: "cancelled", AdminNotes: &notes},
			mockSetup: func(repo *MockRequestRepository) {
				repo.On("UpdateContactRequestStatus", ctx, int64(1), models.ContactStatusCancelled, &notes).
					Return(nil).Once()
			},
		},
		{
			name:      "unknown status rejected",
			req:       dto.UpdateContactStatusRequest{RequestID: 1, Status: "archived"},
			mockSetup: func(repo *MockRequestRepository) {},
			wantErr:   ErrInvalidStatus,
		},
		{
			name: "missing request",
			req:  dto.UpdateContactStatusRequest{RequestID: 404, Status: "completed"},
			mockSetup: func(repo *MockRequestRepository) {
				repo.On("UpdateContactRequestStatus", ctx, int64(404), models.ContactStatusCompleted, (*string)(nil)).
					Return(storage.ErrNotFound).Once()
			},
			wantErr: ErrRequestNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRequestRepository)
			tt.mockSetup(repo)

			service := NewInquiryService(log, repo)
			err := service.UpdateContactRequestStatus(ctx, tt.req)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestInquiryService_CustomRequests(t *testing.T) {
	ctx := context.Background()
	log := slog.Default()

	t.Run("create with pending status", func(t *testing.T) {
		repo := new(MockRequestRepository)
		repo.On("SaveCustomRequest", ctx, mock.MatchedBy(func(r models.CustomRequest) bool {
			return r.Status == models.CustomStatusPending && r.SculptureType == "bust"
		})).Return(int64(1), nil).Once()

		service := NewInquiryService(log, repo)
		id, err := service.CreateCustomRequest(ctx, dto.CustomRequestInput{
			CustomerName:  "Arun",
			MobileNumber:  "9123456780",
			SculptureType: "bust",
		})

		require.NoError(t, err)
		assert.Equal(t, int64(1), id)
	})

	t.Run("oversized list limit is clamped", func(t *testing.T) {
		repo := new(MockRequestRepository)
		repo.On("GetCustomRequests", ctx, "", catalog.MaxLimit, 0).
			Return([]models.CustomRequest{}, nil).Once()

		service := NewInquiryService(log, repo)
		_, err := service.GetCustomRequests(ctx, "", catalog.MaxLimit+1, 0)

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("quote update", func(t *testing.T) {
		status := "quoted"
		price := 85000.0
		days := 45

		repo := new(MockRequestRepository)
		repo.On("UpdateCustomRequestFields", ctx, int64(1), map[string]interface{}{
			"status":         "quoted",
			"quoted_price":   85000.0,
			"estimated_days": 45,
		}).Return(nil).Once()

		service := NewInquiryService(log, repo)
		err := service.UpdateCustomRequest(ctx, dto.UpdateCustomRequestInput{
			RequestID:     1,
			Status:        &status,
			QuotedPrice:   &price,
			EstimatedDays: &days,
		})

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("invalid status rejected before repo call", func(t *testing.T) {
		status := "bogus"

		service := NewInquiryService(log, new(MockRequestRepository))
		err := service.UpdateCustomRequest(ctx, dto.UpdateCustomRequestInput{RequestID: 1, Status: &status})

		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("empty update rejected", func(t *testing.T) {
		service := NewInquiryService(log, new(MockRequestRepository))
		err := service.UpdateCustomRequest(ctx, dto.UpdateCustomRequestInput{RequestID: 1})
		assert.ErrorIs(t, err, ErrNothingToUpdate)
	})
}
