package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PetCareService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-PetCareService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-PetCareService/internal/service/bookings/models"
	"github.com/m04kA/SMC-PetCareService/pkg/logger"
	"github.com/m04kA/SMC-PetCareService/pkg/ptr"
)

type fakeRepo struct {
	items      map[int64]*domain.Booking
	lastStatus *domain.BookingStatus
	lastFilter *domain.CaretakerBookingsFilter
	err        error
}

func (r *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	if r.err != nil {
		return nil, r.err
	}
	b, ok := r.items[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (r *fakeRepo) GetByParticipant(_ context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	r.lastStatus = status
	out := make([]*domain.Booking, 0)
	for _, b := range r.items {
		if b.IsParticipant(userID) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeRepo) GetByCaretakerWithFilter(_ context.Context, filter domain.CaretakerBookingsFilter) ([]*domain.Booking, error) {
	r.lastFilter = &filter
	if r.err != nil {
		return nil, r.err
	}
	out := make([]*domain.Booking, 0)
	for _, b := range r.items {
		if b.CaretakerID == filter.CaretakerID {
			out = append(out, b)
		}
	}
	return out, nil
}

func newService() (*Service, *fakeRepo) {
	repo := &fakeRepo{items: map[int64]*domain.Booking{
		10: {
			ID:          10,
			OwnerID:     1,
			CaretakerID: 2,
			Start:       time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			End:         time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
			Status:      domain.StatusPending,
			TotalPrice:  75,
		},
	}}
	return NewService(repo, logger.NewNop()), repo
}

func TestService_GetByID(t *testing.T) {
	svc, repo := newService()

	for _, userID := range []int64{1, 2} {
		resp, err := svc.GetByID(context.Background(), 10, userID)
		require.NoError(t, err)
		assert.Equal(t, 3, resp.DurationDays)
		assert.Equal(t, "pending", resp.Status)
	}

	_, err := svc.GetByID(context.Background(), 10, 3)
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.GetByID(context.Background(), 11, 1)
	assert.ErrorIs(t, err, ErrBookingNotFound)

	repo.err = errors.New("db down")
	_, err = svc.GetByID(context.Background(), 10, 1)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestService_GetUserBookings(t *testing.T) {
	svc, repo := newService()

	resp, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: 2})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 1)
	assert.Nil(t, repo.lastStatus)

	resp, err = svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: 5, Status: ptr.Ptr("accepted")})
	require.NoError(t, err)
	assert.NotNil(t, resp.Bookings)
	assert.Empty(t, resp.Bookings)
	require.NotNil(t, repo.lastStatus)
	assert.Equal(t, domain.StatusAccepted, *repo.lastStatus)

	_, err = svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: 2, Status: ptr.Ptr("confirmed")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_GetCaretakerBookings(t *testing.T) {
	t.Run("defaults to active bookings without period", func(t *testing.T) {
		svc, repo := newService()

		resp, err := svc.GetCaretakerBookings(context.Background(), &models.GetCaretakerBookingsRequest{UserID: 2})
		require.NoError(t, err)
		assert.Len(t, resp.Bookings, 1)
		require.NotNil(t, repo.lastFilter)
		assert.Equal(t, int64(2), repo.lastFilter.CaretakerID)
		assert.False(t, repo.lastFilter.IncludeInactive)
		assert.Nil(t, repo.lastFilter.Status)
		assert.Nil(t, repo.lastFilter.From)
		assert.Nil(t, repo.lastFilter.To)
	})

	t.Run("date maps to a one-day window", func(t *testing.T) {
		svc, repo := newService()
		date := time.Date(2024, 6, 2, 15, 30, 0, 0, time.UTC)

		_, err := svc.GetCaretakerBookings(context.Background(), &models.GetCaretakerBookingsRequest{
			UserID:          2,
			Status:          ptr.Ptr("completed"),
			Date:            &date,
			IncludeInactive: true,
		})
		require.NoError(t, err)
		require.NotNil(t, repo.lastFilter.From)
		require.NotNil(t, repo.lastFilter.To)
		assert.Equal(t, time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC), *repo.lastFilter.From)
		assert.Equal(t, time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), *repo.lastFilter.To)
		require.NotNil(t, repo.lastFilter.Status)
		assert.Equal(t, domain.StatusCompleted, *repo.lastFilter.Status)
		assert.True(t, repo.lastFilter.IncludeInactive)
	})

	t.Run("invalid status", func(t *testing.T) {
		svc, _ := newService()

		_, err := svc.GetCaretakerBookings(context.Background(), &models.GetCaretakerBookingsRequest{UserID: 2, Status: ptr.Ptr("cancelled")})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("repository error", func(t *testing.T) {
		svc, repo := newService()
		repo.err = errors.New("db down")

		_, err := svc.GetCaretakerBookings(context.Background(), &models.GetCaretakerBookingsRequest{UserID: 2})
		assert.ErrorIs(t, err, ErrInternal)
	})
}
