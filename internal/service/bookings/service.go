package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-PetCareService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-PetCareService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-PetCareService/internal/service/bookings/models"
)

// Service сервис для чтения бронирований
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID.
// Видеть бронирование могут только его владелец и ситтер.
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if !booking.IsParticipant(userID) {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает бронирования пользователя как владельца или ситтера.
// Опционально фильтрует по статусу.
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d, status=%v", req.UserID, req.Status)

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := domain.ParseBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByParticipant(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%d", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// GetCaretakerBookings получает расписание ситтера (бронирования, где он исполнитель).
// По умолчанию возвращает только активные бронирования. Фильтр по дате
// выбирает бронирования, пересекающие этот календарный день.
func (s *Service) GetCaretakerBookings(ctx context.Context, req *models.GetCaretakerBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetCaretakerBookings: fetching bookings for caretaker=%d, status=%v, date=%v, includeInactive=%t",
		req.UserID, req.Status, req.Date, req.IncludeInactive)

	filter := domain.CaretakerBookingsFilter{
		CaretakerID:     req.UserID,
		IncludeInactive: req.IncludeInactive,
	}

	if req.Status != nil {
		status, err := domain.ParseBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetCaretakerBookings: invalid status=%s for caretaker=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		filter.Status = &status
	}

	if req.Date != nil {
		from := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, time.UTC)
		to := from.AddDate(0, 0, 1)
		filter.From = &from
		filter.To = &to
	}

	bookings, err := s.bookingRepo.GetByCaretakerWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetCaretakerBookings: repository error for caretaker=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetCaretakerBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetCaretakerBookings: successfully fetched %d bookings for caretaker=%d", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}
