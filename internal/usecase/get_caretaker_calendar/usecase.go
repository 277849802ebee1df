package get_caretaker_calendar

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-PetCareService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-PetCareService/internal/infra/storage/availability"
)

// UseCase use case для получения календаря загрузки ситтера
type UseCase struct {
	bookingRepo      BookingRepository
	availabilityRepo AvailabilityRepository
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	availabilityRepo AvailabilityRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:      bookingRepo,
		availabilityRepo: availabilityRepo,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute возвращает по каждому дню периода число занятых и свободных мест ситтера
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetCaretakerCalendar: caretaker=%d, from=%s, to=%s",
		req.CaretakerID, req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetCaretakerCalendar: validation failed: %v", err)
		return nil, err
	}

	from := truncateToDay(req.From)
	to := truncateToDay(req.To)

	// 2. Период не в прошлом и не длиннее лимита
	if err := validatePeriod(from, to, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("GetCaretakerCalendar: period validation failed: %v", err)
		return nil, err
	}

	// 3. Доступность ситтера; если не настраивалась, значения по умолчанию
	availability, err := uc.availabilityRepo.GetByCaretakerID(ctx, req.CaretakerID)
	if err != nil {
		if !errors.Is(err, availabilityRepo.ErrAvailabilityNotFound) {
			uc.logger.Error("GetCaretakerCalendar: failed to get availability for caretaker=%d: %v", req.CaretakerID, err)
			return nil, fmt.Errorf("%w: failed to get availability: %v", ErrInternal, err)
		}
		availability = domain.DefaultAvailability(req.CaretakerID)
		uc.logger.Info("GetCaretakerCalendar: using default availability for caretaker=%d", req.CaretakerID)
	}

	// 4. Активные бронирования, пересекающие весь период
	period := domain.Interval{Start: from, End: to.Add(day)}
	bookings, err := uc.bookingRepo.GetActiveOverlapping(ctx, req.CaretakerID, period)
	if err != nil {
		uc.logger.Error("GetCaretakerCalendar: failed to get bookings for caretaker=%d: %v", req.CaretakerID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 5. Считаем загрузку по дням
	days := buildCalendar(from, to, availability, bookings)

	uc.logger.Info("GetCaretakerCalendar: built %d days for caretaker=%d from %d active bookings",
		len(days), req.CaretakerID, len(bookings))

	return &Response{
		CaretakerID: req.CaretakerID,
		MaxPets:     availability.Capacity(),
		Days:        days,
	}, nil
}
