package update_booking_status

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-PetCareService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-PetCareService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-PetCareService/pkg/txmanager"
)

// capacityStage метка этапа для метрики отказов по вместимости
const capacityStage = "accept"

// UseCase use case для смены статуса бронирования ситтером
type UseCase struct {
	bookingRepo      BookingRepository
	availabilityRepo AvailabilityRepository
	txManager        TransactionManager
	publisher        EventPublisher
	metrics          Metrics
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	availabilityRepo AvailabilityRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:      bookingRepo,
		availabilityRepo: availabilityRepo,
		txManager:        txManager,
		publisher:        publisher,
		metrics:          metrics,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute применяет переход статуса.
// Порядок проверок: существование, права ситтера, no-op, таблица переходов,
// повторная проверка вместимости при переходе в accepted.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBookingStatus: booking=%d, actor=%d, status=%s", req.BookingID, req.ActorID, req.Status)

	// 1. Валидация входных данных
	next, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("UpdateBookingStatus: validation failed: %v", err)
		return nil, err
	}

	var (
		result  *domain.Booking
		from    domain.BookingStatus
		changed bool
	)

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2. Получаем бронирование с блокировкой строки
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("UpdateBookingStatus: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBookingStatus: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %w", ErrInternal, err)
		}

		// 3. Менять статус может только ситтер бронирования
		if booking.CaretakerID != req.ActorID {
			uc.logger.Warn("UpdateBookingStatus: user id=%d is not caretaker of booking id=%d", req.ActorID, booking.ID)
			return ErrAccessDenied
		}

		// 4. Повторный запрос текущего статуса ничего не меняет
		from = booking.Status
		if from == next {
			uc.logger.Info("UpdateBookingStatus: booking id=%d already %s, no-op", booking.ID, next)
			result = booking
			return nil
		}

		// 5. Проверяем таблицу переходов
		if err := from.ValidateTransition(next); err != nil {
			uc.logger.Warn("UpdateBookingStatus: booking id=%d: %v", booking.ID, err)
			return err
		}

		// 6. При принятии пересчитываем вместимость, исключая само бронирование
		if next == domain.StatusAccepted {
			if err := uc.checkCapacity(txCtx, booking); err != nil {
				return err
			}
		}

		// 7. Compare-and-set статуса
		updated, err := uc.bookingRepo.UpdateStatus(txCtx, booking.ID, from, next)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrStatusConflict) {
				uc.logger.Warn("UpdateBookingStatus: booking id=%d status changed concurrently", booking.ID)
				return ErrConcurrentUpdate
			}
			uc.logger.Error("UpdateBookingStatus: failed to update booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to update status: %w", ErrInternal, err)
		}

		result = updated
		changed = true
		return nil
	})

	if err != nil {
		if errors.Is(err, txmanager.ErrSerializationFailure) {
			uc.logger.Warn("UpdateBookingStatus: serialization conflict for booking id=%d: %v", req.BookingID, err)
			return nil, ErrConcurrentUpdate
		}
		if errors.Is(err, txmanager.ErrBeginTx) || errors.Is(err, txmanager.ErrCommitTx) {
			uc.logger.Error("UpdateBookingStatus: transaction failed: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
		return nil, err
	}

	if changed {
		uc.logger.Info("UpdateBookingStatus: booking id=%d %s -> %s", result.ID, from, result.Status)
		uc.metrics.IncBookingTransition(string(from), string(result.Status))

		if err := uc.publisher.Publish(ctx, domain.NewBookingStatusChangedEvent(result, from, uc.timeProvider.Now())); err != nil {
			uc.logger.Warn("UpdateBookingStatus: failed to publish event for booking id=%d: %v", result.ID, err)
		}
	}

	return toResponse(result, changed), nil
}

// checkCapacity блокирует доступность ситтера и проверяет, что после принятия
// число активных пересекающихся бронирований не превысит maxPets
func (uc *UseCase) checkCapacity(ctx context.Context, booking *domain.Booking) error {
	availability, err := uc.availabilityRepo.LockByCaretakerID(ctx, booking.CaretakerID)
	if err != nil {
		uc.logger.Error("UpdateBookingStatus: failed to lock availability of caretaker id=%d: %v", booking.CaretakerID, err)
		return fmt.Errorf("%w: failed to lock availability: %w", ErrInternal, err)
	}

	interval := booking.Interval()
	bookings, err := uc.bookingRepo.GetActiveOverlapping(ctx, booking.CaretakerID, interval)
	if err != nil {
		uc.logger.Error("UpdateBookingStatus: failed to get overlapping bookings: %v", err)
		return fmt.Errorf("%w: failed to get overlapping bookings: %w", ErrInternal, err)
	}

	overlapping := domain.CountOverlapping(interval, bookings, booking.ID)
	if !domain.HasCapacity(overlapping, availability.Capacity()) {
		uc.logger.Warn("UpdateBookingStatus: cannot accept booking id=%d, %d/%d spots taken",
			booking.ID, overlapping, availability.Capacity())
		uc.metrics.IncCapacityRejection(capacityStage)
		return ErrCapacityExceeded
	}

	return nil
}

func toResponse(b *domain.Booking, changed bool) *Response {
	return &Response{
		ID:          b.ID,
		OwnerID:     b.OwnerID,
		CaretakerID: b.CaretakerID,
		ServiceID:   b.ServiceID,
		PetID:       b.PetID,
		Start:       b.Start,
		End:         b.End,
		Status:      string(b.Status),
		TotalPrice:  b.TotalPrice,
		Changed:     changed,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}
