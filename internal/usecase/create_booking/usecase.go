package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-PetCareService/internal/domain"
	catalogClient "github.com/m04kA/SMC-PetCareService/internal/integrations/catalogservice"
	userClient "github.com/m04kA/SMC-PetCareService/internal/integrations/userservice"
	"github.com/m04kA/SMC-PetCareService/pkg/txmanager"
)

// capacityStage метка этапа для метрики отказов по вместимости
const capacityStage = "create"

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo      BookingRepository
	availabilityRepo AvailabilityRepository
	catalogClient    CatalogServiceClient
	userClient       UserServiceClient
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
	catalogClient CatalogServiceClient,
	userClient UserServiceClient,
	txManager TransactionManager,
	publisher EventPublisher,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:      bookingRepo,
		availabilityRepo: availabilityRepo,
		catalogClient:    catalogClient,
		userClient:       userClient,
		txManager:        txManager,
		publisher:        publisher,
		metrics:          metrics,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверки вместимости и запись выполняются в сериализуемой транзакции
// под блокировкой строки доступности ситтера.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: owner=%d, caretaker=%d, service=%d, pet=%d, start=%s, end=%s",
		req.OwnerID, req.CaretakerID, req.ServiceID, req.PetID,
		req.Start.Format("2006-01-02T15:04:05Z07:00"), req.End.Format("2006-01-02T15:04:05Z07:00"))

	// 1. Валидация входных данных (end > start)
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}
	interval := domain.Interval{Start: req.Start, End: req.End}

	// 2. Получаем ситтера
	caretaker, err := uc.userClient.GetUser(ctx, req.CaretakerID)
	if err != nil {
		if errors.Is(err, userClient.ErrUserNotFound) {
			uc.logger.Warn("CreateBooking: caretaker id=%d not found", req.CaretakerID)
			return nil, ErrCaretakerNotFound
		}
		uc.logger.Error("CreateBooking: failed to get caretaker id=%d: %v", req.CaretakerID, err)
		return nil, fmt.Errorf("%w: failed to get caretaker: %v", ErrInternal, err)
	}
	if !caretaker.IsCaretaker {
		uc.logger.Warn("CreateBooking: user id=%d is not a caretaker", req.CaretakerID)
		return nil, ErrCaretakerNotFound
	}

	// 3. Получаем услугу и проверяем, что она принадлежит ситтеру
	service, err := uc.catalogClient.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%d not found", req.ServiceID)
			return nil, ErrInvalidServiceReference
		}
		uc.logger.Error("CreateBooking: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if service.CaretakerID != req.CaretakerID {
		uc.logger.Warn("CreateBooking: service id=%d belongs to caretaker id=%d, not %d",
			service.ID, service.CaretakerID, req.CaretakerID)
		return nil, ErrInvalidServiceReference
	}

	// 4. Получаем питомца и проверяем владельца
	pet, err := uc.userClient.GetPet(ctx, req.PetID)
	if err != nil {
		if errors.Is(err, userClient.ErrPetNotFound) {
			uc.logger.Warn("CreateBooking: pet id=%d not found", req.PetID)
			return nil, ErrPetNotOwned
		}
		uc.logger.Error("CreateBooking: failed to get pet id=%d: %v", req.PetID, err)
		return nil, fmt.Errorf("%w: failed to get pet: %v", ErrInternal, err)
	}
	if pet.OwnerID != req.OwnerID {
		uc.logger.Warn("CreateBooking: pet id=%d belongs to owner id=%d, not %d", pet.ID, pet.OwnerID, req.OwnerID)
		return nil, ErrPetNotOwned
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 5-8. Выполняем проверки и запись в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Блокируем строку доступности ситтера (точка сериализации по ситтеру)
		availability, err := uc.availabilityRepo.LockByCaretakerID(txCtx, req.CaretakerID)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to lock availability of caretaker id=%d: %v", req.CaretakerID, err)
			return fmt.Errorf("%w: failed to lock availability: %w", ErrInternal, err)
		}

		// 5.2. Проверяем заблокированные дни в интервале (включительно по дням)
		day, blocked, err := availability.FirstBlockedDay(req.Start, req.End)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		if blocked {
			uc.logger.Warn("CreateBooking: caretaker id=%d is not available on %s", req.CaretakerID, day)
			return &UnavailableError{Day: day}
		}

		// 6. Проверяем вместимость по свежему состоянию
		bookings, err := uc.bookingRepo.GetActiveOverlapping(txCtx, req.CaretakerID, interval)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get overlapping bookings: %v", err)
			return fmt.Errorf("%w: failed to get overlapping bookings: %w", ErrInternal, err)
		}

		overlapping := domain.CountOverlapping(interval, bookings, 0)
		if !domain.HasCapacity(overlapping, availability.Capacity()) {
			uc.logger.Warn("CreateBooking: caretaker id=%d has no capacity, %d/%d spots taken",
				req.CaretakerID, overlapping, availability.Capacity())
			uc.metrics.IncCapacityRejection(capacityStage)
			return ErrCapacityExceeded
		}

		uc.logger.Info("CreateBooking: capacity available, %d/%d spots taken",
			overlapping, availability.Capacity())

		// 7. Считаем итоговую цену
		booking := &domain.Booking{
			OwnerID:     req.OwnerID,
			CaretakerID: req.CaretakerID,
			ServiceID:   req.ServiceID,
			PetID:       req.PetID,
			Start:       req.Start,
			End:         req.End,
			Status:      domain.StatusPending,
			TotalPrice:  domain.TotalPrice(service.Price, req.Start, req.End),
		}

		// 8. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, txmanager.ErrSerializationFailure) {
			uc.logger.Warn("CreateBooking: serialization conflict for caretaker id=%d: %v", req.CaretakerID, err)
			return nil, ErrConcurrentUpdate
		}
		if errors.Is(err, txmanager.ErrBeginTx) || errors.Is(err, txmanager.ErrCommitTx) {
			uc.logger.Error("CreateBooking: transaction failed: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, total_price=%.2f", result.ID, result.TotalPrice)
	uc.metrics.IncBookingCreated()

	// Событие публикуется после коммита, ошибка не откатывает бронирование
	if err := uc.publisher.Publish(ctx, domain.NewBookingCreatedEvent(result, uc.timeProvider.Now())); err != nil {
		uc.logger.Warn("CreateBooking: failed to publish event for booking id=%d: %v", result.ID, err)
	}

	return toResponse(result), nil
}

func toResponse(b *domain.Booking) *Response {
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
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}
