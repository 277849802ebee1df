package create_payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-PetCareService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-PetCareService/internal/infra/storage/booking"
	paymentRepo "github.com/m04kA/SMC-PetCareService/internal/infra/storage/payment"
	"github.com/m04kA/SMC-PetCareService/pkg/txmanager"
)

// UseCase use case для создания платежа по принятому бронированию
type UseCase struct {
	bookingRepo  BookingRepository
	paymentRepo  PaymentRepository
	txManager    TransactionManager
	publisher    EventPublisher
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	paymentRepo PaymentRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		paymentRepo:  paymentRepo,
		txManager:    txManager,
		publisher:    publisher,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute создает платёж в статусе pending.
// Комиссия и выплата считаются один раз и больше не пересчитываются.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreatePayment: actor=%d, booking=%d, method=%s", req.ActorID, req.BookingID, req.Method)

	// 1. Валидация входных данных
	method, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreatePayment: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Payment

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2. Получаем бронирование
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("CreatePayment: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("CreatePayment: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %w", ErrInternal, err)
		}

		// 3. Платить может только владелец
		if booking.OwnerID != req.ActorID {
			uc.logger.Warn("CreatePayment: user id=%d is not owner of booking id=%d", req.ActorID, booking.ID)
			return ErrAccessDenied
		}

		// 4. Только принятое бронирование
		if booking.Status != domain.StatusAccepted {
			uc.logger.Warn("CreatePayment: booking id=%d has status %s", booking.ID, booking.Status)
			return ErrBookingNotAccepted
		}

		// 5. Один платёж на бронирование, независимо от его статуса
		existing, err := uc.paymentRepo.GetByBookingID(txCtx, booking.ID)
		if err != nil && !errors.Is(err, paymentRepo.ErrPaymentNotFound) {
			uc.logger.Error("CreatePayment: failed to check existing payment: %v", err)
			return fmt.Errorf("%w: failed to check existing payment: %w", ErrInternal, err)
		}
		if existing != nil {
			uc.logger.Warn("CreatePayment: booking id=%d already has payment id=%d (%s)",
				booking.ID, existing.ID, existing.Status)
			return ErrPaymentAlreadyExists
		}

		// 6. Считаем комиссию платформы и выплату ситтеру
		amount := booking.TotalPrice
		if req.Amount != nil {
			amount = *req.Amount
		}
		settlement, err := domain.CalculateSettlement(amount)
		if err != nil {
			uc.logger.Warn("CreatePayment: invalid amount %.2f for booking id=%d: %v", amount, booking.ID, err)
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}

		// 7. Сохраняем платёж
		created, err := uc.paymentRepo.Create(txCtx, &domain.Payment{
			BookingID:       booking.ID,
			OwnerID:         booking.OwnerID,
			CaretakerID:     booking.CaretakerID,
			Amount:          settlement.Amount,
			PlatformFee:     settlement.PlatformFee,
			CaretakerPayout: settlement.CaretakerPayout,
			Status:          domain.PaymentPending,
			Method:          method,
		})
		if err != nil {
			if errors.Is(err, paymentRepo.ErrPaymentAlreadyExists) {
				uc.logger.Warn("CreatePayment: booking id=%d already has a payment", booking.ID)
				return ErrPaymentAlreadyExists
			}
			uc.logger.Error("CreatePayment: failed to create payment: %v", err)
			return fmt.Errorf("%w: failed to create payment: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, txmanager.ErrSerializationFailure) {
			uc.logger.Warn("CreatePayment: serialization conflict for booking id=%d: %v", req.BookingID, err)
			return nil, ErrConcurrentUpdate
		}
		if errors.Is(err, txmanager.ErrBeginTx) || errors.Is(err, txmanager.ErrCommitTx) {
			uc.logger.Error("CreatePayment: transaction failed: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
		return nil, err
	}

	uc.logger.Info("CreatePayment: created payment id=%d, amount=%.2f, fee=%.2f, payout=%.2f",
		result.ID, result.Amount, result.PlatformFee, result.CaretakerPayout)
	uc.metrics.IncPayment(string(result.Status))

	if err := uc.publisher.Publish(ctx, domain.NewPaymentEvent(domain.EventPaymentCreated, result, "", uc.timeProvider.Now())); err != nil {
		uc.logger.Warn("CreatePayment: failed to publish event for payment id=%d: %v", result.ID, err)
	}

	return &Response{
		ID:              result.ID,
		BookingID:       result.BookingID,
		OwnerID:         result.OwnerID,
		CaretakerID:     result.CaretakerID,
		Amount:          result.Amount,
		PlatformFee:     result.PlatformFee,
		CaretakerPayout: result.CaretakerPayout,
		Status:          string(result.Status),
		Method:          string(result.Method),
		TransactionID:   result.TransactionID,
		CreatedAt:       result.CreatedAt,
		CompletedAt:     result.CompletedAt,
	}, nil
}
