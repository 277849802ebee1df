package payments

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-PetCareService/internal/domain"
	paymentRepo "github.com/m04kA/SMC-PetCareService/internal/infra/storage/payment"
	"github.com/m04kA/SMC-PetCareService/internal/service/payments/models"
	"github.com/m04kA/SMC-PetCareService/pkg/txmanager"
)

const transactionIDPrefix = "txn_"

// Service сервис для обработки и чтения платежей
type Service struct {
	paymentRepo  PaymentRepository
	txManager    TransactionManager
	publisher    EventPublisher
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса платежей
func NewService(
	paymentRepo PaymentRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		paymentRepo:  paymentRepo,
		txManager:    txManager,
		publisher:    publisher,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Process имитирует списание: pending -> completed с ID транзакции.
// Доступно только владельцу.
func (s *Service) Process(ctx context.Context, paymentID, userID int64) (*models.PaymentResponse, error) {
	s.logger.Info("Process: processing payment id=%d by user=%d", paymentID, userID)

	return s.transition(ctx, "Process", paymentID, userID, domain.PaymentCompleted,
		func(txCtx context.Context, p *domain.Payment, now time.Time) (*domain.Payment, error) {
			return s.paymentRepo.MarkCompleted(txCtx, p.ID, newTransactionID(), now)
		})
}

// Refund переводит завершённый платёж в refunded.
// Доступно только владельцу.
func (s *Service) Refund(ctx context.Context, paymentID, userID int64) (*models.PaymentResponse, error) {
	s.logger.Info("Refund: refunding payment id=%d by user=%d", paymentID, userID)

	return s.transition(ctx, "Refund", paymentID, userID, domain.PaymentRefunded,
		func(txCtx context.Context, p *domain.Payment, now time.Time) (*domain.Payment, error) {
			return s.paymentRepo.MarkRefunded(txCtx, p.ID, now)
		})
}

type applyFunc func(ctx context.Context, p *domain.Payment, now time.Time) (*domain.Payment, error)

func (s *Service) transition(
	ctx context.Context,
	op string,
	paymentID, userID int64,
	next domain.PaymentStatus,
	apply applyFunc,
) (*models.PaymentResponse, error) {
	if paymentID <= 0 {
		return nil, fmt.Errorf("%w: paymentID must be positive", ErrInvalidInput)
	}

	var (
		result *domain.Payment
		from   domain.PaymentStatus
	)
	now := s.timeProvider.Now()

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		payment, err := s.paymentRepo.GetByID(txCtx, paymentID)
		if err != nil {
			if errors.Is(err, paymentRepo.ErrPaymentNotFound) {
				s.logger.Warn("%s: payment id=%d not found", op, paymentID)
				return ErrPaymentNotFound
			}
			return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
		}

		if payment.OwnerID != userID {
			s.logger.Warn("%s: user=%d is not owner of payment id=%d", op, userID, paymentID)
			return ErrAccessDenied
		}

		from = payment.Status
		if err := from.ValidateTransition(next); err != nil {
			s.logger.Warn("%s: payment id=%d is %s: %v", op, paymentID, from, err)
			return fmt.Errorf("%w: payment is %s", ErrInvalidPaymentState, from)
		}

		updated, err := apply(txCtx, payment, now)
		if err != nil {
			if errors.Is(err, paymentRepo.ErrStatusConflict) {
				s.logger.Warn("%s: payment id=%d status changed concurrently", op, paymentID)
				return ErrConcurrentUpdate
			}
			return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
		}

		result = updated
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrPaymentNotFound), errors.Is(err, ErrAccessDenied),
			errors.Is(err, ErrInvalidPaymentState), errors.Is(err, ErrConcurrentUpdate):
			return nil, err
		case errors.Is(err, txmanager.ErrSerializationFailure):
			s.logger.Warn("%s: serialization failure for payment id=%d: %v", op, paymentID, err)
			return nil, ErrConcurrentUpdate
		case errors.Is(err, ErrInternal):
			s.logger.Error("%s: payment id=%d: %v", op, paymentID, err)
			return nil, err
		default:
			s.logger.Error("%s: transaction failed for payment id=%d: %v", op, paymentID, err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	s.logger.Info("%s: payment id=%d %s -> %s", op, result.ID, from, result.Status)
	s.metrics.IncPayment(string(result.Status))

	eventType := domain.EventPaymentCompleted
	if result.Status == domain.PaymentRefunded {
		eventType = domain.EventPaymentRefunded
	}
	if err := s.publisher.Publish(ctx, domain.NewPaymentEvent(eventType, result, from, now)); err != nil {
		s.logger.Warn("%s: failed to publish event for payment id=%d: %v", op, result.ID, err)
	}

	return models.FromDomainPayment(result), nil
}

// GetByBooking получает платёж по бронированию.
// Доступно владельцу и ситтеру.
func (s *Service) GetByBooking(ctx context.Context, bookingID, userID int64) (*models.PaymentResponse, error) {
	s.logger.Info("GetByBooking: fetching payment for booking=%d by user=%d", bookingID, userID)

	payment, err := s.paymentRepo.GetByBookingID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, paymentRepo.ErrPaymentNotFound) {
			return nil, ErrPaymentNotFound
		}
		s.logger.Error("GetByBooking: repository error for booking=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: GetByBooking - repository error: %v", ErrInternal, err)
	}

	if !payment.IsParticipant(userID) {
		s.logger.Warn("GetByBooking: access denied for user=%d to payment id=%d", userID, payment.ID)
		return nil, ErrAccessDenied
	}

	return models.FromDomainPayment(payment), nil
}

// GetUserPayments получает платежи пользователя, новые первыми
func (s *Service) GetUserPayments(ctx context.Context, userID int64) (*models.PaymentListResponse, error) {
	s.logger.Info("GetUserPayments: fetching payments for user=%d", userID)

	payments, err := s.paymentRepo.GetByParticipant(ctx, userID)
	if err != nil {
		s.logger.Error("GetUserPayments: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserPayments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserPayments: fetched %d payments for user=%d", len(payments), userID)
	return models.FromDomainPaymentList(payments), nil
}

// newTransactionID генерирует непрозрачный ID транзакции вида txn_<16 hex>
func newTransactionID() string {
	return transactionIDPrefix + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
}
