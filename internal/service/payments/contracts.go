package payments

import (
	"context"
	"time"

	"github.com/m04kA/SMC-PetCareService/internal/domain"
)

// PaymentRepository интерфейс репозитория платежей
type PaymentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Payment, error)
	GetByBookingID(ctx context.Context, bookingID int64) (*domain.Payment, error)
	GetByParticipant(ctx context.Context, userID int64) ([]*domain.Payment, error)
	MarkCompleted(ctx context.Context, id int64, transactionID string, at time.Time) (*domain.Payment, error)
	MarkRefunded(ctx context.Context, id int64, at time.Time) (*domain.Payment, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher интерфейс канала уведомлений
type EventPublisher interface {
	Publish(ctx context.Context, event domain.Event) error
}

// Metrics интерфейс бизнес-метрик
type Metrics interface {
	IncPayment(status string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
